package config

import (
	"time"

	"github.com/urfave/cli/v3"
)

type Config struct {
	App
	WhatsApp
	HTTP
}

type App struct {
	DispatchConcurrency int
	DedupCampaigns      []string
	MaxUploadSize       int64
}

type WhatsApp struct {
	BaseURL       string
	APIVersion    string
	PhoneNumberID string
	AccessToken   string
	Timeout       time.Duration
}

type HTTP struct {
	Host         string
	Port         string
	IdleTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

func Load(cmd *cli.Command) *Config {
	return &Config{
		App: App{
			DispatchConcurrency: cmd.Int("dispatch-concurrency"),
			DedupCampaigns:      cmd.StringSlice("dedup-campaigns"),
			MaxUploadSize:       cmd.Int64("max-upload-size"),
		},
		WhatsApp: WhatsApp{
			BaseURL:       cmd.String("whatsapp-base-url"),
			APIVersion:    cmd.String("whatsapp-api-version"),
			PhoneNumberID: cmd.String("whatsapp-phone-number-id"),
			AccessToken:   cmd.String("whatsapp-access-token"),
			Timeout:       cmd.Duration("whatsapp-timeout"),
		},
		HTTP: HTTP{
			Host:         cmd.String("http-host"),
			Port:         cmd.String("http-port"),
			IdleTimeout:  cmd.Duration("http-idle-timeout"),
			ReadTimeout:  cmd.Duration("http-read-timeout"),
			WriteTimeout: cmd.Duration("http-write-timeout"),
		},
	}
}
