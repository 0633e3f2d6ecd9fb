package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/kurochkinivan/dealer_notifier/internal/app"
	"github.com/kurochkinivan/dealer_notifier/internal/config"
	"github.com/kurochkinivan/dealer_notifier/internal/infrastructure/whatsapp"
	"github.com/kurochkinivan/dealer_notifier/internal/pipeline"
	altsrc "github.com/urfave/cli-altsrc/v3"
	"github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

var version = "dev"

func cmd() *cli.Command {
	return &cli.Command{
		Name:    "dealer_notifier",
		Usage:   "Dealer roster reconciliation and WhatsApp notification service",
		Version: version,
		Flags:   flags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log, err := loggerFromContext(ctx)
			if err != nil {
				return err
			}

			cfg := config.Load(cmd)

			return app.New(log, cfg).Run(ctx)
		},
		Commands: []*cli.Command{
			sendCmd(),
		},
	}
}

func sendCmd() *cli.Command {
	return &cli.Command{
		Name:  "send",
		Usage: "Run a single batch from local files and print the report",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:      "campaign",
				Usage:     "Campaign to run: invoice, new-user, existing-user",
				Required:  true,
				Validator: validateCampaign,
			},
			&cli.StringFlag{
				Name:      "roster",
				Usage:     "Load roster spreadsheet from `FILE`",
				Required:  true,
				Validator: validateFile,
			},
			&cli.StringFlag{
				Name:      "documents",
				Usage:     "Load documents from `DIR`",
				Validator: validateDirectory,
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "Report format: csv, json, pdf, html",
				Value: "csv",
			},
			&cli.StringFlag{
				Name:  "output",
				Usage: "Write report to `FILE` instead of stdout",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) (err error) {
			log, err := loggerFromContext(ctx)
			if err != nil {
				return err
			}

			var w io.Writer = os.Stdout
			if output := cmd.String("output"); output != "" {
				f, createErr := os.Create(output)
				if createErr != nil {
					return fmt.Errorf("failed to create output file: %w", createErr)
				}
				defer func() { err = errors.Join(err, f.Close()) }()

				w = f
			}

			return app.New(log, config.Load(cmd)).Send(ctx, app.SendOptions{
				Campaign:     cmd.String("campaign"),
				RosterPath:   cmd.String("roster"),
				DocumentsDir: cmd.String("documents"),
				Format:       cmd.String("format"),
			}, w)
		},
	}
}

func flags() []cli.Flag {
	var config string

	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Validator:   validateConfig,
			Usage:       "Load configuration from `FILE`",
			Destination: &config,
		},
		&cli.IntFlag{
			Name:    "dispatch-concurrency",
			Usage:   "Set number of messages sent in parallel, 1 sends sequentially",
			Value:   1,
			Sources: cli.NewValueSourceChain(yaml.YAML("app.dispatch_concurrency", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringSliceFlag{
			Name:    "dedup-campaigns",
			Usage:   "Set campaigns that send once per phone number",
			Value:   []string{pipeline.CampaignNewUser},
			Sources: cli.NewValueSourceChain(yaml.YAML("app.dedup_campaigns", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.Int64Flag{
			Name:    "max-upload-size",
			Usage:   "Set maximum size of an upload request in bytes",
			Value:   64 << 20,
			Sources: cli.NewValueSourceChain(yaml.YAML("app.max_upload_size", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:  "whatsapp-base-url",
			Usage: "Set WhatsApp Cloud API base URL",
			Value: whatsapp.DefaultBaseURL,
			Sources: cli.NewValueSourceChain(
				yaml.YAML("whatsapp.base_url", altsrc.NewStringPtrSourcer(&config)),
			),
		},
		&cli.StringFlag{
			Name:  "whatsapp-api-version",
			Usage: "Set WhatsApp Cloud API version",
			Value: whatsapp.DefaultAPIVersion,
			Sources: cli.NewValueSourceChain(
				yaml.YAML("whatsapp.api_version", altsrc.NewStringPtrSourcer(&config)),
			),
		},
		&cli.StringFlag{
			Name:  "whatsapp-phone-number-id",
			Usage: "Set WhatsApp sender phone number id",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("PHONE_NUMBER_ID"),
				yaml.YAML("whatsapp.phone_number_id", altsrc.NewStringPtrSourcer(&config)),
			),
			Required: true,
		},
		&cli.StringFlag{
			Name:  "whatsapp-access-token",
			Usage: "Set WhatsApp Cloud API access token",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("ACCESS_TOKEN"),
				yaml.YAML("whatsapp.access_token", altsrc.NewStringPtrSourcer(&config)),
			),
			Required: true,
		},
		&cli.DurationFlag{
			Name:  "whatsapp-timeout",
			Usage: "Set WhatsApp API request timeout",
			Value: 30 * time.Second,
			Sources: cli.NewValueSourceChain(
				yaml.YAML("whatsapp.timeout", altsrc.NewStringPtrSourcer(&config)),
			),
		},
		&cli.StringFlag{
			Name:    "http-host",
			Usage:   "Set HTTP server host",
			Value:   "localhost",
			Sources: cli.NewValueSourceChain(yaml.YAML("http.host", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "http-port",
			Usage:   "Set HTTP server port",
			Value:   "8080",
			Sources: cli.NewValueSourceChain(yaml.YAML("http.port", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.DurationFlag{
			Name:    "http-idle-timeout",
			Usage:   "Set HTTP server idle timeout",
			Value:   1 * time.Minute,
			Sources: cli.NewValueSourceChain(yaml.YAML("http.idle_timeout", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.DurationFlag{
			Name:    "http-read-timeout",
			Usage:   "Set HTTP server read timeout",
			Value:   1 * time.Minute,
			Sources: cli.NewValueSourceChain(yaml.YAML("http.read_timeout", altsrc.NewStringPtrSourcer(&config))),
		},
		// A dispatch request holds the response open until every message is
		// sent, so this must cover rows x whatsapp-timeout / dispatch-concurrency.
		&cli.DurationFlag{
			Name:    "http-write-timeout",
			Usage:   "Set HTTP server write timeout, must outlast a whole batch dispatch",
			Value:   10 * time.Minute,
			Sources: cli.NewValueSourceChain(yaml.YAML("http.write_timeout", altsrc.NewStringPtrSourcer(&config))),
		},
	}
}

func loggerFromContext(ctx context.Context) (*slog.Logger, error) {
	log, ok := ctx.Value(loggerKey{}).(*slog.Logger)
	if !ok {
		return nil, errors.New("failed to get logger from context")
	}

	return log, nil
}

func validateCampaign(name string) error {
	switch name {
	case pipeline.CampaignInvoice, pipeline.CampaignNewUser, pipeline.CampaignExistingUser:
		return nil
	default:
		return fmt.Errorf("unknown campaign %q", name)
	}
}

func validateDirectory(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", dir)
		}
		return fmt.Errorf("failed to stat %q: %w", dir, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("%q is not a directory", dir)
	}

	return nil
}

func validateFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", path)
		}
		return fmt.Errorf("failed to stat %q: %w", path, err)
	}

	if info.IsDir() {
		return fmt.Errorf("%q is a directory, not a file", path)
	}

	return nil
}

func validateConfig(config string) error {
	if err := validateFile(config); err != nil {
		return err
	}

	ext := filepath.Ext(config)
	if ext != ".yml" && ext != ".yaml" {
		return fmt.Errorf("invalid extension %q", config)
	}

	return nil
}
