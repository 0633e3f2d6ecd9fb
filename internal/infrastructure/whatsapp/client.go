// Package whatsapp is a client for the template messaging endpoints of the
// WhatsApp Cloud API.
package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/kurochkinivan/dealer_notifier/internal/config"
	"github.com/kurochkinivan/dealer_notifier/internal/domain"
)

const (
	DefaultBaseURL    = "https://graph.facebook.com"
	DefaultAPIVersion = "v22.0"

	EndpointMedia    = "media"
	EndpointMessages = "messages"

	maxResponseSize = 1 << 20
)

type RequestObserver interface {
	ObserveProviderRequest(endpoint string, statusCode int, duration time.Duration)
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	observer   RequestObserver
}

func NewClient(cfg config.WhatsApp, observer RequestObserver) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL: strings.Join([]string{
			strings.TrimRight(cfg.BaseURL, "/"),
			cfg.APIVersion,
			cfg.PhoneNumberID,
		}, "/"),
		token:    cfg.AccessToken,
		observer: observer,
	}
}

type mediaResponse struct {
	ID string `json:"id"`
}

// UploadMedia uploads an attachment and returns its media id.
func (c *Client) UploadMedia(ctx context.Context, media *domain.MediaUpload) (string, error) {
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)

	if err := writeMediaForm(mw, media); err != nil {
		return "", fmt.Errorf("failed to build upload form: %w", err)
	}

	status, respBody, err := c.post(ctx, EndpointMedia, mw.FormDataContentType(), body)
	if err != nil {
		return "", err
	}

	if status != http.StatusOK {
		return "", &domain.ProviderUploadError{StatusCode: status, Body: string(respBody)}
	}

	var resp mediaResponse
	if err := json.Unmarshal(respBody, &resp); err != nil || resp.ID == "" {
		return "", &domain.ProviderUploadError{StatusCode: status, Body: string(respBody)}
	}

	return resp.ID, nil
}

func writeMediaForm(mw *multipart.Writer, media *domain.MediaUpload) error {
	if err := mw.WriteField("messaging_product", domain.MessagingProduct); err != nil {
		return err
	}

	if err := mw.WriteField("type", media.ContentType); err != nil {
		return err
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, media.Filename))
	header.Set("Content-Type", media.ContentType)

	part, err := mw.CreatePart(header)
	if err != nil {
		return err
	}

	if _, err := part.Write(media.Content); err != nil {
		return err
	}

	return mw.Close()
}

// SendMessage sends a template message. Any status other than 200 is
// reported as a *domain.ProviderSendError.
func (c *Client) SendMessage(ctx context.Context, msg *domain.Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	status, respBody, err := c.post(ctx, EndpointMessages, "application/json", bytes.NewReader(data))
	if err != nil {
		return err
	}

	if status != http.StatusOK {
		return &domain.ProviderSendError{StatusCode: status, Body: string(respBody)}
	}

	return nil
}

func (c *Client) post(ctx context.Context, endpoint, contentType string, body io.Reader) (_ int, _ []byte, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+endpoint, body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", contentType)

	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(endpoint, 0, time.Since(start))
		return 0, nil, fmt.Errorf("failed to call %s endpoint: %w", endpoint, err)
	}
	defer func() { err = errors.Join(err, resp.Body.Close()) }()

	c.observe(endpoint, resp.StatusCode, time.Since(start))

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read %s response: %w", endpoint, err)
	}

	return resp.StatusCode, respBody, nil
}

func (c *Client) observe(endpoint string, status int, d time.Duration) {
	if c.observer != nil {
		c.observer.ObserveProviderRequest(endpoint, status, d)
	}
}
