package pipeline

import (
	"context"
	"io"

	"github.com/kurochkinivan/dealer_notifier/internal/domain"
)

type MessageSender interface {
	UploadMedia(ctx context.Context, media *domain.MediaUpload) (string, error)
	SendMessage(ctx context.Context, msg *domain.Message) error
}

type ReportGenerator interface {
	ContentType() string
	GenerateReport(w io.Writer, report *domain.Report) error
}

type ResultObserver interface {
	ObserveResult(campaign string, status domain.Status)
	ObserveBatch(campaign, outcome string)
}

type nopObserver struct{}

func (nopObserver) ObserveResult(string, domain.Status) {}

func (nopObserver) ObserveBatch(string, string) {}
