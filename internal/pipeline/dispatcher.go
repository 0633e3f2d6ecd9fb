package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/kurochkinivan/dealer_notifier/internal/domain"
	"golang.org/x/sync/errgroup"
)

type Dispatcher struct {
	log         *slog.Logger
	sender      MessageSender
	observer    ResultObserver
	concurrency int
}

// NewDispatcher creates a dispatcher. With concurrency <= 1 items are sent
// strictly one after another.
func NewDispatcher(
	log *slog.Logger,
	sender MessageSender,
	observer ResultObserver,
	concurrency int,
) *Dispatcher {
	if observer == nil {
		observer = nopObserver{}
	}

	return &Dispatcher{
		log:         log,
		sender:      sender,
		observer:    observer,
		concurrency: concurrency,
	}
}

type dispatchItem func(ctx context.Context) domain.DispatchResult

// Dispatch sends one message per document for attachment campaigns and one
// per roster row otherwise. Results are returned in input order and a
// failing item never stops the rest.
func (d *Dispatcher) Dispatch(
	ctx context.Context,
	campaign *Campaign,
	roster *domain.Roster,
	documents []*domain.UploadedDocument,
) []domain.DispatchResult {
	var items []dispatchItem

	if campaign.Attachment {
		for _, doc := range documents {
			items = append(items, func(ctx context.Context) domain.DispatchResult {
				return d.sendDocument(ctx, campaign, roster, doc)
			})
		}
	} else {
		for _, row := range recipients(campaign, roster) {
			items = append(items, func(ctx context.Context) domain.DispatchResult {
				return d.sendRow(ctx, campaign, row)
			})
		}
	}

	d.log.InfoContext(ctx, "dispatching messages",
		slog.String("campaign", campaign.Name),
		slog.Int("items_count", len(items)),
		slog.Int("concurrency", max(d.concurrency, 1)),
	)

	results := d.run(ctx, items)

	for _, r := range results {
		d.observer.ObserveResult(campaign.Name, r.Status)
	}

	return results
}

func (d *Dispatcher) run(ctx context.Context, items []dispatchItem) []domain.DispatchResult {
	results := make([]domain.DispatchResult, len(items))

	if d.concurrency <= 1 {
		for i, item := range items {
			results[i] = item(ctx)
		}

		return results
	}

	var g errgroup.Group
	g.SetLimit(d.concurrency)

	for i, item := range items {
		g.Go(func() error {
			results[i] = item(ctx)
			return nil
		})
	}

	_ = g.Wait()

	return results
}

// recipients returns the rows to message, dropping repeated phone numbers
// when the campaign asks for it. The first occurrence is kept.
func recipients(campaign *Campaign, roster *domain.Roster) []domain.RosterRow {
	if !campaign.DedupPhones {
		return roster.Rows
	}

	seen := make(map[string]struct{}, len(roster.Rows))
	rows := make([]domain.RosterRow, 0, len(roster.Rows))

	for _, row := range roster.Rows {
		if _, ok := seen[row.Phone]; ok {
			continue
		}

		seen[row.Phone] = struct{}{}
		rows = append(rows, row)
	}

	return rows
}

func (d *Dispatcher) sendDocument(
	ctx context.Context,
	campaign *Campaign,
	roster *domain.Roster,
	doc *domain.UploadedDocument,
) domain.DispatchResult {
	log := d.log.With(slog.String("filename", doc.Filename))

	key, ok := doc.Key()
	if !ok {
		log.WarnContext(ctx, "no correlation key in filename, skipping")
		return domain.DispatchResult{File: doc.Filename, Status: domain.StatusSkipped}
	}

	row, ok := roster.Lookup(key)
	if !ok {
		log.WarnContext(ctx, "no roster row for document, skipping", slog.String("key", key))
		return domain.DispatchResult{File: doc.Filename, Key: key, Status: domain.StatusSkipped}
	}

	result := domain.DispatchResult{
		File:   doc.Filename,
		Key:    key,
		Phone:  row.Phone,
		Dealer: row.Name,
	}

	log = log.With(slog.String("key", key), slog.String("phone", row.Phone))

	err := safely(func() error {
		media := newMediaUpload(key, doc)

		log.DebugContext(ctx, "uploading document", slog.String("content_type", media.ContentType))

		mediaID, err := d.sender.UploadMedia(ctx, media)
		if err != nil {
			return err
		}

		log.DebugContext(ctx, "sending message", slog.String("media_id", mediaID))

		return d.sender.SendMessage(ctx, campaign.Message(row, &domain.DocumentLink{
			ID:       mediaID,
			Filename: media.Filename,
		}))
	})

	return classify(ctx, log, result, err)
}

func (d *Dispatcher) sendRow(ctx context.Context, campaign *Campaign, row domain.RosterRow) domain.DispatchResult {
	log := d.log.With(slog.String("phone", row.Phone))

	result := domain.DispatchResult{
		Phone:  row.Phone,
		Dealer: row.Name,
	}

	err := safely(func() error {
		log.DebugContext(ctx, "sending message")
		return d.sender.SendMessage(ctx, campaign.Message(row, nil))
	})

	return classify(ctx, log, result, err)
}

func classify(ctx context.Context, log *slog.Logger, result domain.DispatchResult, err error) domain.DispatchResult {
	var (
		uploadErr *domain.ProviderUploadError
		sendErr   *domain.ProviderSendError
	)

	switch {
	case err == nil:
		result.Status = domain.StatusSent
		log.InfoContext(ctx, "message sent")

	case errors.As(err, &uploadErr), errors.As(err, &sendErr):
		result.Status = domain.StatusFailed
		result.Detail = err.Error()
		log.ErrorContext(ctx, "provider rejected request", slog.String("err", err.Error()))

	default:
		err = &domain.UnexpectedError{Err: err}
		result.Status = domain.ErrorStatus(err)
		log.ErrorContext(ctx, "failed to dispatch message", slog.String("err", err.Error()))
	}

	return result
}

// safely runs fn, turning a panic into an error.
func safely(fn func() error) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic: %v", p)
		}
	}()

	return fn()
}

func newMediaUpload(key string, doc *domain.UploadedDocument) *domain.MediaUpload {
	mime := mimetype.Detect(doc.Content)

	contentType, _, _ := strings.Cut(mime.String(), ";")

	ext := mime.Extension()
	if ext == "" {
		ext = strings.ToLower(filepath.Ext(doc.Filename))
	}

	return &domain.MediaUpload{
		Filename:    key + ext,
		ContentType: contentType,
		Content:     doc.Content,
	}
}
