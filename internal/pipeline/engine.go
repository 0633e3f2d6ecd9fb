package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/kurochkinivan/dealer_notifier/internal/domain"
)

const outcomeCompleted = "completed"

// Engine runs a batch through load, validate, dispatch and report.
type Engine struct {
	log        *slog.Logger
	campaigns  *Campaigns
	loader     *Loader
	validator  *Validator
	dispatcher *Dispatcher
	reporter   *Reporter
	observer   ResultObserver
}

func NewEngine(
	log *slog.Logger,
	campaigns *Campaigns,
	loader *Loader,
	validator *Validator,
	dispatcher *Dispatcher,
	reporter *Reporter,
	observer ResultObserver,
) *Engine {
	if observer == nil {
		observer = nopObserver{}
	}

	return &Engine{
		log:        log,
		campaigns:  campaigns,
		loader:     loader,
		validator:  validator,
		dispatcher: dispatcher,
		reporter:   reporter,
		observer:   observer,
	}
}

func (e *Engine) Campaigns() []domain.CampaignInfo {
	return e.campaigns.Infos()
}

// Run processes one batch. Load and validation errors are returned before
// any message is sent; per-item failures end up in the report.
func (e *Engine) Run(ctx context.Context, name string, batch *domain.Batch) (*domain.Report, error) {
	campaign, ok := e.campaigns.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w %q", domain.ErrUnknownCampaign, name)
	}

	batchID := uuid.NewString()
	startedAt := time.Now()

	log := e.log.With(
		slog.String("batch_id", batchID),
		slog.String("campaign", campaign.Name),
	)

	report, err := e.run(ctx, log, campaign, batch, batchID, startedAt)
	if err != nil {
		log.WarnContext(ctx, "batch rejected", slog.String("err", err.Error()))
		e.observer.ObserveBatch(campaign.Name, domain.ErrorKind(err))

		return nil, err
	}

	e.observer.ObserveBatch(campaign.Name, outcomeCompleted)

	return report, nil
}

func (e *Engine) run(
	ctx context.Context,
	log *slog.Logger,
	campaign *Campaign,
	batch *domain.Batch,
	batchID string,
	startedAt time.Time,
) (*domain.Report, error) {
	if batch.Roster == nil {
		return nil, domain.ErrNoRoster
	}

	if campaign.Attachment && len(batch.Documents) == 0 {
		return nil, domain.ErrNoDocuments
	}

	log.InfoContext(ctx, "batch started",
		slog.String("roster", batch.Roster.Filename),
		slog.Int("documents_count", len(batch.Documents)),
	)

	table, err := e.loader.Load(batch.Roster.Filename, bytes.NewReader(batch.Roster.Content))
	if err != nil {
		return nil, err
	}

	roster, err := e.validator.Validate(ctx, campaign, table, batch.Filenames())
	if err != nil {
		return nil, err
	}

	log.InfoContext(ctx, "roster validated", slog.Int("rows_count", len(roster.Rows)))

	results := e.dispatcher.Dispatch(ctx, campaign, roster, batch.Documents)

	return e.reporter.Build(batchID, campaign.Name, startedAt, results), nil
}
