package pipeline

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/kurochkinivan/dealer_notifier/internal/domain"
)

type Validator struct {
	log *slog.Logger
}

func NewValidator(log *slog.Logger) *Validator {
	return &Validator{
		log: log,
	}
}

// Validate checks the table against the campaign and builds the roster.
// Any failure rejects the whole batch. filenames are only consulted for
// campaigns that carry an attachment.
func (v *Validator) Validate(
	ctx context.Context,
	campaign *Campaign,
	table *domain.Table,
	filenames []string,
) (*domain.Roster, error) {
	log := v.log.With(
		slog.String("campaign", campaign.Name),
		slog.Int("rows_count", len(table.Rows)),
	)

	if missing := missingColumns(campaign, table); len(missing) > 0 {
		return nil, &domain.MissingColumnsError{
			Required: slices.Clone(campaign.RequiredColumns),
			Missing:  missing,
		}
	}

	if rows := incompleteRows(campaign, table); len(rows) > 0 {
		return nil, &domain.IncompleteRowError{Rows: rows}
	}

	roster := buildRoster(campaign, table)

	if campaign.Attachment {
		if keys := unmatchedKeys(roster, filenames); len(keys) > 0 {
			return nil, &domain.UnmatchedInvoiceError{Keys: keys}
		}
	}

	if duplicates := len(roster.Rows) - len(roster.Mapping); duplicates > 0 {
		log.WarnContext(ctx, "duplicate correlation keys in roster, last row wins",
			slog.Int("duplicates_count", duplicates),
		)
	}

	log.DebugContext(ctx, "roster validated", slog.Int("keys_count", len(roster.Mapping)))

	return roster, nil
}

func missingColumns(campaign *Campaign, table *domain.Table) []string {
	var missing []string
	for _, c := range campaign.RequiredColumns {
		if table.Index(c) < 0 {
			missing = append(missing, c)
		}
	}

	return missing
}

func incompleteRows(campaign *Campaign, table *domain.Table) []int {
	var rows []int
	for i := range table.Rows {
		for _, c := range campaign.RequiredColumns {
			if strings.TrimSpace(table.Value(i, c)) == "" {
				rows = append(rows, i)
				break
			}
		}
	}

	return rows
}

func buildRoster(campaign *Campaign, table *domain.Table) *domain.Roster {
	roster := &domain.Roster{
		Rows:    make([]domain.RosterRow, 0, len(table.Rows)),
		Mapping: make(domain.CorrelationMapping, len(table.Rows)),
	}

	for i := range table.Rows {
		row := campaign.row(table, i)
		roster.Rows = append(roster.Rows, row)
		roster.Mapping[row.Key] = row
	}

	return roster
}

// unmatchedKeys returns roster keys that no filename resolves to, sorted.
func unmatchedKeys(roster *domain.Roster, filenames []string) []string {
	fileKeys := make(map[string]struct{}, len(filenames))
	for _, f := range filenames {
		if key, ok := domain.DeriveKey(f); ok {
			fileKeys[key] = struct{}{}
		}
	}

	var missing []string
	for key := range roster.Mapping {
		if _, ok := fileKeys[key]; !ok {
			missing = append(missing, key)
		}
	}

	slices.Sort(missing)

	return missing
}
