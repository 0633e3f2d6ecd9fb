package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/kurochkinivan/dealer_notifier/internal/domain"
)

// Scanner collects the documents of a batch from a local directory.
type Scanner struct {
	log *slog.Logger
	dir string
}

func NewScanner(log *slog.Logger, dir string) *Scanner {
	return &Scanner{
		log: log,
		dir: dir,
	}
}

func (s *Scanner) Scan(ctx context.Context) ([]*domain.UploadedDocument, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %q: %w", s.dir, err)
	}

	var documents []*domain.UploadedDocument
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		if err := ctx.Err(); err != nil {
			return nil, err
		}

		content, err := os.ReadFile(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read document %q: %w", entry.Name(), err)
		}

		s.log.DebugContext(ctx, "found document",
			slog.String("filename", entry.Name()),
			slog.Int("size", len(content)),
		)

		documents = append(documents, &domain.UploadedDocument{
			Filename: entry.Name(),
			Content:  content,
		})
	}

	return documents, nil
}
