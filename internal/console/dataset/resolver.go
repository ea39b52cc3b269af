package dataset

import (
	"context"
	"errors"
	"log/slog"
)

// ErrNoSource is returned when every configured source has failed.
var ErrNoSource = errors.New("dataset: unable to fetch user data from any source")

// Resolver tries an ordered list of sources; the first source that returns
// a parseable collection wins. Sources are attempted sequentially, never
// raced. An empty primary URL is handled at construction time (the remote
// source is simply not in the chain), not inferred per fetch.
type Resolver struct {
	sources []Source
	logger  *slog.Logger
}

func NewResolver(logger *slog.Logger, sources ...Source) *Resolver {
	return &Resolver{sources: sources, logger: logger}
}

// Fetch returns the raw records from the first healthy source. Each
// failure is logged and falls through to the next candidate; exhaustion
// returns ErrNoSource. Context cancellation aborts the whole chain.
func (r *Resolver) Fetch(ctx context.Context) ([]RawRecord, error) {
	var lastErr error

	for _, src := range r.sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		records, err := src.Fetch(ctx)
		if err != nil {
			lastErr = err
			r.logger.Warn("dataset source failed, trying next",
				"source", src.Name(), "err", err)
			continue
		}

		r.logger.Info("dataset loaded",
			"source", src.Name(), "records", len(records))
		return records, nil
	}

	r.logger.Error("all dataset sources failed", "err", lastErr)
	return nil, ErrNoSource
}
