package domain

import (
	"context"
	"path/filepath"

	"github.com/bryanrm/duplix-duplicate-file-handler/internal/adapter"
	m "github.com/bryanrm/duplix-duplicate-file-handler/internal/model"
	"github.com/rs/zerolog"
)

// Resolver applies a resolution mode to duplicate sets. Per-file failures are
// logged and recorded in the returned Resolution; they never abort a batch.
// Cancelling ctx stops Move and Delete between files and marks the
// Resolution as interrupted.
type Resolver interface {
	Report(sets []m.DuplicateSet) m.Resolution
	Move(ctx context.Context, sets []m.DuplicateSet, dest m.Path) m.Resolution
	Delete(ctx context.Context, sets []m.DuplicateSet) m.Resolution
}

type resolver struct {
	fs     adapter.SourceFSAdapter
	logger zerolog.Logger
}

// NewResolver creates a Resolver working on fs.
func NewResolver(fs adapter.SourceFSAdapter, logger zerolog.Logger) Resolver {
	return &resolver{fs: fs, logger: logger}
}

// Resolve dispatches to the resolver method matching mode.
func Resolve(ctx context.Context, r Resolver, mode m.Mode, sets []m.DuplicateSet, dest m.Path) m.Resolution {
	switch mode {
	case m.ModeMove:
		return r.Move(ctx, sets, dest)
	case m.ModeDelete:
		return r.Delete(ctx, sets)
	default:
		return r.Report(sets)
	}
}

func (r *resolver) Report(sets []m.DuplicateSet) m.Resolution {
	return m.Resolution{Listing: FormatReport(sets)}
}

// Move relocates every member of every set into dest, the last member
// included. The listing shows the original paths.
func (r *resolver) Move(ctx context.Context, sets []m.DuplicateSet, dest m.Path) m.Resolution {
	res := m.Resolution{Listing: FormatReport(sets)}
	namer := NewNamer(r.fs)

moves:
	for _, set := range sets {
		for _, rec := range set.Files {
			if ctx.Err() != nil {
				r.logger.Warn().Int("moved", res.Moved).Msg("move interrupted")
				res.Interrupted = true

				break moves
			}

			target, err := namer.Next(dest, filepath.Base(string(rec.Path)))
			if err == nil {
				err = r.fs.Move(rec.Path, target)
			}

			if err != nil {
				r.fail(&res, m.NewError(m.ErrFileMove, rec.Path, "move duplicate", err))
				continue
			}

			r.logger.Debug().Str("from", string(rec.Path)).Str("to", string(target)).Msg("moved duplicate")

			res.Moved++
			res.Moves = append(res.Moves, m.MoveResult{From: rec.Path, To: target})
		}
	}

	return res
}

// Delete removes all members but the last of every set. Only files actually
// removed are marked in the listing.
func (r *resolver) Delete(ctx context.Context, sets []m.DuplicateSet) m.Resolution {
	var res m.Resolution

	deleted := make(map[m.Path]struct{})

deletes:
	for _, set := range sets {
		r.logger.Debug().Str("keep", string(set.Survivor().Path)).Int("copies", set.Len()).Msg("resolving set")

		for _, rec := range set.Doomed() {
			if ctx.Err() != nil {
				r.logger.Warn().Int("deleted", res.Deleted).Msg("delete interrupted")
				res.Interrupted = true

				break deletes
			}

			if err := r.fs.Remove(rec.Path); err != nil {
				r.fail(&res, m.NewError(m.ErrFileDelete, rec.Path, "delete duplicate", err))
				continue
			}

			r.logger.Debug().Str("path", string(rec.Path)).Msg("deleted duplicate")

			res.Deleted++
			deleted[rec.Path] = struct{}{}
		}
	}

	res.Listing = FormatMarkedReport(sets, deleted)

	return res
}

func (r *resolver) fail(res *m.Resolution, err *m.Error) {
	op := "move"
	if err.Code == m.ErrFileDelete {
		op = "delete"
	}

	r.logger.Warn().Err(err.Err).Str("path", string(err.Path)).Str("op", op).Msg("skipping file")

	res.Failures = append(res.Failures, m.FileFailure{Path: err.Path, Op: op, Err: err})
}
