// Package domain holds the duplicate detection pipeline: grouping by digest,
// duplicate extraction, resolution and report formatting.
package domain

import (
	"context"

	"github.com/bryanrm/duplix-duplicate-file-handler/internal/adapter"
	"github.com/bryanrm/duplix-duplicate-file-handler/internal/controller"
	"github.com/bryanrm/duplix-duplicate-file-handler/internal/logging"
	m "github.com/bryanrm/duplix-duplicate-file-handler/internal/model"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Workflow runs one scan from traversal to export.
type Workflow interface {
	Scan(ctx context.Context, cfg m.Config) (m.Outcome, error)
}

type workflow struct {
	fsAdapter   adapter.SourceFSAdapter
	reportStore adapter.ReportStore
	ui          controller.UI
	resolver    Resolver
	logger      zerolog.Logger
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	reportStore adapter.ReportStore,
	ui controller.UI,
	logger zerolog.Logger,
) Workflow {
	return &workflow{
		fsAdapter:   fsAdapter,
		reportStore: reportStore,
		ui:          ui,
		resolver:    NewResolver(fsAdapter, logger.With().Str("component", "resolver").Logger()),
		logger:      logger,
	}
}

// Scan runs the pipeline on a worker goroutine next to a liveness monitor.
// The monitor stops as soon as the worker publishes completion. Errors
// returned are fatal; per-file problems end up in Outcome.Failures.
//
// Cancelling ctx stops the worker between files. The partial outcome is still
// displayed and returned, together with the context error.
func (w *workflow) Scan(ctx context.Context, cfg m.Config) (m.Outcome, error) {
	runID := uuid.NewString()
	logger := w.logger.With().Str("run", runID).Logger()

	if err := w.ui.Start(cfg); err != nil {
		return m.Outcome{}, err
	}
	defer w.ui.Close()

	logger.Info().
		Str("source", string(cfg.Source)).
		Bool("recursive", cfg.Recursive).
		Stringer("mode", cfg.Mode).
		Msg("scan started")

	done := m.NewCompletion()
	progress := &m.Progress{}
	outcome := m.Outcome{
		RunID:  runID,
		Mode:   cfg.Mode,
		Source: cfg.Source,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer done.Finish()

		return w.run(gctx, cfg, progress, &outcome, logger)
	})

	g.Go(func() error {
		return controller.NewMonitor(cfg.Heartbeat, cfg.HeartbeatEvery).Run(gctx, done, progress, w.ui)
	})

	if err := g.Wait(); err != nil {
		return m.Outcome{}, err
	}

	logger.Info().
		Int("scanned", outcome.Scanned).
		Int("sets", outcome.SetCount()).
		Int("moved", outcome.Moved).
		Int("deleted", outcome.Deleted).
		Int("failures", len(outcome.Failures)).
		Msg("scan finished")

	if outcome.Interrupted {
		logger.Warn().Msg("scan interrupted")

		if err := w.ui.DisplayOutcome(outcome); err != nil {
			return outcome, err
		}

		return outcome, ctx.Err()
	}

	if outcome.SetCount() == 0 {
		w.ui.DisplayNoDuplicates()
		return outcome, nil
	}

	return outcome, w.ui.DisplayOutcome(outcome)
}

// run is the sequential part of a scan: walk, hash, group, extract, resolve,
// format and export. A scan cancelled while indexing resolves nothing.
func (w *workflow) run(ctx context.Context, cfg m.Config, progress *m.Progress, outcome *m.Outcome, logger zerolog.Logger) error {
	defer logging.LogOperationStart(logger, "scan")()

	index, failures, err := w.index(ctx, cfg, progress, logger)

	outcome.Scanned = int(progress.Scanned.Load())
	outcome.Skipped = int(progress.Skipped.Load())

	if err != nil {
		if ctx.Err() == nil {
			return err
		}

		outcome.Failures = failures
		outcome.Interrupted = true
		outcome.Report = FormatSummary(*outcome)

		return nil
	}

	snapshot := index.Snapshot()
	sets, count := ExtractDuplicates(snapshot)
	logger.Debug().Int("files", snapshot.Files()).Int("digests", len(snapshot.Groups)).Int("sets", count).Msg("duplicates extracted")

	outcome.Sets = sets
	if count == 0 {
		outcome.Failures = failures
		return nil
	}

	if cfg.Mode == m.ModeMove {
		outcome.Destination = cfg.Destination
	}

	outcome.Resolution = Resolve(ctx, w.resolver, cfg.Mode, sets, cfg.Destination)
	outcome.Failures = append(failures, outcome.Failures...)
	outcome.Report = outcome.Listing + FormatSummary(*outcome)

	if cfg.Export {
		outcome.ExportPath = cfg.ExportPath

		if err := w.reportStore.SaveReport(cfg.ExportPath, outcome.Report); err != nil {
			logger.Warn().Err(err).Str("path", string(cfg.ExportPath)).Msg("export failed")
			outcome.ExportErr = err
		}
	}

	return nil
}

// index walks the source tree and hashes every file into a GroupIndex. On
// cancellation it returns the context error with the failures seen so far.
func (w *workflow) index(ctx context.Context, cfg m.Config, progress *m.Progress, logger zerolog.Logger) (*GroupIndex, []m.FileFailure, error) {
	index := NewGroupIndex()

	var failures []m.FileFailure

	err := w.fsAdapter.Walk(cfg.Source, cfg.Recursive, func(path m.Path, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if walkErr != nil {
			logger.Warn().Err(walkErr).Str("path", string(path)).Msg("skipping unreadable directory")
			failures = append(failures, m.FileFailure{
				Path: path,
				Op:   "read directory",
				Err:  m.NewError(m.ErrDirRead, path, "read directory", walkErr),
			})

			return nil
		}

		rec, err := w.fsAdapter.HashFile(path)
		if err != nil {
			logger.Warn().Err(err).Str("path", string(path)).Msg("skipping unreadable file")
			progress.Skipped.Add(1)
			failures = append(failures, m.FileFailure{
				Path: path,
				Op:   "hash",
				Err:  m.NewError(m.ErrFileRead, path, "hash file", err),
			})
			w.ui.DisplayFileSkipped(path, err)

			return nil
		}

		logger.Trace().Str("path", string(path)).Str("hash", rec.Hash).Msg("hashed")
		progress.Scanned.Add(1)
		progress.Bytes.Add(rec.Size)
		index.Insert(rec)
		w.ui.DisplayFileHashed(rec)

		return nil
	})
	if ctxErr := ctx.Err(); ctxErr != nil && err != nil {
		logger.Warn().Int("indexed", index.Len()).Msg("indexing interrupted")
		return nil, failures, ctxErr
	}

	if err != nil {
		return nil, nil, m.NewError(m.ErrSourceNotFound, cfg.Source, "walk source", err)
	}

	logger.Debug().Int("indexed", index.Len()).Int("failures", len(failures)).Msg("indexing finished")

	return index, failures, nil
}
