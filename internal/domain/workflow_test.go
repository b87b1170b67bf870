package domain

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bryanrm/duplix-duplicate-file-handler/internal/adapter"
	adaptermocks "github.com/bryanrm/duplix-duplicate-file-handler/internal/adapter/mocks"
	controllermocks "github.com/bryanrm/duplix-duplicate-file-handler/internal/controller/mocks"
	m "github.com/bryanrm/duplix-duplicate-file-handler/internal/model"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// expectUI registers the calls every scan makes on the UI.
func expectUI(ui *controllermocks.MockUI) {
	ui.EXPECT().Start(mock.Anything).Return(nil)
	ui.EXPECT().Close().Return()
	ui.EXPECT().DisplayFileHashed(mock.Anything).Return().Maybe()
	ui.EXPECT().DisplayFileSkipped(mock.Anything, mock.Anything).Return().Maybe()
	ui.EXPECT().DisplayHeartbeat(mock.Anything).Return().Maybe()
}

func scanConfig(mode m.Mode) m.Config {
	return m.Config{
		Source:    "/src",
		Recursive: true,
		Mode:      mode,
		Algorithm: m.AlgorithmSHA256,
	}
}

func TestWorkflow_Scan_Report(t *testing.T) {
	fs := afero.NewMemMapFs()
	seed(t, fs, map[string]string{
		"/src/a.txt":       "same",
		"/src/b/c.txt":     "same",
		"/src/b/d.txt":     "unique",
		"/src/e.txt":       "same",
		"/src/f/g/h.txt":   "pair",
		"/src/f/i.txt":     "pair",
		"/src/z/empty.txt": "",
	})

	ui := controllermocks.NewMockUI(t)
	expectUI(ui)

	var shown m.Outcome

	ui.EXPECT().DisplayOutcome(mock.Anything).RunAndReturn(func(o m.Outcome) error {
		shown = o
		return nil
	})

	store := adaptermocks.NewMockReportStore(t)

	wf := NewWorkflow(newMemAdapter(t, fs), store, ui, zerolog.Nop())

	outcome, err := wf.Scan(context.Background(), scanConfig(m.ModeReport))
	require.NoError(t, err)

	assert.Equal(t, outcome.Report, shown.Report)
	assert.NotEmpty(t, outcome.RunID)
	assert.Equal(t, 7, outcome.Scanned)
	assert.Equal(t, 0, outcome.Skipped)
	require.Equal(t, 2, outcome.SetCount())

	var same, pair m.DuplicateSet

	for _, set := range outcome.Sets {
		switch set.Len() {
		case 3:
			same = set
		case 2:
			pair = set
		}
	}

	assert.Equal(t, []m.Path{"/src/a.txt", "/src/b/c.txt", "/src/e.txt"}, paths(same))
	assert.Equal(t, []m.Path{"/src/f/g/h.txt", "/src/f/i.txt"}, paths(pair))
	assert.Contains(t, outcome.Report, "Final stats: 2 sets of duplicate files found.\n")
	assert.Equal(t, FormatReport(outcome.Sets)+FormatSummary(outcome), outcome.Report)

	store.AssertNotCalled(t, "SaveReport", mock.Anything, mock.Anything)
}

func TestWorkflow_Scan_NoDuplicates(t *testing.T) {
	fs := afero.NewMemMapFs()
	seed(t, fs, map[string]string{"/src/a": "1", "/src/b": "2"})

	ui := controllermocks.NewMockUI(t)
	expectUI(ui)
	ui.EXPECT().DisplayNoDuplicates().Return()

	store := adaptermocks.NewMockReportStore(t)

	cfg := scanConfig(m.ModeDelete)
	cfg.Export = true
	cfg.ExportPath = "/src/duplix.txt"

	outcome, err := NewWorkflow(newMemAdapter(t, fs), store, ui, zerolog.Nop()).Scan(context.Background(), cfg)
	require.NoError(t, err)

	assert.Zero(t, outcome.SetCount())
	assert.Empty(t, outcome.Report)
	assert.Empty(t, outcome.ExportPath)
	store.AssertNotCalled(t, "SaveReport", mock.Anything, mock.Anything)
	ui.AssertNotCalled(t, "DisplayOutcome", mock.Anything)
}

func TestWorkflow_Scan_Shallow(t *testing.T) {
	fs := afero.NewMemMapFs()
	seed(t, fs, map[string]string{"/src/a": "same", "/src/sub/b": "same"})

	ui := controllermocks.NewMockUI(t)
	expectUI(ui)
	ui.EXPECT().DisplayNoDuplicates().Return()

	cfg := scanConfig(m.ModeReport)
	cfg.Recursive = false

	outcome, err := NewWorkflow(newMemAdapter(t, fs), adaptermocks.NewMockReportStore(t), ui, zerolog.Nop()).
		Scan(context.Background(), cfg)
	require.NoError(t, err)

	assert.Equal(t, 1, outcome.Scanned)
	assert.Zero(t, outcome.SetCount())
}

func TestWorkflow_Scan_MoveAndExport(t *testing.T) {
	fs := afero.NewMemMapFs()
	seed(t, fs, map[string]string{"/src/x/a.txt": "same", "/src/y/a.txt": "same"})
	require.NoError(t, fs.MkdirAll("/dest", 0o755))

	ui := controllermocks.NewMockUI(t)
	expectUI(ui)
	ui.EXPECT().DisplayOutcome(mock.Anything).Return(nil)

	cfg := scanConfig(m.ModeMove)
	cfg.Destination = "/dest"
	cfg.Export = true
	cfg.ExportPath = "/reports/out.txt"

	outcome, err := NewWorkflow(newMemAdapter(t, fs), adapter.NewReportStoreFS(fs), ui, zerolog.Nop()).
		Scan(context.Background(), cfg)
	require.NoError(t, err)

	assert.Equal(t, 2, outcome.Moved)
	assert.Equal(t, m.Path("/dest"), outcome.Destination)
	assert.True(t, outcome.Exported())
	assert.Contains(t, outcome.Report, "2 files moved to /dest\n")

	saved, err := afero.ReadFile(fs, "/reports/out.txt")
	require.NoError(t, err)
	assert.Equal(t, outcome.Report, string(saved))

	for _, p := range []string{"/dest/a.txt", "/dest/a-(0).txt"} {
		exists, err := afero.Exists(fs, p)
		require.NoError(t, err)
		assert.True(t, exists, p)
	}
}

func TestWorkflow_Scan_ExportFailureIsNotFatal(t *testing.T) {
	fs := afero.NewMemMapFs()
	seed(t, fs, map[string]string{"/src/a": "same", "/src/b": "same"})

	ui := controllermocks.NewMockUI(t)
	expectUI(ui)
	ui.EXPECT().DisplayOutcome(mock.MatchedBy(func(o m.Outcome) bool {
		return o.ExportErr != nil && !o.Exported()
	})).Return(nil)

	store := adaptermocks.NewMockReportStore(t)
	store.EXPECT().SaveReport(m.Path("/ro/out.txt"), mock.Anything).
		Return(m.NewError(m.ErrExportWrite, "/ro/out.txt", "write report", errors.New("read-only")))

	cfg := scanConfig(m.ModeDelete)
	cfg.Export = true
	cfg.ExportPath = "/ro/out.txt"

	outcome, err := NewWorkflow(newMemAdapter(t, fs), store, ui, zerolog.Nop()).Scan(context.Background(), cfg)
	require.NoError(t, err)

	assert.Equal(t, 1, outcome.Deleted)
	assert.True(t, m.IsCode(outcome.ExportErr, m.ErrExportWrite))
	assert.Contains(t, outcome.Report, "1.\t*/src/a\n2.\t/src/b\n")
}

func TestWorkflow_Scan_PerFileFailures(t *testing.T) {
	fsMock := adaptermocks.NewMockSourceFSAdapter(t)
	fsMock.EXPECT().Walk(m.Path("/src"), true, mock.Anything).
		RunAndReturn(func(_ m.Path, _ bool, fn adapter.WalkFunc) error {
			for _, step := range []struct {
				path m.Path
				err  error
			}{
				{"/src/a", nil},
				{"/src/locked", errors.New("permission denied")},
				{"/src/b", nil},
				{"/src/c", nil},
			} {
				if err := fn(step.path, step.err); err != nil {
					return err
				}
			}

			return nil
		})
	fsMock.EXPECT().HashFile(m.Path("/src/a")).Return(rec("/src/a", "AA"), nil)
	fsMock.EXPECT().HashFile(m.Path("/src/b")).Return(m.FileRecord{}, errors.New("unreadable"))
	fsMock.EXPECT().HashFile(m.Path("/src/c")).Return(rec("/src/c", "AA"), nil)

	ui := controllermocks.NewMockUI(t)
	expectUI(ui)
	ui.EXPECT().DisplayOutcome(mock.Anything).Return(nil)

	outcome, err := NewWorkflow(fsMock, adaptermocks.NewMockReportStore(t), ui, zerolog.Nop()).
		Scan(context.Background(), scanConfig(m.ModeReport))
	require.NoError(t, err)

	assert.Equal(t, 2, outcome.Scanned)
	assert.Equal(t, 1, outcome.Skipped)
	require.Equal(t, 1, outcome.SetCount())
	assert.Equal(t, []m.Path{"/src/a", "/src/c"}, paths(outcome.Sets[0]))

	require.Len(t, outcome.Failures, 2)
	assert.True(t, m.IsCode(outcome.Failures[0].Err, m.ErrDirRead))
	assert.True(t, m.IsCode(outcome.Failures[1].Err, m.ErrFileRead))
	ui.AssertCalled(t, "DisplayFileSkipped", m.Path("/src/b"), mock.Anything)
}

func TestWorkflow_Scan_MissingSourceIsFatal(t *testing.T) {
	ui := controllermocks.NewMockUI(t)
	expectUI(ui)

	_, err := NewWorkflow(newMemAdapter(t, afero.NewMemMapFs()), adaptermocks.NewMockReportStore(t), ui, zerolog.Nop()).
		Scan(context.Background(), scanConfig(m.ModeReport))
	require.Error(t, err)
	assert.True(t, m.IsCode(err, m.ErrSourceNotFound))
	ui.AssertNotCalled(t, "DisplayOutcome", mock.Anything)
	ui.AssertNotCalled(t, "DisplayNoDuplicates")
}

func TestWorkflow_Scan_Cancelled(t *testing.T) {
	t.Run("before indexing deletes nothing", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		seed(t, fs, map[string]string{"/src/a": "same", "/src/b": "same"})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var shown m.Outcome

		ui := controllermocks.NewMockUI(t)
		expectUI(ui)
		ui.EXPECT().DisplayOutcome(mock.Anything).RunAndReturn(func(o m.Outcome) error {
			shown = o
			return nil
		})

		cfg := scanConfig(m.ModeDelete)
		cfg.Export = true
		cfg.ExportPath = "/src/duplix.txt"

		store := adaptermocks.NewMockReportStore(t)

		outcome, err := NewWorkflow(newMemAdapter(t, fs), store, ui, zerolog.Nop()).Scan(ctx, cfg)
		require.ErrorIs(t, err, context.Canceled)

		assert.True(t, shown.Interrupted)
		assert.True(t, outcome.Interrupted)
		assert.Zero(t, outcome.Deleted)
		assert.Zero(t, outcome.SetCount())
		assert.Contains(t, shown.Report, "Scan interrupted before completion.\n")

		for _, p := range []string{"/src/a", "/src/b"} {
			exists, err := afero.Exists(fs, p)
			require.NoError(t, err)
			assert.True(t, exists, p)
		}

		store.AssertNotCalled(t, "SaveReport", mock.Anything, mock.Anything)
		ui.AssertNotCalled(t, "DisplayNoDuplicates")
	})

	t.Run("while indexing keeps what was hashed", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		fsMock := adaptermocks.NewMockSourceFSAdapter(t)
		fsMock.EXPECT().Walk(m.Path("/src"), true, mock.Anything).
			RunAndReturn(func(_ m.Path, _ bool, fn adapter.WalkFunc) error {
				for _, p := range []m.Path{"/src/a", "/src/b", "/src/c"} {
					if err := fn(p, nil); err != nil {
						return err
					}
				}

				return nil
			})
		fsMock.EXPECT().HashFile(m.Path("/src/a")).Return(rec("/src/a", "AA"), nil)
		fsMock.EXPECT().HashFile(m.Path("/src/b")).RunAndReturn(func(m.Path) (m.FileRecord, error) {
			cancel()
			return rec("/src/b", "AA"), nil
		})

		ui := controllermocks.NewMockUI(t)
		expectUI(ui)
		ui.EXPECT().DisplayOutcome(mock.MatchedBy(func(o m.Outcome) bool {
			return o.Interrupted && o.Scanned == 2
		})).Return(nil)

		outcome, err := NewWorkflow(fsMock, adaptermocks.NewMockReportStore(t), ui, zerolog.Nop()).
			Scan(ctx, scanConfig(m.ModeDelete))
		require.ErrorIs(t, err, context.Canceled)

		assert.Equal(t, 2, outcome.Scanned)
		assert.Zero(t, outcome.Deleted)
		fsMock.AssertNotCalled(t, "HashFile", m.Path("/src/c"))
		fsMock.AssertNotCalled(t, "Remove", mock.Anything)
	})
}

func TestWorkflow_Scan_UIStartFailure(t *testing.T) {
	ui := controllermocks.NewMockUI(t)
	ui.EXPECT().Start(mock.Anything).Return(errors.New("no terminal"))

	_, err := NewWorkflow(newMemAdapter(t, afero.NewMemMapFs()), adaptermocks.NewMockReportStore(t), ui, zerolog.Nop()).
		Scan(context.Background(), scanConfig(m.ModeReport))
	assert.EqualError(t, err, "no terminal")
}

func TestWorkflow_Scan_HeartbeatWhileRunning(t *testing.T) {
	release := make(chan struct{})
	beats := make(chan struct{}, 1)

	fsMock := adaptermocks.NewMockSourceFSAdapter(t)
	fsMock.EXPECT().Walk(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ m.Path, _ bool, _ adapter.WalkFunc) error {
			<-release
			return nil
		})

	ui := controllermocks.NewMockUI(t)
	ui.EXPECT().Start(mock.Anything).Return(nil)
	ui.EXPECT().Close().Return()
	ui.EXPECT().DisplayNoDuplicates().Return()
	ui.EXPECT().DisplayHeartbeat(mock.Anything).Run(func(m.ProgressSnapshot) {
		select {
		case beats <- struct{}{}:
		default:
		}
	}).Return()

	cfg := scanConfig(m.ModeReport)
	cfg.Heartbeat = time.Millisecond
	cfg.HeartbeatEvery = 2

	errCh := make(chan error, 1)

	go func() {
		_, err := NewWorkflow(fsMock, adaptermocks.NewMockReportStore(t), ui, zerolog.Nop()).
			Scan(context.Background(), cfg)
		errCh <- err
	}()

	select {
	case <-beats:
	case <-time.After(2 * time.Second):
		t.Fatal("no heartbeat while the scan was running")
	}

	close(release)

	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Scan() did not return")
	}
}

func paths(set m.DuplicateSet) []m.Path {
	out := make([]m.Path, 0, set.Len())
	for _, f := range set.Files {
		out = append(out, f.Path)
	}

	return out
}
