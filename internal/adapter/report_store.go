package adapter

import (
	"os"
	"path/filepath"

	m "github.com/bryanrm/duplix-duplicate-file-handler/internal/model"
	"github.com/spf13/afero"
)

const reportPerm = 0o644

// ReportStore persists exported duplicate reports.
type ReportStore interface {
	SaveReport(path m.Path, report string) error
}

type reportStore struct {
	fs afero.Fs
}

// NewReportStore constructs a ReportStore writing to the OS filesystem.
func NewReportStore() ReportStore {
	return NewReportStoreFS(afero.NewOsFs())
}

// NewReportStoreFS constructs a ReportStore writing to fs.
func NewReportStoreFS(fs afero.Fs) ReportStore {
	return &reportStore{fs: fs}
}

// SaveReport writes report to path, creating the parent directory when
// missing. The file is written to a temporary sibling first and renamed into
// place, replacing any previous file.
func (rs *reportStore) SaveReport(path m.Path, report string) error {
	dir := filepath.Dir(string(path))
	if err := rs.fs.MkdirAll(dir, dirPerm); err != nil {
		return m.NewError(m.ErrExportWrite, path, "create export directory", err)
	}

	tmp, err := afero.TempFile(rs.fs, dir, "."+filepath.Base(string(path))+".tmp-*")
	if err != nil {
		return m.NewError(m.ErrExportWrite, path, "create temporary file", err)
	}

	tmpName := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = rs.fs.Remove(tmpName)
	}()

	if _, err := tmp.WriteString(report); err != nil {
		return m.NewError(m.ErrExportWrite, path, "write report", err)
	}

	if err := tmp.Sync(); err != nil {
		return m.NewError(m.ErrExportWrite, path, "sync report", err)
	}

	if err := tmp.Close(); err != nil {
		return m.NewError(m.ErrExportWrite, path, "close report", err)
	}

	if err := rs.fs.Chmod(tmpName, reportPerm); err != nil && !os.IsNotExist(err) {
		return m.NewError(m.ErrExportWrite, path, "chmod report", err)
	}

	if err := rs.fs.Rename(tmpName, string(path)); err != nil {
		return m.NewError(m.ErrExportWrite, path, "rename report into place", err)
	}

	return nil
}
