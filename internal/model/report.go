package model

// MoveResult records where a moved file ended up.
type MoveResult struct {
	From Path
	To   Path
}

// FileFailure records a per-file or per-directory error that was skipped.
type FileFailure struct {
	Path Path
	Op   string
	Err  error
}

// Resolution is what a resolver did to a batch of duplicate sets.
type Resolution struct {
	Moved    int
	Deleted  int
	Moves    []MoveResult
	Failures []FileFailure
	// Listing is the formatted duplicate listing, without the summary.
	Listing string
	// Interrupted is set when the scan was cancelled before every file was
	// processed.
	Interrupted bool
}

// Outcome is the result of a whole scan.
type Outcome struct {
	Resolution

	RunID       string
	Mode        Mode
	Source      Path
	Destination Path
	Scanned     int
	Skipped     int
	Sets        []DuplicateSet

	// Report is the full text shown to the user and exported: the duplicate
	// listing followed by the summary.
	Report     string
	ExportPath Path
	ExportErr  error
}

// SetCount returns the number of duplicate sets found.
func (o Outcome) SetCount() int {
	return len(o.Sets)
}

// Exported reports whether the report was written to ExportPath.
func (o Outcome) Exported() bool {
	return o.ExportPath != "" && o.ExportErr == nil
}
