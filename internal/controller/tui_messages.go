package controller

import m "github.com/bryanrm/duplix-duplicate-file-handler/internal/model"

// Message types.
type fileHashedMsg struct {
	path m.Path
	size int64
}

type fileSkippedMsg struct {
	path m.Path
}

type heartbeatMsg struct {
	snapshot m.ProgressSnapshot
}

type scanDoneMsg struct{}
