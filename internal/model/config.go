package model

import "time"

// Mode selects what happens to duplicate sets once they are found.
type Mode int

// Available Mode values.
const (
	// ModeReport lists duplicate sets without touching the filesystem.
	ModeReport Mode = iota
	// ModeMove relocates every member of every set into a destination directory.
	ModeMove
	// ModeDelete removes all but the last discovered member of every set.
	ModeDelete
)

func (m Mode) String() string {
	switch m {
	case ModeMove:
		return "move"
	case ModeDelete:
		return "delete"
	default:
		return "report"
	}
}

// Algorithm names the digest used to fingerprint file contents.
type Algorithm string

const (
	// AlgorithmSHA256 is the default digest.
	AlgorithmSHA256 Algorithm = "sha256"
	// AlgorithmSHA512 trades speed for a wider digest.
	AlgorithmSHA512 Algorithm = "sha512"
)

// Config is the fully resolved configuration of one scan. Conflicting
// requests (move and delete) have already been settled when a Config exists.
type Config struct {
	Source      Path
	Recursive   bool
	Mode        Mode
	Destination Path // only used in ModeMove
	Export      bool
	ExportPath  Path
	Algorithm   Algorithm

	// Heartbeat is the tick interval of the liveness monitor and
	// HeartbeatEvery the number of ticks between two status lines.
	Heartbeat      time.Duration
	HeartbeatEvery int
}
