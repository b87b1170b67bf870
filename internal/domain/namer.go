package domain

import (
	"fmt"
	"path/filepath"

	"github.com/bryanrm/duplix-duplicate-file-handler/internal/adapter"
	m "github.com/bryanrm/duplix-duplicate-file-handler/internal/model"
)

// Namer hands out collision-free destination paths for one move batch.
// A taken name "name.ext" becomes "name-(N).ext" where N counts up from 0 per
// base name and never goes back, so two files with the same base name can
// never be given the same target within a run.
type Namer struct {
	fs       adapter.SourceFSAdapter
	counters map[string]int
	claimed  map[m.Path]struct{}
}

// NewNamer creates a Namer probing fs for existing files.
func NewNamer(fs adapter.SourceFSAdapter) *Namer {
	return &Namer{
		fs:       fs,
		counters: make(map[string]int),
		claimed:  make(map[m.Path]struct{}),
	}
}

// Next returns a free path for name inside dir and reserves it.
func (n *Namer) Next(dir m.Path, name string) (m.Path, error) {
	candidate := m.Path(filepath.Join(string(dir), name))

	free, err := n.free(candidate)
	if err != nil {
		return "", err
	}

	if free {
		n.claimed[candidate] = struct{}{}
		return candidate, nil
	}

	base, ext := adapter.SplitName(name)
	key := filepath.Join(string(dir), name)

	for {
		counter := n.counters[key]
		n.counters[key] = counter + 1

		candidate = m.Path(filepath.Join(string(dir), fmt.Sprintf("%s-(%d)%s", base, counter, ext)))

		free, err := n.free(candidate)
		if err != nil {
			return "", err
		}

		if free {
			n.claimed[candidate] = struct{}{}
			return candidate, nil
		}
	}
}

func (n *Namer) free(path m.Path) (bool, error) {
	if _, ok := n.claimed[path]; ok {
		return false, nil
	}

	exists, err := n.fs.Exists(path)
	if err != nil {
		return false, fmt.Errorf("probe %s: %w", path, err)
	}

	return !exists, nil
}
