package domain

import (
	"sort"

	m "github.com/bryanrm/duplix-duplicate-file-handler/internal/model"
)

// GroupIndex accumulates hashed files keyed by digest. It has a single
// producer, the scan worker, and is not safe for concurrent use.
type GroupIndex struct {
	groups map[string][]m.FileRecord
	files  int
}

// NewGroupIndex returns an empty index.
func NewGroupIndex() *GroupIndex {
	return &GroupIndex{groups: make(map[string][]m.FileRecord)}
}

// Insert appends rec to the group of its digest, creating the group on first
// sight. Members keep insertion order.
func (g *GroupIndex) Insert(rec m.FileRecord) {
	g.groups[rec.Hash] = append(g.groups[rec.Hash], rec)
	g.files++
}

// Len returns the number of files inserted so far.
func (g *GroupIndex) Len() int {
	return g.files
}

// Snapshot returns the groups ordered by ascending digest.
func (g *GroupIndex) Snapshot() m.ScanIndex {
	keys := make([]string, 0, len(g.groups))
	for k := range g.groups {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	groups := make([]m.DigestGroup, 0, len(keys))
	for _, k := range keys {
		files := make([]m.FileRecord, len(g.groups[k]))
		copy(files, g.groups[k])
		groups = append(groups, m.DigestGroup{Hash: k, Files: files})
	}

	return m.ScanIndex{Groups: groups}
}

// ExtractDuplicates keeps the groups of index with at least two members, in
// index order, and returns them with their count.
func ExtractDuplicates(index m.ScanIndex) ([]m.DuplicateSet, int) {
	sets := make([]m.DuplicateSet, 0)

	for _, group := range index.Groups {
		if group.Len() < 2 {
			continue
		}

		sets = append(sets, m.DuplicateSet(group))
	}

	return sets, len(sets)
}
