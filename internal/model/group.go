package model

// DigestGroup holds every file sharing one digest, in discovery order.
type DigestGroup struct {
	Hash  string
	Files []FileRecord
}

// Len returns the number of members.
func (g DigestGroup) Len() int {
	return len(g.Files)
}

// DuplicateSet is a DigestGroup with at least two members.
type DuplicateSet DigestGroup

// Len returns the number of members.
func (s DuplicateSet) Len() int {
	return len(s.Files)
}

// Survivor returns the member that stays in place in delete mode: the last
// one discovered.
func (s DuplicateSet) Survivor() FileRecord {
	return s.Files[len(s.Files)-1]
}

// Doomed returns the members removed in delete mode: all but the last.
func (s DuplicateSet) Doomed() []FileRecord {
	if len(s.Files) == 0 {
		return nil
	}

	return s.Files[:len(s.Files)-1]
}

// ScanIndex maps digests to their groups. Groups are ordered by ascending
// hex digest.
type ScanIndex struct {
	Groups []DigestGroup
}

// Files returns the number of files across all groups.
func (s ScanIndex) Files() int {
	total := 0
	for _, g := range s.Groups {
		total += len(g.Files)
	}

	return total
}
