// Package model defines the data structures shared by the duplicate scanner.
package model

// Path represents a file system path.
type Path string

// FileRecord is a file discovered during a scan together with its content
// digest. Records are created once by the hasher and never modified.
type FileRecord struct {
	Path   Path
	Size   int64
	Digest []byte
	// Hash is the uppercase hexadecimal form of Digest, used as grouping key.
	Hash string
}
