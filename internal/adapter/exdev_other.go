//go:build !unix

package adapter

func isCrossDevice(_ error) bool {
	return false
}
