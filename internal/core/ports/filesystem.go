package ports

import "io/fs"

// FileSystem abstracts the filesystem operations the resolver needs, so
// the upward walk can be tested against an in-memory tree with a
// simulated root.
//
//go:generate go run go.uber.org/mock/mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type FileSystem interface {
	// Stat returns file info for the given path.
	Stat(path string) (fs.FileInfo, error)
	// ReadFile reads the entire file at path.
	ReadFile(path string) ([]byte, error)
}
