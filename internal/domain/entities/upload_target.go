package entities

import "path/filepath"

// UploadTarget is a single artifact found on disk. URL stays empty until
// the target has been resolved against a repository.
type UploadTarget struct {
	Path string // Local path of the artifact
	Name string // Base name, used as the last segment of the upload URL
	Size int64  // Size in bytes at discovery time
	URL  string // Fully qualified upload URL
}

// NewUploadTarget builds an unresolved target for the file at path.
func NewUploadTarget(path string, size int64) UploadTarget {
	return UploadTarget{
		Path: path,
		Name: filepath.Base(path),
		Size: size,
	}
}

// WithURL returns a copy of the target pointing at uploadURL.
func (t UploadTarget) WithURL(uploadURL string) UploadTarget {
	t.URL = uploadURL
	return t
}

// Paths returns the local paths of the given targets, preserving order.
func Paths(targets []UploadTarget) []string {
	paths := make([]string, 0, len(targets))
	for _, target := range targets {
		paths = append(paths, target.Path)
	}
	return paths
}
