//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"path/filepath"

	"github.com/rios0rios0/rpmdeploy/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// UploadTargetBuilder helps create test upload targets with a fluent interface.
type UploadTargetBuilder struct {
	*testkit.BaseBuilder
	path string
	size int64
	url  string
}

// NewUploadTargetBuilder creates a new upload target builder with sensible defaults.
func NewUploadTargetBuilder() *UploadTargetBuilder {
	return &UploadTargetBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		path:        filepath.Join("target", "rpm", "pkg-1.0.rpm"),
		size:        1024,
	}
}

// WithPath sets the local path; the name is derived from it.
func (b *UploadTargetBuilder) WithPath(path string) *UploadTargetBuilder {
	b.path = path
	return b
}

// WithSize sets the file size.
func (b *UploadTargetBuilder) WithSize(size int64) *UploadTargetBuilder {
	b.size = size
	return b
}

// WithURL sets the resolved upload URL.
func (b *UploadTargetBuilder) WithURL(url string) *UploadTargetBuilder {
	b.url = url
	return b
}

// Build creates the upload target (satisfies testkit.Builder interface).
func (b *UploadTargetBuilder) Build() interface{} {
	return b.BuildUploadTarget()
}

// BuildUploadTarget creates the upload target with a concrete return type.
func (b *UploadTargetBuilder) BuildUploadTarget() entities.UploadTarget {
	target := entities.NewUploadTarget(b.path, b.size)
	if b.url != "" {
		target = target.WithURL(b.url)
	}
	return target
}

// Reset clears the builder state, allowing it to be reused.
func (b *UploadTargetBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.path = filepath.Join("target", "rpm", "pkg-1.0.rpm")
	b.size = 1024
	b.url = ""
	return b
}

// Clone creates a deep copy of the UploadTargetBuilder.
func (b *UploadTargetBuilder) Clone() testkit.Builder {
	return &UploadTargetBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		path:        b.path,
		size:        b.size,
		url:         b.url,
	}
}
