package entities

import (
	"net/url"
	"strings"
)

// SnapshotMarker is the substring that flags a version as a snapshot.
const SnapshotMarker = "SNAPSHOT"

// Credentials holds the basic-auth account used to deploy.
type Credentials struct {
	Username string
	Password string
}

// RepositoryConfig describes where artifacts are uploaded to.
// SnapshotURL is optional; when empty, snapshots go to ReleaseURL.
type RepositoryConfig struct {
	ReleaseURL  string
	SnapshotURL string
	Credentials Credentials
}

// IsSnapshot reports whether version carries the snapshot marker.
func IsSnapshot(version string) bool {
	return strings.Contains(version, SnapshotMarker)
}

// BaseURL picks the repository base URL for the given project version.
func (c RepositoryConfig) BaseURL(version string) string {
	if IsSnapshot(version) && c.SnapshotURL != "" {
		return c.SnapshotURL
	}
	return c.ReleaseURL
}

// ResolveUploadURL appends fileName to the base URL selected for version.
func (c RepositoryConfig) ResolveUploadURL(fileName, version string) (string, error) {
	uploadURL := appendSlash(c.BaseURL(version)) + fileName

	parsed, err := url.Parse(uploadURL)
	if err != nil {
		return "", NewResolveError(uploadURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return "", NewResolveError(uploadURL, nil)
	}
	return uploadURL, nil
}

// appendSlash makes s end with exactly one path separator.
func appendSlash(s string) string {
	return strings.TrimRight(s, "/") + "/"
}
