package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/gobwas/glob"

	"github.com/rios0rios0/rpmdeploy/internal/domain/entities"
	"github.com/rios0rios0/rpmdeploy/internal/domain/repositories"
)

// LocatorRepository finds artifacts on the local filesystem.
type LocatorRepository struct{}

var _ repositories.LocatorRepository = (*LocatorRepository)(nil)

// NewLocatorRepository creates a new filesystem LocatorRepository.
func NewLocatorRepository() *LocatorRepository {
	return &LocatorRepository{}
}

// Locate walks root and collects regular files whose base name matches
// pattern. Symbolic links are followed for the file check only; linked
// directories are not descended into. Results are sorted by path.
func (it *LocatorRepository) Locate(root, pattern string) ([]entities.UploadTarget, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, entities.NewMissingDirectoryError(root, err)
	}
	if !info.IsDir() {
		return nil, entities.NewMissingDirectoryError(root, nil)
	}

	matcher, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid file pattern %q: %w", pattern, err)
	}

	var targets []entities.UploadTarget
	walkErr := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !matcher.Match(entry.Name()) {
			return nil
		}

		fileInfo, statErr := regularFileInfo(path, entry)
		if statErr != nil {
			return statErr
		}
		if fileInfo == nil {
			return nil
		}

		targets = append(targets, entities.NewUploadTarget(path, fileInfo.Size()))
		return nil
	})
	if walkErr != nil {
		return nil, entities.NewScanError(root, walkErr)
	}

	sort.Slice(targets, func(i, j int) bool {
		return targets[i].Path < targets[j].Path
	})
	return targets, nil
}

// regularFileInfo returns the info of path when it is, or links to, a regular
// file, and nil otherwise. Dangling links are skipped.
func regularFileInfo(path string, entry fs.DirEntry) (fs.FileInfo, error) {
	if entry.Type()&fs.ModeSymlink == 0 {
		if !entry.Type().IsRegular() {
			return nil, nil
		}
		return entry.Info()
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	if !info.Mode().IsRegular() {
		return nil, nil
	}
	return info, nil
}
