//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/rpmdeploy/internal/domain/entities"
	"github.com/rios0rios0/rpmdeploy/internal/domain/repositories"
)

// StubLocatorRepository implements repositories.LocatorRepository with canned results.
type StubLocatorRepository struct {
	// --- Locate ---
	Targets   []entities.UploadTarget
	LocateErr error
	// spy: roots and patterns requested
	LocatedRoots    []string
	LocatedPatterns []string
}

var _ repositories.LocatorRepository = (*StubLocatorRepository)(nil)

func (s *StubLocatorRepository) Locate(root, pattern string) ([]entities.UploadTarget, error) {
	s.LocatedRoots = append(s.LocatedRoots, root)
	s.LocatedPatterns = append(s.LocatedPatterns, pattern)
	if s.LocateErr != nil {
		return nil, s.LocateErr
	}
	return s.Targets, nil
}
