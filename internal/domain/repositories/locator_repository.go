package repositories

import "github.com/rios0rios0/rpmdeploy/internal/domain/entities"

// LocatorRepository finds the artifacts a build left on disk.
type LocatorRepository interface {
	// Locate walks root recursively and returns every regular file whose base
	// name matches pattern, in a deterministic order.
	// It fails with entities.ErrMissingDirectory when root is not a directory
	// and with entities.ErrScan when the walk cannot complete.
	Locate(root, pattern string) ([]entities.UploadTarget, error)
}
