package repositories

import (
	"context"

	"github.com/rios0rios0/rpmdeploy/internal/domain/entities"
)

// UploaderRepository abstracts an artifact repository accepting raw uploads.
type UploaderRepository interface {
	// Upload sends the file of a resolved target to target.URL.
	// A status refused by the repository is returned as a DeployResult, not as
	// an error; errors are reserved for transport failures
	// (entities.ErrConnection).
	Upload(
		ctx context.Context,
		target entities.UploadTarget,
		credentials entities.Credentials,
	) (entities.DeployResult, error)
}
