//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/rpmdeploy/internal/domain/entities"
	"github.com/rios0rios0/rpmdeploy/internal/domain/repositories"
)

// SpyUploaderRepository implements repositories.UploaderRepository as a configurable spy.
// Responses are consumed in call order; once exhausted, DefaultResult is returned.
type SpyUploaderRepository struct {
	// --- Upload ---
	Responses     []UploadResponse
	DefaultResult entities.DeployResult
	// spy: every call received
	Calls []UploadCall
}

// UploadResponse is the canned outcome of a single Upload call.
type UploadResponse struct {
	Result entities.DeployResult
	Err    error
}

// UploadCall records a single invocation of Upload.
type UploadCall struct {
	Target      entities.UploadTarget
	Credentials entities.Credentials
	HasDeadline bool
}

var _ repositories.UploaderRepository = (*SpyUploaderRepository)(nil)

func (u *SpyUploaderRepository) Upload(
	ctx context.Context,
	target entities.UploadTarget,
	credentials entities.Credentials,
) (entities.DeployResult, error) {
	_, hasDeadline := ctx.Deadline()
	u.Calls = append(u.Calls, UploadCall{Target: target, Credentials: credentials, HasDeadline: hasDeadline})

	index := len(u.Calls) - 1
	if index < len(u.Responses) {
		response := u.Responses[index]
		return response.Result, response.Err
	}
	return u.DefaultResult, nil
}

// UploadedURLs returns the URLs of every call, in order.
func (u *SpyUploaderRepository) UploadedURLs() []string {
	urls := make([]string, 0, len(u.Calls))
	for _, call := range u.Calls {
		urls = append(urls, call.Target.URL)
	}
	return urls
}
