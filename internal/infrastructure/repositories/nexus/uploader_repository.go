package nexus

import (
	"context"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/hashicorp/go-cleanhttp"

	"github.com/rios0rios0/rpmdeploy/internal/domain/entities"
	"github.com/rios0rios0/rpmdeploy/internal/domain/repositories"
)

// UploaderRepository PUTs raw artifacts into a Nexus (or any WebDAV-like)
// hosted repository using basic authentication.
type UploaderRepository struct {
	httpClient *http.Client
}

var _ repositories.UploaderRepository = (*UploaderRepository)(nil)

// NewUploaderRepository creates an uploader backed by a pooled HTTP client.
// Timeouts are applied per upload through the request context.
func NewUploaderRepository() *UploaderRepository {
	return NewUploaderRepositoryWithClient(cleanhttp.DefaultPooledClient())
}

// NewUploaderRepositoryWithClient creates an uploader using httpClient.
func NewUploaderRepositoryWithClient(httpClient *http.Client) *UploaderRepository {
	return &UploaderRepository{httpClient: httpClient}
}

// Upload streams the file at target.Path as the body of a PUT to target.URL.
func (it *UploaderRepository) Upload(
	ctx context.Context,
	target entities.UploadTarget,
	credentials entities.Credentials,
) (entities.DeployResult, error) {
	file, err := os.Open(target.Path)
	if err != nil {
		return entities.DeployResult{}, entities.NewTransportError("open file", target, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return entities.DeployResult{}, entities.NewTransportError("stat file", target, err)
	}

	var body io.Reader = http.NoBody
	if info.Size() > 0 {
		body = file
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, target.URL, body)
	if err != nil {
		return entities.DeployResult{}, entities.NewTransportError("create request", target, err)
	}
	req.ContentLength = info.Size()
	req.SetBasicAuth(credentials.Username, credentials.Password)

	resp, err := it.httpClient.Do(req)
	if err != nil {
		return entities.DeployResult{}, entities.NewTransportError("send request", target, err)
	}
	defer resp.Body.Close()

	// drained so the pooled connection can be reused
	if _, err = io.Copy(io.Discard, resp.Body); err != nil {
		return entities.DeployResult{}, entities.NewTransportError("read response", target, err)
	}

	return entities.DeployResult{
		Code:    resp.StatusCode,
		Message: statusMessage(resp),
	}, nil
}

// statusMessage extracts the reason phrase from the response status line.
func statusMessage(resp *http.Response) string {
	message := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if message == "" {
		return http.StatusText(resp.StatusCode)
	}
	return message
}
