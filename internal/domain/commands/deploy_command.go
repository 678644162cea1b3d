package commands

import (
	"context"

	"github.com/inhies/go-bytesize"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/rpmdeploy/internal/domain/entities"
	"github.com/rios0rios0/rpmdeploy/internal/domain/repositories"
)

// Deploy is the interface for the deploy command.
type Deploy interface {
	Execute(ctx context.Context, settings *entities.Settings, opts DeployOptions) (*entities.DeploySummary, error)
}

// DeployOptions holds runtime options for a single deploy.
type DeployOptions struct {
	DryRun  bool // Resolve and log every target without uploading
	Verbose bool
}

// DeployCommand orchestrates the deploy flow:
// locate artifacts -> validate count -> per file: resolve URL, upload, log.
type DeployCommand struct {
	locator  repositories.LocatorRepository
	uploader repositories.UploaderRepository
}

// NewDeployCommand creates a new DeployCommand.
func NewDeployCommand(
	locator repositories.LocatorRepository,
	uploader repositories.UploaderRepository,
) *DeployCommand {
	return &DeployCommand{
		locator:  locator,
		uploader: uploader,
	}
}

// Execute uploads the artifacts one at a time. A resolve or transport failure
// stops the run at that file; a refused upload is logged and the run moves on.
func (it *DeployCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts DeployOptions,
) (*entities.DeploySummary, error) {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	targets, err := locateTargets(it.locator, settings)
	if err != nil {
		return nil, err
	}

	repository := settings.Repository()
	summary := &entities.DeploySummary{Found: len(targets), DryRun: opts.DryRun}

	for _, target := range targets {
		resolved, resolveErr := resolveTarget(target, repository, settings.Version)
		if resolveErr != nil {
			return summary, resolveErr
		}

		if opts.DryRun {
			continue
		}

		result, uploadErr := it.upload(ctx, resolved, repository.Credentials, settings)
		if uploadErr != nil {
			return summary, uploadErr
		}

		if !result.Succeeded() {
			logger.Errorf("Could not deploy %s, repository returned: %s", resolved.Path, result.StatusLine())
			summary.Rejected = append(summary.Rejected, entities.Rejection{Target: resolved, Result: result})
			continue
		}

		summary.Uploaded++
		logger.Infof("Deployed %s (%s) to %s", resolved.Name,
			bytesize.New(float64(resolved.Size)).String(), resolved.URL)
	}

	if opts.DryRun {
		logger.Infof("Dry run complete: %d RPM(s) would be deployed", summary.Found)
		return summary, nil
	}

	logger.Infof(
		"Deploy complete: %d RPM(s) found, %d deployed, %d rejected",
		summary.Found, summary.Uploaded, len(summary.Rejected),
	)

	if settings.FailOnRejection && len(summary.Rejected) > 0 {
		return summary, &entities.RemoteRejectionError{Rejections: summary.Rejected}
	}
	return summary, nil
}

// upload runs a single attempt, bounded by the configured timeout.
func (it *DeployCommand) upload(
	ctx context.Context,
	target entities.UploadTarget,
	credentials entities.Credentials,
	settings *entities.Settings,
) (entities.DeployResult, error) {
	if settings.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, settings.Timeout)
		defer cancel()
	}

	logger.Debugf("Start uploading %s to %s", target.Path, target.URL)
	return it.uploader.Upload(ctx, target, credentials)
}
