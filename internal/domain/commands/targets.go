package commands

import (
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/rpmdeploy/internal/domain/entities"
	"github.com/rios0rios0/rpmdeploy/internal/domain/repositories"
)

// locateTargets finds the artifacts of the build and checks their count
// against the expectation. Nothing is returned unless the count matches.
func locateTargets(
	locator repositories.LocatorRepository,
	settings *entities.Settings,
) ([]entities.UploadTarget, error) {
	root := settings.ArtifactDirectory()

	targets, err := locator.Locate(root, settings.Pattern)
	if err != nil {
		return nil, err
	}

	if len(targets) != settings.ExpectedNumberOfRpms {
		return nil, entities.NewCountMismatchError(root, settings.ExpectedNumberOfRpms, entities.Paths(targets))
	}

	logger.Infof("Found the following RPM(s): %v", entities.Paths(targets))
	return targets, nil
}

// resolveTarget sets the upload URL of target for the project version.
func resolveTarget(
	target entities.UploadTarget,
	repository entities.RepositoryConfig,
	version string,
) (entities.UploadTarget, error) {
	uploadURL, err := repository.ResolveUploadURL(target.Name, version)
	if err != nil {
		return target, err
	}

	logger.Infof("%s -> %s", target.Name, uploadURL)
	return target.WithURL(uploadURL), nil
}
