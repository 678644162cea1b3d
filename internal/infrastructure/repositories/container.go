package repositories

import (
	domainRepos "github.com/rios0rios0/rpmdeploy/internal/domain/repositories"
	fsRepo "github.com/rios0rios0/rpmdeploy/internal/infrastructure/repositories/filesystem"
	nexusRepo "github.com/rios0rios0/rpmdeploy/internal/infrastructure/repositories/nexus"
	"go.uber.org/dig"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(func() domainRepos.LocatorRepository {
		return fsRepo.NewLocatorRepository()
	}); err != nil {
		return err
	}

	if err := container.Provide(func() domainRepos.UploaderRepository {
		return nexusRepo.NewUploaderRepository()
	}); err != nil {
		return err
	}

	return nil
}
