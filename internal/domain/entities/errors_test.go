//go:build unit

package entities_test

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/rpmdeploy/internal/domain/entities"
)

func TestPreconditionError(t *testing.T) {
	t.Parallel()

	t.Run("should name expected and found counts and the files on mismatch", func(t *testing.T) {
		t.Parallel()

		// given
		files := []string{"target/rpm/a.rpm", "target/rpm/b.rpm"}

		// when
		err := entities.NewCountMismatchError("target/rpm", 1, files)

		// then
		assert.ErrorIs(t, err, entities.ErrCountMismatch)
		assert.NotErrorIs(t, err, entities.ErrMissingDirectory)
		assert.Contains(t, err.Error(), "expected 1 RPMs and found 2")
		assert.Contains(t, err.Error(), "target/rpm/a.rpm")
		assert.Contains(t, err.Error(), "target/rpm/b.rpm")
	})

	t.Run("should keep the cause of a missing directory", func(t *testing.T) {
		t.Parallel()

		// given
		cause := fs.ErrNotExist

		// when
		err := entities.NewMissingDirectoryError("target/rpm", cause)

		// then
		assert.ErrorIs(t, err, entities.ErrMissingDirectory)
		assert.ErrorIs(t, err, fs.ErrNotExist)
		assert.Equal(t, "no directory found at target/rpm", err.Error())
	})

	t.Run("should report scan errors with the cause", func(t *testing.T) {
		t.Parallel()

		// given
		cause := fs.ErrPermission

		// when
		err := entities.NewScanError("target/rpm", cause)

		// then
		assert.ErrorIs(t, err, entities.ErrScan)
		assert.ErrorIs(t, err, fs.ErrPermission)
		assert.Contains(t, err.Error(), "error searching for RPM files")
	})
}

func TestTransportError(t *testing.T) {
	t.Parallel()

	t.Run("should include the file and URL and unwrap the cause", func(t *testing.T) {
		t.Parallel()

		// given
		cause := errors.New("connection refused")
		target := entities.NewUploadTarget("target/rpm/pkg.rpm", 1).WithURL("http://nexus/repo/pkg.rpm")

		// when
		err := entities.NewTransportError("send request", target, cause)

		// then
		assert.ErrorIs(t, err, entities.ErrConnection)
		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "target/rpm/pkg.rpm")
		assert.Contains(t, err.Error(), "http://nexus/repo/pkg.rpm")
	})
}

func TestRemoteRejectionError(t *testing.T) {
	t.Parallel()

	t.Run("should list every rejected file with its status", func(t *testing.T) {
		t.Parallel()

		// given
		err := &entities.RemoteRejectionError{Rejections: []entities.Rejection{
			{
				Target: entities.NewUploadTarget("a.rpm", 1),
				Result: entities.DeployResult{Code: 400, Message: "Bad Request"},
			},
			{
				Target: entities.NewUploadTarget("b.rpm", 1),
				Result: entities.DeployResult{Code: 401, Message: "Unauthorized"},
			},
		}}

		// when
		message := err.Error()

		// then
		assert.ErrorIs(t, err, entities.ErrRemoteRejection)
		assert.Contains(t, message, "2 upload(s) rejected")
		assert.Contains(t, message, "a.rpm (400 Bad Request)")
		assert.Contains(t, message, "b.rpm (401 Unauthorized)")
	})
}
