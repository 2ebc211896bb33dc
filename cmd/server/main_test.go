package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/handlewall/backend/conf"
	"github.com/handlewall/backend/filestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunReturnsConfigErrors(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	err := run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestNewReposMemory(t *testing.T) {
	adminRepo, submRepo, closeStore, err := newRepos(context.Background(), &conf.Config{
		StoreBackend: conf.StoreBackendMemory,
	})
	require.NoError(t, err)
	assert.NotNil(t, adminRepo)
	assert.NotNil(t, submRepo)
	closeStore()
}

func TestNewFileBackendLocal(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	backend, err := newFileBackend(context.Background(), &conf.Config{
		FileBackend: conf.FileBackendLocal,
		UploadDir:   dir,
	})
	require.NoError(t, err)
	assert.IsType(t, &filestore.LocalDir{}, backend)
	assert.DirExists(t, dir)
}
