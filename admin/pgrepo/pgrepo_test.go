package pgrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/handlewall/backend/admin"
	"github.com/handlewall/backend/admin/pgrepo"
	"github.com/handlewall/backend/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPgAdminRepoFirstByUsername(t *testing.T) {
	repo := pgrepo.NewPgAdminRepo(testutil.NewPgPool(t))
	ctx := context.Background()

	missing, err := repo.FirstByUsername(ctx, "root")
	require.NoError(t, err)
	assert.Nil(t, missing)

	base := time.Now().UTC().Truncate(time.Microsecond)
	first := admin.Admin{UUID: uuid.New(), Username: "root", BcryptPwd: "hash-1", CreatedAt: base}
	second := admin.Admin{UUID: uuid.New(), Username: "root", BcryptPwd: "hash-2", CreatedAt: base.Add(time.Second)}
	other := admin.Admin{UUID: uuid.New(), Username: "other", BcryptPwd: "hash-3", CreatedAt: base}

	// inserted out of order on purpose
	require.NoError(t, repo.Insert(ctx, second))
	require.NoError(t, repo.Insert(ctx, other))
	require.NoError(t, repo.Insert(ctx, first))

	found, err := repo.FirstByUsername(ctx, "root")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, first.UUID, found.UUID)
	assert.Equal(t, "hash-1", found.BcryptPwd)
	assert.True(t, first.CreatedAt.Equal(found.CreatedAt))
}
