package ddbrepo

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/handlewall/backend/conf"
	"github.com/handlewall/backend/subm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapSubmRow(t *testing.T) {
	id := uuid.New()
	s, err := mapSubmRow(SubmRow{Uuid: id.String(), Name: "Ann"})
	require.NoError(t, err)
	assert.Equal(t, id, s.UUID)
	assert.NotNil(t, s.Images)

	_, err = mapSubmRow(SubmRow{Uuid: "not-a-uuid"})
	assert.Error(t, err)
}

// Runs against DynamoDB Local when DYNAMODB_TEST_ENDPOINT is set.
func TestDynamoDbSubmTable(t *testing.T) {
	endpoint := os.Getenv("DYNAMODB_TEST_ENDPOINT")
	if endpoint == "" {
		t.Skip("DYNAMODB_TEST_ENDPOINT not set, skipping dynamodb test")
	}
	ctx := context.Background()

	db, err := conf.NewDynamoDb(ctx, "eu-central-1", endpoint)
	require.NoError(t, err)

	tableName := "submissions-test-" + uuid.NewString()
	require.NoError(t, db.CreateTable(tableName, SubmRow{}).Run(ctx))
	t.Cleanup(func() {
		_ = db.Table(tableName).DeleteTable().Run(context.Background())
	})

	repo := NewDynamoDbSubmTable(db, tableName)

	s := subm.Subm{
		UUID:         uuid.New(),
		Name:         "Ann",
		SocialHandle: "ann",
		Images:       []string{"uploads/b.png", "uploads/a.png"},
		CreatedAt:    time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, repo.Insert(ctx, s))
	require.Error(t, repo.Insert(ctx, s), "uuid must not be overwritten")

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, s.Images, list[0].Images)
	assert.True(t, s.CreatedAt.Equal(list[0].CreatedAt))
}
