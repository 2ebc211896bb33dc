package ddbrepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/guregu/dynamo/v2"
	"github.com/handlewall/backend/subm"
)

// SubmRow is the DynamoDB item of a submission.
type SubmRow struct {
	Uuid         string    `dynamo:"uuid,hash"` // Primary key
	Name         string    `dynamo:"name"`
	SocialHandle string    `dynamo:"social_handle"`
	Images       []string  `dynamo:"images"` // list, keeps upload order
	CreatedAt    time.Time `dynamo:"created_at"`
}

type DynamoDbSubmTable struct {
	table dynamo.Table
}

func NewDynamoDbSubmTable(db *dynamo.DB, tableName string) *DynamoDbSubmTable {
	return &DynamoDbSubmTable{table: db.Table(tableName)}
}

func (ddb *DynamoDbSubmTable) Insert(ctx context.Context, s subm.Subm) error {
	row := SubmRow{
		Uuid:         s.UUID.String(),
		Name:         s.Name,
		SocialHandle: s.SocialHandle,
		Images:       s.Images,
		CreatedAt:    s.CreatedAt,
	}
	err := ddb.table.Put(row).If("attribute_not_exists($)", "uuid").Run(ctx)
	if err != nil {
		return fmt.Errorf("failed to put submission: %w", err)
	}
	return nil
}

// List scans the whole table. Ordering is left to the service.
func (ddb *DynamoDbSubmTable) List(ctx context.Context) ([]subm.Subm, error) {
	var rows []SubmRow
	err := ddb.table.Scan().All(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to scan submissions: %w", err)
	}

	subms := make([]subm.Subm, 0, len(rows))
	for _, row := range rows {
		s, err := mapSubmRow(row)
		if err != nil {
			return nil, err
		}
		subms = append(subms, s)
	}
	return subms, nil
}

func mapSubmRow(row SubmRow) (subm.Subm, error) {
	id, err := uuid.Parse(row.Uuid)
	if err != nil {
		return subm.Subm{}, fmt.Errorf("invalid submission uuid %q: %w", row.Uuid, err)
	}
	images := row.Images
	if images == nil {
		images = []string{}
	}
	return subm.Subm{
		UUID:         id,
		Name:         row.Name,
		SocialHandle: row.SocialHandle,
		Images:       images,
		CreatedAt:    row.CreatedAt,
	}, nil
}
