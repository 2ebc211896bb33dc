package ddbrepo

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/guregu/dynamo/v2"
	"github.com/handlewall/backend/admin"
)

// AdminRow is the DynamoDB item of an admin.
type AdminRow struct {
	Uuid      string    `dynamo:"uuid,hash"` // Primary key
	Username  string    `dynamo:"username"`
	BcryptPwd string    `dynamo:"bcrypt_pwd"`
	CreatedAt time.Time `dynamo:"created_at"`
}

type DynamoDbAdminTable struct {
	table dynamo.Table
}

func NewDynamoDbAdminTable(db *dynamo.DB, tableName string) *DynamoDbAdminTable {
	return &DynamoDbAdminTable{table: db.Table(tableName)}
}

func (ddb *DynamoDbAdminTable) Insert(ctx context.Context, a admin.Admin) error {
	row := AdminRow{
		Uuid:      a.UUID.String(),
		Username:  a.Username,
		BcryptPwd: a.BcryptPwd,
		CreatedAt: a.CreatedAt,
	}
	err := ddb.table.Put(row).If("attribute_not_exists($)", "uuid").Run(ctx)
	if err != nil {
		return fmt.Errorf("failed to put admin: %w", err)
	}
	return nil
}

// FirstByUsername scans the table, DynamoDB returns items in no particular
// order so the earliest created_at is picked here.
func (ddb *DynamoDbAdminTable) FirstByUsername(ctx context.Context, username string) (*admin.Admin, error) {
	var rows []AdminRow
	err := ddb.table.Scan().Filter("$ = ?", "username", username).All(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to scan admins: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	first := pickFirst(rows)
	id, err := uuid.Parse(first.Uuid)
	if err != nil {
		return nil, fmt.Errorf("invalid admin uuid %q: %w", first.Uuid, err)
	}
	return &admin.Admin{
		UUID:      id,
		Username:  first.Username,
		BcryptPwd: first.BcryptPwd,
		CreatedAt: first.CreatedAt,
	}, nil
}

func pickFirst(rows []AdminRow) AdminRow {
	return slices.MinFunc(rows, func(a, b AdminRow) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.Uuid, b.Uuid)
	})
}
