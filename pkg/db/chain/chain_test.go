package chain

import (
	"context"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockService(t *testing.T) (DBService, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)
	return NewDBServiceWithDB(db), mock
}

func TestListVisible(t *testing.T) {
	svc, mock := newMockService(t)

	rows := sqlmock.NewRows([]string{"id", "title", "owner_id", "shared"}).
		AddRow(2, "beta", nil, true).
		AddRow(1, "alpha", int64(7), false)
	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT * FROM "chains" WHERE (owner_id = $1 OR shared = $2 OR owner_id IS NULL) AND "chains"."deleted_at" IS NULL ORDER BY id DESC`)).
		WithArgs(7, true).
		WillReturnRows(rows)

	chains, err := svc.ListVisible(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, chains, 2)
	assert.Equal(t, "beta", chains[0].Title)
	assert.Nil(t, chains[0].OwnerID)
	require.NotNil(t, chains[1].OwnerID)
	assert.Equal(t, uint(7), *chains[1].OwnerID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListCoverRefs(t *testing.T) {
	svc, mock := newMockService(t)

	rows := sqlmock.NewRows([]string{"cover"}).
		AddRow("/assets/covers/1_1.png").
		AddRow("https://example.com/pic.png")
	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT "cover" FROM "chains" WHERE cover <> '' AND "chains"."deleted_at" IS NULL`)).
		WillReturnRows(rows)

	refs, err := svc.ListCoverRefs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"/assets/covers/1_1.png", "https://example.com/pic.png"}, refs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteIsSoft(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(
		`UPDATE "chains" SET "deleted_at"=$1 WHERE "chains"."id" = $2 AND "chains"."deleted_at" IS NULL`)).
		WithArgs(sqlmock.AnyArg(), 5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, svc.Delete(context.Background(), 5))
	assert.NoError(t, mock.ExpectationsWereMet())
}
