package elibrary

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/seva-foundation/temple-backend/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestService(t *testing.T) (*Service, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return NewService(gdb, nil), mock
}

func TestListExcludesInactiveByDefault(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "elibrary" WHERE is_active = \$1`).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT \* FROM "elibrary" WHERE is_active = \$1`).
		WithArgs(true, 10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "is_active"}).
			AddRow(1, "Bhagavata Purana", true))

	resp, err := svc.List(1, 10, "", "", "", "", false)
	require.NoError(t, err)

	assert.Len(t, resp.Entries, 1)
	pagination, ok := resp.Pagination.(dto.Pagination)
	require.True(t, ok)
	assert.EqualValues(t, 1, pagination.TotalItems)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListIncludesInactiveWhenRequested(t *testing.T) {
	svc, mock := newTestService(t)

	// No is_active predicate, so both rows come back.
	mock.ExpectQuery(`SELECT count\(\*\) FROM "elibrary"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(`SELECT \* FROM "elibrary" ORDER BY`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "is_active"}).
			AddRow(1, "Bhagavata Purana", true).
			AddRow(2, "Rigveda", false))

	resp, err := svc.List(1, 10, "", "", "", "", true)
	require.NoError(t, err)

	assert.Len(t, resp.Entries, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetReturnsInactiveEntry(t *testing.T) {
	svc, mock := newTestService(t)

	// Direct ID lookup does not filter on is_active: a soft-deleted entry
	// stays reachable.
	mock.ExpectQuery(`SELECT \* FROM "elibrary" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "is_active"}).
			AddRow(2, "Rigveda", false))

	e, err := svc.Get(2)
	require.NoError(t, err)

	assert.False(t, e.IsActive)
	assert.Equal(t, "Rigveda", e.Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}
