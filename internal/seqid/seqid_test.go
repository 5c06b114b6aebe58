package seqid

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestAllocateStartsAtOne(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectQuery(`INSERT INTO id_counters`).
		WithArgs("VOL-").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(1))

	id, err := Allocate(db, "VOL-")
	require.NoError(t, err)
	assert.Equal(t, "VOL-0001", id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAllocateIncrementsCounter(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectQuery(`INSERT INTO id_counters`).
		WithArgs("EVT-").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(42))

	id, err := Allocate(db, "EVT-")
	require.NoError(t, err)
	assert.Equal(t, "EVT-0042", id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFormatPadding(t *testing.T) {
	assert.Equal(t, "VOL-0003", Format("VOL-", 3))
	assert.Equal(t, "VOL-9999", Format("VOL-", 9999))
	assert.Equal(t, "VOL-10000", Format("VOL-", 10000))
}
