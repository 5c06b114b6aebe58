package volunteer

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
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

	return NewService(gdb), mock
}

func TestCreateAllocatesNextSequentialID(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO id_counters`).
		WithArgs(IDPrefix).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(42))
	mock.ExpectQuery(`INSERT INTO "volunteers"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
	mock.ExpectCommit()

	v, err := svc.Create(&CreateVolunteerRequest{Name: "Ravi Kumar"})
	require.NoError(t, err)

	assert.Equal(t, "VOL-0042", v.VolunteerID)
	assert.Equal(t, StatusPending, v.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateStartsSequenceOnEmptyTable(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO id_counters`).
		WithArgs(IDPrefix).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(1))
	mock.ExpectQuery(`INSERT INTO "volunteers"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	v, err := svc.Create(&CreateVolunteerRequest{Name: "Ravi Kumar"})
	require.NoError(t, err)

	assert.Equal(t, "VOL-0001", v.VolunteerID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRollsBackCounterOnInsertFailure(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO id_counters`).
		WithArgs(IDPrefix).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(7))
	mock.ExpectQuery(`INSERT INTO "volunteers"`).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	_, err := svc.Create(&CreateVolunteerRequest{Name: "Ravi Kumar"})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
