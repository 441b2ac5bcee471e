package scheduling

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockedStore(t *testing.T) (*GormStore, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return NewGormStore(gdb), mock
}

func TestGormStoreCountActive(t *testing.T) {
	store, mock := newMockedStore(t)

	staffID := uuid.New()
	date := time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "bookings"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	count, err := store.CountActive(context.Background(), staffID, date, "10:00", nil)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStoreCountActive_ExcludesBooking(t *testing.T) {
	store, mock := newMockedStore(t)

	staffID := uuid.New()
	excludeID := uuid.New()
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	// the exclusion predicate must reach the SQL
	mock.ExpectQuery(`SELECT count\(\*\) FROM "bookings" WHERE .*id <> \$`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	count, err := store.CountActive(context.Background(), staffID, date, "10:00", &excludeID)
	assert.NoError(t, err)
	assert.Zero(t, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStoreBookedTimes(t *testing.T) {
	store, mock := newMockedStore(t)

	staffID := uuid.New()
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT "scheduled_time" FROM "bookings"`).
		WillReturnRows(sqlmock.NewRows([]string{"scheduled_time"}).
			AddRow("10:00").
			AddRow("14:30"))

	times, err := store.BookedTimes(context.Background(), staffID, date)
	assert.NoError(t, err)
	assert.Equal(t, []string{"10:00", "14:30"}, times)
	assert.NoError(t, mock.ExpectationsWereMet())
}
