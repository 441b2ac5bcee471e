package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"glowbook-backend/config"
	"glowbook-backend/models"
	"glowbook-backend/utils"
)

// newBookingTestRouter stands up gin with mocked Postgres and Redis and
// an auth shim injecting the given identity.
func newBookingTestRouter(t *testing.T, userID uuid.UUID, role string) (*gin.Engine, sqlmock.Sqlmock, redismock.ClientMock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	mock.MatchExpectationsInOrder(false)

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	config.DB = gdb

	redisClient, redisMock := redismock.NewClientMock()
	InitScheduling(gdb, redisClient)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userId", userID.String())
		c.Set("role", role)
	})
	r.POST("/bookings", CreateBooking)
	r.PUT("/bookings/:id/reschedule", RescheduleBooking)

	return r, mock, redisMock
}

func TestCreateBooking_RejectsOccupiedSlot(t *testing.T) {
	customerID := uuid.New()
	serviceID := uuid.New()
	staffID := uuid.New()

	r, mock, redisMock := newBookingTestRouter(t, customerID, models.RoleCustomer)

	// service lookup
	mock.ExpectQuery(`SELECT \* FROM "services"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "is_active"}).
			AddRow(serviceID, "Deep Tissue Massage", 80.0, true))

	// staff lookup
	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "role", "is_active"}).
			AddRow(staffID, "Dana", models.RoleStaff, true))

	// slot lock granted, then the availability check finds booking A
	lockKey := fmt.Sprintf("slotlock:%s:2024-06-01:10:00", staffID)
	redisMock.ExpectSetNX(lockKey, "1", 15*time.Second).SetVal(true)
	redisMock.ExpectDel(lockKey).SetVal(1)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "bookings"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	body, _ := json.Marshal(gin.H{
		"serviceId": serviceID.String(),
		"staffId":   staffID.String(),
		"date":      "2024-06-01",
		"time":      "10:00",
	})
	req := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, utils.SlotConflictMessage, resp["error"])

	// no INSERT was expected or issued: the table stays unchanged
	assert.NoError(t, mock.ExpectationsWereMet())
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestCreateBooking_RejectsWhenSlotLockHeld(t *testing.T) {
	customerID := uuid.New()
	serviceID := uuid.New()
	staffID := uuid.New()

	r, mock, redisMock := newBookingTestRouter(t, customerID, models.RoleCustomer)

	mock.ExpectQuery(`SELECT \* FROM "services"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "is_active"}).
			AddRow(serviceID, "Hot Stone Massage", 95.0, true))
	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "role", "is_active"}).
			AddRow(staffID, "Dana", models.RoleStaff, true))

	// another request holds the lock for this slot
	lockKey := fmt.Sprintf("slotlock:%s:2024-06-01:10:00", staffID)
	redisMock.ExpectSetNX(lockKey, "1", 15*time.Second).SetVal(false)

	body, _ := json.Marshal(gin.H{
		"serviceId": serviceID.String(),
		"staffId":   staffID.String(),
		"date":      "2024-06-01",
		"time":      "10:00",
	})
	req := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBooking_ValidationBeforeAnyQuery(t *testing.T) {
	r, mock, _ := newBookingTestRouter(t, uuid.New(), models.RoleCustomer)

	body, _ := json.Marshal(gin.H{
		"serviceId": uuid.New().String(),
		"date":      "2024-06-01",
		"time":      "25:99",
	})
	req := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet(), "invalid input must be rejected before touching storage")
}

func TestRescheduleBooking_OwnSlotNoSelfConflict(t *testing.T) {
	customerID := uuid.New()
	bookingID := uuid.New()
	serviceID := uuid.New()
	staffID := uuid.New()

	r, mock, redisMock := newBookingTestRouter(t, customerID, models.RoleCustomer)

	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	// booking A, confirmed, plus its preloads
	mock.ExpectQuery(`SELECT \* FROM "bookings"`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "service_id", "customer_id", "staff_id",
			"scheduled_date", "scheduled_time", "status", "price",
		}).AddRow(bookingID, serviceID, customerID, staffID, date, "10:00", models.BookingConfirmed, 80.0))
	mock.ExpectQuery(`SELECT \* FROM "services"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(serviceID, "Deep Tissue Massage"))
	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(customerID, "Alex"))
	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(staffID, "Dana"))

	lockKey := fmt.Sprintf("slotlock:%s:2024-06-01:10:00", staffID)
	redisMock.ExpectSetNX(lockKey, "1", 15*time.Second).SetVal(true)
	redisMock.ExpectDel(lockKey).SetVal(1)

	// availability check excludes the booking itself and finds nothing
	mock.ExpectQuery(`SELECT count\(\*\) FROM "bookings" WHERE .*id <> \$`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "bookings" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	body, _ := json.Marshal(gin.H{"date": "2024-06-01", "time": "10:00"})
	req := httptest.NewRequest(http.MethodPut, "/bookings/"+bookingID.String()+"/reschedule", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	// a successful reschedule always re-opens the booking
	var resp models.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.BookingPending, resp.Status)

	assert.NoError(t, mock.ExpectationsWereMet())
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestRescheduleBooking_TerminalStateRejected(t *testing.T) {
	customerID := uuid.New()
	bookingID := uuid.New()

	r, mock, _ := newBookingTestRouter(t, customerID, models.RoleCustomer)

	mock.ExpectQuery(`SELECT \* FROM "bookings"`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "service_id", "customer_id", "scheduled_date", "scheduled_time", "status", "price",
		}).AddRow(bookingID, uuid.New(), customerID,
			time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), "10:00", models.BookingCompleted, 80.0))
	mock.ExpectQuery(`SELECT \* FROM "services"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	body, _ := json.Marshal(gin.H{"date": "2024-06-02", "time": "11:00"})
	req := httptest.NewRequest(http.MethodPut, "/bookings/"+bookingID.String()+"/reschedule", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
