package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/FleetBooker/internal/domain"
	"github.com/stpnv0/FleetBooker/internal/handler/dto"
	hmocks "github.com/stpnv0/FleetBooker/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

var handlerNow = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

type handlerMocks struct {
	booking      *hmocks.MockBookingSvc
	availability *hmocks.MockAvailabilitySvc
	car          *hmocks.MockCarSvc
	driver       *hmocks.MockDriverSvc
	account      *hmocks.MockAccountSvc
}

func setupRouter(t *testing.T) (*handlerMocks, http.Handler) {
	t.Helper()

	m := &handlerMocks{
		booking:      hmocks.NewMockBookingSvc(t),
		availability: hmocks.NewMockAvailabilitySvc(t),
		car:          hmocks.NewMockCarSvc(t),
		driver:       hmocks.NewMockDriverSvc(t),
		account:      hmocks.NewMockAccountSvc(t),
	}

	h := NewHandler(m.booking, m.availability, m.car, m.driver, m.account, fixedClock{t: handlerNow})

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/cars", h.CreateCar)
		api.GET("/cars", h.ListCars)
		api.GET("/cars/:id", h.GetCar)
		api.GET("/cars/:id/bookings", h.GetCarBookings)
		api.GET("/cars/:id/availability", h.CheckCarAvailability)
		api.GET("/availability", h.ListAvailableCars)
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings/:id", h.GetBooking)
		api.POST("/bookings/:id/approve", h.ApproveBooking)
		api.POST("/bookings/:id/close", h.CloseBooking)
		api.POST("/drivers", h.CreateDriver)
		api.GET("/drivers", h.ListDrivers)
		api.POST("/accounts", h.CreateAccount)
		api.GET("/accounts", h.ListAccounts)
		api.GET("/accounts/:id/bookings", h.GetAccountBookings)
	}

	return m, r
}

// --- Bookings ---

func TestHandler_CreateBooking_Success(t *testing.T) {
	m, r := setupRouter(t)

	carID := uuid.New().String()
	guest := "Bob"
	booking := &domain.Booking{
		ID:        uuid.New().String(),
		CarID:     carID,
		GuestName: &guest,
		StartAt:   handlerNow.Add(time.Hour),
		CreatedAt: handlerNow,
	}

	m.booking.EXPECT().Create(mock.Anything, mock.Anything).Return(booking, nil)

	body, _ := json.Marshal(dto.CreateBookingRequest{
		CarID:     carID,
		GuestName: &guest,
		StartAt:   handlerNow.Add(time.Hour).Format(time.RFC3339),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "upcoming", resp.Status)
	assert.False(t, resp.Approved)
}

func TestHandler_CreateBooking_MissingStart(t *testing.T) {
	_, r := setupRouter(t)

	body := []byte(`{"car_id":"` + uuid.New().String() + `","guest_name":"Bob"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateBooking_InvalidStart(t *testing.T) {
	_, r := setupRouter(t)

	body := []byte(`{"car_id":"` + uuid.New().String() + `","guest_name":"Bob","start_at":"not-a-date"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateBooking_Conflict(t *testing.T) {
	m, r := setupRouter(t)

	carID := uuid.New().String()
	guest := "Bob"

	m.booking.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrBookingConflict)

	body, _ := json.Marshal(dto.CreateBookingRequest{
		CarID:     carID,
		GuestName: &guest,
		StartAt:   handlerNow.Format(time.RFC3339),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CreateBooking_InactiveRequester(t *testing.T) {
	m, r := setupRouter(t)

	carID := uuid.New().String()
	accountID := uuid.New().String()

	m.booking.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrInactiveRequester)

	body, _ := json.Marshal(dto.CreateBookingRequest{
		CarID:     carID,
		AccountID: &accountID,
		StartAt:   handlerNow.Format(time.RFC3339),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetBooking_Success(t *testing.T) {
	m, r := setupRouter(t)

	bookingID := uuid.New().String()
	guest := "Bob"
	endAt := handlerNow.Add(-time.Hour)
	booking := &domain.Booking{
		ID:        bookingID,
		CarID:     uuid.New().String(),
		GuestName: &guest,
		StartAt:   handlerNow.Add(-3 * time.Hour),
		EndAt:     &endAt,
		Approved:  true,
		CreatedAt: handlerNow.Add(-4 * time.Hour),
	}

	m.booking.EXPECT().GetByID(mock.Anything, bookingID).Return(booking, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/"+bookingID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "completed", resp.Status)
}

func TestHandler_GetBooking_InvalidID(t *testing.T) {
	_, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/not-a-uuid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetBooking_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	bookingID := uuid.New().String()
	m.booking.EXPECT().GetByID(mock.Anything, bookingID).Return(nil, domain.ErrBookingNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/"+bookingID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ApproveBooking_Success(t *testing.T) {
	m, r := setupRouter(t)

	bookingID := uuid.New().String()
	guest := "Bob"
	booking := &domain.Booking{
		ID:        bookingID,
		CarID:     uuid.New().String(),
		GuestName: &guest,
		StartAt:   handlerNow.Add(time.Hour),
		Approved:  true,
		CreatedAt: handlerNow,
	}

	m.booking.EXPECT().Approve(mock.Anything, bookingID).Return(booking, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+bookingID+"/approve", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Approved)
}

func TestHandler_ApproveBooking_AlreadyApproved(t *testing.T) {
	m, r := setupRouter(t)

	bookingID := uuid.New().String()
	m.booking.EXPECT().Approve(mock.Anything, bookingID).Return(nil, domain.ErrAlreadyApproved)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+bookingID+"/approve", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ApproveBooking_Conflict(t *testing.T) {
	m, r := setupRouter(t)

	bookingID := uuid.New().String()
	m.booking.EXPECT().Approve(mock.Anything, bookingID).Return(nil, domain.ErrBookingConflict)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+bookingID+"/approve", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CloseBooking_Success(t *testing.T) {
	m, r := setupRouter(t)

	bookingID := uuid.New().String()
	guest := "Bob"
	closed := &domain.Booking{
		ID:        bookingID,
		CarID:     uuid.New().String(),
		GuestName: &guest,
		StartAt:   handlerNow.Add(-2 * time.Hour),
		EndAt:     &handlerNow,
		Approved:  true,
		CreatedAt: handlerNow.Add(-3 * time.Hour),
	}

	m.booking.EXPECT().Close(mock.Anything, bookingID).Return(closed, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+bookingID+"/close", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "completed", resp.Status)
	require.NotNil(t, resp.EndAt)
}

// --- Availability ---

func TestHandler_CheckCarAvailability_Free(t *testing.T) {
	m, r := setupRouter(t)

	carID := uuid.New().String()
	m.availability.EXPECT().CheckAvailability(mock.Anything, carID, mock.Anything).Return(true, nil)

	q := url.Values{}
	q.Set("from", handlerNow.Format(time.RFC3339))
	q.Set("to", handlerNow.Add(2*time.Hour).Format(time.RFC3339))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/cars/"+carID+"/availability?"+q.Encode(), nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.AvailabilityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, carID, resp.CarID)
	assert.True(t, resp.Available)
}

func TestHandler_CheckCarAvailability_OpenWindow(t *testing.T) {
	m, r := setupRouter(t)

	carID := uuid.New().String()
	m.availability.EXPECT().CheckAvailability(mock.Anything, carID, mock.Anything).Return(false, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/cars/"+carID+"/availability?from="+url.QueryEscape(handlerNow.Format(time.RFC3339)), nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.AvailabilityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Available)
}

func TestHandler_CheckCarAvailability_MissingFrom(t *testing.T) {
	_, r := setupRouter(t)

	carID := uuid.New().String()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/cars/"+carID+"/availability", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CheckCarAvailability_InvalidFrom(t *testing.T) {
	_, r := setupRouter(t)

	carID := uuid.New().String()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/cars/"+carID+"/availability?from=not-a-date", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListAvailableCars_Success(t *testing.T) {
	m, r := setupRouter(t)

	cars := []*domain.Car{
		{ID: uuid.New().String(), Name: "Van 1", Plate: "A001AA", IsActive: true, CreatedAt: handlerNow},
		{ID: uuid.New().String(), Name: "Van 2", Plate: "A002AA", IsActive: true, CreatedAt: handlerNow},
	}
	m.availability.EXPECT().ListAvailableCars(mock.Anything, mock.Anything).Return(cars, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/availability?from="+url.QueryEscape(handlerNow.Format(time.RFC3339)), nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.CarResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestHandler_ListAvailableCars_InvalidWindow(t *testing.T) {
	m, r := setupRouter(t)

	m.availability.EXPECT().ListAvailableCars(mock.Anything, mock.Anything).Return(nil, domain.ErrInvalidWindow)

	q := url.Values{}
	q.Set("from", handlerNow.Format(time.RFC3339))
	q.Set("to", handlerNow.Add(-time.Hour).Format(time.RFC3339))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/availability?"+q.Encode(), nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Cars ---

func TestHandler_CreateCar_Success(t *testing.T) {
	m, r := setupRouter(t)

	car := &domain.Car{
		ID:        uuid.New().String(),
		Name:      "Van 1",
		Model:     "Transit",
		Plate:     "A001AA",
		IsActive:  true,
		CreatedAt: handlerNow,
	}
	m.car.EXPECT().Create(mock.Anything, mock.Anything).Return(car, nil)

	body, _ := json.Marshal(dto.CreateCarRequest{Name: "Van 1", Model: "Transit", Plate: "A001AA"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/cars", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.CarResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Van 1", resp.Name)
}

func TestHandler_CreateCar_BadRequest(t *testing.T) {
	_, r := setupRouter(t)

	body := []byte(`{"name":""}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/cars", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateCar_PlateTaken(t *testing.T) {
	m, r := setupRouter(t)

	m.car.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrPlateTaken)

	body, _ := json.Marshal(dto.CreateCarRequest{Name: "Van 1", Plate: "A001AA"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/cars", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_GetCar_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	carID := uuid.New().String()
	m.car.EXPECT().GetByID(mock.Anything, carID).Return(nil, domain.ErrCarNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/cars/"+carID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetCarBookings_Success(t *testing.T) {
	m, r := setupRouter(t)

	carID := uuid.New().String()
	guest := "Bob"
	bookings := []*domain.Booking{
		{ID: uuid.New().String(), CarID: carID, GuestName: &guest, StartAt: handlerNow.Add(-time.Hour), CreatedAt: handlerNow},
	}

	m.booking.EXPECT().ListByCar(mock.Anything, carID).Return(bookings, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/cars/"+carID+"/bookings", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "active", resp[0].Status)
}

// --- Drivers ---

func TestHandler_CreateDriver_Success(t *testing.T) {
	m, r := setupRouter(t)

	driver := &domain.Driver{
		ID:        uuid.New().String(),
		Name:      "Ivan",
		License:   "7700 123456",
		IsActive:  true,
		CreatedAt: handlerNow,
	}
	m.driver.EXPECT().Create(mock.Anything, mock.Anything).Return(driver, nil)

	body, _ := json.Marshal(dto.CreateDriverRequest{Name: "Ivan", License: "7700 123456"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/drivers", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.DriverResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Ivan", resp.Name)
}

func TestHandler_ListDrivers_Success(t *testing.T) {
	m, r := setupRouter(t)

	drivers := []*domain.Driver{
		{ID: uuid.New().String(), Name: "Ivan", IsActive: true, CreatedAt: handlerNow},
	}
	m.driver.EXPECT().List(mock.Anything).Return(drivers, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/drivers", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.DriverResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

// --- Accounts ---

func TestHandler_CreateAccount_Success(t *testing.T) {
	m, r := setupRouter(t)

	account := &domain.Account{
		ID:        uuid.New().String(),
		Username:  "alice",
		IsActive:  true,
		CreatedAt: handlerNow,
	}
	m.account.EXPECT().Create(mock.Anything, mock.Anything).Return(account, nil)

	body, _ := json.Marshal(dto.CreateAccountRequest{Username: "alice"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/accounts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.AccountResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.Username)
}

func TestHandler_CreateAccount_UsernameTaken(t *testing.T) {
	m, r := setupRouter(t)

	m.account.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrUsernameTaken)

	body, _ := json.Marshal(dto.CreateAccountRequest{Username: "taken"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/accounts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_GetAccountBookings_InvalidID(t *testing.T) {
	_, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/accounts/bad-id/bookings", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_HandleError_InternalError(t *testing.T) {
	m, r := setupRouter(t)

	bookingID := uuid.New().String()
	m.booking.EXPECT().GetByID(mock.Anything, bookingID).Return(nil, assert.AnError)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/"+bookingID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
