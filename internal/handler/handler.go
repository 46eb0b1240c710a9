package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/FleetBooker/internal/domain"
	"github.com/stpnv0/FleetBooker/internal/handler/dto"
	"github.com/stpnv0/FleetBooker/internal/service/ports"
	"github.com/wb-go/wbf/ginext"
)

type BookingSvc interface {
	Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error)
	Approve(ctx context.Context, id string) (*domain.Booking, error)
	Close(ctx context.Context, id string) (*domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListByCar(ctx context.Context, carID string) ([]*domain.Booking, error)
	ListByAccount(ctx context.Context, accountID string) ([]*domain.Booking, error)
}

type AvailabilitySvc interface {
	CheckAvailability(ctx context.Context, carID string, w domain.Window) (bool, error)
	ListAvailableCars(ctx context.Context, w domain.Window) ([]*domain.Car, error)
}

type CarSvc interface {
	Create(ctx context.Context, input domain.CreateCarInput) (*domain.Car, error)
	GetByID(ctx context.Context, id string) (*domain.Car, error)
	List(ctx context.Context) ([]*domain.Car, error)
}

type DriverSvc interface {
	Create(ctx context.Context, input domain.CreateDriverInput) (*domain.Driver, error)
	List(ctx context.Context) ([]*domain.Driver, error)
}

type AccountSvc interface {
	Create(ctx context.Context, input domain.CreateAccountInput) (*domain.Account, error)
	List(ctx context.Context) ([]*domain.Account, error)
}

type Handler struct {
	bookingService      BookingSvc
	availabilityService AvailabilitySvc
	carService          CarSvc
	driverService       DriverSvc
	accountService      AccountSvc
	clock               ports.Clock
}

func NewHandler(
	bookingService BookingSvc,
	availabilityService AvailabilitySvc,
	carService CarSvc,
	driverService DriverSvc,
	accountService AccountSvc,
	clock ports.Clock,
) *Handler {
	return &Handler{
		bookingService:      bookingService,
		availabilityService: availabilityService,
		carService:          carService,
		driverService:       driverService,
		accountService:      accountService,
		clock:               clock,
	}
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	startAt, err := time.Parse(time.RFC3339, req.StartAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid start_at format, expected RFC3339",
		})
		return
	}

	var endAt *time.Time
	if req.EndAt != nil {
		t, err := time.Parse(time.RFC3339, *req.EndAt)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid end_at format, expected RFC3339",
			})
			return
		}
		endAt = &t
	}

	input := domain.CreateBookingInput{
		CarID:     req.CarID,
		DriverID:  req.DriverID,
		AccountID: req.AccountID,
		GuestName: req.GuestName,
		StartAt:   startAt,
		EndAt:     endAt,
		Note:      req.Note,
	}

	booking, err := h.bookingService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking, h.clock.Now()))
}

func (h *Handler) GetBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	booking, err := h.bookingService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking, h.clock.Now()))
}

func (h *Handler) ApproveBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	booking, err := h.bookingService.Approve(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking, h.clock.Now()))
}

func (h *Handler) CloseBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	booking, err := h.bookingService.Close(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking, h.clock.Now()))
}

// Cars

func (h *Handler) CreateCar(c *ginext.Context) {
	var req dto.CreateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateCarInput{
		Name:     req.Name,
		Model:    req.Model,
		Plate:    req.Plate,
		IsActive: req.IsActive,
	}

	car, err := h.carService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCarResponse(car))
}

func (h *Handler) GetCar(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid car id"})
		return
	}

	car, err := h.carService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCarResponse(car))
}

func (h *Handler) ListCars(c *ginext.Context) {
	cars, err := h.carService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.CarResponse, 0, len(cars))
	for _, car := range cars {
		resp = append(resp, dto.ToCarResponse(car))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetCarBookings(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid car id"})
		return
	}

	bookings, err := h.bookingService.ListByCar(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.toBookingResponses(bookings))
}

// Availability

func (h *Handler) CheckCarAvailability(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid car id"})
		return
	}

	window, ok := h.parseWindow(c)
	if !ok {
		return
	}

	available, err := h.availabilityService.CheckAvailability(c.Request.Context(), id, window)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AvailabilityResponse{CarID: id, Available: available})
}

func (h *Handler) ListAvailableCars(c *ginext.Context) {
	window, ok := h.parseWindow(c)
	if !ok {
		return
	}

	cars, err := h.availabilityService.ListAvailableCars(c.Request.Context(), window)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.CarResponse, 0, len(cars))
	for _, car := range cars {
		resp = append(resp, dto.ToCarResponse(car))
	}

	c.JSON(http.StatusOK, resp)
}

// Drivers

func (h *Handler) CreateDriver(c *ginext.Context) {
	var req dto.CreateDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateDriverInput{
		Name:     req.Name,
		License:  req.License,
		IsActive: req.IsActive,
	}

	driver, err := h.driverService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToDriverResponse(driver))
}

func (h *Handler) ListDrivers(c *ginext.Context) {
	drivers, err := h.driverService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.DriverResponse, 0, len(drivers))
	for _, d := range drivers {
		resp = append(resp, dto.ToDriverResponse(d))
	}

	c.JSON(http.StatusOK, resp)
}

// Accounts

func (h *Handler) CreateAccount(c *ginext.Context) {
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateAccountInput{
		Username:       req.Username,
		TelegramChatID: req.TelegramChatID,
	}

	account, err := h.accountService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

func (h *Handler) ListAccounts(c *ginext.Context) {
	accounts, err := h.accountService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		resp = append(resp, dto.ToAccountResponse(a))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetAccountBookings(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid account id"})
		return
	}

	bookings, err := h.bookingService.ListByAccount(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.toBookingResponses(bookings))
}

// parseWindow reads the from/to query params. "from" is required, "to" is
// optional (absent means an unbounded window).
func (h *Handler) parseWindow(c *ginext.Context) (domain.Window, bool) {
	from := c.Query("from")
	if from == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "from query param is required"})
		return domain.Window{}, false
	}

	start, err := time.Parse(time.RFC3339, from)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid from format, expected RFC3339"})
		return domain.Window{}, false
	}

	var end *time.Time
	if to := c.Query("to"); to != "" {
		t, err := time.Parse(time.RFC3339, to)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid to format, expected RFC3339"})
			return domain.Window{}, false
		}
		end = &t
	}

	return domain.Window{Start: start, End: end}, true
}

func (h *Handler) toBookingResponses(bookings []*domain.Booking) []dto.BookingResponse {
	now := h.clock.Now()
	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b, now))
	}
	return resp
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrCarNotFound),
		errors.Is(err, domain.ErrDriverNotFound),
		errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrBookingConflict),
		errors.Is(err, domain.ErrAlreadyApproved),
		errors.Is(err, domain.ErrPlateTaken),
		errors.Is(err, domain.ErrUsernameTaken):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidWindow),
		errors.Is(err, domain.ErrInactiveRequester),
		errors.Is(err, domain.ErrInactiveCar),
		errors.Is(err, domain.ErrInactiveDriver):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
