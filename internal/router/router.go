package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateBooking(c *ginext.Context)
	GetBooking(c *ginext.Context)
	ApproveBooking(c *ginext.Context)
	CloseBooking(c *ginext.Context)
	CreateCar(c *ginext.Context)
	GetCar(c *ginext.Context)
	ListCars(c *ginext.Context)
	GetCarBookings(c *ginext.Context)
	CheckCarAvailability(c *ginext.Context)
	ListAvailableCars(c *ginext.Context)
	CreateDriver(c *ginext.Context)
	ListDrivers(c *ginext.Context)
	CreateAccount(c *ginext.Context)
	ListAccounts(c *ginext.Context)
	GetAccountBookings(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Cars
		api.POST("/cars", h.CreateCar)
		api.GET("/cars", h.ListCars)
		api.GET("/cars/:id", h.GetCar)
		api.GET("/cars/:id/bookings", h.GetCarBookings)
		api.GET("/cars/:id/availability", h.CheckCarAvailability)

		// Availability listing
		api.GET("/availability", h.ListAvailableCars)

		// Bookings
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings/:id", h.GetBooking)
		api.POST("/bookings/:id/approve", h.ApproveBooking)
		api.POST("/bookings/:id/close", h.CloseBooking)

		// Drivers
		api.POST("/drivers", h.CreateDriver)
		api.GET("/drivers", h.ListDrivers)

		// Accounts
		api.POST("/accounts", h.CreateAccount)
		api.GET("/accounts", h.ListAccounts)
		api.GET("/accounts/:id/bookings", h.GetAccountBookings)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
