package api

import (
	"net/http"
	"sdb-client/internal/api/handlers"
	"sdb-client/internal/stub"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// NewRouter wires the stub backend's handlers and returns the echo instance,
// which is also an http.Handler.
// Routes mirror the hosted backend under /api/v1 so the client can target
// either one by changing its base URL.
func NewRouter(store *stub.MemoryStore, jwtSecret string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(requestLogger())

	h := handlers.NewHandler(store, jwtSecret)

	e.GET("/health", handlers.Health)

	v1 := e.Group("/api/v1")
	{
		authGroup := v1.Group("/auth")
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
		authGroup.POST("/reset-password", h.ResetPassword)

		v1.GET("/get-users", h.ListUsers)

		v1.GET("/get-delivery-boxes", h.ListDeliveryBoxes)
		v1.POST("/create-delivery-box", h.CreateDeliveryBox)

		v1.GET("/get-parcels", h.ListParcels)
		v1.POST("/create-parcel", h.CreateParcel)
		v1.POST("/assign-courier", h.AssignCourier)

		v1.POST("/delivery/status", h.UpdateDeliveryStatus)
		v1.GET("/delivery/status/:parcelId", h.GetDeliveryStatus)

		v1.POST("/generate-otp", h.GenerateOtp)
		v1.POST("/verify-otp", h.VerifyOtp)
		v1.GET("/otp-logs", h.ListOtpLogs)
	}

	e.RouteNotFound("/*", func(c echo.Context) error {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "route not found"})
	})

	return e
}
