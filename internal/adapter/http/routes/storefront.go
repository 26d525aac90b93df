package routes

import (
	"sama-store/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOtp      = "/otp"
	PathOrders   = "/orders"
	PathTrack    = "/track"
	PathProducts = "/products"
	PathAdmin    = "/admin"
)

func addStorefrontRoutes(
	rg *gin.RouterGroup,
	otpHandler *handlers.OtpHandler,
	orderHandler *handlers.OrderHandler,
	trackingHandler *handlers.TrackingHandler,
	productHandler *handlers.ProductHandler,
) {
	otp := rg.Group(PathOtp)
	{
		otp.POST("/request", otpHandler.RequestOtp)
		otp.POST("/verify", otpHandler.VerifyOtp)
	}

	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.Checkout)
		orders.POST("/verify-payment", orderHandler.VerifyPayment)
	}

	track := rg.Group(PathTrack)
	{
		track.GET("/:tracking_id", trackingHandler.TrackOrder)
	}

	products := rg.Group(PathProducts)
	{
		products.GET("", productHandler.ListProducts)
		products.GET("/:id", productHandler.GetProduct)
	}

	admin := rg.Group(PathAdmin)
	{
		admin.PATCH("/orders/:order_id/status", orderHandler.UpdateStatus)
	}
}
