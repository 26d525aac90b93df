package routes

import (
	"fmt"
	"os"
	"strconv"

	_ "sama-store/docs" // This will be auto-generated
	"sama-store/internal/adapter/cache"
	"sama-store/internal/adapter/http/handlers"
	"sama-store/internal/adapter/persistence/repository"
	infracache "sama-store/internal/infrastructure/cache"
	"sama-store/internal/infrastructure/database"
	"sama-store/internal/infrastructure/payments"
	"sama-store/internal/infrastructure/sms"
	"sama-store/internal/usecase"
	"sama-store/internal/usecase/interfaces"
	"sama-store/internal/util"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		util.Fatal("Failed to startup the application", util.ErrorField(err))
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	redisClient, err := infracache.ConnectRedis()
	if err != nil {
		util.Fatal("Failed to connect to Redis", util.ErrorField(err))
	}

	otpRepo := repository.NewOtpDynamoRepository(ddb)
	orderRepo := repository.NewOrderDynamoRepository(ddb)
	historyRepo := repository.NewStatusHistoryDynamoRepository(ddb)
	productRepo := repository.NewProductDynamoRepository(ddb)
	verificationCache := cache.NewVerificationRedisCache(redisClient)

	var smsSender interfaces.ISmsSender
	twilioSender, err := sms.NewTwilioSender(
		os.Getenv("TWILIO_ACCOUNT_SID"),
		os.Getenv("TWILIO_AUTH_TOKEN"),
		os.Getenv("TWILIO_FROM_NUMBER"),
	)
	if err != nil {
		util.Warn("Twilio sender not configured", util.ErrorField(err))
	} else {
		smsSender = twilioSender
	}

	var paymentGateway interfaces.IPaymentGateway
	razorpayGateway, err := payments.NewRazorpayGateway(
		os.Getenv("RAZORPAY_KEY_ID"),
		os.Getenv("RAZORPAY_KEY_SECRET"),
	)
	if err != nil {
		util.Warn("Razorpay gateway not configured", util.ErrorField(err))
	} else {
		paymentGateway = razorpayGateway
	}

	otpUseCase := usecase.NewOtpUseCase(otpRepo, smsSender, verificationCache, usecase.DefaultOtpConfig())
	orderUseCase := usecase.NewOrderUseCase(orderRepo, historyRepo, paymentGateway, verificationCache)
	trackingUseCase := usecase.NewOrderTrackingUseCase(orderRepo, historyRepo)
	productUseCase := usecase.NewProductUseCase(productRepo)

	otpHandler := handlers.NewOtpHandler(otpUseCase)
	orderHandler := handlers.NewOrderHandler(orderUseCase)
	trackingHandler := handlers.NewTrackingHandler(trackingUseCase)
	productHandler := handlers.NewProductHandler(productUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addStorefrontRoutes(v1, otpHandler, orderHandler, trackingHandler, productHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		util.Error("Recovered from panic", util.String("panic", fmt.Sprint(recovered)))
		c.AbortWithStatus(500)
	}))
}
