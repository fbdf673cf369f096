package routes

import (
	"net/http"

	"local-market/controllers"
	"local-market/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(r *gin.Engine) {
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.Static("/uploads", "./uploads")

	authCtrl := &controllers.AuthController{}
	userCtrl := controllers.NewUserController()
	businessCtrl := &controllers.BusinessController{}
	productCtrl := controllers.NewProductController()
	orderCtrl := &controllers.OrderController{}
	customOrderCtrl := &controllers.CustomOrderController{}
	adCtrl := &controllers.AdController{}
	spinCtrl := &controllers.SpinCodeController{}
	favoriteCtrl := &controllers.FavoriteController{}
	notificationCtrl := &controllers.NotificationController{}
	addressCtrl := &controllers.AddressController{}
	uploadCtrl := &controllers.UploadController{}

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authCtrl.Register)
			auth.POST("/login", authCtrl.Login)
			auth.POST("/reset-password", authCtrl.RequestPasswordReset)
			auth.POST("/verify-reset-code", authCtrl.VerifyResetCode)
			auth.POST("/update-password", authCtrl.UpdatePassword)
		}

		users := api.Group("/users")
		{
			users.GET("/:id", userCtrl.GetUserByID)
			users.POST("/push-token", userCtrl.SavePushToken)
			users.PUT("/:id", middleware.AuthMiddleware(), userCtrl.UpdateUser)
		}

		businesses := api.Group("/businesses")
		{
			businesses.GET("", businessCtrl.GetAllBusinesses)
			businesses.GET("/:id", businessCtrl.GetBusinessByID)
			businesses.POST("", middleware.AuthMiddleware(), businessCtrl.CreateBusiness)
			businesses.PUT("/:id", middleware.AuthMiddleware(), middleware.BusinessUserMiddleware(), businessCtrl.UpdateBusiness)
		}

		products := api.Group("/products")
		{
			products.GET("", productCtrl.GetProducts)
			products.GET("/:id", productCtrl.GetProductByID)
			products.POST("", middleware.AuthMiddleware(), middleware.BusinessUserMiddleware(), productCtrl.CreateProduct)
			products.PUT("/:id", middleware.AuthMiddleware(), middleware.BusinessUserMiddleware(), productCtrl.UpdateProduct)
			products.DELETE("/:id", middleware.AuthMiddleware(), middleware.BusinessUserMiddleware(), productCtrl.DeleteProduct)
		}

		orders := api.Group("/orders")
		{
			orders.POST("", orderCtrl.CreateOrder)
			orders.GET("", orderCtrl.GetOrders)
			orders.GET("/track/:orderNumber", orderCtrl.TrackOrder)
			orders.GET("/:id", orderCtrl.GetOrderByID)
			orders.PATCH("/status", orderCtrl.UpdateOrderStatus)
		}

		customOrders := api.Group("/custom-orders")
		{
			customOrders.POST("", customOrderCtrl.CreateCustomOrder)
			customOrders.GET("", customOrderCtrl.GetCustomOrders)
			customOrders.PATCH("/:id/quote", customOrderCtrl.QuoteCustomOrder)
			customOrders.PATCH("/:id/status", customOrderCtrl.UpdateCustomOrderStatus)
			customOrders.DELETE("/:id", customOrderCtrl.DeleteCustomOrder)
		}

		ads := api.Group("/ads")
		{
			ads.GET("", adCtrl.GetAds)
			ads.POST("", middleware.AuthMiddleware(), middleware.BusinessUserMiddleware(), adCtrl.CreateAd)
			ads.PUT("/:id", middleware.AuthMiddleware(), middleware.BusinessUserMiddleware(), adCtrl.UpdateAd)
			ads.DELETE("/:id", middleware.AuthMiddleware(), middleware.BusinessUserMiddleware(), adCtrl.DeleteAd)
			ads.POST("/:id/view", adCtrl.RecordAdView)
			ads.POST("/:id/click", adCtrl.RecordAdClick)
		}

		spinCodes := api.Group("/spin-codes")
		{
			spinCodes.GET("", spinCtrl.GetSpinCodes)
			spinCodes.POST("/validate", spinCtrl.ValidateSpinCode)
			spinCodes.POST("/use", spinCtrl.MarkSpinCodeUsed)
			spinCodes.POST("/spin", spinCtrl.Spin)
		}

		favorites := api.Group("/favorites")
		{
			favorites.GET("", favoriteCtrl.GetFavorites)
			favorites.POST("", favoriteCtrl.AddFavorite)
			favorites.DELETE("", favoriteCtrl.RemoveFavorite)
		}

		notifications := api.Group("/notifications")
		{
			notifications.GET("", notificationCtrl.GetNotifications)
			notifications.PATCH("/read-all", notificationCtrl.MarkAllNotificationsRead)
			notifications.PATCH("/:id/read", notificationCtrl.MarkNotificationRead)
		}

		addresses := api.Group("/addresses")
		{
			addresses.GET("", addressCtrl.GetAddresses)
			addresses.POST("", middleware.AuthMiddleware(), addressCtrl.CreateAddress)
			addresses.DELETE("/:id", middleware.AuthMiddleware(), addressCtrl.DeleteAddress)
		}

		api.POST("/upload", uploadCtrl.UploadImage)
	}
}
