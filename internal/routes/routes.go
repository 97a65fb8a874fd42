package routes

import (
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"msvosa_back_end/internal/handlers"
	"msvosa_back_end/internal/handlers/admin"
	"msvosa_back_end/internal/middleware"
)

func RegisterRoutes(r *gin.Engine) {
	corsConfig := cors.DefaultConfig()
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		corsConfig.AllowOrigins = strings.Split(origins, ",")
	} else {
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", "X-Cart-Session")
	corsConfig.ExposeHeaders = append(corsConfig.ExposeHeaders, "X-Cart-Session")
	corsConfig.MaxAge = 12 * time.Hour
	r.Use(cors.New(corsConfig))

	api := r.Group("/api")
	{
		// Public site
		api.GET("/content", handlers.GetSiteContent)
		api.GET("/events", handlers.GetEvents)

		// Shop cart (session-scoped)
		api.GET("/cart", handlers.GetCart)
		api.POST("/cart/add", handlers.AddToCart)
		api.PATCH("/cart/:productId", handlers.UpdateCartQuantity)
		api.DELETE("/cart/:productId", handlers.RemoveFromCart)
		api.DELETE("/cart", handlers.ClearCart)

		// Checkout
		api.POST("/orders", handlers.SubmitCheckout)

		// Alumni directory
		api.GET("/members", handlers.GetMembers)
		api.POST("/members", handlers.AddMember)

		// Donations
		api.GET("/donate/qr", handlers.DonationQR)
		api.POST("/donate/session", handlers.CreateDonationSession)

		// Admin
		api.POST("/admin/login", admin.Login)

		authed := api.Group("/admin", middleware.AdminRequired())
		{
			authed.POST("/logout", admin.Logout)

			// Draft/publish content editor
			authed.GET("/content/draft", admin.GetDraft)
			authed.PUT("/content/branding", admin.UpdateBranding)
			authed.PUT("/content/hero", admin.UpdateHero)
			authed.PUT("/content/mission", admin.UpdateMission)
			authed.PUT("/content/gallery", admin.UpdateGallery)
			authed.PUT("/content/contact", admin.UpdateContact)
			authed.POST("/content/leadership", admin.AddLeader)
			authed.PUT("/content/leadership/:index/image", admin.UpdateLeaderImage)
			authed.DELETE("/content/leadership/:index", admin.RemoveLeader)
			authed.POST("/content/committee-names", admin.AddCommitteeName)
			authed.DELETE("/content/committee-names/:index", admin.RemoveCommitteeName)
			authed.POST("/content/products", admin.AddProduct)
			authed.PUT("/content/products/:id", admin.UpdateProduct)
			authed.PUT("/content/products/:id/image", admin.UpdateProductImage)
			authed.DELETE("/content/products/:id", admin.DeleteProduct)
			authed.POST("/content/publish", admin.Publish)

			// Immediate-persistence sub-editors
			authed.GET("/members", admin.GetMembers)
			authed.POST("/members", admin.AddMember)
			authed.DELETE("/members/:id", admin.DeleteMember)
			authed.POST("/events", admin.AddEvent)
			authed.DELETE("/events/:id", admin.DeleteEvent)
			authed.GET("/orders", admin.GetOrders)
			authed.PUT("/orders/:id/status", admin.UpdateOrderStatus)
			authed.DELETE("/orders/:id", admin.DeleteOrder)
			authed.GET("/orders/:id/receipt", admin.OrderReceipt)
			authed.GET("/ws/orders", admin.OrdersFeed)

			// Tools
			authed.POST("/generate", admin.GenerateContent)
			authed.POST("/upload", handlers.UploadImage)
		}
	}
}
