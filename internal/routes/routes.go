package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/HaZeModsII/website-design/internal/cache"
	"github.com/HaZeModsII/website-design/internal/handlers"
	adminh "github.com/HaZeModsII/website-design/internal/handlers/admin"
	"github.com/HaZeModsII/website-design/internal/handlers/catalog"
	"github.com/HaZeModsII/website-design/internal/handlers/content"
	"github.com/HaZeModsII/website-design/internal/handlers/payement"
	"github.com/HaZeModsII/website-design/internal/middleware"
)

// Deps regroupe les handlers injectés dans le routeur
type Deps struct {
	Catalog *catalog.Handler
	Content *content.Handler
	Payment *payement.Handler
	Contact *handlers.ContactHandler
	Upload  *handlers.UploadHandler
	Admin   *adminh.Handler
	Cache   *cache.Cache
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Triple Barrel Racing API"})
	})

	api := r.Group("/api")

	// Catalogue
	api.GET("/merch", d.Catalog.GetAllMerch)
	api.GET("/merch/:id", d.Catalog.GetMerch)
	api.POST("/merch", middleware.RequireAdmin, d.Catalog.CreateMerch)
	api.PUT("/merch/:id", middleware.RequireAdmin, d.Catalog.UpdateMerch)
	api.DELETE("/merch/:id", middleware.RequireAdmin, d.Catalog.DeleteMerch)

	api.GET("/parts", d.Catalog.GetAllParts)
	api.GET("/parts/:id", d.Catalog.GetPart)
	api.POST("/parts", middleware.RequireAdmin, d.Catalog.CreatePart)
	api.PUT("/parts/:id", middleware.RequireAdmin, d.Catalog.UpdatePart)
	api.DELETE("/parts/:id", middleware.RequireAdmin, d.Catalog.DeletePart)

	api.GET("/sales-settings", d.Catalog.GetSalesSettings)
	api.PUT("/sales-settings", middleware.RequireAdmin, d.Catalog.UpdateSalesSettings)

	api.GET("/search", d.Catalog.Search)

	// Contenu éditorial
	api.GET("/events", d.Content.GetAllEvents)
	api.GET("/events/:id", d.Content.GetEvent)
	api.POST("/events", middleware.RequireAdmin, d.Content.CreateEvent)
	api.PUT("/events/:id", middleware.RequireAdmin, d.Content.UpdateEvent)
	api.DELETE("/events/:id", middleware.RequireAdmin, d.Content.DeleteEvent)

	api.GET("/blog", d.Content.GetAllBlogPosts)
	api.GET("/blog/:id", d.Content.GetBlogPost)
	api.POST("/blog", middleware.RequireAdmin, d.Content.CreateBlogPost)
	api.PUT("/blog/:id", middleware.RequireAdmin, d.Content.UpdateBlogPost)
	api.DELETE("/blog/:id", middleware.RequireAdmin, d.Content.DeleteBlogPost)

	api.GET("/sponsors", d.Content.GetAllSponsors)
	api.POST("/sponsors", middleware.RequireAdmin, d.Content.CreateSponsor)
	api.DELETE("/sponsors/:id", middleware.RequireAdmin, d.Content.DeleteSponsor)

	api.GET("/drivers", d.Content.GetAllDrivers)
	api.POST("/drivers", middleware.RequireAdmin, d.Content.CreateDriver)
	api.DELETE("/drivers/:id", middleware.RequireAdmin, d.Content.DeleteDriver)
	api.POST("/drivers/contact", middleware.ContactRateLimit(d.Cache), d.Content.ContactDriver)

	api.GET("/cars", d.Content.GetAllCars)
	api.POST("/cars", middleware.RequireAdmin, d.Content.CreateCar)
	api.DELETE("/cars/:id", middleware.RequireAdmin, d.Content.DeleteCar)

	// Commandes et paiements
	api.POST("/orders", d.Payment.CreateOrder)
	api.GET("/orders/:id", d.Payment.GetOrder)
	api.GET("/orders/:id/receipt", d.Payment.GetOrderReceipt)
	api.POST("/payments/process", d.Payment.ProcessPayment)

	// Contact
	api.POST("/contact", middleware.ContactRateLimit(d.Cache), d.Contact.SubmitContact)
	api.GET("/inquiries", middleware.RequireAdmin, d.Admin.GetInquiries)
	api.PATCH("/inquiries/:id/status", middleware.RequireAdmin, d.Admin.UpdateInquiryStatus)

	// Admin
	api.POST("/admin/login", middleware.LoginRateLimit(d.Cache), d.Admin.Login)
	api.POST("/upload", middleware.RequireAdmin, d.Upload.UploadImage)
}
