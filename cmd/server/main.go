package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v83"

	"github.com/HaZeModsII/website-design/internal/cache"
	"github.com/HaZeModsII/website-design/internal/config"
	"github.com/HaZeModsII/website-design/internal/database"
	"github.com/HaZeModsII/website-design/internal/handlers"
	adminh "github.com/HaZeModsII/website-design/internal/handlers/admin"
	"github.com/HaZeModsII/website-design/internal/handlers/catalog"
	"github.com/HaZeModsII/website-design/internal/handlers/content"
	"github.com/HaZeModsII/website-design/internal/handlers/payement"
	"github.com/HaZeModsII/website-design/internal/models"
	"github.com/HaZeModsII/website-design/internal/payment"
	"github.com/HaZeModsII/website-design/internal/routes"
	"github.com/HaZeModsII/website-design/internal/services"
	"github.com/HaZeModsII/website-design/internal/store"
	"github.com/HaZeModsII/website-design/internal/utils"
)

func main() {
	config.Load()

	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
	if stripe.Key == "" {
		log.Fatal("❌ Impossible d'initialiser Stripe : clé manquante")
	}
	log.Println("✅ Stripe initialisé")

	conns, err := database.Connect()
	if err != nil {
		log.Fatal("❌ Connexion aux bases impossible : ", err)
	}
	defer conns.Close()

	catalogSession, err := conns.CatalogSession()
	if err != nil {
		log.Fatal("❌ Keyspace catalogue indisponible : ", err)
	}
	ordersSession, err := conns.OrdersSession()
	if err != nil {
		log.Fatal("❌ Keyspace commandes indisponible : ", err)
	}

	rdbCache := cache.New(conns.Redis)
	indexer := services.NewSearchIndexer(conns.Elastic)

	orderStore := store.NewScyllaOrders(ordersSession)
	catalogStore := store.NewScyllaCatalog(catalogSession)

	orderService := services.NewOrderService(orderStore, catalogStore, payment.NewStripeGateway())
	orderService.OnPaymentSucceeded = func(order models.Order) {
		sendOrderConfirmation(order)
	}

	deps := routes.Deps{
		Catalog: catalog.NewHandler(catalogSession, rdbCache, indexer),
		Content: content.NewHandler(catalogSession),
		Payment: payement.NewHandler(orderService),
		Contact: handlers.NewContactHandler(catalogSession),
		Upload:  handlers.NewUploadHandler(conns.MinIO),
		Admin:   adminh.NewHandler(catalogSession),
		Cache:   rdbCache,
	}

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{frontendOrigin()},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	routes.RegisterRoutes(r, deps)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("🚀 Serveur Triple Barrel Racing lancé sur le port", port)
	r.Run(":" + port)
}

func frontendOrigin() string {
	if origin := os.Getenv("FRONTEND_ORIGIN"); origin != "" {
		return origin
	}
	return "http://localhost:3000"
}

// sendOrderConfirmation envoie l'e-mail de confirmation avec le reçu PDF
// en pièce jointe. Appelé hors du chemin HTTP, tout échec est juste loggé.
func sendOrderConfirmation(order models.Order) {
	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	var attachment []byte
	receiptURL := fmt.Sprintf("%s/api/orders/%s/receipt", baseURL, order.ID)
	pdf, err := utils.RenderReceiptPDF(receiptURL)
	if err != nil {
		log.Printf("⚠️ Reçu PDF non généré pour %s: %v", order.ID, err)
	} else {
		attachment = pdf
	}

	body := utils.GenerateOrderConfirmationHTML(order)
	if err := utils.SendMail(order.CustomerEmail, "Order Confirmation - Triple Barrel Racing",
		body, attachment, "receipt.pdf"); err != nil {
		log.Printf("❌ E-mail de confirmation non envoyé pour %s: %v", order.ID, err)
		return
	}
	log.Printf("✅ Confirmation envoyée à %s pour la commande %s", order.CustomerEmail, order.ID)
}
