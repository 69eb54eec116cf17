package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/HaZeModsII/website-design/internal/cache"
)

const (
	// Limites par endpoint
	ContactMaxRequests = 5
	LoginMaxAttempts   = 5

	// Fenêtres de comptage
	ContactWindow = 10 * time.Minute
	LoginWindow   = 15 * time.Minute
)

// ContactRateLimit limite les envois du formulaire de contact par IP
func ContactRateLimit(c *cache.Cache) gin.HandlerFunc {
	return rateLimit(c, "contact", ContactMaxRequests, ContactWindow)
}

// LoginRateLimit limite les tentatives de connexion admin par IP
func LoginRateLimit(c *cache.Cache) gin.HandlerFunc {
	return rateLimit(c, "login", LoginMaxAttempts, LoginWindow)
}

func rateLimit(rl *cache.Cache, name string, max int64, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("ratelimit:%s:%s", name, c.ClientIP())

		count, err := rl.IncrementRateLimit(c.Request.Context(), key, window)
		if err != nil {
			// Redis en panne : on laisse passer plutôt que de bloquer tout le site
			c.Next()
			return
		}

		if count > max {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"detail":      fmt.Sprintf("Trop de requêtes. Réessayez dans %d minutes", int(window.Minutes())),
				"retry_after": int(window.Seconds()),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
