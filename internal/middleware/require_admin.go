package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/HaZeModsII/website-design/internal/utils"
)

// RequireAdmin vérifie le token Bearer et le rôle "admin"
func RequireAdmin(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Not authenticated"})
		c.Abort()
		return
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")
	username, err := utils.ParseAdminJWT(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Invalid authentication"})
		c.Abort()
		return
	}

	c.Set("admin_user", username)
	c.Next()
}
