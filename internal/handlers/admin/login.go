package admin

import (
	"crypto/subtle"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"

	"github.com/HaZeModsII/website-design/internal/utils"
)

// Handler expose l'authentification et la gestion des demandes de contact
type Handler struct {
	Session *gocql.Session
}

func NewHandler(session *gocql.Session) *Handler {
	return &Handler{Session: session}
}

// LoginRequest - identifiants de l'admin
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login - POST /api/admin/login
// Les identifiants viennent de l'environnement : ADMIN_USERNAME et soit
// ADMIN_PASSWORD_HASH (argon2id), soit ADMIN_PASSWORD en clair.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	expectedUser := os.Getenv("ADMIN_USERNAME")
	if expectedUser == "" {
		expectedUser = "admin"
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(expectedUser)) == 1
	passOK := false

	if hash := os.Getenv("ADMIN_PASSWORD_HASH"); hash != "" && utils.IsArgon2Hash(hash) {
		ok, err := utils.VerifyPassword(req.Password, hash)
		passOK = err == nil && ok
	} else if plain := os.Getenv("ADMIN_PASSWORD"); plain != "" {
		passOK = subtle.ConstantTimeCompare([]byte(req.Password), []byte(plain)) == 1
	}

	if !userOK || !passOK {
		log.Printf("⚠️ Connexion admin refusée pour '%s'", req.Username)
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateAdminJWT(req.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Erreur génération jeton"})
		return
	}

	log.Printf("✅ Connexion admin: %s", req.Username)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"token":   token,
	})
}
