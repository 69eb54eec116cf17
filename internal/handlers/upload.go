package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/minio/minio-go/v7"
)

// UploadHandler pousse les images du site vers MinIO
type UploadHandler struct {
	Client *minio.Client
}

func NewUploadHandler(client *minio.Client) *UploadHandler {
	return &UploadHandler{Client: client}
}

// UploadImage - POST /api/upload (admin)
func (h *UploadHandler) UploadImage(c *gin.Context) {
	if h.Client == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"detail": "Stockage d'images non configuré"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Aucun fichier reçu"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Erreur ouverture fichier"})
		return
	}
	defer file.Close()

	bucket := os.Getenv("MINIO_BUCKET")
	if bucket == "" {
		bucket = "site-images"
	}

	// Nom unique, l'original peut contenir n'importe quoi
	objectName := fmt.Sprintf("uploads/%d%s", time.Now().UnixNano(), filepath.Ext(fileHeader.Filename))

	_, err = h.Client.PutObject(
		c.Request.Context(),
		bucket,
		objectName,
		file,
		fileHeader.Size,
		minio.PutObjectOptions{ContentType: fileHeader.Header.Get("Content-Type")},
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Erreur upload MinIO"})
		return
	}

	// URL publique (à adapter selon ton reverse proxy)
	publicBase := os.Getenv("MINIO_PUBLIC_URL")
	if publicBase == "" {
		publicBase = fmt.Sprintf("http://%s", os.Getenv("MINIO_ENDPOINT"))
	}
	imageURL := fmt.Sprintf("%s/%s/%s", publicBase, bucket, objectName)

	c.JSON(http.StatusOK, gin.H{"image_url": imageURL})
}
