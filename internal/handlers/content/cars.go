package content

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/HaZeModsII/website-design/internal/models"
)

// GetAllCars - GET /api/cars
func (h *Handler) GetAllCars(c *gin.Context) {
	ctx := c.Request.Context()

	iter := h.Session.Query(`SELECT id, name, year, make, model, specs, driver_name, image_url, created_at
	                         FROM cars`).WithContext(ctx).Iter()

	cars := []models.Car{}
	var car models.Car
	for iter.Scan(&car.ID, &car.Name, &car.Year, &car.Make, &car.Model, &car.Specs, &car.DriverName, &car.ImageURL, &car.CreatedAt) {
		cars = append(cars, car)
		car = models.Car{}
	}
	if err := iter.Close(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Erreur lecture voitures"})
		return
	}
	c.JSON(http.StatusOK, cars)
}

// CreateCar - POST /api/cars (admin)
func (h *Handler) CreateCar(c *gin.Context) {
	var car models.Car
	if err := c.ShouldBindJSON(&car); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	if car.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Nom requis"})
		return
	}

	car.ID = uuid.NewString()
	car.CreatedAt = time.Now().UTC()

	query := `INSERT INTO cars (id, name, year, make, model, specs, driver_name, image_url, created_at)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	if err := h.Session.Query(query,
		car.ID, car.Name, car.Year, car.Make, car.Model, car.Specs, car.DriverName, car.ImageURL, car.CreatedAt,
	).WithContext(c.Request.Context()).Exec(); err != nil {
		log.Printf("❌ Erreur écriture voiture %s: %v", car.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Erreur création voiture"})
		return
	}

	log.Printf("✅ Voiture créée: %s (%s)", car.Name, car.ID)
	c.JSON(http.StatusOK, car)
}

// DeleteCar - DELETE /api/cars/:id (admin)
func (h *Handler) DeleteCar(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	var existing string
	if err := h.Session.Query(`SELECT id FROM cars WHERE id = ?`, id).
		WithContext(ctx).Scan(&existing); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Car not found"})
		return
	}

	if err := h.Session.Query(`DELETE FROM cars WHERE id = ?`, id).WithContext(ctx).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Erreur suppression voiture"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Car deleted successfully"})
}
