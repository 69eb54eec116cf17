package models

import "time"

// Part représente une pièce détachée d'occasion ou neuve
type Part struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	CarModel    string    `json:"car_model"`
	Year        string    `json:"year"`
	Category    string    `json:"category"`
	Condition   string    `json:"condition"` // "new", "used-good", "used-fair"
	ImageURL    string    `json:"image_url"`
	ImageURLs   []string  `json:"image_urls"`
	Stock       int       `json:"stock"`
	CreatedAt   time.Time `json:"created_at"`
}

type PartUpdate struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Price       *float64  `json:"price"`
	CarModel    *string   `json:"car_model"`
	Year        *string   `json:"year"`
	Category    *string   `json:"category"`
	Condition   *string   `json:"condition"`
	ImageURL    *string   `json:"image_url"`
	ImageURLs   *[]string `json:"image_urls"`
	Stock       *int      `json:"stock"`
}
