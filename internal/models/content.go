package models

import "time"

// Event représente un événement (course, rassemblement...)
type Event struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	Location    string    `json:"location"`
	ImageURL    string    `json:"image_url"`
	TicketPrice float64   `json:"ticket_price"`
	CreatedAt   time.Time `json:"created_at"`
}

type EventUpdate struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Date        *string  `json:"date"`
	Location    *string  `json:"location"`
	ImageURL    *string  `json:"image_url"`
	TicketPrice *float64 `json:"ticket_price"`
}

// BlogPost représente un article de blog
type BlogPost struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  string    `json:"category"`
	Author    string    `json:"author"`
	ImageURLs []string  `json:"image_urls"`
	CreatedAt time.Time `json:"created_at"`
}

type BlogPostUpdate struct {
	Title     *string   `json:"title"`
	Content   *string   `json:"content"`
	Category  *string   `json:"category"`
	Author    *string   `json:"author"`
	ImageURLs *[]string `json:"image_urls"`
}

// Sponsor représente un partenaire de l'équipe
type Sponsor struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	WebsiteURL   string    `json:"website_url"`
	InstagramURL string    `json:"instagram_url"`
	FacebookURL  string    `json:"facebook_url"`
	Description  string    `json:"description"`
	ImageURL     string    `json:"image_url"`
	CreatedAt    time.Time `json:"created_at"`
}

// Driver représente un pilote de l'équipe
type Driver struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Bio       string    `json:"bio"`
	CarName   string    `json:"car_name"`
	Email     string    `json:"email"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
}

// Car représente une voiture de l'écurie
type Car struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Year       string    `json:"year"`
	Make       string    `json:"make"`
	Model      string    `json:"model"`
	Specs      string    `json:"specs"`
	DriverName string    `json:"driver_name"`
	ImageURL   string    `json:"image_url"`
	CreatedAt  time.Time `json:"created_at"`
}
