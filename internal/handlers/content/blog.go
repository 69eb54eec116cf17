package content

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/HaZeModsII/website-design/internal/models"
)

// GetAllBlogPosts - GET /api/blog?category=
func (h *Handler) GetAllBlogPosts(c *gin.Context) {
	ctx := c.Request.Context()
	category := c.Query("category")

	iter := h.Session.Query(`SELECT id, title, content, category, author, image_urls, created_at
	                         FROM blog_posts`).WithContext(ctx).Iter()

	posts := []models.BlogPost{}
	var p models.BlogPost
	for iter.Scan(&p.ID, &p.Title, &p.Content, &p.Category, &p.Author, &p.ImageURLs, &p.CreatedAt) {
		// Filtrage par catégorie en mémoire, la table n'est pas partitionnée dessus
		if category == "" || p.Category == category {
			posts = append(posts, p)
		}
		p = models.BlogPost{}
	}
	if err := iter.Close(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Erreur lecture blog"})
		return
	}
	c.JSON(http.StatusOK, posts)
}

// GetBlogPost - GET /api/blog/:id
func (h *Handler) GetBlogPost(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	var p models.BlogPost
	err := h.Session.Query(`SELECT id, title, content, category, author, image_urls, created_at
	                        FROM blog_posts WHERE id = ?`, id).WithContext(ctx).
		Scan(&p.ID, &p.Title, &p.Content, &p.Category, &p.Author, &p.ImageURLs, &p.CreatedAt)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Post not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// CreateBlogPost - POST /api/blog (admin)
func (h *Handler) CreateBlogPost(c *gin.Context) {
	var p models.BlogPost
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	if p.Title == "" || p.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Titre et contenu requis"})
		return
	}

	p.ID = uuid.NewString()
	p.CreatedAt = time.Now().UTC()

	if err := h.insertBlogPost(c, &p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Erreur création article"})
		return
	}

	log.Printf("✅ Article de blog créé: %s (%s)", p.Title, p.ID)
	c.JSON(http.StatusOK, p)
}

// UpdateBlogPost - PUT /api/blog/:id (admin)
func (h *Handler) UpdateBlogPost(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	var update models.BlogPostUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	var p models.BlogPost
	err := h.Session.Query(`SELECT id, title, content, category, author, image_urls, created_at
	                        FROM blog_posts WHERE id = ?`, id).WithContext(ctx).
		Scan(&p.ID, &p.Title, &p.Content, &p.Category, &p.Author, &p.ImageURLs, &p.CreatedAt)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Post not found"})
		return
	}

	if update.Title != nil {
		p.Title = *update.Title
	}
	if update.Content != nil {
		p.Content = *update.Content
	}
	if update.Category != nil {
		p.Category = *update.Category
	}
	if update.Author != nil {
		p.Author = *update.Author
	}
	if update.ImageURLs != nil {
		p.ImageURLs = *update.ImageURLs
	}

	if err := h.insertBlogPost(c, &p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Erreur mise à jour article"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// DeleteBlogPost - DELETE /api/blog/:id (admin)
func (h *Handler) DeleteBlogPost(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	var existing string
	if err := h.Session.Query(`SELECT id FROM blog_posts WHERE id = ?`, id).
		WithContext(ctx).Scan(&existing); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Post not found"})
		return
	}

	if err := h.Session.Query(`DELETE FROM blog_posts WHERE id = ?`, id).WithContext(ctx).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Erreur suppression article"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}

func (h *Handler) insertBlogPost(c *gin.Context, p *models.BlogPost) error {
	query := `INSERT INTO blog_posts (id, title, content, category, author, image_urls, created_at)
	          VALUES (?, ?, ?, ?, ?, ?, ?)`
	err := h.Session.Query(query,
		p.ID, p.Title, p.Content, p.Category, p.Author, p.ImageURLs, p.CreatedAt,
	).WithContext(c.Request.Context()).Exec()
	if err != nil {
		log.Printf("❌ Erreur écriture article %s: %v", p.ID, err)
	}
	return err
}
