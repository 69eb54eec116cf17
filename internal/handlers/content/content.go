package content

import (
	"github.com/gocql/gocql"
)

// Handler regroupe les endpoints de contenu éditorial du site
// (événements, blog, sponsors, pilotes, voitures).
type Handler struct {
	Session *gocql.Session
}

func NewHandler(session *gocql.Session) *Handler {
	return &Handler{Session: session}
}
