package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

// Seuls les chemins de validation sont testés ici : ils répondent avant
// de toucher à la session Scylla.
func newContactRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewContactHandler(nil)
	r := gin.New()
	r.POST("/api/contact", h.SubmitContact)
	return r
}

func postContact(r *gin.Engine, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	json.NewEncoder(&buf).Encode(body)
	req := httptest.NewRequest(http.MethodPost, "/api/contact", &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSubmitContact_MissingFields(t *testing.T) {
	r := newContactRouter()

	w := postContact(r, gin.H{"name": "Jo"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	var resp map[string]string
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["detail"] == "" {
		t.Fatalf("expected detail in payload, got %s", w.Body.String())
	}
}

func TestSubmitContact_InvalidEmail(t *testing.T) {
	r := newContactRouter()

	w := postContact(r, gin.H{
		"name":    "Jo",
		"email":   "not-an-email",
		"message": "hello",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
