package payement

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/HaZeModsII/website-design/internal/models"
	"github.com/HaZeModsII/website-design/internal/payment"
	"github.com/HaZeModsII/website-design/internal/services"
	"github.com/HaZeModsII/website-design/internal/store"
)

type scriptedGateway struct {
	result *payment.ChargeResult
	err    error
}

func (g *scriptedGateway) CreatePayment(_ context.Context, _ payment.ChargeRequest) (*payment.ChargeResult, error) {
	if g.err != nil {
		return nil, g.err
	}
	return g.result, nil
}

func newRouter(t *testing.T, gw payment.Gateway) (*gin.Engine, *store.MemoryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mem := store.NewMemoryStore()
	h := NewHandler(services.NewOrderService(mem, mem, gw))

	r := gin.New()
	r.POST("/api/orders", h.CreateOrder)
	r.GET("/api/orders/:id", h.GetOrder)
	r.POST("/api/payments/process", h.ProcessPayment)
	return r, mem
}

func doJSON(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createOrder(t *testing.T, r *gin.Engine) models.Order {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/api/orders", gin.H{
		"customer_email": "rider@example.com",
		"customer_name":  "Jo Rider",
		"line_items": []gin.H{
			{"product_id": "m1", "product_name": "Tee", "quantity": 2, "unit_price": 12.75},
		},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create order: status %d body %s", w.Code, w.Body.String())
	}
	var order models.Order
	if err := json.Unmarshal(w.Body.Bytes(), &order); err != nil {
		t.Fatalf("decode order: %v", err)
	}
	return order
}

func TestCreateOrderEndpoint(t *testing.T) {
	r, _ := newRouter(t, &scriptedGateway{result: &payment.ChargeResult{PaymentID: "pay_1", Status: "COMPLETED"}})

	order := createOrder(t, r)
	if order.Status != models.OrderStatusPending {
		t.Fatalf("expected pending, got %s", order.Status)
	}
	if order.TotalAmount != 25.50 {
		t.Fatalf("expected total 25.50, got %v", order.TotalAmount)
	}
}

func TestCreateOrderEndpoint_InvalidBody(t *testing.T) {
	r, _ := newRouter(t, &scriptedGateway{})

	w := doJSON(r, http.MethodPost, "/api/orders", gin.H{
		"customer_email": "not-an-email",
		"customer_name":  "Jo",
		"line_items":     []gin.H{{"product_id": "m1", "quantity": 1, "unit_price": 1}},
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	var resp map[string]string
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["detail"] == "" {
		t.Fatalf("expected detail in error payload, got %s", w.Body.String())
	}
}

func TestGetOrderEndpoint_NotFound(t *testing.T) {
	r, _ := newRouter(t, &scriptedGateway{})

	w := doJSON(r, http.MethodGet, "/api/orders/missing", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestProcessPaymentEndpoint_Success(t *testing.T) {
	r, mem := newRouter(t, &scriptedGateway{result: &payment.ChargeResult{PaymentID: "pay_1", Status: "COMPLETED"}})
	order := createOrder(t, r)

	w := doJSON(r, http.MethodPost, "/api/payments/process", gin.H{
		"order_id":  order.ID,
		"source_id": "tok_visa",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body %s", w.Code, w.Body.String())
	}

	var resp services.PaymentResult
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if !resp.Success || resp.PaymentID != "pay_1" || resp.OrderID != order.ID || resp.Amount != 25.50 {
		t.Fatalf("unexpected result: %+v", resp)
	}

	stored, _ := mem.GetByID(context.Background(), order.ID)
	if stored.Status != models.OrderStatusCompleted {
		t.Fatalf("expected completed, got %s", stored.Status)
	}
}

func TestProcessPaymentEndpoint_Declined(t *testing.T) {
	r, mem := newRouter(t, &scriptedGateway{err: &payment.DeclinedError{Detail: "Card declined"}})
	order := createOrder(t, r)

	w := doJSON(r, http.MethodPost, "/api/payments/process", gin.H{
		"order_id":  order.ID,
		"source_id": "tok_bad",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	var resp map[string]string
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["detail"] != "Card declined" {
		t.Fatalf("expected decline detail, got %s", w.Body.String())
	}

	stored, _ := mem.GetByID(context.Background(), order.ID)
	if stored.Status != models.OrderStatusFailed {
		t.Fatalf("expected failed, got %s", stored.Status)
	}
}

func TestProcessPaymentEndpoint_TechnicalErrorIsGeneric(t *testing.T) {
	r, mem := newRouter(t, &scriptedGateway{err: context.DeadlineExceeded})
	order := createOrder(t, r)

	w := doJSON(r, http.MethodPost, "/api/payments/process", gin.H{
		"order_id":  order.ID,
		"source_id": "tok_visa",
	})
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	var resp map[string]string
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["detail"] != "Payment processing failed" {
		t.Fatalf("internal details must not leak, got %s", w.Body.String())
	}

	stored, _ := mem.GetByID(context.Background(), order.ID)
	if stored.Status != models.OrderStatusPending {
		t.Fatalf("status must stay pending, got %s", stored.Status)
	}
}

func TestProcessPaymentEndpoint_UnknownOrder(t *testing.T) {
	r, _ := newRouter(t, &scriptedGateway{})

	w := doJSON(r, http.MethodPost, "/api/payments/process", gin.H{
		"order_id":  "missing",
		"source_id": "tok_visa",
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestProcessPaymentEndpoint_AlreadyCompleted(t *testing.T) {
	r, mem := newRouter(t, &scriptedGateway{result: &payment.ChargeResult{PaymentID: "pay_1", Status: "COMPLETED"}})
	order := createOrder(t, r)
	mem.SetOrderStatus(order.ID, models.OrderStatusCompleted)

	w := doJSON(r, http.MethodPost, "/api/payments/process", gin.H{
		"order_id":  order.ID,
		"source_id": "tok_visa",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
