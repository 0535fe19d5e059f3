package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"time"

	"coatingshop/internal/adapter/http/middleware"
	"coatingshop/internal/domain/entities"
	"coatingshop/internal/usecase"

	"github.com/gin-gonic/gin"
)

var (
	testOwner = usecase.Actor{UserID: "user-1", Role: usecase.RoleCustomer, Email: "jane@example.com", EmailVerified: true}
	testAdmin = usecase.Actor{UserID: "admin-1", Role: usecase.RoleAdmin}
)

func withActor(a usecase.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.SetActor(c, a)
		c.Next()
	}
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sampleQuote(status entities.QuoteStatus) entities.Quote {
	now := time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC)
	return entities.Quote{
		QuoteDraft: entities.QuoteDraft{
			Items:    []entities.QuoteItem{{Type: "wheels", Size: "medium", Quantity: 5, BasePrice: 25}},
			Coating:  entities.Coating{Type: "standard", Color: "black", Finish: "gloss", PriceMultiplier: 1},
			Subtotal: 125,
			Total:    125,
			ContactInfo: entities.ContactInfo{
				Name: "Jane Doe", Email: "jane@example.com", Phone: "555-123-4567",
			},
		},
		ID:          "q-1",
		UserID:      testOwner.UserID,
		Status:      status,
		OrderNumber: "PC-261016-ABCDEF",
		CreatedAt:   now,
		UpdatedAt:   now,
		UpdatedBy:   testOwner.UserID,
	}
}
