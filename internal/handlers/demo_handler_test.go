package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"pesowise/internal/services"
)

// --- mock seed service ---

type mockSeedService struct {
	resetAndSeedFn func(userID uint) (*services.SeedResult, error)
}

func (m *mockSeedService) ResetAndSeed(userID uint) (*services.SeedResult, error) {
	if m.resetAndSeedFn != nil {
		return m.resetAndSeedFn(userID)
	}
	return &services.SeedResult{}, nil
}

var _ services.SeedServicer = (*mockSeedService)(nil)

func TestDemoHandler_ResetAndSeed(t *testing.T) {
	t.Run("returns 200 with counts", func(t *testing.T) {
		svc := &mockSeedService{
			resetAndSeedFn: func(_ uint) (*services.SeedResult, error) {
				return &services.SeedResult{Transactions: 45, Subscriptions: 2, Categories: 5, BudgetAmount: 2500000}, nil
			},
		}
		handler := NewDemoHandler(svc)
		r := gin.New()
		r.POST("/demo/reset", injectUserID(1), handler.ResetAndSeed)

		rec := doRequest(r, "POST", "/demo/reset", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		seeded := result["seeded"].(map[string]interface{})
		if seeded["transactions"].(float64) != 45 {
			t.Errorf("expected 45 transactions, got %v", seeded["transactions"])
		}
	})

	t.Run("returns 500 on failure", func(t *testing.T) {
		svc := &mockSeedService{
			resetAndSeedFn: func(_ uint) (*services.SeedResult, error) {
				return nil, fmt.Errorf("db connection lost")
			},
		}
		handler := NewDemoHandler(svc)
		r := gin.New()
		r.POST("/demo/reset", injectUserID(1), handler.ResetAndSeed)

		rec := doRequest(r, "POST", "/demo/reset", "")

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
	})

	t.Run("returns 401 without auth", func(t *testing.T) {
		handler := NewDemoHandler(&mockSeedService{})
		r := gin.New()
		r.POST("/demo/reset", handler.ResetAndSeed)

		rec := doRequest(r, "POST", "/demo/reset", "")

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})
}
