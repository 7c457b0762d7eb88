package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/locofly/inventory-backend/internal/inventory"
)

func TestShortageReportForwardsThreshold(t *testing.T) {
	var captured *int
	svc := &testInventoryService{
		shortageFn: func(ctx context.Context, threshold *int) ([]inventory.ShortageRowDTO, error) {
			captured = threshold
			return []inventory.ShortageRowDTO{}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/shortages?threshold=3", nil)
	resp := httptest.NewRecorder()
	ShortageReport(svc, testLogger())(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.Code)
	}
	if captured == nil || *captured != 3 {
		t.Fatalf("expected threshold 3, got %+v", captured)
	}
}

func TestShortageReportDefaultsWhenOmitted(t *testing.T) {
	var captured *int = new(int)
	svc := &testInventoryService{
		shortageFn: func(ctx context.Context, threshold *int) ([]inventory.ShortageRowDTO, error) {
			captured = threshold
			return nil, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/shortages", nil)
	resp := httptest.NewRecorder()
	ShortageReport(svc, testLogger())(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.Code)
	}
	if captured != nil {
		t.Fatalf("expected nil threshold, got %d", *captured)
	}
}

func TestShortageReportRejectsNonNumeric(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/shortages?threshold=abc", nil)
	resp := httptest.NewRecorder()
	ShortageReport(&testInventoryService{}, testLogger())(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}
