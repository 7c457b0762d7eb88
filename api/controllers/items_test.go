package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/locofly/inventory-backend/internal/inventory"
	"github.com/locofly/inventory-backend/pkg/enums"
	pkgerrors "github.com/locofly/inventory-backend/pkg/errors"
)

func addSecondRouteParam(req *http.Request, key, value string) *http.Request {
	if routeCtx := chi.RouteContext(req.Context()); routeCtx != nil {
		routeCtx.URLParams.Add(key, value)
		return req
	}
	return addRouteParam(req, key, value)
}

func TestSetItemQuantitySuccess(t *testing.T) {
	var captured inventory.SetQuantityInput
	svc := &testInventoryService{
		setQuantityFn: func(ctx context.Context, input inventory.SetQuantityInput) (*inventory.MutationResult, error) {
			captured = input
			return &inventory.MutationResult{
				LocationID:  input.LocationID,
				ItemName:    input.ItemName,
				NewQuantity: input.Quantity,
				Delta:       input.Quantity,
				Action:      enums.AuditActionInsert,
				Applied:     true,
			}, nil
		},
	}

	req := httptest.NewRequest(http.MethodPut, "/api/v1/locations/3/items/rice", strings.NewReader(`{"quantity":10,"barcode":"850012345"}`))
	req = addRouteParam(req, "locationID", "3")
	req = addSecondRouteParam(req, "itemName", "rice")
	resp := httptest.NewRecorder()
	SetItemQuantity(svc, testLogger())(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", resp.Code, resp.Body.String())
	}
	if captured.LocationID != 3 || captured.ItemName != "rice" || captured.Quantity != 10 {
		t.Fatalf("unexpected input %+v", captured)
	}
	if captured.Barcode == nil || *captured.Barcode != "850012345" {
		t.Fatalf("expected barcode passthrough, got %+v", captured.Barcode)
	}
}

func TestSetItemQuantityRejectsNegative(t *testing.T) {
	req := httptest.NewRequest(http.MethodPut, "/api/v1/locations/3/items/rice", strings.NewReader(`{"quantity":-2}`))
	req = addRouteParam(req, "locationID", "3")
	req = addSecondRouteParam(req, "itemName", "rice")
	resp := httptest.NewRecorder()
	SetItemQuantity(&testInventoryService{}, testLogger())(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestAdjustItemQuantityPassesDelta(t *testing.T) {
	var captured inventory.AdjustQuantityInput
	svc := &testInventoryService{
		adjustFn: func(ctx context.Context, input inventory.AdjustQuantityInput) (*inventory.MutationResult, error) {
			captured = input
			return &inventory.MutationResult{
				NewQuantity: 0,
				Delta:       input.Delta,
				Action:      enums.AuditActionAdjust,
				Clamped:     true,
				Applied:     true,
			}, nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/locations/3/items/rice/adjust", strings.NewReader(`{"delta":-10}`))
	req = addRouteParam(req, "locationID", "3")
	req = addSecondRouteParam(req, "itemName", "rice")
	resp := httptest.NewRecorder()
	AdjustItemQuantity(svc, testLogger())(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", resp.Code, resp.Body.String())
	}
	if captured.Delta != -10 {
		t.Fatalf("unexpected delta %d", captured.Delta)
	}

	var envelope struct {
		Data inventory.MutationResult `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if !envelope.Data.Clamped {
		t.Fatal("expected clamped flag in response")
	}
}

func TestAdjustItemQuantityRejectsMissingDelta(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/locations/3/items/rice/adjust", strings.NewReader(`{}`))
	req = addRouteParam(req, "locationID", "3")
	req = addSecondRouteParam(req, "itemName", "rice")
	resp := httptest.NewRecorder()
	AdjustItemQuantity(&testInventoryService{}, testLogger())(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestDeleteItemReportsNoOp(t *testing.T) {
	svc := &testInventoryService{
		deleteFn: func(ctx context.Context, input inventory.DeleteItemInput) (*inventory.MutationResult, error) {
			return &inventory.MutationResult{
				LocationID: input.LocationID,
				ItemName:   input.ItemName,
				Action:     enums.AuditActionDelete,
				Applied:    false,
			}, nil
		},
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/locations/3/items/rice", nil)
	req = addRouteParam(req, "locationID", "3")
	req = addSecondRouteParam(req, "itemName", "rice")
	resp := httptest.NewRecorder()
	DeleteItem(svc, testLogger())(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.Code)
	}
	var envelope struct {
		Data inventory.MutationResult `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if envelope.Data.Applied {
		t.Fatal("expected applied=false for missing record")
	}
}

func TestItemLocationsPropagatesValidation(t *testing.T) {
	svc := &testInventoryService{
		findLocationsFn: func(ctx context.Context, itemName string) ([]inventory.LocationStockDTO, error) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "item name is required")
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/items/%20/locations", nil)
	req = addRouteParam(req, "itemName", " ")
	resp := httptest.NewRecorder()
	ItemLocations(svc, testLogger())(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}
