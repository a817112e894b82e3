package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestJSONSuccess_IncludesRequestID(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r = r.WithContext(ContextWithRequestID(r.Context(), "req-1"))
	w := httptest.NewRecorder()

	JSONSuccess(r, w, map[string]string{"key": "value"}, map[string]interface{}{"total": 10})

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if w.Header().Get("Content-Type") != "application/json" {
		t.Error("Expected Content-Type application/json")
	}

	var response struct {
		Success bool                   `json:"success"`
		Meta    map[string]interface{} `json:"meta"`
	}
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !response.Success {
		t.Error("Expected success to be true")
	}
	if response.Meta["request_id"] != "req-1" {
		t.Errorf("Expected request_id in meta, got %v", response.Meta["request_id"])
	}
	if response.Meta["total"] != float64(10) {
		t.Errorf("Expected custom meta to be kept, got %v", response.Meta["total"])
	}
}

func TestJSONBusinessError_SingleDetail(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", nil)
	w := httptest.NewRecorder()

	JSONBusinessError(r, w, errors.New("isbn already registered"))

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}

	var response ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response.Success {
		t.Error("Expected success to be false")
	}
	if response.Error.Code != "BUSINESS_ERROR" {
		t.Errorf("Expected BUSINESS_ERROR, got %s", response.Error.Code)
	}
	if len(response.Error.Details) != 1 || response.Error.Details[0].Message != "isbn already registered" {
		t.Errorf("Expected exactly one detail, got %+v", response.Error.Details)
	}
}

func TestJSONValidationError_OneDetailPerField(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", nil)
	w := httptest.NewRecorder()

	JSONValidationError(r, w, []ValidationError{
		{Field: "title", Message: "title is required"},
		{Field: "isbn", Message: "isbn is required"},
	})

	var response ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response.Error.Code != "VALIDATION_ERROR" {
		t.Errorf("Expected VALIDATION_ERROR, got %s", response.Error.Code)
	}
	if len(response.Error.Details) != 2 {
		t.Errorf("Expected 2 details, got %d", len(response.Error.Details))
	}
}

func TestNotFound_EmptyBody(t *testing.T) {
	w := httptest.NewRecorder()
	NotFound(w)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Errorf("Expected empty body, got %q", w.Body.String())
	}
}
