package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func newHandlerFixture(t *testing.T) (*Handler, *echo.Echo) {
	t.Helper()
	return NewHandler(newTestService(t)), echo.New()
}

func TestHandler_FindAlternatives(t *testing.T) {
	h, e := newHandlerFixture(t)
	req := httptest.NewRequest(http.MethodGet, "/?name=lipitor", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.FindAlternatives(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var alts []Alternative
	if err := json.Unmarshal(rec.Body.Bytes(), &alts); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(alts) != 3 {
		t.Errorf("expected 3 alternatives, got %d", len(alts))
	}
}

func TestHandler_FindAlternatives_MissingName(t *testing.T) {
	h, e := newHandlerFixture(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.FindAlternatives(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Errorf("expected 400 HTTPError, got %v", err)
	}
}

func TestHandler_Resources_Search(t *testing.T) {
	h, e := newHandlerFixture(t)
	req := httptest.NewRequest(http.MethodGet, "/?q=diabetes", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Resources(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var resp struct {
		Searched bool       `json:"searched"`
		Data     []Resource `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Searched {
		t.Error("expected searched=true")
	}
	if len(resp.Data) != 1 {
		t.Errorf("expected 1 match, got %d", len(resp.Data))
	}
}

func TestHandler_Resources_EmptyQuery(t *testing.T) {
	h, e := newHandlerFixture(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Resources(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var resp struct {
		Searched bool       `json:"searched"`
		Data     []Resource `json:"data"`
	}
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Searched {
		t.Error("expected searched=false for empty query")
	}
	if len(resp.Data) != 0 {
		t.Errorf("expected no data, got %d", len(resp.Data))
	}
}

func TestHandler_Resources_Category(t *testing.T) {
	h, e := newHandlerFixture(t)
	req := httptest.NewRequest(http.MethodGet, "/?category=Nutrition", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Resources(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var resp struct {
		Data []Resource `json:"data"`
	}
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if len(resp.Data) != 1 || resp.Data[0].Category != "Nutrition" {
		t.Errorf("unexpected category filter result: %+v", resp.Data)
	}
}

func TestHandler_Categories(t *testing.T) {
	h, e := newHandlerFixture(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Categories(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var cats []string
	json.Unmarshal(rec.Body.Bytes(), &cats)
	if len(cats) != 6 {
		t.Errorf("expected 6 categories, got %d", len(cats))
	}
}
