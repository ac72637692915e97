package admission

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestHandler_Create(t *testing.T) {
	svc := newTestService([]string{"P1001", "P1002"}, []string{"S2001"})
	h := NewHandler(svc)
	e := echo.New()

	body := `{"patientID":"p1001","staffID":"s2001","roomNum":"302"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Create(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}
}

func TestHandler_Create_UnknownPatient(t *testing.T) {
	h := NewHandler(newTestService(nil, nil))
	e := echo.New()

	body := `{"patientID":"P9999","staffID":"S2001"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Create(c)
	if err == nil {
		t.Fatal("expected error for unknown patient")
	}
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422 HTTPError, got %v", err)
	}
	if msg, _ := httpErr.Message.(string); !strings.Contains(msg, "P9999") {
		t.Errorf("error message does not name the missing ID: %v", httpErr.Message)
	}
}
