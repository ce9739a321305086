package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/letsshopbd/subtrack/internal/models"
	"github.com/letsshopbd/subtrack/internal/services"
)

// stubEntryService lets tests drive handler error mapping directly.
type stubEntryService struct {
	listErr   error
	createErr error
	updateErr error
	deleteErr error
}

func (s *stubEntryService) ListEntries() ([]models.Entry, error) {
	return []models.Entry{}, s.listErr
}

func (s *stubEntryService) GetEntryByID(id string) (models.Entry, error) {
	return models.Entry{ID: id}, nil
}

func (s *stubEntryService) CreateEntry(entry models.Entry) (models.Entry, error) {
	return entry, s.createErr
}

func (s *stubEntryService) UpdateEntry(id string, updates models.EntryUpdate) (models.Entry, error) {
	return models.Entry{ID: id}, s.updateErr
}

func (s *stubEntryService) DeleteEntry(id string) error {
	return s.deleteErr
}

const validCreateBody = `{"gmail":"a@gmail.com","password":"p","startDate":"2025-01-01","endDate":"2025-01-15","accountNo":"1","mobileNumber":"0171"}`

func TestHandlersMapPersistenceFailuresTo500(t *testing.T) {
	boom := errors.New("disk on fire")
	h := NewEntryHandler(&stubEntryService{listErr: boom, createErr: boom, updateErr: boom, deleteErr: boom})

	tests := []struct {
		name    string
		serve   func(http.ResponseWriter, *http.Request)
		method  string
		target  string
		body    string
		wantMsg string
	}{
		{"list", h.List, "GET", "/api/entries", "", "Failed to fetch entries"},
		{"create", h.Create, "POST", "/api/entries", validCreateBody, "Failed to create entry"},
		{"update", h.Update, "PATCH", "/api/entries", `{"id":"x"}`, "Failed to update entry"},
		{"delete", h.Delete, "DELETE", "/api/entries?id=x", "", "Failed to delete entry"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req *http.Request
			if tt.body != "" {
				req = httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			} else {
				req = httptest.NewRequest(tt.method, tt.target, nil)
			}
			rr := httptest.NewRecorder()
			tt.serve(rr, req)
			if rr.Code != http.StatusInternalServerError {
				t.Fatalf("got %d want 500", rr.Code)
			}
			if !strings.Contains(rr.Body.String(), tt.wantMsg) {
				t.Errorf("body %q missing %q", rr.Body.String(), tt.wantMsg)
			}
		})
	}
}

func TestHandlersMapNotFoundTo404(t *testing.T) {
	h := NewEntryHandler(&stubEntryService{updateErr: services.ErrNotFound, deleteErr: services.ErrNotFound})

	rr := httptest.NewRecorder()
	h.Update(rr, httptest.NewRequest("PATCH", "/api/entries", strings.NewReader(`{"id":"gone"}`)))
	if rr.Code != http.StatusNotFound {
		t.Errorf("update: got %d want 404", rr.Code)
	}

	rr = httptest.NewRecorder()
	h.Delete(rr, httptest.NewRequest("DELETE", "/api/entries?id=gone", nil))
	if rr.Code != http.StatusNotFound {
		t.Errorf("delete: got %d want 404", rr.Code)
	}
}

func TestCreateRejectsMalformedJSON(t *testing.T) {
	h := NewEntryHandler(&stubEntryService{})
	rr := httptest.NewRecorder()
	h.Create(rr, httptest.NewRequest("POST", "/api/entries", strings.NewReader("{not json")))
	if rr.Code != http.StatusBadRequest {
		t.Errorf("got %d want 400", rr.Code)
	}
}
