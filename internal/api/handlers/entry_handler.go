package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/letsshopbd/subtrack/internal/models"
	"github.com/letsshopbd/subtrack/internal/services"
	"github.com/rs/zerolog/log"
)

// EntryHandler handles HTTP requests for subscription entries.
type EntryHandler struct {
	service services.EntryServiceProvider
}

// NewEntryHandler creates a new EntryHandler.
func NewEntryHandler(service services.EntryServiceProvider) *EntryHandler {
	return &EntryHandler{service: service}
}

// CreateEntryPayload defines the structure for create requests.
type CreateEntryPayload struct {
	Gmail        string `json:"gmail"`
	Password     string `json:"password"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	AccountNo    string `json:"accountNo"`
	MobileNumber string `json:"mobileNumber"`
}

// UpdateEntryPayload defines the structure for partial update requests.
type UpdateEntryPayload struct {
	ID string `json:"id"`
	models.EntryUpdate
}

// List handles the request to fetch all entries, newest first.
func (h *EntryHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.ListEntries()
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch entries")
		writeError(w, http.StatusInternalServerError, "Failed to fetch entries")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"entries": entries})
}

// Create handles the request to add a new entry.
func (h *EntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload CreateEntryPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Required fields, checked in a fixed order so the first missing one
	// names the error.
	required := []struct {
		name, value string
	}{
		{"gmail", payload.Gmail},
		{"password", payload.Password},
		{"startDate", payload.StartDate},
		{"endDate", payload.EndDate},
		{"accountNo", payload.AccountNo},
		{"mobileNumber", payload.MobileNumber},
	}
	for _, field := range required {
		if field.value == "" {
			writeError(w, http.StatusBadRequest, field.name+" is required")
			return
		}
	}

	if payload.AccountNo != "1" && payload.AccountNo != "2" {
		writeError(w, http.StatusBadRequest, "Account number must be 1 or 2")
		return
	}

	entry, err := h.service.CreateEntry(models.Entry{
		Gmail:        payload.Gmail,
		Password:     payload.Password,
		StartDate:    payload.StartDate,
		EndDate:      payload.EndDate,
		AccountNo:    payload.AccountNo,
		MobileNumber: payload.MobileNumber,
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to create entry")
		writeError(w, http.StatusInternalServerError, "Failed to create entry")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{"entry": entry})
}

// Update handles the request to partially update an entry.
func (h *EntryHandler) Update(w http.ResponseWriter, r *http.Request) {
	var payload UpdateEntryPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if payload.ID == "" {
		writeError(w, http.StatusBadRequest, "Entry ID is required")
		return
	}

	entry, err := h.service.UpdateEntry(payload.ID, payload.EntryUpdate)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Entry not found")
			return
		}
		log.Error().Err(err).Str("entry_id", payload.ID).Msg("Failed to update entry")
		writeError(w, http.StatusInternalServerError, "Failed to update entry")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"entry": entry})
}

// Delete handles the request to remove an entry. The id arrives as a
// query parameter.
func (h *EntryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "Entry ID is required")
		return
	}

	if err := h.service.DeleteEntry(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Entry not found")
			return
		}
		log.Error().Err(err).Str("entry_id", id).Msg("Failed to delete entry")
		writeError(w, http.StatusInternalServerError, "Failed to delete entry")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
