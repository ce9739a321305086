package services

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/letsshopbd/subtrack/internal/models"
)

// ErrNotFound is returned when an operation targets an entry id that does
// not exist.
var ErrNotFound = errors.New("entry not found")

// EntryServiceProvider defines the interface for entry services.
type EntryServiceProvider interface {
	ListEntries() ([]models.Entry, error)
	GetEntryByID(id string) (models.Entry, error)
	CreateEntry(entry models.Entry) (models.Entry, error)
	UpdateEntry(id string, updates models.EntryUpdate) (models.Entry, error)
	DeleteEntry(id string) error
}

// EntryService provides business logic for subscription entries.
type EntryService struct {
	db *sql.DB
}

// NewEntryService creates a new EntryService.
func NewEntryService(db *sql.DB) *EntryService {
	return &EntryService{db: db}
}

// ListEntries retrieves all entries, newest first.
func (s *EntryService) ListEntries() ([]models.Entry, error) {
	rows, err := s.db.Query(`
		SELECT id, gmail, password, start_date, end_date, account_no, mobile_number, created_at
		FROM entries ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []models.Entry{}
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// GetEntryByID retrieves a single entry by its ID.
func (s *EntryService) GetEntryByID(id string) (models.Entry, error) {
	row := s.db.QueryRow(`
		SELECT id, gmail, password, start_date, end_date, account_no, mobile_number, created_at
		FROM entries WHERE id = ?`, id)
	return scanEntry(row)
}

// CreateEntry persists a new entry, assigning its ID and creation time.
func (s *EntryService) CreateEntry(entry models.Entry) (models.Entry, error) {
	entry.ID = uuid.New().String()
	entry.CreatedAt = time.Now().UTC()

	stmt, err := s.db.Prepare(`
		INSERT INTO entries (id, gmail, password, start_date, end_date, account_no, mobile_number, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return models.Entry{}, err
	}
	defer stmt.Close()

	_, err = stmt.Exec(entry.ID, entry.Gmail, entry.Password, entry.StartDate, entry.EndDate, entry.AccountNo, entry.MobileNumber, entry.CreatedAt)
	if err != nil {
		return models.Entry{}, err
	}
	return s.GetEntryByID(entry.ID)
}

// UpdateEntry applies a partial update to an entry and returns the updated
// record. Nil fields in updates are left as they are.
func (s *EntryService) UpdateEntry(id string, updates models.EntryUpdate) (models.Entry, error) {
	existing, err := s.GetEntryByID(id)
	if err != nil {
		return models.Entry{}, err
	}

	if updates.Gmail != nil {
		existing.Gmail = *updates.Gmail
	}
	if updates.Password != nil {
		existing.Password = *updates.Password
	}
	if updates.StartDate != nil {
		existing.StartDate = *updates.StartDate
	}
	if updates.EndDate != nil {
		existing.EndDate = *updates.EndDate
	}
	if updates.AccountNo != nil {
		existing.AccountNo = *updates.AccountNo
	}
	if updates.MobileNumber != nil {
		existing.MobileNumber = *updates.MobileNumber
	}

	stmt, err := s.db.Prepare(`
		UPDATE entries
		SET gmail = ?, password = ?, start_date = ?, end_date = ?, account_no = ?, mobile_number = ?
		WHERE id = ?`)
	if err != nil {
		return models.Entry{}, err
	}
	defer stmt.Close()

	_, err = stmt.Exec(existing.Gmail, existing.Password, existing.StartDate, existing.EndDate, existing.AccountNo, existing.MobileNumber, id)
	if err != nil {
		return models.Entry{}, err
	}
	return s.GetEntryByID(id)
}

// DeleteEntry removes an entry from the database.
func (s *EntryService) DeleteEntry(id string) error {
	res, err := s.db.Exec("DELETE FROM entries WHERE id = ?", id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// scanEntry scans a single row into an Entry struct.
func scanEntry(scanner interface{ Scan(...interface{}) error }) (models.Entry, error) {
	var entry models.Entry
	err := scanner.Scan(
		&entry.ID,
		&entry.Gmail,
		&entry.Password,
		&entry.StartDate,
		&entry.EndDate,
		&entry.AccountNo,
		&entry.MobileNumber,
		&entry.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Entry{}, ErrNotFound
		}
		return models.Entry{}, err
	}
	return entry, nil
}
