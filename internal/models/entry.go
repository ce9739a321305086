package models

import "time"

// Entry represents one subscription-account credential record: the
// gmail/password pair handed to a customer, its validity window, which
// upstream account it was provisioned on, and the customer's mobile number.
type Entry struct {
	ID           string    `json:"id"`
	Gmail        string    `json:"gmail"`
	Password     string    `json:"password"`
	StartDate    string    `json:"startDate"`
	EndDate      string    `json:"endDate"`
	AccountNo    string    `json:"accountNo"` // "1" or "2"
	MobileNumber string    `json:"mobileNumber"`
	CreatedAt    time.Time `json:"createdAt"`
}

// EntryUpdate carries a partial update. Nil fields are left untouched.
type EntryUpdate struct {
	Gmail        *string `json:"gmail"`
	Password     *string `json:"password"`
	StartDate    *string `json:"startDate"`
	EndDate      *string `json:"endDate"`
	AccountNo    *string `json:"accountNo"`
	MobileNumber *string `json:"mobileNumber"`
}
