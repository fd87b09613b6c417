package models

// SplitRecord is a saved bill-split summary. It is a lightweight audit row:
// the full per-person breakdown is recomputed on demand, never persisted.
type SplitRecord struct {
	// ID is the unique identifier for the record (UUID format).
	ID string `json:"id"`

	// AccountID is the account that saved the record.
	AccountID string `json:"-"`

	// TotalAmount is the bill total the split was computed from.
	TotalAmount float64 `json:"totalAmount"`

	// PersonCount is how many people the bill was split between.
	PersonCount int `json:"personCount"`

	// AmountPerPerson is the equal-split share, or the average share for
	// custom splits.
	AmountPerPerson float64 `json:"amountPerPerson"`

	// Note is an optional free-text annotation.
	Note string `json:"notes,omitempty"`

	// CreatedAt is the Unix timestamp when the record was saved.
	CreatedAt int64 `json:"createdAt"`
}
