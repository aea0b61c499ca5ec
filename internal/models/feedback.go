package models

import "time"

// Review is per-location user feedback. It never feeds back into the
// location's derived rating.
type Review struct {
	ID         int       `json:"id"`
	LocationID int       `json:"location_id"`
	UserID     int       `json:"user_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
}

// Proposition is a free-text suggested edit for a location. Stored only;
// nothing applies it automatically.
type Proposition struct {
	ID         int       `json:"id"`
	LocationID int       `json:"location_id"`
	UserID     int       `json:"user_id"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
}
