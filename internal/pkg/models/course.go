package models

import (
	"time"
)

// Course is a static catalog entry. The catalog is read-only from this
// service's perspective; entries are seeded directly into the store.
type Course struct {
	ID          string    `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Price       float64   `json:"price" db:"price"`
	Duration    string    `json:"duration" db:"duration"`
	Instructor  string    `json:"instructor" db:"instructor"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
