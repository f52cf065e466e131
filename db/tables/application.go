package tables

import (
	"time"
)

// ApplicationTable represents the applications table
type ApplicationTable struct {
	ID           int     `db:"id,omitempty"`
	ClientID     string  `db:"client_id"`
	ClientSecret *string `db:"client_secret" json:"-"`
	Name         string  `db:"name"`

	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt *time.Time `db:"updated_at"`
}
