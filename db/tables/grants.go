package tables

import (
	"time"

	"github.com/google/uuid"
)

// GrantTable represents the grants table
type GrantTable struct {
	ID                   int          `db:"id,omitempty"`
	UserID               uuid.UUID    `db:"user_id"`
	ApplicationID        int          `db:"application_id"`
	Code                 *string      `db:"code"`
	AccessToken          *string      `db:"access_token"`
	RefreshToken         *string      `db:"refresh_token"`
	AccessTokenExpiresAt *time.Time   `db:"access_token_expires_at"`
	Permissions          MapStructure `db:"permissions"`
	CreatedAt            time.Time    `db:"created_at"`
	UpdatedAt            *time.Time   `db:"updated_at"`
}
