package event

import (
	"time"

	"github.com/google/uuid"
	"github.com/grantrx/grantrx/events"
)

const (
	GrantCreatedEvent            events.EventName = "grant_created"
	GrantTokensRotatedEvent      events.EventName = "grant_tokens_rotated"
	GrantPermissionsChangedEvent events.EventName = "grant_permissions_changed"

	ApplicationCreatedEvent events.EventName = "application_created"
)

// GrantCreated is raised when a (user, application) pair is authorized
// for the first time
type GrantCreated struct {
	GrantID       int
	ApplicationID int
	UserID        uuid.UUID
}

func (*GrantCreated) Name() events.EventName {
	return GrantCreatedEvent
}

// GrantTokensRotated is raised whenever a grant gets a fresh token triple
type GrantTokensRotated struct {
	GrantID       int
	ApplicationID int
	UserID        uuid.UUID
	ExpiresAt     *time.Time
}

func (*GrantTokensRotated) Name() events.EventName {
	return GrantTokensRotatedEvent
}

// GrantPermissionsChanged is raised when the permission map of a grant is replaced
type GrantPermissionsChanged struct {
	GrantID     int
	Permissions map[string]bool
}

func (*GrantPermissionsChanged) Name() events.EventName {
	return GrantPermissionsChangedEvent
}

// ApplicationCreated is raised when a new client application is registered
type ApplicationCreated struct {
	ApplicationID int
	ClientID      string
}

func (*ApplicationCreated) Name() events.EventName {
	return ApplicationCreatedEvent
}
