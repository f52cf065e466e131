package db

import (
	"context"

	"github.com/grantrx/grantrx/db/tables"
	"github.com/grantrx/grantrx/events"
	"github.com/grantrx/grantrx/events/event"
	"go.uber.org/zap"
)

// Auditor is a way to write audit log events into a persistent store
type Auditor interface {
	addToAuditLog(event string, payload tables.MapStructure) error
}

// BootstrapListeners registers all the event listeners from this package
func BootstrapListeners(store Auditor, log *zap.Logger) []events.EventListener {
	return []events.EventListener{
		&grantCreatedListener{
			log:   log,
			store: store,
		},
		&grantTokensRotatedListener{
			log:   log,
			store: store,
		},
		&grantPermissionsChangedListener{
			log:   log,
			store: store,
		},
		&applicationCreatedListener{
			log:   log,
			store: store,
		},
	}
}

type grantCreatedListener struct {
	store Auditor
	log   *zap.Logger
}

func (*grantCreatedListener) ForEvent() events.EventName {
	return event.GrantCreatedEvent
}

func (l *grantCreatedListener) Handle(_ context.Context, ev events.Event) error {
	e := ev.(*event.GrantCreated)
	err := l.store.addToAuditLog(string(l.ForEvent()), map[string]interface{}{
		"grant_id":       e.GrantID,
		"application_id": e.ApplicationID,
		"user_id":        e.UserID.String(),
	})
	if err != nil {
		l.log.Warn("Could not persist event to audit log", zap.Error(err))
	}
	return nil
}

type grantTokensRotatedListener struct {
	store Auditor
	log   *zap.Logger
}

func (*grantTokensRotatedListener) ForEvent() events.EventName {
	return event.GrantTokensRotatedEvent
}

func (l *grantTokensRotatedListener) Handle(_ context.Context, ev events.Event) error {
	e := ev.(*event.GrantTokensRotated)
	payload := map[string]interface{}{
		"grant_id":       e.GrantID,
		"application_id": e.ApplicationID,
		"user_id":        e.UserID.String(),
	}
	// token values never go into the audit log, only the expiry
	if e.ExpiresAt != nil {
		payload["expires_at"] = e.ExpiresAt.UTC().String()
	}
	err := l.store.addToAuditLog(string(l.ForEvent()), payload)
	if err != nil {
		l.log.Warn("Could not persist event to audit log", zap.Error(err))
	}
	return nil
}

type grantPermissionsChangedListener struct {
	store Auditor
	log   *zap.Logger
}

func (*grantPermissionsChangedListener) ForEvent() events.EventName {
	return event.GrantPermissionsChangedEvent
}

func (l *grantPermissionsChangedListener) Handle(_ context.Context, ev events.Event) error {
	e := ev.(*event.GrantPermissionsChanged)
	permissions := make(map[string]interface{}, len(e.Permissions))
	for k, v := range e.Permissions {
		permissions[k] = v
	}
	err := l.store.addToAuditLog(string(l.ForEvent()), map[string]interface{}{
		"grant_id":    e.GrantID,
		"permissions": permissions,
	})
	if err != nil {
		l.log.Warn("Could not persist event to audit log", zap.Error(err))
	}
	return nil
}

type applicationCreatedListener struct {
	store Auditor
	log   *zap.Logger
}

func (*applicationCreatedListener) ForEvent() events.EventName {
	return event.ApplicationCreatedEvent
}

func (l *applicationCreatedListener) Handle(_ context.Context, ev events.Event) error {
	e := ev.(*event.ApplicationCreated)
	err := l.store.addToAuditLog(string(l.ForEvent()), map[string]interface{}{
		"application_id": e.ApplicationID,
		"client_id":      e.ClientID,
	})
	if err != nil {
		l.log.Warn("Could not persist event to audit log", zap.Error(err))
	}
	return nil
}
