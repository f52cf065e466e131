package application

import (
	"context"
	"errors"

	"github.com/grantrx/grantrx/db"
	"github.com/grantrx/grantrx/db/tables"
	"github.com/grantrx/grantrx/events"
	"github.com/grantrx/grantrx/events/event"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// ErrNotFound indicates the requested entity was not found, a failed
// client secret check is reported the same way on purpose
var ErrNotFound = errors.New("application not found")

// ErrClientIDExists indicates the client_id is already taken
var ErrClientIDExists = errors.New("client_id already exists")

type ApplicationStorer interface {
	ApplicationByID(ctx context.Context, id int) (*tables.ApplicationTable, error)
	ApplicationByClientID(ctx context.Context, clientID string) (*tables.ApplicationTable, error)
	Applications(ctx context.Context, opts db.ListOptions) ([]*tables.ApplicationTable, int, error)
	CreateApplication(ctx context.Context, clientID string, clientSecret *string, name string) (int, error)
}

type Dispatcher interface {
	Dispatch(ctx context.Context, event events.Event)
}

type Service struct {
	log        *zap.Logger
	store      ApplicationStorer
	dispatcher Dispatcher
}

func NewApplicationService(log *zap.Logger,
	store ApplicationStorer,
	dispatcher Dispatcher) *Service {
	return &Service{
		log:        log,
		store:      store,
		dispatcher: dispatcher,
	}
}

func (s *Service) build(table *tables.ApplicationTable) *Application {
	return ApplicationFromDbType(table)
}

func (s *Service) ApplicationByID(ctx context.Context, id int) (*Application, error) {
	entry, err := s.store.ApplicationByID(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.build(entry), nil
}

func (s *Service) ApplicationByClientID(ctx context.Context, clientID string) (*Application, error) {
	entry, err := s.store.ApplicationByClientID(ctx, clientID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.build(entry), nil
}

// Authenticate resolves a client application by client_id and checks its
// secret, an unknown client and a wrong secret are indistinguishable for
// the caller
func (s *Service) Authenticate(
	ctx context.Context,
	clientID string,
	clientSecret string,
) (*Application, error) {
	app, err := s.ApplicationByClientID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if !app.ValidateClientSecret(clientSecret) {
		return nil, ErrNotFound
	}
	return app, nil
}

// List returns a page of registered applications
func (s *Service) List(ctx context.Context, page int, pageSize int) ([]*Application, int, error) {
	entries, total, err := s.store.Applications(ctx, db.ListOptions{Page: page, PageSize: pageSize})
	if err != nil {
		return nil, 0, err
	}
	apps := make([]*Application, len(entries))
	for i, v := range entries {
		apps[i] = s.build(v)
	}
	return apps, total, nil
}

// Create registers a new client application, the secret is stored bcrypt-hashed
func (s *Service) Create(
	ctx context.Context,
	clientID string,
	clientSecret string,
	name string,
) (int, error) {
	var secret *string
	if clientSecret != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(clientSecret), bcrypt.DefaultCost)
		if err != nil {
			return 0, err
		}
		h := string(hashed)
		secret = &h
	}
	id, err := s.store.CreateApplication(ctx, clientID, secret, name)
	if err != nil {
		if errors.Is(err, db.ErrAlreadyExists) {
			return 0, ErrClientIDExists
		}
		s.log.Error("could not create application", zap.Error(err))
		return 0, err
	}
	s.dispatcher.Dispatch(ctx, &event.ApplicationCreated{
		ApplicationID: id,
		ClientID:      clientID,
	})
	return id, nil
}
