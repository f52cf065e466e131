package application

import (
	"github.com/grantrx/grantrx/db/tables"
	"golang.org/x/crypto/bcrypt"
)

func ApplicationFromDbType(table *tables.ApplicationTable) *Application {
	return &Application{
		id:           table.ID,
		clientID:     table.ClientID,
		clientSecret: table.ClientSecret,
		name:         table.Name,
	}
}

// Application is a registered client application a user may authorize
type Application struct {
	id           int
	clientID     string
	clientSecret *string
	name         string
}

func (a *Application) ID() int {
	return a.id
}

func (a *Application) Name() string {
	return a.name
}

func (a *Application) ClientID() string {
	return a.clientID
}

func (a *Application) HasSecret() bool {
	return a.clientSecret != nil
}

func (a *Application) ValidateClientSecret(input string) bool {
	//no secret set
	if a.clientSecret == nil {
		return true
	}
	sec := *a.clientSecret
	res := bcrypt.CompareHashAndPassword([]byte(sec), []byte(input))
	return res == nil
}
