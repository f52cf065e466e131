package config

import (
	"errors"
	"os"
	"time"
)

// ServerConfiguration contains the server settings
type ServerConfiguration struct {
	Port    int
	Address string
}

// DatabaseConfiguration contains the settings required to connect to a database
type DatabaseConfiguration struct {
	Type string
	DSN  string `json:"-"`
}

// GrantConfiguration configures the grant lifecycle engine,
// it is read-only after process start
type GrantConfiguration struct {
	// RequestablePermissions is the list of permissions a client may be
	// granted, a new grant defaults to all of them
	RequestablePermissions []string `mapstructure:"requestable-permissions"`
	// RequireRefreshWithin bounds the access token lifetime, zero means
	// access tokens never expire
	RequireRefreshWithin time.Duration `mapstructure:"require-refresh-within"`
}

// CipherConfiguration holds the keyset for the token field cipher
type CipherConfiguration struct {
	Keyset     string `mapstructure:"keyset"      json:"-"`
	KeysetFile string `mapstructure:"keyset-file"`
}

// CORSConfiguration very basic cors configuration
type CORSConfiguration struct {
	AllowCredentials bool     `mapstructure:"allow-credentials"`
	AllowedMethods   []string `mapstructure:"allowed-methods"`
	AllowedOrigins   []string `mapstructure:"allowed-origins"`
}

// Configuration habours the entire grantrx configuration
type Configuration struct {
	Server   *ServerConfiguration   `mapstructure:"server"`
	Database *DatabaseConfiguration `mapstructure:"database"`
	Grants   *GrantConfiguration    `mapstructure:"grants"`
	Cipher   *CipherConfiguration   `mapstructure:"cipher"`
	CORS     *CORSConfiguration     `mapstructure:"cors"`
}

// Validate does some basic validation of the config file and tries to be helpful on missconfiguration
func (c *Configuration) Validate() error {
	if c.Database == nil {
		return errors.New("no database configuration found")
	}
	if c.Server == nil {
		return errors.New("no server configuration found")
	}
	if c.Grants == nil {
		return errors.New("no grants configuration found")
	}
	if c.Cipher == nil || (c.Cipher.Keyset == "" && c.Cipher.KeysetFile == "") {
		return errors.New(
			"no field cipher keyset configured, generate one with the keyset command and set either cipher.keyset or cipher.keyset-file",
		)
	}
	if c.Grants.RequireRefreshWithin < 0 {
		return errors.New("grants.require-refresh-within may not be negative")
	}
	return nil
}

// ResolveKeyset returns the configured keyset, loading it from
// cipher.keyset-file when the inline value is not set
func (c *Configuration) ResolveKeyset() (string, error) {
	if c.Cipher.Keyset != "" {
		return c.Cipher.Keyset, nil
	}
	raw, err := os.ReadFile(c.Cipher.KeysetFile)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// DebugMode returns true if the DEBUG_MODE variable is set
func (*Configuration) DebugMode() bool {
	if r := os.Getenv("GRX_DEBUG_MODE"); r == "true" {
		return true
	}
	return false
}
