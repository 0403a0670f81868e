// cmd/server/providers.go
package main

import (
	"statusfeed/internal/config"
	"statusfeed/internal/credentials"
)

// provideCredentialScheme selects the password scheme from config. The
// default is plaintext for parity with the system this service replaces.
func provideCredentialScheme(cfg *config.Config) (credentials.Scheme, error) {
	return credentials.New(cfg.App.CredentialScheme)
}
