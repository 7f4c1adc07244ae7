package service

import (
	"errors"
	"strings"
)

var errCredentialsMissing = errors.New("username and password are required")

// validateCredentials is a presence check only. Length and character rules
// are deliberately not enforced here.
func validateCredentials(username, password string) error {
	if strings.TrimSpace(username) == "" {
		return errCredentialsMissing
	}

	if strings.TrimSpace(password) == "" {
		return errCredentialsMissing
	}

	return nil
}
