package auth

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

const (
	service = "agenthub-cli"
	// A single credential slot per machine profile. Logging in to another
	// account overwrites it.
	account = "credential"
)

// SaveCredential persists the bearer credential securely in the OS keychain/credential manager
func SaveCredential(credential string) error {
	if err := keyring.Set(service, account, credential); err != nil {
		return fmt.Errorf("failed to save credential: %w", err)
	}
	return nil
}

// LoadCredential retrieves the bearer credential from the OS keychain/credential manager.
// An absent credential is not an error: requests are simply issued anonymously.
func LoadCredential() (string, error) {
	credential, err := keyring.Get(service, account)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to load credential: %w", err)
	}
	return credential, nil
}

// ClearCredential removes the bearer credential. Clearing is idempotent.
func ClearCredential() error {
	if err := keyring.Delete(service, account); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to clear credential: %w", err)
	}
	return nil
}
