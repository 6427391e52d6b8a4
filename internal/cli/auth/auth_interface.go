package auth

// CredentialStore defines the interface for credential storage operations
// This allows us to mock the keyring in tests
type CredentialStore interface {
	Save(credential string) error
	Load() (string, error)
	Clear() error
}

// defaultCredentialStore implements CredentialStore using the OS keyring
type defaultCredentialStore struct{}

var Default CredentialStore = &defaultCredentialStore{}

func (d *defaultCredentialStore) Save(credential string) error {
	return SaveCredential(credential)
}

func (d *defaultCredentialStore) Load() (string, error) {
	return LoadCredential()
}

func (d *defaultCredentialStore) Clear() error {
	return ClearCredential()
}
