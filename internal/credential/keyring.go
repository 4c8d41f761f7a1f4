package credential

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/99designs/keyring"

	"notes-copilot/config"
	"notes-copilot/pkg/ticktick"
)

const (
	tickTickKey         = "ticktick_tokens"
	defaultFilePassword = "notes-copilot-file-key"
)

// Store persists TickTick tokens in the system keyring. It implements
// ticktick.CredentialStore.
type Store struct {
	ring keyring.Keyring
}

// Open returns a Store on the keyring described by cfg.
func Open(cfg config.CredentialsConfig) (*Store, error) {
	backends := []keyring.BackendType{
		keyring.KeychainBackend,
		keyring.SecretServiceBackend,
		keyring.WinCredBackend,
		keyring.PassBackend,
		keyring.FileBackend,
	}
	if cfg.Backend != "" {
		backends = []keyring.BackendType{keyring.BackendType(cfg.Backend)}
	}

	password := cfg.Password
	if password == "" {
		password = defaultFilePassword
	}

	ring, err := keyring.Open(keyring.Config{
		ServiceName:              cfg.ServiceName,
		AllowedBackends:          backends,
		FileDir:                  cfg.FileDir,
		FilePasswordFunc:         keyring.FixedStringPrompt(password),
		KeychainTrustApplication: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening keyring: %w", err)
	}
	return New(ring), nil
}

// New wraps an already opened keyring.
func New(ring keyring.Keyring) *Store {
	return &Store{ring: ring}
}

// Load returns the stored tokens. Nothing stored yet is not an error.
func (s *Store) Load(ctx context.Context) (ticktick.Tokens, error) {
	item, err := s.ring.Get(tickTickKey)
	if errors.Is(err, keyring.ErrKeyNotFound) {
		return ticktick.Tokens{}, nil
	}
	if err != nil {
		return ticktick.Tokens{}, fmt.Errorf("getting credential %q: %w", tickTickKey, err)
	}

	var tokens ticktick.Tokens
	if err := json.Unmarshal(item.Data, &tokens); err != nil {
		return ticktick.Tokens{}, fmt.Errorf("decoding credential %q: %w", tickTickKey, err)
	}
	return tokens, nil
}

// Save overwrites the stored tokens.
func (s *Store) Save(ctx context.Context, tokens ticktick.Tokens) error {
	data, err := json.Marshal(tokens)
	if err != nil {
		return fmt.Errorf("encoding credential %q: %w", tickTickKey, err)
	}

	err = s.ring.Set(keyring.Item{
		Key:         tickTickKey,
		Data:        data,
		Label:       "notes-copilot TickTick tokens",
		Description: "OAuth tokens for the TickTick Open API",
	})
	if err != nil {
		return fmt.Errorf("setting credential %q: %w", tickTickKey, err)
	}
	return nil
}

// Delete removes the stored tokens.
func (s *Store) Delete(ctx context.Context) error {
	err := s.ring.Remove(tickTickKey)
	if err != nil && !errors.Is(err, keyring.ErrKeyNotFound) {
		return fmt.Errorf("deleting credential %q: %w", tickTickKey, err)
	}
	return nil
}
