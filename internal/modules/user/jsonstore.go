package user

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// storedUser is the on-disk shape. The API model hides the password hash
// from JSON, but the file store has to keep it.
type storedUser struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	FirstName    string    `json:"first_name,omitempty"`
	LastName     string    `json:"last_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type jsonStore struct {
	mu   sync.Mutex
	path string
}

// NewJSONStore returns a file-backed Repository.
func NewJSONStore(path string) Repository {
	return &jsonStore{path: path}
}

func (s *jsonStore) load() ([]storedUser, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}
	var users []storedUser
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("user: corrupt store %s: %w", s.path, err)
	}
	return users, nil
}

func (s *jsonStore) save(users []storedUser) error {
	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

func toModel(su storedUser) *User {
	return &User{
		ID:           su.ID,
		Email:        su.Email,
		PasswordHash: su.PasswordHash,
		FirstName:    su.FirstName,
		LastName:     su.LastName,
		CreatedAt:    su.CreatedAt,
		UpdatedAt:    su.UpdatedAt,
	}
}

func (s *jsonStore) CreateUser(ctx context.Context, u *User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load()
	if err != nil {
		return err
	}
	for _, existing := range users {
		if strings.EqualFold(existing.Email, u.Email) {
			return fmt.Errorf("user: email %s already registered", u.Email)
		}
	}
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now
	users = append(users, storedUser{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	})
	return s.save(users)
}

func (s *jsonStore) GetUserByID(ctx context.Context, id string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load()
	if err != nil {
		return nil, err
	}
	for _, su := range users {
		if su.ID.String() == id {
			return toModel(su), nil
		}
	}
	return nil, ErrNotFound
}

func (s *jsonStore) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load()
	if err != nil {
		return nil, err
	}
	for _, su := range users {
		if strings.EqualFold(su.Email, email) {
			return toModel(su), nil
		}
	}
	return nil, ErrNotFound
}
