package store

import (
	"errors"
	"sync"
)

// ErrNotFound is returned when no user is stored under the requested id.
var ErrNotFound = errors.New("user not found")

// User is the record held by the store. The id is caller-supplied and is
// also used as the map key on create.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// Store is a thread-safe, in-memory user store. Every method holds the
// single lock for exactly one map operation.
type Store struct {
	mu    sync.Mutex
	users map[string]User
}

// New creates a new empty store.
func New() *Store {
	return &Store{
		users: make(map[string]User),
	}
}

// Insert stores u under id, overwriting any existing entry.
func (s *Store) Insert(id string, u User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users[id] = u
}

// Get returns the user stored under id.
func (s *Store) Get(id string) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

// Update overwrites the entry under id only if one already exists. The
// stored record is u as given; its ID field is not reconciled with id.
func (s *Store) Update(id string, u User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return ErrNotFound
	}
	s.users[id] = u
	return nil
}

// Remove deletes the entry under id and reports whether one was present.
func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return false
	}
	delete(s.users, id)
	return true
}

// List returns a snapshot of all users in unspecified order. The slice is
// never nil.
func (s *Store) List() []User {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	return out
}

// Len returns the number of stored users.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.users)
}
