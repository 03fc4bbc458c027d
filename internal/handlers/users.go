package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/yatharth-sriv/usergate/internal/store"
)

// UsersHandler provides the user CRUD endpoints backed by the shared store.
type UsersHandler struct {
	store *store.Store
}

// NewUsersHandler creates a new UsersHandler.
func NewUsersHandler(s *store.Store) *UsersHandler {
	return &UsersHandler{store: s}
}

// Routes registers user routes on the given chi router.
func (h *UsersHandler) Routes(r chi.Router) {
	r.Get("/sharedstate", h.SharedState)
	r.Post("/create-user", h.CreateUser)
	r.Get("/getuser/{id}", h.GetUser)
	r.Get("/users", h.ListUsers)
	r.Put("/update-user/{id}", h.UpdateUser)
	r.Delete("/delete-user/{id}", h.DeleteUser)
}

// userRequest is the JSON body accepted by create and update. Both
// fields must be present.
type userRequest struct {
	ID       *string `json:"id"`
	Username *string `json:"username"`
}

// decodeUser reads a userRequest body and writes the error response
// itself when the body is unusable.
func decodeUser(w http.ResponseWriter, r *http.Request) (store.User, bool) {
	var req userRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, err)
		return store.User{}, false
	}
	if req.ID == nil || req.Username == nil {
		writeError(w, http.StatusBadRequest, "id and username are required")
		return store.User{}, false
	}
	return store.User{ID: *req.ID, Username: *req.Username}, true
}

// userID reads the {id} path param, writing a 400 if it is not valid
// percent-encoding.
func userID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, err := pathParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return "", false
	}
	return id, true
}

// SharedState reports how many users are held in memory.
func (h *UsersHandler) SharedState(w http.ResponseWriter, r *http.Request) {
	writeText(w, fmt.Sprintf(" Total Users in  memory %d", h.store.Len()))
}

// CreateUser stores the posted user under its own id, replacing any
// existing entry.
func (h *UsersHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	u, ok := decodeUser(w, r)
	if !ok {
		return
	}
	h.store.Insert(u.ID, u)
	writeJSON(w, http.StatusOK, message{Message: "User Created"})
}

// GetUser returns a single user by id.
func (h *UsersHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}
	u, err := h.store.Get(id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, fmt.Sprintf("user %s not found", id))
		return
	}
	writeJSON(w, http.StatusOK, u)
}

// ListUsers returns all users in unspecified order.
func (h *UsersHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.List())
}

// UpdateUser replaces an existing user. The path id selects the entry;
// the body, including its own id field, is stored as-is.
func (h *UsersHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}
	u, ok := decodeUser(w, r)
	if !ok {
		return
	}
	if err := h.store.Update(id, u); errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, fmt.Sprintf("user %s not found", id))
		return
	}
	writeJSON(w, http.StatusOK, message{Message: fmt.Sprintf("User with id %s updated", id)})
}

// DeleteUser removes a user by id.
func (h *UsersHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}
	if !h.store.Remove(id) {
		writeError(w, http.StatusNotFound, fmt.Sprintf("user %s not found", id))
		return
	}
	writeJSON(w, http.StatusOK, message{Message: fmt.Sprintf("User with id %s deleted", id)})
}
