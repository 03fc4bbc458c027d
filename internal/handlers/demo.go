package handlers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// DemoHandler serves the stateless demonstration endpoints.
type DemoHandler struct{}

// NewDemoHandler creates a new DemoHandler.
func NewDemoHandler() *DemoHandler {
	return &DemoHandler{}
}

// Routes registers the demo routes on the given chi router.
func (h *DemoHandler) Routes(r chi.Router) {
	r.Get("/", h.Root)
	r.Get("/user", h.User)
	r.Get("/greet", h.Greet)
	r.Get("/greet/{name}", h.GreetPath)
	r.Post("/echo", h.Echo)
}

// Root returns a fixed greeting.
func (h *DemoHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeText(w, "Hello World")
}

// User returns a fixed sample user. Unlike stored users its id is numeric.
func (h *DemoHandler) User(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		ID       uint32 `json:"id"`
		Username string `json:"username"`
	}{ID: 1, Username: "yatharth"})
}

// Greet greets the required "name" query parameter.
func (h *DemoHandler) Greet(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if !q.Has("name") {
		http.Error(w, "missing query parameter: name", http.StatusBadRequest)
		return
	}
	writeText(w, fmt.Sprintf("Greetings from the axum server %s", q.Get("name")))
}

// GreetPath echoes the {name} path segment.
func (h *DemoHandler) GreetPath(w http.ResponseWriter, r *http.Request) {
	name, err := pathParam(r, "name")
	if err != nil {
		http.Error(w, "invalid path parameter: name", http.StatusBadRequest)
		return
	}
	writeText(w, name)
}

// Echo wraps the posted message in a server-side sentence.
func (h *DemoHandler) Echo(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Message *string `json:"message"`
	}
	if err := decodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}
	if req.Message == nil {
		writeError(w, http.StatusBadRequest, "missing field: message")
		return
	}

	zerolog.Ctx(r.Context()).Debug().Str("message", *req.Message).Msg("echo")

	writeJSON(w, http.StatusOK, message{
		Message: fmt.Sprintf("This is some added response coming from server %s", *req.Message),
	})
}
