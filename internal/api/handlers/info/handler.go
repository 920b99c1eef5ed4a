package info

import (
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-CalendarBooking/internal/api/handlers"
)

// Response тело ответа корневого endpoint
type Response struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

type Handler struct {
	name    string
	version string
}

func NewHandler(name, version string) *Handler {
	return &Handler{name: name, version: version}
}

// Handle GET /
func (h *Handler) Handle(w http.ResponseWriter, _ *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, Response{
		Message: fmt.Sprintf("Welcome to %s", h.name),
		Version: h.version,
	})
}
