package session

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// LogoutOutput is the Huma output for logging out.
type LogoutOutput struct {
	Status int
}

// sessionLogouter is the interface for deactivating a session.
type sessionLogouter interface {
	Logout()
}

// LogoutHandler handles POST /v1/session/logout.
type LogoutHandler struct {
	Session sessionLogouter
}

// NewLogoutHandler creates a new LogoutHandler.
func NewLogoutHandler(sess sessionLogouter) *LogoutHandler {
	return &LogoutHandler{Session: sess}
}

// Register registers the logout endpoint with the Huma API.
func (h *LogoutHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "logout",
		Method:      http.MethodPost,
		Path:        "/v1/session/logout",
		Summary:     "Log out",
		Description: "Deactivates the session. Logging out while logged out is a no-op.",
		Tags:        []string{"Session"},
	}, h.handle)
}

func (h *LogoutHandler) handle(ctx context.Context, _ *struct{}) (*LogoutOutput, error) {
	h.Session.Logout()
	return &LogoutOutput{Status: http.StatusNoContent}, nil
}
