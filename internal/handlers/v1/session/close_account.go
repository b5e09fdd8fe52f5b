package session

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/mcintyrejak/bankist/internal/logging"
	"github.com/mcintyrejak/bankist/internal/operator/actions"
	"github.com/mcintyrejak/bankist/internal/service"
)

// CloseAccountBody is the request body for closing the active account.
type CloseAccountBody struct {
	ConfirmUsername string `json:"confirmUsername" minLength:"1" doc:"Username of the account being closed"`
	ConfirmPIN      int    `json:"confirmPin" doc:"Pin of the account being closed"`
}

// CloseAccountInput is the Huma input for closing the active account.
type CloseAccountInput struct {
	Body CloseAccountBody
}

// CloseAccountOutput is the Huma output for closing the active account.
type CloseAccountOutput struct {
	Status int
}

// accountCloser is the interface for removing the active account.
type accountCloser interface {
	CloseAccount(ctx context.Context, confirmUsername string, confirmPIN int) error
}

// CloseAccountHandler handles DELETE /v1/session/account.
type CloseAccountHandler struct {
	Session accountCloser
}

// NewCloseAccountHandler creates a new CloseAccountHandler.
func NewCloseAccountHandler(sess accountCloser) *CloseAccountHandler {
	return &CloseAccountHandler{Session: sess}
}

// Register registers the close account endpoint with the Huma API.
func (h *CloseAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "close-account",
		Method:      http.MethodDelete,
		Path:        "/v1/session/account",
		Summary:     "Close the active account",
		Description: "Removes the active account after the username and pin are confirmed, then logs out.",
		Tags:        []string{"Session"},
	}, h.handle)
}

func (h *CloseAccountHandler) handle(ctx context.Context, input *CloseAccountInput) (*CloseAccountOutput, error) {
	logData := logging.GetLogData(ctx)

	err := h.Session.CloseAccount(ctx, input.Body.ConfirmUsername, input.Body.ConfirmPIN)
	switch {
	case errors.Is(err, service.ErrNotLoggedIn):
		return nil, huma.NewError(http.StatusUnauthorized, "not logged in")
	case errors.Is(err, actions.ErrInvalidCredentials):
		return nil, huma.NewError(http.StatusUnauthorized, "confirmation does not match the active account")
	case err != nil:
		return nil, huma.NewError(http.StatusInternalServerError, "failed to close account", err)
	}

	if logData != nil {
		logData.AddData("closedUsername", input.Body.ConfirmUsername)
	}

	return &CloseAccountOutput{Status: http.StatusNoContent}, nil
}
