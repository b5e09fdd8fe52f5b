package session

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/mcintyrejak/bankist/internal/handlers/v1/summary"
	"github.com/mcintyrejak/bankist/internal/ledger"
	"github.com/mcintyrejak/bankist/internal/logging"
	"github.com/mcintyrejak/bankist/internal/service"
	"github.com/mcintyrejak/bankist/internal/store"
)

// LoginBody is the request body for logging in.
type LoginBody struct {
	Username string `json:"username" minLength:"1" doc:"Account username (lowercase owner initials)"`
	PIN      int    `json:"pin" doc:"Numeric account pin"`
}

// LoginInput is the Huma input for logging in.
type LoginInput struct {
	Body LoginBody
}

// LoginResponse is the response body for a successful login.
type LoginResponse struct {
	FirstName string          `json:"firstName" doc:"Owner first name for the welcome message"`
	Owner     string          `json:"owner" doc:"Owner display name"`
	Username  string          `json:"username" doc:"Account username"`
	Currency  string          `json:"currency" doc:"Account currency code"`
	Summary   summary.Summary `json:"summary" doc:"Derived account values"`
}

// LoginOutput is the Huma output for logging in.
type LoginOutput struct {
	Body LoginResponse
}

// sessionLoginer is the interface for activating a session.
type sessionLoginer interface {
	Login(username string, pin int) (store.Account, error)
}

// LoginHandler handles POST /v1/session/login.
type LoginHandler struct {
	Session sessionLoginer
}

// NewLoginHandler creates a new LoginHandler.
func NewLoginHandler(sess sessionLoginer) *LoginHandler {
	return &LoginHandler{Session: sess}
}

// Register registers the login endpoint with the Huma API.
func (h *LoginHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "login",
		Method:      http.MethodPost,
		Path:        "/v1/session/login",
		Summary:     "Log in",
		Description: "Activates the session for the account matching the given username and pin.",
		Tags:        []string{"Session"},
	}, h.handle)
}

func (h *LoginHandler) handle(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	logData := logging.GetLogData(ctx)

	account, err := h.Session.Login(input.Body.Username, input.Body.PIN)
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return nil, huma.NewError(http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, service.ErrAlreadyLoggedIn):
		return nil, huma.NewError(http.StatusConflict, "already logged in")
	case err != nil:
		return nil, huma.NewError(http.StatusInternalServerError, "failed to log in", err)
	}

	if logData != nil {
		logData.AddData("username", account.Username)
	}

	ledgerSummary := ledger.Summarize(account.Movements, account.InterestRate)

	return &LoginOutput{
		Body: LoginResponse{
			FirstName: account.FirstName(),
			Owner:     account.Owner,
			Username:  account.Username,
			Currency:  account.Currency,
			Summary:   summary.FromLedger(ledgerSummary),
		},
	}, nil
}
