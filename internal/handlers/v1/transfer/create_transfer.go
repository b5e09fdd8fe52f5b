package transfer

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/mcintyrejak/bankist/internal/handlers/v1/summary"
	"github.com/mcintyrejak/bankist/internal/ledger"
	"github.com/mcintyrejak/bankist/internal/logging"
	"github.com/mcintyrejak/bankist/internal/operator/actions"
	"github.com/mcintyrejak/bankist/internal/service"
)

// CreateTransferBody is the request body for a transfer.
type CreateTransferBody struct {
	To     string `json:"to" minLength:"1" doc:"Recipient username"`
	Amount string `json:"amount" required:"true" doc:"Decimal amount to transfer"`
}

// CreateTransferInput is the Huma input for a transfer.
type CreateTransferInput struct {
	Body CreateTransferBody
}

// CreateTransferResponseBody is the response body for a transfer.
type CreateTransferResponseBody struct {
	Summary summary.Summary `json:"summary" doc:"Sender's recomputed account values"`
}

// CreateTransferOutput is the Huma output for a transfer.
type CreateTransferOutput struct {
	Body CreateTransferResponseBody
}

// transferrer is the interface for moving funds out of the active
// account.
type transferrer interface {
	Transfer(ctx context.Context, toUsername string, amount decimal.Decimal) (ledger.Summary, error)
}

// CreateTransferHandler handles POST /v1/transfer.
type CreateTransferHandler struct {
	Session transferrer
}

// NewCreateTransferHandler creates a new CreateTransferHandler.
func NewCreateTransferHandler(sess transferrer) *CreateTransferHandler {
	return &CreateTransferHandler{Session: sess}
}

// Register registers the transfer endpoint with the Huma API.
func (h *CreateTransferHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-transfer",
		Method:      http.MethodPost,
		Path:        "/v1/transfer",
		Summary:     "Transfer funds",
		Description: "Moves the given amount from the active account to the recipient.",
		Tags:        []string{"Transfers"},
	}, h.handle)
}

func (h *CreateTransferHandler) handle(ctx context.Context, input *CreateTransferInput) (*CreateTransferOutput, error) {
	logData := logging.GetLogData(ctx)

	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("transferMs")
	}
	ledgerSummary, err := h.Session.Transfer(ctx, input.Body.To, amount)
	if stopTimer != nil {
		stopTimer()
	}
	switch {
	case errors.Is(err, service.ErrNotLoggedIn):
		return nil, huma.NewError(http.StatusUnauthorized, "not logged in")
	case errors.Is(err, actions.ErrInvalidAmount):
		return nil, huma.NewError(http.StatusBadRequest, "amount must be positive")
	case errors.Is(err, actions.ErrRecipientNotFound):
		return nil, huma.NewError(http.StatusNotFound, "recipient account not found")
	case errors.Is(err, actions.ErrSelfTransfer):
		return nil, huma.NewError(http.StatusUnprocessableEntity, "cannot transfer to own account")
	case errors.Is(err, actions.ErrInsufficientFunds):
		return nil, huma.NewError(http.StatusUnprocessableEntity, "insufficient funds")
	case err != nil:
		return nil, huma.NewError(http.StatusInternalServerError, "failed to transfer", err)
	}

	if logData != nil {
		logData.AddData("recipient", input.Body.To)
	}

	return &CreateTransferOutput{
		Body: CreateTransferResponseBody{Summary: summary.FromLedger(ledgerSummary)},
	}, nil
}
