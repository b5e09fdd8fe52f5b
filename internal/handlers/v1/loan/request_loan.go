package loan

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

// RequestLoanBody is the request body for a loan request.
type RequestLoanBody struct {
	Amount string `json:"amount" required:"true" doc:"Decimal loan amount, floored before evaluation"`
}

// RequestLoanInput is the Huma input for a loan request.
type RequestLoanInput struct {
	Body RequestLoanBody
}

// RequestLoanResponseBody is the response body for an approved loan.
type RequestLoanResponseBody struct {
	Summary summary.Summary `json:"summary" doc:"Recomputed account values including the loan"`
}

// RequestLoanOutput is the Huma output for a loan request.
type RequestLoanOutput struct {
	Body RequestLoanResponseBody
}

// loanRequester is the interface for crediting a loan to the active
// account.
type loanRequester interface {
	RequestLoan(ctx context.Context, amount decimal.Decimal) (ledger.Summary, error)
}

// RequestLoanHandler handles POST /v1/loan.
type RequestLoanHandler struct {
	Session loanRequester
}

// NewRequestLoanHandler creates a new RequestLoanHandler.
func NewRequestLoanHandler(sess loanRequester) *RequestLoanHandler {
	return &RequestLoanHandler{Session: sess}
}

// Register registers the loan endpoint with the Huma API.
func (h *RequestLoanHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "request-loan",
		Method:      http.MethodPost,
		Path:        "/v1/loan",
		Summary:     "Request a loan",
		Description: "Credits the floored amount when some existing movement is worth at least 10% of it.",
		Tags:        []string{"Loans"},
	}, h.handle)
}

func (h *RequestLoanHandler) handle(ctx context.Context, input *RequestLoanInput) (*RequestLoanOutput, error) {
	logData := logging.GetLogData(ctx)

	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("requestLoanMs")
	}
	ledgerSummary, err := h.Session.RequestLoan(ctx, amount)
	if stopTimer != nil {
		stopTimer()
	}
	switch {
	case errors.Is(err, service.ErrNotLoggedIn):
		return nil, huma.NewError(http.StatusUnauthorized, "not logged in")
	case errors.Is(err, actions.ErrInvalidAmount):
		return nil, huma.NewError(http.StatusBadRequest, "amount must be positive")
	case errors.Is(err, actions.ErrLoanDenied):
		return nil, huma.NewError(http.StatusUnprocessableEntity, "loan denied")
	case err != nil:
		return nil, huma.NewError(http.StatusInternalServerError, "failed to request loan", err)
	}

	return &RequestLoanOutput{
		Body: RequestLoanResponseBody{Summary: summary.FromLedger(ledgerSummary)},
	}, nil
}
