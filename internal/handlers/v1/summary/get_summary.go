package summary

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/mcintyrejak/bankist/internal/ledger"
	"github.com/mcintyrejak/bankist/internal/logging"
	"github.com/mcintyrejak/bankist/internal/service"
)

// GetSummaryOutput is the Huma output for the summary endpoint.
type GetSummaryOutput struct {
	Body Summary
}

// summarizer is the interface for recomputing the active account's
// derived values.
type summarizer interface {
	Summary() (ledger.Summary, error)
}

// GetSummaryHandler handles GET /v1/summary.
type GetSummaryHandler struct {
	Session summarizer
}

// NewGetSummaryHandler creates a new GetSummaryHandler.
func NewGetSummaryHandler(sess summarizer) *GetSummaryHandler {
	return &GetSummaryHandler{Session: sess}
}

// Register registers the summary endpoint with the Huma API.
func (h *GetSummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-summary",
		Method:      http.MethodGet,
		Path:        "/v1/summary",
		Summary:     "Get account summary",
		Description: "Returns the active account's balance, deposit and withdrawal totals, and accrued interest.",
		Tags:        []string{"Summary"},
	}, h.handle)
}

func (h *GetSummaryHandler) handle(ctx context.Context, _ *struct{}) (*GetSummaryOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("summarizeMs")
	}
	ledgerSummary, err := h.Session.Summary()
	if stopTimer != nil {
		stopTimer()
	}
	if errors.Is(err, service.ErrNotLoggedIn) {
		return nil, huma.NewError(http.StatusUnauthorized, "not logged in")
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to summarize account", err)
	}

	return &GetSummaryOutput{Body: FromLedger(ledgerSummary)}, nil
}
