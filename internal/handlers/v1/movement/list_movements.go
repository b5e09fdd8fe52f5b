package movement

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/mcintyrejak/bankist/internal/ledger"
	"github.com/mcintyrejak/bankist/internal/logging"
	"github.com/mcintyrejak/bankist/internal/service"
)

// ListMovementsInput is the Huma input for listing movements.
type ListMovementsInput struct {
	Sorted bool `query:"sorted" doc:"Sort ascending by amount instead of chronologically"`
}

// ListMovementsResponseBody is the response body for listing movements.
type ListMovementsResponseBody struct {
	Movements []Movement `json:"movements" doc:"The active account's movements"`
}

// ListMovementsOutput is the Huma output for listing movements.
type ListMovementsOutput struct {
	Body ListMovementsResponseBody
}

// movementLister is the interface for reading the active account's
// movements.
type movementLister interface {
	Movements(sorted bool) ([]ledger.Movement, error)
}

// ListMovementsHandler handles GET /v1/movements.
type ListMovementsHandler struct {
	Session movementLister
}

// NewListMovementsHandler creates a new ListMovementsHandler.
func NewListMovementsHandler(sess movementLister) *ListMovementsHandler {
	return &ListMovementsHandler{Session: sess}
}

// Register registers the list movements endpoint with the Huma API.
func (h *ListMovementsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-movements",
		Method:      http.MethodGet,
		Path:        "/v1/movements",
		Summary:     "List movements",
		Description: "Returns the active account's movements in chronological order, or ascending by amount when sorted.",
		Tags:        []string{"Movements"},
	}, h.handle)
}

func (h *ListMovementsHandler) handle(ctx context.Context, input *ListMovementsInput) (*ListMovementsOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listMovementsMs")
	}
	movements, err := h.Session.Movements(input.Sorted)
	if stopTimer != nil {
		stopTimer()
	}
	if errors.Is(err, service.ErrNotLoggedIn) {
		return nil, huma.NewError(http.StatusUnauthorized, "not logged in")
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list movements", err)
	}

	if logData != nil {
		logData.AddData("movementCount", len(movements))
	}

	resp := ListMovementsResponseBody{
		Movements: make([]Movement, len(movements)),
	}
	for i, m := range movements {
		resp.Movements[i] = Movement{
			Amount: m.Amount.String(),
			Kind:   string(ledger.Classify(m)),
			Date:   m.Date.Format(time.RFC3339),
		}
	}

	return &ListMovementsOutput{Body: resp}, nil
}
