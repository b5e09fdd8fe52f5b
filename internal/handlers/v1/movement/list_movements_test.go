package movement

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mcintyrejak/bankist/internal/ledger"
	"github.com/mcintyrejak/bankist/internal/service"
)

type mockMovementLister struct {
	mock.Mock
}

func (m *mockMovementLister) Movements(sorted bool) ([]ledger.Movement, error) {
	args := m.Called(sorted)
	movements, _ := args.Get(0).([]ledger.Movement)
	return movements, args.Error(1)
}

func newListTestAPI(t *testing.T, sess movementLister) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewListMovementsHandler(sess).Register(api)
	return api
}

func TestHTTP_ListMovements(t *testing.T) {
	date := time.Date(2023, 1, 6, 10, 51, 36, 0, time.UTC)
	mockSess := new(mockMovementLister)
	mockSess.On("Movements", false).Return([]ledger.Movement{
		{Amount: decimal.RequireFromString("1300"), Date: date},
		{Amount: decimal.RequireFromString("-650"), Date: date.Add(time.Hour)},
		{Amount: decimal.Zero, Date: date.Add(2 * time.Hour)},
	}, nil)

	resp := newListTestAPI(t, mockSess).Get("/v1/movements")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListMovementsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Movements, 3)
	assert.Equal(t, "1300", body.Movements[0].Amount)
	assert.Equal(t, "deposit", body.Movements[0].Kind)
	assert.Equal(t, date.Format(time.RFC3339), body.Movements[0].Date)
	assert.Equal(t, "withdrawal", body.Movements[1].Kind)
	assert.Equal(t, "withdrawal", body.Movements[2].Kind, "zero renders as withdrawal")
	mockSess.AssertExpectations(t)
}

func TestHTTP_ListMovements_SortedQueryForwarded(t *testing.T) {
	mockSess := new(mockMovementLister)
	mockSess.On("Movements", true).Return([]ledger.Movement{}, nil)

	resp := newListTestAPI(t, mockSess).Get("/v1/movements?sorted=true")

	assert.Equal(t, http.StatusOK, resp.Code)
	mockSess.AssertExpectations(t)
}

func TestHTTP_ListMovements_NotLoggedIn(t *testing.T) {
	mockSess := new(mockMovementLister)
	mockSess.On("Movements", false).Return(nil, service.ErrNotLoggedIn)

	resp := newListTestAPI(t, mockSess).Get("/v1/movements")

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	mockSess.AssertExpectations(t)
}
