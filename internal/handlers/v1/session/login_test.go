package session

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mcintyrejak/bankist/internal/ledger"
	"github.com/mcintyrejak/bankist/internal/service"
	"github.com/mcintyrejak/bankist/internal/store"
)

type mockSessionLoginer struct {
	mock.Mock
}

func (m *mockSessionLoginer) Login(username string, pin int) (store.Account, error) {
	args := m.Called(username, pin)
	return args.Get(0).(store.Account), args.Error(1)
}

func newLoginTestAPI(t *testing.T, sess sessionLoginer) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewLoginHandler(sess).Register(api)
	return api
}

func demoAccount() store.Account {
	date := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	movements := []ledger.Movement{
		{Amount: decimal.RequireFromString("1000"), Date: date},
		{Amount: decimal.RequireFromString("-50"), Date: date.Add(time.Hour)},
	}
	return store.Account{
		ID:           uuid.Must(uuid.NewV4()),
		Owner:        "Jamie McIntyre",
		Username:     "jm",
		PIN:          1111,
		InterestRate: decimal.RequireFromString("1.5"),
		Currency:     "USD",
		Movements:    movements,
		Balance:      ledger.Balance(movements),
	}
}

func TestHTTP_Login_Success(t *testing.T) {
	mockSess := new(mockSessionLoginer)
	mockSess.On("Login", "jm", 1111).Return(demoAccount(), nil)

	resp := newLoginTestAPI(t, mockSess).Post("/v1/session/login", LoginBody{
		Username: "jm",
		PIN:      1111,
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body LoginResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Jamie", body.FirstName)
	assert.Equal(t, "Jamie McIntyre", body.Owner)
	assert.Equal(t, "jm", body.Username)
	assert.Equal(t, "USD", body.Currency)
	assert.Equal(t, "950", body.Summary.Balance)
	assert.Equal(t, "1000", body.Summary.Deposits)
	assert.Equal(t, "50", body.Summary.Withdrawals)
	assert.Equal(t, "15", body.Summary.Interest)
	mockSess.AssertExpectations(t)
}

func TestHTTP_Login_InvalidCredentials(t *testing.T) {
	mockSess := new(mockSessionLoginer)
	mockSess.On("Login", "jm", 9999).
		Return(store.Account{}, service.ErrInvalidCredentials)

	resp := newLoginTestAPI(t, mockSess).Post("/v1/session/login", LoginBody{
		Username: "jm",
		PIN:      9999,
	})

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	mockSess.AssertExpectations(t)
}

func TestHTTP_Login_AlreadyLoggedIn(t *testing.T) {
	mockSess := new(mockSessionLoginer)
	mockSess.On("Login", "jd", 2222).
		Return(store.Account{}, service.ErrAlreadyLoggedIn)

	resp := newLoginTestAPI(t, mockSess).Post("/v1/session/login", LoginBody{
		Username: "jd",
		PIN:      2222,
	})

	assert.Equal(t, http.StatusConflict, resp.Code)
	mockSess.AssertExpectations(t)
}

func TestHTTP_Login_MissingUsername(t *testing.T) {
	mockSess := new(mockSessionLoginer)

	// Huma schema validation rejects the request before the handler runs.
	resp := newLoginTestAPI(t, mockSess).Post("/v1/session/login", map[string]any{
		"pin": 1111,
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSess.AssertNotCalled(t, "Login")
}
