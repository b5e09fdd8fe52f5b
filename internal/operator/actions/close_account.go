package actions

import (
	"context"

	"github.com/mcintyrejak/bankist/internal/store"
)

// CloseAccount removes an account from the store. The caller must
// confirm the username and pin of the account being closed; a mismatch
// leaves the store unchanged.
type CloseAccount struct {
	Username        string
	ConfirmUsername string
	ConfirmPIN      int

	IAction
}

func (c *CloseAccount) Perform(ctx context.Context, st *store.Store) error {
	account, ok := st.FindByUsername(c.Username)
	if !ok {
		return ErrAccountNotFound
	}

	if c.ConfirmUsername != account.Username || c.ConfirmPIN != account.PIN {
		return ErrInvalidCredentials
	}

	if !st.Remove(c.Username) {
		return ErrAccountNotFound
	}
	return nil
}
