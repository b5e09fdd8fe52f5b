package actions

import (
	"context"

	"github.com/mcintyrejak/bankist/internal/store"
)

type IAction interface {
	Perform(ctx context.Context, store *store.Store) error
}
