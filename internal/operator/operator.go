package operator

import (
	"context"

	"github.com/mcintyrejak/bankist/internal/operator/actions"
	"github.com/mcintyrejak/bankist/internal/store"
)

// Operator is the worker that processes items from the queue.
type Operator struct {
	store *store.Store
	queue chan ActionItem
}

func NewOperator(s *store.Store, queue chan ActionItem) *Operator {
	return &Operator{
		store: s,
		queue: queue,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		o.processItem(item)
	}
}

func (o *Operator) processItem(item ActionItem) {
	err := item.action.Perform(item.ctx, o.store)
	item.response <- ActionItemResponse{err: err}
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
