package service

import (
	"context"

	"booklibrary_backend/internals/features/library/books/model"
)

// EventPublisher receives an event after every persisted add or remove.
type EventPublisher interface {
	Publish(ctx context.Context, event model.BookEvent) error
}

type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, model.BookEvent) error { return nil }
