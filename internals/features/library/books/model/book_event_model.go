package model

import "time"

type BookEventType string

const (
	BookAdded   BookEventType = "book.added"
	BookRemoved BookEventType = "book.removed"
)

type BookEvent struct {
	Type       BookEventType `json:"type"`
	Book       Book          `json:"book"`
	OccurredAt time.Time     `json:"occurred_at"`
}

func NewBookEvent(t BookEventType, b Book) BookEvent {
	return BookEvent{Type: t, Book: b, OccurredAt: time.Now().UTC()}
}
