package model

import (
	"time"

	"gorm.io/datatypes"
)

// Book is one record of the personal library.
// Year is free text and is never coerced to a number.
type Book struct {
	ID     string `json:"id,omitempty"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Year   string `json:"year"`
	Genre  string `json:"genre"`
	Read   bool   `json:"read"`
}

// SameFields reports whether b and o are structurally equal, ignoring ID.
func (b Book) SameFields(o Book) bool {
	return b.Title == o.Title &&
		b.Author == o.Author &&
		b.Year == o.Year &&
		b.Genre == o.Genre &&
		b.Read == o.Read
}

func (b Book) Status() string {
	if b.Read {
		return "Read"
	}
	return "Unread"
}

// LibrarySnapshotModel stores the whole collection as one jsonb document.
type LibrarySnapshotModel struct {
	LibrarySnapshotID        int            `gorm:"column:library_snapshot_id;primaryKey;autoIncrement:false"`
	LibrarySnapshotBooks     datatypes.JSON `gorm:"column:library_snapshot_books;type:jsonb;not null"`
	LibrarySnapshotUpdatedAt time.Time      `gorm:"column:library_snapshot_updated_at;autoUpdateTime"`
}

// TableName sets the name of the table
func (LibrarySnapshotModel) TableName() string {
	return "library_snapshots"
}
