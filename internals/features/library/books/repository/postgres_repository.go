package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"booklibrary_backend/internals/features/library/books/model"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const snapshotID = 1

// PostgresRepository keeps the collection as a single jsonb row.
type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgresRepository(db *gorm.DB) (*PostgresRepository, error) {
	if err := db.AutoMigrate(&model.LibrarySnapshotModel{}); err != nil {
		return nil, fmt.Errorf("migrate library_snapshots: %w", err)
	}
	return &PostgresRepository{db: db}, nil
}

func (r *PostgresRepository) Name() string {
	return "postgres:library_snapshots"
}

func (r *PostgresRepository) Load(ctx context.Context) ([]model.Book, error) {
	var snap model.LibrarySnapshotModel
	err := r.db.WithContext(ctx).
		Where("library_snapshot_id = ?", snapshotID).
		Take(&snap).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound), sqlState(err) == "42P01":
		return []model.Book{}, nil
	case err != nil:
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	books, err := decodeBooks(snap.LibrarySnapshotBooks)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	return books, nil
}

func (r *PostgresRepository) Save(ctx context.Context, books []model.Book) error {
	data, err := encodeBooks(books)
	if err != nil {
		return err
	}
	snap := model.LibrarySnapshotModel{
		LibrarySnapshotID:        snapshotID,
		LibrarySnapshotBooks:     datatypes.JSON(data),
		LibrarySnapshotUpdatedAt: time.Now(),
	}
	err = r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "library_snapshot_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"library_snapshot_books", "library_snapshot_updated_at"}),
		}).
		Create(&snap).Error
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// sqlState extracts the SQLSTATE from pgx or lib/pq errors.
func sqlState(err error) string {
	if err == nil {
		return ""
	}
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return pgxErr.Code
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}
