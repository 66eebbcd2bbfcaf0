package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"booklibrary_backend/internals/features/library/books/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

const selectSnapshot = `SELECT \* FROM "library_snapshots" WHERE library_snapshot_id = \$1`

var snapshotColumns = []string{"library_snapshot_id", "library_snapshot_books", "library_snapshot_updated_at"}

// newMockRepository wires a PostgresRepository to sqlmock, skipping AutoMigrate.
func newMockRepository(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
		Logger:                 gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	return &PostgresRepository{db: db}, mock
}

func TestPostgresRepository_LoadMissingRowIsEmpty(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectQuery(selectSnapshot).WillReturnRows(sqlmock.NewRows(snapshotColumns))

	books, err := repo.Load(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, books)
	assert.Empty(t, books)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_LoadUndefinedTableIsEmpty(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectQuery(selectSnapshot).WillReturnError(&pgconn.PgError{Code: "42P01", Message: `relation "library_snapshots" does not exist`})

	books, err := repo.Load(context.Background())

	require.NoError(t, err)
	assert.Empty(t, books)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_LoadOtherErrorsAreReturned(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectQuery(selectSnapshot).WillReturnError(&pgconn.PgError{Code: "28P01"})

	_, err := repo.Load(context.Background())

	assert.Error(t, err)
	assert.Equal(t, "28P01", sqlState(err))
}

func TestPostgresRepository_LoadDecodesSnapshot(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectQuery(selectSnapshot).WillReturnRows(sqlmock.NewRows(snapshotColumns).
		AddRow(1, []byte(`[{"id":"a","title":"Emma","author":"Jane Austen","year":"1815","genre":"Novel","read":true}]`), time.Now()))

	books, err := repo.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []model.Book{{ID: "a", Title: "Emma", Author: "Jane Austen", Year: "1815", Genre: "Novel", Read: true}}, books)
}

func TestPostgresRepository_LoadCorruptSnapshot(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectQuery(selectSnapshot).WillReturnRows(sqlmock.NewRows(snapshotColumns).
		AddRow(1, []byte(`{"title":"Emma"}`), time.Now()))

	_, err := repo.Load(context.Background())

	assert.ErrorIs(t, err, ErrCorruptData)
}

func TestPostgresRepository_SaveUpsertsSingleRow(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectExec(`INSERT INTO "library_snapshots" .+ ON CONFLICT \("library_snapshot_id"\) DO UPDATE SET`).
		WithArgs(int64(1), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Save(context.Background(), []model.Book{{ID: "a", Title: "Emma"}})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_SaveErrorIsWrapped(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectExec(`INSERT INTO "library_snapshots"`).WillReturnError(&pq.Error{Code: "53100"})

	err := repo.Save(context.Background(), nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "save snapshot")
	assert.Equal(t, "53100", sqlState(err))
}

func TestSQLState(t *testing.T) {
	assert.Equal(t, "", sqlState(nil))
	assert.Equal(t, "", sqlState(errors.New("boom")))
	assert.Equal(t, "42P01", sqlState(fmt.Errorf("wrapped: %w", &pgconn.PgError{Code: "42P01"})))
	assert.Equal(t, "23505", sqlState(fmt.Errorf("wrapped: %w", &pq.Error{Code: "23505"})))
}

func TestDecodeBooks_Null(t *testing.T) {
	books, err := decodeBooks([]byte("null"))

	assert.NoError(t, err)
	assert.NotNil(t, books)
	assert.Empty(t, books)
}
