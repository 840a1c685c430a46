package store

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/storefront/internal/logger"
	"github.com/MKhiriev/storefront/models"
)

func TestCommentListInWindow(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCommentRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("WHERE c.product_id BETWEEN $1 AND $2 ORDER BY c.product_id DESC, c.created_at DESC")).
		WithArgs(int64(1), int64(50)).
		WillReturnRows(sqlmock.NewRows([]string{"product_id", "name", "content"}).
			AddRow(50, "alice", "newest").
			AddRow(50, "bob", "older").
			AddRow(49, "carol", "only one"))

	comments, err := repo.ListInWindow(testContext(), models.PageWindow{From: 1, To: 50})

	require.NoError(t, err)
	assert.Equal(t, []models.ProductComment{
		{ProductID: 50, UserName: "alice", Content: "newest"},
		{ProductID: 50, UserName: "bob", Content: "older"},
		{ProductID: 49, UserName: "carol", Content: "only one"},
	}, comments)
}

func TestCommentListInWindow_EmptyWindow(t *testing.T) {
	db, _ := newTestDB(t)
	repo := NewCommentRepository(db, logger.Nop())

	comments, err := repo.ListInWindow(testContext(), models.PageWindow{From: -49, To: 0})

	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestCommentListInWindow_QueryError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCommentRepository(db, logger.Nop())

	mock.ExpectQuery("FROM comments").WillReturnError(errors.New("boom"))

	_, err := repo.ListInWindow(testContext(), models.PageWindow{From: 1, To: 50})

	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestCommentCreate(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCommentRepository(db, logger.Nop())
	createdAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO comments (product_id,user_id,content,created_at) VALUES ($1,$2,$3,$4)")).
		WithArgs(int64(10), int64(2), "great", createdAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Create(testContext(), models.Comment{ProductID: 10, UserID: 2, Content: "great", CreatedAt: createdAt})

	require.NoError(t, err)
}

func TestCommentCreate_ForeignKeyViolation(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCommentRepository(db, logger.Nop())

	mock.ExpectExec("INSERT INTO comments").
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	err := repo.Create(testContext(), models.Comment{ProductID: 999999})

	assert.ErrorIs(t, err, ErrReferencedRowMissing)
}

func TestCommentCreate_OtherError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCommentRepository(db, logger.Nop())

	mock.ExpectExec("INSERT INTO comments").WillReturnError(errors.New("disk full"))

	err := repo.Create(testContext(), models.Comment{})

	assert.ErrorIs(t, err, ErrExecutingStatement)
}
