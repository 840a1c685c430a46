package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/storefront/internal/logger"
	"github.com/MKhiriev/storefront/models"
)

type commentRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewCommentRepository(db *DB, logger *logger.Logger) CommentRepository {
	logger.Debug().Msg("creating comment repository")
	return &commentRepository{
		db:     db,
		logger: logger,
	}
}

// ListInWindow returns all comments on the products of one catalog page
// together with the commenter's name. Content is returned as stored.
func (r *commentRepository) ListInWindow(ctx context.Context, w models.PageWindow) ([]models.ProductComment, error) {
	log := logger.FromContext(ctx)

	if w.IsEmpty() {
		return []models.ProductComment{}, nil
	}

	query, args, err := buildListCommentsInWindowQuery(r.db.builder(), w)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.ListInWindow").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*commentRepository.ListInWindow").
			Int64("from", w.From).
			Int64("to", w.To).
			Msg("failed to execute query for listing comments")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	comments := make([]models.ProductComment, 0, models.PageSize)
	for rows.Next() {
		var c models.ProductComment
		if err = rows.Scan(&c.ProductID, &c.UserName, &c.Content); err != nil {
			log.Err(err).Str("func", "*commentRepository.ListInWindow").Msg("failed to scan comment row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		comments = append(comments, c)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*commentRepository.ListInWindow").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return comments, nil
}

// Create appends a comment row. The caller supplies content and timestamp.
func (r *commentRepository) Create(ctx context.Context, comment models.Comment) error {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateCommentQuery(r.db.builder(), comment)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.Create").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "*commentRepository.Create").
			Int64("product_id", comment.ProductID).
			Int64("user_id", comment.UserID).
			Msg("failed to insert comment")
		return r.db.classify(err, ErrExecutingStatement)
	}

	return nil
}
