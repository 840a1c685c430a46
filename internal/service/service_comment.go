package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/storefront/internal/logger"
	"github.com/MKhiriev/storefront/internal/store"
	"github.com/MKhiriev/storefront/internal/utils"
	"github.com/MKhiriev/storefront/models"
)

type commentService struct {
	commentRepository store.CommentRepository
	clock             clock
	logger            *logger.Logger
}

func NewCommentService(commentRepository store.CommentRepository, logger *logger.Logger) CommentService {
	return &commentService{
		commentRepository: commentRepository,
		logger:            logger,
	}
}

// AddComment stores the first CommentLength characters of content.
func (c *commentService) AddComment(ctx context.Context, productID, userID int64, content string) error {
	comment := models.Comment{
		ProductID: productID,
		UserID:    userID,
		Content:   utils.Truncate(content, CommentLength),
		CreatedAt: c.clock.dbNow(),
	}

	if err := c.commentRepository.Create(ctx, comment); err != nil {
		logger.FromContext(ctx).Err(err).
			Int64("product_id", productID).
			Int64("user_id", userID).
			Msg("error creating comment")
		return fmt.Errorf("error creating comment: %w", err)
	}

	return nil
}
