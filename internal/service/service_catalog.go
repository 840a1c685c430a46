package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/storefront/internal/logger"
	"github.com/MKhiriev/storefront/internal/store"
	"github.com/MKhiriev/storefront/internal/utils"
	"github.com/MKhiriev/storefront/models"
)

const (
	// DescriptionPreviewLength is the number of characters of a product
	// description shown in listings.
	DescriptionPreviewLength = 70

	// CommentLength is the number of characters of a comment that are kept
	// and shown.
	CommentLength = 26

	// CommentsPerProduct is the number of comments displayed under each
	// product on the catalog page.
	CommentsPerProduct = 5
)

type catalogService struct {
	productRepository store.ProductRepository
	commentRepository store.CommentRepository
	logger            *logger.Logger
}

func NewCatalogService(productRepository store.ProductRepository, commentRepository store.CommentRepository, logger *logger.Logger) CatalogService {
	return &catalogService{
		productRepository: productRepository,
		commentRepository: commentRepository,
		logger:            logger,
	}
}

// ListPage returns the products of one catalog page with their latest
// comments. A page beyond the end of the catalog is empty, not an error.
func (c *catalogService) ListPage(ctx context.Context, page int) ([]models.CatalogProduct, error) {
	log := logger.FromContext(ctx)

	if page < 0 {
		page = 0
	}

	maxID, err := c.productRepository.MaxID(ctx)
	if err != nil {
		log.Err(err).Msg("error getting max product id")
		return nil, fmt.Errorf("error getting max product id: %w", err)
	}
	window := models.NewPageWindow(maxID, page)

	comments, err := c.commentRepository.ListInWindow(ctx, window)
	if err != nil {
		log.Err(err).Int("page", page).Msg("error listing comments")
		return nil, fmt.Errorf("error listing comments for page %d: %w", page, err)
	}

	products, err := c.productRepository.ListInWindow(ctx, window)
	if err != nil {
		log.Err(err).Int("page", page).Msg("error listing products")
		return nil, fmt.Errorf("error listing products for page %d: %w", page, err)
	}

	byProduct := make(map[int64][]models.ProductComment, len(products))
	for _, comment := range comments {
		byProduct[comment.ProductID] = append(byProduct[comment.ProductID], comment)
	}

	result := make([]models.CatalogProduct, 0, len(products))
	for _, product := range products {
		product.Description = utils.Truncate(product.Description, DescriptionPreviewLength)

		productComments := byProduct[product.ID]
		shown := productComments[:min(len(productComments), CommentsPerProduct)]

		preview := make([]models.ProductComment, 0, len(shown))
		for _, comment := range shown {
			comment.Content = utils.Truncate(comment.Content, CommentLength)
			preview = append(preview, comment)
		}

		result = append(result, models.CatalogProduct{
			Product:       product,
			CommentsCount: len(productComments),
			Comments:      preview,
		})
	}

	return result, nil
}

// GetProduct returns the product with its full description. An unknown id
// yields a zero Product and no error.
func (c *catalogService) GetProduct(ctx context.Context, id int64) (models.Product, error) {
	product, err := c.productRepository.FindByID(ctx, id)
	if errors.Is(err, store.ErrNoProductWasFound) {
		return models.Product{}, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("product_id", id).Msg("error getting product")
		return models.Product{}, fmt.Errorf("error getting product %d: %w", id, err)
	}

	return product, nil
}
