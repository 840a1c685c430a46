// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/storefront/internal/logger"
	"github.com/MKhiriev/storefront/internal/mock"
	"github.com/MKhiriev/storefront/internal/store"
	"github.com/MKhiriev/storefront/models"
)

func newTestCatalogSvc(t *testing.T) (CatalogService, *mock.MockProductRepository, *mock.MockCommentRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	products := mock.NewMockProductRepository(ctrl)
	comments := mock.NewMockCommentRepository(ctrl)
	return NewCatalogService(products, comments, logger.Nop()), products, comments
}

func productsDesc(from, to int64) []models.Product {
	out := make([]models.Product, 0, to-from+1)
	for id := to; id >= from; id-- {
		out = append(out, models.Product{ID: id, Name: fmt.Sprintf("p%d", id), Description: strings.Repeat("説", 100), Price: id})
	}
	return out
}

func TestCatalogService_ListPage(t *testing.T) {
	svc, products, comments := newTestCatalogSvc(t)
	ctx := context.Background()
	window := models.PageWindow{From: 51, To: 100}

	var productComments []models.ProductComment
	for i := range 7 {
		productComments = append(productComments, models.ProductComment{
			ProductID: 100,
			UserName:  fmt.Sprintf("u%d", i),
			Content:   strings.Repeat("c", 40),
		})
	}
	productComments = append(productComments, models.ProductComment{ProductID: 98, UserName: "solo", Content: "short"})

	gomock.InOrder(
		products.EXPECT().MaxID(ctx).Return(int64(150), nil),
		comments.EXPECT().ListInWindow(ctx, window).Return(productComments, nil),
		products.EXPECT().ListInWindow(ctx, window).Return(productsDesc(51, 100), nil),
	)

	page, err := svc.ListPage(ctx, 1)

	require.NoError(t, err)
	require.Len(t, page, 50)

	first := page[0]
	assert.Equal(t, int64(100), first.ID)
	assert.Equal(t, 7, first.CommentsCount)
	require.Len(t, first.Comments, CommentsPerProduct)
	assert.Equal(t, "u0", first.Comments[0].UserName, "newest comments come first")
	assert.Equal(t, CommentLength, len(first.Comments[0].Content))
	assert.Equal(t, DescriptionPreviewLength, utf8.RuneCountInString(first.Description))

	assert.Equal(t, 0, page[1].CommentsCount)
	assert.Empty(t, page[1].Comments)

	assert.Equal(t, int64(98), page[2].ID)
	assert.Equal(t, 1, page[2].CommentsCount)
	assert.Equal(t, "short", page[2].Comments[0].Content)
}

func TestCatalogService_ListPage_NegativePageIsFirst(t *testing.T) {
	svc, products, comments := newTestCatalogSvc(t)
	ctx := context.Background()
	window := models.PageWindow{From: 1, To: 50}

	products.EXPECT().MaxID(ctx).Return(int64(50), nil)
	comments.EXPECT().ListInWindow(ctx, window).Return(nil, nil)
	products.EXPECT().ListInWindow(ctx, window).Return(productsDesc(1, 50), nil)

	page, err := svc.ListPage(ctx, -3)

	require.NoError(t, err)
	assert.Len(t, page, 50)
}

func TestCatalogService_ListPage_EmptyCatalog(t *testing.T) {
	svc, products, comments := newTestCatalogSvc(t)
	ctx := context.Background()
	window := models.NewPageWindow(0, 0)

	products.EXPECT().MaxID(ctx).Return(int64(0), nil)
	comments.EXPECT().ListInWindow(ctx, window).Return([]models.ProductComment{}, nil)
	products.EXPECT().ListInWindow(ctx, window).Return([]models.Product{}, nil)

	page, err := svc.ListPage(ctx, 0)

	require.NoError(t, err)
	assert.Empty(t, page)
}

func TestCatalogService_ListPage_Errors(t *testing.T) {
	boom := errors.New("boom")

	t.Run("max id", func(t *testing.T) {
		svc, products, _ := newTestCatalogSvc(t)
		products.EXPECT().MaxID(gomock.Any()).Return(int64(0), boom)

		_, err := svc.ListPage(context.Background(), 0)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("comments", func(t *testing.T) {
		svc, products, comments := newTestCatalogSvc(t)
		products.EXPECT().MaxID(gomock.Any()).Return(int64(10), nil)
		comments.EXPECT().ListInWindow(gomock.Any(), gomock.Any()).Return(nil, boom)

		_, err := svc.ListPage(context.Background(), 0)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("products", func(t *testing.T) {
		svc, products, comments := newTestCatalogSvc(t)
		products.EXPECT().MaxID(gomock.Any()).Return(int64(10), nil)
		comments.EXPECT().ListInWindow(gomock.Any(), gomock.Any()).Return(nil, nil)
		products.EXPECT().ListInWindow(gomock.Any(), gomock.Any()).Return(nil, boom)

		_, err := svc.ListPage(context.Background(), 0)
		assert.ErrorIs(t, err, boom)
	})
}

func TestCatalogService_GetProduct(t *testing.T) {
	svc, products, _ := newTestCatalogSvc(t)
	ctx := context.Background()
	want := models.Product{ID: 5, Name: "p5", Description: strings.Repeat("d", 200)}

	products.EXPECT().FindByID(ctx, int64(5)).Return(want, nil)

	got, err := svc.GetProduct(ctx, 5)

	require.NoError(t, err)
	assert.Equal(t, want, got, "the detail page shows the full description")
}

func TestCatalogService_GetProduct_Missing(t *testing.T) {
	svc, products, _ := newTestCatalogSvc(t)
	ctx := context.Background()

	products.EXPECT().FindByID(ctx, int64(0)).Return(models.Product{}, store.ErrNoProductWasFound)

	got, err := svc.GetProduct(ctx, 0)

	require.NoError(t, err)
	assert.Equal(t, models.Product{}, got)
}

func TestCatalogService_GetProduct_Error(t *testing.T) {
	svc, products, _ := newTestCatalogSvc(t)
	boom := errors.New("boom")

	products.EXPECT().FindByID(gomock.Any(), int64(1)).Return(models.Product{}, boom)

	_, err := svc.GetProduct(context.Background(), 1)

	assert.ErrorIs(t, err, boom)
}
