// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/storefront/internal/logger"
	"github.com/MKhiriev/storefront/models"
)

var productColumnsRow = []string{"id", "name", "image_path", "price", "description"}

func TestProductMaxID(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  int64
	}{
		{name: "populated table", value: int64(10000), want: 10000},
		{name: "null max", value: nil, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			repo := NewProductRepository(db, logger.Nop())

			mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(MAX(id), 0) FROM products")).
				WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(tt.value))

			got, err := repo.MaxID(testContext())

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProductMaxID_Error(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewProductRepository(db, logger.Nop())

	mock.ExpectQuery("FROM products").WillReturnError(errors.New("boom"))

	_, err := repo.MaxID(testContext())

	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestProductListInWindow(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewProductRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("FROM products WHERE id BETWEEN $1 AND $2 ORDER BY id DESC LIMIT 50")).
		WithArgs(int64(51), int64(100)).
		WillReturnRows(sqlmock.NewRows(productColumnsRow).
			AddRow(100, "p100", "/images/100.jpg", 5000, "desc 100").
			AddRow(99, "p99", "/images/99.jpg", 4000, "desc 99"))

	products, err := repo.ListInWindow(testContext(), models.PageWindow{From: 51, To: 100})

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, models.Product{ID: 100, Name: "p100", ImagePath: "/images/100.jpg", Price: 5000, Description: "desc 100"}, products[0])
	assert.Equal(t, int64(99), products[1].ID)
}

func TestProductListInWindow_EmptyWindowSkipsQuery(t *testing.T) {
	db, _ := newTestDB(t)
	repo := NewProductRepository(db, logger.Nop())

	products, err := repo.ListInWindow(testContext(), models.NewPageWindow(0, 0))

	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestProductListInWindow_Errors(t *testing.T) {
	t.Run("query", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewProductRepository(db, logger.Nop())
		mock.ExpectQuery("FROM products").WillReturnError(errors.New("boom"))

		_, err := repo.ListInWindow(testContext(), models.PageWindow{From: 1, To: 50})
		assert.ErrorIs(t, err, ErrExecutingQuery)
	})

	t.Run("scan", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewProductRepository(db, logger.Nop())
		mock.ExpectQuery("FROM products").
			WillReturnRows(sqlmock.NewRows(productColumnsRow).AddRow("not-a-number", "p", "i", 1, "d"))

		_, err := repo.ListInWindow(testContext(), models.PageWindow{From: 1, To: 50})
		assert.ErrorIs(t, err, ErrScanningRow)
	})

	t.Run("iteration", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewProductRepository(db, logger.Nop())
		mock.ExpectQuery("FROM products").
			WillReturnRows(sqlmock.NewRows(productColumnsRow).
				AddRow(2, "p", "i", 1, "d").
				RowError(0, errors.New("connection reset")))

		_, err := repo.ListInWindow(testContext(), models.PageWindow{From: 1, To: 50})
		assert.ErrorIs(t, err, ErrScanningRows)
	})
}

func TestProductFindByID(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewProductRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("FROM products WHERE id = $1")).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(productColumnsRow).AddRow(5, "p5", "/images/5.jpg", 300, "a long description"))

	p, err := repo.FindByID(testContext(), 5)

	require.NoError(t, err)
	assert.Equal(t, "a long description", p.Description)
	assert.Equal(t, int64(300), p.Price)
}

func TestProductFindByID_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewProductRepository(db, logger.Nop())

	mock.ExpectQuery("FROM products WHERE id").WithArgs(int64(0)).WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByID(testContext(), 0)

	assert.ErrorIs(t, err, ErrNoProductWasFound)
}
