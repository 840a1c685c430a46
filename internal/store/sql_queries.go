// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/storefront/models"
)

// Tables pruned by MaintenanceRepository.
var (
	TableUsers     = models.User{}.TableName()
	TableProducts  = models.Product{}.TableName()
	TableComments  = models.Comment{}.TableName()
	TableHistories = models.History{}.TableName()
)

var prunableTables = map[string]struct{}{
	TableUsers:     {},
	TableProducts:  {},
	TableComments:  {},
	TableHistories: {},
}

var (
	userColumns    = []string{"id", "name", "email", "password"}
	productColumns = []string{"id", "name", "image_path", "price", "description"}
)

func buildFindUserByEmailQuery(sb sq.StatementBuilderType, email string) (string, []any, error) {
	return sb.Select(userColumns...).
		From(TableUsers).
		Where(sq.Eq{"email": email}).
		ToSql()
}

func buildFindUserByIDQuery(sb sq.StatementBuilderType, id int64) (string, []any, error) {
	return sb.Select(userColumns...).
		From(TableUsers).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildMaxProductIDQuery(sb sq.StatementBuilderType) (string, []any, error) {
	return sb.Select("COALESCE(MAX(id), 0)").
		From(TableProducts).
		ToSql()
}

func buildListProductsInWindowQuery(sb sq.StatementBuilderType, w models.PageWindow) (string, []any, error) {
	return sb.Select(productColumns...).
		From(TableProducts).
		Where("id BETWEEN ? AND ?", w.From, w.To).
		OrderBy("id DESC").
		Limit(models.PageSize).
		ToSql()
}

func buildFindProductByIDQuery(sb sq.StatementBuilderType, id int64) (string, []any, error) {
	return sb.Select(productColumns...).
		From(TableProducts).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildListCommentsInWindowQuery(sb sq.StatementBuilderType, w models.PageWindow) (string, []any, error) {
	return sb.Select("c.product_id", "u.name", "c.content").
		From(TableComments + " c").
		InnerJoin(TableUsers + " u ON c.user_id = u.id").
		Where("c.product_id BETWEEN ? AND ?", w.From, w.To).
		OrderBy("c.product_id DESC", "c.created_at DESC").
		ToSql()
}

func buildCreateCommentQuery(sb sq.StatementBuilderType, c models.Comment) (string, []any, error) {
	return sb.Insert(TableComments).
		Columns("product_id", "user_id", "content", "created_at").
		Values(c.ProductID, c.UserID, c.Content, c.CreatedAt).
		ToSql()
}

func buildCreateHistoryQuery(sb sq.StatementBuilderType, h models.History) (string, []any, error) {
	return sb.Insert(TableHistories).
		Columns("product_id", "user_id", "created_at").
		Values(h.ProductID, h.UserID, h.CreatedAt).
		ToSql()
}

func buildCountHistoryQuery(sb sq.StatementBuilderType, productID, userID int64) (string, []any, error) {
	return sb.Select("COUNT(*)").
		From(TableHistories).
		Where("product_id = ?", productID).
		Where("user_id = ?", userID).
		ToSql()
}

func buildListHistoryByUserQuery(sb sq.StatementBuilderType, userID int64) (string, []any, error) {
	return sb.Select("p.id", "p.name", "p.description", "p.image_path", "p.price", "h.created_at").
		From(TableHistories + " h").
		LeftJoin(TableProducts + " p ON h.product_id = p.id").
		Where("h.user_id = ?", userID).
		OrderBy("h.id DESC").
		ToSql()
}

func buildDeleteAboveQuery(sb sq.StatementBuilderType, table string, id int64) (string, []any, error) {
	if _, ok := prunableTables[table]; !ok {
		return "", nil, fmt.Errorf("%w: %q", ErrUnknownTable, table)
	}

	return sb.Delete(table).
		Where(sq.Gt{"id": id}).
		ToSql()
}
