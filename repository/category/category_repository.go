package category

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/coupon-marketplace/constant"
	"github.com/muhammadheryan/coupon-marketplace/model"
	"github.com/muhammadheryan/coupon-marketplace/repository/dberr"
	"github.com/muhammadheryan/coupon-marketplace/utils/errors"
)

type SQL struct {
	conn *sqlx.DB
}

type CategoryRepository interface {
	Create(ctx context.Context, req *model.CategoryEntity) (*model.CategoryEntity, error)
	List(ctx context.Context) ([]model.CategoryEntity, error)
	GetByName(ctx context.Context, name string) (*model.CategoryEntity, error)
}

func NewCategoryRepository(conn *sqlx.DB) CategoryRepository {
	return &SQL{conn: conn}
}

// name uses a binary collation, so lookups here are case-sensitive
const (
	insertCategoryQuery    = `INSERT INTO categories (category_id, name) VALUES (?, ?)`
	listCategoriesQuery    = `SELECT id, category_id, name FROM categories ORDER BY name`
	getCategoryByNameQuery = `SELECT id, category_id, name FROM categories WHERE name = ? LIMIT 1`
)

func (s *SQL) Create(ctx context.Context, data *model.CategoryEntity) (*model.CategoryEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertCategoryQuery, data.CategoryID, data.Name)
	if err != nil {
		if dberr.IsDuplicateKey(err) {
			return nil, errors.SetCustomError(constant.ErrCategoryExists)
		}
		return nil, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	data.ID = uint64(lastID)
	return data, nil
}

func (s *SQL) List(ctx context.Context) ([]model.CategoryEntity, error) {
	categories := make([]model.CategoryEntity, 0)
	if err := s.conn.SelectContext(ctx, &categories, listCategoriesQuery); err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *SQL) GetByName(ctx context.Context, name string) (*model.CategoryEntity, error) {
	var entity model.CategoryEntity
	if err := s.conn.QueryRowxContext(ctx, getCategoryByNameQuery, name).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}
