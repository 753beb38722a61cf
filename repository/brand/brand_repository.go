package brand

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

type BrandRepository interface {
	Create(ctx context.Context, req *model.BrandEntity) (*model.BrandEntity, error)
	List(ctx context.Context) ([]model.BrandEntity, error)
	GetByName(ctx context.Context, name string) (*model.BrandEntity, error)
}

func NewBrandRepository(conn *sqlx.DB) BrandRepository {
	return &SQL{conn: conn}
}

const (
	insertBrandQuery    = `INSERT INTO brands (brand_id, brand_name) VALUES (?, ?)`
	listBrandsQuery     = `SELECT id, brand_id, brand_name FROM brands ORDER BY brand_name`
	getBrandByNameQuery = `SELECT id, brand_id, brand_name FROM brands WHERE LOWER(brand_name) = LOWER(?) LIMIT 1`
)

func (s *SQL) Create(ctx context.Context, data *model.BrandEntity) (*model.BrandEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertBrandQuery, data.BrandID, data.BrandName)
	if err != nil {
		if dberr.IsDuplicateKey(err) {
			return nil, errors.SetCustomError(constant.ErrConflict)
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

func (s *SQL) List(ctx context.Context) ([]model.BrandEntity, error) {
	brands := make([]model.BrandEntity, 0)
	if err := s.conn.SelectContext(ctx, &brands, listBrandsQuery); err != nil {
		return nil, err
	}
	return brands, nil
}

// GetByName matches the whole brand name ignoring letter case.
func (s *SQL) GetByName(ctx context.Context, name string) (*model.BrandEntity, error) {
	var entity model.BrandEntity
	if err := s.conn.QueryRowxContext(ctx, getBrandByNameQuery, name).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}
