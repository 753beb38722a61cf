package coupon

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/coupon-marketplace/constant"
	"github.com/muhammadheryan/coupon-marketplace/model"
	"github.com/muhammadheryan/coupon-marketplace/repository/dberr"
	"github.com/muhammadheryan/coupon-marketplace/utils/errors"
)

type SQL struct {
	conn *sqlx.DB
}

type CouponRepository interface {
	Create(ctx context.Context, req *model.CouponEntity) (*model.CouponEntity, error)
	List(ctx context.Context) ([]model.CouponEntity, error)
	ListByCategory(ctx context.Context, categoryName string) ([]model.CouponEntity, error)
	ListByUser(ctx context.Context, userID string) ([]model.CouponEntity, error)
	ListByBrandID(ctx context.Context, brandID string) ([]model.CouponEntity, error)
	ListByLegacyBrandName(ctx context.Context, brandName string) ([]model.CouponEntity, error)
	GetByID(ctx context.Context, couponID string) (*model.CouponEntity, error)
	GetByIDTx(ctx context.Context, tx *sqlx.Tx, couponID string) (*model.CouponEntity, error)
	UpdateTx(ctx context.Context, tx *sqlx.Tx, couponID string, patch *model.CouponPatch) error
	ListDue(ctx context.Context, now time.Time) ([]model.CouponEntity, error)
	MarkExpired(ctx context.Context, couponID string, now time.Time) (bool, error)
}

func NewCouponRepository(conn *sqlx.DB) CouponRepository {
	return &SQL{conn: conn}
}

const (
	couponColumns     = `id, coupon_id, user_id, category_name, brand_id, brand_name, coupon_code, expire_date, price, terms_image, terms_image_content_type, status, created_at, updated_at`
	couponLiteColumns = `id, coupon_id, user_id, category_name, brand_id, brand_name, coupon_code, expire_date, price, status, created_at, updated_at`

	insertCouponQuery = `INSERT INTO coupons (coupon_id, user_id, category_name, brand_id, coupon_code, expire_date, price, terms_image, terms_image_content_type, status, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	selectCouponBase = `SELECT ` + couponColumns + ` FROM coupons`

	listDueQuery = `SELECT ` + couponLiteColumns + ` FROM coupons WHERE expire_date < ? AND status <> ? ORDER BY expire_date`

	markExpiredQuery = `UPDATE coupons SET status = ?, updated_at = NOW() WHERE coupon_id = ? AND status <> ? AND expire_date < ?`
)

func (s *SQL) Create(ctx context.Context, data *model.CouponEntity) (*model.CouponEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertCouponQuery,
		data.CouponID, data.UserID, data.CategoryName, data.BrandID, data.CouponCode, data.ExpireDate,
		data.Price, data.TermsImage, data.TermsImageContentType, data.Status, data.CreatedAt, data.UpdatedAt)
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

func (s *SQL) List(ctx context.Context) ([]model.CouponEntity, error) {
	return s.selectCoupons(ctx, selectCouponBase+" ORDER BY id")
}

func (s *SQL) ListByCategory(ctx context.Context, categoryName string) ([]model.CouponEntity, error) {
	return s.selectCoupons(ctx, selectCouponBase+" WHERE category_name = ? ORDER BY id", categoryName)
}

func (s *SQL) ListByUser(ctx context.Context, userID string) ([]model.CouponEntity, error) {
	return s.selectCoupons(ctx, selectCouponBase+" WHERE user_id = ? ORDER BY id", userID)
}

func (s *SQL) ListByBrandID(ctx context.Context, brandID string) ([]model.CouponEntity, error) {
	return s.selectCoupons(ctx, selectCouponBase+" WHERE brand_id = ? ORDER BY id", brandID)
}

// ListByLegacyBrandName matches rows written before coupons referenced brands by id.
func (s *SQL) ListByLegacyBrandName(ctx context.Context, brandName string) ([]model.CouponEntity, error) {
	pattern := "%" + escapeLike(strings.ToLower(brandName)) + "%"
	return s.selectCoupons(ctx, selectCouponBase+` WHERE brand_name IS NOT NULL AND LOWER(brand_name) LIKE ? ESCAPE '\\' ORDER BY id`, pattern)
}

func (s *SQL) GetByID(ctx context.Context, couponID string) (*model.CouponEntity, error) {
	var entity model.CouponEntity
	if err := s.conn.QueryRowxContext(ctx, selectCouponBase+" WHERE coupon_id = ?", couponID).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// GetByIDTx locks the coupon row until tx ends.
func (s *SQL) GetByIDTx(ctx context.Context, tx *sqlx.Tx, couponID string) (*model.CouponEntity, error) {
	var entity model.CouponEntity
	if err := tx.QueryRowxContext(ctx, selectCouponBase+" WHERE coupon_id = ? FOR UPDATE", couponID).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) UpdateTx(ctx context.Context, tx *sqlx.Tx, couponID string, patch *model.CouponPatch) error {
	sets := make([]string, 0, 7)
	args := make([]any, 0, 7)

	if patch.CategoryName != nil {
		sets = append(sets, "category_name = ?")
		args = append(args, *patch.CategoryName)
	}
	if patch.BrandID != nil {
		sets = append(sets, "brand_id = ?")
		args = append(args, *patch.BrandID)
	}
	if patch.CouponCode != nil {
		sets = append(sets, "coupon_code = ?")
		args = append(args, *patch.CouponCode)
	}
	if patch.ExpireDate != nil {
		sets = append(sets, "expire_date = ?")
		args = append(args, *patch.ExpireDate)
	}
	if patch.Price != nil {
		sets = append(sets, "price = ?")
		args = append(args, *patch.Price)
	}
	if patch.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, *patch.Status)
	}
	if len(sets) == 0 {
		return nil
	}

	sets = append(sets, "updated_at = NOW()")
	args = append(args, couponID)
	query := "UPDATE coupons SET " + strings.Join(sets, ", ") + " WHERE coupon_id = ?"
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		if dberr.IsDuplicateKey(err) {
			return errors.SetCustomError(constant.ErrConflict)
		}
		return err
	}
	return nil
}

// ListDue returns coupons past their expire date that are not expired yet, without image payloads.
func (s *SQL) ListDue(ctx context.Context, now time.Time) ([]model.CouponEntity, error) {
	return s.selectCoupons(ctx, listDueQuery, now, constant.CouponStatusExpired)
}

// MarkExpired expires one coupon; false when it was already expired or not due.
func (s *SQL) MarkExpired(ctx context.Context, couponID string, now time.Time) (bool, error) {
	res, err := s.conn.ExecContext(ctx, markExpiredQuery, constant.CouponStatusExpired, couponID, constant.CouponStatusExpired, now)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *SQL) selectCoupons(ctx context.Context, query string, args ...any) ([]model.CouponEntity, error) {
	rows, err := s.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	coupons := make([]model.CouponEntity, 0)
	for rows.Next() {
		var c model.CouponEntity
		if err := rows.StructScan(&c); err != nil {
			return nil, err
		}
		coupons = append(coupons, c)
	}
	return coupons, rows.Err()
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
