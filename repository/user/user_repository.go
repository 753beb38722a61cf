package user

import (
	"context"
	"database/sql"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/coupon-marketplace/constant"
	"github.com/muhammadheryan/coupon-marketplace/model"
	"github.com/muhammadheryan/coupon-marketplace/repository/dberr"
	"github.com/muhammadheryan/coupon-marketplace/utils/errors"
)

type SQL struct {
	conn *sqlx.DB
}

type UserRepository interface {
	Create(ctx context.Context, req *model.UserEntity) (*model.UserEntity, error)
	Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error)
	List(ctx context.Context) ([]model.UserEntity, error)
	UpdateProfile(ctx context.Context, userID string, upd *model.UserProfileUpdate) error
	Delete(ctx context.Context, userID string) (bool, error)
}

func NewUserRepository(conn *sqlx.DB) UserRepository {
	return &SQL{conn: conn}
}

const (
	userColumns     = `id, user_id, phone, first_name, last_name, email, dob, upi, role, user_level, prepayment_percentage, total_coupons_uploaded, coupons_uploaded_today, is_profile_completed, created_at, updated_at`
	insertUserQuery = `INSERT INTO users (user_id, phone, role, user_level, prepayment_percentage, total_coupons_uploaded, coupons_uploaded_today, is_profile_completed, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	getUserBase     = `SELECT ` + userColumns + ` FROM users WHERE true`
	listUsersQuery  = `SELECT ` + userColumns + ` FROM users ORDER BY id`
	deleteUserQuery = `DELETE FROM users WHERE user_id = ?`
)

func (s *SQL) Create(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertUserQuery,
		data.UserID, data.Phone, data.Role, data.UserLevel, data.PrepaymentPercentage,
		data.TotalCouponsUploaded, data.CouponsUploadedToday, data.IsProfileCompleted, data.CreatedAt)
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

func (s *SQL) Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	query := getUserBase
	args := make([]any, 0, 3)

	if filter.UserID != "" {
		query += " AND user_id = ?"
		args = append(args, filter.UserID)
	}
	if filter.Email != "" {
		query += " AND email = ?"
		args = append(args, filter.Email)
	}
	if filter.Phone != "" {
		query += " AND phone = ?"
		args = append(args, filter.Phone)
	}
	query += " LIMIT 1"

	var entity model.UserEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) List(ctx context.Context) ([]model.UserEntity, error) {
	users := make([]model.UserEntity, 0)
	if err := s.conn.SelectContext(ctx, &users, listUsersQuery); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *SQL) UpdateProfile(ctx context.Context, userID string, upd *model.UserProfileUpdate) error {
	sets := make([]string, 0, 7)
	args := make([]any, 0, 8)

	if upd.FirstName != nil {
		sets = append(sets, "first_name = ?")
		args = append(args, *upd.FirstName)
	}
	if upd.LastName != nil {
		sets = append(sets, "last_name = ?")
		args = append(args, *upd.LastName)
	}
	if upd.Email != nil {
		sets = append(sets, "email = ?")
		args = append(args, *upd.Email)
	}
	if upd.DOB != nil {
		sets = append(sets, "dob = ?")
		args = append(args, *upd.DOB)
	}
	if upd.UPI != nil {
		sets = append(sets, "upi = ?")
		args = append(args, *upd.UPI)
	}
	if upd.IsProfileCompleted != nil {
		sets = append(sets, "is_profile_completed = ?")
		args = append(args, *upd.IsProfileCompleted)
	}
	if len(sets) == 0 {
		return nil
	}

	sets = append(sets, "updated_at = NOW()")
	args = append(args, userID)
	query := "UPDATE users SET " + strings.Join(sets, ", ") + " WHERE user_id = ?"
	if _, err := s.conn.ExecContext(ctx, query, args...); err != nil {
		if dberr.IsDuplicateKey(err) {
			return errors.SetCustomError(constant.ErrConflict)
		}
		return err
	}
	return nil
}

func (s *SQL) Delete(ctx context.Context, userID string) (bool, error) {
	res, err := s.conn.ExecContext(ctx, deleteUserQuery, userID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
