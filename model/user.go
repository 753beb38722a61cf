package model

import (
	"time"

	"github.com/muhammadheryan/coupon-marketplace/constant"
)

// UserEntity represents the users table entity
type UserEntity struct {
	ID                   uint64            `db:"id" json:"-"`
	UserID               string            `db:"user_id" json:"userId"`
	Phone                string            `db:"phone" json:"phone"`
	FirstName            *string           `db:"first_name" json:"firstName,omitempty"`
	LastName             *string           `db:"last_name" json:"lastName,omitempty"`
	Email                *string           `db:"email" json:"email,omitempty"`
	DOB                  *time.Time        `db:"dob" json:"dob,omitempty"`
	UPI                  *string           `db:"upi" json:"upi,omitempty"`
	Role                 constant.UserRole `db:"role" json:"role"`
	UserLevel            int               `db:"user_level" json:"userLevel"`
	PrepaymentPercentage float64           `db:"prepayment_percentage" json:"prepaymentPercentage"`
	TotalCouponsUploaded int               `db:"total_coupons_uploaded" json:"totalCouponsUploaded"`
	CouponsUploadedToday int               `db:"coupons_uploaded_today" json:"couponsUploadedToday"`
	IsProfileCompleted   bool              `db:"is_profile_completed" json:"isProfileCompleted"`
	CreatedAt            time.Time         `db:"created_at" json:"createdAt"`
	UpdatedAt            *time.Time        `db:"updated_at" json:"updatedAt,omitempty"`
}

// UserFilter for querying users; empty fields are ignored
type UserFilter struct {
	UserID string
	Email  string
	Phone  string
}

// UserProfileUpdate holds the profile columns to overwrite; nil means keep.
type UserProfileUpdate struct {
	FirstName          *string
	LastName           *string
	Email              *string
	DOB                *time.Time
	UPI                *string
	IsProfileCompleted *bool
}

// ProfileRequest is the body of the complete-profile and update-profile endpoints.
type ProfileRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email" validate:"omitempty,email"`
	DOB       string `json:"dob" validate:"omitempty,datetime=2006-01-02"`
	UPI       string `json:"upi"`
}

type LoginResponse struct {
	Message   string      `json:"message"`
	Phone     string      `json:"phone"`
	IsNewUser bool        `json:"isNewUser"`
	User      *UserEntity `json:"user"`
}

// UserListItem is the public projection returned by the user listing.
type UserListItem struct {
	UserID               string            `json:"userId"`
	Phone                string            `json:"phone"`
	FirstName            *string           `json:"firstName,omitempty"`
	LastName             *string           `json:"lastName,omitempty"`
	Email                *string           `json:"email,omitempty"`
	DOB                  *time.Time        `json:"dob,omitempty"`
	UPI                  *string           `json:"upi,omitempty"`
	Role                 constant.UserRole `json:"role"`
	UserLevel            int               `json:"userLevel"`
	PrepaymentPercentage float64           `json:"prepaymentPercentage"`
	TotalCouponsUploaded int               `json:"totalCouponsUploaded"`
	CouponsUploadedToday int               `json:"couponsUploadedToday"`
	IsProfileCompleted   bool              `json:"isProfileCompleted"`
}

func (u *UserEntity) ToListItem() UserListItem {
	return UserListItem{
		UserID:               u.UserID,
		Phone:                u.Phone,
		FirstName:            u.FirstName,
		LastName:             u.LastName,
		Email:                u.Email,
		DOB:                  u.DOB,
		UPI:                  u.UPI,
		Role:                 u.Role,
		UserLevel:            u.UserLevel,
		PrepaymentPercentage: u.PrepaymentPercentage,
		TotalCouponsUploaded: u.TotalCouponsUploaded,
		CouponsUploadedToday: u.CouponsUploadedToday,
		IsProfileCompleted:   u.IsProfileCompleted,
	}
}

type MessageResponse struct {
	Message string `json:"message"`
}

type UserMessageResponse struct {
	Message string      `json:"message"`
	Data    *UserEntity `json:"data,omitempty"`
	User    *UserEntity `json:"user,omitempty"`
}
