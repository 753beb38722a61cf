package model

import (
	"encoding/base64"
	"time"

	"github.com/muhammadheryan/coupon-marketplace/constant"
)

// CouponEntity represents the coupons table entity
type CouponEntity struct {
	ID                    uint64                `db:"id"`
	CouponID              string                `db:"coupon_id"`
	UserID                string                `db:"user_id"`
	CategoryName          string                `db:"category_name"`
	BrandID               string                `db:"brand_id"`
	BrandName             *string               `db:"brand_name"`
	CouponCode            string                `db:"coupon_code"`
	ExpireDate            time.Time             `db:"expire_date"`
	Price                 float64               `db:"price"`
	TermsImage            []byte                `db:"terms_image"`
	TermsImageContentType *string               `db:"terms_image_content_type"`
	Status                constant.CouponStatus `db:"status"`
	CreatedAt             time.Time             `db:"created_at"`
	UpdatedAt             time.Time             `db:"updated_at"`
}

// ImageDataURI renders the terms-and-conditions image as a data URI, or nil.
func (c *CouponEntity) ImageDataURI() *string {
	if len(c.TermsImage) == 0 {
		return nil
	}
	contentType := "application/octet-stream"
	if c.TermsImageContentType != nil && *c.TermsImageContentType != "" {
		contentType = *c.TermsImageContentType
	}
	uri := "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(c.TermsImage)
	return &uri
}

// IsDue reports whether the coupon is past its expire date at now and not yet expired.
func (c *CouponEntity) IsDue(now time.Time) bool {
	return c.ExpireDate.Before(now) && c.Status != constant.CouponStatusExpired
}

type CouponResponse struct {
	CouponID               string                `json:"couponId"`
	UserID                 string                `json:"userId"`
	CategoryName           string                `json:"categoryName"`
	BrandID                string                `json:"brandId"`
	CouponCode             string                `json:"couponCode"`
	ExpireDate             time.Time             `json:"expireDate"`
	Price                  float64               `json:"price"`
	TermsAndConditionImage *string               `json:"termsAndConditionImage"`
	Status                 constant.CouponStatus `json:"status"`
	CreatedAt              time.Time             `json:"createdAt"`
	UpdatedAt              time.Time             `json:"updatedAt"`
}

func (c *CouponEntity) ToResponse() CouponResponse {
	return CouponResponse{
		CouponID:               c.CouponID,
		UserID:                 c.UserID,
		CategoryName:           c.CategoryName,
		BrandID:                c.BrandID,
		CouponCode:             c.CouponCode,
		ExpireDate:             c.ExpireDate,
		Price:                  c.Price,
		TermsAndConditionImage: c.ImageDataURI(),
		Status:                 c.Status,
		CreatedAt:              c.CreatedAt,
		UpdatedAt:              c.UpdatedAt,
	}
}

func ToCouponResponses(coupons []CouponEntity) []CouponResponse {
	res := make([]CouponResponse, 0, len(coupons))
	for i := range coupons {
		res = append(res, coupons[i].ToResponse())
	}
	return res
}

// CouponSummary is the projection served by the coupon listing.
type CouponSummary struct {
	CouponID               string    `json:"couponId"`
	UserID                 string    `json:"userId"`
	BrandID                string    `json:"brandId"`
	CouponCode             string    `json:"couponCode"`
	ExpireDate             time.Time `json:"expireDate"`
	Price                  float64   `json:"price"`
	TermsAndConditionImage *string   `json:"termsAndConditionImage"`
}

func (c *CouponEntity) ToSummary() CouponSummary {
	return CouponSummary{
		CouponID:               c.CouponID,
		UserID:                 c.UserID,
		BrandID:                c.BrandID,
		CouponCode:             c.CouponCode,
		ExpireDate:             c.ExpireDate,
		Price:                  c.Price,
		TermsAndConditionImage: c.ImageDataURI(),
	}
}

// CreateCouponRequest carries the multipart form fields of a coupon upload.
type CreateCouponRequest struct {
	UserID       string `json:"userId" validate:"required"`
	CategoryName string `json:"categoryName" validate:"required"`
	BrandName    string `json:"brandName" validate:"required"`
	CouponCode   string `json:"couponCode" validate:"required"`
	ExpireDate   string `json:"expireDate" validate:"required"`
	Price        string `json:"price"`
}

// UploadedImage references a staged terms-and-conditions upload.
type UploadedImage struct {
	Key         string
	ContentType string
}

// EditCouponRequest is the body of the coupon edit endpoint; absent fields are kept.
type EditCouponRequest struct {
	CategoryName *string  `json:"categoryName" validate:"omitempty,min=1"`
	BrandName    *string  `json:"brandName" validate:"omitempty,min=1"`
	CouponCode   *string  `json:"couponCode" validate:"omitempty,min=1"`
	ExpireDate   *string  `json:"expireDate"`
	Price        *float64 `json:"price" validate:"omitempty,gte=0"`
	Status       *string  `json:"status"`
}

// CouponPatch holds the coupon columns to overwrite; nil means keep.
type CouponPatch struct {
	CategoryName *string
	BrandID      *string
	CouponCode   *string
	ExpireDate   *time.Time
	Price        *float64
	Status       *constant.CouponStatus
}

func (p *CouponPatch) Empty() bool {
	return p.CategoryName == nil && p.BrandID == nil && p.CouponCode == nil &&
		p.ExpireDate == nil && p.Price == nil && p.Status == nil
}

type CouponStatusRequest struct {
	CouponID string `json:"couponId" validate:"required"`
	Status   string `json:"status" validate:"required,review_status"`
}

type CouponMessageResponse struct {
	Message string         `json:"message"`
	Data    CouponResponse `json:"data"`
}
