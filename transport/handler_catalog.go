package transport

import (
	"net/http"

	"github.com/muhammadheryan/coupon-marketplace/constant"
	"github.com/muhammadheryan/coupon-marketplace/model"
	"github.com/muhammadheryan/coupon-marketplace/utils/errors"
)

// ListBrands handler
// @Summary List brands
// @Tags Brands
// @Produce json
// @Success 200 {array} model.BrandEntity
// @Router /api/brands [get]
func (s *RestHandler) ListBrands(w http.ResponseWriter, r *http.Request) {
	res, err := s.BrandApp.ListBrands(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// CreateBrand handler
// @Summary Create brand
// @Tags Brands
// @Accept json
// @Produce json
// @Param request body model.CreateBrandRequest true "Brand"
// @Success 201 {object} model.BrandEntity
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/brands [post]
func (s *RestHandler) CreateBrand(w http.ResponseWriter, r *http.Request) {
	var req model.CreateBrandRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.BrandApp.CreateBrand(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, res)
}

// GetCouponsByBrand handler
// @Summary Coupons by brand
// @Tags Brands
// @Produce json
// @Param brandName query string true "Brand name (case-insensitive)"
// @Success 200 {array} model.CouponResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/brands/couponByBrand [get]
func (s *RestHandler) GetCouponsByBrand(w http.ResponseWriter, r *http.Request) {
	res, err := s.BrandApp.GetCouponsByBrand(r.Context(), r.URL.Query().Get("brandName"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ListCategories handler
// @Summary List categories
// @Tags Categories
// @Produce json
// @Success 200 {array} model.CategoryEntity
// @Router /api/categories [get]
func (s *RestHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	res, err := s.CategoryApp.ListCategories(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// CreateCategory handler
// @Summary Create category
// @Tags Categories
// @Accept json
// @Produce json
// @Param request body model.CreateCategoryRequest true "Category"
// @Success 201 {object} model.CreateCategoryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/categories [post]
func (s *RestHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req model.CreateCategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.CategoryApp.CreateCategory(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, res)
}

// GetCouponsByCategoryName handler
// @Summary Coupons in a category
// @Tags Categories
// @Produce json
// @Param categoryName query string true "Category name (exact)"
// @Success 200 {array} model.CouponResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/categories/bycategory [get]
func (s *RestHandler) GetCouponsByCategoryName(w http.ResponseWriter, r *http.Request) {
	res, err := s.CategoryApp.GetCouponsByCategory(r.Context(), r.URL.Query().Get("categoryName"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}
