package transport

import (
	stderrors "errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/coupon-marketplace/constant"
	"github.com/muhammadheryan/coupon-marketplace/model"
	"github.com/muhammadheryan/coupon-marketplace/utils/errors"
	"github.com/muhammadheryan/coupon-marketplace/utils/logger"
	validatorx "github.com/muhammadheryan/coupon-marketplace/utils/validator"
	"go.uber.org/zap"
)

const termsImageField = "termsAndConditionImage"

// CreateCoupon handler
// @Summary Upload coupon
// @Description Create a coupon from multipart form fields with an optional terms and conditions image
// @Tags Coupons
// @Accept multipart/form-data
// @Produce json
// @Param userId formData string true "Owner user id"
// @Param categoryName formData string true "Category name"
// @Param brandName formData string true "Brand name (case-insensitive)"
// @Param couponCode formData string true "Redemption code"
// @Param expireDate formData string true "Expire date (RFC3339 or YYYY-MM-DD)"
// @Param price formData number false "Price, default 0"
// @Param termsAndConditionImage formData file false "Terms and conditions image"
// @Success 201 {object} model.CouponResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/coupons [post]
func (s *RestHandler) CreateCoupon(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)
	if err := parseForm(r, s.maxUploadBytes); err != nil {
		logger.Info("[CreateCoupon] parse form", zap.String("error", err.Error()))
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if r.MultipartForm != nil {
		defer func() { _ = r.MultipartForm.RemoveAll() }()
	}

	req := model.CreateCouponRequest{
		UserID:       r.FormValue("userId"),
		CategoryName: r.FormValue("categoryName"),
		BrandName:    r.FormValue("brandName"),
		CouponCode:   r.FormValue("couponCode"),
		ExpireDate:   r.FormValue("expireDate"),
		Price:        r.FormValue("price"),
	}

	image, err := s.stageImage(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.CouponApp.CreateCoupon(ctx, &req, image)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, res)
}

func parseForm(r *http.Request, maxBytes int64) error {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return r.ParseMultipartForm(maxBytes)
	}
	return r.ParseForm()
}

// stageImage moves the uploaded image, if any, into the temp store.
func (s *RestHandler) stageImage(r *http.Request) (*model.UploadedImage, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}
	file, header, err := r.FormFile(termsImageField)
	if err != nil {
		if stderrors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		logger.Info("[CreateCoupon] read form file", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	defer file.Close()

	key, err := s.Uploads.Save(r.Context(), file)
	if err != nil {
		logger.Error("[CreateCoupon] stage upload", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return &model.UploadedImage{Key: key, ContentType: contentType}, nil
}

// ListCoupons handler
// @Summary List coupons
// @Tags Coupons
// @Produce json
// @Success 200 {array} model.CouponSummary
// @Router /api/coupons [get]
func (s *RestHandler) ListCoupons(w http.ResponseWriter, r *http.Request) {
	res, err := s.CouponApp.ListCoupons(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetCouponsByCategory handler
// @Summary Coupons by category
// @Tags Coupons
// @Produce json
// @Param categoryName query string true "Category name (exact)"
// @Success 200 {array} model.CouponResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/coupons/category [get]
func (s *RestHandler) GetCouponsByCategory(w http.ResponseWriter, r *http.Request) {
	res, err := s.CouponApp.GetCouponsByCategory(r.Context(), r.URL.Query().Get("categoryName"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// UpdateCouponStatus handler
// @Summary Approve or reject a coupon
// @Tags Coupons
// @Produce json
// @Param couponId query string true "Coupon id"
// @Param status query string true "approved or rejected"
// @Success 200 {object} model.CouponMessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/coupons/update-status [put]
func (s *RestHandler) UpdateCouponStatus(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := model.CouponStatusRequest{
		CouponID: q.Get("couponId"),
		Status:   q.Get("status"),
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		if validatorx.HasFailedTag(err, "review_status") || req.Status == "" {
			writeError(w, errors.SetCustomError(constant.ErrInvalidCouponStatus))
			return
		}
		writeError(w, errors.SetCustomError(constant.ErrMissingRequiredFields))
		return
	}

	res, err := s.CouponApp.UpdateCouponStatus(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetCoupon handler
// @Summary Get coupon
// @Tags Coupons
// @Produce json
// @Param couponId path string true "Coupon id"
// @Success 200 {object} model.CouponResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/coupons/{couponId} [get]
func (s *RestHandler) GetCoupon(w http.ResponseWriter, r *http.Request) {
	res, err := s.CouponApp.GetCoupon(r.Context(), mux.Vars(r)["couponId"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// EditCoupon handler
// @Summary Edit coupon
// @Description Overwrite the given fields; a status change must be a valid review transition
// @Tags Coupons
// @Accept json
// @Produce json
// @Param couponId path string true "Coupon id"
// @Param request body model.EditCouponRequest true "Fields to change"
// @Success 200 {object} model.CouponMessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/coupons/{couponId} [put]
func (s *RestHandler) EditCoupon(w http.ResponseWriter, r *http.Request) {
	var req model.EditCouponRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.CouponApp.EditCoupon(r.Context(), mux.Vars(r)["couponId"], &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetCouponsByUser handler
// @Summary Coupons uploaded by a user
// @Tags Coupons
// @Produce json
// @Param userId path string true "User id"
// @Success 200 {array} model.CouponResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/coupons/user/{userId} [get]
func (s *RestHandler) GetCouponsByUser(w http.ResponseWriter, r *http.Request) {
	res, err := s.CouponApp.GetCouponsByUser(r.Context(), mux.Vars(r)["userId"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ExpireCoupon handler
// @Summary Expire a due coupon (internal)
// @Tags Internal
// @Produce json
// @Param couponId path string true "Coupon id"
// @Success 200 {object} model.CouponResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /internal/v1/coupons/{couponId}/expire [post]
func (s *RestHandler) ExpireCoupon(w http.ResponseWriter, r *http.Request) {
	res, err := s.CouponApp.ExpireCoupon(r.Context(), mux.Vars(r)["couponId"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}
