package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrConflict
	ErrMissingRequiredFields
	ErrInvalidCouponStatus
	ErrInvalidStatusTransition
	ErrBrandNotFound
	ErrCouponNotFound
	ErrCouponsNotFound
	ErrUserNotFound
	ErrCategoryExists
	ErrInvalidToken
	ErrPhoneNotInToken
	ErrInvalidImage
	ErrCouponNotDue
	ErrTooManyRequests
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:                 "success",
	ErrInternal:                "error internal",
	ErrNotFound:                "data not found",
	ErrInvalidRequest:          "invalid request",
	ErrUnauthorize:             "unauthorize request",
	ErrConflict:                "data already exists",
	ErrMissingRequiredFields:   "missing required fields",
	ErrInvalidCouponStatus:     "invalid status, must be one of: approved, rejected",
	ErrInvalidStatusTransition: "status transition not allowed",
	ErrBrandNotFound:           "brand not found",
	ErrCouponNotFound:          "coupon not found",
	ErrCouponsNotFound:         "no coupons found",
	ErrUserNotFound:            "user not found",
	ErrCategoryExists:          "category already exists",
	ErrInvalidToken:            "invalid token",
	ErrPhoneNotInToken:         "phone number not found in token",
	ErrInvalidImage:            "terms and condition file must be an image",
	ErrCouponNotDue:            "coupon has not reached its expire date",
	ErrTooManyRequests:         "too many requests",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:                 http.StatusOK,
	ErrInternal:                http.StatusInternalServerError,
	ErrNotFound:                http.StatusNotFound,
	ErrInvalidRequest:          http.StatusBadRequest,
	ErrUnauthorize:             http.StatusUnauthorized,
	ErrConflict:                http.StatusConflict,
	ErrMissingRequiredFields:   http.StatusBadRequest,
	ErrInvalidCouponStatus:     http.StatusBadRequest,
	ErrInvalidStatusTransition: http.StatusConflict,
	ErrBrandNotFound:           http.StatusNotFound,
	ErrCouponNotFound:          http.StatusNotFound,
	ErrCouponsNotFound:         http.StatusNotFound,
	ErrUserNotFound:            http.StatusNotFound,
	ErrCategoryExists:          http.StatusConflict,
	ErrInvalidToken:            http.StatusUnauthorized,
	ErrPhoneNotInToken:         http.StatusBadRequest,
	ErrInvalidImage:            http.StatusBadRequest,
	ErrCouponNotDue:            http.StatusConflict,
	ErrTooManyRequests:         http.StatusTooManyRequests,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:                 "0000",
	ErrInternal:                "0001",
	ErrNotFound:                "0002",
	ErrInvalidRequest:          "0003",
	ErrUnauthorize:             "0004",
	ErrConflict:                "0005",
	ErrMissingRequiredFields:   "0006",
	ErrInvalidCouponStatus:     "0007",
	ErrInvalidStatusTransition: "0008",
	ErrBrandNotFound:           "0009",
	ErrCouponNotFound:          "0010",
	ErrCouponsNotFound:         "0011",
	ErrUserNotFound:            "0012",
	ErrCategoryExists:          "0013",
	ErrInvalidToken:            "0014",
	ErrPhoneNotInToken:         "0015",
	ErrInvalidImage:            "0016",
	ErrCouponNotDue:            "0017",
	ErrTooManyRequests:         "0018",
}
