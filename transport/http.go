package transport

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	brandapp "github.com/muhammadheryan/coupon-marketplace/application/brand"
	categoryapp "github.com/muhammadheryan/coupon-marketplace/application/category"
	couponapp "github.com/muhammadheryan/coupon-marketplace/application/coupon"
	userapp "github.com/muhammadheryan/coupon-marketplace/application/user"
	"github.com/muhammadheryan/coupon-marketplace/cmd/config"
	"github.com/muhammadheryan/coupon-marketplace/thirdparty/storage"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type RestHandler struct {
	CouponApp   couponapp.CouponApp
	BrandApp    brandapp.BrandApp
	CategoryApp categoryapp.CategoryApp
	UserApp     userapp.UserApp
	Uploads     storage.TempStore
	DB          Pinger

	maxUploadBytes int64
}

func NewTransport(cfg *config.Config, rh *RestHandler) http.Handler {
	router := mux.NewRouter()
	rh.maxUploadBytes = cfg.Upload.MaxBytes

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
	router.HandleFunc("/health", rh.Health).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()

	// brands
	api.HandleFunc("/brands", rh.ListBrands).Methods(http.MethodGet)
	api.HandleFunc("/brands", rh.CreateBrand).Methods(http.MethodPost)
	api.HandleFunc("/brands/couponByBrand", rh.GetCouponsByBrand).Methods(http.MethodGet)

	// categories
	api.HandleFunc("/categories", rh.ListCategories).Methods(http.MethodGet)
	api.HandleFunc("/categories", rh.CreateCategory).Methods(http.MethodPost)
	api.HandleFunc("/categories/bycategory", rh.GetCouponsByCategoryName).Methods(http.MethodGet)

	// coupons; fixed paths before {couponId}
	api.HandleFunc("/coupons", rh.CreateCoupon).Methods(http.MethodPost)
	api.HandleFunc("/coupons", rh.ListCoupons).Methods(http.MethodGet)
	api.HandleFunc("/coupons/category", rh.GetCouponsByCategory).Methods(http.MethodGet)
	api.HandleFunc("/coupons/update-status", rh.UpdateCouponStatus).Methods(http.MethodPut)
	api.HandleFunc("/coupons/user/{userId}", rh.GetCouponsByUser).Methods(http.MethodGet)
	api.HandleFunc("/coupons/{couponId}", rh.GetCoupon).Methods(http.MethodGet)
	api.HandleFunc("/coupons/{couponId}", rh.EditCoupon).Methods(http.MethodPut)

	// users
	api.HandleFunc("/users/phone", rh.LoginWithPhone).Methods(http.MethodGet)
	api.HandleFunc("/users/register/{userId}", rh.CompleteProfile).Methods(http.MethodPost)
	api.HandleFunc("/users/profile/{userId}", rh.UpdateProfile).Methods(http.MethodPut)
	api.HandleFunc("/users/search", rh.GetUserByEmail).Methods(http.MethodGet)
	api.HandleFunc("/users/{userId}", rh.DeleteUser).Methods(http.MethodDelete)
	api.HandleFunc("/users", rh.ListUsers).Methods(http.MethodGet)

	// internal routes, called by the expiration consumer
	internal := router.PathPrefix("/internal/v1").Subrouter()
	internal.Use(InternalMiddleware(cfg.InternalAPIKey))
	internal.HandleFunc("/coupons/{couponId}/expire", rh.ExpireCoupon).Methods(http.MethodPost)

	// middleware
	router.Use(RequestIDMiddleware())
	router.Use(LoggingMiddleware())
	router.Use(RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))

	// CORS wraps the router so preflight requests never reach method matching
	return RecoveryMiddleware()(CORSMiddleware()(router))
}

type healthResponse struct {
	Status string `json:"status"`
}

// Health handler
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} healthResponse
// @Failure 503 {object} healthResponse
// @Router /health [get]
func (s *RestHandler) Health(w http.ResponseWriter, r *http.Request) {
	if s.DB != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := s.DB.PingContext(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unavailable"})
			return
		}
	}
	writeSuccess(w, healthResponse{Status: "ok"})
}
