package brand

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/muhammadheryan/coupon-marketplace/cmd/config"
	"github.com/muhammadheryan/coupon-marketplace/constant"
	"github.com/muhammadheryan/coupon-marketplace/model"
	brandrepo "github.com/muhammadheryan/coupon-marketplace/repository/brand"
	couponrepo "github.com/muhammadheryan/coupon-marketplace/repository/coupon"
	redisrepo "github.com/muhammadheryan/coupon-marketplace/repository/redis"
	"github.com/muhammadheryan/coupon-marketplace/utils/errors"
	"github.com/muhammadheryan/coupon-marketplace/utils/logger"
	"go.uber.org/zap"
)

const (
	cacheKeyAllBrands   = "brands:all"
	cacheKeyBrandByName = "brand:name:"
)

type BrandApp interface {
	ListBrands(ctx context.Context) ([]model.BrandEntity, error)
	CreateBrand(ctx context.Context, req *model.CreateBrandRequest) (*model.BrandEntity, error)
	ResolveBrand(ctx context.Context, brandName string) (*model.BrandEntity, error)
	GetCouponsByBrand(ctx context.Context, brandName string) ([]model.CouponResponse, error)
}

type brandAppImpl struct {
	config     *config.Config
	brandRepo  brandrepo.BrandRepository
	couponRepo couponrepo.CouponRepository
	redisRepo  redisrepo.Repository
}

func NewBrandApp(config *config.Config, brandRepo brandrepo.BrandRepository, couponRepo couponrepo.CouponRepository, redisRepo redisrepo.Repository) BrandApp {
	return &brandAppImpl{
		config:     config,
		brandRepo:  brandRepo,
		couponRepo: couponRepo,
		redisRepo:  redisRepo,
	}
}

func (s *brandAppImpl) ListBrands(ctx context.Context) ([]model.BrandEntity, error) {
	var cached []model.BrandEntity
	if err := s.redisRepo.GetJSON(ctx, cacheKeyAllBrands, &cached); err == nil {
		return cached, nil
	}

	brands, err := s.brandRepo.List(ctx)
	if err != nil {
		logger.Error("[ListBrands] err brandRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.redisRepo.SetJSON(ctx, cacheKeyAllBrands, brands, s.config.Redis.CacheTTL); err != nil {
		logger.Warn("[ListBrands] err cache brands", zap.String("error", err.Error()))
	}
	return brands, nil
}

func (s *brandAppImpl) CreateBrand(ctx context.Context, req *model.CreateBrandRequest) (*model.BrandEntity, error) {
	name := strings.TrimSpace(req.BrandName)
	if name == "" {
		return nil, errors.SetCustomError(constant.ErrMissingRequiredFields)
	}

	existing, err := s.brandRepo.GetByName(ctx, name)
	if err != nil {
		logger.Error("[CreateBrand] err brandRepo.GetByName", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil {
		return nil, errors.SetCustomError(constant.ErrConflict)
	}

	brand, err := s.brandRepo.Create(ctx, &model.BrandEntity{
		BrandID:   uuid.NewString(),
		BrandName: name,
	})
	if err != nil {
		if errors.IsType(err, constant.ErrConflict) {
			return nil, err
		}
		logger.Error("[CreateBrand] err brandRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.redisRepo.Delete(ctx, cacheKeyAllBrands); err != nil {
		logger.Warn("[CreateBrand] err invalidate brand list", zap.String("error", err.Error()))
	}
	return brand, nil
}

// ResolveBrand finds the brand whose whole name equals brandName ignoring
// case. It returns nil, nil when no brand matches.
func (s *brandAppImpl) ResolveBrand(ctx context.Context, brandName string) (*model.BrandEntity, error) {
	name := strings.TrimSpace(brandName)
	if name == "" {
		return nil, nil
	}

	key := cacheKeyBrandByName + strings.ToLower(name)
	var cached model.BrandEntity
	if err := s.redisRepo.GetJSON(ctx, key, &cached); err == nil {
		return &cached, nil
	}

	brand, err := s.brandRepo.GetByName(ctx, name)
	if err != nil {
		logger.Error("[ResolveBrand] err brandRepo.GetByName", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if brand == nil {
		return nil, nil
	}

	if err := s.redisRepo.SetJSON(ctx, key, brand, s.config.Redis.CacheTTL); err != nil {
		logger.Warn("[ResolveBrand] err cache brand", zap.String("error", err.Error()))
	}
	return brand, nil
}

func (s *brandAppImpl) GetCouponsByBrand(ctx context.Context, brandName string) ([]model.CouponResponse, error) {
	name := strings.TrimSpace(brandName)
	if name == "" {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	brand, err := s.ResolveBrand(ctx, name)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, errors.SetCustomError(constant.ErrBrandNotFound)
	}

	coupons, err := s.couponRepo.ListByBrandID(ctx, brand.BrandID)
	if err != nil {
		logger.Error("[GetCouponsByBrand] err couponRepo.ListByBrandID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// rows from before coupons carried a brand id only have the name
	if len(coupons) == 0 {
		coupons, err = s.couponRepo.ListByLegacyBrandName(ctx, name)
		if err != nil {
			logger.Error("[GetCouponsByBrand] err couponRepo.ListByLegacyBrandName", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	}

	return model.ToCouponResponses(coupons), nil
}
