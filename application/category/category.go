package category

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/muhammadheryan/coupon-marketplace/constant"
	"github.com/muhammadheryan/coupon-marketplace/model"
	categoryrepo "github.com/muhammadheryan/coupon-marketplace/repository/category"
	couponrepo "github.com/muhammadheryan/coupon-marketplace/repository/coupon"
	"github.com/muhammadheryan/coupon-marketplace/utils/errors"
	"github.com/muhammadheryan/coupon-marketplace/utils/logger"
	"go.uber.org/zap"
)

type CategoryApp interface {
	ListCategories(ctx context.Context) ([]model.CategoryEntity, error)
	CreateCategory(ctx context.Context, req *model.CreateCategoryRequest) (*model.CreateCategoryResponse, error)
	GetCouponsByCategory(ctx context.Context, categoryName string) ([]model.CouponResponse, error)
}

type categoryAppImpl struct {
	categoryRepo categoryrepo.CategoryRepository
	couponRepo   couponrepo.CouponRepository
}

func NewCategoryApp(categoryRepo categoryrepo.CategoryRepository, couponRepo couponrepo.CouponRepository) CategoryApp {
	return &categoryAppImpl{categoryRepo: categoryRepo, couponRepo: couponRepo}
}

func (s *categoryAppImpl) ListCategories(ctx context.Context) ([]model.CategoryEntity, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		logger.Error("[ListCategories] err categoryRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return categories, nil
}

// CreateCategory rejects names that already exist with the exact same spelling.
func (s *categoryAppImpl) CreateCategory(ctx context.Context, req *model.CreateCategoryRequest) (*model.CreateCategoryResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errors.SetCustomError(constant.ErrMissingRequiredFields)
	}

	existing, err := s.categoryRepo.GetByName(ctx, name)
	if err != nil {
		logger.Error("[CreateCategory] err categoryRepo.GetByName", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil {
		return nil, errors.SetCustomError(constant.ErrCategoryExists)
	}

	category, err := s.categoryRepo.Create(ctx, &model.CategoryEntity{
		CategoryID: uuid.NewString(),
		Name:       name,
	})
	if err != nil {
		if errors.IsType(err, constant.ErrCategoryExists) {
			return nil, err
		}
		logger.Error("[CreateCategory] err categoryRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.CreateCategoryResponse{
		Message:  "Category added successfully",
		Category: category,
	}, nil
}

func (s *categoryAppImpl) GetCouponsByCategory(ctx context.Context, categoryName string) ([]model.CouponResponse, error) {
	name := strings.TrimSpace(categoryName)
	if name == "" {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	coupons, err := s.couponRepo.ListByCategory(ctx, name)
	if err != nil {
		logger.Error("[GetCouponsByCategory] err couponRepo.ListByCategory", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if len(coupons) == 0 {
		return nil, errors.SetCustomError(constant.ErrCouponsNotFound)
	}
	return model.ToCouponResponses(coupons), nil
}
