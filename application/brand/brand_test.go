package brand_test

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"
	"time"

	appbrand "github.com/muhammadheryan/coupon-marketplace/application/brand"
	"github.com/muhammadheryan/coupon-marketplace/cmd/config"
	"github.com/muhammadheryan/coupon-marketplace/constant"
	brandmocks "github.com/muhammadheryan/coupon-marketplace/mocks/repository/brand"
	couponmocks "github.com/muhammadheryan/coupon-marketplace/mocks/repository/coupon"
	redismocks "github.com/muhammadheryan/coupon-marketplace/mocks/repository/redis"
	"github.com/muhammadheryan/coupon-marketplace/model"
	redisrepo "github.com/muhammadheryan/coupon-marketplace/repository/redis"
	cerr "github.com/muhammadheryan/coupon-marketplace/utils/errors"
	"github.com/stretchr/testify/mock"
)

var testConfig = &config.Config{Redis: config.RedisConfig{CacheTTL: time.Minute}}

type fields struct {
	brandRepo  *brandmocks.BrandRepository
	couponRepo *couponmocks.CouponRepository
	redisRepo  *redismocks.RedisRepository
}

func newFields(t *testing.T) fields {
	return fields{
		brandRepo:  brandmocks.NewBrandRepository(t),
		couponRepo: couponmocks.NewCouponRepository(t),
		redisRepo:  redismocks.NewRedisRepository(t),
	}
}

func (f fields) app() appbrand.BrandApp {
	return appbrand.NewBrandApp(testConfig, f.brandRepo, f.couponRepo, f.redisRepo)
}

func assertErrType(t *testing.T, err error, want constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[want] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[want])
	}
}

// fillFrom makes a GetJSON expectation decode v into the destination.
func fillFrom(v any) func(mock.Arguments) {
	return func(args mock.Arguments) {
		body, _ := json.Marshal(v)
		_ = json.Unmarshal(body, args.Get(2))
	}
}

func TestBrandApp_ListBrands(t *testing.T) {
	brands := []model.BrandEntity{{BrandID: "b-1", BrandName: "Apple"}}

	tests := []struct {
		name     string
		mockCall func(f fields)
		want     []model.BrandEntity
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: served from cache",
			mockCall: func(f fields) {
				f.redisRepo.On("GetJSON", mock.Anything, "brands:all", mock.Anything).Run(fillFrom(brands)).Return(nil).Once()
			},
			want: brands,
		},
		{
			name: "success: cache miss loads and stores",
			mockCall: func(f fields) {
				f.redisRepo.On("GetJSON", mock.Anything, "brands:all", mock.Anything).Return(redisrepo.ErrCacheMiss).Once()
				f.brandRepo.On("List", mock.Anything).Return(brands, nil).Once()
				f.redisRepo.On("SetJSON", mock.Anything, "brands:all", brands, time.Minute).Return(nil).Once()
			},
			want: brands,
		},
		{
			name: "success: cache write failure is not fatal",
			mockCall: func(f fields) {
				f.redisRepo.On("GetJSON", mock.Anything, "brands:all", mock.Anything).Return(redisrepo.ErrCacheMiss).Once()
				f.brandRepo.On("List", mock.Anything).Return(brands, nil).Once()
				f.redisRepo.On("SetJSON", mock.Anything, "brands:all", brands, time.Minute).Return(errors.New("redis down")).Once()
			},
			want: brands,
		},
		{
			name: "error: store failure",
			mockCall: func(f fields) {
				f.redisRepo.On("GetJSON", mock.Anything, "brands:all", mock.Anything).Return(redisrepo.ErrCacheMiss).Once()
				f.brandRepo.On("List", mock.Anything).Return(nil, errors.New("db error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			got, err := f.app().ListBrands(context.Background())
			if (err != nil) != tt.wantErr {
				t.Fatalf("ListBrands() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrType(t, err, tt.errCode)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ListBrands() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBrandApp_CreateBrand(t *testing.T) {
	tests := []struct {
		name     string
		req      *model.CreateBrandRequest
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success",
			req:  &model.CreateBrandRequest{BrandName: " Apple "},
			mockCall: func(f fields) {
				f.brandRepo.On("GetByName", mock.Anything, "Apple").Return(nil, nil).Once()
				f.brandRepo.
					On("Create", mock.Anything, mock.MatchedBy(func(b *model.BrandEntity) bool {
						return b.BrandName == "Apple" && b.BrandID != ""
					})).
					Return(func(_ context.Context, b *model.BrandEntity) (*model.BrandEntity, error) { return b, nil }).
					Once()
				f.redisRepo.On("Delete", mock.Anything, "brands:all").Return(nil).Once()
			},
		},
		{
			name:    "error: empty name",
			req:     &model.CreateBrandRequest{BrandName: "  "},
			wantErr: true,
			errCode: constant.ErrMissingRequiredFields,
		},
		{
			name: "error: name exists ignoring case",
			req:  &model.CreateBrandRequest{BrandName: "apple"},
			mockCall: func(f fields) {
				f.brandRepo.On("GetByName", mock.Anything, "apple").Return(&model.BrandEntity{BrandID: "b-1", BrandName: "Apple"}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrConflict,
		},
		{
			name: "error: duplicate key on insert",
			req:  &model.CreateBrandRequest{BrandName: "Apple"},
			mockCall: func(f fields) {
				f.brandRepo.On("GetByName", mock.Anything, "Apple").Return(nil, nil).Once()
				f.brandRepo.On("Create", mock.Anything, mock.Anything).Return(nil, cerr.SetCustomError(constant.ErrConflict)).Once()
			},
			wantErr: true,
			errCode: constant.ErrConflict,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			got, err := f.app().CreateBrand(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CreateBrand() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrType(t, err, tt.errCode)
				return
			}
			if got.BrandName != "Apple" {
				t.Fatalf("CreateBrand() = %+v", got)
			}
		})
	}
}

func TestBrandApp_ResolveBrand(t *testing.T) {
	apple := &model.BrandEntity{BrandID: "b-1", BrandName: "Apple"}

	t.Run("success: case-insensitive lookup is cached under the lowered name", func(t *testing.T) {
		f := newFields(t)
		f.redisRepo.On("GetJSON", mock.Anything, "brand:name:apple", mock.Anything).Return(redisrepo.ErrCacheMiss).Once()
		f.brandRepo.On("GetByName", mock.Anything, "APPLE").Return(apple, nil).Once()
		f.redisRepo.On("SetJSON", mock.Anything, "brand:name:apple", apple, time.Minute).Return(nil).Once()

		got, err := f.app().ResolveBrand(context.Background(), "APPLE")
		if err != nil || got != apple {
			t.Fatalf("ResolveBrand() = %+v, %v", got, err)
		}
	})

	t.Run("success: cache hit", func(t *testing.T) {
		f := newFields(t)
		f.redisRepo.On("GetJSON", mock.Anything, "brand:name:apple", mock.Anything).Run(fillFrom(apple)).Return(nil).Once()

		got, err := f.app().ResolveBrand(context.Background(), "apple")
		if err != nil || got == nil || got.BrandID != "b-1" {
			t.Fatalf("ResolveBrand() = %+v, %v", got, err)
		}
	})

	t.Run("success: unknown brand is nil and not cached", func(t *testing.T) {
		f := newFields(t)
		f.redisRepo.On("GetJSON", mock.Anything, "brand:name:nokia", mock.Anything).Return(redisrepo.ErrCacheMiss).Once()
		f.brandRepo.On("GetByName", mock.Anything, "Nokia").Return(nil, nil).Once()

		got, err := f.app().ResolveBrand(context.Background(), "Nokia")
		if err != nil || got != nil {
			t.Fatalf("ResolveBrand() = %+v, %v", got, err)
		}
	})
}

func TestBrandApp_GetCouponsByBrand(t *testing.T) {
	apple := &model.BrandEntity{BrandID: "b-1", BrandName: "Apple"}
	legacyName := "Apple Store"

	tests := []struct {
		name     string
		brand    string
		mockCall func(f fields)
		wantIDs  []string
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:  "success: coupons by brand id",
			brand: "apple",
			mockCall: func(f fields) {
				f.redisRepo.On("GetJSON", mock.Anything, "brand:name:apple", mock.Anything).Run(fillFrom(apple)).Return(nil).Once()
				f.couponRepo.On("ListByBrandID", mock.Anything, "b-1").Return([]model.CouponEntity{{CouponID: "c-1", BrandID: "b-1"}}, nil).Once()
			},
			wantIDs: []string{"c-1"},
		},
		{
			name:  "success: falls back to legacy brand name",
			brand: "apple",
			mockCall: func(f fields) {
				f.redisRepo.On("GetJSON", mock.Anything, "brand:name:apple", mock.Anything).Run(fillFrom(apple)).Return(nil).Once()
				f.couponRepo.On("ListByBrandID", mock.Anything, "b-1").Return([]model.CouponEntity{}, nil).Once()
				f.couponRepo.On("ListByLegacyBrandName", mock.Anything, "apple").
					Return([]model.CouponEntity{{CouponID: "c-legacy", BrandName: &legacyName}}, nil).
					Once()
			},
			wantIDs: []string{"c-legacy"},
		},
		{
			name:  "success: brand without coupons is an empty list",
			brand: "apple",
			mockCall: func(f fields) {
				f.redisRepo.On("GetJSON", mock.Anything, "brand:name:apple", mock.Anything).Run(fillFrom(apple)).Return(nil).Once()
				f.couponRepo.On("ListByBrandID", mock.Anything, "b-1").Return([]model.CouponEntity{}, nil).Once()
				f.couponRepo.On("ListByLegacyBrandName", mock.Anything, "apple").Return([]model.CouponEntity{}, nil).Once()
			},
			wantIDs: []string{},
		},
		{
			name:    "error: missing brand name",
			brand:   "",
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name:  "error: brand not found",
			brand: "nokia",
			mockCall: func(f fields) {
				f.redisRepo.On("GetJSON", mock.Anything, "brand:name:nokia", mock.Anything).Return(redisrepo.ErrCacheMiss).Once()
				f.brandRepo.On("GetByName", mock.Anything, "nokia").Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrBrandNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			got, err := f.app().GetCouponsByBrand(context.Background(), tt.brand)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetCouponsByBrand() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrType(t, err, tt.errCode)
				return
			}
			ids := make([]string, 0, len(got))
			for _, c := range got {
				ids = append(ids, c.CouponID)
			}
			if !reflect.DeepEqual(ids, tt.wantIDs) {
				t.Fatalf("GetCouponsByBrand() ids = %v, want %v", ids, tt.wantIDs)
			}
		})
	}
}
