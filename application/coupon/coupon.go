package coupon

import (
	"context"
	stderrors "errors"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/coupon-marketplace/application/brand"
	"github.com/muhammadheryan/coupon-marketplace/constant"
	"github.com/muhammadheryan/coupon-marketplace/model"
	couponrepo "github.com/muhammadheryan/coupon-marketplace/repository/coupon"
	txrepo "github.com/muhammadheryan/coupon-marketplace/repository/tx"
	"github.com/muhammadheryan/coupon-marketplace/thirdparty/rabbitmq"
	"github.com/muhammadheryan/coupon-marketplace/thirdparty/storage"
	"github.com/muhammadheryan/coupon-marketplace/utils/errors"
	"github.com/muhammadheryan/coupon-marketplace/utils/logger"
	validatorx "github.com/muhammadheryan/coupon-marketplace/utils/validator"
	"go.uber.org/zap"
)

// expireDateLayouts are tried in order when parsing a client expire date.
var expireDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02",
}

type CouponApp interface {
	CreateCoupon(ctx context.Context, req *model.CreateCouponRequest, image *model.UploadedImage) (*model.CouponResponse, error)
	ListCoupons(ctx context.Context) ([]model.CouponSummary, error)
	GetCouponsByCategory(ctx context.Context, categoryName string) ([]model.CouponResponse, error)
	GetCoupon(ctx context.Context, couponID string) (*model.CouponResponse, error)
	GetCouponsByUser(ctx context.Context, userID string) ([]model.CouponResponse, error)
	UpdateCouponStatus(ctx context.Context, req *model.CouponStatusRequest) (*model.CouponMessageResponse, error)
	EditCoupon(ctx context.Context, couponID string, req *model.EditCouponRequest) (*model.CouponMessageResponse, error)
	ExpireCoupon(ctx context.Context, couponID string) (*model.CouponResponse, error)
}

type couponAppImpl struct {
	txRepo     txrepo.TxRepository
	couponRepo couponrepo.CouponRepository
	brandApp   brand.BrandApp
	store      storage.TempStore
	publisher  rabbitmq.ExpirationPublisher
	now        func() time.Time
}

// NewCouponApp builds the coupon lifecycle application. publisher may be nil,
// in which case expiration relies on the sweep job alone.
func NewCouponApp(txRepo txrepo.TxRepository, couponRepo couponrepo.CouponRepository, brandApp brand.BrandApp, store storage.TempStore, publisher rabbitmq.ExpirationPublisher) CouponApp {
	return &couponAppImpl{
		txRepo:     txRepo,
		couponRepo: couponRepo,
		brandApp:   brandApp,
		store:      store,
		publisher:  publisher,
		now:        time.Now,
	}
}

func (s *couponAppImpl) CreateCoupon(ctx context.Context, req *model.CreateCouponRequest, image *model.UploadedImage) (*model.CouponResponse, error) {
	// the staged upload never outlives the request
	if image != nil {
		defer s.discardImage(ctx, image.Key)
	}

	trimCreateRequest(req)
	if err := validatorx.ValidateStruct(req); err != nil {
		logger.Info("[CreateCoupon] missing fields", zap.Strings("fields", validatorx.FailedFields(err)))
		return nil, errors.SetCustomError(constant.ErrMissingRequiredFields)
	}

	expireDate, err := parseExpireDate(req.ExpireDate)
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	price, err := parsePrice(req.Price)
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	brandEntity, err := s.brandApp.ResolveBrand(ctx, req.BrandName)
	if err != nil {
		return nil, err
	}
	if brandEntity == nil {
		return nil, errors.SetCustomError(constant.ErrBrandNotFound)
	}

	now := s.now().UTC()
	entity := &model.CouponEntity{
		CouponID:     uuid.NewString(),
		UserID:       req.UserID,
		CategoryName: req.CategoryName,
		BrandID:      brandEntity.BrandID,
		CouponCode:   req.CouponCode,
		ExpireDate:   expireDate,
		Price:        price,
		Status:       constant.CouponStatusNotVerified,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if image != nil {
		if !strings.HasPrefix(image.ContentType, "image/") {
			return nil, errors.SetCustomError(constant.ErrInvalidImage)
		}
		data, err := s.store.Read(ctx, image.Key)
		if err != nil {
			logger.Error("[CreateCoupon] err store.Read", zap.String("key", image.Key), zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		contentType := image.ContentType
		entity.TermsImage = data
		entity.TermsImageContentType = &contentType
	}

	created, err := s.couponRepo.Create(ctx, entity)
	if err != nil {
		if errors.IsType(err, constant.ErrConflict) {
			return nil, err
		}
		logger.Error("[CreateCoupon] err couponRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	s.scheduleExpiration(created)

	res := created.ToResponse()
	return &res, nil
}

func (s *couponAppImpl) ListCoupons(ctx context.Context) ([]model.CouponSummary, error) {
	coupons, err := s.couponRepo.List(ctx)
	if err != nil {
		logger.Error("[ListCoupons] err couponRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	res := make([]model.CouponSummary, 0, len(coupons))
	for i := range coupons {
		res = append(res, coupons[i].ToSummary())
	}
	return res, nil
}

func (s *couponAppImpl) GetCouponsByCategory(ctx context.Context, categoryName string) ([]model.CouponResponse, error) {
	if categoryName == "" {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	coupons, err := s.couponRepo.ListByCategory(ctx, categoryName)
	if err != nil {
		logger.Error("[GetCouponsByCategory] err couponRepo.ListByCategory", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if len(coupons) == 0 {
		return nil, errors.SetCustomError(constant.ErrCouponsNotFound)
	}
	return model.ToCouponResponses(coupons), nil
}

func (s *couponAppImpl) GetCoupon(ctx context.Context, couponID string) (*model.CouponResponse, error) {
	if couponID == "" {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	coupon, err := s.couponRepo.GetByID(ctx, couponID)
	if err != nil {
		logger.Error("[GetCoupon] err couponRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if coupon == nil {
		return nil, errors.SetCustomError(constant.ErrCouponNotFound)
	}

	res := coupon.ToResponse()
	return &res, nil
}

func (s *couponAppImpl) GetCouponsByUser(ctx context.Context, userID string) ([]model.CouponResponse, error) {
	if userID == "" {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	coupons, err := s.couponRepo.ListByUser(ctx, userID)
	if err != nil {
		logger.Error("[GetCouponsByUser] err couponRepo.ListByUser", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if len(coupons) == 0 {
		return nil, errors.SetCustomError(constant.ErrCouponsNotFound)
	}
	return model.ToCouponResponses(coupons), nil
}

// UpdateCouponStatus applies an admin review outcome. The status is checked
// before the coupon is looked up.
func (s *couponAppImpl) UpdateCouponStatus(ctx context.Context, req *model.CouponStatusRequest) (*model.CouponMessageResponse, error) {
	status := constant.CouponStatus(strings.TrimSpace(req.Status))
	if !status.IsReviewStatus() {
		return nil, errors.SetCustomError(constant.ErrInvalidCouponStatus)
	}
	couponID := strings.TrimSpace(req.CouponID)
	if couponID == "" {
		return nil, errors.SetCustomError(constant.ErrMissingRequiredFields)
	}

	updated, err := s.applyPatch(ctx, "UpdateCouponStatus", couponID, func(current *model.CouponEntity, patch *model.CouponPatch) error {
		if err := ValidateTransition(current.Status, status, SourceAdmin); err != nil {
			return err
		}
		patch.Status = &status
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &model.CouponMessageResponse{
		Message: "Coupon " + string(status),
		Data:    updated.ToResponse(),
	}, nil
}

// EditCoupon overwrites the fields present in req. A status change passes the
// same admin review gate as UpdateCouponStatus.
func (s *couponAppImpl) EditCoupon(ctx context.Context, couponID string, req *model.EditCouponRequest) (*model.CouponMessageResponse, error) {
	if couponID == "" {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if err := validatorx.ValidateStruct(req); err != nil {
		logger.Info("[EditCoupon] invalid fields", zap.Strings("fields", validatorx.FailedFields(err)))
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	patch := &model.CouponPatch{
		CategoryName: trimmed(req.CategoryName),
		CouponCode:   trimmed(req.CouponCode),
		Price:        req.Price,
	}
	if (patch.CategoryName != nil && *patch.CategoryName == "") || (patch.CouponCode != nil && *patch.CouponCode == "") {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	if req.ExpireDate != nil {
		expireDate, err := parseExpireDate(*req.ExpireDate)
		if err != nil {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		patch.ExpireDate = &expireDate
	}

	if name := trimmed(req.BrandName); name != nil {
		brandEntity, err := s.brandApp.ResolveBrand(ctx, *name)
		if err != nil {
			return nil, err
		}
		if brandEntity == nil {
			return nil, errors.SetCustomError(constant.ErrBrandNotFound)
		}
		patch.BrandID = &brandEntity.BrandID
	}

	var status *constant.CouponStatus
	if req.Status != nil {
		st := constant.CouponStatus(strings.TrimSpace(*req.Status))
		status = &st
	}

	updated, err := s.applyPatch(ctx, "EditCoupon", couponID, func(current *model.CouponEntity, p *model.CouponPatch) error {
		*p = *patch
		if status != nil && *status != current.Status {
			if err := ValidateTransition(current.Status, *status, SourceAdmin); err != nil {
				return err
			}
			p.Status = status
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if patch.ExpireDate != nil {
		s.scheduleExpiration(updated)
	}

	return &model.CouponMessageResponse{
		Message: "Coupon updated successfully",
		Data:    updated.ToResponse(),
	}, nil
}

// ExpireCoupon expires one coupon whose expire date has passed. An already
// expired coupon is returned unchanged.
func (s *couponAppImpl) ExpireCoupon(ctx context.Context, couponID string) (*model.CouponResponse, error) {
	if couponID == "" {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	now := s.now()
	updated, err := s.applyPatch(ctx, "ExpireCoupon", couponID, func(current *model.CouponEntity, patch *model.CouponPatch) error {
		if current.Status == constant.CouponStatusExpired {
			return nil
		}
		if !current.IsDue(now) {
			return errors.SetCustomError(constant.ErrCouponNotDue)
		}
		if err := ValidateTransition(current.Status, constant.CouponStatusExpired, SourceSweep); err != nil {
			return err
		}
		expired := constant.CouponStatusExpired
		patch.Status = &expired
		return nil
	})
	if err != nil {
		return nil, err
	}

	res := updated.ToResponse()
	return &res, nil
}

// applyPatch locks the coupon row, lets decide fill the patch from the
// current state and writes it in the same transaction.
func (s *couponAppImpl) applyPatch(ctx context.Context, op, couponID string, decide func(current *model.CouponEntity, patch *model.CouponPatch) error) (*model.CouponEntity, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("["+op+"] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	current, err := s.couponRepo.GetByIDTx(ctx, tx, couponID)
	if err != nil {
		logger.Error("["+op+"] get coupon", zap.String("coupon_id", couponID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if current == nil {
		return nil, errors.SetCustomError(constant.ErrCouponNotFound)
	}

	patch := &model.CouponPatch{}
	if err := decide(current, patch); err != nil {
		return nil, err
	}
	if patch.Empty() {
		return current, nil
	}

	if err := s.writePatch(ctx, op, tx, couponID, patch); err != nil {
		return nil, err
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("["+op+"] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	applyToEntity(current, patch, s.now().UTC())
	return current, nil
}

func (s *couponAppImpl) writePatch(ctx context.Context, op string, tx *sqlx.Tx, couponID string, patch *model.CouponPatch) error {
	if err := s.couponRepo.UpdateTx(ctx, tx, couponID, patch); err != nil {
		if errors.IsType(err, constant.ErrConflict) {
			return err
		}
		logger.Error("["+op+"] update coupon", zap.String("coupon_id", couponID), zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *couponAppImpl) scheduleExpiration(c *model.CouponEntity) {
	if s.publisher == nil || c.Status == constant.CouponStatusExpired {
		return
	}
	msg := rabbitmq.CouponExpirationMessage{
		CouponID:   c.CouponID,
		ExpireDate: c.ExpireDate,
	}
	if err := s.publisher.PublishCouponExpiration(msg); err != nil {
		logger.Error("[scheduleExpiration] publish coupon expiration", zap.String("coupon_id", c.CouponID), zap.String("error", err.Error()))
	}
}

func (s *couponAppImpl) discardImage(ctx context.Context, key string) {
	if err := s.store.Delete(ctx, key); err != nil && !stderrors.Is(err, storage.ErrNotFound) {
		logger.Warn("[CreateCoupon] err store.Delete", zap.String("key", key), zap.String("error", err.Error()))
	}
}

func applyToEntity(c *model.CouponEntity, p *model.CouponPatch, now time.Time) {
	if p.CategoryName != nil {
		c.CategoryName = *p.CategoryName
	}
	if p.BrandID != nil {
		c.BrandID = *p.BrandID
	}
	if p.CouponCode != nil {
		c.CouponCode = *p.CouponCode
	}
	if p.ExpireDate != nil {
		c.ExpireDate = *p.ExpireDate
	}
	if p.Price != nil {
		c.Price = *p.Price
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
	c.UpdatedAt = now
}

func trimCreateRequest(req *model.CreateCouponRequest) {
	req.UserID = strings.TrimSpace(req.UserID)
	req.CategoryName = strings.TrimSpace(req.CategoryName)
	req.BrandName = strings.TrimSpace(req.BrandName)
	req.CouponCode = strings.TrimSpace(req.CouponCode)
	req.ExpireDate = strings.TrimSpace(req.ExpireDate)
	req.Price = strings.TrimSpace(req.Price)
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

func parseExpireDate(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range expireDateLayouts {
		t, err := time.Parse(layout, strings.TrimSpace(s))
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// parsePrice treats an empty price as zero.
func parsePrice(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	price, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if price < 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, strconv.ErrRange
	}
	return price, nil
}
