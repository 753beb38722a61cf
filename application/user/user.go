package user

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/muhammadheryan/coupon-marketplace/constant"
	"github.com/muhammadheryan/coupon-marketplace/model"
	userrepo "github.com/muhammadheryan/coupon-marketplace/repository/user"
	"github.com/muhammadheryan/coupon-marketplace/thirdparty/firebase"
	"github.com/muhammadheryan/coupon-marketplace/utils/errors"
	"github.com/muhammadheryan/coupon-marketplace/utils/logger"
	validatorx "github.com/muhammadheryan/coupon-marketplace/utils/validator"
	"go.uber.org/zap"
)

const dobLayout = "2006-01-02"

type UserApp interface {
	LoginWithPhone(ctx context.Context, idToken string) (*model.LoginResponse, error)
	Provision(ctx context.Context, phone string) (*model.UserEntity, bool, error)
	CompleteProfile(ctx context.Context, userID string, req *model.ProfileRequest) (*model.UserMessageResponse, error)
	UpdateProfile(ctx context.Context, userID string, req *model.ProfileRequest) (*model.UserMessageResponse, error)
	GetUserByEmail(ctx context.Context, email string) (*model.UserEntity, error)
	DeleteUser(ctx context.Context, userID string) (*model.UserMessageResponse, error)
	ListUsers(ctx context.Context) ([]model.UserListItem, error)
}

type UserAppImpl struct {
	adminPhones map[string]struct{}
	userRepo    userrepo.UserRepository
	verifier    firebase.TokenVerifier
}

// NewUserApp takes the admin allow-list once; phones on it are provisioned as admin.
func NewUserApp(adminPhones []string, userRepo userrepo.UserRepository, verifier firebase.TokenVerifier) UserApp {
	set := make(map[string]struct{}, len(adminPhones))
	for _, p := range adminPhones {
		set[p] = struct{}{}
	}
	return &UserAppImpl{
		adminPhones: set,
		userRepo:    userRepo,
		verifier:    verifier,
	}
}

func (s *UserAppImpl) LoginWithPhone(ctx context.Context, idToken string) (*model.LoginResponse, error) {
	if strings.TrimSpace(idToken) == "" {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	phone, err := s.verifier.VerifyPhone(ctx, idToken)
	if err != nil {
		if stderrors.Is(err, firebase.ErrPhoneNotInToken) {
			return nil, errors.SetCustomError(constant.ErrPhoneNotInToken)
		}
		logger.Info("[LoginWithPhone] token rejected", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInvalidToken)
	}

	user, isNew, err := s.Provision(ctx, phone)
	if err != nil {
		return nil, err
	}

	return &model.LoginResponse{
		Message:   "User logged in",
		Phone:     phone,
		IsNewUser: isNew,
		User:      user,
	}, nil
}

// Provision returns the user owning phone, creating it on first sight.
// The boolean reports whether the user was created by this call.
func (s *UserAppImpl) Provision(ctx context.Context, phone string) (*model.UserEntity, bool, error) {
	existing, err := s.userRepo.Get(ctx, &model.UserFilter{Phone: phone})
	if err != nil {
		logger.Error("[Provision] err userRepo.Get phone", zap.String("error", err.Error()))
		return nil, false, errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil {
		return existing, false, nil
	}

	created, err := s.userRepo.Create(ctx, &model.UserEntity{
		UserID:    uuid.NewString(),
		Phone:     phone,
		Role:      s.roleFor(phone),
		UserLevel: 1,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		if !errors.IsType(err, constant.ErrConflict) {
			logger.Error("[Provision] err userRepo.Create", zap.String("error", err.Error()))
			return nil, false, errors.SetCustomError(constant.ErrInternal)
		}

		// lost a first-login race on the same phone
		winner, err := s.userRepo.Get(ctx, &model.UserFilter{Phone: phone})
		if err != nil {
			logger.Error("[Provision] err userRepo.Get after conflict", zap.String("error", err.Error()))
			return nil, false, errors.SetCustomError(constant.ErrInternal)
		}
		if winner == nil {
			return nil, false, errors.SetCustomError(constant.ErrInternal)
		}
		return winner, false, nil
	}

	logger.Info("[Provision] user created", zap.String("user_id", created.UserID), zap.String("role", string(created.Role)))
	return created, true, nil
}

func (s *UserAppImpl) roleFor(phone string) constant.UserRole {
	if _, ok := s.adminPhones[phone]; ok {
		return constant.UserRoleAdmin
	}
	return constant.UserRoleUser
}

func (s *UserAppImpl) CompleteProfile(ctx context.Context, userID string, req *model.ProfileRequest) (*model.UserMessageResponse, error) {
	completed := true
	user, err := s.applyProfile(ctx, "CompleteProfile", userID, req, &completed)
	if err != nil {
		return nil, err
	}
	return &model.UserMessageResponse{Message: "Profile completed", Data: user}, nil
}

func (s *UserAppImpl) UpdateProfile(ctx context.Context, userID string, req *model.ProfileRequest) (*model.UserMessageResponse, error) {
	user, err := s.applyProfile(ctx, "UpdateProfile", userID, req, nil)
	if err != nil {
		return nil, err
	}
	return &model.UserMessageResponse{Message: "User profile updated successfully", Data: user}, nil
}

// applyProfile overwrites the non-empty fields of req and returns the stored user.
func (s *UserAppImpl) applyProfile(ctx context.Context, op, userID string, req *model.ProfileRequest, completed *bool) (*model.UserEntity, error) {
	if userID == "" {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if err := validatorx.ValidateStruct(req); err != nil {
		logger.Info("["+op+"] invalid fields", zap.Strings("fields", validatorx.FailedFields(err)))
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	user, err := s.userRepo.Get(ctx, &model.UserFilter{UserID: userID})
	if err != nil {
		logger.Error("["+op+"] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrUserNotFound)
	}

	upd := &model.UserProfileUpdate{
		FirstName:          nonEmpty(req.FirstName),
		LastName:           nonEmpty(req.LastName),
		Email:              nonEmpty(req.Email),
		UPI:                nonEmpty(req.UPI),
		IsProfileCompleted: completed,
	}
	if dob := strings.TrimSpace(req.DOB); dob != "" {
		t, err := time.Parse(dobLayout, dob)
		if err != nil {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		upd.DOB = &t
	}

	if err := s.userRepo.UpdateProfile(ctx, userID, upd); err != nil {
		if errors.IsType(err, constant.ErrConflict) {
			return nil, err
		}
		logger.Error("["+op+"] err userRepo.UpdateProfile", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	applyProfileUpdate(user, upd)
	return user, nil
}

func (s *UserAppImpl) GetUserByEmail(ctx context.Context, email string) (*model.UserEntity, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	user, err := s.userRepo.Get(ctx, &model.UserFilter{Email: email})
	if err != nil {
		logger.Error("[GetUserByEmail] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrUserNotFound)
	}
	return user, nil
}

// DeleteUser removes the user record only; coupons it uploaded are kept.
func (s *UserAppImpl) DeleteUser(ctx context.Context, userID string) (*model.UserMessageResponse, error) {
	if userID == "" {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	user, err := s.userRepo.Get(ctx, &model.UserFilter{UserID: userID})
	if err != nil {
		logger.Error("[DeleteUser] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrUserNotFound)
	}

	deleted, err := s.userRepo.Delete(ctx, userID)
	if err != nil {
		logger.Error("[DeleteUser] err userRepo.Delete", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !deleted {
		return nil, errors.SetCustomError(constant.ErrUserNotFound)
	}

	return &model.UserMessageResponse{Message: "User deleted successfully", User: user}, nil
}

func (s *UserAppImpl) ListUsers(ctx context.Context) ([]model.UserListItem, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		logger.Error("[ListUsers] err userRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	res := make([]model.UserListItem, 0, len(users))
	for i := range users {
		res = append(res, users[i].ToListItem())
	}
	return res, nil
}

func applyProfileUpdate(u *model.UserEntity, upd *model.UserProfileUpdate) {
	if upd.FirstName != nil {
		u.FirstName = upd.FirstName
	}
	if upd.LastName != nil {
		u.LastName = upd.LastName
	}
	if upd.Email != nil {
		u.Email = upd.Email
	}
	if upd.DOB != nil {
		u.DOB = upd.DOB
	}
	if upd.UPI != nil {
		u.UPI = upd.UPI
	}
	if upd.IsProfileCompleted != nil {
		u.IsProfileCompleted = *upd.IsProfileCompleted
	}
}

func nonEmpty(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
