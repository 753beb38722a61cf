package user_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	appuser "github.com/muhammadheryan/coupon-marketplace/application/user"
	"github.com/muhammadheryan/coupon-marketplace/constant"
	usermocks "github.com/muhammadheryan/coupon-marketplace/mocks/repository/user"
	firebasemocks "github.com/muhammadheryan/coupon-marketplace/mocks/thirdparty/firebase"
	"github.com/muhammadheryan/coupon-marketplace/model"
	"github.com/muhammadheryan/coupon-marketplace/thirdparty/firebase"
	cerr "github.com/muhammadheryan/coupon-marketplace/utils/errors"
	"github.com/stretchr/testify/mock"
)

var adminPhones = []string{"+911111111111"}

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

func strPtr(s string) *string { return &s }

func TestUserApp_LoginWithPhone(t *testing.T) {
	type fields struct {
		userRepo *usermocks.UserRepository
		verifier *firebasemocks.TokenVerifier
	}
	tests := []struct {
		name      string
		fields    fields
		idToken   string
		mockCall  func(f fields)
		wantRole  constant.UserRole
		wantIsNew bool
		wantErr   bool
		errCode   constant.ErrorType
	}{
		{
			name: "success: allow-listed phone is provisioned as admin",
			fields: fields{
				userRepo: usermocks.NewUserRepository(t),
				verifier: firebasemocks.NewTokenVerifier(t),
			},
			idToken: "token-admin",
			mockCall: func(f fields) {
				f.verifier.On("VerifyPhone", mock.Anything, "token-admin").Return("+911111111111", nil).Once()
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Phone: "+911111111111"}).Return(nil, nil).Once()
				f.userRepo.
					On("Create", mock.Anything, mock.MatchedBy(func(u *model.UserEntity) bool {
						return u.Phone == "+911111111111" && u.Role == constant.UserRoleAdmin && u.UserID != ""
					})).
					Return(func(_ context.Context, u *model.UserEntity) (*model.UserEntity, error) {
						u.ID = 1
						return u, nil
					}).
					Once()
			},
			wantRole:  constant.UserRoleAdmin,
			wantIsNew: true,
		},
		{
			name: "success: unknown phone is provisioned as user",
			fields: fields{
				userRepo: usermocks.NewUserRepository(t),
				verifier: firebasemocks.NewTokenVerifier(t),
			},
			idToken: "token-user",
			mockCall: func(f fields) {
				f.verifier.On("VerifyPhone", mock.Anything, "token-user").Return("+912222222222", nil).Once()
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Phone: "+912222222222"}).Return(nil, nil).Once()
				f.userRepo.
					On("Create", mock.Anything, mock.MatchedBy(func(u *model.UserEntity) bool {
						return u.Role == constant.UserRoleUser
					})).
					Return(func(_ context.Context, u *model.UserEntity) (*model.UserEntity, error) {
						return u, nil
					}).
					Once()
			},
			wantRole:  constant.UserRoleUser,
			wantIsNew: true,
		},
		{
			name: "success: second login returns existing user",
			fields: fields{
				userRepo: usermocks.NewUserRepository(t),
				verifier: firebasemocks.NewTokenVerifier(t),
			},
			idToken: "token-again",
			mockCall: func(f fields) {
				f.verifier.On("VerifyPhone", mock.Anything, "token-again").Return("+912222222222", nil).Once()
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Phone: "+912222222222"}).
					Return(&model.UserEntity{UserID: "u-1", Phone: "+912222222222", Role: constant.UserRoleUser}, nil).
					Once()
			},
			wantRole:  constant.UserRoleUser,
			wantIsNew: false,
		},
		{
			name: "error: empty token",
			fields: fields{
				userRepo: usermocks.NewUserRepository(t),
				verifier: firebasemocks.NewTokenVerifier(t),
			},
			idToken: "  ",
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: verifier rejects token",
			fields: fields{
				userRepo: usermocks.NewUserRepository(t),
				verifier: firebasemocks.NewTokenVerifier(t),
			},
			idToken: "bad",
			mockCall: func(f fields) {
				f.verifier.On("VerifyPhone", mock.Anything, "bad").
					Return("", fmt.Errorf("%w: expired", firebase.ErrInvalidToken)).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidToken,
		},
		{
			name: "error: token has no phone",
			fields: fields{
				userRepo: usermocks.NewUserRepository(t),
				verifier: firebasemocks.NewTokenVerifier(t),
			},
			idToken: "email-only",
			mockCall: func(f fields) {
				f.verifier.On("VerifyPhone", mock.Anything, "email-only").Return("", firebase.ErrPhoneNotInToken).Once()
			},
			wantErr: true,
			errCode: constant.ErrPhoneNotInToken,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appuser.NewUserApp(adminPhones, tt.fields.userRepo, tt.fields.verifier)

			got, err := app.LoginWithPhone(context.Background(), tt.idToken)
			if (err != nil) != tt.wantErr {
				t.Fatalf("LoginWithPhone() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrType(t, err, tt.errCode)
				return
			}

			if got.Message != "User logged in" {
				t.Fatalf("message = %q", got.Message)
			}
			if got.IsNewUser != tt.wantIsNew {
				t.Fatalf("isNewUser = %v, want %v", got.IsNewUser, tt.wantIsNew)
			}
			if got.User == nil || got.User.Role != tt.wantRole {
				t.Fatalf("user = %+v, want role %s", got.User, tt.wantRole)
			}
			if got.Phone != got.User.Phone {
				t.Fatalf("phone = %q, user phone = %q", got.Phone, got.User.Phone)
			}
		})
	}
}

func TestUserApp_Provision_DuplicateRace(t *testing.T) {
	userRepo := usermocks.NewUserRepository(t)
	verifier := firebasemocks.NewTokenVerifier(t)
	winner := &model.UserEntity{UserID: "u-winner", Phone: "+913333333333", Role: constant.UserRoleUser}

	userRepo.On("Get", mock.Anything, &model.UserFilter{Phone: "+913333333333"}).Return(nil, nil).Once()
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.UserEntity")).
		Return(nil, cerr.SetCustomError(constant.ErrConflict)).
		Once()
	userRepo.On("Get", mock.Anything, &model.UserFilter{Phone: "+913333333333"}).Return(winner, nil).Once()

	app := appuser.NewUserApp(adminPhones, userRepo, verifier)
	got, isNew, err := app.Provision(context.Background(), "+913333333333")
	if err != nil {
		t.Fatalf("Provision() error = %v", err)
	}
	if isNew {
		t.Fatalf("isNew = true, want false after losing the race")
	}
	if got != winner {
		t.Fatalf("Provision() = %+v, want %+v", got, winner)
	}
}

func TestUserApp_Provision_StoreError(t *testing.T) {
	userRepo := usermocks.NewUserRepository(t)
	userRepo.On("Get", mock.Anything, &model.UserFilter{Phone: "+914444444444"}).Return(nil, errors.New("db down")).Once()

	app := appuser.NewUserApp(nil, userRepo, firebasemocks.NewTokenVerifier(t))
	_, _, err := app.Provision(context.Background(), "+914444444444")
	assertErrType(t, err, constant.ErrInternal)
}

func TestUserApp_CompleteProfile(t *testing.T) {
	type fields struct {
		userRepo *usermocks.UserRepository
	}
	tests := []struct {
		name     string
		fields   fields
		userID   string
		req      *model.ProfileRequest
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:   "success: fields set and profile marked completed",
			fields: fields{userRepo: usermocks.NewUserRepository(t)},
			userID: "u-1",
			req:    &model.ProfileRequest{FirstName: "Asha", Email: "asha@example.com", DOB: "1990-04-12"},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{UserID: "u-1"}).
					Return(&model.UserEntity{UserID: "u-1", LastName: strPtr("Rao")}, nil).
					Once()
				f.userRepo.
					On("UpdateProfile", mock.Anything, "u-1", mock.MatchedBy(func(u *model.UserProfileUpdate) bool {
						return u.FirstName != nil && *u.FirstName == "Asha" &&
							u.LastName == nil &&
							u.Email != nil && *u.Email == "asha@example.com" &&
							u.DOB != nil && u.DOB.Equal(time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC)) &&
							u.IsProfileCompleted != nil && *u.IsProfileCompleted
					})).
					Return(nil).
					Once()
			},
		},
		{
			name:   "error: user not found",
			fields: fields{userRepo: usermocks.NewUserRepository(t)},
			userID: "missing",
			req:    &model.ProfileRequest{FirstName: "X"},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{UserID: "missing"}).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrUserNotFound,
		},
		{
			name:    "error: invalid email",
			fields:  fields{userRepo: usermocks.NewUserRepository(t)},
			userID:  "u-1",
			req:     &model.ProfileRequest{Email: "not-an-email"},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name:   "error: email already taken",
			fields: fields{userRepo: usermocks.NewUserRepository(t)},
			userID: "u-1",
			req:    &model.ProfileRequest{Email: "taken@example.com"},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{UserID: "u-1"}).Return(&model.UserEntity{UserID: "u-1"}, nil).Once()
				f.userRepo.On("UpdateProfile", mock.Anything, "u-1", mock.Anything).Return(cerr.SetCustomError(constant.ErrConflict)).Once()
			},
			wantErr: true,
			errCode: constant.ErrConflict,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appuser.NewUserApp(adminPhones, tt.fields.userRepo, nil)

			got, err := app.CompleteProfile(context.Background(), tt.userID, tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CompleteProfile() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrType(t, err, tt.errCode)
				return
			}
			if got.Message != "Profile completed" {
				t.Fatalf("message = %q", got.Message)
			}
			if !got.Data.IsProfileCompleted {
				t.Fatalf("profile not marked completed")
			}
			if got.Data.LastName == nil || *got.Data.LastName != "Rao" {
				t.Fatalf("existing last name overwritten: %v", got.Data.LastName)
			}
		})
	}
}

func TestUserApp_UpdateProfile_KeepsCompletionFlag(t *testing.T) {
	userRepo := usermocks.NewUserRepository(t)
	userRepo.On("Get", mock.Anything, &model.UserFilter{UserID: "u-1"}).Return(&model.UserEntity{UserID: "u-1"}, nil).Once()
	userRepo.
		On("UpdateProfile", mock.Anything, "u-1", mock.MatchedBy(func(u *model.UserProfileUpdate) bool {
			return u.IsProfileCompleted == nil && u.UPI != nil && *u.UPI == "asha@upi"
		})).
		Return(nil).
		Once()

	app := appuser.NewUserApp(adminPhones, userRepo, nil)
	got, err := app.UpdateProfile(context.Background(), "u-1", &model.ProfileRequest{UPI: "asha@upi"})
	if err != nil {
		t.Fatalf("UpdateProfile() error = %v", err)
	}
	if got.Message != "User profile updated successfully" {
		t.Fatalf("message = %q", got.Message)
	}
}

func TestUserApp_GetUserByEmail(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		mockCall func(repo *usermocks.UserRepository)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:  "success",
			email: "a@example.com",
			mockCall: func(repo *usermocks.UserRepository) {
				repo.On("Get", mock.Anything, &model.UserFilter{Email: "a@example.com"}).Return(&model.UserEntity{UserID: "u-1"}, nil).Once()
			},
		},
		{
			name:    "error: empty email",
			email:   "",
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name:  "error: not found",
			email: "b@example.com",
			mockCall: func(repo *usermocks.UserRepository) {
				repo.On("Get", mock.Anything, &model.UserFilter{Email: "b@example.com"}).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrUserNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo := usermocks.NewUserRepository(t)
			if tt.mockCall != nil {
				tt.mockCall(repo)
			}
			app := appuser.NewUserApp(nil, repo, nil)

			_, err := app.GetUserByEmail(context.Background(), tt.email)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetUserByEmail() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrType(t, err, tt.errCode)
			}
		})
	}
}

func TestUserApp_DeleteUser(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := usermocks.NewUserRepository(t)
		user := &model.UserEntity{UserID: "u-1"}
		repo.On("Get", mock.Anything, &model.UserFilter{UserID: "u-1"}).Return(user, nil).Once()
		repo.On("Delete", mock.Anything, "u-1").Return(true, nil).Once()

		got, err := appuser.NewUserApp(nil, repo, nil).DeleteUser(context.Background(), "u-1")
		if err != nil {
			t.Fatalf("DeleteUser() error = %v", err)
		}
		if got.Message != "User deleted successfully" || got.User != user {
			t.Fatalf("DeleteUser() = %+v", got)
		}
	})

	t.Run("error: not found", func(t *testing.T) {
		repo := usermocks.NewUserRepository(t)
		repo.On("Get", mock.Anything, &model.UserFilter{UserID: "u-2"}).Return(nil, nil).Once()

		_, err := appuser.NewUserApp(nil, repo, nil).DeleteUser(context.Background(), "u-2")
		assertErrType(t, err, constant.ErrUserNotFound)
	})
}

func TestUserApp_ListUsers(t *testing.T) {
	repo := usermocks.NewUserRepository(t)
	repo.On("List", mock.Anything).Return([]model.UserEntity{
		{ID: 7, UserID: "u-1", Phone: "+91", Role: constant.UserRoleAdmin, CreatedAt: time.Now()},
	}, nil).Once()

	got, err := appuser.NewUserApp(nil, repo, nil).ListUsers(context.Background())
	if err != nil {
		t.Fatalf("ListUsers() error = %v", err)
	}
	if len(got) != 1 || got[0].UserID != "u-1" || got[0].Role != constant.UserRoleAdmin {
		t.Fatalf("ListUsers() = %+v", got)
	}
}
