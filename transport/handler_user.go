package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/coupon-marketplace/constant"
	"github.com/muhammadheryan/coupon-marketplace/model"
	"github.com/muhammadheryan/coupon-marketplace/utils/errors"
)

// LoginWithPhone handler
// @Summary Login or register with a phone identity token
// @Description Verifies the token, then returns the user for its phone number, creating it on first login
// @Tags Users
// @Produce json
// @Param idToken query string true "Identity token"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/users/phone [get]
func (s *RestHandler) LoginWithPhone(w http.ResponseWriter, r *http.Request) {
	res, err := s.UserApp.LoginWithPhone(r.Context(), r.URL.Query().Get("idToken"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// CompleteProfile handler
// @Summary Complete registration profile
// @Tags Users
// @Accept json
// @Produce json
// @Param userId path string true "User id"
// @Param request body model.ProfileRequest true "Profile fields"
// @Success 200 {object} model.UserMessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/users/register/{userId} [post]
func (s *RestHandler) CompleteProfile(w http.ResponseWriter, r *http.Request) {
	var req model.ProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.UserApp.CompleteProfile(r.Context(), mux.Vars(r)["userId"], &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// UpdateProfile handler
// @Summary Update profile fields
// @Tags Users
// @Accept json
// @Produce json
// @Param userId path string true "User id"
// @Param request body model.ProfileRequest true "Profile fields; empty values are kept"
// @Success 200 {object} model.UserMessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/users/profile/{userId} [put]
func (s *RestHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req model.ProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.UserApp.UpdateProfile(r.Context(), mux.Vars(r)["userId"], &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetUserByEmail handler
// @Summary Find user by email
// @Tags Users
// @Produce json
// @Param email query string true "Email"
// @Success 200 {object} model.UserEntity
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/users/search [get]
func (s *RestHandler) GetUserByEmail(w http.ResponseWriter, r *http.Request) {
	res, err := s.UserApp.GetUserByEmail(r.Context(), r.URL.Query().Get("email"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// DeleteUser handler
// @Summary Delete user
// @Tags Users
// @Produce json
// @Param userId path string true "User id"
// @Success 200 {object} model.UserMessageResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/users/{userId} [delete]
func (s *RestHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	res, err := s.UserApp.DeleteUser(r.Context(), mux.Vars(r)["userId"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ListUsers handler
// @Summary List users
// @Tags Users
// @Produce json
// @Success 200 {array} model.UserListItem
// @Router /api/users [get]
func (s *RestHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	res, err := s.UserApp.ListUsers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}
