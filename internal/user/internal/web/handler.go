// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package web

import (
	"errors"
	"fmt"
	"net/mail"

	"github.com/ecodeclub/eshop/internal/user/internal/domain"
	"github.com/ecodeclub/eshop/internal/user/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

const (
	minPasswordLen = 8
	maxPasswordLen = 100
)

type Handler struct {
	userSvc  service.UserService
	resetSvc service.PasswordResetService
}

func NewHandler(userSvc service.UserService, resetSvc service.PasswordResetService) *Handler {
	return &Handler{
		userSvc:  userSvc,
		resetSvc: resetSvc,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	users := server.Group("/users")
	users.POST("/signup", ginx.B[SignupReq](h.Signup))
	users.POST("/login", ginx.B[LoginReq](h.Login))
	users.POST("/forgot-password", ginx.B[ForgotPasswordReq](h.ForgotPassword))
	users.POST("/reset-password", ginx.B[ResetPasswordReq](h.ResetPassword))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	users := server.Group("/users")
	users.GET("/profile", ginx.S(h.Profile))
	users.POST("/profile", ginx.BS[EditProfileReq](h.EditProfile))
	users.POST("/password", ginx.BS[UpdatePasswordReq](h.UpdatePassword))
	users.POST("/delete", ginx.S(h.DeleteAccount))
}

func (h *Handler) Signup(ctx *ginx.Context, req SignupReq) (ginx.Result, error) {
	if req.Password != req.ConfirmPassword {
		return invalidInputResult, nil
	}
	if len(req.Password) < minPasswordLen || len(req.Password) > maxPasswordLen {
		return invalidInputResult, nil
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return invalidInputResult, nil
	}
	u, err := h.userSvc.Signup(ctx.Request.Context(), domain.User{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Address:   req.Address,
	})
	if errors.Is(err, service.ErrUserDuplicate) {
		return duplicateEmailResult, fmt.Errorf("注册失败: %w", err)
	}
	if err != nil {
		return systemErrorResult, err
	}
	return h.buildSession(ctx, u)
}

func (h *Handler) Login(ctx *ginx.Context, req LoginReq) (ginx.Result, error) {
	u, err := h.userSvc.Login(ctx.Request.Context(), req.Email, req.Password)
	if errors.Is(err, service.ErrInvalidUserOrPassword) {
		return invalidEmailOrPasswordResult, fmt.Errorf("登录失败: %w", err)
	}
	if err != nil {
		return systemErrorResult, err
	}
	return h.buildSession(ctx, u)
}

func (h *Handler) buildSession(ctx *ginx.Context, u domain.User) (ginx.Result, error) {
	_, err := session.NewSessionBuilder(ctx, u.ID).
		// 角色塞进 jwt，admin server 的权限中间件靠它
		SetJwtData(map[string]string{
			"role": u.Role.String(),
		}).Build()
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: toProfileVO(u)}, nil
}

func (h *Handler) ForgotPassword(ctx *ginx.Context, req ForgotPasswordReq) (ginx.Result, error) {
	err := h.resetSvc.SendResetToken(ctx.Request.Context(), req.Email)
	if errors.Is(err, service.ErrUserNotFound) {
		return userNotFoundResult, fmt.Errorf("发送重置邮件失败: %w", err)
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) ResetPassword(ctx *ginx.Context, req ResetPasswordReq) (ginx.Result, error) {
	if len(req.Password) < minPasswordLen || len(req.Password) > maxPasswordLen {
		return invalidInputResult, nil
	}
	err := h.resetSvc.ResetPassword(ctx.Request.Context(), req.Token, req.Password)
	if errors.Is(err, service.ErrInvalidResetToken) {
		return invalidResetTokenResult, fmt.Errorf("重置密码失败: %w", err)
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Profile(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	u, err := h.userSvc.Profile(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: toProfileVO(u)}, nil
}

func (h *Handler) EditProfile(ctx *ginx.Context, req EditProfileReq, sess session.Session) (ginx.Result, error) {
	uid := sess.Claims().Uid
	err := h.userSvc.UpdateProfile(ctx.Request.Context(), domain.User{
		ID:        uid,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Address:   req.Address,
	})
	if err != nil {
		return systemErrorResult, err
	}
	u, err := h.userSvc.Profile(ctx.Request.Context(), uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: toProfileVO(u)}, nil
}

func (h *Handler) UpdatePassword(ctx *ginx.Context, req UpdatePasswordReq, sess session.Session) (ginx.Result, error) {
	if len(req.Password) < minPasswordLen || len(req.Password) > maxPasswordLen {
		return invalidInputResult, nil
	}
	err := h.userSvc.UpdatePassword(ctx.Request.Context(), sess.Claims().Uid, req.Password)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

// DeleteAccount 自己删自己的账号，管理员删别人走 admin server
func (h *Handler) DeleteAccount(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	err := h.userSvc.Delete(ctx.Request.Context(), sess.Claims().Uid)
	if errors.Is(err, service.ErrUserNotFound) {
		return userNotFoundResult, fmt.Errorf("删除账号失败: %w", err)
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func toProfileVO(u domain.User) Profile {
	return Profile{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
		Address:   u.Address,
		Role:      u.Role.String(),
		Ctime:     u.Ctime,
	}
}
