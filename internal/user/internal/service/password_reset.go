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

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecodeclub/eshop/internal/email"
	"github.com/ecodeclub/eshop/internal/user/internal/repository"
	"github.com/ecodeclub/eshop/internal/user/internal/repository/cache"
	"github.com/lithammer/shortuuid/v4"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidResetToken = errors.New("重置令牌错误或已过期")

const resetMailBody = `<p>Dear %s,</p>
<p>We received your password reset request.</p>
<p>Please copy the following token and paste it in the Password Reset Form:</p>
<p><b>%s</b></p>
<p>Best Regards</p>`

//go:generate mockgen -source=./password_reset.go -package=svcmocks -destination=mocks/password_reset.mock.go PasswordResetService
type PasswordResetService interface {
	// SendResetToken 生成一个新令牌并发邮件，老令牌被覆盖式作废
	SendResetToken(ctx context.Context, email string) error
	// ResetPassword 令牌一次有效，用完即删
	ResetPassword(ctx context.Context, token string, password string) error
}

type passwordResetService struct {
	repo     repository.UserRepository
	tokens   cache.ResetTokenCache
	emailSvc email.Service
}

func NewPasswordResetService(repo repository.UserRepository,
	tokens cache.ResetTokenCache, emailSvc email.Service) PasswordResetService {
	return &passwordResetService{
		repo:     repo,
		tokens:   tokens,
		emailSvc: emailSvc,
	}
}

func (svc *passwordResetService) SendResetToken(ctx context.Context, emailAddr string) error {
	u, err := svc.repo.FindByEmail(ctx, emailAddr)
	if err != nil {
		return fmt.Errorf("查找用户失败: %w", err)
	}
	token := shortuuid.New() + "-" + shortuuid.New()
	if err = svc.tokens.Set(ctx, token, emailAddr); err != nil {
		return fmt.Errorf("保存重置令牌失败: %w", err)
	}
	username := u.FirstName + " " + u.LastName
	return svc.emailSvc.SendMail(ctx, email.Mail{
		From:    "eshop",
		To:      emailAddr,
		Subject: "Password Reset",
		Body:    []byte(fmt.Sprintf(resetMailBody, username, token)),
	})
}

func (svc *passwordResetService) ResetPassword(ctx context.Context, token string, password string) error {
	emailAddr, err := svc.tokens.Get(ctx, token)
	if errors.Is(err, cache.ErrKeyNotFound) {
		return ErrInvalidResetToken
	}
	if err != nil {
		return fmt.Errorf("读取重置令牌失败: %w", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	err = svc.repo.UpdatePasswordByEmail(ctx, emailAddr, string(hash))
	if errors.Is(err, repository.ErrUserNotFound) {
		return ErrInvalidResetToken
	}
	if err != nil {
		return err
	}
	return svc.tokens.Delete(ctx, token)
}
