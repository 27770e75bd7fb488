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

	"github.com/ecodeclub/eshop/internal/user/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	svc service.UserService
}

func NewAdminHandler(svc service.UserService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	users := server.Group("/users")
	users.POST("/delete", ginx.B[DeleteUserReq](h.Delete))
}

func (h *AdminHandler) Delete(ctx *ginx.Context, req DeleteUserReq) (ginx.Result, error) {
	err := h.svc.Delete(ctx.Request.Context(), req.Uid)
	if errors.Is(err, service.ErrUserNotFound) {
		return userNotFoundResult, fmt.Errorf("删除用户失败: %w", err)
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}
