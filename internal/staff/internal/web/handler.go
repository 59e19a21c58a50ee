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
	"strconv"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/quiz/internal/staff/internal/errs"
	"github.com/ecodeclub/quiz/internal/staff/internal/service"
	"github.com/gin-gonic/gin"
)

// CreatorClaimKey 管理后台靠这个 jwt 字段判断权限
const CreatorClaimKey = "creator"

type SessionProvider interface {
	NewSession(ctx *ginx.Context, uid int64, jwtData map[string]string,
		sessData map[string]any) (session.Session, error)
	Get(ctx *ginx.Context) (session.Session, error)
}

type Handler struct {
	svc service.Service
	sp  SessionProvider
}

func NewHandler(svc service.Service, sp SessionProvider) *Handler {
	return &Handler{
		svc: svc,
		sp:  sp,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.POST("/staff/login", ginx.B[LoginReq](h.Login))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.GET("/staff/profile", ginx.W(h.Profile))
}

func (h *Handler) Login(ctx *ginx.Context, req LoginReq) (ginx.Result, error) {
	staff, err := h.svc.Login(ctx, req.Email, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		return ginx.Result{
			Code: errs.InvalidCredentials.Code,
			Msg:  errs.InvalidCredentials.Msg,
		}, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	_, err = h.sp.NewSession(ctx, staff.Id, map[string]string{
		CreatorClaimKey: strconv.FormatBool(true),
	}, map[string]any{})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newProfile(staff),
	}, nil
}

func (h *Handler) Profile(ctx *ginx.Context) (ginx.Result, error) {
	sess, err := h.sp.Get(ctx)
	if err != nil {
		return ginx.Result{}, ginx.ErrUnauthorized
	}
	staff, err := h.svc.Profile(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newProfile(staff),
	}, nil
}
