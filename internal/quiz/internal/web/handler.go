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

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/quiz/internal/quiz/internal/domain"
	"github.com/ecodeclub/quiz/internal/quiz/internal/errs"
	"github.com/ecodeclub/quiz/internal/quiz/internal/service"
	"github.com/gin-gonic/gin"
)

// Handler 测试者使用的接口，需要先经过 AccountMiddlewareBuilder
type Handler struct {
	authSvc    service.AuthService
	testingSvc service.TestingService
	sp         SessionProvider
}

func NewHandler(authSvc service.AuthService,
	testingSvc service.TestingService,
	sp SessionProvider) *Handler {
	return &Handler{
		authSvc:    authSvc,
		testingSvc: testingSvc,
		sp:         sp,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/quiz")
	g.POST("/login", ginx.B[LoginReq](h.Login))
	g.POST("/user", WV(h.User))
	g.POST("/test/detail", BV[IdReq](h.TestDetail))
	g.POST("/test/start", BV[IdReq](h.StartTest))
}

func (h *Handler) Login(ctx *ginx.Context, req LoginReq) (ginx.Result, error) {
	acc, token, err := h.authSvc.Login(ctx, req.Email, req.Password)
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return newResult(errs.InvalidCredentials), nil
	case err != nil:
		return systemErrorResult, err
	}
	_, err = h.sp.NewSession(ctx, acc.Id, map[string]string{}, map[string]any{
		TokenSessionKey: token.Value,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: LoginResp{
			Account: newAccount(acc),
			Token:   token.Value,
		},
	}, nil
}

func (h *Handler) User(ctx *ginx.Context, viewer domain.Viewer) (ginx.Result, error) {
	acc, err := h.testingSvc.Profile(ctx, viewer)
	if err != nil {
		return h.testingErrResult(err)
	}
	return ginx.Result{
		Data: newAccount(acc),
	}, nil
}

func (h *Handler) TestDetail(ctx *ginx.Context, req IdReq, viewer domain.Viewer) (ginx.Result, error) {
	tc, status, err := h.testingSvc.TestCase(ctx, viewer, req.Id)
	if err != nil {
		return h.testingErrResult(err)
	}
	res := newTestCase(tc)
	res.Status = status.String()
	return ginx.Result{
		Data: res,
	}, nil
}

func (h *Handler) StartTest(ctx *ginx.Context, req IdReq, viewer domain.Viewer) (ginx.Result, error) {
	tc, status, err := h.testingSvc.Start(ctx, viewer, req.Id)
	if err != nil {
		return h.testingErrResult(err)
	}
	return ginx.Result{
		Data: newTestCaseWithQuestions(tc, status),
	}, nil
}

// testingErrResult 找不到和数据不一致已经在 service 里面记录过日志了，
// 这里只给出通用的提示
func (h *Handler) testingErrResult(err error) (ginx.Result, error) {
	switch {
	case errors.Is(err, service.ErrAuthenticationRequired):
		return authRequiredResult, nil
	case errors.Is(err, service.ErrNotFound):
		return newResult(errs.TestNotFound), nil
	case errors.Is(err, service.ErrAmbiguous):
		return newResult(errs.UnknownError), nil
	case errors.Is(err, service.ErrAlreadyStarted):
		return newResult(errs.AlreadyStarted), nil
	default:
		return systemErrorResult, err
	}
}
