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
	"github.com/ecodeclub/quiz/internal/quiz/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// AccountMiddlewareBuilder 根据 session 里面的令牌找到当前的测试账号。
// 任何失败都只记录日志，请求按照没有登录继续处理
type AccountMiddlewareBuilder struct {
	svc    service.AuthService
	sp     SessionProvider
	logger *elog.Component
}

func NewAccountMiddlewareBuilder(svc service.AuthService, sp SessionProvider) *AccountMiddlewareBuilder {
	return &AccountMiddlewareBuilder{
		svc:    svc,
		sp:     sp,
		logger: elog.DefaultLogger,
	}
}

func (b *AccountMiddlewareBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		gctx := &ginx.Context{Context: ctx}
		viewer := b.resolve(gctx)
		ctx.Request = ctx.Request.WithContext(ctxWithViewer(ctx.Request.Context(), viewer))
	}
}

func (b *AccountMiddlewareBuilder) resolve(ctx *ginx.Context) domain.Viewer {
	sess, err := b.sp.Get(ctx)
	if err != nil {
		b.logger.Debug("没有 session", elog.FieldErr(err))
		return domain.AnonymousViewer()
	}
	token := sess.Get(ctx, TokenSessionKey).StringOrDefault("")
	if token == "" {
		return domain.AnonymousViewer()
	}
	acc, err := b.svc.Resolve(ctx, token)
	switch {
	case err == nil:
		return domain.NewViewer(acc)
	case errors.Is(err, service.ErrNotFound):
		b.logger.Warn("令牌不存在", elog.Int64("uid", sess.Claims().Uid))
	case errors.Is(err, service.ErrAmbiguous):
		b.logger.Error("令牌对应多个账号", elog.FieldErr(err), elog.Int64("uid", sess.Claims().Uid))
	default:
		b.logger.Error("查找令牌失败", elog.FieldErr(err))
	}
	return domain.AnonymousViewer()
}
