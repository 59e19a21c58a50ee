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
	"context"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/quiz/internal/quiz/internal/domain"
	"github.com/gin-gonic/gin"
)

type viewerCtxKey struct{}

func ctxWithViewer(ctx context.Context, viewer domain.Viewer) context.Context {
	return context.WithValue(ctx, viewerCtxKey{}, viewer)
}

// viewerFromCtx 没有经过中间件的请求，当成没有登录
func viewerFromCtx(ctx context.Context) domain.Viewer {
	viewer, ok := ctx.Value(viewerCtxKey{}).(domain.Viewer)
	if !ok {
		return domain.AnonymousViewer()
	}
	return viewer
}

// BV 解析请求，并且把当前的 Viewer 显式传给处理函数
func BV[Req any](fn func(ctx *ginx.Context, req Req, viewer domain.Viewer) (ginx.Result, error)) gin.HandlerFunc {
	return ginx.B[Req](func(ctx *ginx.Context, req Req) (ginx.Result, error) {
		return fn(ctx, req, viewerFromCtx(ctx.Request.Context()))
	})
}

// WV 和 BV 一样，用于没有请求参数的接口
func WV(fn func(ctx *ginx.Context, viewer domain.Viewer) (ginx.Result, error)) gin.HandlerFunc {
	return ginx.W(func(ctx *ginx.Context) (ginx.Result, error) {
		return fn(ctx, viewerFromCtx(ctx.Request.Context()))
	})
}
