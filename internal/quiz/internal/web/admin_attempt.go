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
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/quiz/internal/quiz/internal/domain"
	"github.com/ecodeclub/quiz/internal/quiz/internal/service"
	"github.com/gin-gonic/gin"
)

// AdminTestHandler 作答记录只能查看和删除，没有创建的入口
type AdminTestHandler struct {
	svc service.TestService
}

func NewAdminTestHandler(svc service.TestService) *AdminTestHandler {
	return &AdminTestHandler{svc: svc}
}

func (h *AdminTestHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/quiz/attempt")
	g.POST("/save", ginx.B[IdReq](h.Save))
	g.POST("/list", ginx.B[ListReq](h.List))
	g.POST("/detail", ginx.B[IdReq](h.Detail))
	g.POST("/delete", ginx.B[IdReq](h.Delete))
}

// Save 不接受任何修改，重新读取之后保存
func (h *AdminTestHandler) Save(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	t, err := h.svc.Save(ctx, req.Id)
	if err != nil {
		return adminErrResult(err)
	}
	return ginx.Result{
		Data: newAdminTest(t),
	}, nil
}

func (h *AdminTestHandler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	ts, total, err := h.svc.List(ctx, req.toDomain())
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListResp[AdminTest]{
			Total: total,
			List: slice.Map(ts, func(idx int, src domain.Test) AdminTest {
				return newAdminTest(src)
			}),
		},
	}, nil
}

func (h *AdminTestHandler) Detail(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	t, err := h.svc.Detail(ctx, req.Id)
	if err != nil {
		return adminErrResult(err)
	}
	return ginx.Result{
		Data: newAdminTest(t),
	}, nil
}

func (h *AdminTestHandler) Delete(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	err := h.svc.Delete(ctx, req.Id)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}
