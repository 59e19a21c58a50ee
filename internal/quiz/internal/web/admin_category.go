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

type AdminCategoryHandler struct {
	svc service.CategoryService
}

func NewAdminCategoryHandler(svc service.CategoryService) *AdminCategoryHandler {
	return &AdminCategoryHandler{svc: svc}
}

func (h *AdminCategoryHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/quiz/category")
	g.POST("/save", ginx.B[Category](h.Save))
	g.POST("/list", ginx.B[ListReq](h.List))
	g.POST("/detail", ginx.B[IdReq](h.Detail))
	g.POST("/delete", ginx.B[IdReq](h.Delete))
}

func (h *AdminCategoryHandler) Save(ctx *ginx.Context, req Category) (ginx.Result, error) {
	id, err := h.svc.Save(ctx, req.toDomain())
	if err != nil {
		return adminErrResult(err)
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *AdminCategoryHandler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	cs, total, err := h.svc.List(ctx, req.toDomain())
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListResp[Category]{
			Total: total,
			List: slice.Map(cs, func(idx int, src domain.Category) Category {
				return newCategory(src)
			}),
		},
	}, nil
}

func (h *AdminCategoryHandler) Detail(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	c, err := h.svc.Detail(ctx, req.Id)
	if err != nil {
		return adminErrResult(err)
	}
	return ginx.Result{
		Data: newCategory(c),
	}, nil
}

// Delete 分类下的题目和答案会一起删掉
func (h *AdminCategoryHandler) Delete(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	err := h.svc.Delete(ctx, req.Id)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}
