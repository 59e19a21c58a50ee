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

type AdminTestCaseHandler struct {
	svc service.TestCaseService
}

func NewAdminTestCaseHandler(svc service.TestCaseService) *AdminTestCaseHandler {
	return &AdminTestCaseHandler{svc: svc}
}

func (h *AdminTestCaseHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/quiz/case")
	g.POST("/save", ginx.B[AdminTestCase](h.Save))
	g.POST("/list", ginx.B[ListReq](h.List))
	g.POST("/detail", ginx.B[IdReq](h.Detail))
	g.POST("/delete", ginx.B[IdReq](h.Delete))
}

func (h *AdminTestCaseHandler) Save(ctx *ginx.Context, req AdminTestCase) (ginx.Result, error) {
	id, err := h.svc.Save(ctx, req.toDomain())
	if err != nil {
		return adminErrResult(err)
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *AdminTestCaseHandler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	tcs, total, err := h.svc.List(ctx, req.toDomain())
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListResp[AdminTestCase]{
			Total: total,
			List: slice.Map(tcs, func(idx int, src domain.TestCase) AdminTestCase {
				return newAdminTestCase(src)
			}),
		},
	}, nil
}

func (h *AdminTestCaseHandler) Detail(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	tc, err := h.svc.Detail(ctx, req.Id)
	if err != nil {
		return adminErrResult(err)
	}
	return ginx.Result{
		Data: newAdminTestCase(tc),
	}, nil
}

// Delete 分配关系和作答记录会一起删掉
func (h *AdminTestCaseHandler) Delete(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	err := h.svc.Delete(ctx, req.Id)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}
