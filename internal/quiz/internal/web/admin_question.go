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

type AdminQuestionHandler struct {
	svc service.QuestionService
}

func NewAdminQuestionHandler(svc service.QuestionService) *AdminQuestionHandler {
	return &AdminQuestionHandler{svc: svc}
}

func (h *AdminQuestionHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/quiz/question")
	g.POST("/save", ginx.B[AdminQuestion](h.Save))
	g.POST("/list", ginx.B[ListReq](h.List))
	g.POST("/detail", ginx.B[IdReq](h.Detail))
	g.POST("/delete", ginx.B[IdReq](h.Delete))
}

func (h *AdminQuestionHandler) Save(ctx *ginx.Context, req AdminQuestion) (ginx.Result, error) {
	id, err := h.svc.Save(ctx, req.toDomain())
	if err != nil {
		return adminErrResult(err)
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *AdminQuestionHandler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	qs, total, err := h.svc.List(ctx, req.toDomain())
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListResp[AdminQuestion]{
			Total: total,
			List: slice.Map(qs, func(idx int, src domain.Question) AdminQuestion {
				return newAdminQuestion(src)
			}),
		},
	}, nil
}

func (h *AdminQuestionHandler) Detail(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	q, err := h.svc.Detail(ctx, req.Id)
	if err != nil {
		return adminErrResult(err)
	}
	return ginx.Result{
		Data: newAdminQuestion(q),
	}, nil
}

func (h *AdminQuestionHandler) Delete(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	err := h.svc.Delete(ctx, req.Id)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}
