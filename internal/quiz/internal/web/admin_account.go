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

// AdminAccountHandler 管理测试账号，以及给账号分配 TestCase
type AdminAccountHandler struct {
	svc service.AccountService
}

func NewAdminAccountHandler(svc service.AccountService) *AdminAccountHandler {
	return &AdminAccountHandler{svc: svc}
}

func (h *AdminAccountHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/quiz/account")
	g.POST("/save", ginx.B[AdminAccount](h.Save))
	g.POST("/list", ginx.B[ListReq](h.List))
	g.POST("/detail", ginx.B[IdReq](h.Detail))
	g.POST("/delete", ginx.B[IdReq](h.Delete))
	g.POST("/assign", ginx.B[AssignReq](h.Assign))
}

func (h *AdminAccountHandler) Save(ctx *ginx.Context, req AdminAccount) (ginx.Result, error) {
	id, err := h.svc.Save(ctx, req.toDomain())
	if err != nil {
		return adminErrResult(err)
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *AdminAccountHandler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	accs, total, err := h.svc.List(ctx, req.toDomain())
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListResp[AdminAccount]{
			Total: total,
			List: slice.Map(accs, func(idx int, src domain.Account) AdminAccount {
				return newAdminAccount(src)
			}),
		},
	}, nil
}

func (h *AdminAccountHandler) Detail(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	acc, err := h.svc.Detail(ctx, req.Id)
	if err != nil {
		return adminErrResult(err)
	}
	return ginx.Result{
		Data: newAdminAccount(acc),
	}, nil
}

func (h *AdminAccountHandler) Delete(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	err := h.svc.Delete(ctx, req.Id)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}

// Assign 只修改分配关系，移除的 TestCase 的作答记录会被删掉
func (h *AdminAccountHandler) Assign(ctx *ginx.Context, req AssignReq) (ginx.Result, error) {
	plan, err := h.svc.SyncAssignments(ctx, req.Id, req.TestCaseIds)
	if err != nil {
		return adminErrResult(err)
	}
	return ginx.Result{
		Data: AssignResp{
			Created: plan.Create,
			Deleted: plan.Delete,
			Linked:  plan.Link,
			Kept:    plan.Keep,
		},
	}, nil
}
