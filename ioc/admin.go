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

package ioc

import (
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/quiz/internal/pkg/middleware"
	"github.com/ecodeclub/quiz/internal/quiz"
	"github.com/ecodeclub/quiz/internal/staff"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/server/egin"
)

type AdminServer *egin.Component

func InitAdminServer(staffHdl *staff.Handler,
	cat *quiz.AdminCategoryHandler,
	que *quiz.AdminQuestionHandler,
	tc *quiz.AdminTestCaseHandler,
	acc *quiz.AdminAccountHandler,
	test *quiz.AdminTestHandler,
) AdminServer {
	res := egin.Load("admin").Build()
	res.Use(cors.New(corsConfig()))
	res.Use(middleware.NewMetricsBuilder("admin").Build())
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	staffHdl.PublicRoutes(res.Engine)

	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	res.Use(AdminPermission())
	staffHdl.PrivateRoutes(res.Engine)
	cat.PrivateRoutes(res.Engine)
	que.PrivateRoutes(res.Engine)
	tc.PrivateRoutes(res.Engine)
	acc.PrivateRoutes(res.Engine)
	test.PrivateRoutes(res.Engine)
	return res
}

// AdminPermission 只有工作人员登录之后 jwt 里面才有 creator
func AdminPermission() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		xctx := &ginx.Context{Context: ctx}
		sess, err := session.Get(xctx)
		if err != nil {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			elog.Error("非法访问 admin 接口", elog.FieldErr(err))
			return
		}
		if sess.Claims().Get(staff.CreatorClaimKey).StringOrDefault("") != "true" {
			ctx.AbortWithStatus(http.StatusForbidden)
			elog.Error("非法访问 admin 接口，未设置权限",
				elog.Int64("uid", sess.Claims().Uid))
			return
		}
	}
}
