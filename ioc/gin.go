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
	"strings"

	"github.com/ecodeclub/quiz/internal/pkg/middleware"
	"github.com/ecodeclub/quiz/internal/quiz"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
)

func initGinxServer(hdl *quiz.Handler,
	accountMiddleware *quiz.AccountMiddlewareBuilder,
) *egin.Component {
	res := egin.Load("web").Build()
	res.Use(cors.New(corsConfig()))
	res.Use(middleware.NewMetricsBuilder("web").Build())
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	// 所有的接口都需要知道当前的测试者，没有登录的时候是匿名的
	res.Use(accountMiddleware.Build())
	hdl.PublicRoutes(res.Engine)
	return res
}

func corsConfig() cors.Config {
	domains := econf.GetStringSlice("cors.domains")
	return cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"X-Timestamp", "Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			for _, domain := range domains {
				if strings.Contains(origin, domain) {
					return true
				}
			}
			return false
		},
	}
}
