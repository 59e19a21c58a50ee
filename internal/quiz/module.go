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

package quiz

import (
	"github.com/ecodeclub/quiz/internal/quiz/internal/domain"
	"github.com/ecodeclub/quiz/internal/quiz/internal/event"
	"github.com/ecodeclub/quiz/internal/quiz/internal/job"
	"github.com/ecodeclub/quiz/internal/quiz/internal/service"
	"github.com/ecodeclub/quiz/internal/quiz/internal/web"
)

type Module struct {
	AuthSvc           AuthService
	TestingSvc        TestingService
	Hdl               *Handler
	AccountMiddleware *AccountMiddlewareBuilder
	AdminCategoryHdl  *AdminCategoryHandler
	AdminQuestionHdl  *AdminQuestionHandler
	AdminTestCaseHdl  *AdminTestCaseHandler
	AdminAccountHdl   *AdminAccountHandler
	AdminTestHdl      *AdminTestHandler
	TokenRepairJob    *TokenRepairJob
}

type Handler = web.Handler
type AccountMiddlewareBuilder = web.AccountMiddlewareBuilder
type AdminCategoryHandler = web.AdminCategoryHandler
type AdminQuestionHandler = web.AdminQuestionHandler
type AdminTestCaseHandler = web.AdminTestCaseHandler
type AdminAccountHandler = web.AdminAccountHandler
type AdminTestHandler = web.AdminTestHandler
type TokenRepairJob = job.TokenRepairJob
type AuthService = service.AuthService
type TestingService = service.TestingService
type Viewer = domain.Viewer
type Status = domain.Status

const TokenSessionKey = web.TokenSessionKey

// Topics 模块用到的消息队列 topic，启动的时候需要确保它们存在
var Topics = []string{event.TestEventTopic, event.AssignmentEventTopic}
