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

//go:build wireinject

package startup

import (
	"github.com/ecodeclub/quiz/internal/quiz"
	"github.com/ecodeclub/quiz/internal/quiz/internal/event"
	"github.com/ecodeclub/quiz/internal/quiz/internal/repository"
	"github.com/ecodeclub/quiz/internal/quiz/internal/service"
	"github.com/ecodeclub/quiz/internal/quiz/internal/web"
	testioc "github.com/ecodeclub/quiz/internal/test/ioc"
	"github.com/google/wire"
)

func InitModule(sp web.SessionProvider) (*quiz.Module, error) {
	wire.Build(testioc.BaseSet,
		quiz.InitAccountDAO,
		quiz.InitCategoryDAO,
		quiz.InitQuestionDAO,
		quiz.InitTestCaseDAO,
		quiz.InitTestDAO,
		quiz.InitTokenDAO,
		quiz.InitTestCaseCache,
		repository.NewAccountRepository,
		repository.NewCategoryRepository,
		repository.NewQuestionRepository,
		repository.NewCachedTestCaseRepository,
		repository.NewTestRepository,
		repository.NewTokenRepository,
		event.NewMQProducer,
		service.NewAuthService,
		service.NewTestingService,
		service.NewAccountService,
		service.NewCategoryService,
		service.NewQuestionService,
		service.NewTestCaseService,
		service.NewTestService,
		web.NewHandler,
		web.NewAccountMiddlewareBuilder,
		web.NewAdminCategoryHandler,
		web.NewAdminQuestionHandler,
		web.NewAdminTestCaseHandler,
		web.NewAdminAccountHandler,
		web.NewAdminTestHandler,
		wire.Struct(new(quiz.Module), "AuthSvc", "TestingSvc", "Hdl", "AccountMiddleware",
			"AdminCategoryHdl", "AdminQuestionHdl", "AdminTestCaseHdl", "AdminAccountHdl", "AdminTestHdl"),
	)
	return new(quiz.Module), nil
}
