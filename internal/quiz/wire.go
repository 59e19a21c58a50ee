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

package quiz

import (
	"sync"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/quiz/internal/quiz/internal/event"
	"github.com/ecodeclub/quiz/internal/quiz/internal/job"
	"github.com/ecodeclub/quiz/internal/quiz/internal/repository"
	"github.com/ecodeclub/quiz/internal/quiz/internal/repository/cache"
	"github.com/ecodeclub/quiz/internal/quiz/internal/repository/dao"
	"github.com/ecodeclub/quiz/internal/quiz/internal/service"
	"github.com/ecodeclub/quiz/internal/quiz/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
	"gorm.io/gorm"
)

var daoSet = wire.NewSet(
	InitAccountDAO,
	InitCategoryDAO,
	InitQuestionDAO,
	InitTestCaseDAO,
	InitTestDAO,
	InitTokenDAO,
)

var repositorySet = wire.NewSet(
	InitTestCaseCache,
	repository.NewAccountRepository,
	repository.NewCategoryRepository,
	repository.NewQuestionRepository,
	repository.NewCachedTestCaseRepository,
	repository.NewTestRepository,
	repository.NewTokenRepository,
)

var serviceSet = wire.NewSet(
	event.NewMQProducer,
	service.NewAuthService,
	service.NewTestingService,
	service.NewAccountService,
	service.NewCategoryService,
	service.NewQuestionService,
	service.NewTestCaseService,
	service.NewTestService,
)

func InitModule(db *egorm.Component,
	ec ecache.Cache,
	q mq.MQ,
	sp session.Provider) (*Module, error) {
	wire.Build(daoSet,
		repositorySet,
		serviceSet,
		initSessionProvider,
		web.NewHandler,
		web.NewAccountMiddlewareBuilder,
		web.NewAdminCategoryHandler,
		web.NewAdminQuestionHandler,
		web.NewAdminTestCaseHandler,
		web.NewAdminAccountHandler,
		web.NewAdminTestHandler,
		initTokenRepairJob,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var daoOnce = sync.Once{}

func InitTableOnce(db *gorm.DB) {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
}

func InitAccountDAO(db *egorm.Component) dao.AccountDAO {
	InitTableOnce(db)
	return dao.NewGORMAccountDAO(db)
}

func InitCategoryDAO(db *egorm.Component) dao.CategoryDAO {
	InitTableOnce(db)
	return dao.NewGORMCategoryDAO(db)
}

func InitQuestionDAO(db *egorm.Component) dao.QuestionDAO {
	InitTableOnce(db)
	return dao.NewGORMQuestionDAO(db)
}

func InitTestCaseDAO(db *egorm.Component) dao.TestCaseDAO {
	InitTableOnce(db)
	return dao.NewGORMTestCaseDAO(db)
}

func InitTestDAO(db *egorm.Component) dao.TestDAO {
	InitTableOnce(db)
	return dao.NewGORMTestDAO(db)
}

func InitTokenDAO(db *egorm.Component) dao.TokenDAO {
	InitTableOnce(db)
	return dao.NewGORMTokenDAO(db)
}

// InitTestCaseCache 没有配置过期时间的时候缓存半小时
func InitTestCaseCache(ec ecache.Cache) cache.TestCaseCache {
	expiration := econf.GetDuration("quiz.cache.expiration")
	if expiration <= 0 {
		expiration = 30 * time.Minute
	}
	return cache.NewTestCaseECache(ec, expiration)
}

func initSessionProvider(sp session.Provider) web.SessionProvider {
	return sp
}

func initTokenRepairJob(svc service.AuthService) *job.TokenRepairJob {
	limit := econf.GetInt("quiz.job.tokenRepair.limit")
	if limit <= 0 {
		limit = 100
	}
	return job.NewTokenRepairJob(svc, limit)
}
