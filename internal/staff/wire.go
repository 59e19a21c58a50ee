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

package staff

import (
	"context"
	"sync"
	"time"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/quiz/internal/staff/internal/domain"
	"github.com/ecodeclub/quiz/internal/staff/internal/repository"
	"github.com/ecodeclub/quiz/internal/staff/internal/repository/dao"
	"github.com/ecodeclub/quiz/internal/staff/internal/service"
	"github.com/ecodeclub/quiz/internal/staff/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
	"gorm.io/gorm"
)

func InitModule(db *egorm.Component, sp session.Provider) (*Module, error) {
	wire.Build(InitStaffDAO,
		repository.NewStaffRepository,
		InitService,
		initSessionProvider,
		web.NewHandler,
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

func InitStaffDAO(db *egorm.Component) dao.StaffDAO {
	InitTableOnce(db)
	return dao.NewGORMStaffDAO(db)
}

// InitService 启动的时候用 staff.accounts 初始化工作人员
func InitService(repo repository.StaffRepository) (service.Service, error) {
	type Config struct {
		Email    string `yaml:"email"`
		Name     string `yaml:"name"`
		Password string `yaml:"password"`
	}
	svc := service.NewService(repo)
	// 没有配置就不初始化
	if econf.Get("staff.accounts") == nil {
		return svc, nil
	}
	var cfgs []Config
	err := econf.UnmarshalKey("staff.accounts", &cfgs)
	if err != nil {
		return nil, err
	}
	staffs := make([]domain.Staff, 0, len(cfgs))
	for _, cfg := range cfgs {
		staffs = append(staffs, domain.Staff{
			Email:    cfg.Email,
			Name:     cfg.Name,
			Password: cfg.Password,
		})
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	return svc, svc.Seed(ctx, staffs)
}

func initSessionProvider(sp session.Provider) web.SessionProvider {
	return sp
}
