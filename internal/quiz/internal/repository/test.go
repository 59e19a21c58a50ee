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

package repository

import (
	"context"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/quiz/internal/quiz/internal/domain"
	"github.com/ecodeclub/quiz/internal/quiz/internal/repository/dao"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=./test.go -package=repomocks -destination=mocks/test.mock.go TestRepository
type TestRepository interface {
	// Find 某个账号针对某个 TestCase 的作答记录，TestCase 里面只有 Id
	Find(ctx context.Context, accountId, tcId int64) ([]domain.Test, error)
	FindByAccountId(ctx context.Context, accountId int64) ([]domain.Test, error)
	// Start 返回 false 说明已经开始过了
	Start(ctx context.Context, id int64, dateStart time.Time) (bool, error)

	// GetByID 带上账号和 TestCase 的基本信息
	GetByID(ctx context.Context, id int64) (domain.Test, error)
	List(ctx context.Context, filter domain.ListFilter) ([]domain.Test, error)
	Count(ctx context.Context, filter domain.ListFilter) (int64, error)
	Touch(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

type testRepository struct {
	dao    dao.TestDAO
	accDAO dao.AccountDAO
	tcDAO  dao.TestCaseDAO
}

func NewTestRepository(d dao.TestDAO, accDAO dao.AccountDAO, tcDAO dao.TestCaseDAO) TestRepository {
	return &testRepository{dao: d, accDAO: accDAO, tcDAO: tcDAO}
}

func (repo *testRepository) Find(ctx context.Context, accountId, tcId int64) ([]domain.Test, error) {
	res, err := repo.dao.Find(ctx, accountId, tcId)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.Test) domain.Test {
		return repo.toDomain(src)
	}), nil
}

func (repo *testRepository) FindByAccountId(ctx context.Context, accountId int64) ([]domain.Test, error) {
	res, err := repo.dao.FindByAccountId(ctx, accountId)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.Test) domain.Test {
		return repo.toDomain(src)
	}), nil
}

func (repo *testRepository) Start(ctx context.Context, id int64, dateStart time.Time) (bool, error) {
	return repo.dao.Start(ctx, id, dateStart.UnixMilli())
}

func (repo *testRepository) GetByID(ctx context.Context, id int64) (domain.Test, error) {
	t, err := repo.dao.GetByID(ctx, id)
	if err != nil {
		return domain.Test{}, err
	}
	res, err := repo.withRelations(ctx, []dao.Test{t})
	if err != nil {
		return domain.Test{}, err
	}
	return res[0], nil
}

func (repo *testRepository) List(ctx context.Context, filter domain.ListFilter) ([]domain.Test, error) {
	ts, err := repo.dao.List(ctx, toListQuery(filter))
	if err != nil {
		return nil, err
	}
	return repo.withRelations(ctx, ts)
}

// withRelations 补充账号和 TestCase 的名字
func (repo *testRepository) withRelations(ctx context.Context, ts []dao.Test) ([]domain.Test, error) {
	if len(ts) == 0 {
		return []domain.Test{}, nil
	}
	var (
		eg    errgroup.Group
		accs  []dao.Account
		cases []dao.TestCase
	)
	eg.Go(func() error {
		var err error
		accs, err = repo.accDAO.GetByIDs(ctx, slice.Map(ts, func(idx int, src dao.Test) int64 {
			return src.AccountId
		}))
		return err
	})
	eg.Go(func() error {
		var err error
		cases, err = repo.tcDAO.GetByIDs(ctx, slice.Map(ts, func(idx int, src dao.Test) int64 {
			return src.TcId
		}))
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	accMap := slice.ToMap(accs, func(element dao.Account) int64 {
		return element.Id
	})
	caseMap := slice.ToMap(cases, func(element dao.TestCase) int64 {
		return element.Id
	})
	return slice.Map(ts, func(idx int, src dao.Test) domain.Test {
		res := repo.toDomain(src)
		acc := accMap[src.AccountId]
		res.Account = domain.Account{Id: src.AccountId, Name: acc.Name, Email: acc.Email}
		res.TestCase.Name = caseMap[src.TcId].Name
		return res
	}), nil
}

func (repo *testRepository) Count(ctx context.Context, filter domain.ListFilter) (int64, error) {
	return repo.dao.Count(ctx, toListQuery(filter))
}

func (repo *testRepository) Touch(ctx context.Context, id int64) error {
	return repo.dao.Touch(ctx, id)
}

func (repo *testRepository) Delete(ctx context.Context, id int64) error {
	return repo.dao.Delete(ctx, id)
}

func (repo *testRepository) toDomain(t dao.Test) domain.Test {
	res := domain.Test{
		Id:        t.Id,
		AccountId: t.AccountId,
		TestCase:  domain.TestCase{Id: t.TcId},
		Answers:   t.Answers,
		Utime:     time.UnixMilli(t.Utime),
	}
	if t.DateStart > 0 {
		res.DateStart = time.UnixMilli(t.DateStart)
	}
	if t.DateEnd > 0 {
		res.DateEnd = time.UnixMilli(t.DateEnd)
	}
	return res
}
