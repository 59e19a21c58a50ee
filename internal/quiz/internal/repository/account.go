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
)

var ErrDuplicateEmail = dao.ErrDuplicateEmail

//go:generate mockgen -source=./account.go -package=repomocks -destination=mocks/account.mock.go AccountRepository
type AccountRepository interface {
	// Save Id 为 0 的时候创建，否则更新，Password 为空的时候不修改密码。
	// 账号和分配计划一起提交，任何一步失败都不会留下部分写入
	Save(ctx context.Context, acc domain.Account, plan domain.AssignmentPlan) (int64, error)
	// GetByID 包含分配的 TestCase，不包含题目
	GetByID(ctx context.Context, id int64) (domain.Account, error)
	// GetByEmail 只有账号本身的信息
	GetByEmail(ctx context.Context, email string) (domain.Account, error)
	List(ctx context.Context, filter domain.ListFilter) ([]domain.Account, error)
	Count(ctx context.Context, filter domain.ListFilter) (int64, error)
	Delete(ctx context.Context, id int64) error

	GetTestCaseIds(ctx context.Context, id int64) ([]int64, error)
	// SyncAssignments 按照计划落库，Keep 部分不会有任何操作
	SyncAssignments(ctx context.Context, id int64, plan domain.AssignmentPlan) error
}

type accountRepository struct {
	dao    dao.AccountDAO
	tcRepo TestCaseRepository
}

func NewAccountRepository(d dao.AccountDAO, tcRepo TestCaseRepository) AccountRepository {
	return &accountRepository{dao: d, tcRepo: tcRepo}
}

func (repo *accountRepository) Save(ctx context.Context, acc domain.Account, plan domain.AssignmentPlan) (int64, error) {
	return repo.dao.Save(ctx, repo.toEntity(acc), toAssignmentSync(plan))
}

func (repo *accountRepository) GetByID(ctx context.Context, id int64) (domain.Account, error) {
	acc, err := repo.dao.GetByID(ctx, id)
	if err != nil {
		return domain.Account{}, err
	}
	tcIds, err := repo.dao.GetTcIds(ctx, id)
	if err != nil {
		return domain.Account{}, err
	}
	res := repo.toDomain(acc)
	res.Tests, err = repo.tcRepo.GetByIDs(ctx, tcIds)
	return res, err
}

func (repo *accountRepository) GetByEmail(ctx context.Context, email string) (domain.Account, error) {
	acc, err := repo.dao.GetByEmail(ctx, email)
	return repo.toDomain(acc), err
}

func (repo *accountRepository) List(ctx context.Context, filter domain.ListFilter) ([]domain.Account, error) {
	res, err := repo.dao.List(ctx, toListQuery(filter))
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.Account) domain.Account {
		return repo.toDomain(src)
	}), nil
}

func (repo *accountRepository) Count(ctx context.Context, filter domain.ListFilter) (int64, error) {
	return repo.dao.Count(ctx, toListQuery(filter))
}

func (repo *accountRepository) Delete(ctx context.Context, id int64) error {
	return repo.dao.Delete(ctx, id)
}

func (repo *accountRepository) GetTestCaseIds(ctx context.Context, id int64) ([]int64, error) {
	return repo.dao.GetTcIds(ctx, id)
}

func (repo *accountRepository) SyncAssignments(ctx context.Context, id int64, plan domain.AssignmentPlan) error {
	if plan.Empty() {
		return nil
	}
	return repo.dao.SyncAssignments(ctx, id, toAssignmentSync(plan))
}

func toAssignmentSync(plan domain.AssignmentPlan) dao.AssignmentSync {
	return dao.AssignmentSync{
		Create: plan.Create,
		Remove: plan.Delete,
		Link:   plan.Link,
	}
}

func (repo *accountRepository) toEntity(acc domain.Account) dao.Account {
	return dao.Account{
		Id:          acc.Id,
		Name:        acc.Name,
		Email:       acc.Email,
		Information: acc.Information,
		Password:    acc.Password,
	}
}

func (repo *accountRepository) toDomain(acc dao.Account) domain.Account {
	return domain.Account{
		Id:          acc.Id,
		Name:        acc.Name,
		Email:       acc.Email,
		Information: acc.Information,
		Password:    acc.Password,
		Utime:       time.UnixMilli(acc.Utime),
	}
}
