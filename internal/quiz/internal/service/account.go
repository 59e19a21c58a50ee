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

package service

import (
	"context"

	"github.com/ecodeclub/quiz/internal/quiz/internal/domain"
	"github.com/ecodeclub/quiz/internal/quiz/internal/event"
	"github.com/ecodeclub/quiz/internal/quiz/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=./account.go -package=quizmocks -destination=../../mocks/account.mock.go AccountService
type AccountService interface {
	// Save acc.Password 是明文，创建的时候必须有，更新的时候为空表示不修改。
	// acc.Tests 是期望的分配结果，和账号在同一个事务里面同步到作答记录上
	Save(ctx context.Context, acc domain.Account) (int64, error)
	Detail(ctx context.Context, id int64) (domain.Account, error)
	List(ctx context.Context, filter domain.ListFilter) ([]domain.Account, int64, error)
	Delete(ctx context.Context, id int64) error
	// SyncAssignments 新增的创建作答记录，移除的删除作答记录，没有变化的不动
	SyncAssignments(ctx context.Context, id int64, tcIds []int64) (domain.AssignmentPlan, error)
}

type accountService struct {
	repo     repository.AccountRepository
	testRepo repository.TestRepository
	producer event.Producer
	logger   *elog.Component
}

func NewAccountService(repo repository.AccountRepository,
	testRepo repository.TestRepository,
	producer event.Producer) AccountService {
	return &accountService{
		repo:     repo,
		testRepo: testRepo,
		producer: producer,
		logger:   elog.DefaultLogger,
	}
}

func (s *accountService) Save(ctx context.Context, acc domain.Account) (int64, error) {
	if acc.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(acc.Password), bcrypt.DefaultCost)
		if err != nil {
			return 0, err
		}
		acc.Password = string(hash)
	} else if acc.Id == 0 {
		return 0, ErrPasswordEmpty
	}
	plan, err := s.plan(ctx, acc.Id, acc.TestCaseIds())
	if err != nil {
		return 0, err
	}
	// 账号和分配关系一起提交
	id, err := s.repo.Save(ctx, acc, plan)
	if err != nil {
		return 0, err
	}
	s.produceAssignmentEvent(ctx, id, plan)
	return id, nil
}

func (s *accountService) Detail(ctx context.Context, id int64) (domain.Account, error) {
	acc, err := s.repo.GetByID(ctx, id)
	// 密码不需要给出去
	acc.Password = ""
	return acc, err
}

func (s *accountService) List(ctx context.Context, filter domain.ListFilter) ([]domain.Account, int64, error) {
	var (
		eg    errgroup.Group
		accs  []domain.Account
		total int64
	)
	eg.Go(func() error {
		var err error
		accs, err = s.repo.List(ctx, filter)
		for i := range accs {
			accs[i].Password = ""
		}
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx, filter)
		return err
	})
	return accs, total, eg.Wait()
}

func (s *accountService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *accountService) SyncAssignments(ctx context.Context, id int64, tcIds []int64) (domain.AssignmentPlan, error) {
	plan, err := s.plan(ctx, id, tcIds)
	if err != nil {
		return domain.AssignmentPlan{}, err
	}
	if plan.Empty() {
		return plan, nil
	}
	err = s.repo.SyncAssignments(ctx, id, plan)
	if err != nil {
		return domain.AssignmentPlan{}, err
	}
	s.produceAssignmentEvent(ctx, id, plan)
	return plan, nil
}

// plan 新账号没有任何分配关系和作答记录
func (s *accountService) plan(ctx context.Context, id int64, tcIds []int64) (domain.AssignmentPlan, error) {
	if id == 0 {
		return domain.PlanAssignments(tcIds, nil, nil), nil
	}
	assigned, err := s.repo.GetTestCaseIds(ctx, id)
	if err != nil {
		return domain.AssignmentPlan{}, err
	}
	existing, err := s.testRepo.FindByAccountId(ctx, id)
	if err != nil {
		return domain.AssignmentPlan{}, err
	}
	return domain.PlanAssignments(tcIds, assigned, existing), nil
}

// produceAssignmentEvent 补上分配关系的也算新增
func (s *accountService) produceAssignmentEvent(ctx context.Context, id int64, plan domain.AssignmentPlan) {
	if plan.Empty() {
		return
	}
	added := make([]int64, 0, len(plan.Create)+len(plan.Link))
	added = append(added, plan.Create...)
	added = append(added, plan.Link...)
	err := s.producer.ProduceAssignmentEvent(ctx, event.NewAssignmentEvent(id, added, plan.Delete))
	if err != nil {
		s.logger.Error("发送分配变更事件失败",
			elog.FieldErr(err),
			elog.Int64("accountId", id))
	}
}
