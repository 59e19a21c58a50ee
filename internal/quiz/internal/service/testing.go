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
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/quiz/internal/quiz/internal/domain"
	"github.com/ecodeclub/quiz/internal/quiz/internal/event"
	"github.com/ecodeclub/quiz/internal/quiz/internal/repository"
	"github.com/gotomicro/ego/core/elog"
)

// TestingService 测试者使用的接口，所有方法都显式接收当前的 Viewer
//
//go:generate mockgen -source=./testing.go -package=quizmocks -destination=../../mocks/testing.mock.go TestingService
type TestingService interface {
	// Profile 当前登录的账号，带有分配的 TestCase
	Profile(ctx context.Context, viewer domain.Viewer) (domain.Account, error)
	// TestCase 分配给当前账号的 TestCase 和它的状态
	TestCase(ctx context.Context, viewer domain.Viewer, id int64) (domain.TestCase, domain.Status, error)
	// Start 开始测试，只能调用一次，返回的 TestCase 带有题目和选项
	Start(ctx context.Context, viewer domain.Viewer, id int64) (domain.TestCase, domain.Status, error)
	// Status 查找作答记录失败的时候返回 domain.StatusNone
	Status(ctx context.Context, viewer domain.Viewer, tcId int64) domain.Status
}

type testingService struct {
	accRepo  repository.AccountRepository
	tcRepo   repository.TestCaseRepository
	testRepo repository.TestRepository
	producer event.Producer
	logger   *elog.Component
}

func NewTestingService(accRepo repository.AccountRepository,
	tcRepo repository.TestCaseRepository,
	testRepo repository.TestRepository,
	producer event.Producer) TestingService {
	return &testingService{
		accRepo:  accRepo,
		tcRepo:   tcRepo,
		testRepo: testRepo,
		producer: producer,
		logger:   elog.DefaultLogger,
	}
}

func (s *testingService) Profile(ctx context.Context, viewer domain.Viewer) (domain.Account, error) {
	acc, ok := viewer.Account()
	if !ok {
		return domain.Account{}, ErrAuthenticationRequired
	}
	return acc, nil
}

func (s *testingService) TestCase(ctx context.Context, viewer domain.Viewer, id int64) (domain.TestCase, domain.Status, error) {
	acc, ok := viewer.Account()
	if !ok {
		return domain.TestCase{}, domain.StatusNotAuthenticated, ErrAuthenticationRequired
	}
	tc, err := s.assignedTestCase(ctx, acc, id)
	if err != nil {
		return domain.TestCase{}, domain.StatusNone, err
	}
	return tc, s.Status(ctx, viewer, id), nil
}

func (s *testingService) Start(ctx context.Context, viewer domain.Viewer, id int64) (domain.TestCase, domain.Status, error) {
	acc, ok := viewer.Account()
	if !ok {
		return domain.TestCase{}, domain.StatusNotAuthenticated, ErrAuthenticationRequired
	}
	tc, err := s.assignedTestCase(ctx, acc, id)
	if err != nil {
		return domain.TestCase{}, domain.StatusNone, err
	}
	test, err := s.findTest(ctx, acc.Id, id)
	if err != nil {
		return domain.TestCase{}, domain.StatusNone, err
	}
	if test.Started() {
		return domain.TestCase{}, test.Status(), fmt.Errorf("%w, test id %d", ErrAlreadyStarted, test.Id)
	}
	now := time.Now()
	ok, err = s.testRepo.Start(ctx, test.Id, now)
	if err != nil {
		return domain.TestCase{}, domain.StatusNone, err
	}
	// 并发开始的时候只有一个会成功
	if !ok {
		return domain.TestCase{}, domain.StatusStarted, fmt.Errorf("%w, test id %d", ErrAlreadyStarted, test.Id)
	}
	err = s.producer.ProduceTestEvent(ctx, event.NewTestStartedEvent(acc.Id, id, now))
	if err != nil {
		s.logger.Error("发送开始测试事件失败",
			elog.FieldErr(err),
			elog.Int64("accountId", acc.Id),
			elog.Int64("tcId", id))
	}
	return tc, domain.StatusStarted, nil
}

func (s *testingService) Status(ctx context.Context, viewer domain.Viewer, tcId int64) domain.Status {
	acc, ok := viewer.Account()
	if !ok {
		return domain.StatusNotAuthenticated
	}
	test, err := s.findTest(ctx, acc.Id, tcId)
	if err != nil {
		return domain.StatusNone
	}
	return test.Status()
}

// assignedTestCase 只能拿到分配给自己的 TestCase
func (s *testingService) assignedTestCase(ctx context.Context, acc domain.Account, id int64) (domain.TestCase, error) {
	tcIds, err := s.accRepo.GetTestCaseIds(ctx, acc.Id)
	if err != nil {
		return domain.TestCase{}, err
	}
	cnt := 0
	for _, tcId := range tcIds {
		if tcId == id {
			cnt++
		}
	}
	switch cnt {
	case 0:
		s.logger.Error("TestCase 不存在",
			elog.Int64("accountId", acc.Id),
			elog.Int64("tcId", id))
		return domain.TestCase{}, ErrNotFound
	case 1:
	default:
		s.logger.Error("TestCase 分配了多次",
			elog.Int64("accountId", acc.Id),
			elog.Int64("tcId", id))
		return domain.TestCase{}, ErrAmbiguous
	}
	tc, err := s.tcRepo.GetWithQuestions(ctx, id)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return domain.TestCase{}, ErrNotFound
	}
	return tc, err
}

func (s *testingService) findTest(ctx context.Context, accountId, tcId int64) (domain.Test, error) {
	tests, err := s.testRepo.Find(ctx, accountId, tcId)
	if err != nil {
		s.logger.Error("查找作答记录失败",
			elog.FieldErr(err),
			elog.Int64("accountId", accountId),
			elog.Int64("tcId", tcId))
		return domain.Test{}, err
	}
	switch len(tests) {
	case 0:
		s.logger.Error("作答记录不存在",
			elog.Int64("accountId", accountId),
			elog.Int64("tcId", tcId))
		return domain.Test{}, ErrNotFound
	case 1:
		return tests[0], nil
	default:
		s.logger.Error("存在多条作答记录",
			elog.Int64("accountId", accountId),
			elog.Int64("tcId", tcId),
			elog.Int("cnt", len(tests)))
		return domain.Test{}, ErrAmbiguous
	}
}
