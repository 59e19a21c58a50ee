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
	"github.com/ecodeclub/quiz/internal/quiz/internal/repository"
	"golang.org/x/sync/errgroup"
)

// TestService 管理后台查看作答记录。
// 作答记录只能通过分配 TestCase 创建，这里不提供创建
//
//go:generate mockgen -source=./test.go -package=quizmocks -destination=../../mocks/test.mock.go TestService
type TestService interface {
	Detail(ctx context.Context, id int64) (domain.Test, error)
	List(ctx context.Context, filter domain.ListFilter) ([]domain.Test, int64, error)
	// Save 所有字段都是只读的，重新读取之后原样保存
	Save(ctx context.Context, id int64) (domain.Test, error)
	Delete(ctx context.Context, id int64) error
}

type testService struct {
	repo repository.TestRepository
}

func NewTestService(repo repository.TestRepository) TestService {
	return &testService{repo: repo}
}

func (s *testService) Detail(ctx context.Context, id int64) (domain.Test, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *testService) List(ctx context.Context, filter domain.ListFilter) ([]domain.Test, int64, error) {
	var (
		eg    errgroup.Group
		ts    []domain.Test
		total int64
	)
	eg.Go(func() error {
		var err error
		ts, err = s.repo.List(ctx, filter)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx, filter)
		return err
	})
	return ts, total, eg.Wait()
}

func (s *testService) Save(ctx context.Context, id int64) (domain.Test, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Test{}, err
	}
	err = s.repo.Touch(ctx, t.Id)
	return t, err
}

func (s *testService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
