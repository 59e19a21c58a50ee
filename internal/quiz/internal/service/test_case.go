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

//go:generate mockgen -source=./test_case.go -package=quizmocks -destination=../../mocks/test_case.mock.go TestCaseService
type TestCaseService interface {
	Save(ctx context.Context, tc domain.TestCase) (int64, error)
	Detail(ctx context.Context, id int64) (domain.TestCase, error)
	List(ctx context.Context, filter domain.ListFilter) ([]domain.TestCase, int64, error)
	Delete(ctx context.Context, id int64) error
}

type testCaseService struct {
	repo repository.TestCaseRepository
}

func NewTestCaseService(repo repository.TestCaseRepository) TestCaseService {
	return &testCaseService{repo: repo}
}

func (s *testCaseService) Save(ctx context.Context, tc domain.TestCase) (int64, error) {
	return s.repo.Save(ctx, tc)
}

func (s *testCaseService) Detail(ctx context.Context, id int64) (domain.TestCase, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *testCaseService) List(ctx context.Context, filter domain.ListFilter) ([]domain.TestCase, int64, error) {
	var (
		eg    errgroup.Group
		tcs   []domain.TestCase
		total int64
	)
	eg.Go(func() error {
		var err error
		tcs, err = s.repo.List(ctx, filter)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx, filter)
		return err
	})
	return tcs, total, eg.Wait()
}

func (s *testCaseService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
