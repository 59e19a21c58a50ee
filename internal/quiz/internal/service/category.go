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
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=./category.go -package=quizmocks -destination=../../mocks/category.mock.go CategoryService
type CategoryService interface {
	Save(ctx context.Context, c domain.Category) (int64, error)
	Detail(ctx context.Context, id int64) (domain.Category, error)
	List(ctx context.Context, filter domain.ListFilter) ([]domain.Category, int64, error)
	Delete(ctx context.Context, id int64) error
}

type categoryService struct {
	repo   repository.CategoryRepository
	tcRepo repository.TestCaseRepository
	logger *elog.Component
}

func NewCategoryService(repo repository.CategoryRepository,
	tcRepo repository.TestCaseRepository) CategoryService {
	return &categoryService{
		repo:   repo,
		tcRepo: tcRepo,
		logger: elog.DefaultLogger,
	}
}

func (s *categoryService) Save(ctx context.Context, c domain.Category) (int64, error) {
	return s.repo.Save(ctx, c)
}

func (s *categoryService) Detail(ctx context.Context, id int64) (domain.Category, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *categoryService) List(ctx context.Context, filter domain.ListFilter) ([]domain.Category, int64, error) {
	var (
		eg    errgroup.Group
		cs    []domain.Category
		total int64
	)
	eg.Go(func() error {
		var err error
		cs, err = s.repo.List(ctx, filter)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx, filter)
		return err
	})
	return cs, total, eg.Wait()
}

// Delete 会级联删除题目，删除之后就找不到关联的 TestCase 了，
// 所以先查出来，删除成功之后再清理缓存
func (s *categoryService) Delete(ctx context.Context, id int64) error {
	tcIds, err := s.tcRepo.GetIDsByCategory(ctx, id)
	if err != nil {
		return err
	}
	err = s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	err = s.tcRepo.Evict(ctx, tcIds)
	if err != nil {
		s.logger.Error("清理 TestCase 缓存失败",
			elog.FieldErr(err),
			elog.Int64("cid", id),
			elog.Any("tcIds", tcIds))
	}
	return nil
}
