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

var ErrRecordNotFound = dao.ErrRecordNotFound

//go:generate mockgen -source=./category.go -package=repomocks -destination=mocks/category.mock.go CategoryRepository
type CategoryRepository interface {
	Save(ctx context.Context, c domain.Category) (int64, error)
	GetByID(ctx context.Context, id int64) (domain.Category, error)
	List(ctx context.Context, filter domain.ListFilter) ([]domain.Category, error)
	Count(ctx context.Context, filter domain.ListFilter) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type categoryRepository struct {
	dao dao.CategoryDAO
}

func NewCategoryRepository(d dao.CategoryDAO) CategoryRepository {
	return &categoryRepository{dao: d}
}

func (repo *categoryRepository) Save(ctx context.Context, c domain.Category) (int64, error) {
	return repo.dao.Save(ctx, dao.Category{
		Id:       c.Id,
		Name:     c.Name,
		IsActive: c.IsActive,
	})
}

func (repo *categoryRepository) GetByID(ctx context.Context, id int64) (domain.Category, error) {
	c, err := repo.dao.GetByID(ctx, id)
	return categoryToDomain(c), err
}

func (repo *categoryRepository) List(ctx context.Context, filter domain.ListFilter) ([]domain.Category, error) {
	res, err := repo.dao.List(ctx, toListQuery(filter))
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.Category) domain.Category {
		return categoryToDomain(src)
	}), nil
}

func (repo *categoryRepository) Count(ctx context.Context, filter domain.ListFilter) (int64, error) {
	return repo.dao.Count(ctx, toListQuery(filter))
}

func (repo *categoryRepository) Delete(ctx context.Context, id int64) error {
	return repo.dao.Delete(ctx, id)
}

func categoryToDomain(c dao.Category) domain.Category {
	return domain.Category{
		Id:       c.Id,
		Name:     c.Name,
		IsActive: c.IsActive,
		Utime:    time.UnixMilli(c.Utime),
	}
}

func toListQuery(filter domain.ListFilter) dao.ListQuery {
	return dao.ListQuery{
		Offset:   filter.Offset,
		Limit:    filter.Limit,
		Keyword:  filter.Keyword,
		IsActive: filter.IsActive,
		Degree:   filter.Degree.ToUint8(),
		Cid:      filter.CategoryId,
		TcId:     filter.TestCaseId,
	}
}
