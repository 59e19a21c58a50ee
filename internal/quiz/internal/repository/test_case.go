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
	"github.com/ecodeclub/quiz/internal/quiz/internal/repository/cache"
	"github.com/ecodeclub/quiz/internal/quiz/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

//go:generate mockgen -source=./test_case.go -package=repomocks -destination=mocks/test_case.mock.go TestCaseRepository
type TestCaseRepository interface {
	// Save tc.Questions 里面只需要 Id
	Save(ctx context.Context, tc domain.TestCase) (int64, error)
	// GetByID 题目里面只有 Id 和内容，管理后台使用
	GetByID(ctx context.Context, id int64) (domain.TestCase, error)
	// GetWithQuestions 带有完整的题目和答案，优先走缓存
	GetWithQuestions(ctx context.Context, id int64) (domain.TestCase, error)
	// GetByIDs 不包含题目
	GetByIDs(ctx context.Context, ids []int64) ([]domain.TestCase, error)
	List(ctx context.Context, filter domain.ListFilter) ([]domain.TestCase, error)
	Count(ctx context.Context, filter domain.ListFilter) (int64, error)
	Delete(ctx context.Context, id int64) error
	// EvictByQuestion 题目变更之后，清理包含这道题目的 TestCase 缓存
	EvictByQuestion(ctx context.Context, qid int64) error
	// GetIDsByCategory 包含了这个分类下题目的 TestCase，分类删除之前用来确定要清理的缓存
	GetIDsByCategory(ctx context.Context, cid int64) ([]int64, error)
	Evict(ctx context.Context, ids []int64) error
}

type CachedTestCaseRepository struct {
	dao    dao.TestCaseDAO
	qRepo  QuestionRepository
	cache  cache.TestCaseCache
	logger *elog.Component
}

func NewCachedTestCaseRepository(d dao.TestCaseDAO,
	qRepo QuestionRepository,
	c cache.TestCaseCache) TestCaseRepository {
	return &CachedTestCaseRepository{
		dao:    d,
		qRepo:  qRepo,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (repo *CachedTestCaseRepository) Save(ctx context.Context, tc domain.TestCase) (int64, error) {
	id, err := repo.dao.Save(ctx, repo.toEntity(tc), tc.QuestionIds())
	if err != nil {
		return 0, err
	}
	repo.evict(ctx, id)
	return id, nil
}

func (repo *CachedTestCaseRepository) GetByID(ctx context.Context, id int64) (domain.TestCase, error) {
	tc, err := repo.dao.GetByID(ctx, id)
	if err != nil {
		return domain.TestCase{}, err
	}
	qids, err := repo.dao.GetQids(ctx, id)
	if err != nil {
		return domain.TestCase{}, err
	}
	res := repo.toDomain(tc)
	res.Questions = make([]domain.Question, 0, len(qids))
	if len(qids) == 0 {
		return res, nil
	}
	qs, err := repo.qRepo.GetByIDsWithAnswers(ctx, qids)
	if err != nil {
		return domain.TestCase{}, err
	}
	for _, q := range qs {
		res.Questions = append(res.Questions, domain.Question{
			Id:       q.Id,
			Degree:   q.Degree,
			Category: q.Category,
			Content:  q.Content,
			IsActive: q.IsActive,
		})
	}
	return res, nil
}

func (repo *CachedTestCaseRepository) GetWithQuestions(ctx context.Context, id int64) (domain.TestCase, error) {
	res, err := repo.cache.Get(ctx, id)
	if err == nil {
		return res, nil
	}
	tc, err := repo.dao.GetByID(ctx, id)
	if err != nil {
		return domain.TestCase{}, err
	}
	qids, err := repo.dao.GetQids(ctx, id)
	if err != nil {
		return domain.TestCase{}, err
	}
	res = repo.toDomain(tc)
	res.Questions, err = repo.qRepo.GetByIDsWithAnswers(ctx, qids)
	if err != nil {
		return domain.TestCase{}, err
	}
	err = repo.cache.Set(ctx, res)
	if err != nil {
		repo.logger.Error("回写 TestCase 缓存失败",
			elog.FieldErr(err),
			elog.Int64("id", id))
	}
	return res, nil
}

func (repo *CachedTestCaseRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.TestCase, error) {
	if len(ids) == 0 {
		return []domain.TestCase{}, nil
	}
	res, err := repo.dao.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.TestCase) domain.TestCase {
		return repo.toDomain(src)
	}), nil
}

func (repo *CachedTestCaseRepository) List(ctx context.Context, filter domain.ListFilter) ([]domain.TestCase, error) {
	res, err := repo.dao.List(ctx, toListQuery(filter))
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.TestCase) domain.TestCase {
		return repo.toDomain(src)
	}), nil
}

func (repo *CachedTestCaseRepository) Count(ctx context.Context, filter domain.ListFilter) (int64, error) {
	return repo.dao.Count(ctx, toListQuery(filter))
}

func (repo *CachedTestCaseRepository) Delete(ctx context.Context, id int64) error {
	err := repo.dao.Delete(ctx, id)
	if err != nil {
		return err
	}
	repo.evict(ctx, id)
	return nil
}

func (repo *CachedTestCaseRepository) EvictByQuestion(ctx context.Context, qid int64) error {
	ids, err := repo.dao.GetIDsByQid(ctx, qid)
	if err != nil {
		return err
	}
	return repo.cache.Delete(ctx, ids...)
}

func (repo *CachedTestCaseRepository) GetIDsByCategory(ctx context.Context, cid int64) ([]int64, error) {
	return repo.dao.GetIDsByCid(ctx, cid)
}

func (repo *CachedTestCaseRepository) Evict(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	return repo.cache.Delete(ctx, ids...)
}

// evict 缓存删除失败只记录日志，等待过期
func (repo *CachedTestCaseRepository) evict(ctx context.Context, id int64) {
	err := repo.cache.Delete(ctx, id)
	if err != nil {
		repo.logger.Error("删除 TestCase 缓存失败",
			elog.FieldErr(err),
			elog.Int64("id", id))
	}
}

func (repo *CachedTestCaseRepository) toEntity(tc domain.TestCase) dao.TestCase {
	return dao.TestCase{
		Id:         tc.Id,
		Name:       tc.Name,
		IsActive:   tc.IsActive,
		TimeToTest: int64(tc.TimeToTest / time.Second),
	}
}

func (repo *CachedTestCaseRepository) toDomain(tc dao.TestCase) domain.TestCase {
	return domain.TestCase{
		Id:         tc.Id,
		Name:       tc.Name,
		IsActive:   tc.IsActive,
		TimeToTest: time.Duration(tc.TimeToTest) * time.Second,
		Utime:      time.UnixMilli(tc.Utime),
	}
}
