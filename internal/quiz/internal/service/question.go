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

//go:generate mockgen -source=./question.go -package=quizmocks -destination=../../mocks/question.mock.go QuestionService
type QuestionService interface {
	// Save 答案全量保存，至少要有一个正确答案
	Save(ctx context.Context, q domain.Question) (int64, error)
	Detail(ctx context.Context, id int64) (domain.Question, error)
	List(ctx context.Context, filter domain.ListFilter) ([]domain.Question, int64, error)
	Delete(ctx context.Context, id int64) error
}

type questionService struct {
	repo   repository.QuestionRepository
	tcRepo repository.TestCaseRepository
	logger *elog.Component
}

func NewQuestionService(repo repository.QuestionRepository,
	tcRepo repository.TestCaseRepository) QuestionService {
	return &questionService{
		repo:   repo,
		tcRepo: tcRepo,
		logger: elog.DefaultLogger,
	}
}

func (s *questionService) Save(ctx context.Context, q domain.Question) (int64, error) {
	if !q.Degree.Valid() {
		return 0, ErrInvalidDegree
	}
	if !q.HasValidAnswer() {
		return 0, ErrNoValidAnswer
	}
	id, err := s.repo.Save(ctx, q)
	if err != nil {
		return 0, err
	}
	s.evict(ctx, id)
	return id, nil
}

func (s *questionService) Detail(ctx context.Context, id int64) (domain.Question, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *questionService) List(ctx context.Context, filter domain.ListFilter) ([]domain.Question, int64, error) {
	var (
		eg    errgroup.Group
		qs    []domain.Question
		total int64
	)
	eg.Go(func() error {
		var err error
		qs, err = s.repo.List(ctx, filter)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx, filter)
		return err
	})
	return qs, total, eg.Wait()
}

func (s *questionService) Delete(ctx context.Context, id int64) error {
	// 删除之后就找不到关联的 TestCase 了，所以要先清理缓存
	s.evict(ctx, id)
	return s.repo.Delete(ctx, id)
}

func (s *questionService) evict(ctx context.Context, qid int64) {
	err := s.tcRepo.EvictByQuestion(ctx, qid)
	if err != nil {
		s.logger.Error("清理 TestCase 缓存失败",
			elog.FieldErr(err),
			elog.Int64("qid", qid))
	}
}
