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
	"errors"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/quiz/internal/quiz/internal/domain"
	"github.com/ecodeclub/quiz/internal/quiz/internal/repository/dao"
)

//go:generate mockgen -source=./question.go -package=repomocks -destination=mocks/question.mock.go QuestionRepository
type QuestionRepository interface {
	Save(ctx context.Context, q domain.Question) (int64, error)
	// GetByID 包含答案和分类
	GetByID(ctx context.Context, id int64) (domain.Question, error)
	// GetByIDsWithAnswers 按照 ids 的顺序返回，不存在的题目会被忽略
	GetByIDsWithAnswers(ctx context.Context, ids []int64) ([]domain.Question, error)
	// List 不包含答案
	List(ctx context.Context, filter domain.ListFilter) ([]domain.Question, error)
	Count(ctx context.Context, filter domain.ListFilter) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type questionRepository struct {
	dao    dao.QuestionDAO
	catDAO dao.CategoryDAO
}

func NewQuestionRepository(d dao.QuestionDAO, catDAO dao.CategoryDAO) QuestionRepository {
	return &questionRepository{dao: d, catDAO: catDAO}
}

func (repo *questionRepository) Save(ctx context.Context, q domain.Question) (int64, error) {
	answers := slice.Map(q.Answers, func(idx int, src domain.Answer) dao.Answer {
		return dao.Answer{
			Content: src.Content,
			IsValid: src.IsValid,
		}
	})
	return repo.dao.Save(ctx, dao.Question{
		Id:       q.Id,
		Degree:   q.Degree.ToUint8(),
		Cid:      q.Category.Id,
		Content:  q.Content,
		IsActive: q.IsActive,
	}, answers)
}

func (repo *questionRepository) GetByID(ctx context.Context, id int64) (domain.Question, error) {
	q, answers, err := repo.dao.GetByID(ctx, id)
	if err != nil {
		return domain.Question{}, err
	}
	res := questionToDomain(q)
	res.Answers = slice.Map(answers, func(idx int, src dao.Answer) domain.Answer {
		return answerToDomain(src)
	})
	c, err := repo.catDAO.GetByID(ctx, q.Cid)
	// 分类被删掉的话题目也会被删掉，所以这里找不到也不算错误
	if err != nil && !errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Question{}, err
	}
	res.Category = domain.Category{Id: q.Cid, Name: c.Name, IsActive: c.IsActive}
	return res, nil
}

func (repo *questionRepository) GetByIDsWithAnswers(ctx context.Context, ids []int64) ([]domain.Question, error) {
	if len(ids) == 0 {
		return []domain.Question{}, nil
	}
	qs, err := repo.dao.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	answers, err := repo.dao.GetAnswersByQids(ctx, ids)
	if err != nil {
		return nil, err
	}
	answerMap := make(map[int64][]domain.Answer, len(qs))
	for _, a := range answers {
		answerMap[a.Qid] = append(answerMap[a.Qid], answerToDomain(a))
	}
	res, err := repo.withCategories(ctx, qs)
	if err != nil {
		return nil, err
	}
	for i := range res {
		res[i].Answers = answerMap[res[i].Id]
	}
	// 保持 TestCase 里面的题目顺序
	qmap := slice.ToMap(res, func(element domain.Question) int64 {
		return element.Id
	})
	ordered := make([]domain.Question, 0, len(res))
	for _, id := range ids {
		if q, ok := qmap[id]; ok {
			ordered = append(ordered, q)
		}
	}
	return ordered, nil
}

func (repo *questionRepository) List(ctx context.Context, filter domain.ListFilter) ([]domain.Question, error) {
	qs, err := repo.dao.List(ctx, toListQuery(filter))
	if err != nil {
		return nil, err
	}
	return repo.withCategories(ctx, qs)
}

func (repo *questionRepository) withCategories(ctx context.Context, qs []dao.Question) ([]domain.Question, error) {
	cids := slice.Map(qs, func(idx int, src dao.Question) int64 {
		return src.Cid
	})
	var cats []dao.Category
	if len(cids) > 0 {
		var err error
		cats, err = repo.catDAO.GetByIDs(ctx, cids)
		if err != nil {
			return nil, err
		}
	}
	catMap := slice.ToMap(cats, func(element dao.Category) int64 {
		return element.Id
	})
	return slice.Map(qs, func(idx int, src dao.Question) domain.Question {
		q := questionToDomain(src)
		q.Category.Name = catMap[src.Cid].Name
		q.Category.IsActive = catMap[src.Cid].IsActive
		return q
	}), nil
}

func (repo *questionRepository) Count(ctx context.Context, filter domain.ListFilter) (int64, error) {
	return repo.dao.Count(ctx, toListQuery(filter))
}

func (repo *questionRepository) Delete(ctx context.Context, id int64) error {
	return repo.dao.Delete(ctx, id)
}

func questionToDomain(q dao.Question) domain.Question {
	return domain.Question{
		Id:       q.Id,
		Degree:   domain.Degree(q.Degree),
		Category: domain.Category{Id: q.Cid},
		Content:  q.Content,
		IsActive: q.IsActive,
		Utime:    time.UnixMilli(q.Utime),
	}
}

func answerToDomain(a dao.Answer) domain.Answer {
	return domain.Answer{
		Id:      a.Id,
		Qid:     a.Qid,
		Content: a.Content,
		IsValid: a.IsValid,
	}
}
