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

package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=./question.go -package=daomocks -destination=mocks/question.mock.go QuestionDAO
type QuestionDAO interface {
	// Save 保存题目，答案按照全量覆盖的方式保存
	Save(ctx context.Context, que Question, answers []Answer) (int64, error)
	GetByID(ctx context.Context, id int64) (Question, []Answer, error)
	GetByIDs(ctx context.Context, ids []int64) ([]Question, error)
	GetAnswersByQids(ctx context.Context, qids []int64) ([]Answer, error)
	List(ctx context.Context, q ListQuery) ([]Question, error)
	Count(ctx context.Context, q ListQuery) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type GORMQuestionDAO struct {
	db *egorm.Component
}

func NewGORMQuestionDAO(db *egorm.Component) QuestionDAO {
	return &GORMQuestionDAO{db: db}
}

func (g *GORMQuestionDAO) Save(ctx context.Context, que Question, answers []Answer) (int64, error) {
	now := time.Now().UnixMilli()
	que.Ctime = now
	que.Utime = now
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.OnConflict{
			DoUpdates: clause.AssignmentColumns([]string{"degree", "cid", "content", "is_active", "utime"}),
		}).Create(&que).Error
		if err != nil {
			return err
		}
		// 全部删除再重新创建
		if err = tx.Where("qid = ?", que.Id).Delete(&Answer{}).Error; err != nil {
			return err
		}
		if len(answers) == 0 {
			return nil
		}
		for i := range answers {
			answers[i].Id = 0
			answers[i].Qid = que.Id
			answers[i].Ctime = now
			answers[i].Utime = now
		}
		return tx.Create(&answers).Error
	})
	return que.Id, err
}

func (g *GORMQuestionDAO) GetByID(ctx context.Context, id int64) (Question, []Answer, error) {
	var q Question
	db := g.db.WithContext(ctx)
	err := db.Where("id = ?", id).First(&q).Error
	if err != nil {
		return Question{}, nil, err
	}
	var answers []Answer
	err = db.Where("qid = ?", id).Order("id ASC").Find(&answers).Error
	return q, answers, err
}

func (g *GORMQuestionDAO) GetByIDs(ctx context.Context, ids []int64) ([]Question, error) {
	var res []Question
	err := g.db.WithContext(ctx).Where("id IN ?", ids).Order("id ASC").Find(&res).Error
	return res, err
}

func (g *GORMQuestionDAO) GetAnswersByQids(ctx context.Context, qids []int64) ([]Answer, error) {
	var res []Answer
	err := g.db.WithContext(ctx).Where("qid IN ?", qids).Order("id ASC").Find(&res).Error
	return res, err
}

func (g *GORMQuestionDAO) List(ctx context.Context, q ListQuery) ([]Question, error) {
	var res []Question
	err := g.buildQuery(ctx, q).Offset(q.Offset).Limit(q.Limit).
		Order("id DESC").Find(&res).Error
	return res, err
}

func (g *GORMQuestionDAO) Count(ctx context.Context, q ListQuery) (int64, error) {
	var res int64
	err := g.buildQuery(ctx, q).Model(&Question{}).Count(&res).Error
	return res, err
}

func (g *GORMQuestionDAO) buildQuery(ctx context.Context, q ListQuery) *gorm.DB {
	db := g.db.WithContext(ctx)
	if q.Degree > 0 {
		db = db.Where("degree = ?", q.Degree)
	}
	if q.Cid > 0 {
		db = db.Where("cid = ?", q.Cid)
	}
	if q.IsActive != nil {
		db = db.Where("is_active = ?", *q.IsActive)
	}
	if q.Keyword != "" {
		// 分类名字和题目内容都可以搜
		sub := g.db.WithContext(ctx).Model(&Category{}).Select("id").Where("name LIKE ?", q.like())
		db = db.Where(g.db.Where("content LIKE ?", q.like()).Or("cid IN (?)", sub))
	}
	return db
}

func (g *GORMQuestionDAO) Delete(ctx context.Context, id int64) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return deleteQuestions(tx, []int64{id})
	})
}
