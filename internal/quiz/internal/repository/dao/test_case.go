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

//go:generate mockgen -source=./test_case.go -package=daomocks -destination=mocks/test_case.mock.go TestCaseDAO
type TestCaseDAO interface {
	// Save 保存 TestCase，qids 是全量的题目
	Save(ctx context.Context, tc TestCase, qids []int64) (int64, error)
	GetByID(ctx context.Context, id int64) (TestCase, error)
	GetByIDs(ctx context.Context, ids []int64) ([]TestCase, error)
	GetQids(ctx context.Context, id int64) ([]int64, error)
	// GetIDsByQid 包含了这道题目的 TestCase
	GetIDsByQid(ctx context.Context, qid int64) ([]int64, error)
	// GetIDsByCid 包含了这个分类下任意一道题目的 TestCase
	GetIDsByCid(ctx context.Context, cid int64) ([]int64, error)
	List(ctx context.Context, q ListQuery) ([]TestCase, error)
	Count(ctx context.Context, q ListQuery) (int64, error)
	// Delete 同时删除分配关系和作答记录
	Delete(ctx context.Context, id int64) error
}

type GORMTestCaseDAO struct {
	db *egorm.Component
}

func NewGORMTestCaseDAO(db *egorm.Component) TestCaseDAO {
	return &GORMTestCaseDAO{db: db}
}

func (g *GORMTestCaseDAO) Save(ctx context.Context, tc TestCase, qids []int64) (int64, error) {
	now := time.Now().UnixMilli()
	tc.Ctime = now
	tc.Utime = now
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.OnConflict{
			DoUpdates: clause.AssignmentColumns([]string{"name", "is_active", "time_to_test", "utime"}),
		}).Create(&tc).Error
		if err != nil {
			return err
		}
		// 全部删除
		if err = tx.Where("tc_id = ?", tc.Id).Delete(&TestCaseQuestion{}).Error; err != nil {
			return err
		}
		if len(qids) == 0 {
			return nil
		}
		// 重新创建
		questions := make([]TestCaseQuestion, 0, len(qids))
		for _, qid := range qids {
			questions = append(questions, TestCaseQuestion{
				TcId:  tc.Id,
				Qid:   qid,
				Ctime: now,
				Utime: now,
			})
		}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&questions).Error
	})
	return tc.Id, err
}

func (g *GORMTestCaseDAO) GetByID(ctx context.Context, id int64) (TestCase, error) {
	var res TestCase
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (g *GORMTestCaseDAO) GetByIDs(ctx context.Context, ids []int64) ([]TestCase, error) {
	var res []TestCase
	err := g.db.WithContext(ctx).Where("id IN ?", ids).Order("id ASC").Find(&res).Error
	return res, err
}

func (g *GORMTestCaseDAO) GetQids(ctx context.Context, id int64) ([]int64, error) {
	var res []int64
	err := g.db.WithContext(ctx).Model(&TestCaseQuestion{}).
		Where("tc_id = ?", id).Order("id ASC").Pluck("qid", &res).Error
	return res, err
}

func (g *GORMTestCaseDAO) GetIDsByQid(ctx context.Context, qid int64) ([]int64, error) {
	var res []int64
	err := g.db.WithContext(ctx).Model(&TestCaseQuestion{}).
		Where("qid = ?", qid).Pluck("tc_id", &res).Error
	return res, err
}

func (g *GORMTestCaseDAO) GetIDsByCid(ctx context.Context, cid int64) ([]int64, error) {
	var res []int64
	err := g.db.WithContext(ctx).Model(&TestCaseQuestion{}).
		Joins("JOIN questions ON questions.id = test_case_questions.qid").
		Where("questions.cid = ?", cid).
		Distinct().Pluck("test_case_questions.tc_id", &res).Error
	return res, err
}

func (g *GORMTestCaseDAO) List(ctx context.Context, q ListQuery) ([]TestCase, error) {
	var res []TestCase
	err := g.buildQuery(ctx, q).Offset(q.Offset).Limit(q.Limit).
		Order("id DESC").Find(&res).Error
	return res, err
}

func (g *GORMTestCaseDAO) Count(ctx context.Context, q ListQuery) (int64, error) {
	var res int64
	err := g.buildQuery(ctx, q).Model(&TestCase{}).Count(&res).Error
	return res, err
}

func (g *GORMTestCaseDAO) buildQuery(ctx context.Context, q ListQuery) *gorm.DB {
	db := g.db.WithContext(ctx)
	if q.IsActive != nil {
		db = db.Where("is_active = ?", *q.IsActive)
	}
	if q.Keyword != "" {
		// 可以按照题目内容来搜索
		qids := g.db.WithContext(ctx).Model(&Question{}).Select("id").Where("content LIKE ?", q.like())
		tcIds := g.db.WithContext(ctx).Model(&TestCaseQuestion{}).Select("tc_id").Where("qid IN (?)", qids)
		db = db.Where(g.db.Where("name LIKE ?", q.like()).Or("id IN (?)", tcIds))
	}
	return db
}

func (g *GORMTestCaseDAO) Delete(ctx context.Context, id int64) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tc_id = ?", id).Delete(&TestCaseQuestion{}).Error; err != nil {
			return err
		}
		if err := tx.Where("tc_id = ?", id).Delete(&AccountTestCase{}).Error; err != nil {
			return err
		}
		if err := tx.Where("tc_id = ?", id).Delete(&Test{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&TestCase{}).Error
	})
}
