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

//go:generate mockgen -source=./category.go -package=daomocks -destination=mocks/category.mock.go CategoryDAO
type CategoryDAO interface {
	Save(ctx context.Context, c Category) (int64, error)
	GetByID(ctx context.Context, id int64) (Category, error)
	GetByIDs(ctx context.Context, ids []int64) ([]Category, error)
	List(ctx context.Context, q ListQuery) ([]Category, error)
	Count(ctx context.Context, q ListQuery) (int64, error)
	// Delete 会级联删除分类下的题目和答案
	Delete(ctx context.Context, id int64) error
}

type GORMCategoryDAO struct {
	db *egorm.Component
}

func NewGORMCategoryDAO(db *egorm.Component) CategoryDAO {
	return &GORMCategoryDAO{db: db}
}

func (g *GORMCategoryDAO) Save(ctx context.Context, c Category) (int64, error) {
	now := time.Now().UnixMilli()
	c.Ctime = now
	c.Utime = now
	err := g.db.WithContext(ctx).Clauses(clause.OnConflict{
		DoUpdates: clause.AssignmentColumns([]string{"name", "is_active", "utime"}),
	}).Create(&c).Error
	return c.Id, err
}

func (g *GORMCategoryDAO) GetByID(ctx context.Context, id int64) (Category, error) {
	var res Category
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (g *GORMCategoryDAO) GetByIDs(ctx context.Context, ids []int64) ([]Category, error) {
	var res []Category
	err := g.db.WithContext(ctx).Where("id IN ?", ids).Find(&res).Error
	return res, err
}

func (g *GORMCategoryDAO) List(ctx context.Context, q ListQuery) ([]Category, error) {
	var res []Category
	err := g.buildQuery(ctx, q).Offset(q.Offset).Limit(q.Limit).
		Order("id DESC").Find(&res).Error
	return res, err
}

func (g *GORMCategoryDAO) Count(ctx context.Context, q ListQuery) (int64, error) {
	var res int64
	err := g.buildQuery(ctx, q).Model(&Category{}).Count(&res).Error
	return res, err
}

func (g *GORMCategoryDAO) buildQuery(ctx context.Context, q ListQuery) *gorm.DB {
	db := g.db.WithContext(ctx)
	if q.IsActive != nil {
		db = db.Where("is_active = ?", *q.IsActive)
	}
	if q.Keyword != "" {
		db = db.Where("name LIKE ?", q.like())
	}
	return db
}

func (g *GORMCategoryDAO) Delete(ctx context.Context, id int64) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var qids []int64
		err := tx.Model(&Question{}).Where("cid = ?", id).Pluck("id", &qids).Error
		if err != nil {
			return err
		}
		if len(qids) > 0 {
			if err = deleteQuestions(tx, qids); err != nil {
				return err
			}
		}
		return tx.Where("id = ?", id).Delete(&Category{}).Error
	})
}

// deleteQuestions 删除题目，以及题目的答案和题目与 TestCase 的关联关系
func deleteQuestions(tx *gorm.DB, qids []int64) error {
	if err := tx.Where("qid IN ?", qids).Delete(&Answer{}).Error; err != nil {
		return err
	}
	if err := tx.Where("qid IN ?", qids).Delete(&TestCaseQuestion{}).Error; err != nil {
		return err
	}
	return tx.Where("id IN ?", qids).Delete(&Question{}).Error
}
