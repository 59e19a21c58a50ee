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
)

//go:generate mockgen -source=./test.go -package=daomocks -destination=mocks/test.mock.go TestDAO
type TestDAO interface {
	// Find 正常情况下最多一条，多于一条是数据不一致
	Find(ctx context.Context, accountId, tcId int64) ([]Test, error)
	FindByAccountId(ctx context.Context, accountId int64) ([]Test, error)
	// Start 只有还没开始过的记录才会被更新，返回是否更新成功
	Start(ctx context.Context, id int64, dateStart int64) (bool, error)

	GetByID(ctx context.Context, id int64) (Test, error)
	List(ctx context.Context, q ListQuery) ([]Test, error)
	Count(ctx context.Context, q ListQuery) (int64, error)
	// Touch 只刷新 utime
	Touch(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

type GORMTestDAO struct {
	db *egorm.Component
}

func NewGORMTestDAO(db *egorm.Component) TestDAO {
	return &GORMTestDAO{db: db}
}

func (g *GORMTestDAO) Find(ctx context.Context, accountId, tcId int64) ([]Test, error) {
	var res []Test
	err := g.db.WithContext(ctx).
		Where("account_id = ? AND tc_id = ?", accountId, tcId).
		Find(&res).Error
	return res, err
}

func (g *GORMTestDAO) FindByAccountId(ctx context.Context, accountId int64) ([]Test, error) {
	var res []Test
	err := g.db.WithContext(ctx).Where("account_id = ?", accountId).
		Order("id ASC").Find(&res).Error
	return res, err
}

func (g *GORMTestDAO) Start(ctx context.Context, id int64, dateStart int64) (bool, error) {
	res := g.db.WithContext(ctx).Model(&Test{}).
		Where("id = ? AND date_start = 0 AND date_end = 0 AND answers = ''", id).
		Updates(map[string]any{
			"date_start": dateStart,
			"utime":      time.Now().UnixMilli(),
		})
	return res.RowsAffected > 0, res.Error
}

func (g *GORMTestDAO) GetByID(ctx context.Context, id int64) (Test, error) {
	var res Test
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (g *GORMTestDAO) List(ctx context.Context, q ListQuery) ([]Test, error) {
	var res []Test
	err := g.buildQuery(ctx, q).Offset(q.Offset).Limit(q.Limit).
		Order("id DESC").Find(&res).Error
	return res, err
}

func (g *GORMTestDAO) Count(ctx context.Context, q ListQuery) (int64, error) {
	var res int64
	err := g.buildQuery(ctx, q).Model(&Test{}).Count(&res).Error
	return res, err
}

func (g *GORMTestDAO) buildQuery(ctx context.Context, q ListQuery) *gorm.DB {
	db := g.db.WithContext(ctx)
	if q.TcId > 0 {
		db = db.Where("tc_id = ?", q.TcId)
	}
	if q.Keyword != "" {
		// 账号的名字，邮箱，还有 TestCase 的名字
		like := q.like()
		accountIds := g.db.WithContext(ctx).Model(&Account{}).Select("id").
			Where("name LIKE ? OR email LIKE ?", like, like)
		tcIds := g.db.WithContext(ctx).Model(&TestCase{}).Select("id").
			Where("name LIKE ?", like)
		db = db.Where(g.db.Where("account_id IN (?)", accountIds).Or("tc_id IN (?)", tcIds))
	}
	return db
}

func (g *GORMTestDAO) Touch(ctx context.Context, id int64) error {
	res := g.db.WithContext(ctx).Model(&Test{}).Where("id = ?", id).
		Update("utime", time.Now().UnixMilli())
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (g *GORMTestDAO) Delete(ctx context.Context, id int64) error {
	return g.db.WithContext(ctx).Where("id = ?", id).Delete(&Test{}).Error
}
