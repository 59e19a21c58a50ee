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

//go:generate mockgen -source=./token.go -package=daomocks -destination=mocks/token.mock.go TokenDAO
type TokenDAO interface {
	FindByAccountId(ctx context.Context, accountId int64) ([]Token, error)
	// FindByToken 正常情况下最多一条
	FindByToken(ctx context.Context, token string) ([]Token, error)
	ExistsToken(ctx context.Context, token string) (bool, error)
	Insert(ctx context.Context, t Token) (int64, error)
	// Replace 删除账号的全部令牌，再插入新的令牌
	Replace(ctx context.Context, t Token) (int64, error)
	// FindDuplicatedAccountIds 持有超过一个令牌的账号
	FindDuplicatedAccountIds(ctx context.Context, limit int) ([]int64, error)
}

type GORMTokenDAO struct {
	db *egorm.Component
}

func NewGORMTokenDAO(db *egorm.Component) TokenDAO {
	return &GORMTokenDAO{db: db}
}

func (g *GORMTokenDAO) FindByAccountId(ctx context.Context, accountId int64) ([]Token, error) {
	var res []Token
	err := g.db.WithContext(ctx).Where("account_id = ?", accountId).Order("id ASC").Find(&res).Error
	return res, err
}

func (g *GORMTokenDAO) FindByToken(ctx context.Context, token string) ([]Token, error) {
	var res []Token
	err := g.db.WithContext(ctx).Where("token = ?", token).Find(&res).Error
	return res, err
}

func (g *GORMTokenDAO) ExistsToken(ctx context.Context, token string) (bool, error) {
	var cnt int64
	err := g.db.WithContext(ctx).Model(&Token{}).
		Where("token = ?", token).Count(&cnt).Error
	return cnt > 0, err
}

func (g *GORMTokenDAO) Insert(ctx context.Context, t Token) (int64, error) {
	now := time.Now().UnixMilli()
	t.Ctime = now
	t.Utime = now
	err := g.db.WithContext(ctx).Create(&t).Error
	return t.Id, err
}

func (g *GORMTokenDAO) Replace(ctx context.Context, t Token) (int64, error) {
	now := time.Now().UnixMilli()
	t.Ctime = now
	t.Utime = now
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("account_id = ?", t.AccountId).Delete(&Token{}).Error
		if err != nil {
			return err
		}
		return tx.Create(&t).Error
	})
	return t.Id, err
}

func (g *GORMTokenDAO) FindDuplicatedAccountIds(ctx context.Context, limit int) ([]int64, error) {
	var res []int64
	err := g.db.WithContext(ctx).Model(&Token{}).
		Select("account_id").
		Group("account_id").
		Having("COUNT(id) > ?", 1).
		Limit(limit).
		Pluck("account_id", &res).Error
	return res, err
}
