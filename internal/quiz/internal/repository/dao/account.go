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
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=./account.go -package=daomocks -destination=mocks/account.mock.go AccountDAO
type AccountDAO interface {
	// Save id 为 0 的时候创建，否则更新，密码为空的时候不会更新密码。
	// 账号和分配关系在同一个事务里面保存
	Save(ctx context.Context, acc Account, sync AssignmentSync) (int64, error)
	GetByID(ctx context.Context, id int64) (Account, error)
	GetByEmail(ctx context.Context, email string) (Account, error)
	GetByIDs(ctx context.Context, ids []int64) ([]Account, error)
	List(ctx context.Context, q ListQuery) ([]Account, error)
	Count(ctx context.Context, q ListQuery) (int64, error)
	// Delete 同时删除令牌，分配关系和作答记录
	Delete(ctx context.Context, id int64) error

	GetTcIds(ctx context.Context, accountId int64) ([]int64, error)
	// SyncAssignments 在一个事务里面完成分配关系和作答记录的同步
	SyncAssignments(ctx context.Context, accountId int64, sync AssignmentSync) error
}

// AssignmentSync 分配关系的变更
type AssignmentSync struct {
	// Create 同时创建分配关系和 Test
	Create []int64
	// Remove 同时删除分配关系和 Test
	Remove []int64
	// Link 已经有 Test，只补上分配关系
	Link []int64
}

func (s AssignmentSync) Empty() bool {
	return len(s.Create) == 0 && len(s.Remove) == 0 && len(s.Link) == 0
}

type GORMAccountDAO struct {
	db *egorm.Component
}

func NewGORMAccountDAO(db *egorm.Component) AccountDAO {
	return &GORMAccountDAO{db: db}
}

func (g *GORMAccountDAO) Save(ctx context.Context, acc Account, sync AssignmentSync) (int64, error) {
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if acc.Id > 0 {
			err = g.update(tx, acc)
		} else {
			acc.Id, err = g.insert(tx, acc)
		}
		if err != nil {
			return err
		}
		return g.syncAssignments(tx, acc.Id, sync)
	})
	return acc.Id, err
}

func (g *GORMAccountDAO) insert(tx *gorm.DB, acc Account) (int64, error) {
	now := time.Now().UnixMilli()
	acc.Ctime = now
	acc.Utime = now
	err := tx.Create(&acc).Error
	return acc.Id, g.wrapDuplicate(err)
}

func (g *GORMAccountDAO) update(tx *gorm.DB, acc Account) error {
	columns := []string{"name", "email", "information", "utime"}
	if acc.Password != "" {
		columns = append(columns, "password")
	}
	acc.Utime = time.Now().UnixMilli()
	res := tx.Model(&acc).Select(columns).
		Where("id = ?", acc.Id).Updates(&acc)
	if res.Error != nil {
		return g.wrapDuplicate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (g *GORMAccountDAO) wrapDuplicate(err error) error {
	var me *mysql.MySQLError
	if errors.As(err, &me) && me.Number == uniqueIndexErrNo {
		return ErrDuplicateEmail
	}
	return err
}

func (g *GORMAccountDAO) GetByID(ctx context.Context, id int64) (Account, error) {
	var res Account
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (g *GORMAccountDAO) GetByEmail(ctx context.Context, email string) (Account, error) {
	var res Account
	err := g.db.WithContext(ctx).Where("email = ?", email).First(&res).Error
	return res, err
}

func (g *GORMAccountDAO) GetByIDs(ctx context.Context, ids []int64) ([]Account, error) {
	var res []Account
	err := g.db.WithContext(ctx).Where("id IN ?", ids).Find(&res).Error
	return res, err
}

func (g *GORMAccountDAO) List(ctx context.Context, q ListQuery) ([]Account, error) {
	var res []Account
	err := g.buildQuery(ctx, q).Offset(q.Offset).Limit(q.Limit).
		Order("id DESC").Find(&res).Error
	return res, err
}

func (g *GORMAccountDAO) Count(ctx context.Context, q ListQuery) (int64, error) {
	var res int64
	err := g.buildQuery(ctx, q).Model(&Account{}).Count(&res).Error
	return res, err
}

func (g *GORMAccountDAO) buildQuery(ctx context.Context, q ListQuery) *gorm.DB {
	db := g.db.WithContext(ctx)
	if q.Keyword != "" {
		like := q.like()
		db = db.Where("name LIKE ? OR email LIKE ? OR information LIKE ?", like, like, like)
	}
	return db
}

func (g *GORMAccountDAO) Delete(ctx context.Context, id int64) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("account_id = ?", id).Delete(&Token{}).Error; err != nil {
			return err
		}
		if err := tx.Where("account_id = ?", id).Delete(&AccountTestCase{}).Error; err != nil {
			return err
		}
		if err := tx.Where("account_id = ?", id).Delete(&Test{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&Account{}).Error
	})
}

func (g *GORMAccountDAO) GetTcIds(ctx context.Context, accountId int64) ([]int64, error) {
	var res []int64
	err := g.db.WithContext(ctx).Model(&AccountTestCase{}).
		Where("account_id = ?", accountId).Order("id ASC").Pluck("tc_id", &res).Error
	return res, err
}

func (g *GORMAccountDAO) SyncAssignments(ctx context.Context, accountId int64, sync AssignmentSync) error {
	if sync.Empty() {
		return nil
	}
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return g.syncAssignments(tx, accountId, sync)
	})
}

func (g *GORMAccountDAO) syncAssignments(tx *gorm.DB, accountId int64, sync AssignmentSync) error {
	now := time.Now().UnixMilli()
	if len(sync.Remove) > 0 {
		// 进行中的作答也会被一并删除
		err := tx.Where("account_id = ? AND tc_id IN ?", accountId, sync.Remove).Delete(&Test{}).Error
		if err != nil {
			return err
		}
		err = tx.Where("account_id = ? AND tc_id IN ?", accountId, sync.Remove).Delete(&AccountTestCase{}).Error
		if err != nil {
			return err
		}
	}
	links := make([]AccountTestCase, 0, len(sync.Create)+len(sync.Link))
	for _, tcId := range sync.Create {
		links = append(links, AccountTestCase{AccountId: accountId, TcId: tcId, Ctime: now, Utime: now})
	}
	for _, tcId := range sync.Link {
		links = append(links, AccountTestCase{AccountId: accountId, TcId: tcId, Ctime: now, Utime: now})
	}
	if len(links) == 0 {
		return nil
	}
	// 分配关系可能已经存在了
	err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&links).Error
	if err != nil || len(sync.Create) == 0 {
		return err
	}
	tests := make([]Test, 0, len(sync.Create))
	for _, tcId := range sync.Create {
		tests = append(tests, Test{AccountId: accountId, TcId: tcId, Ctime: now, Utime: now})
	}
	return tx.Create(&tests).Error
}
