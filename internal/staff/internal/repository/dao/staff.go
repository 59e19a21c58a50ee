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

var ErrRecordNotFound = gorm.ErrRecordNotFound

type StaffDAO interface {
	FindByEmail(ctx context.Context, email string) (Staff, error)
	FindById(ctx context.Context, id int64) (Staff, error)
	// Upsert 按照邮箱插入或者更新
	Upsert(ctx context.Context, s Staff) error
}

type GORMStaffDAO struct {
	db *egorm.Component
}

func NewGORMStaffDAO(db *egorm.Component) StaffDAO {
	return &GORMStaffDAO{db: db}
}

func (g *GORMStaffDAO) FindByEmail(ctx context.Context, email string) (Staff, error) {
	var res Staff
	err := g.db.WithContext(ctx).Where("email = ?", email).First(&res).Error
	return res, err
}

func (g *GORMStaffDAO) FindById(ctx context.Context, id int64) (Staff, error) {
	var res Staff
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (g *GORMStaffDAO) Upsert(ctx context.Context, s Staff) error {
	now := time.Now().UnixMilli()
	s.Ctime = now
	s.Utime = now
	return g.db.WithContext(ctx).Clauses(clause.OnConflict{
		DoUpdates: clause.Assignments(map[string]any{
			"name":     s.Name,
			"password": s.Password,
			"utime":    now,
		}),
	}).Create(&s).Error
}

type Staff struct {
	Id       int64  `gorm:"primaryKey,autoIncrement"`
	Email    string `gorm:"type:varchar(255);uniqueIndex"`
	Name     string `gorm:"type:varchar(255)"`
	Password string `gorm:"type:varchar(255)"`
	Ctime    int64
	Utime    int64
}
