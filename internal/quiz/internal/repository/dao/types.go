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
	"errors"

	"gorm.io/gorm"
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	// ErrDuplicateEmail 测试账号的邮箱是唯一的
	ErrDuplicateEmail = errors.New("邮箱冲突")
)

const uniqueIndexErrNo uint16 = 1062

type Category struct {
	Id       int64  `gorm:"primaryKey,autoIncrement"`
	Name     string `gorm:"type:varchar(255)"`
	IsActive bool   `gorm:"index"`
	Ctime    int64
	Utime    int64
}

type Question struct {
	Id     int64 `gorm:"primaryKey,autoIncrement"`
	Degree uint8 `gorm:"type:tinyint(3);index;comment:1-Junior 2-Middle 3-Senior 4-Other"`
	// 分类 ID
	Cid      int64 `gorm:"index"`
	Content  string
	IsActive bool `gorm:"index"`
	Ctime    int64
	Utime    int64
}

type Answer struct {
	Id      int64 `gorm:"primaryKey,autoIncrement"`
	Qid     int64 `gorm:"index"`
	Content string
	IsValid bool
	Ctime   int64
	Utime   int64
}

type TestCase struct {
	Id       int64  `gorm:"primaryKey,autoIncrement"`
	Name     string `gorm:"type:varchar(255)"`
	IsActive bool   `gorm:"index"`
	// TimeToTest 单位是秒
	TimeToTest int64
	Ctime      int64
	Utime      int64
}

type TestCaseQuestion struct {
	Id    int64 `gorm:"primaryKey,autoIncrement"`
	TcId  int64 `gorm:"uniqueIndex:tc_qid"`
	Qid   int64 `gorm:"uniqueIndex:tc_qid;index"`
	Ctime int64
	Utime int64
}

type Account struct {
	Id          int64  `gorm:"primaryKey,autoIncrement"`
	Name        string `gorm:"type:varchar(255)"`
	Email       string `gorm:"type:varchar(255);uniqueIndex"`
	Information string
	// Password bcrypt 之后的结果
	Password string `gorm:"type:varchar(255)"`
	Ctime    int64
	Utime    int64
}

func (Account) TableName() string {
	return "account_tests"
}

// AccountTestCase 账号和 TestCase 的分配关系
type AccountTestCase struct {
	Id        int64 `gorm:"primaryKey,autoIncrement"`
	AccountId int64 `gorm:"uniqueIndex:account_tc"`
	TcId      int64 `gorm:"uniqueIndex:account_tc;index"`
	Ctime     int64
	Utime     int64
}

type Token struct {
	Id int64 `gorm:"primaryKey,autoIncrement"`
	// 这里故意不用唯一索引，出现多条的时候由 service 修复
	AccountId int64  `gorm:"index"`
	Token     string `gorm:"type:varchar(64);uniqueIndex"`
	Ctime     int64
	Utime     int64
}

// Test 作答记录
type Test struct {
	Id        int64 `gorm:"primaryKey,autoIncrement"`
	AccountId int64 `gorm:"index:account_tc"`
	TcId      int64 `gorm:"index:account_tc;index"`
	// DateStart 和 DateEnd 是毫秒数，0 表示没有设置
	DateStart int64
	DateEnd   int64
	Answers   string
	Ctime     int64
	Utime     int64
}

// ListQuery 管理后台列表的通用查询条件，零值表示不过滤
type ListQuery struct {
	Offset  int
	Limit   int
	Keyword string
	// IsActive 为 nil 表示不过滤
	IsActive *bool
	Degree   uint8
	Cid      int64
	TcId     int64
}

func (q ListQuery) like() string {
	return "%" + q.Keyword + "%"
}
