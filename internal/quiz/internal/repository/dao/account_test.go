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
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormMysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T, conn *sql.DB) *gorm.DB {
	db, err := gorm.Open(gormMysql.New(gormMysql.Config{
		Conn: conn,
		// 如果为 false ，则GORM在初始化时，会先调用 show version
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		// 如果为 true ，则不允许 Ping数据库
		DisableAutomaticPing: true,
		// 如果为 false ，则即使是单一语句，也会开启事务
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db
}

func TestGORMAccountDAO_Save(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(t *testing.T) *sql.DB
		acc     Account
		sync    AssignmentSync
		wantId  int64
		wantErr error
	}{
		{
			name: "创建账号并分配",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO `account_tests` .*").
					WillReturnResult(sqlmock.NewResult(3, 1))
				mock.ExpectExec("INSERT INTO `account_test_cases` .*").
					WillReturnResult(sqlmock.NewResult(10, 1))
				mock.ExpectExec("INSERT INTO `tests` .*").
					WillReturnResult(sqlmock.NewResult(20, 1))
				mock.ExpectCommit()
				return mockDB
			},
			acc:    Account{Name: "Tom", Email: "a@b.com", Password: "hash"},
			sync:   AssignmentSync{Create: []int64{5}},
			wantId: 3,
		},
		{
			name: "更新账号没有分配变更",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE `account_tests` .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
				return mockDB
			},
			acc:    Account{Id: 3, Name: "Tom", Email: "a@b.com"},
			wantId: 3,
		},
		{
			name: "更新的账号不存在",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE `account_tests` .*").
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectRollback()
				return mockDB
			},
			acc:     Account{Id: 3, Name: "Tom", Email: "a@b.com"},
			sync:    AssignmentSync{Create: []int64{5}},
			wantErr: ErrRecordNotFound,
		},
		{
			name: "邮箱冲突",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO `account_tests` .*").
					WillReturnError(&mysql.MySQLError{Number: 1062})
				mock.ExpectRollback()
				return mockDB
			},
			acc:     Account{Email: "a@b.com"},
			wantErr: ErrDuplicateEmail,
		},
		{
			name: "分配失败，账号一起回滚",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO `account_tests` .*").
					WillReturnResult(sqlmock.NewResult(3, 1))
				mock.ExpectExec("INSERT INTO `account_test_cases` .*").
					WillReturnError(errors.New("mock db error"))
				mock.ExpectRollback()
				return mockDB
			},
			acc:     Account{Email: "a@b.com", Password: "hash"},
			sync:    AssignmentSync{Create: []int64{5}},
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := NewGORMAccountDAO(newMockDB(t, tc.mock(t)))
			id, err := d.Save(context.Background(), tc.acc, tc.sync)
			assert.Equal(t, tc.wantErr, err)
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantId, id)
		})
	}
}

func TestGORMAccountDAO_GetByEmail(t *testing.T) {
	testCases := []struct {
		name      string
		mock      func(t *testing.T) *sql.DB
		wantEmail string
		wantErr   error
	}{
		{
			name: "查找成功",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				rows := sqlmock.NewRows([]string{"id", "name", "email", "password"}).
					AddRow(1, "Tom", "a@b.com", "hash")
				mock.ExpectQuery("^SELECT \\* FROM `account_tests` WHERE email = \\?").WillReturnRows(rows)
				return mockDB
			},
			wantEmail: "a@b.com",
		},
		{
			name: "查找不存在",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				rows := sqlmock.NewRows([]string{"id", "name", "email", "password"})
				mock.ExpectQuery("^SELECT \\* FROM `account_tests` WHERE email = \\?").WillReturnRows(rows)
				return mockDB
			},
			wantErr: ErrRecordNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := NewGORMAccountDAO(newMockDB(t, tc.mock(t)))
			acc, err := d.GetByEmail(context.Background(), "a@b.com")
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantEmail, acc.Email)
		})
	}
}

func TestGORMAccountDAO_SyncAssignments(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(t *testing.T) *sql.DB
		sync    AssignmentSync
		wantErr error
	}{
		{
			name: "新增和删除",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("DELETE FROM `tests` .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("DELETE FROM `account_test_cases` .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("INSERT INTO `account_test_cases` .*").
					WillReturnResult(sqlmock.NewResult(10, 2))
				mock.ExpectExec("INSERT INTO `tests` .*").
					WillReturnResult(sqlmock.NewResult(20, 2))
				mock.ExpectCommit()
				return mockDB
			},
			sync: AssignmentSync{Create: []int64{3, 4}, Remove: []int64{1}},
		},
		{
			name: "只删除",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("DELETE FROM `tests` .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("DELETE FROM `account_test_cases` .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
				return mockDB
			},
			sync: AssignmentSync{Remove: []int64{1}},
		},
		{
			name: "只补分配关系",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO `account_test_cases` .*").
					WillReturnResult(sqlmock.NewResult(10, 1))
				mock.ExpectCommit()
				return mockDB
			},
			sync: AssignmentSync{Link: []int64{5}},
		},
		{
			name: "插入失败回滚",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO `account_test_cases` .*").
					WillReturnResult(sqlmock.NewResult(10, 1))
				mock.ExpectExec("INSERT INTO `tests` .*").
					WillReturnError(errors.New("mock db error"))
				mock.ExpectRollback()
				return mockDB
			},
			sync:    AssignmentSync{Create: []int64{3}},
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := NewGORMAccountDAO(newMockDB(t, tc.mock(t)))
			err := d.SyncAssignments(context.Background(), 1, tc.sync)
			assert.Equal(t, tc.wantErr, err)
		})
	}
}
