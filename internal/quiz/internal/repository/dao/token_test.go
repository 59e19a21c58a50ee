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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGORMTokenDAO_Replace(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(t *testing.T) *sql.DB
		wantId  int64
		wantErr error
	}{
		{
			name: "替换成功",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("DELETE FROM `tokens` .*").
					WillReturnResult(sqlmock.NewResult(0, 2))
				mock.ExpectExec("INSERT INTO `tokens` .*").
					WillReturnResult(sqlmock.NewResult(5, 1))
				mock.ExpectCommit()
				return mockDB
			},
			wantId: 5,
		},
		{
			name: "删除失败",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("DELETE FROM `tokens` .*").
					WillReturnError(errors.New("mock db error"))
				mock.ExpectRollback()
				return mockDB
			},
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := NewGORMTokenDAO(newMockDB(t, tc.mock(t)))
			id, err := d.Replace(context.Background(), Token{AccountId: 1, Token: "abc"})
			assert.Equal(t, tc.wantErr, err)
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantId, id)
		})
	}
}

func TestGORMTokenDAO_ExistsToken(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(t *testing.T) *sql.DB
		wantRes bool
	}{
		{
			name: "存在",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				rows := sqlmock.NewRows([]string{"count"}).AddRow(1)
				mock.ExpectQuery("SELECT count\\(\\*\\) FROM `tokens` WHERE token = \\?").
					WillReturnRows(rows)
				return mockDB
			},
			wantRes: true,
		},
		{
			name: "不存在",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				rows := sqlmock.NewRows([]string{"count"}).AddRow(0)
				mock.ExpectQuery("SELECT count\\(\\*\\) FROM `tokens` WHERE token = \\?").
					WillReturnRows(rows)
				return mockDB
			},
			wantRes: false,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := NewGORMTokenDAO(newMockDB(t, tc.mock(t)))
			res, err := d.ExistsToken(context.Background(), "abc")
			require.NoError(t, err)
			assert.Equal(t, tc.wantRes, res)
		})
	}
}

func TestGORMTokenDAO_FindByToken(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	rows := sqlmock.NewRows([]string{"id", "account_id", "token"}).
		AddRow(1, 2, "abc").
		AddRow(3, 4, "abc")
	mock.ExpectQuery("^SELECT \\* FROM `tokens` WHERE token = \\?").WillReturnRows(rows)

	d := NewGORMTokenDAO(newMockDB(t, mockDB))
	res, err := d.FindByToken(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, []Token{
		{Id: 1, AccountId: 2, Token: "abc"},
		{Id: 3, AccountId: 4, Token: "abc"},
	}, res)
}
