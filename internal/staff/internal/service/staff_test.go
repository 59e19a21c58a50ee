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

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/ecodeclub/quiz/internal/staff/internal/domain"
	"github.com/ecodeclub/quiz/internal/staff/internal/repository"
	repomocks "github.com/ecodeclub/quiz/internal/staff/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	require.NoError(t, err)
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) repository.StaffRepository
		password string
		wantRes  domain.Staff
		wantErr  error
	}{
		{
			name: "登录成功",
			mock: func(ctrl *gomock.Controller) repository.StaffRepository {
				repo := repomocks.NewMockStaffRepository(ctrl)
				repo.EXPECT().FindByEmail(gomock.Any(), "admin@quiz.com").
					Return(domain.Staff{Id: 1, Email: "admin@quiz.com", Name: "admin", Password: string(hash)}, nil)
				return repo
			},
			password: "123456",
			wantRes:  domain.Staff{Id: 1, Email: "admin@quiz.com", Name: "admin"},
		},
		{
			name: "密码错误",
			mock: func(ctrl *gomock.Controller) repository.StaffRepository {
				repo := repomocks.NewMockStaffRepository(ctrl)
				repo.EXPECT().FindByEmail(gomock.Any(), "admin@quiz.com").
					Return(domain.Staff{Id: 1, Email: "admin@quiz.com", Password: string(hash)}, nil)
				return repo
			},
			password: "654321",
			wantErr:  ErrInvalidCredentials,
		},
		{
			name: "邮箱不存在",
			mock: func(ctrl *gomock.Controller) repository.StaffRepository {
				repo := repomocks.NewMockStaffRepository(ctrl)
				repo.EXPECT().FindByEmail(gomock.Any(), "admin@quiz.com").
					Return(domain.Staff{}, repository.ErrRecordNotFound)
				return repo
			},
			password: "123456",
			wantErr:  ErrInvalidCredentials,
		},
		{
			name: "数据库错误",
			mock: func(ctrl *gomock.Controller) repository.StaffRepository {
				repo := repomocks.NewMockStaffRepository(ctrl)
				repo.EXPECT().FindByEmail(gomock.Any(), "admin@quiz.com").
					Return(domain.Staff{}, errors.New("mock db error"))
				return repo
			},
			password: "123456",
			wantErr:  errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewService(tc.mock(ctrl))
			res, err := svc.Login(context.Background(), "admin@quiz.com", tc.password)
			assert.Equal(t, tc.wantErr, err)
			assert.Equal(t, tc.wantRes, res)
		})
	}
}

func TestService_Seed(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) repository.StaffRepository
		staffs  []domain.Staff
		wantErr error
	}{
		{
			name: "密码哈希之后保存",
			mock: func(ctrl *gomock.Controller) repository.StaffRepository {
				repo := repomocks.NewMockStaffRepository(ctrl)
				repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, s domain.Staff) error {
						assert.Equal(t, "admin@quiz.com", s.Email)
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(s.Password), []byte("123456")))
						return nil
					})
				return repo
			},
			staffs: []domain.Staff{{Email: "admin@quiz.com", Name: "admin", Password: "123456"}},
		},
		{
			name: "没有密码",
			mock: func(ctrl *gomock.Controller) repository.StaffRepository {
				return repomocks.NewMockStaffRepository(ctrl)
			},
			staffs:  []domain.Staff{{Email: "admin@quiz.com"}},
			wantErr: errors.New("工作人员的邮箱和密码不能为空, email: admin@quiz.com"),
		},
		{
			name: "保存失败",
			mock: func(ctrl *gomock.Controller) repository.StaffRepository {
				repo := repomocks.NewMockStaffRepository(ctrl)
				repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(errors.New("mock db error"))
				return repo
			},
			staffs:  []domain.Staff{{Email: "admin@quiz.com", Password: "123456"}},
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewService(tc.mock(ctrl))
			err := svc.Seed(context.Background(), tc.staffs)
			assert.Equal(t, tc.wantErr, err)
		})
	}
}
