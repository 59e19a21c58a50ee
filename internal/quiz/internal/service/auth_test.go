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

	"github.com/ecodeclub/quiz/internal/quiz/internal/domain"
	"github.com/ecodeclub/quiz/internal/quiz/internal/repository"
	repomocks "github.com/ecodeclub/quiz/internal/quiz/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hello#world123"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := domain.Account{Id: 1, Name: "Tom", Email: "tom@example.com", Password: string(hash)}

	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) (repository.AccountRepository, repository.TokenRepository)
		email    string
		password string

		wantAcc   domain.Account
		wantToken domain.Token
		wantErr   error
	}{
		{
			name: "登录成功，复用已有的令牌",
			mock: func(ctrl *gomock.Controller) (repository.AccountRepository, repository.TokenRepository) {
				accRepo := repomocks.NewMockAccountRepository(ctrl)
				tokenRepo := repomocks.NewMockTokenRepository(ctrl)
				accRepo.EXPECT().GetByEmail(gomock.Any(), "tom@example.com").Return(stored, nil)
				tokenRepo.EXPECT().FindByAccountId(gomock.Any(), int64(1)).
					Return([]domain.Token{{Id: 2, AccountId: 1, Value: "abc"}}, nil)
				accRepo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(domain.Account{
					Id: 1, Name: "Tom", Email: "tom@example.com",
					Tests: []domain.TestCase{{Id: 3, Name: "Go"}},
				}, nil)
				return accRepo, tokenRepo
			},
			email:    "tom@example.com",
			password: "hello#world123",
			wantAcc: domain.Account{
				Id: 1, Name: "Tom", Email: "tom@example.com",
				Tests: []domain.TestCase{{Id: 3, Name: "Go"}},
			},
			wantToken: domain.Token{Id: 2, AccountId: 1, Value: "abc"},
		},
		{
			name: "密码错误",
			mock: func(ctrl *gomock.Controller) (repository.AccountRepository, repository.TokenRepository) {
				accRepo := repomocks.NewMockAccountRepository(ctrl)
				tokenRepo := repomocks.NewMockTokenRepository(ctrl)
				accRepo.EXPECT().GetByEmail(gomock.Any(), "tom@example.com").Return(stored, nil)
				return accRepo, tokenRepo
			},
			email:    "tom@example.com",
			password: "wrong",
			wantErr:  ErrInvalidCredentials,
		},
		{
			name: "邮箱不存在",
			mock: func(ctrl *gomock.Controller) (repository.AccountRepository, repository.TokenRepository) {
				accRepo := repomocks.NewMockAccountRepository(ctrl)
				tokenRepo := repomocks.NewMockTokenRepository(ctrl)
				accRepo.EXPECT().GetByEmail(gomock.Any(), "jerry@example.com").
					Return(domain.Account{}, repository.ErrRecordNotFound)
				return accRepo, tokenRepo
			},
			email:    "jerry@example.com",
			password: "hello#world123",
			wantErr:  ErrInvalidCredentials,
		},
		{
			name: "查询账号出错",
			mock: func(ctrl *gomock.Controller) (repository.AccountRepository, repository.TokenRepository) {
				accRepo := repomocks.NewMockAccountRepository(ctrl)
				tokenRepo := repomocks.NewMockTokenRepository(ctrl)
				accRepo.EXPECT().GetByEmail(gomock.Any(), "tom@example.com").
					Return(domain.Account{}, errors.New("mock db error"))
				return accRepo, tokenRepo
			},
			email:    "tom@example.com",
			password: "hello#world123",
			wantErr:  errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewAuthService(tc.mock(ctrl))
			acc, token, err := svc.Login(context.Background(), tc.email, tc.password)
			assert.Equal(t, tc.wantErr, err)
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantAcc, acc)
			assert.Equal(t, tc.wantToken, token)
		})
	}
}

func TestAuthService_IssueToken(t *testing.T) {
	testCases := []struct {
		name string
		mock func(ctrl *gomock.Controller) repository.TokenRepository

		wantId  int64
		wantErr error
	}{
		{
			name: "没有令牌，创建新的",
			mock: func(ctrl *gomock.Controller) repository.TokenRepository {
				repo := repomocks.NewMockTokenRepository(ctrl)
				repo.EXPECT().FindByAccountId(gomock.Any(), int64(1)).Return(nil, nil)
				repo.EXPECT().Exists(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, t domain.Token) (int64, error) {
						if t.AccountId != 1 || len(t.Value) != domain.TokenLength {
							return 0, errors.New("令牌不对")
						}
						return 11, nil
					})
				return repo
			},
			wantId: 11,
		},
		{
			name: "已有多个令牌，全部替换",
			mock: func(ctrl *gomock.Controller) repository.TokenRepository {
				repo := repomocks.NewMockTokenRepository(ctrl)
				repo.EXPECT().FindByAccountId(gomock.Any(), int64(1)).Return([]domain.Token{
					{Id: 2, AccountId: 1, Value: "a"},
					{Id: 3, AccountId: 1, Value: "b"},
				}, nil)
				repo.EXPECT().Exists(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().Replace(gomock.Any(), gomock.Any()).Return(int64(12), nil)
				return repo
			},
			wantId: 12,
		},
		{
			name: "生成的令牌冲突，重试",
			mock: func(ctrl *gomock.Controller) repository.TokenRepository {
				repo := repomocks.NewMockTokenRepository(ctrl)
				repo.EXPECT().FindByAccountId(gomock.Any(), int64(1)).Return(nil, nil)
				gomock.InOrder(
					repo.EXPECT().Exists(gomock.Any(), gomock.Any()).Return(true, nil),
					repo.EXPECT().Exists(gomock.Any(), gomock.Any()).Return(false, nil),
				)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(13), nil)
				return repo
			},
			wantId: 13,
		},
		{
			name: "一直冲突",
			mock: func(ctrl *gomock.Controller) repository.TokenRepository {
				repo := repomocks.NewMockTokenRepository(ctrl)
				repo.EXPECT().FindByAccountId(gomock.Any(), int64(1)).Return(nil, nil)
				repo.EXPECT().Exists(gomock.Any(), gomock.Any()).Return(true, nil).Times(maxTokenAttempts)
				return repo
			},
			wantErr: errors.New("生成令牌失败，重试 10 次仍然冲突"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewAuthService(repomocks.NewMockAccountRepository(ctrl), tc.mock(ctrl))
			token, err := svc.IssueToken(context.Background(), 1)
			if tc.wantErr != nil {
				assert.EqualError(t, err, tc.wantErr.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantId, token.Id)
			assert.Equal(t, int64(1), token.AccountId)
			assert.Len(t, token.Value, domain.TokenLength)
		})
	}
}

func TestAuthService_Resolve(t *testing.T) {
	testCases := []struct {
		name string
		mock func(ctrl *gomock.Controller) (repository.AccountRepository, repository.TokenRepository)

		wantAcc domain.Account
		wantErr error
	}{
		{
			name: "找到账号",
			mock: func(ctrl *gomock.Controller) (repository.AccountRepository, repository.TokenRepository) {
				accRepo := repomocks.NewMockAccountRepository(ctrl)
				tokenRepo := repomocks.NewMockTokenRepository(ctrl)
				tokenRepo.EXPECT().FindByValue(gomock.Any(), "abc").
					Return([]domain.Token{{Id: 2, AccountId: 1, Value: "abc"}}, nil)
				accRepo.EXPECT().GetByID(gomock.Any(), int64(1)).
					Return(domain.Account{Id: 1, Name: "Tom"}, nil)
				return accRepo, tokenRepo
			},
			wantAcc: domain.Account{Id: 1, Name: "Tom"},
		},
		{
			name: "令牌不存在",
			mock: func(ctrl *gomock.Controller) (repository.AccountRepository, repository.TokenRepository) {
				tokenRepo := repomocks.NewMockTokenRepository(ctrl)
				tokenRepo.EXPECT().FindByValue(gomock.Any(), "abc").Return(nil, nil)
				return repomocks.NewMockAccountRepository(ctrl), tokenRepo
			},
			wantErr: ErrNotFound,
		},
		{
			name: "令牌对应多条记录",
			mock: func(ctrl *gomock.Controller) (repository.AccountRepository, repository.TokenRepository) {
				tokenRepo := repomocks.NewMockTokenRepository(ctrl)
				tokenRepo.EXPECT().FindByValue(gomock.Any(), "abc").Return([]domain.Token{
					{Id: 2, AccountId: 1, Value: "abc"},
					{Id: 3, AccountId: 4, Value: "abc"},
				}, nil)
				return repomocks.NewMockAccountRepository(ctrl), tokenRepo
			},
			wantErr: ErrAmbiguous,
		},
		{
			name: "账号已经被删除",
			mock: func(ctrl *gomock.Controller) (repository.AccountRepository, repository.TokenRepository) {
				accRepo := repomocks.NewMockAccountRepository(ctrl)
				tokenRepo := repomocks.NewMockTokenRepository(ctrl)
				tokenRepo.EXPECT().FindByValue(gomock.Any(), "abc").
					Return([]domain.Token{{Id: 2, AccountId: 1, Value: "abc"}}, nil)
				accRepo.EXPECT().GetByID(gomock.Any(), int64(1)).
					Return(domain.Account{}, repository.ErrRecordNotFound)
				return accRepo, tokenRepo
			},
			wantErr: ErrNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewAuthService(tc.mock(ctrl))
			acc, err := svc.Resolve(context.Background(), "abc")
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantAcc, acc)
		})
	}
}

func TestAuthService_RepairTokens(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	tokenRepo := repomocks.NewMockTokenRepository(ctrl)
	tokenRepo.EXPECT().FindDuplicatedAccountIds(gomock.Any(), 100).Return([]int64{1, 2}, nil)
	tokenRepo.EXPECT().Exists(gomock.Any(), gomock.Any()).Return(false, nil).Times(2)
	tokenRepo.EXPECT().Replace(gomock.Any(), gomock.Any()).Return(int64(10), nil).Times(2)

	svc := NewAuthService(repomocks.NewMockAccountRepository(ctrl), tokenRepo)
	cnt, err := svc.RepairTokens(context.Background(), 100)
	require.NoError(t, err)
	assert.Equal(t, 2, cnt)
}
