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
	"fmt"

	"github.com/ecodeclub/quiz/internal/quiz/internal/domain"
	"github.com/ecodeclub/quiz/internal/quiz/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/crypto/bcrypt"
)

// maxTokenAttempts 生成令牌的时候遇到冲突最多重试的次数，正常情况下一次就够了
const maxTokenAttempts = 10

//go:generate mockgen -source=./auth.go -package=quizmocks -destination=../../mocks/auth.mock.go AuthService
type AuthService interface {
	// Login 返回的账号带有分配给它的 TestCase
	Login(ctx context.Context, email, password string) (domain.Account, domain.Token, error)
	// Resolve 根据令牌找到账号，找不到返回 ErrNotFound，找到多个返回 ErrAmbiguous
	Resolve(ctx context.Context, token string) (domain.Account, error)
	// IssueToken 已经有唯一的令牌就复用，没有就创建，有多个就全部删掉重新创建
	IssueToken(ctx context.Context, accountId int64) (domain.Token, error)
	// RepairTokens 修复持有多个令牌的账号，返回修复的账号数量
	RepairTokens(ctx context.Context, limit int) (int, error)
}

type authService struct {
	accRepo   repository.AccountRepository
	tokenRepo repository.TokenRepository
	logger    *elog.Component
}

func NewAuthService(accRepo repository.AccountRepository,
	tokenRepo repository.TokenRepository) AuthService {
	return &authService{
		accRepo:   accRepo,
		tokenRepo: tokenRepo,
		logger:    elog.DefaultLogger,
	}
}

func (s *authService) Login(ctx context.Context, email, password string) (domain.Account, domain.Token, error) {
	acc, err := s.accRepo.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return domain.Account{}, domain.Token{}, ErrInvalidCredentials
	}
	if err != nil {
		return domain.Account{}, domain.Token{}, err
	}
	err = bcrypt.CompareHashAndPassword([]byte(acc.Password), []byte(password))
	if err != nil {
		return domain.Account{}, domain.Token{}, ErrInvalidCredentials
	}
	token, err := s.IssueToken(ctx, acc.Id)
	if err != nil {
		return domain.Account{}, domain.Token{}, err
	}
	acc, err = s.accRepo.GetByID(ctx, acc.Id)
	return acc, token, err
}

func (s *authService) Resolve(ctx context.Context, token string) (domain.Account, error) {
	tokens, err := s.tokenRepo.FindByValue(ctx, token)
	if err != nil {
		return domain.Account{}, err
	}
	switch len(tokens) {
	case 0:
		return domain.Account{}, ErrNotFound
	case 1:
	default:
		return domain.Account{}, fmt.Errorf("%w, 令牌对应了 %d 条记录", ErrAmbiguous, len(tokens))
	}
	acc, err := s.accRepo.GetByID(ctx, tokens[0].AccountId)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return domain.Account{}, ErrNotFound
	}
	return acc, err
}

func (s *authService) IssueToken(ctx context.Context, accountId int64) (domain.Token, error) {
	tokens, err := s.tokenRepo.FindByAccountId(ctx, accountId)
	if err != nil {
		return domain.Token{}, err
	}
	switch len(tokens) {
	case 1:
		return tokens[0], nil
	case 0:
		return s.createToken(ctx, accountId, s.tokenRepo.Create)
	default:
		s.logger.Warn("账号持有多个令牌，重新生成",
			elog.Int64("accountId", accountId),
			elog.Int("cnt", len(tokens)))
		return s.createToken(ctx, accountId, s.tokenRepo.Replace)
	}
}

func (s *authService) createToken(ctx context.Context, accountId int64,
	save func(ctx context.Context, t domain.Token) (int64, error)) (domain.Token, error) {
	value, err := s.uniqueValue(ctx)
	if err != nil {
		return domain.Token{}, err
	}
	t := domain.Token{AccountId: accountId, Value: value}
	t.Id, err = save(ctx, t)
	return t, err
}

// uniqueValue 一直生成到没有别的记录持有同样的值为止，兜底依赖唯一索引
func (s *authService) uniqueValue(ctx context.Context) (string, error) {
	for i := 0; i < maxTokenAttempts; i++ {
		value, err := domain.NewTokenValue()
		if err != nil {
			return "", err
		}
		exists, err := s.tokenRepo.Exists(ctx, value)
		if err != nil {
			return "", err
		}
		if !exists {
			return value, nil
		}
	}
	return "", fmt.Errorf("生成令牌失败，重试 %d 次仍然冲突", maxTokenAttempts)
}

func (s *authService) RepairTokens(ctx context.Context, limit int) (int, error) {
	ids, err := s.tokenRepo.FindDuplicatedAccountIds(ctx, limit)
	if err != nil {
		return 0, err
	}
	cnt := 0
	for _, id := range ids {
		_, err = s.createToken(ctx, id, s.tokenRepo.Replace)
		if err != nil {
			return cnt, err
		}
		cnt++
	}
	return cnt, nil
}
