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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/quiz/internal/quiz/internal/domain"
	"github.com/ecodeclub/quiz/internal/quiz/internal/repository/dao"
)

//go:generate mockgen -source=./token.go -package=repomocks -destination=mocks/token.mock.go TokenRepository
type TokenRepository interface {
	FindByAccountId(ctx context.Context, accountId int64) ([]domain.Token, error)
	FindByValue(ctx context.Context, value string) ([]domain.Token, error)
	Exists(ctx context.Context, value string) (bool, error)
	Create(ctx context.Context, t domain.Token) (int64, error)
	// Replace 删除账号所有的令牌，保存新的令牌
	Replace(ctx context.Context, t domain.Token) (int64, error)
	FindDuplicatedAccountIds(ctx context.Context, limit int) ([]int64, error)
}

type tokenRepository struct {
	dao dao.TokenDAO
}

func NewTokenRepository(d dao.TokenDAO) TokenRepository {
	return &tokenRepository{dao: d}
}

func (repo *tokenRepository) FindByAccountId(ctx context.Context, accountId int64) ([]domain.Token, error) {
	res, err := repo.dao.FindByAccountId(ctx, accountId)
	return repo.toDomains(res), err
}

func (repo *tokenRepository) FindByValue(ctx context.Context, value string) ([]domain.Token, error) {
	res, err := repo.dao.FindByToken(ctx, value)
	return repo.toDomains(res), err
}

func (repo *tokenRepository) Exists(ctx context.Context, value string) (bool, error) {
	return repo.dao.ExistsToken(ctx, value)
}

func (repo *tokenRepository) Create(ctx context.Context, t domain.Token) (int64, error) {
	return repo.dao.Insert(ctx, repo.toEntity(t))
}

func (repo *tokenRepository) Replace(ctx context.Context, t domain.Token) (int64, error) {
	return repo.dao.Replace(ctx, repo.toEntity(t))
}

func (repo *tokenRepository) FindDuplicatedAccountIds(ctx context.Context, limit int) ([]int64, error) {
	return repo.dao.FindDuplicatedAccountIds(ctx, limit)
}

func (repo *tokenRepository) toEntity(t domain.Token) dao.Token {
	return dao.Token{
		Id:        t.Id,
		AccountId: t.AccountId,
		Token:     t.Value,
	}
}

func (repo *tokenRepository) toDomains(ts []dao.Token) []domain.Token {
	return slice.Map(ts, func(idx int, src dao.Token) domain.Token {
		return domain.Token{
			Id:        src.Id,
			AccountId: src.AccountId,
			Value:     src.Token,
		}
	})
}
