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

	"github.com/ecodeclub/quiz/internal/staff/internal/domain"
	"github.com/ecodeclub/quiz/internal/staff/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("邮箱或者密码错误")

//go:generate mockgen -source=./staff.go -package=staffmocks -destination=../../mocks/staff.mock.go Service
type Service interface {
	Login(ctx context.Context, email, password string) (domain.Staff, error)
	Profile(ctx context.Context, id int64) (domain.Staff, error)
	// Seed 用配置里面的明文密码初始化工作人员，已经存在的邮箱会被覆盖
	Seed(ctx context.Context, staffs []domain.Staff) error
}

type service struct {
	repo   repository.StaffRepository
	logger *elog.Component
}

func NewService(repo repository.StaffRepository) Service {
	return &service{
		repo:   repo,
		logger: elog.DefaultLogger,
	}
}

func (s *service) Login(ctx context.Context, email, password string) (domain.Staff, error) {
	staff, err := s.repo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return domain.Staff{}, ErrInvalidCredentials
	}
	if err != nil {
		return domain.Staff{}, err
	}
	err = bcrypt.CompareHashAndPassword([]byte(staff.Password), []byte(password))
	if err != nil {
		return domain.Staff{}, ErrInvalidCredentials
	}
	staff.Password = ""
	return staff, nil
}

func (s *service) Profile(ctx context.Context, id int64) (domain.Staff, error) {
	staff, err := s.repo.FindById(ctx, id)
	staff.Password = ""
	return staff, err
}

func (s *service) Seed(ctx context.Context, staffs []domain.Staff) error {
	for _, staff := range staffs {
		if staff.Email == "" || staff.Password == "" {
			return fmt.Errorf("工作人员的邮箱和密码不能为空, email: %s", staff.Email)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(staff.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		staff.Password = string(hash)
		if err = s.repo.Upsert(ctx, staff); err != nil {
			return err
		}
		s.logger.Info("初始化工作人员", elog.String("email", staff.Email))
	}
	return nil
}
