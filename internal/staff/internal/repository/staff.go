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

	"github.com/ecodeclub/quiz/internal/staff/internal/domain"
	"github.com/ecodeclub/quiz/internal/staff/internal/repository/dao"
)

var ErrRecordNotFound = dao.ErrRecordNotFound

//go:generate mockgen -source=./staff.go -package=repomocks -destination=mocks/staff.mock.go StaffRepository
type StaffRepository interface {
	FindByEmail(ctx context.Context, email string) (domain.Staff, error)
	FindById(ctx context.Context, id int64) (domain.Staff, error)
	Upsert(ctx context.Context, s domain.Staff) error
}

type staffRepository struct {
	dao dao.StaffDAO
}

func NewStaffRepository(d dao.StaffDAO) StaffRepository {
	return &staffRepository{dao: d}
}

func (repo *staffRepository) FindByEmail(ctx context.Context, email string) (domain.Staff, error) {
	s, err := repo.dao.FindByEmail(ctx, email)
	return repo.toDomain(s), err
}

func (repo *staffRepository) FindById(ctx context.Context, id int64) (domain.Staff, error) {
	s, err := repo.dao.FindById(ctx, id)
	return repo.toDomain(s), err
}

func (repo *staffRepository) Upsert(ctx context.Context, s domain.Staff) error {
	return repo.dao.Upsert(ctx, dao.Staff{
		Email:    s.Email,
		Name:     s.Name,
		Password: s.Password,
	})
}

func (repo *staffRepository) toDomain(s dao.Staff) domain.Staff {
	return domain.Staff{
		Id:       s.Id,
		Email:    s.Email,
		Name:     s.Name,
		Password: s.Password,
		Ctime:    s.Ctime,
	}
}
