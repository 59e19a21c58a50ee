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

	"github.com/ecodeclub/quiz/internal/quiz/internal/repository"
	repomocks "github.com/ecodeclub/quiz/internal/quiz/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCategoryService_Delete(t *testing.T) {
	testCases := []struct {
		name string
		mock func(ctrl *gomock.Controller) (repository.CategoryRepository, repository.TestCaseRepository)
		id   int64

		wantErr error
	}{
		{
			name: "删除分类之后清理包含其题目的 TestCase 缓存",
			mock: func(ctrl *gomock.Controller) (repository.CategoryRepository, repository.TestCaseRepository) {
				repo := repomocks.NewMockCategoryRepository(ctrl)
				tcRepo := repomocks.NewMockTestCaseRepository(ctrl)
				gomock.InOrder(
					tcRepo.EXPECT().GetIDsByCategory(gomock.Any(), int64(3)).Return([]int64{1, 2}, nil),
					repo.EXPECT().Delete(gomock.Any(), int64(3)).Return(nil),
					tcRepo.EXPECT().Evict(gomock.Any(), []int64{1, 2}).Return(nil),
				)
				return repo, tcRepo
			},
			id: 3,
		},
		{
			name: "清理缓存失败不影响删除",
			mock: func(ctrl *gomock.Controller) (repository.CategoryRepository, repository.TestCaseRepository) {
				repo := repomocks.NewMockCategoryRepository(ctrl)
				tcRepo := repomocks.NewMockTestCaseRepository(ctrl)
				tcRepo.EXPECT().GetIDsByCategory(gomock.Any(), int64(3)).Return([]int64{1}, nil)
				repo.EXPECT().Delete(gomock.Any(), int64(3)).Return(nil)
				tcRepo.EXPECT().Evict(gomock.Any(), []int64{1}).Return(errors.New("mock redis error"))
				return repo, tcRepo
			},
			id: 3,
		},
		{
			name: "删除失败不清理缓存",
			mock: func(ctrl *gomock.Controller) (repository.CategoryRepository, repository.TestCaseRepository) {
				repo := repomocks.NewMockCategoryRepository(ctrl)
				tcRepo := repomocks.NewMockTestCaseRepository(ctrl)
				tcRepo.EXPECT().GetIDsByCategory(gomock.Any(), int64(3)).Return([]int64{1}, nil)
				repo.EXPECT().Delete(gomock.Any(), int64(3)).Return(errors.New("mock db error"))
				return repo, tcRepo
			},
			id:      3,
			wantErr: errors.New("mock db error"),
		},
		{
			name: "查找关联的 TestCase 失败",
			mock: func(ctrl *gomock.Controller) (repository.CategoryRepository, repository.TestCaseRepository) {
				repo := repomocks.NewMockCategoryRepository(ctrl)
				tcRepo := repomocks.NewMockTestCaseRepository(ctrl)
				tcRepo.EXPECT().GetIDsByCategory(gomock.Any(), int64(3)).Return(nil, errors.New("mock db error"))
				return repo, tcRepo
			},
			id:      3,
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewCategoryService(tc.mock(ctrl))
			err := svc.Delete(context.Background(), tc.id)
			assert.Equal(t, tc.wantErr, err)
		})
	}
}
