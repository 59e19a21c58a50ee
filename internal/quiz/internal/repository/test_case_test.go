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
	"errors"
	"testing"
	"time"

	"github.com/ecodeclub/quiz/internal/quiz/internal/domain"
	"github.com/ecodeclub/quiz/internal/quiz/internal/repository/cache"
	cachemocks "github.com/ecodeclub/quiz/internal/quiz/internal/repository/cache/mocks"
	"github.com/ecodeclub/quiz/internal/quiz/internal/repository/dao"
	daomocks "github.com/ecodeclub/quiz/internal/quiz/internal/repository/dao/mocks"
	repomocks "github.com/ecodeclub/quiz/internal/quiz/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCachedTestCaseRepository_GetWithQuestions(t *testing.T) {
	// 数据库里面只保存了毫秒
	utime := time.UnixMilli(time.Now().UnixMilli())
	questions := []domain.Question{
		{
			Id:      4,
			Content: "Go 的零值",
			Answers: []domain.Answer{{Id: 5, Qid: 4, Content: "nil", IsValid: true}},
		},
	}
	wantTc := domain.TestCase{
		Id:         3,
		Name:       "Go 基础",
		IsActive:   true,
		TimeToTest: 90 * time.Minute,
		Questions:  questions,
		Utime:      utime,
	}

	testCases := []struct {
		name string
		mock func(ctrl *gomock.Controller) (dao.TestCaseDAO, QuestionRepository, cache.TestCaseCache)

		wantTc  domain.TestCase
		wantErr error
	}{
		{
			name: "命中缓存",
			mock: func(ctrl *gomock.Controller) (dao.TestCaseDAO, QuestionRepository, cache.TestCaseCache) {
				c := cachemocks.NewMockTestCaseCache(ctrl)
				c.EXPECT().Get(gomock.Any(), int64(3)).Return(wantTc, nil)
				return daomocks.NewMockTestCaseDAO(ctrl), repomocks.NewMockQuestionRepository(ctrl), c
			},
			wantTc: wantTc,
		},
		{
			name: "没有命中缓存，回写缓存",
			mock: func(ctrl *gomock.Controller) (dao.TestCaseDAO, QuestionRepository, cache.TestCaseCache) {
				c := cachemocks.NewMockTestCaseCache(ctrl)
				d := daomocks.NewMockTestCaseDAO(ctrl)
				qRepo := repomocks.NewMockQuestionRepository(ctrl)
				c.EXPECT().Get(gomock.Any(), int64(3)).Return(domain.TestCase{}, cache.ErrTestCaseNotFound)
				d.EXPECT().GetByID(gomock.Any(), int64(3)).Return(dao.TestCase{
					Id: 3, Name: "Go 基础", IsActive: true, TimeToTest: 5400, Utime: utime.UnixMilli(),
				}, nil)
				d.EXPECT().GetQids(gomock.Any(), int64(3)).Return([]int64{4}, nil)
				qRepo.EXPECT().GetByIDsWithAnswers(gomock.Any(), []int64{4}).Return(questions, nil)
				c.EXPECT().Set(gomock.Any(), wantTc).Return(nil)
				return d, qRepo, c
			},
			wantTc: wantTc,
		},
		{
			name: "回写缓存失败",
			mock: func(ctrl *gomock.Controller) (dao.TestCaseDAO, QuestionRepository, cache.TestCaseCache) {
				c := cachemocks.NewMockTestCaseCache(ctrl)
				d := daomocks.NewMockTestCaseDAO(ctrl)
				qRepo := repomocks.NewMockQuestionRepository(ctrl)
				c.EXPECT().Get(gomock.Any(), int64(3)).Return(domain.TestCase{}, errors.New("mock redis error"))
				d.EXPECT().GetByID(gomock.Any(), int64(3)).Return(dao.TestCase{
					Id: 3, Name: "Go 基础", IsActive: true, TimeToTest: 5400, Utime: utime.UnixMilli(),
				}, nil)
				d.EXPECT().GetQids(gomock.Any(), int64(3)).Return([]int64{4}, nil)
				qRepo.EXPECT().GetByIDsWithAnswers(gomock.Any(), []int64{4}).Return(questions, nil)
				c.EXPECT().Set(gomock.Any(), wantTc).Return(errors.New("mock redis error"))
				return d, qRepo, c
			},
			wantTc: wantTc,
		},
		{
			name: "TestCase 不存在",
			mock: func(ctrl *gomock.Controller) (dao.TestCaseDAO, QuestionRepository, cache.TestCaseCache) {
				c := cachemocks.NewMockTestCaseCache(ctrl)
				d := daomocks.NewMockTestCaseDAO(ctrl)
				c.EXPECT().Get(gomock.Any(), int64(3)).Return(domain.TestCase{}, cache.ErrTestCaseNotFound)
				d.EXPECT().GetByID(gomock.Any(), int64(3)).Return(dao.TestCase{}, ErrRecordNotFound)
				return d, repomocks.NewMockQuestionRepository(ctrl), c
			},
			wantErr: ErrRecordNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := NewCachedTestCaseRepository(tc.mock(ctrl))
			res, err := repo.GetWithQuestions(context.Background(), 3)
			assert.Equal(t, tc.wantErr, err)
			assert.Equal(t, tc.wantTc, res)
		})
	}
}

func TestCachedTestCaseRepository_Evict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	c := cachemocks.NewMockTestCaseCache(ctrl)
	d := daomocks.NewMockTestCaseDAO(ctrl)

	d.EXPECT().Save(gomock.Any(), dao.TestCase{Name: "Go 基础", TimeToTest: 3600}, []int64{4, 5}).
		Return(int64(3), nil)
	c.EXPECT().Delete(gomock.Any(), int64(3)).Return(nil)
	d.EXPECT().GetIDsByQid(gomock.Any(), int64(4)).Return([]int64{3, 6}, nil)
	c.EXPECT().Delete(gomock.Any(), int64(3), int64(6)).Return(nil)
	d.EXPECT().Delete(gomock.Any(), int64(6)).Return(nil)
	c.EXPECT().Delete(gomock.Any(), int64(6)).Return(errors.New("mock redis error"))

	repo := NewCachedTestCaseRepository(d, repomocks.NewMockQuestionRepository(ctrl), c)
	id, err := repo.Save(context.Background(), domain.TestCase{
		Name:       "Go 基础",
		TimeToTest: time.Hour,
		Questions:  []domain.Question{{Id: 4}, {Id: 5}},
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(3), id)

	err = repo.EvictByQuestion(context.Background(), 4)
	assert.NoError(t, err)

	// 缓存删除失败只记录日志
	err = repo.Delete(context.Background(), 6)
	assert.NoError(t, err)
}

func TestCachedTestCaseRepository_EvictByCategory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	c := cachemocks.NewMockTestCaseCache(ctrl)
	d := daomocks.NewMockTestCaseDAO(ctrl)

	d.EXPECT().GetIDsByCid(gomock.Any(), int64(2)).Return([]int64{3, 6}, nil)
	c.EXPECT().Delete(gomock.Any(), int64(3), int64(6)).Return(nil)

	repo := NewCachedTestCaseRepository(d, repomocks.NewMockQuestionRepository(ctrl), c)
	ids, err := repo.GetIDsByCategory(context.Background(), 2)
	assert.NoError(t, err)
	assert.Equal(t, []int64{3, 6}, ids)
	err = repo.Evict(context.Background(), ids)
	assert.NoError(t, err)

	// 没有关联的 TestCase 不会访问缓存
	err = repo.Evict(context.Background(), nil)
	assert.NoError(t, err)
}
