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
	"time"

	"github.com/ecodeclub/quiz/internal/quiz/internal/domain"
	"github.com/ecodeclub/quiz/internal/quiz/internal/event"
	evtmocks "github.com/ecodeclub/quiz/internal/quiz/internal/event/mocks"
	"github.com/ecodeclub/quiz/internal/quiz/internal/repository"
	repomocks "github.com/ecodeclub/quiz/internal/quiz/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type testingMocks struct {
	accRepo  *repomocks.MockAccountRepository
	tcRepo   *repomocks.MockTestCaseRepository
	testRepo *repomocks.MockTestRepository
	producer *evtmocks.MockProducer
}

func newTestingMocks(ctrl *gomock.Controller) testingMocks {
	return testingMocks{
		accRepo:  repomocks.NewMockAccountRepository(ctrl),
		tcRepo:   repomocks.NewMockTestCaseRepository(ctrl),
		testRepo: repomocks.NewMockTestRepository(ctrl),
		producer: evtmocks.NewMockProducer(ctrl),
	}
}

func (m testingMocks) svc() TestingService {
	return NewTestingService(m.accRepo, m.tcRepo, m.testRepo, m.producer)
}

// assigned 账号 1 分配了 TestCase 3
func (m testingMocks) assigned(tc domain.TestCase) {
	m.accRepo.EXPECT().GetTestCaseIds(gomock.Any(), int64(1)).Return([]int64{2, 3}, nil)
	m.tcRepo.EXPECT().GetWithQuestions(gomock.Any(), int64(3)).Return(tc, nil)
}

func TestTestingService_Start(t *testing.T) {
	viewer := domain.NewViewer(domain.Account{Id: 1, Name: "Tom"})
	tc := domain.TestCase{
		Id:         3,
		Name:       "Go 基础",
		IsActive:   true,
		TimeToTest: time.Hour,
		Questions: []domain.Question{
			{
				Id:      4,
				Content: "Go 的零值",
				Answers: []domain.Answer{
					{Id: 5, Qid: 4, Content: "nil", IsValid: true},
					{Id: 6, Qid: 4, Content: "undefined"},
				},
			},
		},
	}

	testCases := []struct {
		name   string
		mock   func(m testingMocks)
		viewer domain.Viewer

		wantTc     domain.TestCase
		wantStatus domain.Status
		wantErr    error
	}{
		{
			name: "开始测试",
			mock: func(m testingMocks) {
				m.assigned(tc)
				m.testRepo.EXPECT().Find(gomock.Any(), int64(1), int64(3)).
					Return([]domain.Test{{Id: 7, AccountId: 1, TestCase: domain.TestCase{Id: 3}}}, nil)
				m.testRepo.EXPECT().Start(gomock.Any(), int64(7), gomock.Any()).Return(true, nil)
				m.producer.EXPECT().ProduceTestEvent(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, evt event.TestEvent) error {
						if evt.AccountId != 1 || evt.TestCaseId != 3 || evt.Type != event.TestEventTypeStarted {
							return errors.New("事件不对")
						}
						return nil
					})
			},
			viewer:     viewer,
			wantTc:     tc,
			wantStatus: domain.StatusStarted,
		},
		{
			name: "发送事件失败不影响开始测试",
			mock: func(m testingMocks) {
				m.assigned(tc)
				m.testRepo.EXPECT().Find(gomock.Any(), int64(1), int64(3)).
					Return([]domain.Test{{Id: 7, AccountId: 1, TestCase: domain.TestCase{Id: 3}}}, nil)
				m.testRepo.EXPECT().Start(gomock.Any(), int64(7), gomock.Any()).Return(true, nil)
				m.producer.EXPECT().ProduceTestEvent(gomock.Any(), gomock.Any()).
					Return(errors.New("mock mq error"))
			},
			viewer:     viewer,
			wantTc:     tc,
			wantStatus: domain.StatusStarted,
		},
		{
			name:       "没有登录",
			mock:       func(m testingMocks) {},
			viewer:     domain.AnonymousViewer(),
			wantStatus: domain.StatusNotAuthenticated,
			wantErr:    ErrAuthenticationRequired,
		},
		{
			name: "没有分配",
			mock: func(m testingMocks) {
				m.accRepo.EXPECT().GetTestCaseIds(gomock.Any(), int64(1)).Return([]int64{2}, nil)
			},
			viewer:  viewer,
			wantErr: ErrNotFound,
		},
		{
			name: "分配了多次",
			mock: func(m testingMocks) {
				m.accRepo.EXPECT().GetTestCaseIds(gomock.Any(), int64(1)).Return([]int64{3, 3}, nil)
			},
			viewer:  viewer,
			wantErr: ErrAmbiguous,
		},
		{
			name: "没有作答记录",
			mock: func(m testingMocks) {
				m.assigned(tc)
				m.testRepo.EXPECT().Find(gomock.Any(), int64(1), int64(3)).Return(nil, nil)
			},
			viewer:  viewer,
			wantErr: ErrNotFound,
		},
		{
			name: "多条作答记录",
			mock: func(m testingMocks) {
				m.assigned(tc)
				m.testRepo.EXPECT().Find(gomock.Any(), int64(1), int64(3)).
					Return([]domain.Test{{Id: 7}, {Id: 8}}, nil)
			},
			viewer:  viewer,
			wantErr: ErrAmbiguous,
		},
		{
			name: "已经开始过了",
			mock: func(m testingMocks) {
				m.assigned(tc)
				m.testRepo.EXPECT().Find(gomock.Any(), int64(1), int64(3)).
					Return([]domain.Test{{Id: 7, DateStart: time.UnixMilli(1000)}}, nil)
			},
			viewer:     viewer,
			wantStatus: domain.StatusStarted,
			wantErr:    ErrAlreadyStarted,
		},
		{
			name: "已经完成了",
			mock: func(m testingMocks) {
				m.assigned(tc)
				m.testRepo.EXPECT().Find(gomock.Any(), int64(1), int64(3)).
					Return([]domain.Test{{Id: 7, DateStart: time.UnixMilli(1000), DateEnd: time.UnixMilli(2000)}}, nil)
			},
			viewer:     viewer,
			wantStatus: domain.StatusCompleted,
			wantErr:    ErrAlreadyStarted,
		},
		{
			name: "只提交了答案",
			mock: func(m testingMocks) {
				m.assigned(tc)
				m.testRepo.EXPECT().Find(gomock.Any(), int64(1), int64(3)).
					Return([]domain.Test{{Id: 7, Answers: `{"4":[5]}`}}, nil)
			},
			viewer:     viewer,
			wantStatus: domain.StatusReady,
			wantErr:    ErrAlreadyStarted,
		},
		{
			name: "并发开始，没有抢到",
			mock: func(m testingMocks) {
				m.assigned(tc)
				m.testRepo.EXPECT().Find(gomock.Any(), int64(1), int64(3)).
					Return([]domain.Test{{Id: 7}}, nil)
				m.testRepo.EXPECT().Start(gomock.Any(), int64(7), gomock.Any()).Return(false, nil)
			},
			viewer:     viewer,
			wantStatus: domain.StatusStarted,
			wantErr:    ErrAlreadyStarted,
		},
		{
			name: "更新出错",
			mock: func(m testingMocks) {
				m.assigned(tc)
				m.testRepo.EXPECT().Find(gomock.Any(), int64(1), int64(3)).
					Return([]domain.Test{{Id: 7}}, nil)
				m.testRepo.EXPECT().Start(gomock.Any(), int64(7), gomock.Any()).
					Return(false, errors.New("mock db error"))
			},
			viewer:  viewer,
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newTestingMocks(ctrl)
			tc.mock(m)
			res, status, err := m.svc().Start(context.Background(), tc.viewer, 3)
			assertErr(t, tc.wantErr, err)
			assert.Equal(t, tc.wantStatus, status)
			assert.Equal(t, tc.wantTc, res)
		})
	}
}

func TestTestingService_TestCase(t *testing.T) {
	viewer := domain.NewViewer(domain.Account{Id: 1, Name: "Tom"})
	tc := domain.TestCase{Id: 3, Name: "Go 基础", TimeToTest: time.Hour}

	testCases := []struct {
		name   string
		mock   func(m testingMocks)
		viewer domain.Viewer

		wantTc     domain.TestCase
		wantStatus domain.Status
		wantErr    error
	}{
		{
			name: "可以开始",
			mock: func(m testingMocks) {
				m.assigned(tc)
				m.testRepo.EXPECT().Find(gomock.Any(), int64(1), int64(3)).Return([]domain.Test{{Id: 7}}, nil)
			},
			viewer:     viewer,
			wantTc:     tc,
			wantStatus: domain.StatusReady,
		},
		{
			name: "作答记录缺失，没有状态",
			mock: func(m testingMocks) {
				m.assigned(tc)
				m.testRepo.EXPECT().Find(gomock.Any(), int64(1), int64(3)).Return(nil, nil)
			},
			viewer:     viewer,
			wantTc:     tc,
			wantStatus: domain.StatusNone,
		},
		{
			name: "TestCase 已经被删除",
			mock: func(m testingMocks) {
				m.accRepo.EXPECT().GetTestCaseIds(gomock.Any(), int64(1)).Return([]int64{3}, nil)
				m.tcRepo.EXPECT().GetWithQuestions(gomock.Any(), int64(3)).
					Return(domain.TestCase{}, repository.ErrRecordNotFound)
			},
			viewer:  viewer,
			wantErr: ErrNotFound,
		},
		{
			name:       "没有登录",
			mock:       func(m testingMocks) {},
			viewer:     domain.AnonymousViewer(),
			wantStatus: domain.StatusNotAuthenticated,
			wantErr:    ErrAuthenticationRequired,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newTestingMocks(ctrl)
			tc.mock(m)
			res, status, err := m.svc().TestCase(context.Background(), tc.viewer, 3)
			assertErr(t, tc.wantErr, err)
			assert.Equal(t, tc.wantStatus, status)
			assert.Equal(t, tc.wantTc, res)
		})
	}
}

func TestTestingService_Profile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := newTestingMocks(ctrl).svc()

	acc := domain.Account{Id: 1, Name: "Tom", Tests: []domain.TestCase{{Id: 3}}}
	res, err := svc.Profile(context.Background(), domain.NewViewer(acc))
	assert.NoError(t, err)
	assert.Equal(t, acc, res)

	_, err = svc.Profile(context.Background(), domain.AnonymousViewer())
	assert.Equal(t, ErrAuthenticationRequired, err)
}

// assertErr 包装过的错误用 ErrorIs 判断，其余的比较错误信息
func assertErr(t *testing.T, want, got error) {
	t.Helper()
	if want == nil {
		assert.NoError(t, got)
		return
	}
	if errors.Is(got, want) {
		return
	}
	assert.EqualError(t, got, want.Error())
}
