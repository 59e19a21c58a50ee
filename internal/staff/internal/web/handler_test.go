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

package web

import (
	"errors"
	"net/http"
	"testing"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/quiz/internal/staff/internal/domain"
	"github.com/ecodeclub/quiz/internal/staff/internal/errs"
	"github.com/ecodeclub/quiz/internal/staff/internal/service"
	staffmocks "github.com/ecodeclub/quiz/internal/staff/mocks"
	"github.com/ecodeclub/quiz/internal/test"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var admin = domain.Staff{Id: 1, Email: "admin@quiz.com", Name: "admin"}

func TestHandler_Login(t *testing.T) {
	testCases := []struct {
		name string
		mock func(ctrl *gomock.Controller) service.Service
		req  LoginReq

		wantCode    int
		wantResp    test.Result[Profile]
		wantSession bool
	}{
		{
			name: "登录成功",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := staffmocks.NewMockService(ctrl)
				svc.EXPECT().Login(gomock.Any(), "admin@quiz.com", "123456").Return(admin, nil)
				return svc
			},
			req: LoginReq{Email: "admin@quiz.com", Password: "123456"},
			wantCode: http.StatusOK,
			wantResp: test.Result[Profile]{
				Data: Profile{Id: 1, Email: "admin@quiz.com", Name: "admin", IsCreator: true},
			},
			wantSession: true,
		},
		{
			name: "密码错误",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := staffmocks.NewMockService(ctrl)
				svc.EXPECT().Login(gomock.Any(), "admin@quiz.com", "654321").
					Return(domain.Staff{}, service.ErrInvalidCredentials)
				return svc
			},
			req: LoginReq{Email: "admin@quiz.com", Password: "654321"},
			wantCode: http.StatusOK,
			wantResp: test.Result[Profile]{
				Code: errs.InvalidCredentials.Code,
				Msg:  errs.InvalidCredentials.Msg,
			},
		},
		{
			name: "系统错误",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := staffmocks.NewMockService(ctrl)
				svc.EXPECT().Login(gomock.Any(), "admin@quiz.com", "123456").
					Return(domain.Staff{}, errors.New("mock db error"))
				return svc
			},
			req: LoginReq{Email: "admin@quiz.com", Password: "123456"},
			wantCode: http.StatusInternalServerError,
			wantResp: test.Result[Profile]{
				Code: errs.SystemError.Code,
				Msg:  errs.SystemError.Msg,
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			sp := test.NewSessionProvider()
			server := gin.Default()
			NewHandler(tc.mock(ctrl), sp).PublicRoutes(server)

			req, err := http.NewRequest(http.MethodPost, "/staff/login", iox.NewJSONReader(tc.req))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[Profile]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
			assert.Equal(t, tc.wantSession, recorder.Header().Get(test.SessionHeader) != "")
		})
	}
}

// TestHandler_LoginThenProfile 登录之后同一个 session 可以拿到个人信息
func TestHandler_LoginThenProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := staffmocks.NewMockService(ctrl)
	svc.EXPECT().Login(gomock.Any(), "admin@quiz.com", "123456").Return(admin, nil)
	svc.EXPECT().Profile(gomock.Any(), int64(1)).Return(admin, nil)
	sp := test.NewSessionProvider()
	server := gin.Default()
	hdl := NewHandler(svc, sp)
	hdl.PublicRoutes(server)
	hdl.PrivateRoutes(server)

	req, err := http.NewRequest(http.MethodPost, "/staff/login",
		iox.NewJSONReader(LoginReq{Email: "admin@quiz.com", Password: "123456"}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[Profile]()
	server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	sessId := recorder.Header().Get(test.SessionHeader)
	require.NotEmpty(t, sessId)

	req, err = http.NewRequest(http.MethodGet, "/staff/profile", nil)
	require.NoError(t, err)
	req.Header.Set(test.SessionHeader, sessId)
	profileRecorder := test.NewJSONResponseRecorder[Profile]()
	server.ServeHTTP(profileRecorder, req)
	require.Equal(t, http.StatusOK, profileRecorder.Code)
	assert.Equal(t, test.Result[Profile]{
		Data: Profile{Id: 1, Email: "admin@quiz.com", Name: "admin", IsCreator: true},
	}, profileRecorder.MustScan())
}

func TestHandler_ProfileWithoutSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	server := gin.Default()
	NewHandler(staffmocks.NewMockService(ctrl), test.NewSessionProvider()).PrivateRoutes(server)

	req, err := http.NewRequest(http.MethodGet, "/staff/profile", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[Profile]()
	server.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
