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
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
)

// TokenSessionKey session 里面保存测试令牌的 key
const TokenSessionKey = "testing_auth_token"

// SessionProvider 只用到了 session.Provider 的这两个方法
type SessionProvider interface {
	NewSession(ctx *ginx.Context, uid int64, jwtData map[string]string,
		sessData map[string]any) (session.Session, error)
	Get(ctx *ginx.Context) (session.Session, error)
}
