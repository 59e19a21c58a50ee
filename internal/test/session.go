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

package test

import (
	"errors"
	"sync"

	"github.com/ecodeclub/ginx/gctx"
	"github.com/ecodeclub/ginx/session"
	"github.com/lithammer/shortuuid/v4"
)

// SessionHeader 测试中用来携带 session 的请求头
const SessionHeader = "X-Test-Session"

var ErrSessionNotFound = errors.New("session 不存在")

// SessionProvider 内存实现，登录之后把 session id 写在响应头里面，
// 后续请求带上同样的请求头就可以拿到 session
type SessionProvider struct {
	mu       sync.RWMutex
	sessions map[string]session.Session
}

func NewSessionProvider() *SessionProvider {
	return &SessionProvider{
		sessions: make(map[string]session.Session),
	}
}

func (s *SessionProvider) NewSession(ctx *gctx.Context, uid int64,
	jwtData map[string]string, sessData map[string]any) (session.Session, error) {
	sess := session.NewMemorySession(session.Claims{
		Uid:  uid,
		Data: jwtData,
	})
	for key, val := range sessData {
		if err := sess.Set(ctx, key, val); err != nil {
			return nil, err
		}
	}
	id := shortuuid.New()
	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()
	ctx.Header(SessionHeader, id)
	ctx.Set(session.CtxSessionKey, sess)
	return sess, nil
}

// Get 优先使用中间件提前放好的 session
func (s *SessionProvider) Get(ctx *gctx.Context) (session.Session, error) {
	if val, ok := ctx.Get(session.CtxSessionKey); ok {
		if sess, ok := val.(session.Session); ok {
			return sess, nil
		}
	}
	s.mu.RLock()
	sess, ok := s.sessions[ctx.GetHeader(SessionHeader)]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}
