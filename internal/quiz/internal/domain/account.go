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

package domain

import (
	"crypto/rand"
	"math/big"
	"time"
)

// Account 测试账号，由管理员分配
type Account struct {
	Id          int64
	Name        string
	Email       string
	Information string
	// Password 在 service 之外都是 bcrypt 之后的结果
	Password string

	Tests []TestCase
	Utime time.Time
}

func (a Account) TestCaseIds() []int64 {
	res := make([]int64, 0, len(a.Tests))
	for _, tc := range a.Tests {
		res = append(res, tc.Id)
	}
	return res
}

// TokenLength 令牌长度
const TokenLength = 50

const tokenAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

type Token struct {
	Id        int64
	AccountId int64
	Value     string
}

// NewTokenValue 生成随机令牌
func NewTokenValue() (string, error) {
	res := make([]byte, TokenLength)
	limit := big.NewInt(int64(len(tokenAlphabet)))
	for i := range res {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		res[i] = tokenAlphabet[n.Int64()]
	}
	return string(res), nil
}

// Viewer 当前请求对应的测试账号。
// 由中间件解析出来，显式传给各个接口，没有登录的时候 ok 为 false
type Viewer struct {
	account Account
	ok      bool
}

func NewViewer(acc Account) Viewer {
	return Viewer{account: acc, ok: true}
}

func AnonymousViewer() Viewer {
	return Viewer{}
}

func (v Viewer) Account() (Account, bool) {
	return v.account, v.ok
}
