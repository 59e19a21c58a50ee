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
	"errors"

	"github.com/ecodeclub/quiz/internal/quiz/internal/repository"
)

var (
	ErrAuthenticationRequired = errors.New("需要登录")
	ErrInvalidCredentials     = errors.New("邮箱或密码错误")
	ErrNotFound               = errors.New("记录不存在")
	// ErrAmbiguous 数据不一致，找到了多条记录
	ErrAmbiguous      = errors.New("存在多条记录")
	ErrAlreadyStarted = errors.New("测试已经开始过了")

	ErrNoValidAnswer  = errors.New("至少需要一个正确答案")
	ErrInvalidDegree  = errors.New("难度不合法")
	ErrPasswordEmpty  = errors.New("密码不能为空")
	ErrEmailDuplicate = repository.ErrDuplicateEmail
	// ErrRecordNotFound 管理后台操作的记录不存在
	ErrRecordNotFound = repository.ErrRecordNotFound
)
