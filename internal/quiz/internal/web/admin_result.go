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

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/quiz/internal/quiz/internal/errs"
	"github.com/ecodeclub/quiz/internal/quiz/internal/service"
)

// adminErrResult 管理后台的业务错误转换成错误码，其余的按照系统错误处理
func adminErrResult(err error) (ginx.Result, error) {
	switch {
	case errors.Is(err, service.ErrNoValidAnswer):
		return newResult(errs.NoValidAnswer), nil
	case errors.Is(err, service.ErrInvalidDegree):
		return newResult(errs.InvalidDegree), nil
	case errors.Is(err, service.ErrEmailDuplicate):
		return newResult(errs.EmailDuplicate), nil
	case errors.Is(err, service.ErrPasswordEmpty):
		return newResult(errs.PasswordEmpty), nil
	case errors.Is(err, service.ErrRecordNotFound):
		return newResult(errs.RecordNotFound), nil
	default:
		return systemErrorResult, err
	}
}
