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
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/quiz/internal/quiz/internal/domain"
)

type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type IdReq struct {
	Id int64 `json:"id"`
}

type LoginResp struct {
	Account Account `json:"account"`
	Token   string  `json:"token"`
}

type Account struct {
	Id          int64      `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Information string     `json:"information"`
	Tests       []TestCase `json:"tests"`
}

func newAccount(acc domain.Account) Account {
	return Account{
		Id:          acc.Id,
		Name:        acc.Name,
		Email:       acc.Email,
		Information: acc.Information,
		Tests: slice.Map(acc.Tests, func(idx int, src domain.TestCase) TestCase {
			return newTestCase(src)
		}),
	}
}

type TestCase struct {
	Id   int64  `json:"id"`
	Name string `json:"name"`
	// TimeToTest 例如 1:30:00
	TimeToTest string     `json:"time_to_test"`
	Status     string     `json:"status,omitempty"`
	Questions  []Question `json:"questions,omitempty"`
}

func newTestCase(tc domain.TestCase) TestCase {
	return TestCase{
		Id:         tc.Id,
		Name:       tc.Name,
		TimeToTest: domain.FormatDuration(tc.TimeToTest),
	}
}

// newTestCaseWithQuestions 选项里面不包含是否正确
func newTestCaseWithQuestions(tc domain.TestCase, status domain.Status) TestCase {
	res := newTestCase(tc)
	res.Status = status.String()
	res.Questions = slice.Map(tc.Questions, func(idx int, src domain.Question) Question {
		return Question{
			Id:       src.Id,
			Degree:   src.Degree.String(),
			Category: src.Category.Name,
			Question: src.Content,
			Answers: slice.Map(src.Answers, func(idx int, src domain.Answer) Answer {
				return Answer{
					Id:     src.Id,
					Answer: src.Content,
				}
			}),
		}
	})
	return res
}

type Question struct {
	Id       int64    `json:"id"`
	Degree   string   `json:"degree"`
	Category string   `json:"category"`
	Question string   `json:"question"`
	Answers  []Answer `json:"answers"`
}

type Answer struct {
	Id     int64  `json:"id"`
	Answer string `json:"answer"`
}
