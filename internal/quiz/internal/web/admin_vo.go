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
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/quiz/internal/quiz/internal/domain"
)

type ListReq struct {
	Offset  int
	Limit   int
	Keyword string
	// IsActive 不传就是不过滤
	IsActive   *bool
	Degree     uint8
	CategoryId int64
	TestCaseId int64
}

func (r ListReq) toDomain() domain.ListFilter {
	return domain.ListFilter{
		Offset:     r.Offset,
		Limit:      r.Limit,
		Keyword:    r.Keyword,
		IsActive:   r.IsActive,
		Degree:     domain.Degree(r.Degree),
		CategoryId: r.CategoryId,
		TestCaseId: r.TestCaseId,
	}
}

type ListResp[T any] struct {
	Total int64
	List  []T
}

type Category struct {
	Id       int64
	Name     string
	IsActive bool
	Utime    int64
}

func (c Category) toDomain() domain.Category {
	return domain.Category{
		Id:       c.Id,
		Name:     c.Name,
		IsActive: c.IsActive,
	}
}

func newCategory(c domain.Category) Category {
	return Category{
		Id:       c.Id,
		Name:     c.Name,
		IsActive: c.IsActive,
		Utime:    c.Utime.UnixMilli(),
	}
}

type AdminQuestion struct {
	Id int64
	// Degree 1 Junior, 2 Middle, 3 Senior, 4 Other
	Degree       uint8
	DegreeName   string
	CategoryId   int64
	CategoryName string
	Content      string
	IsActive     bool
	// Answers 全量保存，至少要有一个 IsValid 为 true
	Answers []AdminAnswer
	Utime   int64
}

type AdminAnswer struct {
	Id      int64
	Content string
	IsValid bool
}

func (q AdminQuestion) toDomain() domain.Question {
	return domain.Question{
		Id:       q.Id,
		Degree:   domain.Degree(q.Degree),
		Category: domain.Category{Id: q.CategoryId},
		Content:  q.Content,
		IsActive: q.IsActive,
		Answers: slice.Map(q.Answers, func(idx int, src AdminAnswer) domain.Answer {
			return domain.Answer{
				Id:      src.Id,
				Qid:     q.Id,
				Content: src.Content,
				IsValid: src.IsValid,
			}
		}),
	}
}

func newAdminQuestion(q domain.Question) AdminQuestion {
	return AdminQuestion{
		Id:           q.Id,
		Degree:       q.Degree.ToUint8(),
		DegreeName:   q.Degree.String(),
		CategoryId:   q.Category.Id,
		CategoryName: q.Category.Name,
		Content:      q.Content,
		IsActive:     q.IsActive,
		Answers: slice.Map(q.Answers, func(idx int, src domain.Answer) AdminAnswer {
			return AdminAnswer{
				Id:      src.Id,
				Content: src.Content,
				IsValid: src.IsValid,
			}
		}),
		Utime: q.Utime.UnixMilli(),
	}
}

type AdminTestCase struct {
	Id       int64
	Name     string
	IsActive bool
	// TimeToTest 单位是秒
	TimeToTest     int64
	TimeToTestText string
	// QuestionIds 保存的时候使用，是全量的题目
	QuestionIds []int64
	Questions   []AdminQuestion
	Utime       int64
}

func (tc AdminTestCase) toDomain() domain.TestCase {
	return domain.TestCase{
		Id:         tc.Id,
		Name:       tc.Name,
		IsActive:   tc.IsActive,
		TimeToTest: time.Duration(tc.TimeToTest) * time.Second,
		Questions: slice.Map(tc.QuestionIds, func(idx int, src int64) domain.Question {
			return domain.Question{Id: src}
		}),
	}
}

func newAdminTestCase(tc domain.TestCase) AdminTestCase {
	return AdminTestCase{
		Id:             tc.Id,
		Name:           tc.Name,
		IsActive:       tc.IsActive,
		TimeToTest:     int64(tc.TimeToTest / time.Second),
		TimeToTestText: domain.FormatDuration(tc.TimeToTest),
		QuestionIds:    tc.QuestionIds(),
		Questions:      slice.Map(tc.Questions, func(idx int, src domain.Question) AdminQuestion { return newAdminQuestion(src) }),
		Utime:          tc.Utime.UnixMilli(),
	}
}

type AdminAccount struct {
	Id          int64
	Name        string
	Email       string
	Information string
	// Password 只在保存的时候使用，更新的时候不传表示不修改
	Password    string `json:",omitempty"`
	TestCaseIds []int64
	Tests       []AdminTestCase
	Utime       int64
}

func (a AdminAccount) toDomain() domain.Account {
	return domain.Account{
		Id:          a.Id,
		Name:        a.Name,
		Email:       a.Email,
		Information: a.Information,
		Password:    a.Password,
		Tests: slice.Map(a.TestCaseIds, func(idx int, src int64) domain.TestCase {
			return domain.TestCase{Id: src}
		}),
	}
}

func newAdminAccount(a domain.Account) AdminAccount {
	return AdminAccount{
		Id:          a.Id,
		Name:        a.Name,
		Email:       a.Email,
		Information: a.Information,
		TestCaseIds: a.TestCaseIds(),
		Tests:       slice.Map(a.Tests, func(idx int, src domain.TestCase) AdminTestCase { return newAdminTestCase(src) }),
		Utime:       a.Utime.UnixMilli(),
	}
}

type AssignReq struct {
	Id          int64
	TestCaseIds []int64
}

type AssignResp struct {
	Created []int64
	Deleted []int64
	// Linked 已有作答记录，只补上了分配关系
	Linked  []int64
	Kept    []int64
}

type AdminTest struct {
	Id           int64
	AccountId    int64
	AccountName  string
	AccountEmail string
	TestCaseId   int64
	TestCaseName string
	// DateStart 和 DateEnd 为 0 表示没有设置
	DateStart int64
	DateEnd   int64
	Answers   string
	Status    string
	Utime     int64
}

func newAdminTest(t domain.Test) AdminTest {
	return AdminTest{
		Id:           t.Id,
		AccountId:    t.AccountId,
		AccountName:  t.Account.Name,
		AccountEmail: t.Account.Email,
		TestCaseId:   t.TestCase.Id,
		TestCaseName: t.TestCase.Name,
		DateStart:    toMilli(t.DateStart),
		DateEnd:      toMilli(t.DateEnd),
		Answers:      t.Answers,
		Status:       t.Status().String(),
		Utime:        t.Utime.UnixMilli(),
	}
}

func toMilli(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}
