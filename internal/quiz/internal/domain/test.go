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

import "time"

// Test 某个账号针对某个 TestCase 的一次作答记录。
// 在管理员给账号分配 TestCase 的时候创建，取消分配的时候删除
type Test struct {
	Id        int64
	AccountId int64
	TestCase  TestCase
	// DateStart 和 DateEnd 零值表示没有设置
	DateStart time.Time
	DateEnd   time.Time
	// Answers 原样保存的 JSON 文本，不做解析
	Answers string

	// 管理后台展示用
	Account Account
	Utime   time.Time
}

// Started 三者任何一个有值，都认为已经开始过了
func (t Test) Started() bool {
	return !t.DateStart.IsZero() || !t.DateEnd.IsZero() || t.Answers != ""
}

type Status string

const (
	// StatusNone 查找 Test 失败的时候，不返回任何状态
	StatusNone             Status = ""
	StatusNotAuthenticated Status = "not authenticated"
	StatusCompleted        Status = "already completed"
	StatusStarted          Status = "already started, cannot restart"
	StatusReady            Status = "ready to start"
)

func (s Status) String() string {
	return string(s)
}

// Status 只看 DateEnd 和 DateStart，Answers 不参与
func (t Test) Status() Status {
	switch {
	case !t.DateEnd.IsZero():
		return StatusCompleted
	case !t.DateStart.IsZero():
		return StatusStarted
	default:
		return StatusReady
	}
}

// AssignmentPlan 账号分配的 TestCase 变更之后，需要对 Test 执行的操作
type AssignmentPlan struct {
	// Create 新分配的 TestCase，各自创建一条 Test
	Create []int64
	// Delete 取消分配的 TestCase，对应的 Test 全部删除
	Delete []int64
	// Link 已经有 Test 但是缺少分配关系，只补上分配关系，Test 保持原样
	Link []int64
	// Keep 没有变化的 TestCase，Test 保持原样
	Keep []int64
}

func (p AssignmentPlan) Empty() bool {
	return len(p.Create) == 0 && len(p.Delete) == 0 && len(p.Link) == 0
}

// PlanAssignments 对比期望分配的 TestCase 和已有的 Test，计算出同步计划。
// assigned 是已经存在的分配关系。脏数据有两种：
// 只有分配关系没有 Test 的按照新增处理，补上 Test；
// 只有 Test 没有分配关系的放进 Link，补上分配关系
func PlanAssignments(desired []int64, assigned []int64, existing []Test) AssignmentPlan {
	want := make(map[int64]struct{}, len(desired))
	for _, id := range desired {
		want[id] = struct{}{}
	}
	have := make(map[int64]struct{}, len(existing))
	for _, t := range existing {
		have[t.TestCase.Id] = struct{}{}
	}
	linked := make(map[int64]struct{}, len(assigned))
	for _, id := range assigned {
		linked[id] = struct{}{}
	}
	var plan AssignmentPlan
	seen := make(map[int64]struct{}, len(desired))
	for _, id := range desired {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		if _, ok := have[id]; ok {
			if _, ok = linked[id]; ok {
				plan.Keep = append(plan.Keep, id)
			} else {
				plan.Link = append(plan.Link, id)
			}
			continue
		}
		plan.Create = append(plan.Create, id)
	}

	removed := make(map[int64]struct{}, len(have)+len(assigned))
	collect := func(id int64) {
		if _, ok := want[id]; ok {
			return
		}
		if _, ok := removed[id]; ok {
			return
		}
		removed[id] = struct{}{}
		plan.Delete = append(plan.Delete, id)
	}
	for _, t := range existing {
		collect(t.TestCase.Id)
	}
	for _, id := range assigned {
		collect(id)
	}
	return plan
}
