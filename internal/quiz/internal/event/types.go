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

package event

import (
	"time"

	"github.com/lithammer/shortuuid/v4"
)

const (
	TestEventTopic       = "quiz_test_events"
	AssignmentEventTopic = "quiz_assignment_events"

	TestEventTypeStarted = "started"
)

type TestEvent struct {
	// Id 方便消费者去重
	Id         string `json:"id"`
	AccountId  int64  `json:"account_id"`
	TestCaseId int64  `json:"test_case_id"`
	Type       string `json:"type"`
	// Time 毫秒
	Time int64 `json:"time"`
}

func NewTestStartedEvent(accountId, tcId int64, t time.Time) TestEvent {
	return TestEvent{
		Id:         shortuuid.New(),
		AccountId:  accountId,
		TestCaseId: tcId,
		Type:       TestEventTypeStarted,
		Time:       t.UnixMilli(),
	}
}

type AssignmentEvent struct {
	Id        string  `json:"id"`
	AccountId int64   `json:"account_id"`
	Added     []int64 `json:"added"`
	Removed   []int64 `json:"removed"`
}

func NewAssignmentEvent(accountId int64, added, removed []int64) AssignmentEvent {
	return AssignmentEvent{
		Id:        shortuuid.New(),
		AccountId: accountId,
		Added:     added,
		Removed:   removed,
	}
}
