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

type Category struct {
	Id       int64
	Name     string
	IsActive bool
	Utime    time.Time
}

// Degree 题目难度
type Degree uint8

const (
	DegreeUnknown Degree = iota
	DegreeJunior
	DegreeMiddle
	DegreeSenior
	// DegreeOther 通用题目，不区分难度
	DegreeOther
)

func (d Degree) ToUint8() uint8 {
	return uint8(d)
}

func (d Degree) Valid() bool {
	return d >= DegreeJunior && d <= DegreeOther
}

func (d Degree) String() string {
	switch d {
	case DegreeJunior:
		return "Junior"
	case DegreeMiddle:
		return "Middle"
	case DegreeSenior:
		return "Senior"
	case DegreeOther:
		return "Other"
	default:
		return "Unknown"
	}
}

type Question struct {
	Id     int64
	Degree Degree
	// Category 只有 Id 和 Name 是必然有的
	Category Category
	Content  string
	IsActive bool

	Answers []Answer
	Utime   time.Time
}

// HasValidAnswer 至少要有一个正确答案，没有答案也算作不合法
func (q Question) HasValidAnswer() bool {
	for _, a := range q.Answers {
		if a.IsValid {
			return true
		}
	}
	return false
}

type Answer struct {
	Id      int64
	Qid     int64
	Content string
	IsValid bool
}
