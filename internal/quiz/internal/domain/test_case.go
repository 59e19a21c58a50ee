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
	"fmt"
	"time"
)

// TestCase 试卷模板，和 Question 是多对多的关系
type TestCase struct {
	Id         int64
	Name       string
	IsActive   bool
	TimeToTest time.Duration

	Questions []Question
	Utime     time.Time
}

func (tc TestCase) QuestionIds() []int64 {
	res := make([]int64, 0, len(tc.Questions))
	for _, q := range tc.Questions {
		res = append(res, q.Id)
	}
	return res
}

// FormatDuration 输出 H:MM:SS 的格式，超过一天的部分输出为 "N day(s), "
// 负数按照整天借位，例如 -1s 输出为 "-1 day, 23:59:59"
func FormatDuration(d time.Duration) string {
	total := int64(d / time.Second)
	const daySeconds = 24 * 3600
	days := total / daySeconds
	rest := total % daySeconds
	if rest < 0 {
		rest += daySeconds
		days--
	}
	hms := fmt.Sprintf("%d:%02d:%02d", rest/3600, rest%3600/60, rest%60)
	switch {
	case days == 0:
		return hms
	case days == 1 || days == -1:
		return fmt.Sprintf("%d day, %s", days, hms)
	default:
		return fmt.Sprintf("%d days, %s", days, hms)
	}
}
