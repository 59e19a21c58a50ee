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

package job

import (
	"context"
	"fmt"

	"github.com/ecodeclub/quiz/internal/quiz/internal/service"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
)

var _ ecron.NamedJob = (*TokenRepairJob)(nil)

// TokenRepairJob 把持有多个令牌的账号修复成只有一个新令牌
type TokenRepairJob struct {
	svc    service.AuthService
	limit  int
	logger *elog.Component
}

func NewTokenRepairJob(svc service.AuthService, limit int) *TokenRepairJob {
	return &TokenRepairJob{
		svc:    svc,
		limit:  limit,
		logger: elog.DefaultLogger,
	}
}

func (j *TokenRepairJob) Name() string {
	return "TokenRepairJob"
}

func (j *TokenRepairJob) Run(ctx context.Context) error {
	total := 0
	for {
		cnt, err := j.svc.RepairTokens(ctx, j.limit)
		total += cnt
		if err != nil {
			return fmt.Errorf("修复令牌失败，已经修复 %d 个账号: %w", total, err)
		}
		if cnt < j.limit {
			break
		}
	}
	if total > 0 {
		j.logger.Warn("修复了持有多个令牌的账号", elog.Int("cnt", total))
	}
	return nil
}
