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

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/quiz/internal/quiz/internal/domain"
	"github.com/pkg/errors"
)

var ErrTestCaseNotFound = errors.New("TestCase 没找到")

//go:generate mockgen -source=./test_case.go -package=cachemocks -destination=mocks/test_case.mock.go TestCaseCache
type TestCaseCache interface {
	// Get 返回的 TestCase 带有完整的题目和答案
	Get(ctx context.Context, id int64) (domain.TestCase, error)
	Set(ctx context.Context, tc domain.TestCase) error
	Delete(ctx context.Context, ids ...int64) error
}

type TestCaseECache struct {
	ec         ecache.Cache
	expiration time.Duration
}

func NewTestCaseECache(ec ecache.Cache, expiration time.Duration) TestCaseCache {
	return &TestCaseECache{
		ec: &ecache.NamespaceCache{
			Namespace: "quiz:",
			C:         ec,
		},
		expiration: expiration,
	}
}

func (c *TestCaseECache) Get(ctx context.Context, id int64) (domain.TestCase, error) {
	val := c.ec.Get(ctx, c.key(id))
	if val.KeyNotFound() {
		return domain.TestCase{}, ErrTestCaseNotFound
	}
	if val.Err != nil {
		return domain.TestCase{}, errors.Wrap(val.Err, "查询缓存出错")
	}
	str, err := val.String()
	if err != nil {
		return domain.TestCase{}, errors.Wrap(err, "缓存数据类型错误")
	}
	var tc domain.TestCase
	err = json.Unmarshal([]byte(str), &tc)
	if err != nil {
		return domain.TestCase{}, errors.Wrap(err, "反序列化 TestCase 失败")
	}
	return tc, nil
}

func (c *TestCaseECache) Set(ctx context.Context, tc domain.TestCase) error {
	data, err := json.Marshal(tc)
	if err != nil {
		return errors.Wrap(err, "序列化 TestCase 失败")
	}
	return c.ec.Set(ctx, c.key(tc.Id), string(data), c.expiration)
}

func (c *TestCaseECache) Delete(ctx context.Context, ids ...int64) error {
	if len(ids) == 0 {
		return nil
	}
	keys := slice.Map(ids, func(idx int, src int64) string {
		return c.key(src)
	})
	_, err := c.ec.Delete(ctx, keys...)
	return errors.Wrap(err, "删除缓存失败")
}

func (c *TestCaseECache) key(id int64) string {
	return fmt.Sprintf("case:%d", id)
}
