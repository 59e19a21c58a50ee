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

package ioc

import (
	"context"
	"fmt"
	"time"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/kafka"
	"github.com/ecodeclub/mq-api/memory"
	"github.com/ecodeclub/quiz/internal/pkg/mqx"
	"github.com/ecodeclub/quiz/internal/quiz"
	"github.com/gotomicro/ego/core/econf"
)

type topicConfig struct {
	Name       string `yaml:"name"`
	Partitions int    `yaml:"partitions"`
}

func InitMQ() mq.MQ {
	type Config struct {
		// Type 本地开发可以用 memory，不需要启动 kafka
		Type      string        `yaml:"type"`
		Network   string        `yaml:"network"`
		Addresses []string      `yaml:"addresses"`
		Topics    []topicConfig `yaml:"topics"`
	}

	var cfg Config
	err := econf.UnmarshalKey("kafka", &cfg)
	if err != nil {
		panic(err)
	}

	var q mq.MQ
	if cfg.Type == "memory" {
		q = memory.NewMQ()
	} else {
		q, err = kafka.NewMQ(cfg.Network, cfg.Addresses)
		if err != nil {
			panic(err)
		}
	}

	ctx, cancelFunc := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelFunc()
	topics := mergeTopics(cfg.Topics, quiz.Topics)
	for i := 0; i < len(topics); i++ {
		if e := q.CreateTopic(ctx, topics[i].Name, topics[i].Partitions); e != nil {
			panic(fmt.Sprintf("创建Topic失败: %s : Topic = %s, Partitions = %d", e.Error(), topics[i].Name, topics[i].Partitions))
		}
	}
	return mqx.NewTraceMQ(q)
}

// mergeTopics 配置里面没有写的 topic 按照一个分区创建
func mergeTopics(configured []topicConfig, required []string) []topicConfig {
	res := make([]topicConfig, 0, len(configured)+len(required))
	seen := make(map[string]struct{}, len(configured))
	for _, t := range configured {
		if _, ok := seen[t.Name]; ok {
			continue
		}
		seen[t.Name] = struct{}{}
		res = append(res, t)
	}
	for _, name := range required {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		res = append(res, topicConfig{Name: name, Partitions: 1})
	}
	return res
}
