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
	"context"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/quiz/internal/pkg/mqx"
)

//go:generate mockgen -source=./producer.go -package=evtmocks -destination=mocks/producer.mock.go Producer
type Producer interface {
	ProduceTestEvent(ctx context.Context, evt TestEvent) error
	ProduceAssignmentEvent(ctx context.Context, evt AssignmentEvent) error
}

type MQProducer struct {
	testProducer       mqx.Producer[TestEvent]
	assignmentProducer mqx.Producer[AssignmentEvent]
}

func NewMQProducer(q mq.MQ) (Producer, error) {
	tp, err := mqx.NewGeneralProducer[TestEvent](q, TestEventTopic)
	if err != nil {
		return nil, err
	}
	ap, err := mqx.NewGeneralProducer[AssignmentEvent](q, AssignmentEventTopic)
	if err != nil {
		return nil, err
	}
	return &MQProducer{
		testProducer:       tp,
		assignmentProducer: ap,
	}, nil
}

func (p *MQProducer) ProduceTestEvent(ctx context.Context, evt TestEvent) error {
	return p.testProducer.Produce(ctx, evt)
}

func (p *MQProducer) ProduceAssignmentEvent(ctx context.Context, evt AssignmentEvent) error {
	return p.assignmentProducer.Produce(ctx, evt)
}
