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
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/eshop/internal/email"
	"github.com/ecodeclub/eshop/internal/user"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

const orderMailBody = `<p>Dear %s,</p>
<p>Thank you for your order!</p>
<p>Your order <b>%s</b> has been created. Total amount: %.2f.</p>
<p>We will notify you when it ships.</p>
<p>Best Regards</p>`

// OrderCreatedConsumer 消费下单成功消息，给买家发订单确认邮件
type OrderCreatedConsumer struct {
	userSvc  user.UserService
	emailSvc email.Service
	consumer mq.Consumer
	logger   *elog.Component
}

func NewOrderCreatedConsumer(userSvc user.UserService, emailSvc email.Service, q mq.MQ) (*OrderCreatedConsumer, error) {
	const groupID = "notification"
	consumer, err := q.Consumer(orderEventName, groupID)
	if err != nil {
		return nil, err
	}
	return &OrderCreatedConsumer{
		userSvc:  userSvc,
		emailSvc: emailSvc,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *OrderCreatedConsumer) Start(ctx context.Context) {
	go func() {
		for {
			er := c.Consume(ctx)
			if er != nil {
				c.logger.Error("消费订单创建事件失败", elog.FieldErr(er))
			}
		}
	}()
}

func (c *OrderCreatedConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}

	var evt OrderEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}

	u, err := c.userSvc.Profile(ctx, evt.BuyerID)
	if err != nil {
		return fmt.Errorf("查找买家失败: uid=%d: %w", evt.BuyerID, err)
	}

	username := u.FirstName + " " + u.LastName
	return c.emailSvc.SendMail(ctx, email.Mail{
		From:    "eshop",
		To:      u.Email,
		Subject: "Order Confirmation",
		Body:    []byte(fmt.Sprintf(orderMailBody, username, evt.OrderSN, float64(evt.Total)/100)),
	})
}
