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

const welcomeMailBody = `<p>Dear %s,</p>
<p>Welcome to eshop! Your account is ready.</p>
<p>Best Regards</p>`

// RegistrationConsumer 消费注册成功消息，给新用户发欢迎邮件
type RegistrationConsumer struct {
	userSvc  user.UserService
	emailSvc email.Service
	consumer mq.Consumer
	logger   *elog.Component
}

func NewRegistrationConsumer(userSvc user.UserService, emailSvc email.Service, q mq.MQ) (*RegistrationConsumer, error) {
	const groupID = "notification"
	consumer, err := q.Consumer(registrationEventName, groupID)
	if err != nil {
		return nil, err
	}
	return &RegistrationConsumer{
		userSvc:  userSvc,
		emailSvc: emailSvc,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *RegistrationConsumer) Start(ctx context.Context) {
	go func() {
		for {
			er := c.Consume(ctx)
			if er != nil {
				c.logger.Error("消费注册事件失败", elog.FieldErr(er))
			}
		}
	}()
}

func (c *RegistrationConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}

	var evt RegistrationEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}

	u, err := c.userSvc.Profile(ctx, evt.Uid)
	if err != nil {
		return fmt.Errorf("查找用户失败: uid=%d: %w", evt.Uid, err)
	}

	username := u.FirstName + " " + u.LastName
	return c.emailSvc.SendMail(ctx, email.Mail{
		From:    "eshop",
		To:      u.Email,
		Subject: "Welcome to eshop",
		Body:    []byte(fmt.Sprintf(welcomeMailBody, username)),
	})
}
