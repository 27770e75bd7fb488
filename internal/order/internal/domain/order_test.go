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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaymentStatus_Valid(t *testing.T) {
	t.Parallel()
	for _, s := range []PaymentStatus{
		PaymentStatusPending, PaymentStatusAccepted, PaymentStatusCanceled,
	} {
		assert.True(t, s.Valid(), s.String())
	}
	for _, s := range []PaymentStatus{"", "pending", "Paid", "Done"} {
		assert.False(t, s.Valid(), s.String())
	}
}

func TestOrderStatus_Valid(t *testing.T) {
	t.Parallel()
	for _, s := range []OrderStatus{
		OrderStatusCreated, OrderStatusAccepted, OrderStatusCanceled,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusReturned,
	} {
		assert.True(t, s.Valid(), s.String())
	}
	for _, s := range []OrderStatus{"", "created", "Closed", "Completed"} {
		assert.False(t, s.Valid(), s.String())
	}
}
