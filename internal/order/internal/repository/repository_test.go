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

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/ecodeclub/eshop/internal/order/internal/domain"
	"github.com/ecodeclub/eshop/internal/order/internal/repository/dao"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeOrderDAO 模拟真实 DAO 落库时填 ID 和时间戳的行为
type fakeOrderDAO struct {
	dao.OrderDAO
}

func (f *fakeOrderDAO) CreateOrder(_ context.Context, o dao.Order, _ []dao.OrderItem) (dao.Order, error) {
	now := time.Now().UnixMilli()
	o.Id = 1
	o.Ctime, o.Utime = now, now
	return o, nil
}

func TestRepository_CreateOrder_ReturnsStampedOrder(t *testing.T) {
	t.Parallel()
	repo := NewRepository(&fakeOrderDAO{})

	o, err := repo.CreateOrder(context.Background(), domain.Order{
		SN:      "a3d9e6f2b8c145f0a3d9e6f2b8c145f0",
		BuyerID: 7,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), o.ID)
	assert.NotZero(t, o.Ctime)
	assert.NotZero(t, o.Utime)
}
