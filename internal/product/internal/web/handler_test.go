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

package web

import (
	"net/http"
	"testing"

	"github.com/ecodeclub/eshop/internal/product/internal/domain"
	"github.com/ecodeclub/eshop/internal/product/internal/errs"
	"github.com/ecodeclub/eshop/internal/product/internal/repository"
	"github.com/ecodeclub/eshop/internal/product/internal/service"
	productmocks "github.com/ecodeclub/eshop/internal/product/mocks"
	"github.com/ecodeclub/eshop/internal/test"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHandler_Detail(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		path     string
		mock     func(ctrl *gomock.Controller) service.Service
		wantCode int
		wantResp test.Result[Product]
	}{
		{
			name: "正常查询",
			path: "/product/detail/5",
			mock: func(ctrl *gomock.Controller) service.Service {
				m := productmocks.NewMockService(ctrl)
				m.EXPECT().FindByID(gomock.Any(), int64(5)).
					Return(domain.Product{ID: 5, Name: "机械键盘", Price: 1000}, nil)
				return m
			},
			wantCode: 200,
			wantResp: test.Result[Product]{
				Data: Product{ID: 5, Name: "机械键盘", Price: 1000},
			},
		},
		{
			name: "非法商品ID",
			path: "/product/detail/abc",
			mock: func(ctrl *gomock.Controller) service.Service {
				return productmocks.NewMockService(ctrl)
			},
			wantCode: 500,
			wantResp: test.Result[Product]{
				Code: errs.ProductNotFound.Code,
				Msg:  errs.ProductNotFound.Msg,
			},
		},
		{
			name: "商品不存在",
			path: "/product/detail/999",
			mock: func(ctrl *gomock.Controller) service.Service {
				m := productmocks.NewMockService(ctrl)
				m.EXPECT().FindByID(gomock.Any(), int64(999)).
					Return(domain.Product{}, repository.ErrProductNotFound)
				return m
			},
			wantCode: 500,
			wantResp: test.Result[Product]{
				Code: errs.ProductNotFound.Code,
				Msg:  errs.ProductNotFound.Msg,
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			server := gin.New()
			NewHandler(tc.mock(ctrl)).PublicRoutes(server)

			req, err := http.NewRequest(http.MethodGet, tc.path, nil)
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[Product]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}
