package web

import (
	"github.com/ecodeclub/eshop/internal/product/internal/domain"
	"github.com/ecodeclub/eshop/internal/product/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

// AdminHandler 挂在 admin server 上，上架和修改商品
type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/product")
	g.POST("/save", ginx.B[SaveProductReq](h.Save))
}

func (h *AdminHandler) PublicRoutes(_ *gin.Engine) {}

func (h *AdminHandler) Save(ctx *ginx.Context, req SaveProductReq) (ginx.Result, error) {
	if req.Product.Name == "" || req.Product.Price <= 0 {
		return ginx.Result{
			Code: invalidInputResult.Code,
			Msg:  invalidInputResult.Msg,
		}, nil
	}
	id, err := h.svc.Save(ctx.Request.Context(), domain.Product{
		ID:          req.Product.ID,
		Name:        req.Product.Name,
		Description: req.Product.Description,
		Price:       req.Product.Price,
		Image:       req.Product.Image,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: id}, nil
}
