package web

import (
	"github.com/ecodeclub/eshop/internal/order/internal/errs"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	orderNotFoundResult = ginx.Result{
		Code: errs.OrderNotFound.Code,
		Msg:  errs.OrderNotFound.Msg,
	}
	invalidPaymentMethodResult = ginx.Result{
		Code: errs.InvalidPaymentMethod.Code,
		Msg:  errs.InvalidPaymentMethod.Msg,
	}
	invalidDeliveryAddressResult = ginx.Result{
		Code: errs.InvalidDeliveryAddress.Code,
		Msg:  errs.InvalidDeliveryAddress.Msg,
	}
	productNotAvailableResult = ginx.Result{
		Code: errs.ProductNotAvailable.Code,
		Msg:  errs.ProductNotAvailable.Msg,
	}
	emptyOrderResult = ginx.Result{
		Code: errs.EmptyOrder.Code,
		Msg:  errs.EmptyOrder.Msg,
	}
	nothingToUpdateResult = ginx.Result{
		Code: errs.NothingToUpdate.Code,
		Msg:  errs.NothingToUpdate.Msg,
	}
	invalidStatusResult = ginx.Result{
		Code: errs.InvalidStatus.Code,
		Msg:  errs.InvalidStatus.Msg,
	}
)
