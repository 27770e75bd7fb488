package web

import (
	"github.com/ecodeclub/eshop/internal/user/internal/errs"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	duplicateEmailResult = ginx.Result{
		Code: errs.DuplicateEmail.Code,
		Msg:  errs.DuplicateEmail.Msg,
	}
	invalidEmailOrPasswordResult = ginx.Result{
		Code: errs.InvalidEmailOrPassword.Code,
		Msg:  errs.InvalidEmailOrPassword.Msg,
	}
	userNotFoundResult = ginx.Result{
		Code: errs.UserNotFound.Code,
		Msg:  errs.UserNotFound.Msg,
	}
	invalidResetTokenResult = ginx.Result{
		Code: errs.InvalidResetToken.Code,
		Msg:  errs.InvalidResetToken.Msg,
	}
	invalidInputResult = ginx.Result{
		Code: errs.InvalidInput.Code,
		Msg:  errs.InvalidInput.Msg,
	}
)
