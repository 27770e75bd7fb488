package errs

var (
	SystemError            = ErrorCode{Code: 503001, Msg: "系统错误"}
	OrderNotFound          = ErrorCode{Code: 503002, Msg: "订单不存在"}
	InvalidPaymentMethod   = ErrorCode{Code: 503003, Msg: "非法支付方式"}
	InvalidDeliveryAddress = ErrorCode{Code: 503004, Msg: "非法收货地址"}
	ProductNotAvailable    = ErrorCode{Code: 503005, Msg: "商品不可用"}
	EmptyOrder             = ErrorCode{Code: 503006, Msg: "订单不能为空"}
	NothingToUpdate        = ErrorCode{Code: 503007, Msg: "没有要更新的字段"}
	InvalidStatus          = ErrorCode{Code: 503008, Msg: "非法订单状态"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
