package event

const (
	orderEventName        = "order_events"
	registrationEventName = "user_registration_events"
)

// OrderEvent 订单模块发出来的下单成功消息
type OrderEvent struct {
	OrderSN string `json:"orderSN"`
	BuyerID int64  `json:"buyerId"`
	// 实付总价，单位为分
	Total int64 `json:"total"`
}

type RegistrationEvent struct {
	Uid int64 `json:"uid"`
}
