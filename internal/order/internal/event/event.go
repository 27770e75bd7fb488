package event

const orderEventName = "order_events"

// OrderEvent 下单成功之后发出去，通知模块靠它给买家发确认邮件
type OrderEvent struct {
	OrderSN string `json:"orderSN"`
	BuyerID int64  `json:"buyerId"`
	// 实付总价，单位为分
	Total int64 `json:"total"`
}
