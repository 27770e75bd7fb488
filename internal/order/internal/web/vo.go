package web

type CreateOrderReq struct {
	// ProductIdentifiers 逗号分隔的商品ID列表，和购物车预览用同一种格式
	ProductIdentifiers string `json:"productIdentifiers"`
	PaymentMethod      string `json:"paymentMethod"`
	DeliveryAddress    string `json:"deliveryAddress"`
}

type UpdateOrderReq struct {
	PaymentStatus string `json:"paymentStatus"`
	OrderStatus   string `json:"orderStatus"`
}

type ListOrdersResp struct {
	Total  int64   `json:"total"`
	Orders []Order `json:"orders"`
}

type Order struct {
	ID              int64       `json:"id"`
	SN              string      `json:"sn"`
	BuyerID         int64       `json:"buyerId"`
	DeliveryAddress string      `json:"deliveryAddress"`
	PaymentMethod   string      `json:"paymentMethod"`
	PaymentStatus   string      `json:"paymentStatus"`
	OrderStatus     string      `json:"orderStatus"`
	SubTotal        int64       `json:"subTotal"`
	ShippingFee     int64       `json:"shippingFee"`
	Total           int64       `json:"total"`
	Items           []OrderItem `json:"items"`
	Ctime           int64       `json:"ctime"`
	Utime           int64       `json:"utime"`
}

// OrderItem 不带回指订单的字段，序列化永远不会转圈
type OrderItem struct {
	ProductID   int64  `json:"productId"`
	ProductName string `json:"productName"`
	Quantity    int64  `json:"quantity"`
	UnitPrice   int64  `json:"unitPrice"`
	Total       int64  `json:"total"`
}
