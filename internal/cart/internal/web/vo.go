package web

type CartItem struct {
	ProductID   int64  `json:"productId"`
	ProductName string `json:"productName"`
	Quantity    int64  `json:"quantity"`
	UnitPrice   int64  `json:"unitPrice"`
	Total       int64  `json:"total"`
}

type Cart struct {
	Items       []CartItem `json:"items"`
	SubTotal    int64      `json:"subTotal"`
	ShippingFee int64      `json:"shippingFee"`
	Total       int64      `json:"total"`
}

type PaymentMethod struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}
