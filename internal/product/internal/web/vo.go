package web

type Product struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Image       string `json:"image"`
}

type ListProductsReq struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type ListProductsResp struct {
	Total    int64     `json:"total"`
	Products []Product `json:"products"`
}

type SaveProductReq struct {
	Product Product `json:"product"`
}
