package request

type AddBasketItemRequest struct {
	ItemName string `json:"item_name" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,gt=0"`
}

type UpdateBasketItemRequest struct {
	Quantity int `json:"quantity" binding:"required,gt=0"`
}
