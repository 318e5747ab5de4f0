package handlers

import (
	"github.com/shopcore/internal/http/response"
	"github.com/shopcore/internal/models"
	"github.com/shopcore/internal/service"

	"github.com/gin-gonic/gin"
)

// CartItemRequest 购物车项请求
type CartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	OptionID  string `json:"option_id"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
}

// CartProduct 购物车商品摘要
type CartProduct struct {
	ID               string        `json:"id"`
	Slug             string        `json:"slug"`
	Name             string        `json:"name"`
	Price            models.Money  `json:"price"`
	Discount         *models.Money `json:"discount,omitempty"`
	Quantity         int64         `json:"quantity"`
	IsPublished      bool          `json:"is_published"`
	IsAllowedToOrder bool          `json:"is_allowed_to_order"`
}

// CartItemResponse 购物车项响应
type CartItemResponse struct {
	ProductID string       `json:"product_id"`
	OptionID  string       `json:"option_id,omitempty"`
	Quantity  int          `json:"quantity"`
	UnitPrice models.Money `json:"unit_price"`
	Product   CartProduct  `json:"product"`
}

// GetCart 获取当前客户的活跃购物车
func (h *Handler) GetCart(c *gin.Context) {
	customerID, ok := getCustomerID(c)
	if !ok {
		return
	}

	items, err := h.CartService.ListItems(customerID)
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "cart fetch failed")
		return
	}

	respItems := make([]CartItemResponse, 0, len(items))
	for _, item := range items {
		if item.Product == nil {
			continue
		}
		respItems = append(respItems, CartItemResponse{
			ProductID: item.ProductID,
			OptionID:  item.OptionID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Product: CartProduct{
				ID:               item.Product.ID,
				Slug:             item.Product.Slug,
				Name:             item.Product.Name,
				Price:            item.Product.Price,
				Discount:         item.Product.Discount,
				Quantity:         item.Product.Quantity,
				IsPublished:      item.Product.IsPublished,
				IsAllowedToOrder: item.Product.IsAllowedToOrder,
			},
		})
	}
	response.Success(c, gin.H{"items": respItems})
}

// UpsertCartItem 添加/合并购物车项
func (h *Handler) UpsertCartItem(c *gin.Context) {
	customerID, ok := getCustomerID(c)
	if !ok {
		return
	}
	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	if err := h.CartService.UpsertItem(service.AddCartItemInput{
		CustomerID: customerID,
		ProductID:  req.ProductID,
		OptionID:   req.OptionID,
		Quantity:   req.Quantity,
	}); err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "cart update failed")
		return
	}
	response.Success(c, gin.H{"updated": true})
}
