package handlers

import (
	"strconv"
	"strings"

	"github.com/shopcore/internal/http/response"
	"github.com/shopcore/internal/models"
	"github.com/shopcore/internal/repository"
	"github.com/shopcore/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateOrderRequest 下单请求
type CreateOrderRequest struct {
	DeliveryMethod  string `json:"delivery_method" binding:"required"`
	TransactionType string `json:"transaction_type" binding:"required"`
}

// OrderItemView 订单项视图
type OrderItemView struct {
	ID        string       `json:"id"`
	ProductID string       `json:"product_id"`
	OptionID  string       `json:"option_id,omitempty"`
	Quantity  int          `json:"quantity"`
	Total     models.Money `json:"total"`
}

// TransactionView 交易视图
type TransactionView struct {
	ID     string `json:"id"`
	Type   string `json:"type"`
	Status string `json:"status"`
}

// OrderView 订单视图
type OrderView struct {
	ID             string           `json:"id"`
	OrderNo        string           `json:"order_no"`
	Status         string           `json:"status"`
	DeliveryMethod string           `json:"delivery_method"`
	ContactName    string           `json:"contact_name"`
	PhoneNumber    string           `json:"phone_number"`
	Address        string           `json:"address"`
	Total          models.Money     `json:"total"`
	Items          []OrderItemView  `json:"items,omitempty"`
	Transaction    *TransactionView `json:"transaction,omitempty"`
	CreatedAt      string           `json:"created_at"`
}

func buildOrderView(order *models.Order) OrderView {
	view := OrderView{
		ID:             order.ID,
		OrderNo:        order.OrderNo,
		Status:         order.Status,
		DeliveryMethod: order.DeliveryMethod,
		ContactName:    order.ContactName,
		PhoneNumber:    order.PhoneNumber,
		Address:        order.Address,
		Total:          order.Total,
		CreatedAt:      order.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	for _, item := range order.Items {
		view.Items = append(view.Items, OrderItemView{
			ID:        item.ID,
			ProductID: item.ProductID,
			OptionID:  item.OptionID,
			Quantity:  item.Quantity,
			Total:     item.Total,
		})
	}
	if order.Transaction != nil {
		view.Transaction = &TransactionView{
			ID:     order.Transaction.ID,
			Type:   order.Transaction.Type,
			Status: order.Transaction.Status,
		}
	}
	return view
}

// CreateOrder 将活跃购物车转换为订单
func (h *Handler) CreateOrder(c *gin.Context) {
	customerID, ok := getCustomerID(c)
	if !ok {
		return
	}
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	order, err := h.OrderService.CreateOrder(service.CreateOrderInput{
		CustomerID:      customerID,
		DeliveryMethod:  req.DeliveryMethod,
		TransactionType: req.TransactionType,
	})
	if err != nil {
		respondWithMappedError(c, err, orderCreateErrorRules, response.CodeInternal, "order create failed")
		return
	}
	response.Success(c, buildOrderView(order))
}

// ListOrders 分页查询当前客户的订单
func (h *Handler) ListOrders(c *gin.Context) {
	customerID, ok := getCustomerID(c)
	if !ok {
		return
	}
	defaultSize, maxSize := h.pageLimits()
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultSize)))
	if pageSize > maxSize {
		pageSize = maxSize
	}

	result, err := h.OrderService.ListByCustomer(repository.OrderListFilter{
		Page:       page,
		PageSize:   pageSize,
		CustomerID: customerID,
		Status:     strings.TrimSpace(c.Query("status")),
		OrderNo:    strings.TrimSpace(c.Query("order_no")),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "order list failed", err)
		return
	}

	views := make([]OrderView, 0, len(result.Orders))
	for i := range result.Orders {
		views = append(views, buildOrderView(&result.Orders[i]))
	}
	response.SuccessWithPage(c, gin.H{"orders": views},
		response.NewPagination(result.Page, result.PageSize, result.Total))
}

// GetOrder 获取订单详情
func (h *Handler) GetOrder(c *gin.Context) {
	customerID, ok := getCustomerID(c)
	if !ok {
		return
	}
	order, err := h.OrderService.GetOrderDetail(c.Param("id"))
	if err != nil {
		respondWithMappedError(c, err, orderTransitionErrorRules, response.CodeInternal, "order fetch failed")
		return
	}
	// 越权访问按不存在处理
	if order.CustomerID != customerID {
		respondError(c, response.CodeNotFound, "order not found", nil)
		return
	}
	response.Success(c, buildOrderView(order))
}

// ShipOrder 发货
func (h *Handler) ShipOrder(c *gin.Context) {
	order, err := h.OrderService.AdvanceToShipping(c.Param("id"))
	if err != nil {
		respondWithMappedError(c, err, orderTransitionErrorRules, response.CodeInternal, "order ship failed")
		return
	}
	response.Success(c, buildOrderView(order))
}

// CompleteOrder 完成订单
func (h *Handler) CompleteOrder(c *gin.Context) {
	order, err := h.OrderService.CompleteOrder(c.Param("id"))
	if err != nil {
		respondWithMappedError(c, err, orderTransitionErrorRules, response.CodeInternal, "order complete failed")
		return
	}
	response.Success(c, buildOrderView(order))
}

// CancelOrder 取消订单
func (h *Handler) CancelOrder(c *gin.Context) {
	order, err := h.OrderService.CancelOrder(c.Param("id"))
	if err != nil {
		respondWithMappedError(c, err, orderTransitionErrorRules, response.CodeInternal, "order cancel failed")
		return
	}
	response.Success(c, buildOrderView(order))
}

// BuyAgain 再次购买历史订单项
func (h *Handler) BuyAgain(c *gin.Context) {
	customerID, ok := getCustomerID(c)
	if !ok {
		return
	}
	if err := h.OrderService.BuyAgain(customerID, c.Param("id")); err != nil {
		respondWithMappedError(c, err, buyAgainErrorRules, response.CodeInternal, "buy again failed")
		return
	}
	response.Success(c, gin.H{"added": true})
}
