package service

import "errors"

// 业务错误定义，出错时原样返回给请求层，由请求层映射为接口响应。
var (
	// 资源不存在
	ErrOrderNotFound     = errors.New("order not found")
	ErrOrderItemNotFound = errors.New("order item not found")
	ErrProductNotFound   = errors.New("product not found")
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrCartNotFound      = errors.New("cart not found")

	// 购物车一致性冲突：同一客户同时存在多个活跃购物车
	ErrActiveCartConflict = errors.New("only one active cart allowed")

	// 下单前置条件
	ErrNoActiveCart      = errors.New("no active cart")
	ErrEmptyCart         = errors.New("active cart has no items")
	ErrProfileIncomplete = errors.New("customer profile incomplete")

	// 商品与库存
	ErrProductNotOrderable = errors.New("product not allowed to order")
	ErrQuantityExceeded    = errors.New("quantity exceeds available stock")
	ErrInsufficientStock   = errors.New("insufficient stock")

	// 状态机与枚举
	ErrInvalidTransition          = errors.New("invalid order status transition")
	ErrUnsupportedDeliveryMethod  = errors.New("unsupported delivery method")
	ErrUnsupportedTransactionType = errors.New("unsupported transaction type")

	// 金额计算异常（正常流程不可达的兜底）
	ErrOrderTotalInvalid = errors.New("order total computation failed")
)
