package constants

// 订单状态常量
const (
	OrderStatusProcessing = "processing"
	OrderStatusShipping   = "shipping"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// 购物车状态常量
const (
	CartStatusActive    = "active"
	CartStatusCompleted = "completed"
)

// 交易类型常量
const (
	TransactionTypeCOD     = "COD"
	TransactionTypeBanking = "BANKING"
)

// 交易状态常量
const (
	TransactionStatusPending   = "pending"
	TransactionStatusCompleted = "completed"
	TransactionStatusCancelled = "cancelled"
)

// 配送方式常量
const (
	DeliveryMethodShoppeExpress = "SHOPPE_EXPRESS"
	DeliveryMethodGrabExpress   = "GRAB_EXPRESS"
	DeliveryMethodYasExpress    = "YAS_EXPRESS"
)

// 队列与任务名称常量
const (
	QueueDefault      = "default"
	TaskProductResync = "search:product_resync"
	TaskOrderResync   = "search:order_resync"
)
