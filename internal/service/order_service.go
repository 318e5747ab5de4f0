package service

import (
	"github.com/shopcore/internal/constants"
	"github.com/shopcore/internal/logger"
	"github.com/shopcore/internal/models"
	"github.com/shopcore/internal/queue"
	"github.com/shopcore/internal/repository"

	"gorm.io/gorm"
)

// CreateOrderInput 下单输入
type CreateOrderInput struct {
	CustomerID      string
	DeliveryMethod  string
	TransactionType string
}

// OrderService 订单生命周期服务。
// 状态流转统一走状态守卫更新：先在事务内完成 CAS 置位，
// 再执行副作用，并发竞争方在 CAS 处落空并回滚。
type OrderService struct {
	orderRepo    repository.OrderRepository
	cartRepo     repository.CartRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	cartService  *CartService
	inventory    *InventoryService
	transactions *TransactionService
	queueClient  *queue.Client
}

// NewOrderService 创建订单服务
func NewOrderService(
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	cartService *CartService,
	inventory *InventoryService,
	transactions *TransactionService,
	queueClient *queue.Client,
) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		cartRepo:     cartRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		cartService:  cartService,
		inventory:    inventory,
		transactions: transactions,
		queueClient:  queueClient,
	}
}

// calculateItemTotal 计算订单项小计：单价 × 数量 × (1 - 折扣百分比/100)，保留 2 位小数
func calculateItemTotal(product *models.Product, quantity int) models.Money {
	total := product.Price.MulInt(quantity)
	if product.Discount != nil {
		total = total.ApplyDiscountPercent(*product.Discount)
	}
	return total
}

// CreateOrder 将客户的活跃购物车转换为订单。
// 校验阶段不加锁；落库阶段在单个事务内完成订单、订单项、
// 交易记录的写入与购物车关单。库存在发货时才扣减。
func (s *OrderService) CreateOrder(input CreateOrderInput) (*models.Order, error) {
	deliveryMethod, err := resolveDeliveryMethod(input.DeliveryMethod)
	if err != nil {
		return nil, err
	}
	transactionType, err := resolveTransactionType(input.TransactionType)
	if err != nil {
		return nil, err
	}

	customer, err := s.customerRepo.GetByID(input.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}

	cart, err := s.cartService.GetActiveCart(input.CustomerID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, ErrNoActiveCart
	}
	cartItems, err := s.cartRepo.ListItems(cart.ID)
	if err != nil {
		return nil, err
	}
	if len(cartItems) == 0 {
		return nil, ErrEmptyCart
	}

	// 购物车确认非空后再校验收货资料
	if !customer.ProfileComplete() {
		return nil, ErrProfileIncomplete
	}

	orderItems := make([]models.OrderItem, 0, len(cartItems))
	orderTotal := models.Money{}
	for _, item := range cartItems {
		product := item.Product
		if product == nil || product.ID == "" {
			product, err = s.productRepo.GetByID(item.ProductID)
			if err != nil {
				return nil, err
			}
		}
		if product == nil {
			return nil, ErrProductNotFound
		}
		if !product.Orderable() {
			return nil, ErrProductNotOrderable
		}
		if int64(item.Quantity) > product.Quantity {
			return nil, ErrQuantityExceeded
		}
		itemTotal := calculateItemTotal(product, item.Quantity)
		orderItems = append(orderItems, models.OrderItem{
			ProductID: item.ProductID,
			OptionID:  item.OptionID,
			Quantity:  item.Quantity,
			Total:     itemTotal,
		})
		orderTotal = orderTotal.Add(itemTotal)
	}
	if len(orderItems) == 0 || orderTotal.Decimal.IsNegative() {
		return nil, ErrOrderTotalInvalid
	}

	order := &models.Order{
		OrderNo:        generateOrderNo(),
		CustomerID:     customer.ID,
		CartID:         cart.ID,
		Status:         constants.OrderStatusProcessing,
		DeliveryMethod: deliveryMethod,
		ContactName:    customer.FullName(),
		PhoneNumber:    customer.PhoneNumber,
		Address:        customer.Address,
		Total:          orderTotal,
	}
	transaction := s.transactions.Open(transactionType)

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.orderRepo.WithTx(tx).Create(order, orderItems, transaction); err != nil {
			return err
		}
		return s.cartRepo.WithTx(tx).MarkCompleted(cart.ID)
	})
	if err != nil {
		return nil, err
	}

	logger.Infow("order_created",
		"order_id", order.ID,
		"order_no", order.OrderNo,
		"customer_id", order.CustomerID,
		"total", order.Total.String(),
	)
	s.emitOrderResync(order)
	return order, nil
}

// AdvanceToShipping 发货：processing -> shipping。
// 先做状态 CAS，再逐项扣减库存，任一商品库存不足整体回滚。
// 银行转账类交易在发货时视为已到账。
func (s *OrderService) AdvanceToShipping(orderID string) (*models.Order, error) {
	order, err := s.getOrder(orderID)
	if err != nil {
		return nil, err
	}
	target, err := nextOrderStatus(order.Status, orderActionShip)
	if err != nil {
		return nil, err
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.orderRepo.WithTx(tx).UpdateStatusFrom(order.ID, constants.OrderStatusProcessing, target)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrInvalidTransition
		}
		inventory := s.inventory.WithTx(tx)
		for _, item := range order.Items {
			if err := inventory.Decrement(item.ProductID, item.Quantity); err != nil {
				return err
			}
		}
		if order.Transaction != nil && order.Transaction.Type == constants.TransactionTypeBanking {
			return s.transactions.MarkCompleted(tx, order.Transaction.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	order.Status = target
	logger.Infow("order_shipped", "order_id", order.ID, "order_no", order.OrderNo)
	s.emitOrderResync(order)
	return order, nil
}

// CompleteOrder 完成订单：shipping -> completed。货到付款在此时视为已收款。
func (s *OrderService) CompleteOrder(orderID string) (*models.Order, error) {
	order, err := s.getOrder(orderID)
	if err != nil {
		return nil, err
	}
	target, err := nextOrderStatus(order.Status, orderActionComplete)
	if err != nil {
		return nil, err
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.orderRepo.WithTx(tx).UpdateStatusFrom(order.ID, constants.OrderStatusShipping, target)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrInvalidTransition
		}
		if order.Transaction != nil && order.Transaction.Type == constants.TransactionTypeCOD {
			return s.transactions.MarkCompleted(tx, order.Transaction.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	order.Status = target
	logger.Infow("order_completed", "order_id", order.ID, "order_no", order.OrderNo)
	s.emitOrderResync(order)
	return order, nil
}

// CancelOrder 取消订单。processing 阶段库存尚未扣减，直接置位；
// shipping 阶段已扣减，取消时按订单项原量回补。
func (s *OrderService) CancelOrder(orderID string) (*models.Order, error) {
	order, err := s.getOrder(orderID)
	if err != nil {
		return nil, err
	}
	target, err := nextOrderStatus(order.Status, orderActionCancel)
	if err != nil {
		return nil, err
	}
	fromStatus := order.Status

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.orderRepo.WithTx(tx).UpdateStatusFrom(order.ID, fromStatus, target)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrInvalidTransition
		}
		if fromStatus == constants.OrderStatusShipping {
			inventory := s.inventory.WithTx(tx)
			for _, item := range order.Items {
				if err := inventory.Restock(item.ProductID, item.Quantity); err != nil {
					return err
				}
			}
		}
		if order.Transaction != nil {
			return s.transactions.MarkCancelled(tx, order.Transaction.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	order.Status = target
	logger.Infow("order_cancelled",
		"order_id", order.ID,
		"order_no", order.OrderNo,
		"from_status", fromStatus,
	)
	s.emitOrderResync(order)
	return order, nil
}

// BuyAgain 再次购买：将历史订单项对应的商品以数量 1 合并进当前活跃购物车。
// 订单项必须归属当前客户，越权一律按不存在处理。
func (s *OrderService) BuyAgain(customerID, orderItemID string) error {
	detail, err := s.orderRepo.GetItemDetail(orderItemID)
	if err != nil {
		return err
	}
	if detail == nil || detail.CustomerID != customerID {
		return ErrOrderItemNotFound
	}
	orderable, err := s.inventory.IsOrderable(detail.ProductID)
	if err != nil {
		return err
	}
	if !orderable {
		return ErrProductNotOrderable
	}
	cart, err := s.cartService.EnsureActiveCart(customerID)
	if err != nil {
		return err
	}
	return s.cartService.AddOrIncrementItem(cart, detail.ProductID, detail.OptionID, 1)
}

// getOrder 加载订单（含订单项与交易），不存在时返回 ErrOrderNotFound
func (s *OrderService) getOrder(orderID string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// emitOrderResync 提交后发出索引重建信号，失败只记日志不回滚业务
func (s *OrderService) emitOrderResync(order *models.Order) {
	if s.queueClient == nil || !s.queueClient.Enabled() {
		return
	}
	if err := s.queueClient.EnqueueOrderResync(queue.OrderResyncPayload{OrderID: order.ID}); err != nil {
		logger.Warnw("order_resync_enqueue_failed", "order_id", order.ID, "error", err)
	}
	for _, item := range order.Items {
		payload := queue.ProductResyncPayload{ProductID: item.ProductID}
		if err := s.queueClient.EnqueueProductResync(payload); err != nil {
			logger.Warnw("product_resync_enqueue_failed", "product_id", item.ProductID, "error", err)
		}
	}
}
