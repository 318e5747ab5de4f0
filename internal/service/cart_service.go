package service

import (
	"github.com/shopcore/internal/constants"
	"github.com/shopcore/internal/models"
	"github.com/shopcore/internal/repository"

	"gorm.io/gorm"
)

// CartItemDetail 购物车项详情（用于响应）
type CartItemDetail struct {
	ProductID string          `json:"product_id"`
	OptionID  string          `json:"option_id,omitempty"`
	Quantity  int             `json:"quantity"`
	UnitPrice models.Money    `json:"unit_price"`
	Discount  *models.Money   `json:"discount,omitempty"`
	Product   *models.Product `json:"product,omitempty"`
}

// AddCartItemInput 添加购物车项输入
type AddCartItemInput struct {
	CustomerID string
	ProductID  string
	OptionID   string
	Quantity   int
}

// CartService 购物车服务。约束：同一客户任意时刻至多一个活跃购物车。
type CartService struct {
	cartRepo     repository.CartRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
}

// NewCartService 创建购物车服务
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository, customerRepo repository.CustomerRepository) *CartService {
	return &CartService{
		cartRepo:     cartRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
	}
}

// GetActiveCart 获取客户的活跃购物车；不存在时返回 nil。
// 同一客户出现多个活跃购物车属于一致性故障，直接报冲突而不是悄悄修复。
func (s *CartService) GetActiveCart(customerID string) (*models.Cart, error) {
	carts, err := s.cartRepo.ListActiveByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	if len(carts) > 1 {
		return nil, ErrActiveCartConflict
	}
	if len(carts) == 0 {
		return nil, nil
	}
	return &carts[0], nil
}

// EnsureActiveCart 返回已存在的活跃购物车，没有则新建一个空购物车
func (s *CartService) EnsureActiveCart(customerID string) (*models.Cart, error) {
	cart, err := s.GetActiveCart(customerID)
	if err != nil {
		return nil, err
	}
	if cart != nil {
		return cart, nil
	}
	customer, err := s.customerRepo.GetByID(customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}
	cart = &models.Cart{
		CustomerID: customerID,
		Status:     constants.CartStatusActive,
	}
	if err := s.cartRepo.Create(cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// AddOrIncrementItem 向购物车合并数量：同一（商品, 选项）已存在时累加，
// 否则新建；合并后的数量不得超过商品当前库存。
func (s *CartService) AddOrIncrementItem(cart *models.Cart, productID, optionID string, delta int) error {
	if cart == nil || delta <= 0 {
		return ErrCartNotFound
	}
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}
	if !product.Orderable() {
		return ErrProductNotOrderable
	}

	return models.DB.Transaction(func(tx *gorm.DB) error {
		cartRepo := s.cartRepo.WithTx(tx)
		existing, err := cartRepo.GetItemQuantity(cart.ID, productID, optionID)
		if err != nil {
			return err
		}
		if existing != nil {
			merged := existing.Quantity + delta
			if int64(merged) > product.Quantity {
				return ErrQuantityExceeded
			}
			return cartRepo.UpdateItemQuantity(existing.ItemID, merged)
		}
		if int64(delta) > product.Quantity {
			return ErrQuantityExceeded
		}
		return cartRepo.CreateItem(&models.CartItem{
			CartID:    cart.ID,
			ProductID: productID,
			OptionID:  optionID,
			Quantity:  delta,
		})
	})
}

// UpsertItem 请求层入口：定位（或创建）活跃购物车后合并数量
func (s *CartService) UpsertItem(input AddCartItemInput) error {
	cart, err := s.EnsureActiveCart(input.CustomerID)
	if err != nil {
		return err
	}
	return s.AddOrIncrementItem(cart, input.ProductID, input.OptionID, input.Quantity)
}

// ListItems 获取客户活跃购物车的明细视图
func (s *CartService) ListItems(customerID string) ([]CartItemDetail, error) {
	cart, err := s.GetActiveCart(customerID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return []CartItemDetail{}, nil
	}
	items, err := s.cartRepo.ListItems(cart.ID)
	if err != nil {
		return nil, err
	}
	details := make([]CartItemDetail, 0, len(items))
	for _, item := range items {
		product := item.Product
		if product == nil || product.ID == "" {
			p, err := s.productRepo.GetByID(item.ProductID)
			if err != nil {
				return nil, err
			}
			product = p
		}
		if product == nil {
			continue
		}
		details = append(details, CartItemDetail{
			ProductID: item.ProductID,
			OptionID:  item.OptionID,
			Quantity:  item.Quantity,
			UnitPrice: product.Price,
			Discount:  product.Discount,
			Product:   product,
		})
	}
	return details, nil
}
