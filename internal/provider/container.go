package provider

import (
	"github.com/shopcore/internal/config"
	"github.com/shopcore/internal/logger"
	"github.com/shopcore/internal/models"
	"github.com/shopcore/internal/queue"
	"github.com/shopcore/internal/repository"
	"github.com/shopcore/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	CustomerRepo    repository.CustomerRepository
	ProductRepo     repository.ProductRepository
	CartRepo        repository.CartRepository
	OrderRepo       repository.OrderRepository
	TransactionRepo repository.TransactionRepository

	// Services
	InventoryService   *service.InventoryService
	TransactionService *service.TransactionService
	CartService        *service.CartService
	OrderService       *service.OrderService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	c.initRepositories()
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.CustomerRepo = repository.NewCustomerRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.TransactionRepo = repository.NewTransactionRepository(db)
}

func (c *Container) initServices() {
	c.InventoryService = service.NewInventoryService(c.ProductRepo)
	c.TransactionService = service.NewTransactionService(c.TransactionRepo)
	c.CartService = service.NewCartService(c.CartRepo, c.ProductRepo, c.CustomerRepo)
	c.OrderService = service.NewOrderService(
		c.OrderRepo,
		c.CartRepo,
		c.CustomerRepo,
		c.ProductRepo,
		c.CartService,
		c.InventoryService,
		c.TransactionService,
		c.QueueClient,
	)
}

// Close 释放容器持有的资源
func (c *Container) Close() {
	if c.QueueClient != nil {
		if err := c.QueueClient.Close(); err != nil {
			logger.Warnw("provider_close_queue_client_failed", "error", err)
		}
	}
}
