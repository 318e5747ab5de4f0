package handlers

import (
	"errors"

	"github.com/shopcore/internal/http/response"
	"github.com/shopcore/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系
type mappedHandlerError struct {
	target error
	code   int
	msg    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackMsg string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.msg, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackMsg, err)
}

var cartErrorRules = []mappedHandlerError{
	{target: service.ErrCustomerNotFound, code: response.CodeNotFound, msg: "customer not found"},
	{target: service.ErrCartNotFound, code: response.CodeNotFound, msg: "cart not found"},
	{target: service.ErrActiveCartConflict, code: response.CodeConflict, msg: "multiple active carts"},
	{target: service.ErrProductNotFound, code: response.CodeNotFound, msg: "product not found"},
	{target: service.ErrProductNotOrderable, code: response.CodeBadRequest, msg: "product not orderable"},
	{target: service.ErrQuantityExceeded, code: response.CodeBadRequest, msg: "quantity exceeds available stock"},
}

var orderCreateErrorRules = []mappedHandlerError{
	{target: service.ErrUnsupportedDeliveryMethod, code: response.CodeBadRequest, msg: "unsupported delivery method"},
	{target: service.ErrUnsupportedTransactionType, code: response.CodeBadRequest, msg: "unsupported transaction type"},
	{target: service.ErrCustomerNotFound, code: response.CodeNotFound, msg: "customer not found"},
	{target: service.ErrProfileIncomplete, code: response.CodeBadRequest, msg: "customer profile incomplete"},
	{target: service.ErrNoActiveCart, code: response.CodeBadRequest, msg: "no active cart"},
	{target: service.ErrEmptyCart, code: response.CodeBadRequest, msg: "cart is empty"},
	{target: service.ErrActiveCartConflict, code: response.CodeConflict, msg: "multiple active carts"},
	{target: service.ErrProductNotFound, code: response.CodeNotFound, msg: "product not found"},
	{target: service.ErrProductNotOrderable, code: response.CodeBadRequest, msg: "product not orderable"},
	{target: service.ErrQuantityExceeded, code: response.CodeBadRequest, msg: "quantity exceeds available stock"},
	{target: service.ErrOrderTotalInvalid, code: response.CodeBadRequest, msg: "order total invalid"},
}

var orderTransitionErrorRules = []mappedHandlerError{
	{target: service.ErrOrderNotFound, code: response.CodeNotFound, msg: "order not found"},
	{target: service.ErrInvalidTransition, code: response.CodeConflict, msg: "order status transition not allowed"},
	{target: service.ErrInsufficientStock, code: response.CodeConflict, msg: "insufficient stock"},
	{target: service.ErrProductNotFound, code: response.CodeNotFound, msg: "product not found"},
}

var buyAgainErrorRules = []mappedHandlerError{
	{target: service.ErrOrderItemNotFound, code: response.CodeNotFound, msg: "order item not found"},
	{target: service.ErrProductNotOrderable, code: response.CodeBadRequest, msg: "product not orderable"},
	{target: service.ErrCustomerNotFound, code: response.CodeNotFound, msg: "customer not found"},
	{target: service.ErrQuantityExceeded, code: response.CodeBadRequest, msg: "quantity exceeds available stock"},
	{target: service.ErrActiveCartConflict, code: response.CodeConflict, msg: "multiple active carts"},
	{target: service.ErrCartNotFound, code: response.CodeNotFound, msg: "cart not found"},
}
