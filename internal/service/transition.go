package service

import "github.com/shopcore/internal/constants"

// 订单状态机动作
const (
	orderActionShip     = "ship"
	orderActionComplete = "complete"
	orderActionCancel   = "cancel"
)

// orderTransitions 订单状态流转表：当前状态 -> 动作 -> 目标状态。
// completed 与 cancelled 为终态，不出现在表中。
var orderTransitions = map[string]map[string]string{
	constants.OrderStatusProcessing: {
		orderActionShip:   constants.OrderStatusShipping,
		orderActionCancel: constants.OrderStatusCancelled,
	},
	constants.OrderStatusShipping: {
		orderActionComplete: constants.OrderStatusCompleted,
		orderActionCancel:   constants.OrderStatusCancelled,
	},
}

// nextOrderStatus 计算状态机流转结果；非法流转返回 ErrInvalidTransition。
func nextOrderStatus(current, action string) (string, error) {
	actions, ok := orderTransitions[current]
	if !ok {
		return "", ErrInvalidTransition
	}
	next, ok := actions[action]
	if !ok {
		return "", ErrInvalidTransition
	}
	return next, nil
}

// resolveDeliveryMethod 校验并返回配送方式枚举值
func resolveDeliveryMethod(raw string) (string, error) {
	switch raw {
	case constants.DeliveryMethodShoppeExpress,
		constants.DeliveryMethodGrabExpress,
		constants.DeliveryMethodYasExpress:
		return raw, nil
	default:
		return "", ErrUnsupportedDeliveryMethod
	}
}

// resolveTransactionType 校验并返回交易类型枚举值
func resolveTransactionType(raw string) (string, error) {
	switch raw {
	case constants.TransactionTypeCOD, constants.TransactionTypeBanking:
		return raw, nil
	default:
		return "", ErrUnsupportedTransactionType
	}
}
