package handlers

import "github.com/shopcore/internal/provider"

// Handler 订单域接口处理器入口
type Handler struct {
	*provider.Container
}

// New 创建处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}

// pageLimits 返回分页默认值与上限
func (h *Handler) pageLimits() (defaultSize, maxSize int) {
	defaultSize, maxSize = 20, 100
	if h.Config == nil {
		return defaultSize, maxSize
	}
	if h.Config.Page.DefaultSize > 0 {
		defaultSize = h.Config.Page.DefaultSize
	}
	if h.Config.Page.MaxSize > 0 {
		maxSize = h.Config.Page.MaxSize
	}
	return defaultSize, maxSize
}
