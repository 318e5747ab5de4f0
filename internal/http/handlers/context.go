package handlers

import (
	"strings"

	"github.com/shopcore/internal/http/response"

	"github.com/gin-gonic/gin"
)

// CustomerIDHeader 客户身份头。身份校验由外层网关完成，
// 这里只要求头存在且非空。
const CustomerIDHeader = "X-Customer-ID"

func getCustomerID(c *gin.Context) (string, bool) {
	customerID := strings.TrimSpace(c.GetHeader(CustomerIDHeader))
	if customerID == "" {
		respondError(c, response.CodeBadRequest, "customer id header required", nil)
		return "", false
	}
	return customerID, true
}
