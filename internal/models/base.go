package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel 公共字段（UUID 主键 + 审计时间）
type BaseModel struct {
	ID        string    `gorm:"type:varchar(36);primarykey" json:"id"` // 主键（UUID）
	CreatedAt time.Time `gorm:"index" json:"created_at"`               // 创建时间
	UpdatedAt time.Time `json:"updated_at"`                            // 更新时间
}

// BeforeCreate 写入前生成 UUID 主键
func (m *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
