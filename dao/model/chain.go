package model

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Chain is a prompt configuration created by a user.
// OwnerID may be null for legacy or globally shared records.
type Chain struct {
	gorm.Model
	Title   string         `gorm:"type:varchar(128);not null;comment:标题"`
	Config  datatypes.JSON `gorm:"type:jsonb;comment:提示词配置"`
	Cover   string         `gorm:"type:varchar(512);comment:封面图片引用"`
	Shared  bool           `gorm:"type:boolean;default:false;comment:是否共享"`
	OwnerID *uint          `gorm:"index;comment:所有者ID"`
	Owner   *User          `gorm:"foreignKey:OwnerID;constraint:OnDelete:SET NULL"`
}
