package model

import (
	"gorm.io/gorm"
)

// Inspiration is a shared gallery item, usually published from a chain.
type Inspiration struct {
	gorm.Model
	Title   string `gorm:"type:varchar(128);not null;comment:标题"`
	Prompt  string `gorm:"type:text;comment:生成提示词"`
	Image   string `gorm:"type:varchar(512);comment:图片引用"`
	OwnerID *uint  `gorm:"index;comment:所有者ID"`
	Owner   *User  `gorm:"foreignKey:OwnerID;constraint:OnDelete:SET NULL"`
}
