package model

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Artist is a curated reference entry, maintained by administrators.
// Besides the avatar it carries an ordered list of benchmark images,
// each of which is an asset reference like the avatar itself.
type Artist struct {
	gorm.Model
	Name            string                      `gorm:"uniqueIndex;type:varchar(64);not null;comment:艺术家名称"`
	Bio             string                      `gorm:"type:text;comment:简介"`
	Avatar          string                      `gorm:"type:varchar(512);comment:头像引用"`
	BenchmarkImages datatypes.JSONSlice[string] `gorm:"comment:基准图片引用列表"`
	OwnerID         *uint                       `gorm:"index;comment:所有者ID"`
	Owner           *User                       `gorm:"foreignKey:OwnerID;constraint:OnDelete:SET NULL"`
}
