package model

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// User is the basic entity of the system
type User struct {
	gorm.Model
	Name         string                            `gorm:"uniqueIndex;type:varchar(32);not null;comment:用户名"`
	Nickname     *string                           `gorm:"type:varchar(32);comment:昵称"`
	Password     *string                           `gorm:"type:varchar(128);comment:密码"`
	Role         Role                              `gorm:"not null;comment:平台角色 (admin, user, guest)"`
	Status       Status                            `gorm:"not null;comment:用户状态 (active, inactive)"`
	StorageUsage int64                             `gorm:"type:bigint;not null;default:0;comment:已用存储空间(字节)"`
	Attributes   datatypes.JSONType[UserAttribute] `gorm:"comment:用户的额外属性"`
}

// UserAttribute holds profile fields that do not need their own columns.
type UserAttribute struct {
	Email *string `json:"email,omitempty"`
	Bio   *string `json:"bio,omitempty"`
}
