// 定义与数据库表字段对应的常量
// 由于 Gin 框架在进行参数校验时，如果给了 required 标签，则不能传入零值
// 这个时候，我们可以通过定义对应类型的指针解决该问题，但这可能导致出错
// 所以在定义常量时，最好将零值排除在外，请使用 iota + 1 定义第一个常量
package model

// User role in platform
type Role uint8

const (
	RoleGuest Role = iota + 1
	RoleUser
	RoleAdmin
)

// User status
type Status uint8

const (
	StatusPending  Status = iota + 1 // Pending status, not yet activated
	StatusActive                     // Active status
	StatusInactive                   // Inactive status
)
