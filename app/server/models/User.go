package models

import "time"

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User 即身份记录，邮箱是登录主体
type User struct {
	ID        uint      `gorm:"column:id;primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`

	// 基础信息
	Email    string `gorm:"column:email;uniqueIndex;not null" json:"email"` // 邮箱，全局唯一
	Username string `gorm:"column:username" json:"userName"`                // 显示名称，不要求唯一
	Role     Role   `gorm:"column:role;type:varchar(16);not null;default:'USER'" json:"role"`

	// 登录与授权认证相关
	PasswordHash  string `gorm:"column:password_hash;not null" json:"-"` // 密码，使用 argon2id 储存，永不输出
	Enabled       bool   `gorm:"column:enabled;not null" json:"enabled"`
	AccountLocked bool   `gorm:"column:account_locked;not null" json:"accountLocked"`

	// 随用户一同创建与删除
	Profile Profile `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"profile"`
}

// CanAuthenticate 账户状态允许登录或者携带令牌访问
func (u *User) CanAuthenticate() bool {
	return u.Enabled && !u.AccountLocked
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
