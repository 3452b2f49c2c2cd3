package models

type Profile struct {
	ID     uint `gorm:"column:id;primaryKey" json:"-"`
	UserID uint `gorm:"column:user_id;uniqueIndex;not null" json:"-"` // 只保留外键，不反向引用 User

	FirstName string `gorm:"column:first_name" json:"firstName"`
	LastName  string `gorm:"column:last_name" json:"lastName"`
	Bio       string `gorm:"column:bio" json:"bio"`
}

// SameAs 只比较内容字段
func (p Profile) SameAs(other Profile) bool {
	return p.FirstName == other.FirstName &&
		p.LastName == other.LastName &&
		p.Bio == other.Bio
}
