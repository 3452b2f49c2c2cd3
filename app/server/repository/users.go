package repository

import (
	"context"
	"fmt"
	"habit-tracker/app/server/models"

	"gorm.io/gorm"
)

// Users 是身份记录的持久化，邮箱唯一由数据库约束保证
type Users struct {
	db *gorm.DB
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{db: db}
}

func (r *Users) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Preload("Profile").First(&user, "email = ?", email).Error; err != nil {
		return nil, translate(err)
	}

	return &user, nil
}

func (r *Users) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Preload("Profile").First(&user, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}

	return &user, nil
}

func (r *Users) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var counter int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", email).Count(&counter).Error; err != nil {
		return false, err
	}

	return counter > 0, nil
}

// Create 连同 Profile 一起写入，邮箱冲突时返回 ErrAlreadyExists
func (r *Users) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return translate(err)
	}

	return nil
}

// Update 只更新身份本身的字段，不动 Profile 和密码
func (r *Users) Update(ctx context.Context, user *models.User) error {
	res := r.db.WithContext(ctx).Model(&models.User{ID: user.ID}).Updates(map[string]interface{}{
		"username":       user.Username,
		"role":           user.Role,
		"enabled":        user.Enabled,
		"account_locked": user.AccountLocked,
	})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *Users) UpdateProfile(ctx context.Context, profile *models.Profile) error {
	res := r.db.WithContext(ctx).Model(&models.Profile{}).Where("user_id = ?", profile.UserID).Updates(map[string]interface{}{
		"first_name": profile.FirstName,
		"last_name":  profile.LastName,
		"bio":        profile.Bio,
	})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// DeleteByID 硬删除，Profile 与习惯由外键级联删除
func (r *Users) DeleteByID(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.User{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// List limit 小于 0 时返回全部
func (r *Users) List(ctx context.Context, offset int, limit int) ([]models.User, int64, error) {
	var (
		users      []models.User
		usersCount int64
	)

	queryBase := r.db.WithContext(ctx).Model(&models.User{}).Preload("Profile").Order("id ASC")
	if limit >= 0 {
		queryBase = queryBase.Limit(limit).Offset(offset)
	}

	if err := queryBase.Find(&users).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get user list: %w", err)
	}
	if err := r.db.WithContext(ctx).Model(&models.User{}).Count(&usersCount).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count user: %w", err)
	}

	return users, usersCount, nil
}
