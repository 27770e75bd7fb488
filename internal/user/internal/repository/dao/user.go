package dao

import (
	"context"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// ErrDataNotFound 通用的数据没找到
var ErrDataNotFound = gorm.ErrRecordNotFound

// ErrUserDuplicate 邮箱撞了唯一索引
var ErrUserDuplicate = errors.New("用户已经注册")

//go:generate mockgen -source=./user.go -package=daomocks -destination=mocks/user.mock.go UserDAO
type UserDAO interface {
	Insert(ctx context.Context, u User) (int64, error)
	FindById(ctx context.Context, id int64) (User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	UpdateNonZeroFields(ctx context.Context, u User) error
	UpdatePassword(ctx context.Context, id int64, password string) error
	UpdatePasswordByEmail(ctx context.Context, email string, password string) error
	Delete(ctx context.Context, id int64) error
}

type GORMUserDAO struct {
	db *egorm.Component
}

func NewGORMUserDAO(db *egorm.Component) UserDAO {
	return &GORMUserDAO{db: db}
}

func (ud *GORMUserDAO) Insert(ctx context.Context, u User) (int64, error) {
	now := time.Now().UnixMilli()
	u.Ctime = now
	u.Utime = now
	err := ud.db.WithContext(ctx).Create(&u).Error
	if me, ok := err.(*mysql.MySQLError); ok {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return 0, ErrUserDuplicate
		}
	}
	return u.Id, err
}

func (ud *GORMUserDAO) FindById(ctx context.Context, id int64) (User, error) {
	var u User
	err := ud.db.WithContext(ctx).First(&u, "id = ?", id).Error
	return u, err
}

func (ud *GORMUserDAO) FindByEmail(ctx context.Context, email string) (User, error) {
	var u User
	err := ud.db.WithContext(ctx).First(&u, "email = ?", email).Error
	return u, err
}

func (ud *GORMUserDAO) UpdateNonZeroFields(ctx context.Context, u User) error {
	u.Utime = time.Now().UnixMilli()
	return ud.db.WithContext(ctx).Updates(&u).Error
}

func (ud *GORMUserDAO) UpdatePassword(ctx context.Context, id int64, password string) error {
	return ud.db.WithContext(ctx).Model(&User{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"password": password,
			"utime":    time.Now().UnixMilli(),
		}).Error
}

func (ud *GORMUserDAO) UpdatePasswordByEmail(ctx context.Context, email string, password string) error {
	return ud.db.WithContext(ctx).Model(&User{}).
		Where("email = ?", email).
		Updates(map[string]any{
			"password": password,
			"utime":    time.Now().UnixMilli(),
		}).Error
}

func (ud *GORMUserDAO) Delete(ctx context.Context, id int64) error {
	res := ud.db.WithContext(ctx).Delete(&User{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrDataNotFound
	}
	return nil
}

type User struct {
	Id        int64  `gorm:"primaryKey;autoIncrement"`
	Email     string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_user_email"`
	Password  string `gorm:"type:varchar(255);not null"`
	FirstName string `gorm:"type:varchar(100);not null"`
	LastName  string `gorm:"type:varchar(100);not null"`
	Phone     string `gorm:"type:varchar(30);not null;default:''"`
	Address   string `gorm:"type:varchar(255);not null;default:''"`
	Role      string `gorm:"type:varchar(30);not null;default:'client'"`
	Ctime     int64
	Utime     int64
}
