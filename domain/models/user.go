package models

type User struct {
	ID       uint   `gorm:"column:id;primaryKey"`
	Username string `gorm:"column:username;uniqueIndex;not null"`
	Password string `gorm:"column:password;not null"`
}

func (User) TableName() string {
	return "users"
}
