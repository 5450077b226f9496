package models

import "time"

type Task struct {
	ID          uint       `gorm:"column:id;primaryKey"`
	Title       string     `gorm:"column:title;not null"`
	Description string     `gorm:"column:description"`
	DueDate     *time.Time `gorm:"column:dueDate"`
	Points      int        `gorm:"column:points;default:10"`
	Completed   bool       `gorm:"column:completed;default:false"`
	UserID      uint       `gorm:"column:userId;not null;index"`
	User        User       `gorm:"foreignKey:UserID"`
}

func (Task) TableName() string {
	return "tasks"
}

// TaskUpdate lists the fields an update may change. Nil fields are not
// written to the database.
type TaskUpdate struct {
	Title       *string
	Description *string
	DueDate     *time.Time
	Points      *int
	Completed   *bool
}
