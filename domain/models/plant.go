package models

import "time"

type Plant struct {
	ID                uint      `gorm:"column:id;primaryKey"`
	Name              string    `gorm:"column:name;not null"`
	Type              string    `gorm:"column:type;not null"`
	Stage             int       `gorm:"column:stage;default:1"`
	Points            int       `gorm:"column:points;default:0"`
	PointsToNextStage int       `gorm:"column:pointsToNextStage;not null"`
	MaxStage          int       `gorm:"column:maxStage;not null"`
	Completed         bool      `gorm:"column:completed;default:false"`
	StartDate         time.Time `gorm:"column:startDate"`
	UserID            uint      `gorm:"column:userId;not null;index"`
	User              User      `gorm:"foreignKey:UserID"`
}

func (Plant) TableName() string {
	return "plants"
}

// PlantUpdate lists the fields an update may change. Nil fields are not
// written to the database.
type PlantUpdate struct {
	Name              *string
	Type              *string
	Stage             *int
	Points            *int
	PointsToNextStage *int
	MaxStage          *int
	Completed         *bool
}
