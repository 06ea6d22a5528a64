package models

type Topic struct {
	Slug        string    `json:"slug" gorm:"primaryKey"`
	Description string    `json:"description" gorm:"not null"`
	Articles    []Article `json:"-" gorm:"foreignKey:Topic;references:Slug"`
}

type TopicCreate struct {
	Slug        string `json:"slug" binding:"required"`
	Description string `json:"description" binding:"required"`
}

func (Topic) TableName() string {
	return "topics"
}
