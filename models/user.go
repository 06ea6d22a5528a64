package models

type User struct {
	Username  string    `json:"username" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	AvatarURL string    `json:"avatar_url" gorm:"column:avatar_url"`
	Articles  []Article `json:"-" gorm:"foreignKey:Author;references:Username"`
	Comments  []Comment `json:"-" gorm:"foreignKey:Author;references:Username"`
}

// Username is the shape returned by the users listing, which only exposes
// usernames.
type Username struct {
	Username string `json:"username"`
}

func (User) TableName() string {
	return "users"
}
