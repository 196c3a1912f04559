package model

type User struct {
	ID           int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	StudentID    string `gorm:"uniqueIndex;size:50;not null" json:"student_id"`
	UserName     string `gorm:"size:50;not null" json:"user_name"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Phone        string `json:"phone,omitempty"`
	Verified     bool   `gorm:"default:false" json:"verified"`

	PostedItems []Item `gorm:"foreignKey:UserID" json:"-"`
}
