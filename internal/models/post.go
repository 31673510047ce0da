package models

type Post struct {
	ID      uint64 `gorm:"primarykey" json:"id"`
	Title   string `gorm:"type:varchar(120);not null" json:"title"`
	Content string `gorm:"type:varchar(250);not null" json:"content"`
	UserID  uint64 `gorm:"not null;index" json:"user_id"`

	// Relations
	Author User `gorm:"foreignKey:UserID" json:"author,omitempty"`
}
