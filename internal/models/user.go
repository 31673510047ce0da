package models

type User struct {
	ID       uint64  `gorm:"primarykey" json:"id"`
	Email    string  `gorm:"type:varchar(120);uniqueIndex;not null" json:"email"`
	Password string  `gorm:"type:varchar(255);not null" json:"-"`
	Nickname *string `gorm:"type:varchar(20)" json:"nickname"`
	Age      *int    `json:"age"`
	IsActive bool    `gorm:"not null" json:"is_active"`

	// Relations
	Profile     *Profile    `gorm:"foreignKey:UserID" json:"profile,omitempty"`
	Posts       []Post      `gorm:"foreignKey:UserID" json:"posts,omitempty"`
	Memberships []UserGroup `gorm:"foreignKey:UserID" json:"memberships,omitempty"`
}
