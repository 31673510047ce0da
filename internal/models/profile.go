package models

// Profile is the 1:1 companion record of a User. The unique index on
// UserID keeps it to one profile per user.
type Profile struct {
	ID     uint64  `gorm:"primarykey" json:"id"`
	Bio    *string `gorm:"type:varchar(120)" json:"bio"`
	UserID uint64  `gorm:"not null;uniqueIndex" json:"user_id"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
