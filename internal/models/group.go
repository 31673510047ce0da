package models

type Group struct {
	ID   uint64 `gorm:"primarykey" json:"id"`
	Name string `gorm:"type:varchar(25);not null" json:"name"`

	// Relations
	Members []UserGroup `gorm:"foreignKey:GroupID" json:"members,omitempty"`
}
