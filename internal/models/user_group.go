package models

// UserGroup is the association record for the N:N relation between
// users and groups. The composite primary key makes duplicate
// memberships for the same (user, group) pair impossible.
type UserGroup struct {
	UserID  uint64 `gorm:"primarykey" json:"user_id"`
	GroupID uint64 `gorm:"primarykey;index" json:"group_id"`

	// Relations
	User  User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Group Group `gorm:"foreignKey:GroupID" json:"group,omitempty"`
}

func (UserGroup) TableName() string {
	return "user_groups"
}
