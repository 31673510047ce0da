package seed

import (
	"fmt"

	"github.com/avelazco/social-api/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seeder populates the database with demo data. The API has no user
// creation endpoint, so this is how a fresh deployment gets users.
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new Seeder.
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// ClearAll removes all seeded rows, association table first.
func (s *Seeder) ClearAll() error {
	tables := []interface{}{
		&models.UserGroup{},
		&models.Post{},
		&models.Profile{},
		&models.Group{},
		&models.User{},
	}
	for _, table := range tables {
		if err := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(table).Error; err != nil {
			return fmt.Errorf("failed to clear table: %w", err)
		}
	}
	return nil
}

var nicknames = []string{"ann", "bob", "cleo", "dana", "eli", "fern", "gus", "hana"}

// Run creates numUsers users with hashed passwords, profiles for every
// other user, numPosts posts spread across them, numGroups groups and
// one membership per user.
func (s *Seeder) Run(numUsers, numPosts, numGroups int) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	users := make([]models.User, 0, numUsers)
	for i := 0; i < numUsers; i++ {
		nickname := nicknames[i%len(nicknames)]
		age := 20 + i%40
		user := models.User{
			Email:    fmt.Sprintf("%s%d@example.com", nickname, i),
			Password: string(hash),
			Nickname: &nickname,
			Age:      &age,
			IsActive: i%5 != 0,
		}
		if err := s.db.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to seed user: %w", err)
		}
		users = append(users, user)
	}

	for i, user := range users {
		if i%2 != 0 {
			continue
		}
		bio := fmt.Sprintf("Hi, I'm %s", *user.Nickname)
		profile := models.Profile{
			Bio:    &bio,
			UserID: user.ID,
		}
		if err := s.db.Create(&profile).Error; err != nil {
			return fmt.Errorf("failed to seed profile: %w", err)
		}
	}

	for i := 0; i < numPosts && len(users) > 0; i++ {
		author := users[i%len(users)]
		post := models.Post{
			Title:   fmt.Sprintf("Post %d", i+1),
			Content: fmt.Sprintf("Content of post %d by %s", i+1, *author.Nickname),
			UserID:  author.ID,
		}
		if err := s.db.Create(&post).Error; err != nil {
			return fmt.Errorf("failed to seed post: %w", err)
		}
	}

	groups := make([]models.Group, 0, numGroups)
	for i := 0; i < numGroups; i++ {
		group := models.Group{
			Name: fmt.Sprintf("Group %d", i+1),
		}
		if err := s.db.Create(&group).Error; err != nil {
			return fmt.Errorf("failed to seed group: %w", err)
		}
		groups = append(groups, group)
	}

	for i, user := range users {
		if len(groups) == 0 {
			break
		}
		membership := models.UserGroup{
			UserID:  user.ID,
			GroupID: groups[i%len(groups)].ID,
		}
		if err := s.db.Create(&membership).Error; err != nil {
			return fmt.Errorf("failed to seed membership: %w", err)
		}
	}

	return nil
}
