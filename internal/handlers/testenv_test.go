package handlers

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/avelazco/social-api/internal/models"
	"github.com/avelazco/social-api/internal/repository"
	"github.com/avelazco/social-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type testEnv struct {
	db             *gorm.DB
	userHandler    *UserHandler
	profileHandler *ProfileHandler
	postHandler    *PostHandler
	groupHandler   *GroupHandler
	profileService *services.ProfileService
	postService    *services.PostService
	groupService   *services.GroupService
}

func setupTestEnv(t *testing.T) testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Post{},
		&models.Group{},
		&models.UserGroup{},
	)
	require.NoError(t, err)

	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	postRepo := repository.NewPostRepository(db)
	groupRepo := repository.NewGroupRepository(db)

	userService := services.NewUserService(userRepo)
	profileService := services.NewProfileService(profileRepo, userRepo)
	postService := services.NewPostService(postRepo, userRepo)
	groupService := services.NewGroupService(groupRepo, userRepo)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return testEnv{
		db:             db,
		userHandler:    NewUserHandler(userService),
		profileHandler: NewProfileHandler(profileService),
		postHandler:    NewPostHandler(postService),
		groupHandler:   NewGroupHandler(groupService),
		profileService: profileService,
		postService:    postService,
		groupService:   groupService,
	}
}

func testContext(method, url string, body []byte) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	return c, w
}

func createTestUser(t *testing.T, db *gorm.DB, email, nickname string) *models.User {
	t.Helper()

	age := 30
	user := &models.User{
		Email:    email,
		Password: "hashed",
		Nickname: &nickname,
		Age:      &age,
		IsActive: true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}
