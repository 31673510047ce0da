package dto

import (
	"encoding/json"
	"testing"

	"github.com/avelazco/social-api/internal/models"
	"github.com/stretchr/testify/require"
)

func TestToUserDTO_EmptyRelationsMarshalling(t *testing.T) {
	user := models.User{
		ID:       7,
		Email:    "x@example.com",
		IsActive: true,
	}

	raw, err := json.Marshal(ToUserDTO(user))
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))

	require.Nil(t, decoded["posts"])
	require.Nil(t, decoded["profile"])
	require.Equal(t, []interface{}{}, decoded["groups"])
	require.NotContains(t, decoded, "password")
}

func TestToUserDTO_PopulatedRelations(t *testing.T) {
	nickname := "ann"
	bio := "hello"
	user := models.User{
		ID:       1,
		Email:    "ann@example.com",
		Nickname: &nickname,
		IsActive: true,
		Profile:  &models.Profile{ID: 2, Bio: &bio, UserID: 1},
		Posts: []models.Post{
			{ID: 3, Title: "T", Content: "C", UserID: 1},
		},
		Memberships: []models.UserGroup{
			{UserID: 1, GroupID: 9},
		},
	}

	dto := ToUserDTO(user)

	require.Equal(t, []PostSummaryDTO{{Title: "T", Content: "C"}}, dto.Posts)
	require.NotNil(t, dto.Profile)
	require.Equal(t, "hello", *dto.Profile.Bio)
	require.Equal(t, []UserGroupDTO{{UserID: 1, GroupID: 9}}, dto.Groups)
}

func TestToPostDTO_AuthorIsBareNickname(t *testing.T) {
	nickname := "ann"
	post := models.Post{
		ID:      1,
		Title:   "T",
		Content: "C",
		UserID:  2,
		Author:  models.User{ID: 2, Nickname: &nickname},
	}

	raw, err := json.Marshal(ToPostDTO(post))
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Equal(t, "ann", decoded["author"])
}
