package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGroupHandler_CreateGroupAndMembership(t *testing.T) {
	env := setupTestEnv(t)

	user := createTestUser(t, env.db, "ann@example.com", "ann")

	body, err := json.Marshal(map[string]interface{}{"name": "G1"})
	require.NoError(t, err)

	c, w := testContext(http.MethodPost, "/group", body)
	env.groupHandler.CreateGroup(c)
	require.Equal(t, http.StatusOK, w.Code)

	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	groupData := created["data"].(map[string]interface{})
	require.Equal(t, "G1", groupData["name"])
	require.Equal(t, []interface{}{}, groupData["members"])

	body, err = json.Marshal(map[string]interface{}{
		"user_id":  user.ID,
		"group_id": 1,
	})
	require.NoError(t, err)

	c, w = testContext(http.MethodPost, "/user_group", body)
	env.groupHandler.AddMembership(c)
	require.Equal(t, http.StatusOK, w.Code)

	var membership map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &membership))
	linkData := membership["data"].(map[string]interface{})
	require.Equal(t, float64(user.ID), linkData["user_id"])
	require.Equal(t, float64(1), linkData["group_id"])

	c, w = testContext(http.MethodGet, "/group", nil)
	env.groupHandler.ListGroups(c)
	require.Equal(t, http.StatusOK, w.Code)

	var listed map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	groups := listed["data"].([]interface{})
	require.Len(t, groups, 1)

	group := groups[0].(map[string]interface{})
	require.Equal(t, float64(1), group["id"])
	require.Equal(t, "G1", group["name"])
	require.Equal(t, []interface{}{
		map[string]interface{}{
			"user_id":  float64(user.ID),
			"group_id": float64(1),
		},
	}, group["members"])
}

func TestGroupHandler_ListGroups_NoMembers(t *testing.T) {
	env := setupTestEnv(t)

	body, err := json.Marshal(map[string]interface{}{"name": "empty"})
	require.NoError(t, err)

	c, w := testContext(http.MethodPost, "/group", body)
	env.groupHandler.CreateGroup(c)
	require.Equal(t, http.StatusOK, w.Code)

	c, w = testContext(http.MethodGet, "/group", nil)
	env.groupHandler.ListGroups(c)
	require.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	groups := response["data"].([]interface{})
	require.Len(t, groups, 1)

	// A group without members serializes with an empty array, never null
	group := groups[0].(map[string]interface{})
	require.Equal(t, []interface{}{}, group["members"])
}

func TestGroupHandler_AddMembership_UnknownUser(t *testing.T) {
	env := setupTestEnv(t)

	body, err := json.Marshal(map[string]interface{}{"name": "G1"})
	require.NoError(t, err)
	c, w := testContext(http.MethodPost, "/group", body)
	env.groupHandler.CreateGroup(c)
	require.Equal(t, http.StatusOK, w.Code)

	body, err = json.Marshal(map[string]interface{}{
		"user_id":  42,
		"group_id": 1,
	})
	require.NoError(t, err)

	c, w = testContext(http.MethodPost, "/user_group", body)
	env.groupHandler.AddMembership(c)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "INVALID_REFERENCE", response["code"])
}

func TestGroupHandler_AddMembership_UnknownGroup(t *testing.T) {
	env := setupTestEnv(t)

	user := createTestUser(t, env.db, "ann@example.com", "ann")

	body, err := json.Marshal(map[string]interface{}{
		"user_id":  user.ID,
		"group_id": 42,
	})
	require.NoError(t, err)

	c, w := testContext(http.MethodPost, "/user_group", body)
	env.groupHandler.AddMembership(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGroupHandler_AddMembership_Duplicate(t *testing.T) {
	env := setupTestEnv(t)

	user := createTestUser(t, env.db, "ann@example.com", "ann")

	nameBody, err := json.Marshal(map[string]interface{}{"name": "G1"})
	require.NoError(t, err)
	c, w := testContext(http.MethodPost, "/group", nameBody)
	env.groupHandler.CreateGroup(c)
	require.Equal(t, http.StatusOK, w.Code)

	body, err := json.Marshal(map[string]interface{}{
		"user_id":  user.ID,
		"group_id": 1,
	})
	require.NoError(t, err)

	c, w = testContext(http.MethodPost, "/user_group", body)
	env.groupHandler.AddMembership(c)
	require.Equal(t, http.StatusOK, w.Code)

	c, w = testContext(http.MethodPost, "/user_group", body)
	env.groupHandler.AddMembership(c)
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestGroupHandler_ListMemberships(t *testing.T) {
	env := setupTestEnv(t)

	user := createTestUser(t, env.db, "ann@example.com", "ann")

	nameBody, err := json.Marshal(map[string]interface{}{"name": "G1"})
	require.NoError(t, err)
	c, w := testContext(http.MethodPost, "/group", nameBody)
	env.groupHandler.CreateGroup(c)
	require.Equal(t, http.StatusOK, w.Code)

	body, err := json.Marshal(map[string]interface{}{
		"user_id":  user.ID,
		"group_id": 1,
	})
	require.NoError(t, err)
	c, w = testContext(http.MethodPost, "/user_group", body)
	env.groupHandler.AddMembership(c)
	require.Equal(t, http.StatusOK, w.Code)

	c, w = testContext(http.MethodGet, "/user_groups", nil)
	env.groupHandler.ListMemberships(c)
	require.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	links := response["data"].([]interface{})
	require.Len(t, links, 1)
	link := links[0].(map[string]interface{})
	require.Equal(t, float64(user.ID), link["user_id"])
	require.Equal(t, float64(1), link["group_id"])
}
