package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/MKhiriev/todo-keeper/internal/adapter"
	"github.com/MKhiriev/todo-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI records the calls it receives. Unused methods panic through the
// nil embedded interface.
type fakeAPI struct {
	adapter.TodoAPI

	email, password string
	created         models.CreateTodoRequest
	updatedID       string
	updated         models.UpdateTodoRequest
	listStatus      *models.TodoStatus
}

func (f *fakeAPI) Signin(_ context.Context, email, password string) (string, error) {
	f.email, f.password = email, password
	return "tok", nil
}

func (f *fakeAPI) Signup(context.Context, string, string) error {
	return adapter.ErrConflict
}

func (f *fakeAPI) ListTodos(_ context.Context, status *models.TodoStatus) ([]models.Todo, error) {
	f.listStatus = status
	return []models.Todo{}, nil
}

func (f *fakeAPI) CreateTodo(_ context.Context, req models.CreateTodoRequest) (models.Todo, error) {
	f.created = req
	return models.Todo{ID: "t-1", Name: req.Name, Status: models.TodoStatusNotStarted}, nil
}

func (f *fakeAPI) UpdateTodo(_ context.Context, id string, req models.UpdateTodoRequest) (models.Todo, error) {
	f.updatedID, f.updated = id, req
	return models.Todo{ID: id}, nil
}

func TestRun_SigninSendsDigest(t *testing.T) {
	api := &fakeAPI{}
	var out bytes.Buffer

	require.NoError(t, run(context.Background(), api, []string{"signin", "-email", "a@b.co", "-password", "secret"}, &out))

	assert.Equal(t, "a@b.co", api.email)
	assert.Len(t, api.password, 64)
	assert.NotEqual(t, "secret", api.password)

	var resp models.TokenResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
	assert.Equal(t, "tok", resp.Token)
}

func TestRun_AccountFlagsRequired(t *testing.T) {
	err := run(context.Background(), &fakeAPI{}, []string{"signin", "-email", "a@b.co"}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestRun_APIErrorIsReturned(t *testing.T) {
	err := run(context.Background(), &fakeAPI{}, []string{"signup", "-email", "a@b.co", "-password", "x"}, &bytes.Buffer{})
	assert.ErrorIs(t, err, adapter.ErrConflict)
}

func TestRun_ListStatusFilter(t *testing.T) {
	api := &fakeAPI{}

	require.NoError(t, run(context.Background(), api, []string{"list"}, &bytes.Buffer{}))
	assert.Nil(t, api.listStatus)

	require.NoError(t, run(context.Background(), api, []string{"list", "-status", "OnGoing"}, &bytes.Buffer{}))
	require.NotNil(t, api.listStatus)
	assert.Equal(t, models.TodoStatusOnGoing, *api.listStatus)
}

func TestRun_AddOnlySendsGivenFields(t *testing.T) {
	api := &fakeAPI{}

	require.NoError(t, run(context.Background(), api, []string{"add", "-name", "milk"}, &bytes.Buffer{}))
	assert.Equal(t, "milk", api.created.Name)
	assert.Nil(t, api.created.Description)
	assert.Nil(t, api.created.Status)

	require.NoError(t, run(context.Background(), api, []string{"add", "-name", "milk", "-description", ""}, &bytes.Buffer{}))
	require.NotNil(t, api.created.Description)
	assert.Empty(t, *api.created.Description)
}

func TestRun_UpdatePartial(t *testing.T) {
	api := &fakeAPI{}

	require.NoError(t, run(context.Background(), api, []string{"update", "-id", "t-1", "-status", "Completed"}, &bytes.Buffer{}))

	assert.Equal(t, "t-1", api.updatedID)
	assert.Nil(t, api.updated.Name)
	assert.Nil(t, api.updated.Description)
	require.NotNil(t, api.updated.Status)
	assert.Equal(t, models.TodoStatusCompleted, *api.updated.Status)
}

func TestRun_Usage(t *testing.T) {
	assert.ErrorIs(t, run(context.Background(), &fakeAPI{}, nil, &bytes.Buffer{}), errUsage)
	assert.ErrorIs(t, run(context.Background(), &fakeAPI{}, []string{"frobnicate"}, &bytes.Buffer{}), errUsage)
}
