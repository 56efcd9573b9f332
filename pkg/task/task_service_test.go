package task

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PantryOS-Server/domain"
	"PantryOS-Server/pkg/store"
)

func newService(t *testing.T) TaskService {
	t.Helper()
	st := store.New(filepath.Join(t.TempDir(), "state.json"), nil)
	t.Cleanup(st.Close)
	return NewTaskService(st)
}

func raw(s string) json.RawMessage { return json.RawMessage(s) }

func TestAddTaskDefaults(t *testing.T) {
	svc := newService(t)

	task, err := svc.AddTask(context.Background(), domain.CreateTaskRequest{Name: "Defrost freezer"})
	require.NoError(t, err)

	assert.NotEmpty(t, task.ID)
	assert.False(t, task.Completed)
	assert.Nil(t, task.CompletedAt)
	assert.Nil(t, task.DueDate)
}

func TestAddTaskRequiresName(t *testing.T) {
	svc := newService(t)

	_, err := svc.AddTask(context.Background(), domain.CreateTaskRequest{Name: " "})
	assert.ErrorIs(t, err, domain.ErrNameRequired)
}

func TestCompletingTaskStampsCompletedAt(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	created, err := svc.AddTask(ctx, domain.CreateTaskRequest{Name: "Defrost freezer"})
	require.NoError(t, err)

	done, err := svc.UpdateTask(ctx, created.ID, domain.UpdateTaskRequest{Completed: raw(`true`)})
	require.NoError(t, err)
	assert.True(t, done.Completed)
	require.NotNil(t, done.CompletedAt)

	reopened, err := svc.UpdateTask(ctx, created.ID, domain.UpdateTaskRequest{Completed: raw(`false`)})
	require.NoError(t, err)
	assert.False(t, reopened.Completed)
	assert.Nil(t, reopened.CompletedAt)
}

func TestUpdateWithoutCompletedLeavesTimestampAlone(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	created, err := svc.AddTask(ctx, domain.CreateTaskRequest{Name: "Defrost freezer"})
	require.NoError(t, err)

	done, err := svc.UpdateTask(ctx, created.ID, domain.UpdateTaskRequest{Completed: raw(`true`)})
	require.NoError(t, err)
	require.NotNil(t, done.CompletedAt)

	renamed, err := svc.UpdateTask(ctx, created.ID, domain.UpdateTaskRequest{Name: raw(`"Defrost the freezer"`)})
	require.NoError(t, err)
	assert.Equal(t, "Defrost the freezer", renamed.Name)
	assert.True(t, renamed.Completed)
	require.NotNil(t, renamed.CompletedAt)
	assert.Equal(t, done.CompletedAt.Unix(), renamed.CompletedAt.Unix())
}

func TestDeleteTask(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	created, err := svc.AddTask(ctx, domain.CreateTaskRequest{Name: "Defrost freezer"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTask(ctx, created.ID))
	assert.ErrorIs(t, svc.DeleteTask(ctx, created.ID), domain.ErrRecordNotFound)
}
