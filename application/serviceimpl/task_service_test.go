package serviceimpl

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sproutly/domain/dto"
	"sproutly/domain/models"
)

func newTaskServiceForTest(t *testing.T) (*TaskServiceImpl, *fakeUserRepo) {
	t.Helper()
	userRepo := newFakeUserRepo()
	svc := NewTaskService(newFakeTaskRepo(), userRepo).(*TaskServiceImpl)
	return svc, userRepo
}

func seedUser(t *testing.T, repo *fakeUserRepo, username string) *models.User {
	t.Helper()
	user := &models.User{Username: username, Password: "secret"}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func TestCreateTaskListsForOwnerOnly(t *testing.T) {
	ctx := context.Background()
	svc, userRepo := newTaskServiceForTest(t)
	owner := seedUser(t, userRepo, "alice")
	other := seedUser(t, userRepo, "bob")

	task, err := svc.CreateTask(ctx, owner.ID, &dto.CreateTaskRequest{
		Title:       "Water the plants",
		Description: "Every pot on the balcony",
		Points:      10,
	})
	require.NoError(t, err)
	require.NotZero(t, task.ID)

	ownerTasks, err := svc.GetUserTasks(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, ownerTasks, 1)
	assert.Equal(t, task.ID, ownerTasks[0].ID)

	otherTasks, err := svc.GetUserTasks(ctx, other.ID)
	require.NoError(t, err)
	assert.Empty(t, otherTasks)
}

func TestCreateTaskUnknownUser(t *testing.T) {
	svc, _ := newTaskServiceForTest(t)

	_, err := svc.CreateTask(context.Background(), 42, &dto.CreateTaskRequest{Title: "orphan"})
	assert.EqualError(t, err, "user not found")
}

func TestUpdateTaskPartialFields(t *testing.T) {
	ctx := context.Background()
	svc, userRepo := newTaskServiceForTest(t)
	owner := seedUser(t, userRepo, "alice")

	due := time.Now().Add(24 * time.Hour)
	task, err := svc.CreateTask(ctx, owner.ID, &dto.CreateTaskRequest{
		Title:       "Read 10 pages",
		Description: "Any book counts",
		DueDate:     &due,
		Points:      15,
	})
	require.NoError(t, err)

	completed := true
	updated, err := svc.UpdateTask(ctx, task.ID, &dto.UpdateTaskRequest{Completed: &completed})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.True(t, updated.Completed)
	assert.Equal(t, "Read 10 pages", updated.Title)
	assert.Equal(t, "Any book counts", updated.Description)
	assert.Equal(t, 15, updated.Points)
	require.NotNil(t, updated.DueDate)
	assert.WithinDuration(t, due, *updated.DueDate, time.Second)
}

func TestUpdateTaskNotFound(t *testing.T) {
	svc, _ := newTaskServiceForTest(t)

	updated, err := svc.UpdateTask(context.Background(), 999, &dto.UpdateTaskRequest{})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestDeleteTask(t *testing.T) {
	ctx := context.Background()
	svc, userRepo := newTaskServiceForTest(t)
	owner := seedUser(t, userRepo, "alice")

	task, err := svc.CreateTask(ctx, owner.ID, &dto.CreateTaskRequest{Title: "Journal"})
	require.NoError(t, err)

	deleted, err := svc.DeleteTask(ctx, 999)
	require.NoError(t, err)
	assert.False(t, deleted)

	deleted, err = svc.DeleteTask(ctx, task.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	tasks, err := svc.GetUserTasks(ctx, owner.ID)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestGetTaskNotFound(t *testing.T) {
	svc, _ := newTaskServiceForTest(t)

	task, err := svc.GetTask(context.Background(), 7)
	require.NoError(t, err)
	assert.Nil(t, task)
}
