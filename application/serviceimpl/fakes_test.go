package serviceimpl

import (
	"context"
	"errors"
	"sort"

	"sproutly/domain/models"
)

// In-memory repository fakes used by the service tests.

type fakeUserRepo struct {
	nextID uint
	users  map[uint]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1, users: map[uint]*models.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	for _, u := range r.users {
		if u.Username == user.Username {
			return errors.New(`duplicate key value violates unique constraint "idx_users_username"`)
		}
	}
	user.ID = r.nextID
	r.nextID++
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uint) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

type fakeTaskRepo struct {
	nextID uint
	tasks  map[uint]*models.Task
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{nextID: 1, tasks: map[uint]*models.Task{}}
}

func (r *fakeTaskRepo) Create(_ context.Context, task *models.Task) error {
	task.ID = r.nextID
	r.nextID++
	stored := *task
	r.tasks[task.ID] = &stored
	return nil
}

func (r *fakeTaskRepo) GetByID(_ context.Context, id uint) (*models.Task, error) {
	task, ok := r.tasks[id]
	if !ok {
		return nil, nil
	}
	copied := *task
	return &copied, nil
}

func (r *fakeTaskRepo) GetByUserID(_ context.Context, userID uint) ([]*models.Task, error) {
	var tasks []*models.Task
	for _, task := range r.tasks {
		if task.UserID == userID {
			copied := *task
			tasks = append(tasks, &copied)
		}
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })
	return tasks, nil
}

func (r *fakeTaskRepo) Update(_ context.Context, id uint, upd *models.TaskUpdate) (*models.Task, error) {
	task, ok := r.tasks[id]
	if !ok {
		return nil, nil
	}
	if upd.Title != nil {
		task.Title = *upd.Title
	}
	if upd.Description != nil {
		task.Description = *upd.Description
	}
	if upd.DueDate != nil {
		task.DueDate = upd.DueDate
	}
	if upd.Points != nil {
		task.Points = *upd.Points
	}
	if upd.Completed != nil {
		task.Completed = *upd.Completed
	}
	copied := *task
	return &copied, nil
}

func (r *fakeTaskRepo) Delete(_ context.Context, id uint) (bool, error) {
	if _, ok := r.tasks[id]; !ok {
		return false, nil
	}
	delete(r.tasks, id)
	return true, nil
}

type fakePlantRepo struct {
	nextID uint
	plants map[uint]*models.Plant
}

func newFakePlantRepo() *fakePlantRepo {
	return &fakePlantRepo{nextID: 1, plants: map[uint]*models.Plant{}}
}

func (r *fakePlantRepo) Create(_ context.Context, plant *models.Plant) error {
	plant.ID = r.nextID
	r.nextID++
	stored := *plant
	r.plants[plant.ID] = &stored
	return nil
}

func (r *fakePlantRepo) GetByID(_ context.Context, id uint) (*models.Plant, error) {
	plant, ok := r.plants[id]
	if !ok {
		return nil, nil
	}
	copied := *plant
	return &copied, nil
}

func (r *fakePlantRepo) GetByUserID(_ context.Context, userID uint) ([]*models.Plant, error) {
	var plants []*models.Plant
	for _, plant := range r.plants {
		if plant.UserID == userID {
			copied := *plant
			plants = append(plants, &copied)
		}
	}
	sort.Slice(plants, func(i, j int) bool { return plants[i].ID < plants[j].ID })
	return plants, nil
}

func (r *fakePlantRepo) GetCurrentByUserID(ctx context.Context, userID uint) (*models.Plant, error) {
	plants, _ := r.GetByUserID(ctx, userID)
	for _, plant := range plants {
		if !plant.Completed {
			return plant, nil
		}
	}
	return nil, nil
}

func (r *fakePlantRepo) Update(_ context.Context, id uint, upd *models.PlantUpdate) (*models.Plant, error) {
	plant, ok := r.plants[id]
	if !ok {
		return nil, nil
	}
	if upd.Name != nil {
		plant.Name = *upd.Name
	}
	if upd.Type != nil {
		plant.Type = *upd.Type
	}
	if upd.Stage != nil {
		plant.Stage = *upd.Stage
	}
	if upd.Points != nil {
		plant.Points = *upd.Points
	}
	if upd.PointsToNextStage != nil {
		plant.PointsToNextStage = *upd.PointsToNextStage
	}
	if upd.MaxStage != nil {
		plant.MaxStage = *upd.MaxStage
	}
	if upd.Completed != nil {
		plant.Completed = *upd.Completed
	}
	copied := *plant
	return &copied, nil
}

type fakeChatRepo struct {
	nextID uint
	chats  []*models.Chat
}

func newFakeChatRepo() *fakeChatRepo {
	return &fakeChatRepo{nextID: 1}
}

func (r *fakeChatRepo) Create(_ context.Context, chat *models.Chat) error {
	chat.ID = r.nextID
	r.nextID++
	stored := *chat
	r.chats = append(r.chats, &stored)
	return nil
}

func (r *fakeChatRepo) GetByUserID(_ context.Context, userID uint) ([]*models.Chat, error) {
	var chats []*models.Chat
	for _, chat := range r.chats {
		if chat.UserID == userID {
			copied := *chat
			chats = append(chats, &copied)
		}
	}
	sort.Slice(chats, func(i, j int) bool { return chats[i].Timestamp.Before(chats[j].Timestamp) })
	return chats, nil
}
