package task

import (
	"context"
)

type TaskService struct {
	repo *TaskRepo
}

func NewTaskService(repo *TaskRepo) *TaskService {
	return &TaskService{repo: repo}
}

func (s *TaskService) List(ctx context.Context, workspaceID int64, filter *ListFilter) ([]*Task, error) {
	return s.repo.List(ctx, workspaceID, filter)
}

func (s *TaskService) GetByID(ctx context.Context, id, workspaceID int64) (*Task, error) {
	return s.repo.GetByID(ctx, id, workspaceID)
}

func (s *TaskService) Create(ctx context.Context, workspaceID int64, req *CreateTaskRequest) (*Task, error) {
	return s.repo.Create(ctx, workspaceID, req)
}

func (s *TaskService) Update(ctx context.Context, id, workspaceID int64, req *UpdateTaskRequest) (*Task, error) {
	return s.repo.Update(ctx, id, workspaceID, req)
}

func (s *TaskService) Delete(ctx context.Context, id, workspaceID int64) error {
	return s.repo.Delete(ctx, id, workspaceID)
}
