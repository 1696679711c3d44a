package project

import (
	"context"
)

type ProjectService struct {
	repo *ProjectRepo
}

func NewProjectService(repo *ProjectRepo) *ProjectService {
	return &ProjectService{repo: repo}
}

func (s *ProjectService) List(ctx context.Context, workspaceID int64) ([]*Project, error) {
	return s.repo.List(ctx, workspaceID)
}

func (s *ProjectService) GetByID(ctx context.Context, id, workspaceID int64) (*Project, error) {
	return s.repo.GetByID(ctx, id, workspaceID)
}

func (s *ProjectService) Create(ctx context.Context, workspaceID int64, req *CreateProjectRequest) (*Project, error) {
	return s.repo.Create(ctx, workspaceID, req)
}

func (s *ProjectService) Update(ctx context.Context, id, workspaceID int64, req *UpdateProjectRequest) (*Project, error) {
	return s.repo.Update(ctx, id, workspaceID, req)
}

func (s *ProjectService) Delete(ctx context.Context, id, workspaceID int64) error {
	return s.repo.Delete(ctx, id, workspaceID)
}
