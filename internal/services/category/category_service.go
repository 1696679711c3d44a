package category

import (
	"context"
)

type CategoryService struct {
	repo *CategoryRepo
}

func NewCategoryService(repo *CategoryRepo) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) List(ctx context.Context, workspaceID int64) ([]*Category, error) {
	return s.repo.List(ctx, workspaceID)
}

func (s *CategoryService) GetByID(ctx context.Context, id, workspaceID int64) (*Category, error) {
	return s.repo.GetByID(ctx, id, workspaceID)
}

func (s *CategoryService) Create(ctx context.Context, workspaceID int64, req *CreateCategoryRequest) (*Category, error) {
	return s.repo.Create(ctx, workspaceID, req)
}

func (s *CategoryService) Update(ctx context.Context, id, workspaceID int64, req *UpdateCategoryRequest) (*Category, error) {
	return s.repo.Update(ctx, id, workspaceID, req)
}

func (s *CategoryService) Delete(ctx context.Context, id, workspaceID int64) error {
	return s.repo.Delete(ctx, id, workspaceID)
}
