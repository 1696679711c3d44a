package comment

import (
	"context"
)

type CommentService struct {
	repo *CommentRepo
}

func NewCommentService(repo *CommentRepo) *CommentService {
	return &CommentService{repo: repo}
}

func (s *CommentService) List(ctx context.Context, workspaceID int64, taskID *int64) ([]*Comment, error) {
	return s.repo.List(ctx, workspaceID, taskID)
}

func (s *CommentService) GetByID(ctx context.Context, id, workspaceID int64) (*Comment, error) {
	return s.repo.GetByID(ctx, id, workspaceID)
}

func (s *CommentService) Create(ctx context.Context, workspaceID int64, req *CreateCommentRequest) (*Comment, error) {
	return s.repo.Create(ctx, workspaceID, req)
}

func (s *CommentService) Update(ctx context.Context, id, workspaceID int64, req *UpdateCommentRequest) (*Comment, error) {
	return s.repo.Update(ctx, id, workspaceID, req)
}

func (s *CommentService) Delete(ctx context.Context, id, workspaceID int64) error {
	return s.repo.Delete(ctx, id, workspaceID)
}
