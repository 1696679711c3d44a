package services

import (
	"github.com/curaious/tasker/internal/api/authenticator"
	"github.com/curaious/tasker/internal/config"
	"github.com/curaious/tasker/internal/db"
	category2 "github.com/curaious/tasker/internal/services/category"
	comment2 "github.com/curaious/tasker/internal/services/comment"
	membership2 "github.com/curaious/tasker/internal/services/membership"
	project2 "github.com/curaious/tasker/internal/services/project"
	task2 "github.com/curaious/tasker/internal/services/task"
	user2 "github.com/curaious/tasker/internal/services/user"
	workspace2 "github.com/curaious/tasker/internal/services/workspace"
)

type Services struct {
	Auth      *authenticator.Authenticator
	User      *user2.UserService
	Workspace *workspace2.WorkspaceService
	Project   *project2.ProjectService
	Category  *category2.CategoryService
	Task      *task2.TaskService
	Comment   *comment2.CommentService
	Guard     *membership2.Guard
}

func NewServices(conf *config.Config) *Services {
	dbconn := db.NewConn(conf)

	auth := authenticator.New(conf)
	userRepo := user2.NewUserRepo(dbconn)
	membershipRepo := membership2.NewMembershipRepo(dbconn)
	guard := membership2.NewGuard(membershipRepo)

	return &Services{
		Auth:      auth,
		User:      user2.NewUserService(userRepo, auth),
		Workspace: workspace2.NewWorkspaceService(workspace2.NewWorkspaceRepo(dbconn), membershipRepo, userRepo, guard),
		Project:   project2.NewProjectService(project2.NewProjectRepo(dbconn)),
		Category:  category2.NewCategoryService(category2.NewCategoryRepo(dbconn)),
		Task:      task2.NewTaskService(task2.NewTaskRepo(dbconn)),
		Comment:   comment2.NewCommentService(comment2.NewCommentRepo(dbconn)),
		Guard:     guard,
	}
}
