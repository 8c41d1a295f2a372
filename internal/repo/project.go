package repo

import (
	"context"

	"golang.org/x/sync/errgroup"

	"prosync-cli/internal/api"
)

type ProjectAPI interface {
	Projects(ctx context.Context) ([]api.Project, error)
	CreateProject(ctx context.Context, req api.CreateProjectRequest) (api.Project, error)
	ProjectDetail(ctx context.Context, projectID int) (api.ProjectDetail, error)
	Boards(ctx context.Context, projectID int) ([]api.Board, error)
	BoardTasks(ctx context.Context, boardID int) ([]api.Task, error)
}

type Project struct {
	api ProjectAPI
}

func NewProject(a ProjectAPI) *Project { return &Project{api: a} }

// List returns the projects as the listing endpoint sends them; the member
// and task counters may be zero/default there.
func (r *Project) List(ctx context.Context) ([]api.Project, error) {
	return r.api.Projects(ctx)
}

func (r *Project) Create(ctx context.Context, name string, description *string) (api.Project, error) {
	return r.api.CreateProject(ctx, api.CreateProjectRequest{Name: name, Description: description})
}

// Detail returns one project with its member list.
func (r *Project) Detail(ctx context.Context, projectID int) (api.ProjectDetail, error) {
	return r.api.ProjectDetail(ctx, projectID)
}

// ListWithStats lists projects and fills in the member and task counters by
// fanning out per project: one detail fetch for the member count, one boards
// fetch and then one tasks fetch per board for the task count. All branches
// run concurrently and each failure degrades independently:
//
//   - detail fails        => member count stays as the base list had it
//   - boards fetch fails  => task count stays as the base list had it
//   - one board's tasks fail => that board contributes zero tasks
//
// Output order always equals the base list order, and no branch failure ever
// aborts a sibling project's aggregation.
func (r *Project) ListWithStats(ctx context.Context) ([]api.Project, error) {
	projects, err := r.api.Projects(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]api.Project, len(projects))
	copy(out, projects)

	var g errgroup.Group
	for i := range out {
		g.Go(func() error {
			p := &out[i]

			var inner errgroup.Group
			inner.Go(func() error {
				detail, err := r.api.ProjectDetail(ctx, p.ID)
				if err == nil {
					p.Members = len(detail.Miembros)
				}
				return nil
			})
			inner.Go(func() error {
				boards, err := r.api.Boards(ctx, p.ID)
				if err != nil {
					return nil
				}
				counts := make([]int, len(boards))
				var tasks errgroup.Group
				for bi, b := range boards {
					tasks.Go(func() error {
						ts, err := r.api.BoardTasks(ctx, b.ID)
						if err == nil {
							counts[bi] = len(ts)
						}
						return nil
					})
				}
				_ = tasks.Wait()
				total := 0
				for _, n := range counts {
					total += n
				}
				p.Tasks = total
				return nil
			})
			return inner.Wait()
		})
	}
	_ = g.Wait()
	return out, nil
}
