package repo

import (
	"context"
	"errors"
	"testing"

	"prosync-cli/internal/api"
)

func TestListWithStatsFillsCountsInInputOrder(t *testing.T) {
	f := &fakeAPI{
		projects: func(context.Context) ([]api.Project, error) {
			return []api.Project{
				{ID: 1, Name: "Uno"},
				{ID: 2, Name: "Dos"},
				{ID: 3, Name: "Tres"},
			}, nil
		},
		projectDetail: func(_ context.Context, id int) (api.ProjectDetail, error) {
			members := make([]api.Member, id) // project N has N members
			return api.ProjectDetail{ID: id, Miembros: members}, nil
		},
		boards: func(_ context.Context, projectID int) ([]api.Board, error) {
			return []api.Board{{ID: projectID * 10}, {ID: projectID*10 + 1}}, nil
		},
		boardTasks: func(_ context.Context, boardID int) ([]api.Task, error) {
			return make([]api.Task, 2), nil // every board has 2 tasks
		},
	}

	got, err := NewProject(f).ListWithStats(context.Background())
	if err != nil {
		t.Fatalf("ListWithStats: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 projects, got %d", len(got))
	}
	for i, want := range []int{1, 2, 3} {
		if got[i].ID != want {
			t.Fatalf("output order must match input order: pos %d has id %d", i, got[i].ID)
		}
		if got[i].Members != want {
			t.Fatalf("project %d: expected %d members, got %d", want, want, got[i].Members)
		}
		if got[i].Tasks != 4 {
			t.Fatalf("project %d: expected 4 tasks (2 boards x 2), got %d", want, got[i].Tasks)
		}
	}
}

func TestListWithStatsDetailFailureKeepsBaseCounts(t *testing.T) {
	f := &fakeAPI{
		projects: func(context.Context) ([]api.Project, error) {
			return []api.Project{
				{ID: 1, Name: "Roto", Members: 7, Tasks: 9},
				{ID: 2, Name: "Sano"},
			}, nil
		},
		projectDetail: func(_ context.Context, id int) (api.ProjectDetail, error) {
			if id == 1 {
				return api.ProjectDetail{}, errors.New("boom")
			}
			return api.ProjectDetail{Miembros: []api.Member{{UserID: 1}}}, nil
		},
		boards: func(_ context.Context, projectID int) ([]api.Board, error) {
			if projectID == 1 {
				return nil, errors.New("boom")
			}
			return []api.Board{{ID: 20}}, nil
		},
		boardTasks: func(_ context.Context, boardID int) ([]api.Task, error) {
			return make([]api.Task, 3), nil
		},
	}

	got, err := NewProject(f).ListWithStats(context.Background())
	if err != nil {
		t.Fatalf("one project's fan-out failure must not fail the whole listing: %v", err)
	}
	// Failed branches fall back to the base record unmodified.
	if got[0].Members != 7 || got[0].Tasks != 9 {
		t.Fatalf("expected base counts 7/9 kept, got %d/%d", got[0].Members, got[0].Tasks)
	}
	// The sibling project still aggregated.
	if got[1].Members != 1 || got[1].Tasks != 3 {
		t.Fatalf("sibling project must aggregate normally, got %d/%d", got[1].Members, got[1].Tasks)
	}
}

func TestListWithStatsSingleBoardFailureContributesZero(t *testing.T) {
	f := &fakeAPI{
		projects: func(context.Context) ([]api.Project, error) {
			return []api.Project{{ID: 1}}, nil
		},
		projectDetail: func(context.Context, int) (api.ProjectDetail, error) {
			return api.ProjectDetail{}, nil
		},
		boards: func(context.Context, int) ([]api.Board, error) {
			return []api.Board{{ID: 10}, {ID: 11}, {ID: 12}}, nil
		},
		boardTasks: func(_ context.Context, boardID int) ([]api.Task, error) {
			if boardID == 11 {
				return nil, errors.New("boom")
			}
			return make([]api.Task, 5), nil
		},
	}

	got, err := NewProject(f).ListWithStats(context.Background())
	if err != nil {
		t.Fatalf("ListWithStats: %v", err)
	}
	if got[0].Tasks != 10 {
		t.Fatalf("expected the two healthy boards' 5+5 tasks, got %d", got[0].Tasks)
	}
}

func TestListWithStatsBaseListErrorPropagates(t *testing.T) {
	f := &fakeAPI{
		projects: func(context.Context) ([]api.Project, error) {
			return nil, errors.New("down")
		},
	}
	if _, err := NewProject(f).ListWithStats(context.Background()); err == nil {
		t.Fatal("base listing failure must propagate")
	}
}
