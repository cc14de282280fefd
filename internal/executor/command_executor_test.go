package executor

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/localdev-tools/ddev-mcp/internal/ddev"
	"github.com/localdev-tools/ddev-mcp/internal/executor/mocks"
)

func TestCommandExecutor_Execute(t *testing.T) {
	ctrl := gomock.NewController(t)
	manager := mocks.NewMockManager(ctrl)
	audit := mocks.NewMockAuditor(ctrl)
	exec := NewCommandExecutor(manager, audit, testLogger())

	project := &ddev.Project{Name: "shop", AppRoot: "/home/u/shop"}
	manager.EXPECT().Describe(gomock.Any(), "shop").Return(project, nil)
	manager.EXPECT().Exec(gomock.Any(), project, "drush status").Return("ok\n", nil)
	audit.EXPECT().Publish(gomock.Any(), gomock.Any())

	result, err := exec.Execute(context.Background(), "shop", "drush status")
	if err != nil {
		t.Fatalf("Execute() failed: %v", err)
	}
	if result.Output != "ok\n" {
		t.Errorf("output %q, want %q", result.Output, "ok\n")
	}
	if result.Command != "drush status" {
		t.Errorf("command %q, want %q", result.Command, "drush status")
	}
}

func TestCommandExecutor_DescribeError(t *testing.T) {
	ctrl := gomock.NewController(t)
	manager := mocks.NewMockManager(ctrl)
	exec := NewCommandExecutor(manager, nil, testLogger())

	wantErr := errors.New("project not found")
	manager.EXPECT().Describe(gomock.Any(), "ghost").Return(nil, wantErr)

	if _, err := exec.Execute(context.Background(), "ghost", "ls"); !errors.Is(err, wantErr) {
		t.Errorf("err = %v, want %v", err, wantErr)
	}
}
