package ddev_test

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"

	"github.com/localdev-tools/ddev-mcp/internal/ddev"
	"github.com/localdev-tools/ddev-mcp/internal/ddev/mocks"
)

func testLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

func TestClient_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockRunner(ctrl)
	client := ddev.NewClient(runner, testLogger())

	payload := `{"level":"info","msg":"2 projects","raw":[
		{"name":"shop","status":"running","type":"drupal10","approot":"/home/u/shop","primary_url":"https://shop.ddev.site"},
		{"name":"blog","status":"stopped","type":"wordpress","approot":"/home/u/blog"}
	]}`

	runner.EXPECT().
		Run(gomock.Any(), "", "list", "--json-output").
		Return([]byte(payload), nil)

	projects, err := client.List(context.Background())
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if len(projects) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(projects))
	}
	if projects[0].Name != "shop" || projects[0].Status != "running" {
		t.Errorf("unexpected first project: %+v", projects[0])
	}
}

func TestClient_Describe(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockRunner(ctrl)
	client := ddev.NewClient(runner, testLogger())

	payload := `{"level":"info","raw":{
		"name":"shop","status":"running","type":"drupal10","approot":"/home/u/shop",
		"primary_url":"https://shop.ddev.site",
		"dbinfo":{"database_type":"postgres","database_version":"16","dbname":"db","username":"db","password":"db","published_port":32779}
	}}`

	runner.EXPECT().
		Run(gomock.Any(), "", "describe", "shop", "--json-output").
		Return([]byte(payload), nil)

	project, err := client.Describe(context.Background(), "shop")
	if err != nil {
		t.Fatalf("Describe() failed: %v", err)
	}
	if project.DB == nil {
		t.Fatal("expected dbinfo to be parsed")
	}
	if project.DB.Type != "postgres" || project.DB.PublishedPort != 32779 {
		t.Errorf("unexpected dbinfo: %+v", project.DB)
	}
}

func TestClient_Status(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockRunner(ctrl)
	client := ddev.NewClient(runner, testLogger())

	payload := `{"level":"info","raw":{
		"name":"shop","status":"running","type":"drupal10","primary_url":"https://shop.ddev.site",
		"dbinfo":{"database_type":"mariadb","database_version":"10.11"}
	}}`

	runner.EXPECT().
		Run(gomock.Any(), "", "describe", "shop", "--json-output").
		Return([]byte(payload), nil)

	status, err := client.Status(context.Background(), "shop")
	if err != nil {
		t.Fatalf("Status() failed: %v", err)
	}
	if status.DatabaseType != "mariadb" || status.DatabaseVer != "10.11" {
		t.Errorf("unexpected status: %+v", status)
	}
}

func TestClient_Query_RoutesByDatabaseType(t *testing.T) {
	tests := []struct {
		name     string
		dbType   string
		wantArgs []string
	}{
		{
			name:     "mysql uses the mysql client",
			dbType:   "mysql",
			wantArgs: []string{"mysql", "-e", "SELECT 1"},
		},
		{
			name:     "mariadb uses the mysql client",
			dbType:   "mariadb",
			wantArgs: []string{"mysql", "-e", "SELECT 1"},
		},
		{
			name:     "postgres uses psql",
			dbType:   "postgres",
			wantArgs: []string{"psql", "-c", "SELECT 1"},
		},
		{
			name:     "missing dbinfo defaults to mysql",
			dbType:   "",
			wantArgs: []string{"mysql", "-e", "SELECT 1"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			runner := mocks.NewMockRunner(ctrl)
			client := ddev.NewClient(runner, testLogger())

			project := &ddev.Project{Name: "shop", AppRoot: "/home/u/shop"}
			if test.dbType != "" {
				project.DB = &ddev.DBInfo{Type: test.dbType}
			}

			expected := make([]any, 0, len(test.wantArgs))
			for _, a := range test.wantArgs {
				expected = append(expected, a)
			}
			runner.EXPECT().
				Run(gomock.Any(), "/home/u/shop", expected...).
				Return([]byte("ok\n"), nil)

			out, err := client.Query(context.Background(), project, "SELECT 1")
			if err != nil {
				t.Fatalf("Query() failed: %v", err)
			}
			if out != "ok\n" {
				t.Errorf("output: %q, want: %q", out, "ok\n")
			}
		})
	}
}

func TestClient_Query_UnsupportedDatabase(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockRunner(ctrl)
	client := ddev.NewClient(runner, testLogger())

	project := &ddev.Project{Name: "shop", DB: &ddev.DBInfo{Type: "mongodb"}}
	if _, err := client.Query(context.Background(), project, "SELECT 1"); err == nil {
		t.Error("expected error for unsupported database type")
	}
}

func TestClient_Exec(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockRunner(ctrl)
	client := ddev.NewClient(runner, testLogger())

	project := &ddev.Project{Name: "shop", AppRoot: "/home/u/shop"}
	runner.EXPECT().
		Run(gomock.Any(), "/home/u/shop", "exec", "bash", "-c", "drush status").
		Return([]byte("Drupal version : 10.2\n"), nil)

	out, err := client.Exec(context.Background(), project, "drush status")
	if err != nil {
		t.Fatalf("Exec() failed: %v", err)
	}
	if !strings.Contains(out, "Drupal version") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestClient_List_BadEnvelope(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockRunner(ctrl)
	client := ddev.NewClient(runner, testLogger())

	runner.EXPECT().
		Run(gomock.Any(), "", "list", "--json-output").
		Return([]byte(`{"level":"info","msg":"no raw field"}`), nil)

	if _, err := client.List(context.Background()); err == nil {
		t.Error("expected error for envelope without raw payload")
	}
}
