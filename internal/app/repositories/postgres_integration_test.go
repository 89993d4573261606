package repositories_test

import (
	"context"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/campus/internal/app/models"
	"github.com/yigit/campus/internal/app/repositories"
	"github.com/yigit/campus/internal/config"
	"github.com/yigit/campus/internal/db"
	"github.com/yigit/campus/internal/pkg/apperrors"
	"github.com/yigit/campus/internal/pkg/dberrors"
)

// startPostgres runs a disposable PostgreSQL container and returns a migrated gateway.
func startPostgres(t *testing.T) *db.Gateway {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("could not connect to docker: %v", err)
	}
	if err := pool.Client.Ping(); err != nil {
		t.Skipf("docker is not available: %v", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=campus",
			"POSTGRES_PASSWORD=secret",
			"POSTGRES_DB=campus",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err, "could not start postgres")
	t.Cleanup(func() { _ = pool.Purge(resource) })
	_ = resource.Expire(120)

	cfg, err := config.LoadConfig("testdata/does-not-exist.yaml")
	require.NoError(t, err)
	cfg.Database.Host = "localhost"
	cfg.Database.Port = resource.GetPort("5432/tcp")
	cfg.Database.User = "campus"
	cfg.Database.Password = "secret"
	cfg.Database.DBName = "campus"

	gateway, err := db.NewPostgresDB(cfg, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(gateway.Close)

	pool.MaxWait = time.Minute
	require.NoError(t, pool.Retry(func() error {
		return gateway.Authenticate(context.Background())
	}), "could not connect to postgres")

	require.NoError(t, gateway.AutoMigrate(context.Background()))
	return gateway
}

func TestPostgres_StudentLifecycle(t *testing.T) {
	gateway := startPostgres(t)
	repos := repositories.NewRepositories(gateway.DB)
	ctx := context.Background()

	dept, err := repos.DepartmentRepository.Create(ctx, models.DepartmentAttributes{Title: strPtr("Physics")})
	require.NoError(t, err)

	age := models.Integer(28)
	deptID := models.Integer(dept.ID)
	created, err := repos.StudentRepository.Create(ctx, models.StudentAttributes{
		Name:    strPtr("Emma"),
		Age:     &age,
		Country: strPtr("Canada"),
		DeptID:  &deptID,
	})
	require.NoError(t, err)

	students, err := repos.StudentRepository.FindAll(ctx, repositories.StudentFilter{IncludeDepartment: true})
	require.NoError(t, err)
	require.Len(t, students, 1)
	require.NotNil(t, students[0].Department)
	assert.Equal(t, "Physics", students[0].Department.Title)

	require.NoError(t, repos.StudentRepository.Destroy(ctx, created))
	gone, err := repos.StudentRepository.FindByPK(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestPostgres_ForeignKeyViolation(t *testing.T) {
	gateway := startPostgres(t)
	repos := repositories.NewRepositories(gateway.DB)

	age := models.Integer(20)
	deptID := models.Integer(9999)
	_, err := repos.StudentRepository.Create(context.Background(), models.StudentAttributes{
		Name:   strPtr("Ghost"),
		Age:    &age,
		DeptID: &deptID,
	})

	var fkErr *apperrors.ForeignKeyError
	require.ErrorAs(t, err, &fkErr)
	assert.Equal(t, "student", fkErr.Table)
	assert.Equal(t, apperrors.NameForeignKey, apperrors.Name(err))
}

func TestPostgres_NonNumericKeyIsDatabaseError(t *testing.T) {
	gateway := startPostgres(t)
	repos := repositories.NewRepositories(gateway.DB)

	_, err := repos.StudentRepository.FindByPK(context.Background(), "abc")
	require.Error(t, err)
	assert.Equal(t, apperrors.NameDatabase, apperrors.Name(err))
	assert.False(t, dberrors.IsConnectivityError(err))
}

func strPtr(s string) *string {
	return &s
}
