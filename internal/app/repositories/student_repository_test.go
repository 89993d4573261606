package repositories_test

import (
	"context"
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/campus/internal/app/models"
	"github.com/yigit/campus/internal/app/repositories"
	"github.com/yigit/campus/internal/pkg/apperrors"
	"github.com/yigit/campus/internal/pkg/testdb"
)

func TestStudentRepository_FindAll(t *testing.T) {
	db := testdb.NewSQLite(t)
	depts := testdb.SeedDepartments(t, db, "Physics", "History")
	testdb.SeedStudent(t, db, "Emma", 28, testdb.Ptr("Canada"), depts[0].ID)
	testdb.SeedStudent(t, db, "Liam", 30, testdb.Ptr("Canada"), depts[1].ID)
	testdb.SeedStudent(t, db, "Noah", 28, nil, depts[1].ID)

	repo := repositories.NewRepositories(db).StudentRepository
	ctx := context.Background()

	t.Run("no filter returns every row", func(t *testing.T) {
		students, err := repo.FindAll(ctx, repositories.StudentFilter{})
		require.NoError(t, err)
		assert.Len(t, students, 3)
		for _, s := range students {
			assert.Nil(t, s.Department)
		}
	})

	t.Run("conjunctive equality filter", func(t *testing.T) {
		students, err := repo.FindAll(ctx, repositories.StudentFilter{
			Where: squirrel.Eq{"country": "Canada", "age": 28},
		})
		require.NoError(t, err)
		require.Len(t, students, 1)
		assert.Equal(t, "Emma", students[0].Name)
	})

	t.Run("no match is an empty slice", func(t *testing.T) {
		students, err := repo.FindAll(ctx, repositories.StudentFilter{
			Where: squirrel.Eq{"country": "Atlantis"},
		})
		require.NoError(t, err)
		assert.NotNil(t, students)
		assert.Empty(t, students)
	})

	t.Run("include department attaches the owning row", func(t *testing.T) {
		students, err := repo.FindAll(ctx, repositories.StudentFilter{IncludeDepartment: true})
		require.NoError(t, err)
		require.Len(t, students, 3)
		for _, s := range students {
			require.NotNil(t, s.Department, s.Name)
			assert.Equal(t, s.DeptID, s.Department.ID)
		}
		assert.Equal(t, "Physics", students[0].Department.Title)
	})
}

func TestStudentRepository_FindByPK(t *testing.T) {
	db := testdb.NewSQLite(t)
	dept := testdb.SeedDepartments(t, db, "Physics")[0]
	emma := testdb.SeedStudent(t, db, "Emma", 28, testdb.Ptr("Canada"), dept.ID)

	repo := repositories.NewRepositories(db).StudentRepository

	found, err := repo.FindByPK(context.Background(), emma.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Emma", found.Name)
	assert.Equal(t, 28, found.Age)
	require.NotNil(t, found.Country)
	assert.Equal(t, "Canada", *found.Country)
	assert.Nil(t, found.Department)

	missing, err := repo.FindByPK(context.Background(), int64(9999999))
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestStudentRepository_Create(t *testing.T) {
	db := testdb.NewSQLite(t)
	dept := testdb.SeedDepartments(t, db, "Physics")[0]
	repo := repositories.NewRepositories(db).StudentRepository
	ctx := context.Background()

	t.Run("persists and returns the generated id", func(t *testing.T) {
		age := models.Integer(22)
		deptID := models.Integer(dept.ID)
		created, err := repo.Create(ctx, models.StudentAttributes{
			Name:   testdb.Ptr("Olivia"),
			Age:    &age,
			DeptID: &deptID,
		})
		require.NoError(t, err)
		assert.NotZero(t, created.ID)
		assert.Nil(t, created.Country)
		assert.Equal(t, dept.ID, created.DeptID)

		stored, err := repo.FindByPK(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, "Olivia", stored.Name)
	})

	t.Run("missing name is a validation error and nothing is written", func(t *testing.T) {
		age := models.Integer(22)
		deptID := models.Integer(dept.ID)
		_, err := repo.Create(ctx, models.StudentAttributes{Age: &age, DeptID: &deptID})

		var verr *apperrors.ValidationError
		require.ErrorAs(t, err, &verr)
		require.Len(t, verr.Violations, 1)
		assert.Equal(t, "name", verr.Violations[0].Path)
		assert.Equal(t, "student.name cannot be null", verr.Violations[0].Message)

		var count int64
		require.NoError(t, db.Model(&models.Student{}).Where("name IS NULL OR name = ''").Count(&count).Error)
		assert.Zero(t, count)
	})
}

func TestStudentRepository_Update(t *testing.T) {
	db := testdb.NewSQLite(t)
	depts := testdb.SeedDepartments(t, db, "Physics", "History")
	emma := testdb.SeedStudent(t, db, "Emma", 28, testdb.Ptr("Canada"), depts[0].ID)

	repo := repositories.NewRepositories(db).StudentRepository
	ctx := context.Background()

	t.Run("overwrites and clears an absent country", func(t *testing.T) {
		student, err := repo.FindByPK(ctx, emma.ID)
		require.NoError(t, err)

		age := models.Integer(29)
		err = repo.Update(ctx, student, models.StudentUpdate{
			Name:       testdb.Ptr("Emma Stone"),
			Age:        &age,
			Department: map[string]interface{}{"id": depts[1].ID},
		})
		require.NoError(t, err)
		assert.Nil(t, student.Country)

		stored, err := repo.FindByPK(ctx, emma.ID)
		require.NoError(t, err)
		assert.Equal(t, "Emma Stone", stored.Name)
		assert.Equal(t, 29, stored.Age)
		assert.Nil(t, stored.Country)
		assert.Equal(t, depts[0].ID, stored.DeptID)
	})

	t.Run("missing age fails before writing", func(t *testing.T) {
		student, err := repo.FindByPK(ctx, emma.ID)
		require.NoError(t, err)

		err = repo.Update(ctx, student, models.StudentUpdate{Name: testdb.Ptr("Nobody")})
		var verr *apperrors.ValidationError
		require.ErrorAs(t, err, &verr)

		stored, err := repo.FindByPK(ctx, emma.ID)
		require.NoError(t, err)
		assert.Equal(t, "Emma Stone", stored.Name)
	})
}

func TestStudentRepository_Destroy(t *testing.T) {
	db := testdb.NewSQLite(t)
	dept := testdb.SeedDepartments(t, db, "Physics")[0]
	emma := testdb.SeedStudent(t, db, "Emma", 28, nil, dept.ID)
	liam := testdb.SeedStudent(t, db, "Liam", 30, nil, dept.ID)

	repo := repositories.NewRepositories(db).StudentRepository
	ctx := context.Background()

	require.NoError(t, repo.Destroy(ctx, &emma))

	gone, err := repo.FindByPK(ctx, emma.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	kept, err := repo.FindByPK(ctx, liam.ID)
	require.NoError(t, err)
	assert.NotNil(t, kept)
}

func TestStudentRepository_DepartmentOf(t *testing.T) {
	db := testdb.NewSQLite(t)
	dept := testdb.SeedDepartments(t, db, "Physics")[0]
	emma := testdb.SeedStudent(t, db, "Emma", 28, nil, dept.ID)

	repo := repositories.NewRepositories(db).StudentRepository

	got, err := repo.DepartmentOf(context.Background(), &emma)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Physics", got.Title)

	orphan := models.Student{DeptID: 424242}
	got, err = repo.DepartmentOf(context.Background(), &orphan)
	require.NoError(t, err)
	assert.Nil(t, got)
}
