// Package testdb opens throwaway databases for package tests.
package testdb

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/yigit/campus/internal/app/models"
	"github.com/yigit/campus/internal/pkg/logger"
)

// NewSQLite opens a private in-memory database with the department and
// student tables created. It is closed when t finishes.
func NewSQLite(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.NewGormLogger(zerolog.Nop(), logger.DefaultSlowThreshold).LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every statement must see the same in-memory database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

// SeedDepartments inserts a department per title and returns them in order.
func SeedDepartments(t testing.TB, db *gorm.DB, titles ...string) []models.Department {
	t.Helper()

	departments := make([]models.Department, 0, len(titles))
	for _, title := range titles {
		d := models.Department{Title: title}
		require.NoError(t, db.Omit("Students").Create(&d).Error)
		departments = append(departments, d)
	}
	return departments
}

// SeedStudent inserts one student row directly, bypassing validation.
func SeedStudent(t testing.TB, db *gorm.DB, name string, age int, country *string, deptID int64) models.Student {
	t.Helper()

	s := models.Student{Name: name, Age: age, Country: country, DeptID: deptID}
	require.NoError(t, db.Omit("Department").Create(&s).Error)
	return s
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
