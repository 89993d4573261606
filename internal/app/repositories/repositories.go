package repositories

import (
	"github.com/Masterminds/squirrel"
	"gorm.io/gorm"
)

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository    *StudentRepository
	DepartmentRepository *DepartmentRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	departments := NewDepartmentRepository(db)
	return &Repositories{
		StudentRepository:    NewStudentRepository(db, departments),
		DepartmentRepository: departments,
	}
}

// applyWhere adds an exact-match condition for every column of where.
// An empty map adds no condition.
func applyWhere(q *gorm.DB, where squirrel.Eq) (*gorm.DB, error) {
	if len(where) == 0 {
		return q, nil
	}
	sql, args, err := where.ToSql()
	if err != nil {
		return nil, err
	}
	return q.Where(sql, args...), nil
}
