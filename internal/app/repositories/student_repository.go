package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yigit/campus/internal/app/models"
	"github.com/yigit/campus/internal/pkg/dberrors"
	"github.com/yigit/campus/internal/pkg/logger"
	"github.com/yigit/campus/internal/pkg/validation"
)

// StudentFilter restricts FindAll to rows whose columns equal the given values
// and optionally attaches each student's department.
type StudentFilter struct {
	Where             squirrel.Eq
	IncludeDepartment bool
}

// StudentRepository handles student database operations
type StudentRepository struct {
	db          *gorm.DB
	departments *DepartmentRepository
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *gorm.DB, departments *DepartmentRepository) *StudentRepository {
	return &StudentRepository{
		db:          db,
		departments: departments,
	}
}

// FindAll retrieves the students matching filter. No match yields an empty slice.
func (r *StudentRepository) FindAll(ctx context.Context, filter StudentFilter) ([]models.Student, error) {
	q, err := applyWhere(r.db.WithContext(ctx), filter.Where)
	if err != nil {
		return nil, fmt.Errorf("failed to build student filter: %w", err)
	}

	students := make([]models.Student, 0)
	if err := q.Find(&students).Error; err != nil {
		logger.Error().Err(err).Interface("where", filter.Where).Msg("Error listing students")
		return nil, dberrors.Translate(err)
	}

	if filter.IncludeDepartment {
		if err := r.IncludeDepartments(ctx, students); err != nil {
			return nil, err
		}
	}
	return students, nil
}

// FindByPK retrieves a student by primary key. It returns (nil, nil) when no row matches.
func (r *StudentRepository) FindByPK(ctx context.Context, pk interface{}) (*models.Student, error) {
	var student models.Student
	err := r.db.WithContext(ctx).Where("id = ?", pk).First(&student).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		logger.Error().Err(err).Interface("id", pk).Msg("Error retrieving student")
		return nil, dberrors.Translate(err)
	}
	return &student, nil
}

// Create inserts a new student and returns it with its generated id
func (r *StudentRepository) Create(ctx context.Context, attrs models.StudentAttributes) (*models.Student, error) {
	if err := validation.Struct("student", attrs); err != nil {
		return nil, err
	}

	student := &models.Student{
		Name:    *attrs.Name,
		Age:     int(*attrs.Age),
		Country: attrs.Country,
		DeptID:  int64(*attrs.DeptID),
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(student).Error; err != nil {
		logger.Error().Err(err).Int64("deptID", student.DeptID).Msg("Error creating student")
		return nil, dberrors.Translate(err)
	}

	logger.Info().Int64("studentID", student.ID).Msg("Student created successfully")
	return student, nil
}

// Update overwrites name, age and country of student. Absent attributes are
// not preserved: a missing country becomes NULL and a missing name or age
// fails validation before anything is written.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student, attrs models.StudentUpdate) error {
	if err := validation.Struct("student", attrs); err != nil {
		return err
	}

	student.Name = *attrs.Name
	student.Age = int(*attrs.Age)
	student.Country = attrs.Country

	err := r.db.WithContext(ctx).Model(student).
		Select("name", "age", "country").
		Updates(map[string]interface{}{
			"name":    student.Name,
			"age":     student.Age,
			"country": student.Country,
		}).Error
	if err != nil {
		logger.Error().Err(err).Int64("studentID", student.ID).Msg("Error updating student")
		return dberrors.Translate(err)
	}
	return nil
}

// Destroy removes the row of student
func (r *StudentRepository) Destroy(ctx context.Context, student *models.Student) error {
	if err := r.db.WithContext(ctx).Delete(&models.Student{}, student.ID).Error; err != nil {
		logger.Error().Err(err).Int64("studentID", student.ID).Msg("Error deleting student")
		return dberrors.Translate(err)
	}

	logger.Info().Int64("studentID", student.ID).Msg("Student deleted")
	return nil
}

// DepartmentOf fetches the department referenced by student's dept_id.
// It returns (nil, nil) when the department does not exist.
func (r *StudentRepository) DepartmentOf(ctx context.Context, student *models.Student) (*models.Department, error) {
	return r.departments.FindByPK(ctx, student.DeptID)
}

// IncludeDepartments attaches each student's department using a single lookup.
// Students whose department is missing keep a nil Department.
func (r *StudentRepository) IncludeDepartments(ctx context.Context, students []models.Student) error {
	if len(students) == 0 {
		return nil
	}

	seen := make(map[int64]struct{}, len(students))
	ids := make([]int64, 0, len(students))
	for _, s := range students {
		if _, ok := seen[s.DeptID]; ok {
			continue
		}
		seen[s.DeptID] = struct{}{}
		ids = append(ids, s.DeptID)
	}

	byID, err := r.departments.FindByIDs(ctx, ids)
	if err != nil {
		return err
	}
	for i := range students {
		students[i].Department = byID[students[i].DeptID]
	}
	return nil
}
