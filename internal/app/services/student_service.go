package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Masterminds/squirrel"

	"github.com/yigit/campus/internal/app/models"
	"github.com/yigit/campus/internal/app/models/dto"
	"github.com/yigit/campus/internal/app/repositories"
	"github.com/yigit/campus/internal/pkg/apperrors"
)

// Fixed filter of the Canadian students listing
const (
	canadaCountry = "Canada"
	canadaAge     = 28
)

// StudentService handles student-related operations
type StudentService struct {
	studentRepo *repositories.StudentRepository
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo *repositories.StudentRepository) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
	}
}

// GetAllStudents retrieves every student
func (s *StudentService) GetAllStudents(ctx context.Context) ([]models.Student, error) {
	students, err := s.studentRepo.FindAll(ctx, repositories.StudentFilter{})
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	return students, nil
}

// GetCanadianStudents retrieves the students from Canada aged 28
func (s *StudentService) GetCanadianStudents(ctx context.Context) ([]models.Student, error) {
	students, err := s.studentRepo.FindAll(ctx, repositories.StudentFilter{
		Where: squirrel.Eq{"country": canadaCountry, "age": canadaAge},
	})
	if err != nil {
		return nil, fmt.Errorf("error retrieving canadian students: %w", err)
	}
	return students, nil
}

// SearchStudents retrieves the students matching the present query parameters,
// each with its department attached
func (s *StudentService) SearchStudents(ctx context.Context, query dto.StudentSearchQuery) ([]models.Student, error) {
	where := squirrel.Eq{}
	if len(query.Country) > 0 {
		where["country"] = filterValue(query.Country, func(v string) interface{} { return v })
	}
	if len(query.Age) > 0 {
		where["age"] = filterValue(query.Age, coerceInt)
	}

	students, err := s.studentRepo.FindAll(ctx, repositories.StudentFilter{
		Where:             where,
		IncludeDepartment: true,
	})
	if err != nil {
		return nil, fmt.Errorf("error searching students: %w", err)
	}
	return students, nil
}

// GetStudentByID retrieves a student by primary key
func (s *StudentService) GetStudentByID(ctx context.Context, pk interface{}) (*models.Student, error) {
	student, err := s.studentRepo.FindByPK(ctx, pk)
	if err != nil {
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	if student == nil {
		return nil, apperrors.ErrStudentNotFound
	}
	return student, nil
}

// CreateStudent creates a new student
func (s *StudentService) CreateStudent(ctx context.Context, attrs models.StudentAttributes) (*models.Student, error) {
	student, err := s.studentRepo.Create(ctx, attrs)
	if err != nil {
		return nil, fmt.Errorf("error creating student: %w", err)
	}
	return student, nil
}

// ReplaceStudent overwrites an existing student. The lookup and the write are
// separate statements.
func (s *StudentService) ReplaceStudent(ctx context.Context, pk interface{}, attrs models.StudentUpdate) (*models.Student, error) {
	student, err := s.GetStudentByID(ctx, pk)
	if err != nil {
		return nil, err
	}

	if err := s.studentRepo.Update(ctx, student, attrs); err != nil {
		return nil, fmt.Errorf("error updating student: %w", err)
	}
	return student, nil
}

// DeleteStudent removes an existing student and returns the removed row
func (s *StudentService) DeleteStudent(ctx context.Context, pk interface{}) (*models.Student, error) {
	student, err := s.GetStudentByID(ctx, pk)
	if err != nil {
		return nil, err
	}

	if err := s.studentRepo.Destroy(ctx, student); err != nil {
		return nil, fmt.Errorf("error deleting student: %w", err)
	}
	return student, nil
}

// filterValue turns query values into a squirrel.Eq operand: a single value
// for equality, a slice for IN
func filterValue(values []string, conv func(string) interface{}) interface{} {
	if len(values) == 1 {
		return conv(values[0])
	}
	out := make([]interface{}, 0, len(values))
	for _, v := range values {
		out = append(out, conv(v))
	}
	return out
}

// coerceInt passes numeric query values as integers and anything else
// unchanged, leaving the comparison to the database.
func coerceInt(v string) interface{} {
	if n, err := strconv.ParseInt(v, 10, 64); err == nil {
		return n
	}
	return v
}
