package services

import (
	"context"
	"fmt"

	"github.com/yigit/campus/internal/app/models"
	"github.com/yigit/campus/internal/app/repositories"
)

// DepartmentService handles department-related operations
type DepartmentService struct {
	departmentRepo *repositories.DepartmentRepository
}

// NewDepartmentService creates a new department service instance
func NewDepartmentService(departmentRepo *repositories.DepartmentRepository) *DepartmentService {
	return &DepartmentService{
		departmentRepo: departmentRepo,
	}
}

// GetAllDepartments retrieves all departments
func (s *DepartmentService) GetAllDepartments(ctx context.Context) ([]models.Department, error) {
	departments, err := s.departmentRepo.FindAll(ctx, repositories.DepartmentFilter{})
	if err != nil {
		return nil, fmt.Errorf("error retrieving departments: %w", err)
	}
	return departments, nil
}
