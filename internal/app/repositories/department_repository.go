package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"gorm.io/gorm"

	"github.com/yigit/campus/internal/app/models"
	"github.com/yigit/campus/internal/pkg/dberrors"
	"github.com/yigit/campus/internal/pkg/logger"
	"github.com/yigit/campus/internal/pkg/validation"
)

// DepartmentFilter restricts FindAll to rows whose columns equal the given values
type DepartmentFilter struct {
	Where squirrel.Eq
}

// DepartmentRepository handles database operations for departments
type DepartmentRepository struct {
	db *gorm.DB
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(db *gorm.DB) *DepartmentRepository {
	return &DepartmentRepository{
		db: db,
	}
}

// FindAll retrieves the departments matching filter
func (r *DepartmentRepository) FindAll(ctx context.Context, filter DepartmentFilter) ([]models.Department, error) {
	q, err := applyWhere(r.db.WithContext(ctx), filter.Where)
	if err != nil {
		return nil, fmt.Errorf("failed to build department filter: %w", err)
	}

	departments := make([]models.Department, 0)
	if err := q.Find(&departments).Error; err != nil {
		logger.Error().Err(err).Msg("Error listing departments")
		return nil, dberrors.Translate(err)
	}
	return departments, nil
}

// FindByPK retrieves a department by primary key. It returns (nil, nil) when no row matches.
func (r *DepartmentRepository) FindByPK(ctx context.Context, pk interface{}) (*models.Department, error) {
	var department models.Department
	err := r.db.WithContext(ctx).Where("id = ?", pk).First(&department).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		logger.Error().Err(err).Interface("id", pk).Msg("Error retrieving department")
		return nil, dberrors.Translate(err)
	}
	return &department, nil
}

// FindByIDs retrieves the departments with the given ids, keyed by id
func (r *DepartmentRepository) FindByIDs(ctx context.Context, ids []int64) (map[int64]*models.Department, error) {
	byID := make(map[int64]*models.Department, len(ids))
	if len(ids) == 0 {
		return byID, nil
	}

	var departments []models.Department
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&departments).Error; err != nil {
		logger.Error().Err(err).Int("count", len(ids)).Msg("Error retrieving departments by id")
		return nil, dberrors.Translate(err)
	}
	for i := range departments {
		byID[departments[i].ID] = &departments[i]
	}
	return byID, nil
}

// Create inserts a new department and returns it with its generated id
func (r *DepartmentRepository) Create(ctx context.Context, attrs models.DepartmentAttributes) (*models.Department, error) {
	if err := validation.Struct("department", attrs); err != nil {
		return nil, err
	}

	department := &models.Department{Title: *attrs.Title}
	if err := r.db.WithContext(ctx).Omit("Students").Create(department).Error; err != nil {
		logger.Error().Err(err).Str("title", department.Title).Msg("Error creating department")
		return nil, dberrors.Translate(err)
	}

	logger.Info().Int64("departmentID", department.ID).Msg("Department created successfully")
	return department, nil
}
