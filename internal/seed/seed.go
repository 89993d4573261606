package seed

import (
	"context"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/rs/zerolog"

	appModels "github.com/yigit/campus/internal/app/models"
	appRepos "github.com/yigit/campus/internal/app/repositories"
)

// DefaultDepartmentTitles are created by CreateDefaultData
var DefaultDepartmentTitles = []string{
	"Computer Science",
	"Mathematics",
	"Physics",
	"History",
}

// CreateDefaultData creates the default departments that don't exist yet.
// Failures are collected so one bad row does not stop the others.
func CreateDefaultData(ctx context.Context, departmentRepo *appRepos.DepartmentRepository, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default departments...")
	var finalErr error

	for _, title := range DefaultDepartmentTitles {
		existing, err := departmentRepo.FindAll(ctx, appRepos.DepartmentFilter{
			Where: squirrel.Eq{"title": title},
		})
		if err != nil {
			lgr.Error().Err(err).Str("title", title).Msg("Error checking default department")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if len(existing) > 0 {
			continue
		}

		if _, err := departmentRepo.Create(ctx, appModels.DepartmentAttributes{Title: &title}); err != nil {
			lgr.Error().Err(err).Str("title", title).Msg("Error creating default department")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		lgr.Info().Str("title", title).Msg("Default department created")
	}

	return finalErr
}
