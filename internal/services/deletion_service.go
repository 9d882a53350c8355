package services

import (
	"context"
	"errors"
	"fmt"

	"mimarlik-backend/internal/models"
	"mimarlik-backend/internal/repository"
	"mimarlik-backend/internal/storage"

	"github.com/sirupsen/logrus"
)

// dependencyListLimit caps how many blocking or affected items a result names.
const dependencyListLimit = 5

// errDeletionRejected aborts the delete transaction when the re-run check blocks it.
var errDeletionRejected = errors.New("deletion rejected")

// DeletionService checks and performs cascading deletes. Dependency problems are
// reported in the result; the error return is only set when a store read fails
// before anything was written.
type DeletionService interface {
	CanDeleteCategory(ctx context.Context, id uint) (*models.DeletionResult, error)
	DeleteCategorySafely(ctx context.Context, id uint) (*models.DeletionResult, error)

	CanDeleteProject(ctx context.Context, id uint) (*models.DeletionResult, error)
	DeleteProjectSafely(ctx context.Context, id uint) (*models.DeletionResult, error)

	CanDeleteLanguage(ctx context.Context, id uint) (*models.DeletionResult, error)
	DeleteLanguageSafely(ctx context.Context, id uint) (*models.DeletionResult, error)

	CanDeletePhoto(ctx context.Context, id uint) (*models.DeletionResult, error)
	DeletePhotoSafely(ctx context.Context, id uint) (*models.DeletionResult, error)
}

type deletionService struct {
	tx     repository.TransactionManager
	files  storage.FileStorage
	logger *logrus.Logger
}

func NewDeletionService(tx repository.TransactionManager, files storage.FileStorage, logger *logrus.Logger) DeletionService {
	return &deletionService{
		tx:     tx,
		files:  files,
		logger: logger,
	}
}

// deletionPlan is one safe delete: a check that must allow it and the cascade
// that runs in the same transaction afterwards.
type deletionPlan struct {
	kind    string
	id      uint
	check   func(ctx context.Context, repos repository.Repositories) (*models.DeletionResult, error)
	cascade func(ctx context.Context, repos repository.Repositories, result *models.DeletionResult) error
	success string
}

func (s *deletionService) execute(ctx context.Context, plan deletionPlan) (*models.DeletionResult, error) {
	var (
		started  bool
		checked  *models.DeletionResult
		checkErr error
	)
	result := models.NewDeletionResult()

	err := s.tx.Do(ctx, func(repos repository.Repositories) error {
		started = true
		checked, checkErr = plan.check(ctx, repos)
		if checkErr != nil {
			return checkErr
		}
		if !checked.CanDelete {
			return errDeletionRejected
		}
		return plan.cascade(ctx, repos, result)
	})

	switch {
	case !started && err != nil:
		checkErr = err
		fallthrough
	case checkErr != nil:
		s.logger.WithFields(logrus.Fields{
			"entity": plan.kind,
			"id":     plan.id,
		}).WithError(checkErr).Error("Deletion check failed")
		return nil, fmt.Errorf("failed to check %s %d: %w", plan.kind, plan.id, checkErr)
	case errors.Is(err, errDeletionRejected):
		s.logOutcome(plan.kind, plan.id, checked, nil)
		return checked, nil
	case err != nil:
		result.Fail(fmt.Sprintf("Failed to delete %s: %v", plan.kind, err))
		s.logOutcome(plan.kind, plan.id, result, err)
		return result, nil
	}

	result.Deleted(plan.success)
	s.logOutcome(plan.kind, plan.id, result, nil)
	return result, nil
}

func (s *deletionService) inspect(ctx context.Context, kind string, id uint,
	check func(ctx context.Context, repos repository.Repositories) (*models.DeletionResult, error),
) (*models.DeletionResult, error) {
	result, err := check(ctx, s.tx.Repositories())
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"entity": kind,
			"id":     id,
		}).WithError(err).Error("Deletion check failed")
		return nil, fmt.Errorf("failed to check %s %d: %w", kind, id, err)
	}
	s.logOutcome(kind, id, result, nil)
	return result, nil
}

func (s *deletionService) logOutcome(kind string, id uint, result *models.DeletionResult, err error) {
	entry := s.logger.WithFields(logrus.Fields{
		"entity": kind,
		"id":     id,
		"status": result.Status,
	})
	switch result.Status {
	case models.DeletionFailed:
		entry.WithError(err).Error(result.Message)
	case models.DeletionBlocked, models.DeletionNotFound:
		entry.Warn(result.Message)
	case models.DeletionDeleted:
		entry.Info(result.Message)
	default:
		entry.Debug(result.Message)
	}
}

func appendCapped(list, items []string, noun string) []string {
	for i, item := range items {
		if i == dependencyListLimit {
			break
		}
		list = append(list, item)
	}
	if len(items) > dependencyListLimit {
		list = append(list, fmt.Sprintf("... and %d more %s", len(items)-dependencyListLimit, noun))
	}
	return list
}

// Category

func (s *deletionService) CanDeleteCategory(ctx context.Context, id uint) (*models.DeletionResult, error) {
	return s.inspect(ctx, "category", id, func(ctx context.Context, repos repository.Repositories) (*models.DeletionResult, error) {
		result, _, err := checkCategory(ctx, repos, id)
		return result, err
	})
}

func (s *deletionService) DeleteCategorySafely(ctx context.Context, id uint) (*models.DeletionResult, error) {
	var category *models.Category
	return s.execute(ctx, deletionPlan{
		kind: "category",
		id:   id,
		check: func(ctx context.Context, repos repository.Repositories) (*models.DeletionResult, error) {
			result, found, err := checkCategory(ctx, repos, id)
			category = found
			return result, err
		},
		cascade: func(ctx context.Context, repos repository.Repositories, result *models.DeletionResult) error {
			if _, err := repos.Translations.DeleteByEntity(ctx, models.EntityCategory, id); err != nil {
				return err
			}
			result.DeletedItems = append(result.DeletedItems, "Category translations")

			if err := repos.Categories.Delete(ctx, id); err != nil {
				return err
			}
			result.DeletedItems = append(result.DeletedItems, "Category: "+category.Title)
			return nil
		},
		success: "Category deleted successfully",
	})
}

func checkCategory(ctx context.Context, repos repository.Repositories, id uint) (*models.DeletionResult, *models.Category, error) {
	result := models.NewDeletionResult()

	category, err := repos.Categories.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if category == nil {
		return result.NotFound("Category not found"), nil, nil
	}

	checker := NewDependencyChecker(repos)
	children, err := checker.CategoryChildren(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	projects, err := checker.CategoryProjects(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	childNames := make([]string, len(children))
	for i, child := range children {
		childNames[i] = "Child category: " + child.Title
	}
	projectNames := make([]string, len(projects))
	for i, project := range projects {
		projectNames[i] = "Project: " + project.Title
	}
	result.Dependencies = appendCapped(result.Dependencies, childNames, "child categories")
	result.Dependencies = appendCapped(result.Dependencies, projectNames, "projects")

	switch {
	case len(children) > 0 && len(projects) > 0:
		return result.Block("Category has child categories and associated projects and cannot be deleted"), category, nil
	case len(children) > 0:
		return result.Block("Category has child categories and cannot be deleted"), category, nil
	case len(projects) > 0:
		return result.Block("Category has associated projects and cannot be deleted"), category, nil
	}

	translations, err := repos.Translations.CountByEntity(ctx, models.EntityCategory, id)
	if err != nil {
		return nil, nil, err
	}
	if translations > 0 {
		result.Dependencies = append(result.Dependencies, fmt.Sprintf("%d translations will be deleted", translations))
	}
	return result.Allow("Category can be safely deleted"), category, nil
}

// Project

func (s *deletionService) CanDeleteProject(ctx context.Context, id uint) (*models.DeletionResult, error) {
	return s.inspect(ctx, "project", id, func(ctx context.Context, repos repository.Repositories) (*models.DeletionResult, error) {
		result, _, err := checkProject(ctx, repos, id)
		return result, err
	})
}

func (s *deletionService) DeleteProjectSafely(ctx context.Context, id uint) (*models.DeletionResult, error) {
	var project *models.Project
	return s.execute(ctx, deletionPlan{
		kind: "project",
		id:   id,
		check: func(ctx context.Context, repos repository.Repositories) (*models.DeletionResult, error) {
			result, found, err := checkProject(ctx, repos, id)
			project = found
			return result, err
		},
		cascade: func(ctx context.Context, repos repository.Repositories, result *models.DeletionResult) error {
			// Only the photos listed by the check are removed, so each row goes
			// together with its file and translations.
			photoIDs := make([]uint, len(project.Photos))
			for i, photo := range project.Photos {
				if err := s.files.DeleteFile(ctx, photo.FilePath); err != nil {
					return fmt.Errorf("photo file %s: %w", photo.FileName, err)
				}
				result.DeletedItems = append(result.DeletedItems, "Photo file: "+photo.FileName)
				photoIDs[i] = photo.ID
			}

			photos, err := repos.Photos.DeleteByIDs(ctx, photoIDs)
			if err != nil {
				return err
			}
			result.DeletedItems = append(result.DeletedItems, fmt.Sprintf("%d photo records", photos))

			blocks, err := repos.ContentBlocks.DeleteByProject(ctx, id)
			if err != nil {
				return err
			}
			result.DeletedItems = append(result.DeletedItems, fmt.Sprintf("%d content blocks", blocks))

			var photoTranslations int64
			for _, photo := range project.Photos {
				n, err := repos.Translations.DeleteByEntity(ctx, models.EntityPhoto, photo.ID)
				if err != nil {
					return err
				}
				photoTranslations += n
			}
			if photoTranslations > 0 {
				result.DeletedItems = append(result.DeletedItems, fmt.Sprintf("%d photo translations", photoTranslations))
			}

			if _, err := repos.Translations.DeleteByEntity(ctx, models.EntityProject, id); err != nil {
				return err
			}
			result.DeletedItems = append(result.DeletedItems, "Project translations")

			if err := repos.Projects.Delete(ctx, id); err != nil {
				return err
			}
			result.DeletedItems = append(result.DeletedItems, "Project: "+project.Title)
			return nil
		},
		success: "Project deleted successfully",
	})
}

func checkProject(ctx context.Context, repos repository.Repositories, id uint) (*models.DeletionResult, *models.Project, error) {
	result := models.NewDeletionResult()

	project, err := repos.Projects.FindWithDetails(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if project == nil {
		return result.NotFound("Project not found"), nil, nil
	}

	result.Dependencies = append(result.Dependencies, "Project: "+project.Title)
	if len(project.Photos) > 0 {
		result.Dependencies = append(result.Dependencies, fmt.Sprintf("%d photos will be deleted", len(project.Photos)))
		names := make([]string, len(project.Photos))
		for i, photo := range project.Photos {
			names[i] = "  - " + photo.FileName
		}
		result.Dependencies = appendCapped(result.Dependencies, names, "photos")
	}
	if len(project.ContentBlocks) > 0 {
		result.Dependencies = append(result.Dependencies, fmt.Sprintf("%d content blocks will be deleted", len(project.ContentBlocks)))
	}

	translations, err := repos.Translations.CountByEntity(ctx, models.EntityProject, id)
	if err != nil {
		return nil, nil, err
	}
	if translations > 0 {
		result.Dependencies = append(result.Dependencies, fmt.Sprintf("%d translations will be deleted", translations))
	}

	return result.Allow("Project can be safely deleted"), project, nil
}

// Language

func (s *deletionService) CanDeleteLanguage(ctx context.Context, id uint) (*models.DeletionResult, error) {
	return s.inspect(ctx, "language", id, func(ctx context.Context, repos repository.Repositories) (*models.DeletionResult, error) {
		result, _, err := checkLanguage(ctx, repos, id)
		return result, err
	})
}

func (s *deletionService) DeleteLanguageSafely(ctx context.Context, id uint) (*models.DeletionResult, error) {
	var language *models.Language
	return s.execute(ctx, deletionPlan{
		kind: "language",
		id:   id,
		check: func(ctx context.Context, repos repository.Repositories) (*models.DeletionResult, error) {
			result, found, err := checkLanguage(ctx, repos, id)
			language = found
			return result, err
		},
		cascade: func(ctx context.Context, repos repository.Repositories, result *models.DeletionResult) error {
			translations, err := repos.Translations.DeleteByLanguage(ctx, id)
			if err != nil {
				return err
			}
			result.DeletedItems = append(result.DeletedItems, fmt.Sprintf("%d translations", translations))

			if err := repos.Languages.Delete(ctx, id); err != nil {
				return err
			}
			result.DeletedItems = append(result.DeletedItems, "Language: "+language.Name)
			return nil
		},
		success: "Language deleted successfully",
	})
}

func checkLanguage(ctx context.Context, repos repository.Repositories, id uint) (*models.DeletionResult, *models.Language, error) {
	result := models.NewDeletionResult()

	language, err := repos.Languages.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if language == nil {
		return result.NotFound("Language not found"), nil, nil
	}

	checker := NewDependencyChecker(repos)
	last, err := checker.LanguageIsLastRemaining(ctx)
	if err != nil {
		return nil, nil, err
	}
	if last {
		return result.Block("Cannot delete the last language"), language, nil
	}
	isDefault, err := checker.LanguageIsDefault(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if isDefault {
		return result.Block("Cannot delete the default language. Please set another language as default first."), language, nil
	}

	translations, err := repos.Translations.CountByLanguage(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if translations > 0 {
		result.Dependencies = append(result.Dependencies, fmt.Sprintf("%d translations will be deleted", translations))
	}
	return result.Allow("Language can be safely deleted"), language, nil
}

// Photo

func (s *deletionService) CanDeletePhoto(ctx context.Context, id uint) (*models.DeletionResult, error) {
	return s.inspect(ctx, "photo", id, func(ctx context.Context, repos repository.Repositories) (*models.DeletionResult, error) {
		result, _, err := checkPhoto(ctx, repos, id)
		return result, err
	})
}

func (s *deletionService) DeletePhotoSafely(ctx context.Context, id uint) (*models.DeletionResult, error) {
	var photo *models.Photo
	return s.execute(ctx, deletionPlan{
		kind: "photo",
		id:   id,
		check: func(ctx context.Context, repos repository.Repositories) (*models.DeletionResult, error) {
			result, found, err := checkPhoto(ctx, repos, id)
			photo = found
			return result, err
		},
		cascade: func(ctx context.Context, repos repository.Repositories, result *models.DeletionResult) error {
			if err := s.files.DeleteFile(ctx, photo.FilePath); err != nil {
				return fmt.Errorf("photo file %s: %w", photo.FileName, err)
			}
			result.DeletedItems = append(result.DeletedItems, "Photo file: "+photo.FileName)

			if _, err := repos.Translations.DeleteByEntity(ctx, models.EntityPhoto, id); err != nil {
				return err
			}
			result.DeletedItems = append(result.DeletedItems, "Photo translations")

			if err := repos.Photos.Delete(ctx, id); err != nil {
				return err
			}
			result.DeletedItems = append(result.DeletedItems, "Photo record: "+photo.FileName)
			return nil
		},
		success: "Photo deleted successfully",
	})
}

func checkPhoto(ctx context.Context, repos repository.Repositories, id uint) (*models.DeletionResult, *models.Photo, error) {
	result := models.NewDeletionResult()

	photo, err := repos.Photos.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if photo == nil {
		return result.NotFound("Photo not found"), nil, nil
	}

	result.Dependencies = append(result.Dependencies, "Photo: "+photo.FileName)
	if photo.IsHomepageSlider {
		result.Dependencies = append(result.Dependencies, "Photo will be removed from the homepage slider")
	}
	translations, err := repos.Translations.CountByEntity(ctx, models.EntityPhoto, id)
	if err != nil {
		return nil, nil, err
	}
	if translations > 0 {
		result.Dependencies = append(result.Dependencies, fmt.Sprintf("%d translations will be deleted", translations))
	}
	return result.Allow("Photo can be safely deleted"), photo, nil
}
