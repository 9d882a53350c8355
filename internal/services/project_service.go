package services

import (
	"context"
	"strings"

	"mimarlik-backend/internal/models"
	"mimarlik-backend/internal/repository"
	"mimarlik-backend/internal/storage"

	"github.com/sirupsen/logrus"
)

type ProjectService interface {
	GetAll(ctx context.Context, filter repository.ProjectFilter) ([]models.Project, error)
	// GetByID returns the project with its category, photos and content blocks.
	GetByID(ctx context.Context, id uint) (*models.Project, error)
	GetBySlug(ctx context.Context, slug string) (*models.Project, error)
	GetFeatured(ctx context.Context) ([]models.Project, error)
	// GenerateSlug previews the slug Create or Update would assign to title.
	GenerateSlug(ctx context.Context, title string, excludeID uint) (string, error)
	Create(ctx context.Context, req *ProjectRequest) (*models.Project, error)
	Update(ctx context.Context, id uint, req *ProjectRequest) (*models.Project, error)
}

type projectService struct {
	tx     repository.TransactionManager
	files  storage.FileStorage
	logger *logrus.Logger
}

func NewProjectService(tx repository.TransactionManager, files storage.FileStorage, logger *logrus.Logger) ProjectService {
	return &projectService{
		tx:     tx,
		files:  files,
		logger: logger,
	}
}

func (s *projectService) GetAll(ctx context.Context, filter repository.ProjectFilter) ([]models.Project, error) {
	return s.tx.Repositories().Projects.FindAll(ctx, filter)
}

func (s *projectService) GetByID(ctx context.Context, id uint) (*models.Project, error) {
	project, err := s.tx.Repositories().Projects.FindWithDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}
	s.fillURLs(project)
	return project, nil
}

func (s *projectService) GetBySlug(ctx context.Context, slug string) (*models.Project, error) {
	repos := s.tx.Repositories()
	project, err := repos.Projects.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}
	return s.GetByID(ctx, project.ID)
}

func (s *projectService) GetFeatured(ctx context.Context) ([]models.Project, error) {
	published := models.StatusPublished
	featured := true
	return s.tx.Repositories().Projects.FindAll(ctx, repository.ProjectFilter{
		Status:   &published,
		Featured: &featured,
	})
}

func (s *projectService) GenerateSlug(ctx context.Context, title string, excludeID uint) (string, error) {
	return uniqueSlug(ctx, title, excludeID, s.tx.Repositories().Projects.SlugExists)
}

func (s *projectService) Create(ctx context.Context, req *ProjectRequest) (*models.Project, error) {
	if err := req.Validate(); err != nil {
		return nil, validationError(err)
	}

	project := &models.Project{}
	applyProjectRequest(project, req)

	err := s.tx.Do(ctx, func(repos repository.Repositories) error {
		if err := requireCategory(ctx, repos, req.CategoryID); err != nil {
			return err
		}
		slug, err := uniqueSlug(ctx, project.Title, 0, repos.Projects.SlugExists)
		if err != nil {
			return err
		}
		project.Slug = slug

		if err := repos.Projects.Create(ctx, project); err != nil {
			return err
		}
		return repos.ContentBlocks.CreateBatch(ctx, contentBlocks(project.ID, req.ContentBlocks))
	})
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"project_id": project.ID,
		"slug":       project.Slug,
		"blocks":     len(req.ContentBlocks),
	}).Info("Project created")
	return s.GetByID(ctx, project.ID)
}

func (s *projectService) Update(ctx context.Context, id uint, req *ProjectRequest) (*models.Project, error) {
	if err := req.Validate(); err != nil {
		return nil, validationError(err)
	}

	var sliderRemoved int64
	err := s.tx.Do(ctx, func(repos repository.Repositories) error {
		project, err := repos.Projects.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if project == nil {
			return ErrProjectNotFound
		}
		if err := requireCategory(ctx, repos, req.CategoryID); err != nil {
			return err
		}

		if title := strings.TrimSpace(req.Title); title != project.Title {
			slug, err := uniqueSlug(ctx, title, id, repos.Projects.SlugExists)
			if err != nil {
				return err
			}
			project.Slug = slug
		}
		applyProjectRequest(project, req)

		if project.Status != models.StatusPublished {
			sliderRemoved, err = repos.Photos.RemoveProjectFromSlider(ctx, id)
			if err != nil {
				return err
			}
		}

		if err := repos.Projects.Update(ctx, project); err != nil {
			return err
		}
		if _, err := repos.ContentBlocks.DeleteByProject(ctx, id); err != nil {
			return err
		}
		return repos.ContentBlocks.CreateBatch(ctx, contentBlocks(id, req.ContentBlocks))
	})
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"project_id":     id,
		"blocks":         len(req.ContentBlocks),
		"slider_removed": sliderRemoved,
	}).Info("Project updated")
	return s.GetByID(ctx, id)
}

func (s *projectService) fillURLs(project *models.Project) {
	for i := range project.Photos {
		project.Photos[i].URL = s.files.URLFor(project.Photos[i].FilePath)
	}
}

func applyProjectRequest(project *models.Project, req *ProjectRequest) {
	project.Title = strings.TrimSpace(req.Title)
	project.Description = req.Description
	project.Location = req.Location
	project.Client = req.Client
	project.CompletionDate = req.CompletionDate
	project.Area = req.Area
	project.AreaUnit = req.AreaUnit
	if project.AreaUnit == "" {
		project.AreaUnit = "m²"
	}
	project.CategoryID = req.CategoryID
	project.Status = req.Status
	project.SortOrder = req.SortOrder
	project.IsFeatured = req.IsFeatured
	project.MetaTitle = req.MetaTitle
	project.MetaDescription = req.MetaDescription
	project.MetaKeywords = req.MetaKeywords
}

func contentBlocks(projectID uint, reqs []ContentBlockRequest) []models.ContentBlock {
	blocks := make([]models.ContentBlock, len(reqs))
	for i, r := range reqs {
		blocks[i] = models.ContentBlock{
			ProjectID:  projectID,
			Type:       r.Type,
			Content:    r.Content,
			Properties: r.Properties,
			SortOrder:  r.SortOrder,
			Status:     r.Status,
		}
	}
	return blocks
}

func requireCategory(ctx context.Context, repos repository.Repositories, categoryID *uint) error {
	if categoryID == nil {
		return nil
	}
	category, err := repos.Categories.FindByID(ctx, *categoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrCategoryNotFound
	}
	return nil
}
