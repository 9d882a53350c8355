package services

import (
	"context"
	"strings"

	"mimarlik-backend/internal/models"
	"mimarlik-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

type CategoryService interface {
	GetAll(ctx context.Context) ([]models.Category, error)
	// GetTree returns the root categories with their descendants nested under Children.
	GetTree(ctx context.Context) ([]models.Category, error)
	GetByID(ctx context.Context, id uint) (*models.Category, error)
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
	// GetByParent lists the children of parentID, or the root categories when it is nil.
	GetByParent(ctx context.Context, parentID *uint) ([]models.Category, error)
	Create(ctx context.Context, req *CategoryRequest) (*models.Category, error)
	Update(ctx context.Context, id uint, req *CategoryRequest) (*models.Category, error)
}

type categoryService struct {
	tx     repository.TransactionManager
	logger *logrus.Logger
}

func NewCategoryService(tx repository.TransactionManager, logger *logrus.Logger) CategoryService {
	return &categoryService{
		tx:     tx,
		logger: logger,
	}
}

func (s *categoryService) GetAll(ctx context.Context) ([]models.Category, error) {
	return s.tx.Repositories().Categories.FindAll(ctx)
}

func (s *categoryService) GetTree(ctx context.Context) ([]models.Category, error) {
	all, err := s.tx.Repositories().Categories.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	children := make(map[uint][]models.Category)
	var roots []models.Category
	for _, category := range all {
		if category.ParentID == nil {
			roots = append(roots, category)
			continue
		}
		children[*category.ParentID] = append(children[*category.ParentID], category)
	}
	return attachChildren(roots, children, make(map[uint]bool)), nil
}

// attachChildren fills Children recursively. seen stops on malformed cycles.
func attachChildren(nodes []models.Category, children map[uint][]models.Category, seen map[uint]bool) []models.Category {
	for i := range nodes {
		if seen[nodes[i].ID] {
			continue
		}
		seen[nodes[i].ID] = true
		if kids := children[nodes[i].ID]; len(kids) > 0 {
			nodes[i].Children = attachChildren(append([]models.Category(nil), kids...), children, seen)
		}
	}
	return nodes
}

func (s *categoryService) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	category, err := s.tx.Repositories().Categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	return category, nil
}

func (s *categoryService) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	category, err := s.tx.Repositories().Categories.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	return category, nil
}

func (s *categoryService) GetByParent(ctx context.Context, parentID *uint) ([]models.Category, error) {
	return s.tx.Repositories().Categories.FindByParent(ctx, parentID)
}

func (s *categoryService) Create(ctx context.Context, req *CategoryRequest) (*models.Category, error) {
	if err := req.Validate(); err != nil {
		return nil, validationError(err)
	}

	category := &models.Category{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		ParentID:    req.ParentID,
		Status:      req.Status,
		SortOrder:   req.SortOrder,
	}

	err := s.tx.Do(ctx, func(repos repository.Repositories) error {
		if err := requireParent(ctx, repos, req.ParentID); err != nil {
			return err
		}
		slug, err := uniqueSlug(ctx, category.Title, 0, repos.Categories.SlugExists)
		if err != nil {
			return err
		}
		category.Slug = slug
		return repos.Categories.Create(ctx, category)
	})
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"category_id": category.ID,
		"slug":        category.Slug,
	}).Info("Category created")
	return category, nil
}

func (s *categoryService) Update(ctx context.Context, id uint, req *CategoryRequest) (*models.Category, error) {
	if err := req.Validate(); err != nil {
		return nil, validationError(err)
	}

	var category *models.Category
	err := s.tx.Do(ctx, func(repos repository.Repositories) error {
		existing, err := repos.Categories.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return ErrCategoryNotFound
		}

		if req.ParentID != nil {
			if err := requireParent(ctx, repos, req.ParentID); err != nil {
				return err
			}
			cycle, err := createsCycle(ctx, repos, id, *req.ParentID)
			if err != nil {
				return err
			}
			if cycle {
				return ErrCategoryCycle
			}
		}

		title := strings.TrimSpace(req.Title)
		if title != existing.Title {
			slug, err := uniqueSlug(ctx, title, id, repos.Categories.SlugExists)
			if err != nil {
				return err
			}
			existing.Slug = slug
		}
		existing.Title = title
		existing.Description = req.Description
		existing.ParentID = req.ParentID
		existing.Status = req.Status
		existing.SortOrder = req.SortOrder
		existing.Children = nil

		if err := repos.Categories.Update(ctx, existing); err != nil {
			return err
		}
		category = existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"category_id": category.ID,
		"slug":        category.Slug,
	}).Info("Category updated")
	return category, nil
}

func requireParent(ctx context.Context, repos repository.Repositories, parentID *uint) error {
	if parentID == nil {
		return nil
	}
	parent, err := repos.Categories.FindByID(ctx, *parentID)
	if err != nil {
		return err
	}
	if parent == nil {
		return ErrParentNotFound
	}
	return nil
}

// createsCycle reports whether filing id under parentID would make id its own ancestor.
func createsCycle(ctx context.Context, repos repository.Repositories, id, parentID uint) (bool, error) {
	if id == parentID {
		return true, nil
	}
	links, err := repos.Categories.ParentLinks(ctx)
	if err != nil {
		return false, err
	}

	seen := map[uint]bool{}
	for current := parentID; !seen[current]; {
		if current == id {
			return true, nil
		}
		seen[current] = true
		next, ok := links[current]
		if !ok {
			return false, nil
		}
		current = next
	}
	return false, nil
}
