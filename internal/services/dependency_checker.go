package services

import (
	"context"

	"mimarlik-backend/internal/models"
	"mimarlik-backend/internal/repository"
)

// DependencyChecker answers read-only questions about what blocks a delete.
// It reads through whatever repositories it was built over, so a checker built
// inside a transaction sees that transaction's state. Nothing is cached.
type DependencyChecker struct {
	repos repository.Repositories
}

func NewDependencyChecker(repos repository.Repositories) *DependencyChecker {
	return &DependencyChecker{repos: repos}
}

func (c *DependencyChecker) CategoryHasChildren(ctx context.Context, id uint) (bool, error) {
	return c.repos.Categories.HasChildren(ctx, id)
}

func (c *DependencyChecker) CategoryHasProjects(ctx context.Context, id uint) (bool, error) {
	return c.repos.Categories.HasProjects(ctx, id)
}

// LanguageIsLastRemaining reports whether at most one language is stored.
func (c *DependencyChecker) LanguageIsLastRemaining(ctx context.Context) (bool, error) {
	count, err := c.repos.Languages.Count(ctx)
	if err != nil {
		return false, err
	}
	return count <= 1, nil
}

func (c *DependencyChecker) LanguageIsDefault(ctx context.Context, id uint) (bool, error) {
	language, err := c.repos.Languages.FindByID(ctx, id)
	if err != nil {
		return false, err
	}
	return language != nil && language.IsDefault, nil
}

// CategoryChildren lists the direct children of a category, or nil when it has none.
func (c *DependencyChecker) CategoryChildren(ctx context.Context, id uint) ([]models.Category, error) {
	has, err := c.CategoryHasChildren(ctx, id)
	if err != nil || !has {
		return nil, err
	}
	return c.repos.Categories.FindByParent(ctx, &id)
}

// CategoryProjects lists the projects filed under a category, or nil when it has none.
func (c *DependencyChecker) CategoryProjects(ctx context.Context, id uint) ([]models.Project, error) {
	has, err := c.CategoryHasProjects(ctx, id)
	if err != nil || !has {
		return nil, err
	}
	return c.repos.Projects.FindByCategory(ctx, id)
}
