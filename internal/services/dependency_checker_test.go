package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDependencyCheckerCategory(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	checker := NewDependencyChecker(env.repos)

	parent := env.addCategory(t, "Residential", nil)
	child := env.addCategory(t, "Villas", &parent.ID)
	env.addProject(t, "Sea House", &child.ID)

	has, err := checker.CategoryHasChildren(ctx, parent.ID)
	require.NoError(t, err)
	assert.True(t, has)
	has, err = checker.CategoryHasProjects(ctx, parent.ID)
	require.NoError(t, err)
	assert.False(t, has)

	children, err := checker.CategoryChildren(ctx, parent.ID)
	require.NoError(t, err)
	require.Len(t, children, 1)
	assert.Equal(t, "Villas", children[0].Title)

	projects, err := checker.CategoryProjects(ctx, child.ID)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "Sea House", projects[0].Title)

	none, err := checker.CategoryChildren(ctx, child.ID)
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestDependencyCheckerLanguage(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	checker := NewDependencyChecker(env.repos)

	last, err := checker.LanguageIsLastRemaining(ctx)
	require.NoError(t, err)
	assert.True(t, last)

	tr := env.addLanguage(t, "tr", true)
	en := env.addLanguage(t, "en", false)

	last, err = checker.LanguageIsLastRemaining(ctx)
	require.NoError(t, err)
	assert.False(t, last)

	isDefault, err := checker.LanguageIsDefault(ctx, tr.ID)
	require.NoError(t, err)
	assert.True(t, isDefault)
	isDefault, err = checker.LanguageIsDefault(ctx, en.ID)
	require.NoError(t, err)
	assert.False(t, isDefault)
	isDefault, err = checker.LanguageIsDefault(ctx, 999)
	require.NoError(t, err)
	assert.False(t, isDefault)
}
