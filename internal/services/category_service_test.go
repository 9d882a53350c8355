package services

import (
	"context"
	"testing"

	"mimarlik-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCategoryGeneratesUniqueSlug(t *testing.T) {
	ctx := context.Background()
	svc := newTestEnv(t).categories()

	first, err := svc.Create(ctx, &CategoryRequest{Title: "Konut Projeleri", Status: models.StatusPublished})
	require.NoError(t, err)
	assert.Equal(t, "konut-projeleri", first.Slug)

	second, err := svc.Create(ctx, &CategoryRequest{Title: "Konut  Projeleri", Status: models.StatusPublished})
	require.NoError(t, err)
	assert.Equal(t, "konut-projeleri-2", second.Slug)

	bySlug, err := svc.GetBySlug(ctx, "konut-projeleri-2")
	require.NoError(t, err)
	assert.Equal(t, second.ID, bySlug.ID)
}

func TestCreateCategoryChecksParent(t *testing.T) {
	_, err := newTestEnv(t).categories().Create(context.Background(), &CategoryRequest{
		Title: "Villas", ParentID: uintPtr(42),
	})
	assert.ErrorIs(t, err, ErrParentNotFound)
	assert.True(t, IsNotFound(err))
}

func TestUpdateCategoryRejectsCycles(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	svc := env.categories()

	a := env.addCategory(t, "A", nil)
	b := env.addCategory(t, "B", &a.ID)
	c := env.addCategory(t, "C", &b.ID)

	_, err := svc.Update(ctx, a.ID, &CategoryRequest{Title: "A", ParentID: &c.ID})
	assert.ErrorIs(t, err, ErrCategoryCycle)

	_, err = svc.Update(ctx, a.ID, &CategoryRequest{Title: "A", ParentID: &a.ID})
	assert.ErrorIs(t, err, ErrCategoryCycle)

	moved, err := svc.Update(ctx, c.ID, &CategoryRequest{Title: "C", ParentID: &a.ID})
	require.NoError(t, err)
	assert.Equal(t, a.ID, *moved.ParentID)

	children, err := svc.GetByParent(ctx, &a.ID)
	require.NoError(t, err)
	assert.Len(t, children, 2)

	roots, err := svc.GetByParent(ctx, nil)
	require.NoError(t, err)
	require.Len(t, roots, 1)
	assert.Equal(t, a.ID, roots[0].ID)
}

func TestUpdateCategoryRegeneratesSlugOnTitleChange(t *testing.T) {
	ctx := context.Background()
	svc := newTestEnv(t).categories()

	created, err := svc.Create(ctx, &CategoryRequest{Title: "Ofis", Status: models.StatusPublished})
	require.NoError(t, err)

	same, err := svc.Update(ctx, created.ID, &CategoryRequest{Title: "Ofis", Status: models.StatusHidden})
	require.NoError(t, err)
	assert.Equal(t, "ofis", same.Slug)
	assert.Equal(t, models.StatusHidden, same.Status)

	renamed, err := svc.Update(ctx, created.ID, &CategoryRequest{Title: "İş Merkezi", Status: models.StatusPublished})
	require.NoError(t, err)
	assert.Equal(t, "is-merkezi", renamed.Slug)

	_, err = svc.GetByID(ctx, 999)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestGetTreeNestsDescendants(t *testing.T) {
	env := newTestEnv(t)
	residential := env.addCategory(t, "Residential", nil)
	villas := env.addCategory(t, "Villas", &residential.ID)
	env.addCategory(t, "Sea Villas", &villas.ID)
	env.addCategory(t, "Apartments", &residential.ID)
	env.addCategory(t, "Office", nil)

	tree, err := env.categories().GetTree(context.Background())
	require.NoError(t, err)
	require.Len(t, tree, 2)
	assert.Equal(t, "Office", tree[0].Title)
	assert.Empty(t, tree[0].Children)

	root := tree[1]
	assert.Equal(t, "Residential", root.Title)
	require.Len(t, root.Children, 2)
	assert.Equal(t, "Apartments", root.Children[0].Title)
	assert.Equal(t, "Villas", root.Children[1].Title)
	require.Len(t, root.Children[1].Children, 1)
	assert.Equal(t, "Sea Villas", root.Children[1].Children[0].Title)
}
