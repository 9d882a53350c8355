package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"mimarlik-backend/internal/models"
	"mimarlik-backend/internal/repository"
	"mimarlik-backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteCategoryWithoutDependencies(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	svc := env.deletion()

	lang := env.addLanguage(t, "tr", true)
	residential := env.addCategory(t, "Residential", nil)
	other := env.addCategory(t, "Office", nil)
	env.addTranslation(t, models.EntityCategory, residential.ID, models.FieldTitle, lang.ID, "Konut")
	env.addTranslation(t, models.EntityCategory, other.ID, models.FieldTitle, lang.ID, "Ofis")

	check, err := svc.CanDeleteCategory(ctx, residential.ID)
	require.NoError(t, err)
	assert.True(t, check.CanDelete)
	assert.Equal(t, models.DeletionAllowed, check.Status)
	assert.Contains(t, check.Dependencies, "1 translations will be deleted")

	result, err := svc.DeleteCategorySafely(ctx, residential.ID)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, models.DeletionDeleted, result.Status)
	assert.Equal(t, []string{"Category translations", "Category: Residential"}, result.DeletedItems)

	gone, err := env.repos.Categories.FindByID(ctx, residential.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	n, err := env.repos.Translations.CountByEntity(ctx, models.EntityCategory, residential.ID)
	require.NoError(t, err)
	assert.Zero(t, n)
	n, err = env.repos.Translations.CountByEntity(ctx, models.EntityCategory, other.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestDeleteCategoryWithChildIsRejected(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	svc := env.deletion()

	parent := env.addCategory(t, "Residential", nil)
	env.addCategory(t, "Villas", &parent.ID)

	before, err := env.repos.Categories.FindAll(ctx)
	require.NoError(t, err)

	result, err := svc.DeleteCategorySafely(ctx, parent.ID)
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.False(t, result.CanDelete)
	assert.Equal(t, models.DeletionBlocked, result.Status)
	assert.Equal(t, "Category has child categories and cannot be deleted", result.Message)
	assert.Equal(t, []string{"Child category: Villas"}, result.Dependencies)

	after, err := env.repos.Categories.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestCanDeleteCategoryListsBothDependencyKindsCapped(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	parent := env.addCategory(t, "Residential", nil)
	env.addCategory(t, "Villas", &parent.ID)
	for i := 1; i <= 7; i++ {
		env.addProject(t, fmt.Sprintf("House %d", i), &parent.ID)
	}

	result, err := env.deletion().CanDeleteCategory(ctx, parent.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DeletionBlocked, result.Status)
	assert.Equal(t, "Category has child categories and associated projects and cannot be deleted", result.Message)
	require.Len(t, result.Dependencies, 1+5+1)
	assert.Equal(t, "Child category: Villas", result.Dependencies[0])
	assert.Equal(t, "... and 2 more projects", result.Dependencies[6])
}

func TestDeleteCategoryNotFound(t *testing.T) {
	result, err := newTestEnv(t).deletion().DeleteCategorySafely(context.Background(), 404)
	require.NoError(t, err)
	assert.Equal(t, models.DeletionNotFound, result.Status)
	assert.Equal(t, "Category not found", result.Message)
	assert.False(t, result.Success)
}

func TestDeletionCheckSurfacesStoreFailure(t *testing.T) {
	env := newTestEnv(t)
	svc := env.deletion()
	require.NoError(t, env.db.Close())

	result, err := svc.CanDeleteCategory(context.Background(), 1)
	assert.Error(t, err)
	assert.Nil(t, result)

	result, err = svc.DeleteProjectSafely(context.Background(), 1)
	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestDeleteLanguageGuards(t *testing.T) {
	ctx := context.Background()

	t.Run("last language", func(t *testing.T) {
		env := newTestEnv(t)
		only := env.addLanguage(t, "tr", true)

		result, err := env.deletion().DeleteLanguageSafely(ctx, only.ID)
		require.NoError(t, err)
		assert.Equal(t, models.DeletionBlocked, result.Status)
		assert.Equal(t, "Cannot delete the last language", result.Message)
	})

	t.Run("default language", func(t *testing.T) {
		env := newTestEnv(t)
		tr := env.addLanguage(t, "tr", true)
		en := env.addLanguage(t, "en", false)

		result, err := env.deletion().DeleteLanguageSafely(ctx, tr.ID)
		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, models.DeletionBlocked, result.Status)
		assert.Equal(t, "Cannot delete the default language. Please set another language as default first.", result.Message)

		all, err := env.repos.Languages.FindAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 2)

		still, err := env.repos.Languages.FindByID(ctx, en.ID)
		require.NoError(t, err)
		assert.NotNil(t, still)
	})
}

func TestDeleteLanguageRemovesItsTranslations(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	tr := env.addLanguage(t, "tr", true)
	en := env.addLanguage(t, "en", false)
	env.addTranslation(t, models.EntityProject, 7, models.FieldTitle, tr.ID, "Modern Villa TR")
	env.addTranslation(t, models.EntityProject, 7, models.FieldTitle, en.ID, "Modern Villa")
	env.addTranslation(t, models.EntityPhoto, 3, models.FieldCaption, en.ID, "Facade")

	check, err := env.deletion().CanDeleteLanguage(ctx, en.ID)
	require.NoError(t, err)
	assert.True(t, check.CanDelete)
	assert.Equal(t, []string{"2 translations will be deleted"}, check.Dependencies)

	result, err := env.deletion().DeleteLanguageSafely(ctx, en.ID)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, []string{"2 translations", "Language: en"}, result.DeletedItems)

	n, err := env.repos.Translations.CountByLanguage(ctx, en.ID)
	require.NoError(t, err)
	assert.Zero(t, n)
	n, err = env.repos.Translations.CountByLanguage(ctx, tr.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func seedProject(t *testing.T, env *testEnv) (*models.Project, []*models.Photo) {
	t.Helper()
	ctx := context.Background()
	lang := env.addLanguage(t, "tr", true)
	project := env.addProject(t, "Modern Villa", nil)

	photos := []*models.Photo{
		env.addPhoto(t, "a.jpg", &project.ID),
		env.addPhoto(t, "b.jpg", &project.ID),
		env.addPhoto(t, "c.jpg", &project.ID),
	}
	require.NoError(t, env.repos.ContentBlocks.CreateBatch(ctx, []models.ContentBlock{
		{ProjectID: project.ID, Type: models.BlockHeading, Content: "Intro", Status: models.StatusPublished},
		{ProjectID: project.ID, Type: models.BlockParagraph, Content: "Body", SortOrder: 1, Status: models.StatusPublished},
	}))

	env.addTranslation(t, models.EntityProject, project.ID, models.FieldTitle, lang.ID, "Modern Villa")
	env.addTranslation(t, models.EntityProject, project.ID, models.FieldLocation, lang.ID, "Bodrum")
	env.addTranslation(t, models.EntityPhoto, photos[0].ID, models.FieldCaption, lang.ID, "Facade")
	return project, photos
}

func TestCanDeleteProjectListsCascade(t *testing.T) {
	env := newTestEnv(t)
	project, _ := seedProject(t, env)

	result, err := env.deletion().CanDeleteProject(context.Background(), project.ID)
	require.NoError(t, err)
	assert.True(t, result.CanDelete)
	assert.Equal(t, []string{
		"Project: Modern Villa",
		"3 photos will be deleted",
		"  - a.jpg",
		"  - b.jpg",
		"  - c.jpg",
		"2 content blocks will be deleted",
		"2 translations will be deleted",
	}, result.Dependencies)
}

func TestDeleteProjectCascades(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	project, photos := seedProject(t, env)
	other := env.addProject(t, "Office Tower", nil)
	otherPhoto := env.addPhoto(t, "other.jpg", &other.ID)

	result, err := env.deletion().DeleteProjectSafely(ctx, project.ID)
	require.NoError(t, err)
	require.True(t, result.Success, result.Message)
	assert.Equal(t, "Project deleted successfully", result.Message)
	assert.Contains(t, result.DeletedItems, "3 photo records")
	assert.Contains(t, result.DeletedItems, "2 content blocks")
	assert.Contains(t, result.DeletedItems, "1 photo translations")
	assert.Equal(t, "Project: Modern Villa", result.DeletedItems[len(result.DeletedItems)-1])

	gone, err := env.repos.Projects.FindByID(ctx, project.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	remaining, err := env.repos.Photos.FindByProject(ctx, project.ID)
	require.NoError(t, err)
	assert.Empty(t, remaining)
	for _, p := range photos {
		assert.False(t, env.files.has(p.FilePath))
		n, err := env.repos.Translations.CountByEntity(ctx, models.EntityPhoto, p.ID)
		require.NoError(t, err)
		assert.Zero(t, n)
	}

	blocks, err := env.repos.ContentBlocks.FindByProject(ctx, project.ID)
	require.NoError(t, err)
	assert.Empty(t, blocks)

	n, err := env.repos.Translations.CountByEntity(ctx, models.EntityProject, project.ID)
	require.NoError(t, err)
	assert.Zero(t, n)

	kept, err := env.repos.Photos.FindByID(ctx, otherPhoto.ID)
	require.NoError(t, err)
	assert.NotNil(t, kept)
	assert.True(t, env.files.has(otherPhoto.FilePath))
}

// lateUploadTransactions adds a photo to the project right after the project
// is loaded inside the deletion transaction.
type lateUploadTransactions struct {
	repository.TransactionManager
	late *models.Photo
}

func (l lateUploadTransactions) Do(ctx context.Context, fn func(repos repository.Repositories) error) error {
	return l.TransactionManager.Do(ctx, func(repos repository.Repositories) error {
		repos.Projects = lateUploadProjects{ProjectRepository: repos.Projects, photos: repos.Photos, late: l.late}
		return fn(repos)
	})
}

type lateUploadProjects struct {
	repository.ProjectRepository
	photos repository.PhotoRepository
	late   *models.Photo
}

func (p lateUploadProjects) FindWithDetails(ctx context.Context, id uint) (*models.Project, error) {
	project, err := p.ProjectRepository.FindWithDetails(ctx, id)
	if err != nil || project == nil {
		return project, err
	}
	return project, p.photos.Create(ctx, p.late)
}

func TestDeleteProjectLeavesPhotoAddedAfterCheck(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	project, photos := seedProject(t, env)

	latePath, err := env.files.StoreFile(ctx, []byte("img"), "late.jpg", "photos")
	require.NoError(t, err)
	late := &models.Photo{FileName: "late.jpg", FilePath: latePath, ProjectID: &project.ID, Status: models.StatusPublished}

	svc := NewDeletionService(lateUploadTransactions{TransactionManager: env.tx, late: late}, env.files, testutil.TestLogger())
	result, err := svc.DeleteProjectSafely(ctx, project.ID)
	require.NoError(t, err)
	require.True(t, result.Success, result.Message)
	assert.Contains(t, result.DeletedItems, fmt.Sprintf("%d photo records", len(photos)))

	for _, p := range photos {
		gone, err := env.repos.Photos.FindByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Nil(t, gone)
	}

	require.NotZero(t, late.ID)
	kept, err := env.repos.Photos.FindByID(ctx, late.ID)
	require.NoError(t, err)
	assert.NotNil(t, kept)
	assert.True(t, env.files.has(latePath))
}

func TestDeleteProjectRollsBackWhenFileDeleteFails(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	project, photos := seedProject(t, env)
	env.files.failOn[photos[1].FilePath] = errors.New("permission denied")

	result, err := env.deletion().DeleteProjectSafely(ctx, project.ID)
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, models.DeletionFailed, result.Status)
	assert.Contains(t, result.Message, "Failed to delete project:")
	assert.Contains(t, result.Message, "permission denied")
	assert.Empty(t, result.DeletedItems)

	still, err := env.repos.Projects.FindByID(ctx, project.ID)
	require.NoError(t, err)
	assert.NotNil(t, still)

	rows, err := env.repos.Photos.FindByProject(ctx, project.ID)
	require.NoError(t, err)
	assert.Len(t, rows, 3)

	blocks, err := env.repos.ContentBlocks.FindByProject(ctx, project.ID)
	require.NoError(t, err)
	assert.Len(t, blocks, 2)

	n, err := env.repos.Translations.CountByEntity(ctx, models.EntityProject, project.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
	n, err = env.repos.Translations.CountByEntity(ctx, models.EntityPhoto, photos[0].ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestDeletePhoto(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	lang := env.addLanguage(t, "tr", true)
	photo := env.addPhoto(t, "slider.jpg", nil)
	env.addTranslation(t, models.EntityPhoto, photo.ID, models.FieldSliderText, lang.ID, "Hoş geldiniz")

	result, err := env.deletion().DeletePhotoSafely(ctx, photo.ID)
	require.NoError(t, err)
	require.True(t, result.Success, result.Message)
	assert.Equal(t, []string{
		"Photo file: slider.jpg",
		"Photo translations",
		"Photo record: slider.jpg",
	}, result.DeletedItems)

	assert.False(t, env.files.has(photo.FilePath))
	gone, err := env.repos.Photos.FindByID(ctx, photo.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestDeletePhotoFileFailureKeepsRow(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	photo := env.addPhoto(t, "locked.jpg", nil)
	env.files.failOn[photo.FilePath] = errors.New("bucket offline")

	result, err := env.deletion().DeletePhotoSafely(ctx, photo.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DeletionFailed, result.Status)
	assert.Equal(t, "Failed to delete photo: photo file locked.jpg: bucket offline", result.Message)

	still, err := env.repos.Photos.FindByID(ctx, photo.ID)
	require.NoError(t, err)
	assert.NotNil(t, still)
}

func TestCanDeletePhotoNotFound(t *testing.T) {
	result, err := newTestEnv(t).deletion().CanDeletePhoto(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, models.DeletionNotFound, result.Status)
	assert.False(t, result.CanDelete)
}
