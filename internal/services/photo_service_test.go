package services

import (
	"context"
	"testing"

	"mimarlik-backend/internal/models"
	"mimarlik-backend/internal/repository"
	"mimarlik-backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadPhoto(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	project := env.addProject(t, "Villa", nil)

	photo, err := env.photos().Upload(ctx, &PhotoUploadRequest{
		Data:             pngBytes(t, 64, 48),
		FileName:         "facade.png",
		ProjectID:        &project.ID,
		AltText:          "Facade",
		Status:           models.StatusDraft,
		IsHomepageSlider: true,
		SliderText:       "ignored",
	})
	require.NoError(t, err)
	assert.Equal(t, "image/png", photo.MimeType)
	assert.Equal(t, 64, photo.Width)
	assert.Equal(t, 48, photo.Height)
	assert.Equal(t, "photos/facade.png", photo.FilePath)
	assert.Equal(t, "https://cdn.test/photos/facade.png", photo.URL)
	assert.False(t, photo.IsHomepageSlider, "draft photos never join the slider")
	assert.True(t, env.files.has(photo.FilePath))

	byProject, err := env.photos().GetByProject(ctx, project.ID)
	require.NoError(t, err)
	assert.Len(t, byProject, 1)
}

func TestUploadRejectsNonImages(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.photos().Upload(context.Background(), &PhotoUploadRequest{
		Data:     []byte("plain text, not an image"),
		FileName: "notes.txt",
	})
	assert.ErrorIs(t, err, ErrInvalidImage)
	assert.Empty(t, env.files.files)
}

type failingPhotos struct {
	repository.PhotoRepository
}

func (failingPhotos) Create(context.Context, *models.Photo) error {
	return errStoreDown
}

type stubTransactions struct {
	repository.TransactionManager
	repos repository.Repositories
}

func (s stubTransactions) Repositories() repository.Repositories {
	return s.repos
}

func TestUploadRemovesFileWhenInsertFails(t *testing.T) {
	env := newTestEnv(t)
	repos := env.repos
	repos.Photos = failingPhotos{PhotoRepository: env.repos.Photos}
	svc := NewPhotoService(stubTransactions{TransactionManager: env.tx, repos: repos}, env.files,
		env.photos().(*photoService).upload, testutil.TestLogger())

	_, err := svc.Upload(context.Background(), &PhotoUploadRequest{
		Data:     pngBytes(t, 8, 8),
		FileName: "x.png",
		Status:   models.StatusPublished,
	})
	assert.ErrorIs(t, err, errStoreDown)
	assert.Empty(t, env.files.files)
	assert.Equal(t, []string{"photos/x.png"}, env.files.deleted)
}

func TestPhotoSliderRules(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	svc := env.photos()

	photo := env.addPhoto(t, "hero.jpg", nil)

	onSlider, err := svc.AddToSlider(ctx, photo.ID, "Welcome")
	require.NoError(t, err)
	assert.True(t, onSlider.IsHomepageSlider)

	slider, err := svc.GetSlider(ctx)
	require.NoError(t, err)
	require.Len(t, slider, 1)
	assert.Equal(t, "Welcome", slider[0].SliderText)

	hidden, err := svc.Update(ctx, photo.ID, &PhotoUpdateRequest{
		Status:           models.StatusHidden,
		IsHomepageSlider: true,
		SliderText:       "Still here?",
	})
	require.NoError(t, err)
	assert.False(t, hidden.IsHomepageSlider)
	assert.Empty(t, hidden.SliderText)

	_, err = svc.AddToSlider(ctx, photo.ID, "Again")
	assert.ErrorIs(t, err, ErrPhotoNotPublished)

	removed, err := svc.RemoveFromSlider(ctx, photo.ID)
	require.NoError(t, err)
	assert.False(t, removed.IsHomepageSlider)

	_, err = svc.AddToSlider(ctx, 999, "")
	assert.ErrorIs(t, err, ErrPhotoNotFound)
}

func TestUpdatePhotoChecksProject(t *testing.T) {
	env := newTestEnv(t)
	photo := env.addPhoto(t, "a.jpg", nil)
	_, err := env.photos().Update(context.Background(), photo.ID, &PhotoUpdateRequest{ProjectID: uintPtr(5)})
	assert.ErrorIs(t, err, ErrProjectNotFound)
}
