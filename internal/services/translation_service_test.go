package services

import (
	"context"
	"errors"
	"testing"

	"mimarlik-backend/internal/models"
	"mimarlik-backend/internal/repository"
	"mimarlik-backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertReplacesInsteadOfDuplicating(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.addLanguage(t, "tr", true)
	en := env.addLanguage(t, "en", false)
	svc := env.translations()

	first, err := svc.Upsert(ctx, models.EntityProject, 7, models.FieldTitle, en.ID, "Villa")
	require.NoError(t, err)
	second, err := svc.Upsert(ctx, models.EntityProject, 7, models.FieldTitle, en.ID, "Modern Villa")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	got, err := svc.Get(ctx, models.EntityProject, 7, models.FieldTitle, en.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Modern Villa", got.Value)

	all, err := svc.GetByEntity(ctx, models.EntityProject, 7)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestUpsertIsIdempotent(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	lang := env.addLanguage(t, "tr", true)
	svc := env.translations()

	for i := 0; i < 2; i++ {
		_, err := svc.Upsert(ctx, models.EntityCategory, 1, models.FieldTitle, lang.ID, "Konut")
		require.NoError(t, err)
	}

	rows, err := svc.GetByLanguage(ctx, lang.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Konut", rows[0].Value)
}

func TestUpsertRejectsBadKeys(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	lang := env.addLanguage(t, "tr", true)
	svc := env.translations()

	_, err := svc.Upsert(ctx, models.EntityCategory, 1, models.FieldLocation, lang.ID, "x")
	assert.ErrorIs(t, err, ErrInvalidField)
	assert.True(t, IsValidation(err))

	_, err = svc.Upsert(ctx, models.EntityName("Movie"), 1, models.FieldTitle, lang.ID, "x")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Upsert(ctx, models.EntityCategory, 1, models.FieldTitle, 999, "x")
	assert.ErrorIs(t, err, ErrLanguageNotFound)
}

func TestGetMissingTranslationReturnsNil(t *testing.T) {
	env := newTestEnv(t)
	got, err := env.translations().Get(context.Background(), models.EntityPhoto, 1, models.FieldCaption, 1)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestBulkUpsertWritesInFieldOrder(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	lang := env.addLanguage(t, "tr", true)

	saved, err := env.translations().BulkUpsert(ctx, models.EntityProject, 3, lang.ID, map[models.FieldName]string{
		models.FieldTitle:    "Modern Villa",
		models.FieldClient:   "Aydın Ailesi",
		models.FieldLocation: "Bodrum",
	})
	require.NoError(t, err)
	require.Len(t, saved, 3)
	assert.Equal(t, models.FieldClient, saved[0].FieldName)
	assert.Equal(t, models.FieldLocation, saved[1].FieldName)
	assert.Equal(t, models.FieldTitle, saved[2].FieldName)
}

func TestBulkUpsertRejectsInvalidFieldBeforeWriting(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	lang := env.addLanguage(t, "tr", true)

	_, err := env.translations().BulkUpsert(ctx, models.EntityCategory, 3, lang.ID, map[models.FieldName]string{
		models.FieldTitle:      "Konut",
		models.FieldSliderText: "nope",
	})
	assert.ErrorIs(t, err, ErrInvalidField)

	n, err := env.repos.Translations.CountByEntity(ctx, models.EntityCategory, 3)
	require.NoError(t, err)
	assert.Zero(t, n)
}

// failingTranslations fails upserts for a single field.
type failingTranslations struct {
	repository.TranslationRepository
	field models.FieldName
}

func (f failingTranslations) Upsert(ctx context.Context, tr *models.Translation) error {
	if tr.FieldName == f.field {
		return errStoreDown
	}
	return f.TranslationRepository.Upsert(ctx, tr)
}

func TestBulkUpsertKeepsEarlierFieldsOnFailure(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	lang := env.addLanguage(t, "tr", true)

	repos := env.repos
	repos.Translations = failingTranslations{TranslationRepository: env.repos.Translations, field: models.FieldLocation}
	svc := NewTranslationService(repos, testutil.TestLogger())

	saved, err := svc.BulkUpsert(ctx, models.EntityProject, 3, lang.ID, map[models.FieldName]string{
		models.FieldTitle:       "Modern Villa",
		models.FieldDescription: "Deniz manzaralı",
		models.FieldClient:      "Aydın Ailesi",
		models.FieldLocation:    "Bodrum",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, errStoreDown)

	var bulkErr *BulkUpsertError
	require.True(t, errors.As(err, &bulkErr))
	assert.Equal(t, []models.FieldName{models.FieldClient, models.FieldDescription}, bulkErr.Committed)
	assert.Equal(t, models.FieldLocation, bulkErr.Failed)
	assert.Len(t, saved, 2)

	stored, err := env.repos.Translations.FindByEntity(ctx, models.EntityProject, 3)
	require.NoError(t, err)
	assert.Len(t, stored, 2)
}

func TestResolveFallsBackToDefaultLanguage(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	tr := env.addLanguage(t, "tr", true)
	en := env.addLanguage(t, "en", false)
	env.addTranslation(t, models.EntityProject, 5, models.FieldTitle, tr.ID, "Modern Villa TR")
	env.addTranslation(t, models.EntityProject, 5, models.FieldLocation, tr.ID, "Bodrum")
	env.addTranslation(t, models.EntityProject, 5, models.FieldTitle, en.ID, "Modern Villa")

	resolved, err := env.translations().Resolve(ctx, models.EntityProject, 5, "en")
	require.NoError(t, err)
	assert.Equal(t, map[models.FieldName]string{
		models.FieldTitle:    "Modern Villa",
		models.FieldLocation: "Bodrum",
	}, resolved)

	upper, err := env.translations().Resolve(ctx, models.EntityProject, 5, " EN ")
	require.NoError(t, err)
	assert.Equal(t, resolved, upper)

	_, err = env.translations().Resolve(ctx, models.EntityProject, 5, "de")
	assert.ErrorIs(t, err, ErrLanguageNotFound)
}

func TestUpdateValueKeepsKey(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	lang := env.addLanguage(t, "tr", true)
	svc := env.translations()

	saved, err := svc.Upsert(ctx, models.EntityProject, 4, models.FieldClient, lang.ID, "Aydın")
	require.NoError(t, err)

	updated, err := svc.UpdateValue(ctx, saved.ID, "Aydın Ailesi")
	require.NoError(t, err)
	assert.Equal(t, saved.ID, updated.ID)
	assert.Equal(t, models.FieldClient, updated.FieldName)
	assert.Equal(t, "Aydın Ailesi", updated.Value)

	_, err = svc.UpdateValue(ctx, 999, "x")
	assert.ErrorIs(t, err, ErrTranslationNotFound)
}

func TestDeleteTranslation(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	lang := env.addLanguage(t, "tr", true)
	svc := env.translations()

	saved, err := svc.Upsert(ctx, models.EntityPhoto, 2, models.FieldAltText, lang.ID, "Cephe")
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, saved.ID))
	assert.ErrorIs(t, svc.Delete(ctx, saved.ID), ErrTranslationNotFound)
}

func TestDeleteByEntity(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	lang := env.addLanguage(t, "tr", true)
	env.addTranslation(t, models.EntityPhoto, 2, models.FieldAltText, lang.ID, "a")
	env.addTranslation(t, models.EntityPhoto, 2, models.FieldCaption, lang.ID, "b")

	n, err := env.translations().DeleteByEntity(ctx, models.EntityPhoto, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}
