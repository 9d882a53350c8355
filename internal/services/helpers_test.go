package services

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"path"
	"sync"
	"testing"

	"mimarlik-backend/internal/config"
	"mimarlik-backend/internal/database"
	"mimarlik-backend/internal/models"
	"mimarlik-backend/internal/repository"
	"mimarlik-backend/internal/testutil"

	"github.com/stretchr/testify/require"
)

// fakeStorage keeps files in memory and fails deletes for configured paths.
type fakeStorage struct {
	mu      sync.Mutex
	files   map[string][]byte
	failOn  map[string]error
	deleted []string
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{
		files:  map[string][]byte{},
		failOn: map[string]error{},
	}
}

func (f *fakeStorage) StoreFile(_ context.Context, data []byte, name, folder string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	p := path.Join(folder, name)
	f.files[p] = data
	return p, nil
}

func (f *fakeStorage) DeleteFile(_ context.Context, filePath string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err, ok := f.failOn[filePath]; ok {
		return err
	}
	delete(f.files, filePath)
	f.deleted = append(f.deleted, filePath)
	return nil
}

func (f *fakeStorage) URLFor(filePath string) string {
	return "https://cdn.test/" + filePath
}

func (f *fakeStorage) has(filePath string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.files[filePath]
	return ok
}

type testEnv struct {
	db    *database.Database
	tx    repository.TransactionManager
	repos repository.Repositories
	files *fakeStorage
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := testutil.TestDB(t)
	tx := repository.NewTransactionManager(db)
	return &testEnv{
		db:    db,
		tx:    tx,
		repos: tx.Repositories(),
		files: newFakeStorage(),
	}
}

func (e *testEnv) deletion() DeletionService {
	return NewDeletionService(e.tx, e.files, testutil.TestLogger())
}

func (e *testEnv) languages() LanguageService {
	return NewLanguageService(e.tx, testutil.TestLogger())
}

func (e *testEnv) translations() TranslationService {
	return NewTranslationService(e.repos, testutil.TestLogger())
}

func (e *testEnv) categories() CategoryService {
	return NewCategoryService(e.tx, testutil.TestLogger())
}

func (e *testEnv) projects() ProjectService {
	return NewProjectService(e.tx, e.files, testutil.TestLogger())
}

func (e *testEnv) photos() PhotoService {
	return NewPhotoService(e.tx, e.files, config.UploadConfig{
		MaxBytes:     1 << 20,
		PhotoFolder:  "photos",
		AllowedTypes: []string{"image/jpeg", "image/png", "image/gif", "image/webp"},
	}, testutil.TestLogger())
}

func (e *testEnv) addLanguage(t *testing.T, code string, isDefault bool) *models.Language {
	t.Helper()
	lang := &models.Language{Code: code, Name: code, Status: models.StatusPublished, IsDefault: isDefault}
	require.NoError(t, e.repos.Languages.Create(context.Background(), lang))
	return lang
}

func (e *testEnv) addCategory(t *testing.T, title string, parentID *uint) *models.Category {
	t.Helper()
	c := &models.Category{Title: title, Slug: "c-" + title, ParentID: parentID, Status: models.StatusPublished}
	require.NoError(t, e.repos.Categories.Create(context.Background(), c))
	return c
}

func (e *testEnv) addProject(t *testing.T, title string, categoryID *uint) *models.Project {
	t.Helper()
	p := &models.Project{Title: title, Slug: "p-" + title, CategoryID: categoryID, Status: models.StatusPublished}
	require.NoError(t, e.repos.Projects.Create(context.Background(), p))
	return p
}

func (e *testEnv) addPhoto(t *testing.T, name string, projectID *uint) *models.Photo {
	t.Helper()
	ctx := context.Background()
	filePath, err := e.files.StoreFile(ctx, []byte("img"), name, "photos")
	require.NoError(t, err)
	p := &models.Photo{FileName: name, FilePath: filePath, ProjectID: projectID, Status: models.StatusPublished}
	require.NoError(t, e.repos.Photos.Create(ctx, p))
	return p
}

func (e *testEnv) addTranslation(t *testing.T, entity models.EntityName, id uint, field models.FieldName, languageID uint, value string) {
	t.Helper()
	require.NoError(t, e.repos.Translations.Upsert(context.Background(), &models.Translation{
		EntityName: entity, EntityID: id, FieldName: field, LanguageID: languageID, Value: value,
	}))
}

func uintPtr(v uint) *uint { return &v }

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

var errStoreDown = errors.New("store unavailable")
