package repository

import (
	"context"
	"time"

	"mimarlik-backend/internal/database"

	"gorm.io/gorm"
)

// Repositories groups every entity repository bound to the same handle.
type Repositories struct {
	Categories    CategoryRepository
	Projects      ProjectRepository
	Photos        PhotoRepository
	ContentBlocks ContentBlockRepository
	Languages     LanguageRepository
	Translations  TranslationRepository
}

func newRepositories(db *gorm.DB, timeout time.Duration) Repositories {
	return Repositories{
		Categories:    newCategoryRepository(db, timeout),
		Projects:      newProjectRepository(db, timeout),
		Photos:        newPhotoRepository(db, timeout),
		ContentBlocks: newContentBlockRepository(db, timeout),
		Languages:     newLanguageRepository(db, timeout),
		Translations:  newTranslationRepository(db, timeout),
	}
}

// TransactionManager runs units of work against the entity store.
type TransactionManager interface {
	// Repositories returns repositories outside of any transaction.
	Repositories() Repositories

	// Do calls fn with repositories bound to a fresh transaction. The transaction
	// commits when fn returns nil and rolls back when fn returns an error or panics.
	// The repositories passed to fn must not be used after fn returns.
	Do(ctx context.Context, fn func(repos Repositories) error) error
}

type gormTransactionManager struct {
	db      *database.Database
	timeout time.Duration
	repos   Repositories
}

func NewTransactionManager(db *database.Database) TransactionManager {
	timeout := db.GetQueryTimeout()
	return &gormTransactionManager{
		db:      db,
		timeout: timeout,
		repos:   newRepositories(db.DB, timeout),
	}
}

func (m *gormTransactionManager) Repositories() Repositories {
	return m.repos
}

func (m *gormTransactionManager) Do(ctx context.Context, fn func(repos Repositories) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(newRepositories(tx, m.timeout))
	})
}
