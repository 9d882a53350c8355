package services

import (
	"context"
	"strings"

	"mimarlik-backend/internal/models"
	"mimarlik-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

// LanguageService manages languages and keeps exactly one published language
// flagged as default whenever any language exists.
type LanguageService interface {
	GetAll(ctx context.Context) ([]models.Language, error)
	GetActive(ctx context.Context) ([]models.Language, error)
	GetByID(ctx context.Context, id uint) (*models.Language, error)
	GetByCode(ctx context.Context, code string) (*models.Language, error)
	GetDefault(ctx context.Context) (*models.Language, error)

	Create(ctx context.Context, req *LanguageRequest) (*models.Language, error)
	Update(ctx context.Context, id uint, req *LanguageRequest) (*models.Language, error)
	SetDefault(ctx context.Context, id uint) (*models.Language, error)
}

type languageService struct {
	tx     repository.TransactionManager
	logger *logrus.Logger
}

func NewLanguageService(tx repository.TransactionManager, logger *logrus.Logger) LanguageService {
	return &languageService{
		tx:     tx,
		logger: logger,
	}
}

func (s *languageService) GetAll(ctx context.Context) ([]models.Language, error) {
	return s.tx.Repositories().Languages.FindAll(ctx)
}

func (s *languageService) GetActive(ctx context.Context) ([]models.Language, error) {
	return s.tx.Repositories().Languages.FindActive(ctx)
}

func (s *languageService) GetByID(ctx context.Context, id uint) (*models.Language, error) {
	language, err := s.tx.Repositories().Languages.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if language == nil {
		return nil, ErrLanguageNotFound
	}
	return language, nil
}

func (s *languageService) GetByCode(ctx context.Context, code string) (*models.Language, error) {
	language, err := s.tx.Repositories().Languages.FindByCode(ctx, normalizeCode(code))
	if err != nil {
		return nil, err
	}
	if language == nil {
		return nil, ErrLanguageNotFound
	}
	return language, nil
}

func (s *languageService) GetDefault(ctx context.Context) (*models.Language, error) {
	language, err := s.tx.Repositories().Languages.FindDefault(ctx)
	if err != nil {
		return nil, err
	}
	if language == nil {
		return nil, ErrLanguageNotFound
	}
	return language, nil
}

func (s *languageService) Create(ctx context.Context, req *LanguageRequest) (*models.Language, error) {
	req.Code = normalizeCode(req.Code)
	if err := req.Validate(); err != nil {
		return nil, validationError(err)
	}

	language := &models.Language{
		Code:       req.Code,
		Name:       strings.TrimSpace(req.Name),
		NativeName: strings.TrimSpace(req.NativeName),
		Status:     req.Status,
		SortOrder:  req.SortOrder,
	}

	err := s.tx.Do(ctx, func(repos repository.Repositories) error {
		exists, err := repos.Languages.CodeExists(ctx, language.Code, 0)
		if err != nil {
			return err
		}
		if exists {
			return ErrLanguageCodeExists
		}

		count, err := repos.Languages.Count(ctx)
		if err != nil {
			return err
		}
		first := count == 0
		if first {
			language.Status = models.StatusPublished
		}

		if err := repos.Languages.Create(ctx, language); err != nil {
			return err
		}
		if first || req.IsDefault {
			if err := setDefaultTx(ctx, repos, language.ID); err != nil {
				return err
			}
			language.IsDefault = true
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"language_id": language.ID,
		"code":        language.Code,
		"is_default":  language.IsDefault,
	}).Info("Language created")
	return language, nil
}

func (s *languageService) Update(ctx context.Context, id uint, req *LanguageRequest) (*models.Language, error) {
	req.Code = normalizeCode(req.Code)
	if err := req.Validate(); err != nil {
		return nil, validationError(err)
	}

	var language *models.Language
	err := s.tx.Do(ctx, func(repos repository.Repositories) error {
		existing, err := repos.Languages.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return ErrLanguageNotFound
		}

		if req.Code != existing.Code {
			exists, err := repos.Languages.CodeExists(ctx, req.Code, id)
			if err != nil {
				return err
			}
			if exists {
				return ErrLanguageCodeExists
			}
		}
		if existing.IsDefault && req.Status != models.StatusPublished {
			return ErrDefaultLanguageInactive
		}

		// The default flag only moves through setDefaultTx. Clearing it here
		// would leave the set without a default.
		existing.Code = req.Code
		existing.Name = strings.TrimSpace(req.Name)
		existing.NativeName = strings.TrimSpace(req.NativeName)
		existing.Status = req.Status
		existing.SortOrder = req.SortOrder
		if err := repos.Languages.Update(ctx, existing); err != nil {
			return err
		}

		if req.IsDefault && !existing.IsDefault {
			if err := setDefaultTx(ctx, repos, id); err != nil {
				return err
			}
			existing.IsDefault = true
		}
		language = existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"language_id": language.ID,
		"code":        language.Code,
		"is_default":  language.IsDefault,
	}).Info("Language updated")
	return language, nil
}

func (s *languageService) SetDefault(ctx context.Context, id uint) (*models.Language, error) {
	var language *models.Language
	err := s.tx.Do(ctx, func(repos repository.Repositories) error {
		if err := setDefaultTx(ctx, repos, id); err != nil {
			return err
		}
		var err error
		language, err = repos.Languages.FindByID(ctx, id)
		return err
	})
	if err != nil {
		s.logger.WithField("language_id", id).WithError(err).Warn("Failed to set default language")
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"language_id": id,
		"code":        language.Code,
	}).Info("Default language changed")
	return language, nil
}

// setDefaultTx moves the default flag to id using the caller's transaction.
// A missing or unpublished target leaves the current default untouched.
func setDefaultTx(ctx context.Context, repos repository.Repositories, id uint) error {
	target, err := repos.Languages.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if target == nil {
		return ErrLanguageNotFound
	}
	if !target.IsActive() {
		return ErrLanguageInactive
	}

	if err := repos.Languages.ClearDefault(ctx); err != nil {
		return err
	}
	found, err := repos.Languages.MarkDefault(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrLanguageNotFound
	}
	return nil
}

func normalizeCode(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}
