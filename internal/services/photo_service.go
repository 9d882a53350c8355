package services

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"path"

	"mimarlik-backend/internal/config"
	"mimarlik-backend/internal/models"
	"mimarlik-backend/internal/repository"
	"mimarlik-backend/internal/storage"

	"github.com/sirupsen/logrus"
	_ "golang.org/x/image/webp"
)

type PhotoService interface {
	GetAll(ctx context.Context) ([]models.Photo, error)
	GetByProject(ctx context.Context, projectID uint) ([]models.Photo, error)
	GetSlider(ctx context.Context) ([]models.Photo, error)
	GetByID(ctx context.Context, id uint) (*models.Photo, error)

	// Upload stores the image file and records it. The stored file is removed
	// again when the record cannot be written.
	Upload(ctx context.Context, req *PhotoUploadRequest) (*models.Photo, error)
	Update(ctx context.Context, id uint, req *PhotoUpdateRequest) (*models.Photo, error)

	AddToSlider(ctx context.Context, id uint, sliderText string) (*models.Photo, error)
	RemoveFromSlider(ctx context.Context, id uint) (*models.Photo, error)
}

type photoService struct {
	tx     repository.TransactionManager
	files  storage.FileStorage
	upload config.UploadConfig
	logger *logrus.Logger
}

func NewPhotoService(tx repository.TransactionManager, files storage.FileStorage, upload config.UploadConfig, logger *logrus.Logger) PhotoService {
	return &photoService{
		tx:     tx,
		files:  files,
		upload: upload,
		logger: logger,
	}
}

func (s *photoService) GetAll(ctx context.Context) ([]models.Photo, error) {
	photos, err := s.tx.Repositories().Photos.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.withURLs(photos), nil
}

func (s *photoService) GetByProject(ctx context.Context, projectID uint) ([]models.Photo, error) {
	photos, err := s.tx.Repositories().Photos.FindByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return s.withURLs(photos), nil
}

func (s *photoService) GetSlider(ctx context.Context) ([]models.Photo, error) {
	photos, err := s.tx.Repositories().Photos.FindSlider(ctx)
	if err != nil {
		return nil, err
	}
	return s.withURLs(photos), nil
}

func (s *photoService) GetByID(ctx context.Context, id uint) (*models.Photo, error) {
	photo, err := s.tx.Repositories().Photos.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if photo == nil {
		return nil, ErrPhotoNotFound
	}
	photo.URL = s.files.URLFor(photo.FilePath)
	return photo, nil
}

func (s *photoService) Upload(ctx context.Context, req *PhotoUploadRequest) (*models.Photo, error) {
	if err := req.Validate(); err != nil {
		return nil, validationError(err)
	}
	if s.upload.MaxBytes > 0 && len(req.Data) > s.upload.MaxBytes {
		return nil, fmt.Errorf("%w: file exceeds %d bytes", ErrValidation, s.upload.MaxBytes)
	}

	mimeType := http.DetectContentType(req.Data)
	if !s.allowed(mimeType) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidImage, mimeType)
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(req.Data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	if req.ProjectID != nil {
		project, err := s.tx.Repositories().Projects.FindByID(ctx, *req.ProjectID)
		if err != nil {
			return nil, err
		}
		if project == nil {
			return nil, ErrProjectNotFound
		}
	}

	filePath, err := s.files.StoreFile(ctx, req.Data, req.FileName, s.upload.PhotoFolder)
	if err != nil {
		return nil, fmt.Errorf("failed to store photo: %w", err)
	}

	photo := &models.Photo{
		FileName:         path.Base(filePath),
		OriginalFileName: req.FileName,
		FilePath:         filePath,
		FileSize:         int64(len(req.Data)),
		MimeType:         mimeType,
		Width:            cfg.Width,
		Height:           cfg.Height,
		AltText:          req.AltText,
		Caption:          req.Caption,
		ProjectID:        req.ProjectID,
		Status:           req.Status,
		IsHomepageSlider: req.IsHomepageSlider,
		SliderText:       req.SliderText,
	}
	photo.EnforceSliderRule()

	if err := s.tx.Repositories().Photos.Create(ctx, photo); err != nil {
		if delErr := s.files.DeleteFile(ctx, filePath); delErr != nil {
			s.logger.WithField("file_path", filePath).WithError(delErr).Warn("Failed to remove orphaned photo file")
		}
		return nil, fmt.Errorf("failed to save photo: %w", err)
	}

	photo.URL = s.files.URLFor(photo.FilePath)
	s.logger.WithFields(logrus.Fields{
		"photo_id":  photo.ID,
		"file_path": photo.FilePath,
		"size":      photo.FileSize,
	}).Info("Photo uploaded")
	return photo, nil
}

func (s *photoService) Update(ctx context.Context, id uint, req *PhotoUpdateRequest) (*models.Photo, error) {
	if err := req.Validate(); err != nil {
		return nil, validationError(err)
	}

	var photo *models.Photo
	err := s.tx.Do(ctx, func(repos repository.Repositories) error {
		existing, err := repos.Photos.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return ErrPhotoNotFound
		}
		if req.ProjectID != nil {
			project, err := repos.Projects.FindByID(ctx, *req.ProjectID)
			if err != nil {
				return err
			}
			if project == nil {
				return ErrProjectNotFound
			}
		}

		existing.AltText = req.AltText
		existing.Caption = req.Caption
		existing.Description = req.Description
		existing.ProjectID = req.ProjectID
		existing.Status = req.Status
		existing.SortOrder = req.SortOrder
		existing.IsHomepageSlider = req.IsHomepageSlider
		existing.SliderText = req.SliderText
		existing.EnforceSliderRule()

		if err := repos.Photos.Update(ctx, existing); err != nil {
			return err
		}
		photo = existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	photo.URL = s.files.URLFor(photo.FilePath)
	return photo, nil
}

func (s *photoService) AddToSlider(ctx context.Context, id uint, sliderText string) (*models.Photo, error) {
	return s.setSlider(ctx, id, true, sliderText)
}

func (s *photoService) RemoveFromSlider(ctx context.Context, id uint) (*models.Photo, error) {
	return s.setSlider(ctx, id, false, "")
}

func (s *photoService) setSlider(ctx context.Context, id uint, on bool, sliderText string) (*models.Photo, error) {
	repos := s.tx.Repositories()
	photo, err := repos.Photos.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if photo == nil {
		return nil, ErrPhotoNotFound
	}
	if on && photo.Status != models.StatusPublished {
		return nil, ErrPhotoNotPublished
	}

	photo.IsHomepageSlider = on
	photo.SliderText = sliderText
	if err := repos.Photos.Update(ctx, photo); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"photo_id": id,
		"slider":   on,
	}).Info("Photo slider flag changed")
	photo.URL = s.files.URLFor(photo.FilePath)
	return photo, nil
}

func (s *photoService) allowed(mimeType string) bool {
	if len(s.upload.AllowedTypes) == 0 {
		return true
	}
	for _, t := range s.upload.AllowedTypes {
		if t == mimeType {
			return true
		}
	}
	return false
}

func (s *photoService) withURLs(photos []models.Photo) []models.Photo {
	for i := range photos {
		photos[i].URL = s.files.URLFor(photos[i].FilePath)
	}
	return photos
}
