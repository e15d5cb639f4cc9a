package service

import (
	"career_guide_backend/internal/model"
	"career_guide_backend/internal/repository"
	"context"
	"mime/multipart"
	"path/filepath"

	"github.com/google/uuid"
)

type UniversityService struct {
	UniversityRepo *repository.UniversityRepository
	AptitudeRepo   *repository.AptitudeRepository
	Storage        *StorageService
}

func NewUniversityService(universityRepo *repository.UniversityRepository, aptitudeRepo *repository.AptitudeRepository, storage *StorageService) *UniversityService {
	return &UniversityService{
		UniversityRepo: universityRepo,
		AptitudeRepo:   aptitudeRepo,
		Storage:        storage,
	}
}

type UniversityRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	City        string  `json:"city"`
	Website     string  `json:"website"`
	Rating      float64 `json:"rating" binding:"gte=0,lte=5"`
	AptitudeIDs []uint  `json:"aptitudeIds"`
}

func (s *UniversityService) Create(req UniversityRequest) (*model.University, error) {
	u := &model.University{
		Name:        req.Name,
		Description: req.Description,
		City:        req.City,
		Website:     req.Website,
		Rating:      req.Rating,
	}
	if len(req.AptitudeIDs) > 0 {
		aptitudes, err := s.AptitudeRepo.ListByIDs(req.AptitudeIDs)
		if err != nil {
			return nil, err
		}
		u.Aptitudes = aptitudes
	}
	if err := s.UniversityRepo.Create(u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UniversityService) Update(id uint, req UniversityRequest) (*model.University, error) {
	u, err := s.UniversityRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	u.Name = req.Name
	u.Description = req.Description
	u.City = req.City
	u.Website = req.Website
	u.Rating = req.Rating
	if err := s.UniversityRepo.Update(u); err != nil {
		return nil, err
	}

	if req.AptitudeIDs != nil {
		aptitudes, err := s.AptitudeRepo.ListByIDs(req.AptitudeIDs)
		if err != nil {
			return nil, err
		}
		if err := s.UniversityRepo.ReplaceAptitudes(u, aptitudes); err != nil {
			return nil, err
		}
		u.Aptitudes = aptitudes
	}
	return u, nil
}

func (s *UniversityService) Get(id uint) (*model.University, error) {
	return s.UniversityRepo.FindByID(id)
}

func (s *UniversityService) List(page, limit int) ([]model.University, int64, error) {
	return s.UniversityRepo.List(page, limit)
}

func (s *UniversityService) Delete(id uint) error {
	return s.UniversityRepo.Delete(id)
}

// UploadLogo 上传大学 Logo 并更新 LogoURL
func (s *UniversityService) UploadLogo(ctx context.Context, id uint, file *multipart.FileHeader) (string, error) {
	u, err := s.UniversityRepo.FindByID(id)
	if err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	ext := filepath.Ext(file.Filename)
	filename := "universities/" + uuid.New().String() + ext

	url, err := s.Storage.Upload(ctx, filename, src, file.Size, file.Header.Get("Content-Type"))
	if err != nil {
		return "", err
	}

	u.LogoURL = url
	if err := s.UniversityRepo.Update(u); err != nil {
		return "", err
	}
	return url, nil
}
