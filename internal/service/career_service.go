package service

import (
	"career_guide_backend/internal/model"
	"career_guide_backend/internal/repository"
)

type CareerService struct {
	CareerRepo   *repository.CareerRepository
	AptitudeRepo *repository.AptitudeRepository
}

func NewCareerService(careerRepo *repository.CareerRepository, aptitudeRepo *repository.AptitudeRepository) *CareerService {
	return &CareerService{
		CareerRepo:   careerRepo,
		AptitudeRepo: aptitudeRepo,
	}
}

type CareerRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	AptitudeIDs []uint `json:"aptitudeIds"`
}

func (s *CareerService) Create(req CareerRequest) (*model.Career, error) {
	c := &model.Career{
		Name:        req.Name,
		Description: req.Description,
	}
	if len(req.AptitudeIDs) > 0 {
		aptitudes, err := s.AptitudeRepo.ListByIDs(req.AptitudeIDs)
		if err != nil {
			return nil, err
		}
		c.Aptitudes = aptitudes
	}
	if err := s.CareerRepo.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CareerService) Update(id uint, req CareerRequest) (*model.Career, error) {
	c, err := s.CareerRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	c.Name = req.Name
	c.Description = req.Description
	if err := s.CareerRepo.Update(c); err != nil {
		return nil, err
	}

	if req.AptitudeIDs != nil {
		aptitudes, err := s.AptitudeRepo.ListByIDs(req.AptitudeIDs)
		if err != nil {
			return nil, err
		}
		if err := s.CareerRepo.ReplaceAptitudes(c, aptitudes); err != nil {
			return nil, err
		}
		c.Aptitudes = aptitudes
	}
	return c, nil
}

func (s *CareerService) Get(id uint) (*model.Career, error) {
	return s.CareerRepo.FindByID(id)
}

func (s *CareerService) List(page, limit int) ([]model.Career, int64, error) {
	return s.CareerRepo.List(page, limit)
}

func (s *CareerService) Delete(id uint) error {
	return s.CareerRepo.Delete(id)
}
