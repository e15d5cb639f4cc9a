package service

import (
	"career_guide_backend/internal/model"
	"career_guide_backend/internal/repository"
	"career_guide_backend/internal/util"
	"career_guide_backend/pkg/logger"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type TestService struct {
	DB          *gorm.DB
	TestRepo    *repository.TestRepository
	Scoring     *ScoringService
	Recommender *RecommendationService
}

func NewTestService(db *gorm.DB, testRepo *repository.TestRepository, scoring *ScoringService, recommender *RecommendationService) *TestService {
	return &TestService{
		DB:          db,
		TestRepo:    testRepo,
		Scoring:     scoring,
		Recommender: recommender,
	}
}

type AnswerInput struct {
	QuestionID uint `json:"question_id" binding:"required"`
	OptionID   uint `json:"option_id" binding:"required"`
}

type SubmitTestRequest struct {
	Answers []AnswerInput `json:"answers" binding:"required"`
}

type AptitudeScoreView struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Score       float64 `json:"score"`
	Percentage  int     `json:"percentage"`
}

type TestResultResponse struct {
	ID           uint                `json:"id"`
	CompletedAt  time.Time           `json:"completedAt"`
	Aptitudes    []AptitudeScoreView `json:"aptitudes"`
	Careers      []CareerMatch       `json:"careers"`
	Universities []UniversityMatch   `json:"universities"`
}

// Submit 提交一次测评。记录、答案、维度得分在同一事务内落库，
// 任一步失败则整体回滚，不留下部分可见的提交。
func (s *TestService) Submit(userID uint, req SubmitTestRequest) (*TestResultResponse, error) {
	if len(req.Answers) == 0 {
		return nil, util.ErrEmptySubmission
	}

	var resp *TestResultResponse
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		record := &model.TestRecord{
			UserID:      userID,
			CompletedAt: time.Now(),
		}
		if err := s.TestRepo.CreateTest(tx, record); err != nil {
			return fmt.Errorf("%w: create test record: %v", util.ErrSubmissionFailed, err)
		}

		answers := make([]model.TestAnswer, len(req.Answers))
		for i, a := range req.Answers {
			answers[i] = model.TestAnswer{
				TestID:     record.ID,
				QuestionID: a.QuestionID,
				OptionID:   a.OptionID,
			}
		}
		if err := s.TestRepo.CreateAnswers(tx, answers); err != nil {
			return fmt.Errorf("%w: persist answers: %v", util.ErrSubmissionFailed, err)
		}

		results, err := s.Scoring.Evaluate(answers)
		if err != nil {
			return err
		}
		if err := s.Scoring.PersistScores(tx, record.ID, results); err != nil {
			return fmt.Errorf("%w: persist scores: %v", util.ErrSubmissionFailed, err)
		}

		recs, err := s.Recommender.Recommend(results)
		if err != nil {
			return err
		}

		resp = composeResult(record, results, recs)
		return nil
	})
	if err != nil {
		if !errors.Is(err, util.ErrEmptySubmission) && !errors.Is(err, util.ErrInvalidAnswer) {
			logger.Log.Error("test submission rolled back", zap.Uint("userId", userID), zap.Error(err))
		}
		return nil, err
	}

	return resp, nil
}

// GetResults 只读。从持久化答案重新计分并重新匹配推荐，而不是信任
// 已存的 AptitudeScore 行，目录调整后结果随当前目录走。
func (s *TestService) GetResults(testID uint) (*TestResultResponse, error) {
	record, err := s.TestRepo.FindByIDWithAnswers(testID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrTestNotFound
		}
		return nil, err
	}

	results, err := s.Scoring.EvaluateStored(record.Answers)
	if err != nil {
		return nil, err
	}

	recs, err := s.Recommender.Recommend(results)
	if err != nil {
		return nil, err
	}

	return composeResult(record, results, recs), nil
}

func (s *TestService) ListUserTests(userID uint, page, limit int) ([]model.TestRecord, int64, error) {
	return s.TestRepo.ListByUser(userID, page, limit)
}

func composeResult(record *model.TestRecord, results []AptitudeResult, recs *RecommendationSet) *TestResultResponse {
	aptitudes := make([]AptitudeScoreView, len(results))
	for i, r := range results {
		aptitudes[i] = AptitudeScoreView{
			ID:          r.Aptitude.ID,
			Name:        r.Aptitude.Name,
			Description: r.Aptitude.Description,
			Score:       r.Score,
			Percentage:  r.Percentage,
		}
	}
	return &TestResultResponse{
		ID:           record.ID,
		CompletedAt:  record.CompletedAt,
		Aptitudes:    aptitudes,
		Careers:      recs.Careers,
		Universities: recs.Universities,
	}
}
