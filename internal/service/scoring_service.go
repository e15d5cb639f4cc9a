package service

import (
	"career_guide_backend/internal/config"
	"career_guide_backend/internal/model"
	"career_guide_backend/internal/repository"
	"career_guide_backend/internal/util"
	"math"
	"sort"

	"gorm.io/gorm"
)

// AptitudeResult 单个维度的计分结果，Percentage 以该维度可达上限归一化
type AptitudeResult struct {
	Aptitude    model.Aptitude `json:"aptitude"`
	Score       float64        `json:"score"`
	MaxPossible float64        `json:"maxPossible"`
	Percentage  int            `json:"percentage"`
}

type ScoringService struct {
	QuestionRepo *repository.QuestionRepository
	AptitudeRepo *repository.AptitudeRepository
	Cfg          *config.Config
}

func NewScoringService(questionRepo *repository.QuestionRepository, aptitudeRepo *repository.AptitudeRepository, cfg *config.Config) *ScoringService {
	return &ScoringService{
		QuestionRepo: questionRepo,
		AptitudeRepo: aptitudeRepo,
		Cfg:          cfg,
	}
}

// Evaluate 对一次提交的答案计分，答案必须能在当前有效题目目录中完整解析。
// 提交为空或答案与题目/选项不匹配时报错，提交入口在事务内调用本方法。
func (s *ScoringService) Evaluate(answers []model.TestAnswer) ([]AptitudeResult, error) {
	if len(answers) == 0 {
		return nil, util.ErrEmptySubmission
	}
	return s.evaluate(answers, true)
}

// EvaluateStored 对已持久化的答案重新计分。题目目录在提交后可能被
// 管理端调整，无法再解析的答案跳过而不是报错。
func (s *ScoringService) EvaluateStored(answers []model.TestAnswer) ([]AptitudeResult, error) {
	return s.evaluate(answers, false)
}

func (s *ScoringService) evaluate(answers []model.TestAnswer, strict bool) ([]AptitudeResult, error) {
	questions, err := s.QuestionRepo.ListActiveWithOptions()
	if err != nil {
		return nil, err
	}

	optionByID := make(map[uint]model.Option)
	questionMax := make(map[uint]float64)
	for _, q := range questions {
		for _, o := range q.Options {
			optionByID[o.ID] = o
			if o.Weight > questionMax[q.ID] {
				questionMax[q.ID] = o.Weight
			}
		}
	}

	rawScore := make(map[uint]float64)
	answered := make(map[uint]bool)
	for _, ans := range answers {
		opt, ok := optionByID[ans.OptionID]
		if !ok || opt.QuestionID != ans.QuestionID || answered[ans.QuestionID] {
			if strict {
				return nil, util.ErrInvalidAnswer
			}
			continue
		}
		answered[ans.QuestionID] = true
		rawScore[opt.AptitudeID] += opt.Weight
	}

	maxPossible := s.maxPossible(questions, questionMax)

	aptitudes, err := s.AptitudeRepo.List()
	if err != nil {
		return nil, err
	}

	results := make([]AptitudeResult, len(aptitudes))
	for i, a := range aptitudes {
		raw := rawScore[a.ID]
		max := maxPossible[a.ID]
		results[i] = AptitudeResult{
			Aptitude:    a,
			Score:       raw,
			MaxPossible: max,
			Percentage:  normalizePercentage(raw, max),
		}
	}

	// 目录本身按 id 升序，稳定排序保证同分时 id 小者在前
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	return results, nil
}

// maxPossible 计算每个维度的可达上限。历史算法对目录中映射到该维度的
// 每个选项累计一次其所在题目的最大权重：同一题内给同一维度配多个选项
// 时该题上限会被重复累计。corrected_max_possible 打开后每个(维度,题目)
// 只累计一次。
func (s *ScoringService) maxPossible(questions []model.Question, questionMax map[uint]float64) map[uint]float64 {
	maxPossible := make(map[uint]float64)

	if s.Cfg != nil && s.Cfg.Scoring.CorrectedMaxPossible {
		type pair struct{ aptitudeID, questionID uint }
		seen := make(map[pair]bool)
		for _, q := range questions {
			for _, o := range q.Options {
				p := pair{o.AptitudeID, q.ID}
				if seen[p] {
					continue
				}
				seen[p] = true
				maxPossible[o.AptitudeID] += questionMax[q.ID]
			}
		}
		return maxPossible
	}

	for _, q := range questions {
		for _, o := range q.Options {
			maxPossible[o.AptitudeID] += questionMax[q.ID]
		}
	}
	return maxPossible
}

// normalizePercentage 四舍五入到整数百分比，上限为 0 时返回 0
func normalizePercentage(raw, max float64) int {
	if max <= 0 {
		return 0
	}
	return int(math.Floor(raw/max*100 + 0.5))
}

// PersistScores 在调用方事务内落库，只写 score > 0 的维度
func (s *ScoringService) PersistScores(tx *gorm.DB, testID uint, results []AptitudeResult) error {
	var rows []model.AptitudeScore
	for _, r := range results {
		if r.Score <= 0 {
			continue
		}
		rows = append(rows, model.AptitudeScore{
			TestID:     testID,
			AptitudeID: r.Aptitude.ID,
			Score:      r.Score,
			Percentage: r.Percentage,
		})
	}
	if len(rows) == 0 {
		return nil
	}
	return tx.Create(&rows).Error
}
