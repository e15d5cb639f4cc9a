package service

import (
	"career_guide_backend/internal/model"
	"career_guide_backend/internal/repository"
	"career_guide_backend/internal/util"
	"math"
	"sort"
)

const (
	// TopAptitudeCount 参与职业/大学匹配的高分维度数量
	TopAptitudeCount = 3
	// RecommendationLimit 每类推荐结果上限
	RecommendationLimit = 10
)

type CareerMatch struct {
	model.Career
	MatchingAptitudes []string `json:"matchingAptitudes"`
	MatchPercentage   float64  `json:"matchPercentage"`
}

type UniversityMatch struct {
	model.University
	MatchingAptitudes []string `json:"matchingAptitudes"`
	MatchPercentage   float64  `json:"matchPercentage"`
}

type RecommendationSet struct {
	Careers      []CareerMatch     `json:"careers"`
	Universities []UniversityMatch `json:"universities"`
}

type RecommendationService struct {
	AptitudeRepo   *repository.AptitudeRepository
	CareerRepo     *repository.CareerRepository
	UniversityRepo *repository.UniversityRepository
}

func NewRecommendationService(aptitudeRepo *repository.AptitudeRepository, careerRepo *repository.CareerRepository, universityRepo *repository.UniversityRepository) *RecommendationService {
	return &RecommendationService{
		AptitudeRepo:   aptitudeRepo,
		CareerRepo:     careerRepo,
		UniversityRepo: universityRepo,
	}
}

// Recommend 取排名前列且得分为正的维度做匹配。没有正分维度时返回空列表。
// 匹配百分比的分母是实际选中的维度数，不是目录维度总数。
func (s *RecommendationService) Recommend(ranked []AptitudeResult) (*RecommendationSet, error) {
	selected := topPositive(ranked, TopAptitudeCount)
	set := &RecommendationSet{
		Careers:      []CareerMatch{},
		Universities: []UniversityMatch{},
	}
	if len(selected) == 0 {
		return set, nil
	}

	ids := make([]uint, len(selected))
	nameByID := make(map[uint]string, len(selected))
	for i, r := range selected {
		ids[i] = r.Aptitude.ID
		nameByID[r.Aptitude.ID] = r.Aptitude.Name
	}

	// 选中的维度必须仍能在目录中解析，否则视为数据完整性问题
	resolved, err := s.AptitudeRepo.ListByIDs(ids)
	if err != nil {
		return nil, err
	}
	if len(resolved) != len(ids) {
		return nil, util.ErrCatalogLookup
	}

	k := len(selected)

	careers, err := s.CareerRepo.FindByAptitudeIDs(ids)
	if err != nil {
		return nil, err
	}
	for _, c := range careers {
		matching := matchingNames(c.Aptitudes, nameByID)
		if len(matching) == 0 {
			continue
		}
		set.Careers = append(set.Careers, CareerMatch{
			Career:            c,
			MatchingAptitudes: matching,
			MatchPercentage:   matchPercentage(len(matching), k),
		})
	}
	// 仓库按 id 升序返回，稳定排序保证同百分比时 id 小者在前
	sort.SliceStable(set.Careers, func(i, j int) bool {
		return set.Careers[i].MatchPercentage > set.Careers[j].MatchPercentage
	})
	if len(set.Careers) > RecommendationLimit {
		set.Careers = set.Careers[:RecommendationLimit]
	}

	universities, err := s.UniversityRepo.FindByAptitudeIDs(ids)
	if err != nil {
		return nil, err
	}
	for _, u := range universities {
		matching := matchingNames(u.Aptitudes, nameByID)
		if len(matching) == 0 {
			continue
		}
		set.Universities = append(set.Universities, UniversityMatch{
			University:        u,
			MatchingAptitudes: matching,
			MatchPercentage:   matchPercentage(len(matching), k),
		})
	}
	// 大学同百分比时按评分降序
	sort.SliceStable(set.Universities, func(i, j int) bool {
		if set.Universities[i].MatchPercentage != set.Universities[j].MatchPercentage {
			return set.Universities[i].MatchPercentage > set.Universities[j].MatchPercentage
		}
		return set.Universities[i].Rating > set.Universities[j].Rating
	})
	if len(set.Universities) > RecommendationLimit {
		set.Universities = set.Universities[:RecommendationLimit]
	}

	return set, nil
}

// topPositive 按既有排序取前 n 个得分为正的维度
func topPositive(ranked []AptitudeResult, n int) []AptitudeResult {
	var top []AptitudeResult
	for _, r := range ranked {
		if r.Score <= 0 {
			continue
		}
		top = append(top, r)
		if len(top) == n {
			break
		}
	}
	return top
}

func matchingNames(aptitudes []model.Aptitude, selected map[uint]string) []string {
	var names []string
	for _, a := range aptitudes {
		if name, ok := selected[a.ID]; ok {
			names = append(names, name)
		}
	}
	return names
}

// matchPercentage 匹配维度占选中维度的百分比，保留两位小数
func matchPercentage(matched, k int) float64 {
	if k == 0 {
		return 0
	}
	return math.Round(float64(matched)/float64(k)*100*100) / 100
}
