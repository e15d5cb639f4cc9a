package service

import (
	"career_guide_backend/internal/model"
	"career_guide_backend/internal/repository"
	"career_guide_backend/internal/util"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newRecommendationService(db *gorm.DB) *RecommendationService {
	return NewRecommendationService(
		repository.NewAptitudeRepository(db),
		repository.NewCareerRepository(db),
		repository.NewUniversityRepository(db),
	)
}

func rankedResult(a model.Aptitude, score float64) AptitudeResult {
	return AptitudeResult{Aptitude: a, Score: score}
}

func TestRecommendMatchesTopAptitudes(t *testing.T) {
	db := newTestDB(t)

	apts := make([]model.Aptitude, 4)
	for i := range apts {
		apts[i] = model.Aptitude{Name: fmt.Sprintf("维度%d", i+1)}
		require.NoError(t, db.Create(&apts[i]).Error)
	}

	full := model.Career{Name: "全匹配", Aptitudes: []model.Aptitude{apts[0], apts[1], apts[2]}}
	partial := model.Career{Name: "部分匹配", Aptitudes: []model.Aptitude{apts[0], apts[1]}}
	outside := model.Career{Name: "无关职业", Aptitudes: []model.Aptitude{apts[3]}}
	require.NoError(t, db.Create(&full).Error)
	require.NoError(t, db.Create(&partial).Error)
	require.NoError(t, db.Create(&outside).Error)

	svc := newRecommendationService(db)

	// 只取排名前3的正分维度参与匹配，第4个被截断
	ranked := []AptitudeResult{
		rankedResult(apts[0], 5),
		rankedResult(apts[1], 4),
		rankedResult(apts[2], 3),
		rankedResult(apts[3], 2),
	}
	set, err := svc.Recommend(ranked)
	require.NoError(t, err)

	require.Len(t, set.Careers, 2)
	assert.Equal(t, "全匹配", set.Careers[0].Name)
	assert.Equal(t, 100.0, set.Careers[0].MatchPercentage)
	assert.ElementsMatch(t, []string{"维度1", "维度2", "维度3"}, set.Careers[0].MatchingAptitudes)

	assert.Equal(t, "部分匹配", set.Careers[1].Name)
	assert.Equal(t, 66.67, set.Careers[1].MatchPercentage)
}

func TestRecommendDenominatorIsSelectedCount(t *testing.T) {
	db := newTestDB(t)

	a1 := model.Aptitude{Name: "正分一"}
	a2 := model.Aptitude{Name: "正分二"}
	a3 := model.Aptitude{Name: "零分"}
	require.NoError(t, db.Create(&a1).Error)
	require.NoError(t, db.Create(&a2).Error)
	require.NoError(t, db.Create(&a3).Error)

	career := model.Career{Name: "单维职业", Aptitudes: []model.Aptitude{a1}}
	require.NoError(t, db.Create(&career).Error)

	svc := newRecommendationService(db)

	// 只有两个正分维度，分母是2不是3
	set, err := svc.Recommend([]AptitudeResult{
		rankedResult(a1, 3),
		rankedResult(a2, 1),
		rankedResult(a3, 0),
	})
	require.NoError(t, err)

	require.Len(t, set.Careers, 1)
	assert.Equal(t, 50.0, set.Careers[0].MatchPercentage)
}

func TestRecommendUniversityTieBreakByRating(t *testing.T) {
	db := newTestDB(t)

	apt := model.Aptitude{Name: "数理逻辑"}
	require.NoError(t, db.Create(&apt).Error)

	low := model.University{Name: "低评分大学", Rating: 3.2, Aptitudes: []model.Aptitude{apt}}
	high := model.University{Name: "高评分大学", Rating: 4.8, Aptitudes: []model.Aptitude{apt}}
	require.NoError(t, db.Create(&low).Error)
	require.NoError(t, db.Create(&high).Error)

	svc := newRecommendationService(db)

	set, err := svc.Recommend([]AptitudeResult{rankedResult(apt, 5)})
	require.NoError(t, err)

	require.Len(t, set.Universities, 2)
	assert.Equal(t, "高评分大学", set.Universities[0].Name)
	assert.Equal(t, "低评分大学", set.Universities[1].Name)
}

func TestRecommendLimitsResults(t *testing.T) {
	db := newTestDB(t)

	apt := model.Aptitude{Name: "数理逻辑"}
	require.NoError(t, db.Create(&apt).Error)

	for i := 0; i < RecommendationLimit+3; i++ {
		c := model.Career{Name: fmt.Sprintf("职业%d", i), Aptitudes: []model.Aptitude{apt}}
		require.NoError(t, db.Create(&c).Error)
	}

	svc := newRecommendationService(db)

	set, err := svc.Recommend([]AptitudeResult{rankedResult(apt, 5)})
	require.NoError(t, err)
	assert.Len(t, set.Careers, RecommendationLimit)
}

func TestRecommendNoPositiveScores(t *testing.T) {
	db := newTestDB(t)

	apt := model.Aptitude{Name: "数理逻辑"}
	require.NoError(t, db.Create(&apt).Error)

	svc := newRecommendationService(db)

	set, err := svc.Recommend([]AptitudeResult{rankedResult(apt, 0)})
	require.NoError(t, err)

	// 空列表而不是nil，序列化后是[]
	assert.NotNil(t, set.Careers)
	assert.NotNil(t, set.Universities)
	assert.Empty(t, set.Careers)
	assert.Empty(t, set.Universities)
}

func TestRecommendCatalogLookupFailure(t *testing.T) {
	db := newTestDB(t)

	svc := newRecommendationService(db)

	ghost := model.Aptitude{}
	ghost.ID = 9999
	ghost.Name = "已删除维度"

	_, err := svc.Recommend([]AptitudeResult{rankedResult(ghost, 5)})
	assert.ErrorIs(t, err, util.ErrCatalogLookup)
}
