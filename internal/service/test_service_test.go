package service

import (
	"career_guide_backend/internal/config"
	"career_guide_backend/internal/model"
	"career_guide_backend/internal/repository"
	"career_guide_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestService(db *gorm.DB) *TestService {
	scoring := newScoringService(db, &config.Config{})
	recommender := newRecommendationService(db)
	return NewTestService(db, repository.NewTestRepository(db), scoring, recommender)
}

func TestSubmitPersistsRecordAnswersAndScores(t *testing.T) {
	db := newTestDB(t)
	f := seedCatalog(t, db)

	career := model.Career{Name: "软件工程师", Aptitudes: []model.Aptitude{f.math}}
	require.NoError(t, db.Create(&career).Error)

	svc := newTestService(db)

	resp, err := svc.Submit(1, SubmitTestRequest{Answers: []AnswerInput{
		{QuestionID: f.q1.ID, OptionID: f.q1.Options[0].ID}, // math +2
		{QuestionID: f.q2.ID, OptionID: f.q2.Options[0].ID}, // lang +2
	}})
	require.NoError(t, err)
	require.NotNil(t, resp)

	var recordCount, answerCount, scoreCount int64
	require.NoError(t, db.Model(&model.TestRecord{}).Count(&recordCount).Error)
	require.NoError(t, db.Model(&model.TestAnswer{}).Count(&answerCount).Error)
	require.NoError(t, db.Model(&model.AptitudeScore{}).Count(&scoreCount).Error)
	assert.EqualValues(t, 1, recordCount)
	assert.EqualValues(t, 2, answerCount)
	// 只有得分为正的维度落库：空间想象0分不写行
	assert.EqualValues(t, 2, scoreCount)

	// 响应里的维度按得分降序，包含全部目录维度
	require.Len(t, resp.Aptitudes, 3)
	assert.True(t, resp.Aptitudes[0].Score >= resp.Aptitudes[1].Score)
	assert.True(t, resp.Aptitudes[1].Score >= resp.Aptitudes[2].Score)

	require.Len(t, resp.Careers, 1)
	assert.Equal(t, "软件工程师", resp.Careers[0].Name)
}

func TestSubmitEmptySubmission(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	svc := newTestService(db)

	_, err := svc.Submit(1, SubmitTestRequest{})
	assert.ErrorIs(t, err, util.ErrEmptySubmission)
}

func TestSubmitRollsBackOnInvalidAnswer(t *testing.T) {
	db := newTestDB(t)
	f := seedCatalog(t, db)
	svc := newTestService(db)

	_, err := svc.Submit(1, SubmitTestRequest{Answers: []AnswerInput{
		{QuestionID: f.q1.ID, OptionID: f.q1.Options[0].ID},
		{QuestionID: f.q2.ID, OptionID: 9999},
	}})
	require.ErrorIs(t, err, util.ErrInvalidAnswer)

	// 事务整体回滚，不留下部分可见的提交
	var recordCount, answerCount, scoreCount int64
	require.NoError(t, db.Model(&model.TestRecord{}).Count(&recordCount).Error)
	require.NoError(t, db.Model(&model.TestAnswer{}).Count(&answerCount).Error)
	require.NoError(t, db.Model(&model.AptitudeScore{}).Count(&scoreCount).Error)
	assert.EqualValues(t, 0, recordCount)
	assert.EqualValues(t, 0, answerCount)
	assert.EqualValues(t, 0, scoreCount)
}

func TestGetResultsMatchesSubmitShape(t *testing.T) {
	db := newTestDB(t)
	f := seedCatalog(t, db)

	career := model.Career{Name: "数据分析师", Aptitudes: []model.Aptitude{f.math}}
	require.NoError(t, db.Create(&career).Error)

	svc := newTestService(db)

	submitted, err := svc.Submit(7, SubmitTestRequest{Answers: []AnswerInput{
		{QuestionID: f.q1.ID, OptionID: f.q1.Options[1].ID},
	}})
	require.NoError(t, err)

	fetched, err := svc.GetResults(submitted.ID)
	require.NoError(t, err)

	// getResults 从持久化答案重新计分，结果与提交时一致
	assert.Equal(t, submitted.ID, fetched.ID)
	assert.Equal(t, submitted.Aptitudes, fetched.Aptitudes)
	require.Len(t, fetched.Careers, 1)
	assert.Equal(t, submitted.Careers[0].MatchPercentage, fetched.Careers[0].MatchPercentage)
	assert.NotNil(t, fetched.Universities)
}

func TestGetResultsTolerantOfCatalogDrift(t *testing.T) {
	db := newTestDB(t)
	f := seedCatalog(t, db)
	svc := newTestService(db)

	submitted, err := svc.Submit(1, SubmitTestRequest{Answers: []AnswerInput{
		{QuestionID: f.q1.ID, OptionID: f.q1.Options[0].ID}, // math +2
		{QuestionID: f.q2.ID, OptionID: f.q2.Options[0].ID}, // lang +2
	}})
	require.NoError(t, err)

	// 管理端下架 q2 后，该答案无法解析，重新计分时跳过
	require.NoError(t, db.Model(&model.Question{}).Where("id = ?", f.q2.ID).Update("active", false).Error)

	fetched, err := svc.GetResults(submitted.ID)
	require.NoError(t, err)

	for _, a := range fetched.Aptitudes {
		if a.ID == f.lang.ID {
			assert.Equal(t, 0.0, a.Score)
		}
		if a.ID == f.math.ID {
			assert.Equal(t, 2.0, a.Score)
		}
	}
}

func TestGetResultsNotFound(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	svc := newTestService(db)

	_, err := svc.GetResults(424242)
	assert.ErrorIs(t, err, util.ErrTestNotFound)
}

func TestListUserTests(t *testing.T) {
	db := newTestDB(t)
	f := seedCatalog(t, db)
	svc := newTestService(db)

	for i := 0; i < 3; i++ {
		_, err := svc.Submit(5, SubmitTestRequest{Answers: []AnswerInput{
			{QuestionID: f.q1.ID, OptionID: f.q1.Options[0].ID},
		}})
		require.NoError(t, err)
	}
	_, err := svc.Submit(6, SubmitTestRequest{Answers: []AnswerInput{
		{QuestionID: f.q1.ID, OptionID: f.q1.Options[0].ID},
	}})
	require.NoError(t, err)

	tests, total, err := svc.ListUserTests(5, 1, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, tests, 2)
}
