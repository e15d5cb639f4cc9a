package service

import (
	"career_guide_backend/internal/config"
	"career_guide_backend/internal/model"
	"career_guide_backend/internal/repository"
	"career_guide_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// 内存库随连接存在，限制为单连接避免表丢失
	sqlDB.SetMaxOpenConns(1)

	// User 列类型依赖 MySQL enum，引擎测试不涉及用户表
	require.NoError(t, db.AutoMigrate(
		&model.Aptitude{},
		&model.Question{},
		&model.Option{},
		&model.Career{},
		&model.University{},
		&model.TestRecord{},
		&model.TestAnswer{},
		&model.AptitudeScore{},
	))

	return db
}

type catalogFixture struct {
	math, lang, space model.Aptitude
	q1, q2, q3        model.Question
}

// seedCatalog 搭建一个最小题目目录：
//
//	q1: 两个选项都映射到数理逻辑（权重2和3），历史算法下该题上限被重复累计
//	q2: 语言表达(2) / 空间想象(1)
//	q3: 数理逻辑(1) / 语言表达(1)
func seedCatalog(t *testing.T, db *gorm.DB) catalogFixture {
	t.Helper()

	f := catalogFixture{
		math:  model.Aptitude{Name: "数理逻辑"},
		lang:  model.Aptitude{Name: "语言表达"},
		space: model.Aptitude{Name: "空间想象"},
	}
	require.NoError(t, db.Create(&f.math).Error)
	require.NoError(t, db.Create(&f.lang).Error)
	require.NoError(t, db.Create(&f.space).Error)

	f.q1 = model.Question{Text: "q1", Order: 1, Active: true, Options: []model.Option{
		{Text: "q1a", AptitudeID: f.math.ID, Weight: 2},
		{Text: "q1b", AptitudeID: f.math.ID, Weight: 3},
	}}
	f.q2 = model.Question{Text: "q2", Order: 2, Active: true, Options: []model.Option{
		{Text: "q2a", AptitudeID: f.lang.ID, Weight: 2},
		{Text: "q2b", AptitudeID: f.space.ID, Weight: 1},
	}}
	f.q3 = model.Question{Text: "q3", Order: 3, Active: true, Options: []model.Option{
		{Text: "q3a", AptitudeID: f.math.ID, Weight: 1},
		{Text: "q3b", AptitudeID: f.lang.ID, Weight: 1},
	}}
	require.NoError(t, db.Create(&f.q1).Error)
	require.NoError(t, db.Create(&f.q2).Error)
	require.NoError(t, db.Create(&f.q3).Error)

	return f
}

func newScoringService(db *gorm.DB, cfg *config.Config) *ScoringService {
	return NewScoringService(
		repository.NewQuestionRepository(db),
		repository.NewAptitudeRepository(db),
		cfg,
	)
}

func resultFor(t *testing.T, results []AptitudeResult, aptitudeID uint) AptitudeResult {
	t.Helper()
	for _, r := range results {
		if r.Aptitude.ID == aptitudeID {
			return r
		}
	}
	t.Fatalf("aptitude %d not in results", aptitudeID)
	return AptitudeResult{}
}

func TestEvaluateLegacyMaxPossibleDoubleCounts(t *testing.T) {
	db := newTestDB(t)
	f := seedCatalog(t, db)
	svc := newScoringService(db, &config.Config{})

	// 选 q1 的高权重选项：raw=3。q1 内两个选项都映射到数理逻辑，
	// 历史算法把 q1 的上限(3)累计两次，再加 q3 的上限(1)，合计 7
	answers := []model.TestAnswer{
		{QuestionID: f.q1.ID, OptionID: f.q1.Options[1].ID},
	}
	results, err := svc.Evaluate(answers)
	require.NoError(t, err)

	math := resultFor(t, results, f.math.ID)
	assert.Equal(t, 3.0, math.Score)
	assert.Equal(t, 7.0, math.MaxPossible)
	assert.Equal(t, 43, math.Percentage) // 3/7 = 42.86 -> 43
}

func TestEvaluateSingleQuestionQuirk(t *testing.T) {
	db := newTestDB(t)

	math := model.Aptitude{Name: "数理逻辑"}
	require.NoError(t, db.Create(&math).Error)

	q := model.Question{Text: "q", Active: true, Options: []model.Option{
		{Text: "a", AptitudeID: math.ID, Weight: 2},
		{Text: "b", AptitudeID: math.ID, Weight: 3},
	}}
	require.NoError(t, db.Create(&q).Error)

	svc := newScoringService(db, &config.Config{})

	// 该题最大权重3，两个选项各累计一次：上限 = 6，3/6 = 50%
	results, err := svc.Evaluate([]model.TestAnswer{
		{QuestionID: q.ID, OptionID: q.Options[1].ID},
	})
	require.NoError(t, err)

	r := resultFor(t, results, math.ID)
	assert.Equal(t, 3.0, r.Score)
	assert.Equal(t, 6.0, r.MaxPossible)
	assert.Equal(t, 50, r.Percentage)
}

func TestEvaluateCorrectedMaxPossible(t *testing.T) {
	db := newTestDB(t)
	f := seedCatalog(t, db)

	cfg := &config.Config{}
	cfg.Scoring.CorrectedMaxPossible = true
	svc := newScoringService(db, cfg)

	answers := []model.TestAnswer{
		{QuestionID: f.q1.ID, OptionID: f.q1.Options[1].ID},
	}
	results, err := svc.Evaluate(answers)
	require.NoError(t, err)

	// 修正算法下 q1 对数理逻辑只计一次：上限 = 3 + 1 = 4
	math := resultFor(t, results, f.math.ID)
	assert.Equal(t, 3.0, math.Score)
	assert.Equal(t, 4.0, math.MaxPossible)
	assert.Equal(t, 75, math.Percentage)
}

func TestEvaluateOrdersByScoreDescending(t *testing.T) {
	db := newTestDB(t)
	f := seedCatalog(t, db)
	svc := newScoringService(db, &config.Config{})

	answers := []model.TestAnswer{
		{QuestionID: f.q1.ID, OptionID: f.q1.Options[0].ID}, // math +2
		{QuestionID: f.q2.ID, OptionID: f.q2.Options[1].ID}, // space +1
		{QuestionID: f.q3.ID, OptionID: f.q3.Options[1].ID}, // lang +1
	}
	results, err := svc.Evaluate(answers)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, f.math.ID, results[0].Aptitude.ID)
	// 语言表达与空间想象同为1分，稳定排序保持目录顺序(id 升序)
	assert.Equal(t, f.lang.ID, results[1].Aptitude.ID)
	assert.Equal(t, f.space.ID, results[2].Aptitude.ID)
}

func TestEvaluateRejectsEmptySubmission(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	svc := newScoringService(db, &config.Config{})

	_, err := svc.Evaluate(nil)
	assert.ErrorIs(t, err, util.ErrEmptySubmission)
}

func TestEvaluateRejectsInvalidAnswers(t *testing.T) {
	db := newTestDB(t)
	f := seedCatalog(t, db)
	svc := newScoringService(db, &config.Config{})

	t.Run("unknown option", func(t *testing.T) {
		_, err := svc.Evaluate([]model.TestAnswer{
			{QuestionID: f.q1.ID, OptionID: 9999},
		})
		assert.ErrorIs(t, err, util.ErrInvalidAnswer)
	})

	t.Run("option from another question", func(t *testing.T) {
		_, err := svc.Evaluate([]model.TestAnswer{
			{QuestionID: f.q1.ID, OptionID: f.q2.Options[0].ID},
		})
		assert.ErrorIs(t, err, util.ErrInvalidAnswer)
	})

	t.Run("duplicate question", func(t *testing.T) {
		_, err := svc.Evaluate([]model.TestAnswer{
			{QuestionID: f.q1.ID, OptionID: f.q1.Options[0].ID},
			{QuestionID: f.q1.ID, OptionID: f.q1.Options[1].ID},
		})
		assert.ErrorIs(t, err, util.ErrInvalidAnswer)
	})
}

func TestEvaluateStoredSkipsUnresolvableAnswers(t *testing.T) {
	db := newTestDB(t)
	f := seedCatalog(t, db)
	svc := newScoringService(db, &config.Config{})

	// 目录调整后残留的答案不再报错，跳过后其余照常计分
	results, err := svc.EvaluateStored([]model.TestAnswer{
		{QuestionID: f.q1.ID, OptionID: 9999},
		{QuestionID: f.q2.ID, OptionID: f.q2.Options[0].ID},
	})
	require.NoError(t, err)

	lang := resultFor(t, results, f.lang.ID)
	assert.Equal(t, 2.0, lang.Score)
	math := resultFor(t, results, f.math.ID)
	assert.Equal(t, 0.0, math.Score)
}

func TestNormalizePercentage(t *testing.T) {
	cases := []struct {
		raw, max float64
		want     int
	}{
		{3, 6, 50},
		{1, 3, 33},    // 33.33 向下
		{2, 3, 67},    // 66.67 向上
		{1, 8, 13},    // 12.5 恰好半数时进位
		{0, 5, 0},
		{5, 5, 100},
		{1, 0, 0},     // 上限为0时不除零
	}
	for _, c := range cases {
		assert.Equal(t, c.want, normalizePercentage(c.raw, c.max), "raw=%v max=%v", c.raw, c.max)
	}
}

func TestPersistScoresSkipsZeroRows(t *testing.T) {
	db := newTestDB(t)
	f := seedCatalog(t, db)
	svc := newScoringService(db, &config.Config{})

	answers := []model.TestAnswer{
		{QuestionID: f.q2.ID, OptionID: f.q2.Options[0].ID}, // lang +2
	}
	results, err := svc.Evaluate(answers)
	require.NoError(t, err)

	record := model.TestRecord{UserID: 1}
	require.NoError(t, db.Create(&record).Error)
	require.NoError(t, svc.PersistScores(db, record.ID, results))

	var rows []model.AptitudeScore
	require.NoError(t, db.Where("test_id = ?", record.ID).Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, f.lang.ID, rows[0].AptitudeID)
	assert.Equal(t, 2.0, rows[0].Score)
}
