package service

import (
	"testing"

	"classboard_backend/internal/fixture"
	"classboard_backend/internal/repository/memdb"
	"classboard_backend/internal/util"

	"github.com/stretchr/testify/assert"
)

func TestClassAnalytics(t *testing.T) {
	svc := NewAnalyticsService(memdb.New(fixture.Load()))

	analytics, err := svc.Analytics("1")
	assert.NoError(t, err)

	assert.Equal(t, 5, analytics.TotalStudents)
	assert.Equal(t, 2, analytics.AssignmentsPosted)

	// 5 条出勤记录里 3 条 present
	assert.NotNil(t, analytics.AvgAttendance)
	assert.Equal(t, 60, *analytics.AvgAttendance)

	// 已批改的两份是 95 和 88，均值四舍五入到 92
	assert.NotNil(t, analytics.ClassAverage)
	assert.Equal(t, 92, *analytics.ClassAverage)

	assert.Len(t, analytics.SubmissionRates, 2)
	first := analytics.SubmissionRates[0]
	assert.Equal(t, "1", first.AssignmentID)
	assert.Equal(t, 3, first.Submitted)
	assert.Equal(t, 60, first.Rate)
	assert.NotNil(t, first.AvgGrade)
	assert.Equal(t, 92, *first.AvgGrade)

	second := analytics.SubmissionRates[1]
	assert.Equal(t, 0, second.Submitted)
	assert.Equal(t, 0, second.Rate)
	assert.Nil(t, second.AvgGrade)

	// 95 → A 档，88 → B 档
	assert.Equal(t, 1, analytics.GradeDistribution[0].Count)
	assert.Equal(t, 50, analytics.GradeDistribution[0].Percent)
	assert.Equal(t, 1, analytics.GradeDistribution[1].Count)
	assert.Equal(t, 0, analytics.GradeDistribution[2].Count)

	// 进度快照按均分降序
	assert.Len(t, analytics.TopPerformers, 2)
	assert.Equal(t, "John Doe", analytics.TopPerformers[0].StudentName)
	assert.Equal(t, "Excellent", analytics.TopPerformers[0].Status)
	assert.Equal(t, "Jane Smith", analytics.TopPerformers[1].StudentName)
	assert.Equal(t, "Good", analytics.TopPerformers[1].Status)
}

func TestClassAnalyticsWithoutRecords(t *testing.T) {
	svc := NewAnalyticsService(memdb.New(fixture.Load()))

	// 历史课没有出勤、提交和进度数据
	analytics, err := svc.Analytics("6")
	assert.NoError(t, err)
	assert.Nil(t, analytics.AvgAttendance)
	assert.Nil(t, analytics.ClassAverage)
	assert.Empty(t, analytics.SubmissionRates)
	assert.Empty(t, analytics.TopPerformers)
	for _, band := range analytics.GradeDistribution {
		assert.Equal(t, 0, band.Count)
		assert.Equal(t, 0, band.Percent)
	}
}

func TestClassAnalyticsUnknownClass(t *testing.T) {
	svc := NewAnalyticsService(memdb.New(fixture.Load()))

	_, err := svc.Analytics("999")
	assert.ErrorIs(t, err, util.ErrClassNotFound)
}
