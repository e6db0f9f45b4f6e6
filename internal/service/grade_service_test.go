package service

import (
	"testing"

	"classboard_backend/internal/fixture"
	"classboard_backend/internal/repository/memdb"
	"classboard_backend/internal/util"

	"github.com/stretchr/testify/assert"
)

func TestGradebook(t *testing.T) {
	svc := NewGradeService(memdb.New(fixture.Load()))

	gradebook, err := svc.Gradebook("1")
	assert.NoError(t, err)

	// 材料类条目不计分，数学课剩两列
	assert.Len(t, gradebook.Assignments, 2)
	assert.Len(t, gradebook.Rows, 5)

	byName := map[string]StudentGrades{}
	for _, row := range gradebook.Rows {
		byName[row.Student.Name] = row
	}

	// 唯一一次批改是 95/100，均值就是 95
	john := byName["John Doe"]
	assert.NotNil(t, john.Average)
	assert.Equal(t, 95, *john.Average)
	assert.Equal(t, 95, *john.Grades[0].Grade)
	assert.Nil(t, john.Grades[1].Grade)

	// 交了但没批改的提交不进均值
	jane := byName["Jane Smith"]
	assert.Nil(t, jane.Average)
	assert.Nil(t, jane.Grades[0].Grade)

	mike := byName["Mike Johnson"]
	assert.NotNil(t, mike.Average)
	assert.Equal(t, 88, *mike.Average)

	// 没有任何提交的学生整行为空
	emily := byName["Emily Davis"]
	assert.Nil(t, emily.Average)
	for _, cell := range emily.Grades {
		assert.Nil(t, cell.Grade)
	}
}

func TestGradebookIsDeterministic(t *testing.T) {
	svc := NewGradeService(memdb.New(fixture.Load()))

	first, err := svc.Gradebook("1")
	assert.NoError(t, err)
	second, err := svc.Gradebook("1")
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGradebookUnknownClass(t *testing.T) {
	svc := NewGradeService(memdb.New(fixture.Load()))

	_, err := svc.Gradebook("999")
	assert.ErrorIs(t, err, util.ErrClassNotFound)
}
