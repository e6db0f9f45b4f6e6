package memdb

import (
	"testing"

	"classboard_backend/internal/fixture"
	"classboard_backend/internal/model"
	"classboard_backend/internal/repository"

	"github.com/stretchr/testify/assert"
)

func TestClassLookup(t *testing.T) {
	repos := New(fixture.Load())

	class, err := repos.Classes.FindByID("1")
	assert.NoError(t, err)
	assert.Equal(t, "Mathematics", class.Name)

	_, err = repos.Classes.FindByID("999")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestReadsAreIdempotent(t *testing.T) {
	repos := New(fixture.Load())

	first, err := repos.Assignments.ForClass("1")
	assert.NoError(t, err)
	second, err := repos.Assignments.ForClass("1")
	assert.NoError(t, err)
	assert.Equal(t, first, second)

	classesA, _ := repos.Classes.All()
	classesB, _ := repos.Classes.All()
	assert.Equal(t, classesA, classesB)
}

func TestForClassFiltersAndPreservesOrder(t *testing.T) {
	repos := New(fixture.Load())

	assignments, err := repos.Assignments.ForClass("1")
	assert.NoError(t, err)
	assert.Len(t, assignments, 2)
	assert.Equal(t, "1", assignments[0].ID)
	assert.Equal(t, "2", assignments[1].ID)
	for _, a := range assignments {
		assert.Equal(t, "1", a.ClassID)
	}

	// 没有数据的班返回空切片而不是错误
	none, err := repos.Announcements.ForClass("6")
	assert.NoError(t, err)
	assert.Empty(t, none)
}

func TestSubmissionLookup(t *testing.T) {
	repos := New(fixture.Load())

	submission, err := repos.Submissions.FindByAssignmentAndStudent("1", "1")
	assert.NoError(t, err)
	assert.NotNil(t, submission.Grade)
	assert.Equal(t, 95, *submission.Grade)

	// 交了但没批改
	submission, err = repos.Submissions.FindByAssignmentAndStudent("1", "2")
	assert.NoError(t, err)
	assert.Nil(t, submission.Grade)

	_, err = repos.Submissions.FindByAssignmentAndStudent("1", "5")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestResourceAppend(t *testing.T) {
	repos := New(fixture.Load())

	before, _ := repos.Resources.ForClass("1")
	err := repos.Resources.Append(&model.Resource{ID: "new", ClassID: "1", Title: "Extra Notes", Type: model.ResourcePDF})
	assert.NoError(t, err)

	after, _ := repos.Resources.ForClass("1")
	assert.Len(t, after, len(before)+1)
	assert.Equal(t, "Extra Notes", after[len(after)-1].Title)
}

func TestUserLookup(t *testing.T) {
	repos := New(fixture.Load())

	user, err := repos.Users.FindByEmail("sarah.johnson@school.edu")
	assert.NoError(t, err)
	assert.Equal(t, "teacher", user.Role.RoleName)

	_, err = repos.Users.FindByEmail("nobody@school.edu")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
