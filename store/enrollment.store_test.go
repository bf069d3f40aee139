package store_test

import (
	"testing"
	"time"

	"lms/models"
	"lms/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCourse(t *testing.T, courses *store.CourseStore, instructorID uint, title string) *models.Course {
	t.Helper()

	course := &models.Course{Title: title, Description: "About " + title, InstructorID: instructorID}
	require.NoError(t, courses.Create(course))
	return course
}

func TestEnrollmentStoreDuplicatePair(t *testing.T) {
	db := newTestDB(t)
	users := store.NewUserStore(db)
	courses := store.NewCourseStore(db)
	enrollments := store.NewEnrollmentStore(db)

	instructor := seedUser(t, users, "teacher@x.com", models.RoleAdmin)
	student := seedUser(t, users, "student@x.com", models.RoleStudent)
	course := seedCourse(t, courses, instructor.ID, "CS101")

	first := &models.Enrollment{UserID: student.ID, CourseID: course.ID, Status: models.EnrollmentInProgress}
	require.NoError(t, enrollments.Create(first))

	second := &models.Enrollment{UserID: student.ID, CourseID: course.ID, Status: models.EnrollmentInProgress}
	assert.ErrorIs(t, enrollments.Create(second), store.ErrDuplicate)

	// Same student in a different course is fine.
	other := seedCourse(t, courses, instructor.ID, "CS102")
	third := &models.Enrollment{UserID: student.ID, CourseID: other.ID, Status: models.EnrollmentInProgress}
	assert.NoError(t, enrollments.Create(third))
}

func TestEnrollmentStoreFindByUserAndCourse(t *testing.T) {
	db := newTestDB(t)
	users := store.NewUserStore(db)
	courses := store.NewCourseStore(db)
	enrollments := store.NewEnrollmentStore(db)

	instructor := seedUser(t, users, "teacher@x.com", models.RoleAdmin)
	student := seedUser(t, users, "student@x.com", models.RoleStudent)
	course := seedCourse(t, courses, instructor.ID, "CS101")

	_, err := enrollments.FindByUserAndCourse(student.ID, course.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	created := &models.Enrollment{UserID: student.ID, CourseID: course.ID, Status: models.EnrollmentInProgress}
	require.NoError(t, enrollments.Create(created))

	found, err := enrollments.FindByUserAndCourse(student.ID, course.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
}

func TestEnrollmentStoreSetStatus(t *testing.T) {
	db := newTestDB(t)
	users := store.NewUserStore(db)
	courses := store.NewCourseStore(db)
	enrollments := store.NewEnrollmentStore(db)

	instructor := seedUser(t, users, "teacher@x.com", models.RoleAdmin)
	student := seedUser(t, users, "student@x.com", models.RoleStudent)
	course := seedCourse(t, courses, instructor.ID, "CS101")

	enrollment := &models.Enrollment{UserID: student.ID, CourseID: course.ID, Status: models.EnrollmentInProgress}
	require.NoError(t, enrollments.Create(enrollment))
	require.Nil(t, enrollment.CompletedAt)

	require.NoError(t, enrollments.SetStatus(enrollment, models.EnrollmentCompleted))

	stored, err := enrollments.FindByID(enrollment.ID)
	require.NoError(t, err)
	assert.Equal(t, models.EnrollmentCompleted, stored.Status)
	require.NotNil(t, stored.CompletedAt)

	require.NoError(t, enrollments.SetStatus(stored, models.EnrollmentInProgress))

	reverted, err := enrollments.FindByID(enrollment.ID)
	require.NoError(t, err)
	assert.Equal(t, models.EnrollmentInProgress, reverted.Status)
	assert.Nil(t, reverted.CompletedAt)
}

func TestEnrollmentStoreListByUserJoinsCourse(t *testing.T) {
	db := newTestDB(t)
	users := store.NewUserStore(db)
	courses := store.NewCourseStore(db)
	enrollments := store.NewEnrollmentStore(db)

	instructor := seedUser(t, users, "teacher@x.com", models.RoleAdmin)
	student := seedUser(t, users, "student@x.com", models.RoleStudent)

	older := seedCourse(t, courses, instructor.ID, "Older")
	newer := seedCourse(t, courses, instructor.ID, "Newer")

	require.NoError(t, enrollments.Create(&models.Enrollment{
		UserID: student.ID, CourseID: older.ID,
		Status: models.EnrollmentInProgress, EnrolledAt: time.Now().Add(-time.Hour),
	}))
	require.NoError(t, enrollments.Create(&models.Enrollment{
		UserID: student.ID, CourseID: newer.ID,
		Status: models.EnrollmentInProgress, EnrolledAt: time.Now(),
	}))

	list, err := enrollments.ListByUser(student.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)

	// Most recently enrolled first, with course fields attached.
	assert.Equal(t, "Newer", list[0].CourseTitle)
	assert.Equal(t, "About Newer", list[0].CourseDescription)
	assert.Equal(t, "Older", list[1].CourseTitle)
}

func TestEnrollmentStoreListByCourseJoinsStudent(t *testing.T) {
	db := newTestDB(t)
	users := store.NewUserStore(db)
	courses := store.NewCourseStore(db)
	enrollments := store.NewEnrollmentStore(db)

	instructor := seedUser(t, users, "teacher@x.com", models.RoleAdmin)
	student := seedUser(t, users, "student@x.com", models.RoleStudent)
	course := seedCourse(t, courses, instructor.ID, "CS101")

	require.NoError(t, enrollments.Create(&models.Enrollment{
		UserID: student.ID, CourseID: course.ID, Status: models.EnrollmentInProgress,
	}))

	roster, err := enrollments.ListByCourse(course.ID)
	require.NoError(t, err)
	require.Len(t, roster, 1)
	assert.Equal(t, student.ID, roster[0].UserID)
	assert.Equal(t, "Test User", roster[0].Name)
	assert.Equal(t, "student@x.com", roster[0].Email)
}

func TestEnrollmentStoreDelete(t *testing.T) {
	db := newTestDB(t)
	users := store.NewUserStore(db)
	courses := store.NewCourseStore(db)
	enrollments := store.NewEnrollmentStore(db)

	instructor := seedUser(t, users, "teacher@x.com", models.RoleAdmin)
	student := seedUser(t, users, "student@x.com", models.RoleStudent)
	course := seedCourse(t, courses, instructor.ID, "CS101")

	enrollment := &models.Enrollment{UserID: student.ID, CourseID: course.ID, Status: models.EnrollmentInProgress}
	require.NoError(t, enrollments.Create(enrollment))

	require.NoError(t, enrollments.Delete(enrollment.ID))
	_, err := enrollments.FindByID(enrollment.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	// Re-enrollment after unenroll is allowed.
	again := &models.Enrollment{UserID: student.ID, CourseID: course.ID, Status: models.EnrollmentInProgress}
	assert.NoError(t, enrollments.Create(again))
}
