package enrollmentController

import (
	"errors"
	"log"

	"lms/middleware"
	"lms/models"
	"lms/policy"
	"lms/store"
	enrollmentValidator "lms/validators/enrollment"

	"github.com/gofiber/fiber/v2"
)

// Controller handles the enrollment lifecycle.
type Controller struct {
	enrollments *store.EnrollmentStore
	courses     *store.CourseStore
}

func New(enrollments *store.EnrollmentStore, courses *store.CourseStore) *Controller {
	return &Controller{enrollments: enrollments, courses: courses}
}

func (ctl *Controller) Enroll(c *fiber.Ctx) error {
	actor := middleware.Actor(c)

	reqData, ok := c.Locals("enrollRequest").(*enrollmentValidator.EnrollRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data")
	}

	if _, err := ctl.courses.FindByID(reqData.CourseID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "Course not found")
		}
		log.Printf("Error fetching course: %v", err)
		return middleware.InternalErrorResponse(c)
	}

	if _, err := ctl.enrollments.FindByUserAndCourse(actor.ID, reqData.CourseID); err == nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Already enrolled in this course")
	} else if !errors.Is(err, store.ErrNotFound) {
		log.Printf("Error looking up enrollment: %v", err)
		return middleware.InternalErrorResponse(c)
	}

	enrollment := &models.Enrollment{
		UserID:   actor.ID,
		CourseID: reqData.CourseID,
		Status:   models.EnrollmentInProgress,
	}

	if err := ctl.enrollments.Create(enrollment); err != nil {
		// The unique index closes the check-then-insert race.
		if errors.Is(err, store.ErrDuplicate) {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Already enrolled in this course")
		}
		if errors.Is(err, store.ErrInvalidReference) {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid reference")
		}
		log.Printf("Error creating enrollment: %v", err)
		return middleware.InternalErrorResponse(c)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    "Enrolled successfully",
		"enrollment": enrollment,
	})
}

// MyEnrollments lists the actor's enrollments with course title and
// description attached.
func (ctl *Controller) MyEnrollments(c *fiber.Ctx) error {
	actor := middleware.Actor(c)

	enrollments, err := ctl.enrollments.ListByUser(actor.ID)
	if err != nil {
		log.Printf("Error fetching enrollments: %v", err)
		return middleware.InternalErrorResponse(c)
	}

	return c.JSON(enrollments)
}

// CourseRoster lists a course's enrollments with student name and email.
// Restricted to the course instructor or an admin.
func (ctl *Controller) CourseRoster(c *fiber.Ctx) error {
	actor := middleware.Actor(c)
	courseID := c.Locals("courseID").(uint)

	course, err := ctl.courses.FindByID(courseID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "Course not found")
		}
		log.Printf("Error fetching course: %v", err)
		return middleware.InternalErrorResponse(c)
	}

	if !policy.CanMutate(actor, course.InstructorID) {
		return middleware.ErrorResponse(c, fiber.StatusForbidden, "Only course instructor or admin can view enrollments")
	}

	roster, err := ctl.enrollments.ListByCourse(course.ID)
	if err != nil {
		log.Printf("Error fetching enrollments: %v", err)
		return middleware.InternalErrorResponse(c)
	}

	return c.JSON(roster)
}

// UpdateStatus moves an enrollment between in_progress and completed. The
// governing owner is the course's instructor, not the enrolled student: this
// is an instructor marking a student's progress.
func (ctl *Controller) UpdateStatus(c *fiber.Ctx) error {
	actor := middleware.Actor(c)
	enrollmentID := c.Locals("enrollmentID").(uint)

	reqData, ok := c.Locals("statusRequest").(*enrollmentValidator.StatusRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data")
	}

	enrollment, err := ctl.enrollments.FindByID(enrollmentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "Enrollment not found")
		}
		log.Printf("Error fetching enrollment: %v", err)
		return middleware.InternalErrorResponse(c)
	}

	course, err := ctl.courses.FindByID(enrollment.CourseID)
	if err != nil {
		log.Printf("Error fetching course: %v", err)
		return middleware.InternalErrorResponse(c)
	}

	if !policy.CanMutate(actor, course.InstructorID) {
		return middleware.ErrorResponse(c, fiber.StatusForbidden, "Only course instructor or admin can update enrollment")
	}

	if err := ctl.enrollments.SetStatus(enrollment, reqData.Status); err != nil {
		log.Printf("Error updating enrollment: %v", err)
		return middleware.InternalErrorResponse(c)
	}

	return c.JSON(fiber.Map{
		"message":    "Enrollment status updated",
		"enrollment": enrollment,
	})
}

// Unenroll removes an enrollment. The governing owner is the enrolled
// student: membership is self-managed.
func (ctl *Controller) Unenroll(c *fiber.Ctx) error {
	actor := middleware.Actor(c)
	enrollmentID := c.Locals("enrollmentID").(uint)

	enrollment, err := ctl.enrollments.FindByID(enrollmentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "Enrollment not found")
		}
		log.Printf("Error fetching enrollment: %v", err)
		return middleware.InternalErrorResponse(c)
	}

	if !policy.CanMutate(actor, enrollment.UserID) {
		return middleware.ErrorResponse(c, fiber.StatusForbidden, "Can only unenroll from your own courses")
	}

	if err := ctl.enrollments.Delete(enrollment.ID); err != nil {
		log.Printf("Error deleting enrollment: %v", err)
		return middleware.InternalErrorResponse(c)
	}

	return c.JSON(fiber.Map{"message": "Unenrolled successfully"})
}
