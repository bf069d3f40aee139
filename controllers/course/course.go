package courseController

import (
	"errors"
	"log"
	"strings"

	"lms/middleware"
	"lms/models"
	"lms/policy"
	"lms/store"
	courseValidator "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// Controller handles the course lifecycle.
type Controller struct {
	courses *store.CourseStore
}

func New(courses *store.CourseStore) *Controller {
	return &Controller{courses: courses}
}

func (ctl *Controller) Create(c *fiber.Ctx) error {
	actor := middleware.Actor(c)

	reqData, ok := c.Locals("createCourseRequest").(*courseValidator.CreateCourseRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data")
	}

	course := &models.Course{
		Title:        reqData.Title,
		Description:  reqData.Description,
		InstructorID: actor.ID,
	}

	if err := ctl.courses.Create(course); err != nil {
		log.Printf("Error creating course: %v", err)
		return middleware.InternalErrorResponse(c)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Course created successfully",
		"course":  course,
	})
}

func (ctl *Controller) List(c *fiber.Ctx) error {
	courses, err := ctl.courses.List()
	if err != nil {
		log.Printf("Error fetching courses: %v", err)
		return middleware.InternalErrorResponse(c)
	}

	return c.JSON(courses)
}

func (ctl *Controller) Get(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	course, err := ctl.courses.FindByID(courseID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "Course not found")
		}
		log.Printf("Error fetching course: %v", err)
		return middleware.InternalErrorResponse(c)
	}

	return c.JSON(course)
}

func (ctl *Controller) Update(c *fiber.Ctx) error {
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
		return middleware.ErrorResponse(c, fiber.StatusForbidden, "Only course instructor or admin can update")
	}

	reqData, ok := c.Locals("updateCourseRequest").(*courseValidator.UpdateCourseRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data")
	}

	// Partial update: absent fields keep their value. An explicit empty
	// description clears the field, which is why it travels as a pointer.
	if strings.TrimSpace(reqData.Title) != "" {
		course.Title = reqData.Title
	}
	if reqData.Description != nil {
		course.Description = *reqData.Description
	}

	if err := ctl.courses.Update(course); err != nil {
		log.Printf("Error updating course: %v", err)
		return middleware.InternalErrorResponse(c)
	}

	return c.JSON(fiber.Map{
		"message": "Course updated successfully",
		"course":  course,
	})
}

func (ctl *Controller) Delete(c *fiber.Ctx) error {
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
		return middleware.ErrorResponse(c, fiber.StatusForbidden, "Only course instructor or admin can delete")
	}

	if err := ctl.courses.Delete(course.ID); err != nil {
		log.Printf("Error deleting course: %v", err)
		return middleware.InternalErrorResponse(c)
	}

	return c.JSON(fiber.Map{"message": "Course deleted successfully"})
}

// MyCourses lists the courses owned by the acting instructor.
func (ctl *Controller) MyCourses(c *fiber.Ctx) error {
	actor := middleware.Actor(c)

	courses, err := ctl.courses.ListByInstructor(actor.ID)
	if err != nil {
		log.Printf("Error fetching courses: %v", err)
		return middleware.InternalErrorResponse(c)
	}

	return c.JSON(courses)
}
