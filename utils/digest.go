package utils

import (
	"log"

	"lms/store"

	"github.com/robfig/cron/v3"
)

// StartDigestScheduler logs a daily snapshot of platform counts. Returns the
// running scheduler so the caller can stop it on shutdown.
func StartDigestScheduler(users *store.UserStore, courses *store.CourseStore, enrollments *store.EnrollmentStore) *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc("0 6 * * *", func() {
		userCount, err := users.Count()
		if err != nil {
			log.Printf("Digest: failed to count users: %v", err)
			return
		}
		courseCount, err := courses.Count()
		if err != nil {
			log.Printf("Digest: failed to count courses: %v", err)
			return
		}
		enrollmentCount, err := enrollments.Count()
		if err != nil {
			log.Printf("Digest: failed to count enrollments: %v", err)
			return
		}
		log.Printf("Digest: %d users, %d courses, %d enrollments", userCount, courseCount, enrollmentCount)
	})
	if err != nil {
		log.Printf("Failed to schedule digest job: %v", err)
		return c
	}

	c.Start()
	return c
}
