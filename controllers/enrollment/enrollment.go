package enrollmentController

import (
	"errors"
	"fjao/database"
	"fjao/middleware"
	"fjao/models"
	courseValidator "fjao/validators/course"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// EnrollCourse creates an enrollment snapshot for a student.
func EnrollCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(models.ObjectID)
	studentID := c.Locals("studentID").(models.ObjectID)

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ?", courseID).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}

	// Prevent duplicate enrollment
	var existing models.Enrollment
	if err := db.Where("course_id = ? AND student_id = ?", courseID, studentID).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Already enrolled!", existing)
	}

	// Copy course chapters into the enrollment, all incomplete
	chapters := make([]models.EnrollmentChapter, len(course.Chapters))
	for i, ch := range course.Chapters {
		chapters[i] = models.EnrollmentChapter{
			Title:       ch.Title,
			Description: ch.Description,
			Video:       ch.Video,
		}
	}

	now := time.Now()
	enrollment := models.Enrollment{
		CourseID:  courseID,
		StudentID: studentID,

		CourseName:        course.Name,
		CourseDescription: course.Description,
		CourseThumbnail:   course.Thumbnail,

		Chapters:            datatypes.NewJSONSlice(chapters),
		TotalChapters:       len(chapters),
		CompletedChapters:   0,
		CurrentChapterIndex: 0,
		StartedAt:           &now,
	}

	tx := db.Begin()
	if err := tx.Create(&enrollment).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enrolled in course successfully!", enrollment)
}

// GetEnrolledCourses lists a student's enrollments, newest first.
func GetEnrolledCourses(c *fiber.Ctx) error {
	studentID := c.Locals("studentID").(models.ObjectID)

	var enrollments []models.Enrollment
	if err := database.Database.Db.
		Where("student_id = ?", studentID).
		Order("created_at desc").
		Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", enrollments)
}

// GetSpecificEnrolledCourseData fetches one enrollment by id.
func GetSpecificEnrolledCourseData(c *fiber.Ctx) error {
	enrollmentID := c.Locals("enrollmentID").(models.ObjectID)

	var enrollment models.Enrollment
	if err := database.Database.Db.Where("id = ?", enrollmentID).First(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment fetched successfully!", enrollment)
}

// UpdateStudentProgress applies a progress action to an enrollment:
// "completeChapter" advances past the current chapter, "setChapter"
// jumps to an explicit index. The record is read, transitioned in
// memory, and written back in one transaction; concurrent updates to
// the same enrollment are last-write-wins.
func UpdateStudentProgress(c *fiber.Ctx) error {
	reqData := c.Locals("validatedProgress").(*courseValidator.ProgressUpdateRequest)

	db := database.Database.Db

	var enrollment models.Enrollment
	if err := db.Where("id = ?", reqData.EnrollmentID).First(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollment!", nil)
	}

	switch reqData.Action {
	case "completeChapter":
		if err := CompleteChapter(&enrollment, time.Now()); err != nil {
			if errors.Is(err, ErrAlreadyComplete) {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "All chapters already completed!", nil)
			}
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
		}

	case "setChapter":
		if reqData.Index == nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid index!", nil)
		}
		if err := SetChapter(&enrollment, *reqData.Index); err != nil {
			if errors.Is(err, ErrInvalidIndex) {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid index!", nil)
			}
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
		}

	default:
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Unknown action!", nil)
	}

	tx := db.Begin()
	if err := tx.Save(&enrollment).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress updated successfully!", enrollment)
}
