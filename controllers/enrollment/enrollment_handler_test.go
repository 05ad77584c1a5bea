package enrollmentController_test

import (
	"bytes"
	"encoding/json"
	"fjao/config"
	"fjao/database"
	"fjao/models"
	courseRoutes "fjao/routers/courseRoutes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type envelope struct {
	OK      bool            `json:"ok"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{
		JWTKey:      "test-secret",
		JWTExpire:   1,
		SaltRound:   4,
		PassPercent: 50,
	}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// one connection keeps every query on the same in-memory database
	sqlDB.SetMaxOpenConns(1)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	courseRoutes.SetupCourseRoutes(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (*http.Response, envelope) {
	t.Helper()

	var reqBody bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&reqBody).Encode(body))
	}

	req := httptest.NewRequest(method, path, &reqBody)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp, env
}

func seedCourse(t *testing.T, chapterCount int) models.Course {
	t.Helper()

	chapters := make([]models.Chapter, chapterCount)
	for i := range chapters {
		chapters[i] = models.Chapter{Title: fmt.Sprintf("Chapter %d", i+1)}
	}
	course := models.Course{
		Name:        "Go Basics",
		Description: "An introductory course",
		Thumbnail:   "https://cdn.example.com/go.png",
		Chapters:    datatypes.NewJSONSlice(chapters),
	}
	require.NoError(t, database.Database.Db.Create(&course).Error)
	return course
}

func TestEnrollCourse_CreatesSnapshot(t *testing.T) {
	app := setupApp(t)
	course := seedCourse(t, 3)
	studentID := models.NewObjectID()

	resp, env := doJSON(t, app, fiber.MethodPost, "/enrollCourse", fiber.Map{
		"courseId":  course.ID,
		"studentId": studentID,
	})

	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.True(t, env.OK)

	var enrollment models.Enrollment
	require.NoError(t, json.Unmarshal(env.Data, &enrollment))
	assert.Equal(t, course.ID, enrollment.CourseID)
	assert.Equal(t, studentID, enrollment.StudentID)
	assert.Equal(t, "Go Basics", enrollment.CourseName)
	assert.Equal(t, 3, enrollment.TotalChapters)
	assert.Equal(t, 0, enrollment.CompletedChapters)
	assert.Equal(t, 0, enrollment.CurrentChapterIndex)
	assert.NotNil(t, enrollment.StartedAt)
	assert.Nil(t, enrollment.CompletedAt)
	require.Len(t, enrollment.Chapters, 3)
	assert.False(t, enrollment.Chapters[0].Completed)
}

func TestEnrollCourse_RejectsDuplicate(t *testing.T) {
	app := setupApp(t)
	course := seedCourse(t, 2)
	studentID := models.NewObjectID()

	body := fiber.Map{"courseId": course.ID, "studentId": studentID}

	resp, _ := doJSON(t, app, fiber.MethodPost, "/enrollCourse", body)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, env := doJSON(t, app, fiber.MethodPost, "/enrollCourse", body)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.False(t, env.OK)
}

func TestEnrollCourse_CourseMissing(t *testing.T) {
	app := setupApp(t)

	resp, env := doJSON(t, app, fiber.MethodPost, "/enrollCourse", fiber.Map{
		"courseId":  models.NewObjectID(),
		"studentId": models.NewObjectID(),
	})

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.False(t, env.OK)
}

func TestEnrollCourse_InvalidIDs(t *testing.T) {
	app := setupApp(t)

	resp, env := doJSON(t, app, fiber.MethodPost, "/enrollCourse", fiber.Map{
		"courseId":  "not-an-id",
		"studentId": "also-not-an-id",
	})

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.False(t, env.OK)
}

func TestUpdateStudentProgress_EndToEnd(t *testing.T) {
	app := setupApp(t)
	course := seedCourse(t, 2)
	studentID := models.NewObjectID()

	_, env := doJSON(t, app, fiber.MethodPost, "/enrollCourse", fiber.Map{
		"courseId":  course.ID,
		"studentId": studentID,
	})
	var enrollment models.Enrollment
	require.NoError(t, json.Unmarshal(env.Data, &enrollment))

	progress := func(body fiber.Map) (*http.Response, models.Enrollment) {
		resp, env := doJSON(t, app, fiber.MethodPut, "/updateStudentProgress", body)
		var updated models.Enrollment
		if env.OK {
			require.NoError(t, json.Unmarshal(env.Data, &updated))
		}
		return resp, updated
	}

	// first chapter
	resp, updated := progress(fiber.Map{"enrollmentId": enrollment.ID, "action": "completeChapter"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, updated.CurrentChapterIndex)
	assert.Equal(t, 1, updated.CompletedChapters)
	assert.Nil(t, updated.CompletedAt)

	// jump back, then forward again
	resp, updated = progress(fiber.Map{"enrollmentId": enrollment.ID, "action": "setChapter", "index": 0})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 0, updated.CurrentChapterIndex)
	assert.Equal(t, 1, updated.CompletedChapters)

	resp, _ = progress(fiber.Map{"enrollmentId": enrollment.ID, "action": "setChapter", "index": 2})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, updated = progress(fiber.Map{"enrollmentId": enrollment.ID, "action": "setChapter", "index": 1})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// finish the course
	resp, updated = progress(fiber.Map{"enrollmentId": enrollment.ID, "action": "completeChapter"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 2, updated.CurrentChapterIndex)
	assert.Equal(t, 2, updated.CompletedChapters)
	assert.NotNil(t, updated.CompletedAt)

	// no chapters left
	resp, _ = progress(fiber.Map{"enrollmentId": enrollment.ID, "action": "completeChapter"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// unknown action
	resp, _ = progress(fiber.Map{"enrollmentId": enrollment.ID, "action": "resetCourse"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// unknown enrollment
	resp, _ = progress(fiber.Map{"enrollmentId": models.NewObjectID(), "action": "completeChapter"})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestGetEnrolledCourses(t *testing.T) {
	app := setupApp(t)
	course := seedCourse(t, 1)
	studentID := models.NewObjectID()

	_, _ = doJSON(t, app, fiber.MethodPost, "/enrollCourse", fiber.Map{
		"courseId":  course.ID,
		"studentId": studentID,
	})

	resp, env := doJSON(t, app, fiber.MethodGet, "/getEnrolledCourses?studentId="+studentID.String(), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var enrollments []models.Enrollment
	require.NoError(t, json.Unmarshal(env.Data, &enrollments))
	require.Len(t, enrollments, 1)
	assert.Equal(t, studentID, enrollments[0].StudentID)

	// empty list for a student with no enrollments
	resp, env = doJSON(t, app, fiber.MethodGet, "/getEnrolledCourses?studentId="+models.NewObjectID().String(), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(env.Data, &enrollments))
	assert.Len(t, enrollments, 0)
}
