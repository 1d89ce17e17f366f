package chapterPointController_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"codecourse/config"
	"codecourse/database"
	"codecourse/middleware"
	"codecourse/models"
	chapterPointRoutes "codecourse/routers/chapterPointRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	config.LoadConfig()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Course{},
		&models.Chapter{},
		&models.ChapterPoint{},
	))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler})
	chapterPointRoutes.SetupChapterPointRoutes(app.Group("/api/v1"))
	return app, db
}

func superuserAuth(t *testing.T, db *gorm.DB) string {
	t.Helper()
	user := &models.User{
		Email:          "admin@example.com",
		HashedPassword: "irrelevant",
		IsActive:       true,
		IsSuperuser:    true,
	}
	require.NoError(t, db.Create(user).Error)

	token, err := middleware.GenerateJWT(user.ID)
	require.NoError(t, err)
	return "Bearer " + token
}

func createChapter(t *testing.T, db *gorm.DB) *models.Chapter {
	t.Helper()
	course := &models.Course{Title: "Algorithms"}
	require.NoError(t, db.Create(course).Error)
	chapter := &models.Chapter{CourseID: course.ID, ChapterNum: 1, Title: "Intro"}
	require.NoError(t, db.Create(chapter).Error)
	return chapter
}

func doRequest(t *testing.T, app *fiber.App, method, path, body, auth string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out))
}

func createPoint(t *testing.T, app *fiber.App, chapterID uuid.UUID, auth, body string) models.ChapterPointPublic {
	t.Helper()
	resp := doRequest(t, app, "POST", "/api/v1/chapterPoints/?chapter_id="+chapterID.String(), body, auth)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var public models.ChapterPointPublic
	decodeBody(t, resp, &public)
	return public
}

func TestCreateChapterPoint(t *testing.T) {
	app, db := setupApp(t)
	auth := superuserAuth(t, db)
	chapter := createChapter(t, db)

	public := createPoint(t, app, chapter.ID, auth,
		`{"chapter_point_num":1,"text":"Welcome to the course"}`)
	assert.Equal(t, chapter.ID, public.ChapterID)
	assert.Equal(t, 1, public.ChapterPointNum)
	require.NotNil(t, public.Text)
	assert.Equal(t, "Welcome to the course", *public.Text)
	assert.Nil(t, public.CodeBlock)
}

func TestCreateChapterPointMissingChapterQuery(t *testing.T) {
	app, db := setupApp(t)
	auth := superuserAuth(t, db)

	resp := doRequest(t, app, "POST", "/api/v1/chapterPoints/",
		`{"chapter_point_num":1,"text":"orphan"}`, auth)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body middleware.AppError
	decodeBody(t, resp, &body)
	assert.Equal(t, "Invalid chapter_id", body.Message)
}

func TestCreateChapterPointUnknownChapter(t *testing.T) {
	app, db := setupApp(t)
	auth := superuserAuth(t, db)

	resp := doRequest(t, app, "POST", "/api/v1/chapterPoints/?chapter_id="+uuid.NewString(),
		`{"chapter_point_num":1,"text":"orphan"}`, auth)
	resp.Body.Close()
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestCreateChapterPointDuplicateNumber(t *testing.T) {
	app, db := setupApp(t)
	auth := superuserAuth(t, db)
	chapter := createChapter(t, db)

	createPoint(t, app, chapter.ID, auth, `{"chapter_point_num":2,"text":"first"}`)

	resp := doRequest(t, app, "POST", "/api/v1/chapterPoints/?chapter_id="+chapter.ID.String(),
		`{"chapter_point_num":2,"text":"second"}`, auth)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	var body middleware.AppError
	decodeBody(t, resp, &body)
	assert.Equal(t, "'Chapter point 2' already exists in the system", body.Message)
}

func TestCreateChapterPointRejectsTwoContentFields(t *testing.T) {
	app, db := setupApp(t)
	auth := superuserAuth(t, db)
	chapter := createChapter(t, db)

	resp := doRequest(t, app, "POST", "/api/v1/chapterPoints/?chapter_id="+chapter.ID.String(),
		`{"chapter_point_num":1,"text":"both","code_block":"const x = 1"}`, auth)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body middleware.AppError
	decodeBody(t, resp, &body)
	assert.Equal(t, "content: Exactly one of text, code_block, image or video must be set!", body.Message)
}

func TestCreateChapterPointRejectsNoContentFields(t *testing.T) {
	app, db := setupApp(t)
	auth := superuserAuth(t, db)
	chapter := createChapter(t, db)

	resp := doRequest(t, app, "POST", "/api/v1/chapterPoints/?chapter_id="+chapter.ID.String(),
		`{"chapter_point_num":1}`, auth)
	resp.Body.Close()
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetChapterPointsPaginated(t *testing.T) {
	app, db := setupApp(t)
	auth := superuserAuth(t, db)
	chapter := createChapter(t, db)

	for num := 1; num <= 3; num++ {
		createPoint(t, app, chapter.ID, auth,
			fmt.Sprintf(`{"chapter_point_num":%d,"text":"point"}`, num))
	}

	resp := doRequest(t, app, "GET", "/api/v1/chapterPoints/?limit=2&include_count=true", "", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body models.ChapterPointsPublic
	decodeBody(t, resp, &body)
	assert.Len(t, body.Data, 2)
	require.NotNil(t, body.Count)
	assert.EqualValues(t, 3, *body.Count)
}

func TestGetChapterPoint(t *testing.T) {
	app, db := setupApp(t)
	auth := superuserAuth(t, db)
	chapter := createChapter(t, db)
	created := createPoint(t, app, chapter.ID, auth,
		`{"chapter_point_num":1,"image":"https://cdn.example.com/diagram.png"}`)

	resp := doRequest(t, app, "GET", "/api/v1/chapterPoints/"+created.ID.String(), "", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var public models.ChapterPointPublic
	decodeBody(t, resp, &public)
	require.NotNil(t, public.Image)
	assert.Equal(t, "https://cdn.example.com/diagram.png", *public.Image)
}

func TestGetChapterPointNotFound(t *testing.T) {
	app, _ := setupApp(t)

	missing := uuid.New()
	resp := doRequest(t, app, "GET", "/api/v1/chapterPoints/"+missing.String(), "", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var body middleware.AppError
	decodeBody(t, resp, &body)
	assert.Equal(t, fmt.Sprintf("Chapter point with id %s not found", missing), body.Message)
}

func TestUpdateChapterPointNumberKeepsContent(t *testing.T) {
	app, db := setupApp(t)
	auth := superuserAuth(t, db)
	chapter := createChapter(t, db)
	created := createPoint(t, app, chapter.ID, auth,
		`{"chapter_point_num":1,"text":"keep me"}`)

	resp := doRequest(t, app, "PATCH", "/api/v1/chapterPoints/"+created.ID.String(),
		`{"chapter_point_num":5}`, auth)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var public models.ChapterPointPublic
	decodeBody(t, resp, &public)
	assert.Equal(t, 5, public.ChapterPointNum)
	require.NotNil(t, public.Text)
	assert.Equal(t, "keep me", *public.Text)
}

func TestUpdateChapterPointReplacesContent(t *testing.T) {
	app, db := setupApp(t)
	auth := superuserAuth(t, db)
	chapter := createChapter(t, db)
	created := createPoint(t, app, chapter.ID, auth,
		`{"chapter_point_num":1,"text":"my old text"}`)

	resp := doRequest(t, app, "PATCH", "/api/v1/chapterPoints/"+created.ID.String(),
		`{"image":"https://cdn.example.com/new.png"}`, auth)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var public models.ChapterPointPublic
	decodeBody(t, resp, &public)
	assert.Nil(t, public.Text)
	require.NotNil(t, public.Image)
	assert.Equal(t, "https://cdn.example.com/new.png", *public.Image)
}

func TestUpdateChapterPointRejectsTwoContentFields(t *testing.T) {
	app, db := setupApp(t)
	auth := superuserAuth(t, db)
	chapter := createChapter(t, db)
	created := createPoint(t, app, chapter.ID, auth,
		`{"chapter_point_num":1,"text":"one"}`)

	resp := doRequest(t, app, "PATCH", "/api/v1/chapterPoints/"+created.ID.String(),
		`{"text":"a","video":"https://cdn.example.com/v.mp4"}`, auth)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body middleware.AppError
	decodeBody(t, resp, &body)
	assert.Equal(t, "content: Only one of text, code_block, image or video may be set!", body.Message)
}

func TestDeleteChapterPoint(t *testing.T) {
	app, db := setupApp(t)
	auth := superuserAuth(t, db)
	chapter := createChapter(t, db)
	created := createPoint(t, app, chapter.ID, auth,
		`{"chapter_point_num":1,"text":"temp"}`)

	resp := doRequest(t, app, "DELETE", "/api/v1/chapterPoints/"+created.ID.String(), "", auth)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body models.Message
	decodeBody(t, resp, &body)
	assert.Equal(t, "👋 Chapter Point deleted successfully", body.Message)

	gone := doRequest(t, app, "GET", "/api/v1/chapterPoints/"+created.ID.String(), "", "")
	gone.Body.Close()
	assert.Equal(t, fiber.StatusNotFound, gone.StatusCode)
}

func TestWriteRoutesRequireSuperuser(t *testing.T) {
	app, db := setupApp(t)
	user := &models.User{Email: "student@example.com", HashedPassword: "x", IsActive: true}
	require.NoError(t, db.Create(user).Error)
	token, err := middleware.GenerateJWT(user.ID)
	require.NoError(t, err)

	resp := doRequest(t, app, "POST", "/api/v1/chapterPoints/?chapter_id="+uuid.NewString(),
		`{"chapter_point_num":1,"text":"nope"}`, "Bearer "+token)
	resp.Body.Close()
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
