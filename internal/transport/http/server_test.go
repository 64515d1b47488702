package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"halarcraft/internal/domain/models"
	"halarcraft/internal/repository"
	codesvc "halarcraft/internal/services/code_service"
	feedsvc "halarcraft/internal/services/feed_service"
	identitysvc "halarcraft/internal/services/identity_service"
	modsvc "halarcraft/internal/services/moderation_service"
	submissionsvc "halarcraft/internal/services/submission_service"
	redisapp "halarcraft/internal/storage/redis"
	httprouters "halarcraft/internal/transport/http"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redismock/v9"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testValidator struct {
	validate *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// stubAssetStore — хранилище в памяти для тестов хендлеров
type stubAssetStore struct {
	mu      sync.Mutex
	counter int
	deleted []string
}

func (s *stubAssetStore) Save(ctx context.Context, file *multipart.FileHeader, subPath string) (string, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.counter++
	return fmt.Sprintf("http://test.local/uploads/%s/file-%d.png", subPath, s.counter), file.Size, nil
}

func (s *stubAssetStore) Delete(ctx context.Context, assetURL string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.deleted = append(s.deleted, assetURL)
	return nil
}

func (s *stubAssetStore) BaseURL() string {
	return "http://test.local/uploads"
}

type testEnv struct {
	echo *echo.Echo
	repo *repository.MemorySubmissionRepo
	mod  *modsvc.ModerationService
}

func newTestEnv(t *testing.T, discordURL string) *testEnv {
	t.Helper()

	log := slog.Default()
	repo := repository.NewMemorySubmissionRepository()

	feedService := feedsvc.NewFeedService(log, repo, time.Hour)
	submissionService := submissionsvc.NewSubmissionService(log, repo, &stubAssetStore{}, feedService, time.Hour)
	moderationService := modsvc.NewModerationService(log, repo, feedService)
	identityService := identitysvc.NewIdentityService(log, discordURL, 5*time.Second)

	db, mock := redismock.NewClientMock()
	mock.Regexp().ExpectSAdd(`codes:.*`, `.*`).SetVal(1)
	codeService := codesvc.NewCodeService(log, repository.NewRedisCodeRepo(redisapp.FromRedis(db)))

	routers := httprouters.NewRouter(log, feedService, submissionService, moderationService, identityService, codeService)

	e := echo.New()
	e.Validator = &testValidator{validate: validator.New()}
	e.Use(session.Middleware(sessions.NewCookieStore([]byte("test"))))

	api := e.Group("/api/v1")
	api.GET("/feed/:kind", routers.Feed)
	api.POST("/submissions/:kind/draft", routers.OpenDraft)
	api.GET("/submissions/draft/:draft_id", routers.Draft)
	api.PUT("/submissions/draft/:draft_id", routers.UpdateDraft)
	api.POST("/submissions/draft/:draft_id", routers.Submit)
	api.DELETE("/submissions/draft/:draft_id", routers.ResetDraft)
	api.POST("/submissions/draft/:draft_id/asset", routers.AttachAsset)
	api.POST("/submissions/:id/like", routers.Like)
	api.GET("/session", routers.CurrentSession)
	api.POST("/session", routers.OpenSession)
	api.DELETE("/session", routers.CloseSession)
	api.GET("/codes", routers.CodeProgress)
	api.POST("/codes/:code_id/claim", routers.ClaimCode)
	api.GET("/moderation/pending", routers.PendingSubmissions)
	api.POST("/moderation/:id", routers.Moderate)

	return &testEnv{echo: e, repo: repo, mod: moderationService}
}

func discordStub(t *testing.T) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer good-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{
			"id":       "discord-1",
			"username": "steve",
		})
	}))
	t.Cleanup(srv.Close)

	return srv
}

func (env *testEnv) do(req *http.Request, cookies []*http.Cookie) *httptest.ResponseRecorder {
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	env.echo.ServeHTTP(rec, req)
	return rec
}

func (env *testEnv) login(t *testing.T) []*http.Cookie {
	t.Helper()

	body := bytes.NewBufferString(`{"access_token":"good-token"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/session", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := env.do(req, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	return rec.Result().Cookies()
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()

	var envelope struct {
		Status string          `json:"status"`
		Data   json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	// Пустая выдача сериализуется без поля data
	if len(envelope.Data) == 0 {
		return
	}
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

func TestRouters_SubmissionFlow(t *testing.T) {
	env := newTestEnv(t, discordStub(t).URL)
	cookies := env.login(t)

	// Открываем черновик
	rec := env.do(httptest.NewRequest(http.MethodPost, "/api/v1/submissions/showcase/draft", nil), nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var draft struct {
		DraftID string `json:"draft_id"`
	}
	decodeData(t, rec, &draft)
	require.NotEmpty(t, draft.DraftID)

	// Заполняем поля
	body := bytes.NewBufferString(`{"title":"Замок","description":"Строили месяц","category":"construccion"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/v1/submissions/draft/"+draft.DraftID, body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = env.do(req, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// Загружаем файл
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "castle.png")
	require.NoError(t, err)
	part.Write([]byte("png-bytes"))
	require.NoError(t, writer.Close())

	req = httptest.NewRequest(http.MethodPost, "/api/v1/submissions/draft/"+draft.DraftID+"/asset", &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec = env.do(req, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// Отправляем на модерацию
	req = httptest.NewRequest(http.MethodPost, "/api/v1/submissions/draft/"+draft.DraftID, nil)
	rec = env.do(req, cookies)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Submission
	decodeData(t, rec, &created)
	assert.Equal(t, models.StatusPending, created.Status)
	assert.Equal(t, "discord-1", created.AuthorID)

	// До решения модератора лента пуста
	rec = env.do(httptest.NewRequest(http.MethodGet, "/api/v1/feed/showcase", nil), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var feed []models.Submission
	decodeData(t, rec, &feed)
	assert.Empty(t, feed)

	// Одобряем
	body = bytes.NewBufferString(`{"decision":"approve"}`)
	req = httptest.NewRequest(http.MethodPost, "/api/v1/moderation/"+created.ID.String(), body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = env.do(req, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// Теперь работа видна
	rec = env.do(httptest.NewRequest(http.MethodGet, "/api/v1/feed/showcase", nil), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	decodeData(t, rec, &feed)
	require.Len(t, feed, 1)
	assert.Equal(t, created.ID, feed[0].ID)
}

func TestRouters_SubmitWithoutSession(t *testing.T) {
	env := newTestEnv(t, discordStub(t).URL)

	rec := env.do(httptest.NewRequest(http.MethodPost, "/api/v1/submissions/gallery/draft", nil), nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var draft struct {
		DraftID string `json:"draft_id"`
	}
	decodeData(t, rec, &draft)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/submissions/draft/"+draft.DraftID, nil)
	rec = env.do(req, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouters_SubmitInvalidDraft(t *testing.T) {
	env := newTestEnv(t, discordStub(t).URL)
	cookies := env.login(t)

	rec := env.do(httptest.NewRequest(http.MethodPost, "/api/v1/submissions/showcase/draft", nil), nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var draft struct {
		DraftID string `json:"draft_id"`
	}
	decodeData(t, rec, &draft)

	// Пустой showcase: нет файла, названия и описания
	req := httptest.NewRequest(http.MethodPost, "/api/v1/submissions/draft/"+draft.DraftID, nil)
	rec = env.do(req, cookies)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var errResp struct {
		Error  string                  `json:"error"`
		Fields []models.FieldViolation `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))

	assert.Equal(t, "validation_failed", errResp.Error)
	assert.Len(t, errResp.Fields, 3)
}

func TestRouters_UnknownKind(t *testing.T) {
	env := newTestEnv(t, discordStub(t).URL)

	rec := env.do(httptest.NewRequest(http.MethodPost, "/api/v1/submissions/blog/draft", nil), nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(httptest.NewRequest(http.MethodGet, "/api/v1/feed/blog", nil), nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouters_ModerateTwice(t *testing.T) {
	env := newTestEnv(t, discordStub(t).URL)

	created, err := env.repo.CreateSubmission(context.Background(), &models.Submission{
		Kind:        models.SubmissionKindShowcase,
		AuthorID:    "discord-1",
		AuthorName:  "steve",
		AssetURL:    "http://test.local/uploads/img.png",
		Title:       "Замок",
		Description: "Описание",
		Category:    "construccion",
	})
	require.NoError(t, err)

	body := bytes.NewBufferString(`{"decision":"approve"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/moderation/"+created.ID.String(), body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := env.do(req, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body = bytes.NewBufferString(`{"decision":"reject"}`)
	req = httptest.NewRequest(http.MethodPost, "/api/v1/moderation/"+created.ID.String(), body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = env.do(req, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRouters_LikePendingSubmission(t *testing.T) {
	env := newTestEnv(t, discordStub(t).URL)

	created, err := env.repo.CreateSubmission(context.Background(), &models.Submission{
		Kind:     models.SubmissionKindGallery,
		AuthorID: "discord-1",
		AssetURL: "http://test.local/uploads/img.png",
		World:    "survival",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/submissions/"+created.ID.String()+"/like", nil)
	rec := env.do(req, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouters_SessionLifecycle(t *testing.T) {
	env := newTestEnv(t, discordStub(t).URL)

	t.Run("rejected token", func(t *testing.T) {
		body := bytes.NewBufferString(`{"access_token":"bad-token"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/session", body)
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

		rec := env.do(req, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("missing token fails validation", func(t *testing.T) {
		body := bytes.NewBufferString(`{}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/session", body)
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

		rec := env.do(req, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("login, whoami, logout", func(t *testing.T) {
		cookies := env.login(t)

		rec := env.do(httptest.NewRequest(http.MethodGet, "/api/v1/session", nil), cookies)
		require.Equal(t, http.StatusOK, rec.Code)

		var identity models.Identity
		decodeData(t, rec, &identity)
		assert.Equal(t, "steve", identity.Username)

		rec = env.do(httptest.NewRequest(http.MethodDelete, "/api/v1/session", nil), cookies)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("whoami without session", func(t *testing.T) {
		rec := env.do(httptest.NewRequest(http.MethodGet, "/api/v1/session", nil), nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRouters_ClaimCodeRequiresSession(t *testing.T) {
	env := newTestEnv(t, discordStub(t).URL)

	rec := env.do(httptest.NewRequest(http.MethodPost, "/api/v1/codes/lunarjuan/claim", nil), nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	cookies := env.login(t)

	rec = env.do(httptest.NewRequest(http.MethodPost, "/api/v1/codes/lunarjuan/claim", nil), cookies)
	require.Equal(t, http.StatusOK, rec.Code)

	var result struct {
		Code           models.SecretCode `json:"code"`
		AlreadyClaimed bool              `json:"already_claimed"`
	}
	decodeData(t, rec, &result)

	assert.Equal(t, "lunarjuan", result.Code.ID)
	assert.False(t, result.AlreadyClaimed)
}
