package http

import (
	"context"
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"halarcraft/internal/domain/models"
	"halarcraft/internal/lib/logger/sl"
	"halarcraft/internal/repository"
	codesvc "halarcraft/internal/services/code_service"
	identitysvc "halarcraft/internal/services/identity_service"
	modsvc "halarcraft/internal/services/moderation_service"
	submissionsvc "halarcraft/internal/services/submission_service"
	"halarcraft/internal/transport/http/dto"
	"halarcraft/internal/transport/http/dto/response"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	_ "halarcraft/docs"
)

type FeedService interface {
	PublicFeed(ctx context.Context, kind models.SubmissionKind, limit int) ([]models.Submission, error)
	FilteredFeed(ctx context.Context, kind models.SubmissionKind, values []string, limit int) ([]models.Submission, error)
	Like(ctx context.Context, id uuid.UUID) (*models.Submission, error)
}

type SubmissionService interface {
	OpenDraft(kind models.SubmissionKind) dto.DraftState
	UpdateDraft(draftID uuid.UUID, fields dto.DraftFields) (dto.DraftState, error)
	Validate(draftID uuid.UUID) error
	AttachAsset(ctx context.Context, draftID uuid.UUID, file *multipart.FileHeader) (dto.DraftState, error)
	Submit(ctx context.Context, draftID uuid.UUID, identity models.Identity) (*models.Submission, error)
	ResetDraft(draftID uuid.UUID)
	Draft(draftID uuid.UUID) (dto.DraftState, error)
}

type ModerationService interface {
	Moderate(ctx context.Context, id uuid.UUID, decision string) (*models.Submission, error)
	ListPending(ctx context.Context, kind models.SubmissionKind, page, perPage int) ([]models.Submission, int, error)
}

type IdentityService interface {
	Resolve(ctx context.Context, accessToken string) (models.Identity, error)
}

type CodeService interface {
	Claim(ctx context.Context, userID, codeID string) (*models.SecretCode, bool, error)
	Progress(ctx context.Context, userID string) ([]string, int, error)
}

type Routers struct {
	log               *slog.Logger
	FeedService       FeedService
	SubmissionService SubmissionService
	ModerationService ModerationService
	IdentityService   IdentityService
	CodeService       CodeService
}

func NewRouter(log *slog.Logger, feed FeedService, submissions SubmissionService, moderation ModerationService, identity IdentityService, codes CodeService) *Routers {
	return &Routers{
		log:               log,
		FeedService:       feed,
		SubmissionService: submissions,
		ModerationService: moderation,
		IdentityService:   identity,
		CodeService:       codes,
	}
}

// Feed godoc
// @Summary Публичная лента работ
// @Description Последние одобренные работы указанного вида. Можно сузить по категориям (showcase) или мирам (gallery).
// @Tags feed
// @Produce json
// @Param kind path string true "Вид работ: showcase или gallery"
// @Param limit query int false "Максимум записей (по умолчанию 50)"
// @Param category query string false "Фильтр категорий через запятую"
// @Param world query string false "Фильтр миров через запятую"
// @Success 200 {object} response.Response{data=[]models.Submission} "Лента"
// @Failure 400 {object} response.ErrorResponse "Неизвестный вид работ"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/v1/feed/{kind} [get]
func (r *Routers) Feed(c echo.Context) error {
	const op = "http.routers.Feed"

	kind, err := models.ParseSubmissionKind(c.Param("kind"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrUnknownSubmissionKind)
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
		}
		limit = parsed
	}

	filters := feedFilters(c, kind)

	var subs []models.Submission
	if len(filters) > 0 {
		subs, err = r.FeedService.FilteredFeed(c.Request().Context(), kind, filters, limit)
	} else {
		subs, err = r.FeedService.PublicFeed(c.Request().Context(), kind, limit)
	}
	if err != nil {
		r.log.Error("failed to load feed", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrorResponseWithDetails("feed_unavailable", "failed to load feed"))
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(subs))
}

// OpenDraft godoc
// @Summary Открыть черновик отправки
// @Description Создаёт пустой черновик работы указанного вида и возвращает его состояние.
// @Tags submissions
// @Produce json
// @Param kind path string true "Вид работ: showcase или gallery"
// @Success 201 {object} response.Response{data=dto.DraftState} "Черновик создан"
// @Failure 400 {object} response.ErrorResponse "Неизвестный вид работ"
// @Router /api/v1/submissions/{kind}/draft [post]
func (r *Routers) OpenDraft(c echo.Context) error {
	kind, err := models.ParseSubmissionKind(c.Param("kind"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrUnknownSubmissionKind)
	}

	state := r.SubmissionService.OpenDraft(kind)

	return c.JSON(http.StatusCreated, response.SuccessResponse(state))
}

// UpdateDraft godoc
// @Summary Обновить поля черновика
// @Description Перезаписывает текстовые поля черновика. Идущая загрузка файла не прерывается.
// @Tags submissions
// @Accept json
// @Produce json
// @Param draft_id path string true "UUID черновика" format(uuid)
// @Param request body dto.DraftFields true "Поля формы"
// @Success 200 {object} response.Response{data=dto.DraftState} "Обновлённый черновик"
// @Failure 400 {object} response.ErrorResponse "Неверный формат запроса"
// @Failure 404 {object} response.ErrorResponse "Черновик не найден"
// @Router /api/v1/submissions/draft/{draft_id} [put]
func (r *Routers) UpdateDraft(c echo.Context) error {
	const op = "http.routers.UpdateDraft"

	draftID, err := uuid.Parse(c.Param("draft_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	var fields dto.DraftFields
	if err := c.Bind(&fields); err != nil {
		r.log.Error("failed to bind request", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	state, err := r.SubmissionService.UpdateDraft(draftID, fields)
	if err != nil {
		return c.JSON(http.StatusNotFound, response.ErrDraftNotFound)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(state))
}

// Draft godoc
// @Summary Текущее состояние черновика
// @Tags submissions
// @Produce json
// @Param draft_id path string true "UUID черновика" format(uuid)
// @Success 200 {object} response.Response{data=dto.DraftState}
// @Failure 404 {object} response.ErrorResponse "Черновик не найден"
// @Router /api/v1/submissions/draft/{draft_id} [get]
func (r *Routers) Draft(c echo.Context) error {
	draftID, err := uuid.Parse(c.Param("draft_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	state, err := r.SubmissionService.Draft(draftID)
	if err != nil {
		return c.JSON(http.StatusNotFound, response.ErrDraftNotFound)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(state))
}

// AttachAsset godoc
// @Summary Загрузить файл к черновику
// @Description Принимает multipart-файл, сохраняет его в хранилище и привязывает URL к черновику. На черновик допускается одна загрузка за раз.
// @Tags submissions
// @Accept mpfd
// @Produce json
// @Param draft_id path string true "UUID черновика" format(uuid)
// @Param file formData file true "Файл изображения"
// @Success 200 {object} response.Response{data=dto.DraftState} "Файл привязан"
// @Failure 400 {object} response.ErrorResponse "Файл не передан"
// @Failure 404 {object} response.ErrorResponse "Черновик не найден"
// @Failure 409 {object} response.ErrorResponse "Загрузка уже идёт"
// @Failure 502 {object} response.ErrorResponse "Хранилище недоступно"
// @Router /api/v1/submissions/draft/{draft_id}/asset [post]
func (r *Routers) AttachAsset(c echo.Context) error {
	const op = "http.routers.AttachAsset"

	draftID, err := uuid.Parse(c.Param("draft_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	file, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("file_required", "multipart field \"file\" is required"))
	}

	state, err := r.SubmissionService.AttachAsset(c.Request().Context(), draftID, file)
	if err != nil {
		var uploadErr *submissionsvc.UploadError

		switch {
		case errors.Is(err, submissionsvc.ErrDraftNotFound):
			return c.JSON(http.StatusNotFound, response.ErrDraftNotFound)
		case errors.Is(err, submissionsvc.ErrUploadInProgress):
			return c.JSON(http.StatusConflict, response.ErrorResponseWithDetails("upload_in_progress", "another upload is running for this draft"))
		case errors.As(err, &uploadErr):
			return c.JSON(http.StatusBadGateway, response.ErrorResponseWithDetails("upload_failed", uploadErr.Reason))
		}

		r.log.Error("failed to attach asset", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrorResponseWithDetails("upload_failed", "internal error"))
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(state))
}

// Submit godoc
// @Summary Отправить черновик на модерацию
// @Description Повторно валидирует черновик и создаёт запись со статусом pending. Требуется сессия Discord.
// @Tags submissions
// @Produce json
// @Param draft_id path string true "UUID черновика" format(uuid)
// @Success 201 {object} response.Response{data=models.Submission} "Работа отправлена"
// @Failure 401 {object} response.ErrorResponse "Требуется вход через Discord"
// @Failure 404 {object} response.ErrorResponse "Черновик не найден"
// @Failure 409 {object} response.ErrorResponse "Загрузка файла ещё идёт"
// @Failure 422 {object} response.ErrorResponse "Черновик не проходит валидацию"
// @Failure 503 {object} response.ErrorResponse "Хранилище записей недоступно"
// @Router /api/v1/submissions/draft/{draft_id} [post]
func (r *Routers) Submit(c echo.Context) error {
	const op = "http.routers.Submit"

	draftID, err := uuid.Parse(c.Param("draft_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	identity := sessionIdentity(c)
	if identity.IsZero() {
		return c.JSON(http.StatusUnauthorized, response.ErrSessionRequired)
	}

	sub, err := r.SubmissionService.Submit(c.Request().Context(), draftID, identity)
	if err != nil {
		var (
			validationErr *models.ValidationError
			submissionErr *submissionsvc.SubmissionError
		)

		switch {
		case errors.Is(err, submissionsvc.ErrDraftNotFound):
			return c.JSON(http.StatusNotFound, response.ErrDraftNotFound)
		case errors.Is(err, submissionsvc.ErrUploadInProgress):
			return c.JSON(http.StatusConflict, response.ErrorResponseWithDetails("upload_in_progress", "wait for the upload to finish before submitting"))
		case errors.Is(err, submissionsvc.ErrIdentityRequired):
			return c.JSON(http.StatusUnauthorized, response.ErrSessionRequired)
		case errors.As(err, &validationErr):
			return c.JSON(http.StatusUnprocessableEntity, response.ValidationErrorResponse(validationErr))
		case errors.As(err, &submissionErr):
			r.log.Error("submission store unavailable", slog.String("op", op), sl.Err(err))
			return c.JSON(http.StatusServiceUnavailable, response.ErrorResponseWithDetails("submission_failed", "try again later, your draft is kept"))
		}

		r.log.Error("failed to submit draft", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrorResponseWithDetails("submission_failed", "internal error"))
	}

	return c.JSON(http.StatusCreated, response.SuccessResponse(sub))
}

// ResetDraft godoc
// @Summary Сбросить черновик
// @Description Удаляет черновик вместе с загруженным, но не отправленным файлом.
// @Tags submissions
// @Produce json
// @Param draft_id path string true "UUID черновика" format(uuid)
// @Success 200 {object} response.Response "Черновик удалён"
// @Router /api/v1/submissions/draft/{draft_id} [delete]
func (r *Routers) ResetDraft(c echo.Context) error {
	draftID, err := uuid.Parse(c.Param("draft_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	r.SubmissionService.ResetDraft(draftID)

	return c.JSON(http.StatusOK, response.Response{Status: "success", Message: "draft reset"})
}

// Like godoc
// @Summary Поставить лайк работе
// @Tags feed
// @Produce json
// @Param id path string true "UUID работы" format(uuid)
// @Success 200 {object} response.Response{data=models.Submission} "Работа с обновлённым счётчиком"
// @Failure 404 {object} response.ErrorResponse "Работа не найдена или не одобрена"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/v1/submissions/{id}/like [post]
func (r *Routers) Like(c echo.Context) error {
	const op = "http.routers.Like"

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	sub, err := r.FeedService.Like(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrSubmissionNotFound) {
			return c.JSON(http.StatusNotFound, response.ErrSubmissionNotFound)
		}

		r.log.Error("failed to like submission", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrorResponseWithDetails("like_failed", "internal error"))
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(sub))
}

// OpenSession godoc
// @Summary Вход через Discord
// @Description Обменивает access token Discord на cookie-сессию сайта.
// @Tags session
// @Accept json
// @Produce json
// @Param request body dto.SessionRequest true "Access token из OAuth-редиректа"
// @Success 200 {object} response.Response{data=models.Identity} "Сессия открыта"
// @Failure 400 {object} response.ErrorResponse "Неверный формат запроса"
// @Failure 401 {object} response.ErrorResponse "Discord не принял токен"
// @Failure 502 {object} response.ErrorResponse "Discord недоступен"
// @Router /api/v1/session [post]
func (r *Routers) OpenSession(c echo.Context) error {
	const op = "http.routers.OpenSession"

	log := r.log.With(slog.String("op", op))

	var req dto.SessionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("invalid session request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	identity, err := r.IdentityService.Resolve(c.Request().Context(), req.AccessToken)
	if err != nil {
		switch {
		case errors.Is(err, identitysvc.ErrTokenRejected):
			return c.JSON(http.StatusUnauthorized, response.ErrorResponseWithDetails("token_rejected", "discord rejected the access token"))
		case errors.Is(err, identitysvc.ErrDiscordUnavailable):
			return c.JSON(http.StatusBadGateway, response.ErrorResponseWithDetails("discord_unavailable", "discord api is unavailable"))
		}

		log.Error("failed to resolve identity", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrorResponseWithDetails("session_failed", "internal error"))
	}

	sess, _ := session.Get("session", c)
	sess.Values["user_id"] = identity.ID
	sess.Values["username"] = identity.Username
	sess.Values["email"] = identity.Email
	sess.Values["avatar"] = identity.Avatar
	sess.Save(c.Request(), c.Response())

	return c.JSON(http.StatusOK, response.SuccessResponse(identity))
}

// CloseSession godoc
// @Summary Выход
// @Description Удаляет cookie-сессию.
// @Tags session
// @Produce json
// @Success 200 {object} response.Response "Сессия закрыта"
// @Router /api/v1/session [delete]
func (r *Routers) CloseSession(c echo.Context) error {
	sess, _ := session.Get("session", c)
	sess.Options.MaxAge = -1
	sess.Save(c.Request(), c.Response())

	return c.JSON(http.StatusOK, response.Response{Status: "success", Message: "session closed"})
}

// CurrentSession godoc
// @Summary Текущий пользователь
// @Tags session
// @Produce json
// @Success 200 {object} response.Response{data=models.Identity}
// @Failure 401 {object} response.ErrorResponse "Сессии нет"
// @Router /api/v1/session [get]
func (r *Routers) CurrentSession(c echo.Context) error {
	identity := sessionIdentity(c)
	if identity.IsZero() {
		return c.JSON(http.StatusUnauthorized, response.ErrSessionRequired)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(identity))
}

// CodeProgress godoc
// @Summary Прогресс по секретным кодам
// @Description Сколько кодов нашёл текущий пользователь и какие именно.
// @Tags codes
// @Produce json
// @Success 200 {object} response.Response{data=dto.CodeProgress}
// @Failure 401 {object} response.ErrorResponse "Требуется вход через Discord"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/v1/codes [get]
func (r *Routers) CodeProgress(c echo.Context) error {
	const op = "http.routers.CodeProgress"

	identity := sessionIdentity(c)
	if identity.IsZero() {
		return c.JSON(http.StatusUnauthorized, response.ErrSessionRequired)
	}

	claimed, total, err := r.CodeService.Progress(c.Request().Context(), identity.ID)
	if err != nil {
		r.log.Error("failed to load code progress", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrorResponseWithDetails("codes_unavailable", "internal error"))
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(dto.CodeProgress{
		Claimed: claimed,
		Total:   total,
	}))
}

// ClaimCode godoc
// @Summary Отметить секретный код найденным
// @Tags codes
// @Produce json
// @Param code_id path string true "Идентификатор кода"
// @Success 200 {object} response.Response{data=dto.ClaimCodeResult}
// @Failure 401 {object} response.ErrorResponse "Требуется вход через Discord"
// @Failure 404 {object} response.ErrorResponse "Неизвестный код"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/v1/codes/{code_id}/claim [post]
func (r *Routers) ClaimCode(c echo.Context) error {
	const op = "http.routers.ClaimCode"

	identity := sessionIdentity(c)
	if identity.IsZero() {
		return c.JSON(http.StatusUnauthorized, response.ErrSessionRequired)
	}

	code, alreadyClaimed, err := r.CodeService.Claim(c.Request().Context(), identity.ID, c.Param("code_id"))
	if err != nil {
		if errors.Is(err, codesvc.ErrUnknownCode) {
			return c.JSON(http.StatusNotFound, response.ErrorResponseWithDetails("unknown_code", "no such secret code"))
		}

		r.log.Error("failed to claim code", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrorResponseWithDetails("claim_failed", "internal error"))
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(dto.ClaimCodeResult{
		Code:           *code,
		AlreadyClaimed: alreadyClaimed,
	}))
}

// PendingSubmissions godoc
// @Summary Очередь модерации
// @Description Работы со статусом pending, новые первыми. Требуется токен модератора.
// @Tags moderation
// @Produce json
// @Param kind query string false "Вид работ: showcase или gallery"
// @Param page query int false "Страница (с 1)"
// @Param per_page query int false "Размер страницы"
// @Success 200 {object} response.Response{data=object{items=[]models.Submission,total=int}}
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Security ApiKeyAuth
// @Router /api/v1/moderation/pending [get]
func (r *Routers) PendingSubmissions(c echo.Context) error {
	const op = "http.routers.PendingSubmissions"

	var kind models.SubmissionKind
	if raw := c.QueryParam("kind"); raw != "" {
		parsed, err := models.ParseSubmissionKind(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, response.ErrUnknownSubmissionKind)
		}
		kind = parsed
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	perPage, _ := strconv.Atoi(c.QueryParam("per_page"))

	subs, total, err := r.ModerationService.ListPending(c.Request().Context(), kind, page, perPage)
	if err != nil {
		r.log.Error("failed to list pending", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrorResponseWithDetails("moderation_unavailable", "internal error"))
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(map[string]interface{}{
		"items": subs,
		"total": total,
	}))
}

// Moderate godoc
// @Summary Решение модератора
// @Description Переводит pending-работу в approved или rejected. Повторное решение по той же работе отклоняется с её текущим статусом.
// @Tags moderation
// @Accept json
// @Produce json
// @Param id path string true "UUID работы" format(uuid)
// @Param request body dto.ModerateRequest true "Решение: approve или reject"
// @Success 200 {object} response.Response{data=models.Submission} "Работа после решения"
// @Failure 400 {object} response.ErrorResponse "Неверный формат запроса"
// @Failure 404 {object} response.ErrorResponse "Работа не найдена"
// @Failure 409 {object} response.ErrorResponse "Работа уже решена"
// @Security ApiKeyAuth
// @Router /api/v1/moderation/{id} [post]
func (r *Routers) Moderate(c echo.Context) error {
	const op = "http.routers.Moderate"

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	var req dto.ModerateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	sub, err := r.ModerationService.Moderate(c.Request().Context(), id, req.Decision)
	if err != nil {
		var transition *models.StatusTransitionError

		switch {
		case errors.Is(err, modsvc.ErrUnknownDecision):
			return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
		case errors.As(err, &transition):
			return c.JSON(http.StatusConflict, response.ErrorResponseWithDetails("already_decided", "submission is already "+string(transition.From)))
		case errors.Is(err, repository.ErrSubmissionNotFound):
			return c.JSON(http.StatusNotFound, response.ErrSubmissionNotFound)
		}

		r.log.Error("failed to moderate submission", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrorResponseWithDetails("moderation_failed", "internal error"))
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(sub))
}

// sessionIdentity достаёт личность пользователя из cookie-сессии
func sessionIdentity(c echo.Context) models.Identity {
	sess, err := session.Get("session", c)
	if err != nil {
		return models.Identity{}
	}

	var identity models.Identity
	if v, ok := sess.Values["user_id"].(string); ok {
		identity.ID = v
	}
	if v, ok := sess.Values["username"].(string); ok {
		identity.Username = v
	}
	if v, ok := sess.Values["email"].(string); ok {
		identity.Email = v
	}
	if v, ok := sess.Values["avatar"].(string); ok {
		identity.Avatar = v
	}

	return identity
}

func feedFilters(c echo.Context, kind models.SubmissionKind) []string {
	param := "category"
	if kind == models.SubmissionKindGallery {
		param = "world"
	}

	raw := c.QueryParam(param)
	if raw == "" {
		return nil
	}

	var filters []string
	for _, value := range strings.Split(raw, ",") {
		if value = strings.TrimSpace(value); value != "" {
			filters = append(filters, value)
		}
	}

	return filters
}
