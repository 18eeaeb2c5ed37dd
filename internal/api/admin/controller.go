package admin

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/learntoride/ltr/internal/api/tricks"
	"github.com/learntoride/ltr/internal/api/util"
	"github.com/learntoride/ltr/internal/storage"
	"github.com/learntoride/ltr/internal/trick"
	"github.com/learntoride/ltr/pkg/logger"
)

var log = logger.Get("AdminAPI")

type (
	// Store is the mutating view of the library. The gallery-facing read
	// methods are embedded so delete cleanup can inspect the trick it is
	// about to remove.
	Store interface {
		tricks.Store
		CreateTrick(t *trick.Trick) error
		UpdateTrickDetails(trickId uuid.UUID, title string, notes *string, tags trick.Tags) (*trick.Trick, error)
		DeleteTrick(trickId uuid.UUID) error
	}

	// ObjectStorage is the slice of the media bucket the admin surface
	// uses: storing a freshly uploaded file and best-effort removal of a
	// deleted trick's object.
	ObjectStorage interface {
		Upload(ctx context.Context, name string, contentType string, body io.Reader) (string, error)
		Remove(ctx context.Context, name string) error
	}

	// ThumbnailResolver derives a preview image URL for an external
	// provider link at creation time.
	ThumbnailResolver interface {
		Resolve(ctx context.Context, externalUrl string) (string, error)
	}

	// Broadcaster pushes a change notification to connected gallery
	// clients after a mutation lands.
	Broadcaster interface {
		BroadcastTrickUpdate(trickId uuid.UUID) error
	}

	createRequest struct {
		Title       string   `json:"title" validate:"required"`
		URL         string   `json:"url"`
		ExternalURL string   `json:"external_url"`
		Tags        []string `json:"tags"`
		CustomTags  []string `json:"custom_tags"`
		Notes       string   `json:"notes"`
	}

	updateRequest struct {
		Title      string   `json:"title" validate:"required"`
		Tags       []string `json:"tags"`
		CustomTags []string `json:"custom_tags"`
		Notes      string   `json:"notes"`
	}

	uploadResponse struct {
		URL  string `json:"url"`
		Name string `json:"name"`
	}

	Controller struct {
		store       Store
		storage     ObjectStorage
		thumbnails  ThumbnailResolver
		broadcaster Broadcaster
		validate    *validator.Validate
	}
)

func New(store Store, objectStorage ObjectStorage, thumbnails ThumbnailResolver, broadcaster Broadcaster) *Controller {
	return &Controller{
		store:       store,
		storage:     objectStorage,
		thumbnails:  thumbnails,
		broadcaster: broadcaster,
		validate:    validator.New(),
	}
}

func (controller *Controller) SetRoutes(eg *echo.Group) {
	eg.POST("/tricks/", controller.create)
	eg.PATCH("/tricks/:id/", controller.update)
	eg.DELETE("/tricks/:id/", controller.delete)
	eg.POST("/upload/", controller.upload)
}

// create catalogues a new trick. Exactly one media source must be given:
// either the public URL of a previously uploaded file, or an external
// provider link (for which a thumbnail is resolved here, best-effort).
func (controller *Controller) create(ec echo.Context) error {
	var request createRequest
	if err := ec.Bind(&request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	// Titles are stored trimmed; a whitespace-only title is no title at all.
	request.Title = strings.TrimSpace(request.Title)
	if err := controller.validate.Struct(request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if (request.URL == "") == (request.ExternalURL == "") {
		return echo.NewHTTPError(http.StatusBadRequest, "exactly one of url and external_url must be provided")
	}

	model := trick.Trick{
		Title:       request.Title,
		URL:         util.NilIfEmpty(request.URL),
		ExternalURL: util.NilIfEmpty(request.ExternalURL),
		Tags:        trick.NewTags(request.Tags, request.CustomTags),
		Notes:       util.NilIfEmpty(request.Notes),
	}

	if request.ExternalURL != "" {
		// A missing thumbnail never blocks creation; the gallery
		// falls back to a placeholder for such tricks.
		thumb, err := controller.thumbnails.Resolve(ec.Request().Context(), request.ExternalURL)
		if err != nil {
			log.Warnf("Failed to resolve thumbnail for %s: %v\n", request.ExternalURL, err)
		}
		model.ThumbnailURL = util.NilIfEmpty(thumb)
	}

	if err := controller.store.CreateTrick(&model); err != nil {
		return err
	}

	controller.announce(model.ID)
	return ec.JSON(http.StatusCreated, tricks.NewDto(&model))
}

// update edits a trick's title, notes and tags. The media columns cannot
// be changed after creation.
func (controller *Controller) update(ec echo.Context) error {
	trickId, err := uuid.Parse(ec.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "trick ID is not a valid UUID")
	}

	var request updateRequest
	if err := ec.Bind(&request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	request.Title = strings.TrimSpace(request.Title)
	if err := controller.validate.Struct(request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	model, err := controller.store.UpdateTrickDetails(
		trickId,
		request.Title,
		util.NilIfEmpty(request.Notes),
		trick.NewTags(request.Tags, request.CustomTags),
	)
	if err != nil {
		if errors.Is(err, trick.ErrTrickNotFound) {
			return echo.ErrNotFound
		}

		return err
	}

	controller.announce(trickId)
	return ec.JSON(http.StatusOK, tricks.NewDto(model))
}

// delete removes a trick, first attempting to clean up its uploaded media
// object. A failed cleanup only logs a warning: a dangling object in the
// bucket is preferable to a row that can never be deleted.
func (controller *Controller) delete(ec echo.Context) error {
	trickId, err := uuid.Parse(ec.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "trick ID is not a valid UUID")
	}

	model, err := controller.store.GetTrick(trickId)
	if err != nil {
		if errors.Is(err, trick.ErrTrickNotFound) {
			return echo.ErrNotFound
		}

		return err
	}

	if model.URL != nil && *model.URL != "" {
		name := storage.ObjectNameFromURL(*model.URL)
		if err := controller.storage.Remove(ec.Request().Context(), name); err != nil {
			log.Warnf("Failed to remove media object %s for trick %s: %v\n", name, trickId, err)
		}
	}

	if err := controller.store.DeleteTrick(trickId); err != nil {
		if errors.Is(err, trick.ErrTrickNotFound) {
			return echo.ErrNotFound
		}

		return err
	}

	controller.announce(trickId)
	return ec.NoContent(http.StatusOK)
}

// upload accepts a multipart file and stores it in the media bucket under
// a collision-resistant name. The returned URL is what a follow-up create
// request should carry as its `url`.
func (controller *Controller) upload(ec echo.Context) error {
	fileHeader, err := ec.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "multipart field 'file' is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	defer file.Close()

	name := storage.NewObjectName(fileHeader.Filename)
	publicUrl, err := controller.storage.Upload(ec.Request().Context(), name, fileHeader.Header.Get("Content-Type"), file)
	if err != nil {
		return err
	}

	return ec.JSON(http.StatusOK, uploadResponse{URL: publicUrl, Name: name})
}

func (controller *Controller) announce(trickId uuid.UUID) {
	if err := controller.broadcaster.BroadcastTrickUpdate(trickId); err != nil {
		log.Warnf("Failed to broadcast update for trick %s: %v\n", trickId, err)
	}
}
