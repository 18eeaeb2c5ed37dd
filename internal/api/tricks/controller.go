package tricks

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/learntoride/ltr/internal/api/util"
	"github.com/learntoride/ltr/internal/trick"
)

// Store is the read-only view of the library the public gallery needs.
type Store interface {
	ListTricks() ([]*trick.Trick, error)
	GetTrick(trickId uuid.UUID) (*trick.Trick, error)
}

type Controller struct {
	store Store
}

func New(store Store) *Controller {
	return &Controller{store}
}

func (controller *Controller) SetRoutes(eg *echo.Group) {
	eg.GET("/", controller.list)
	eg.GET("/tags/", controller.tags)
	eg.GET("/:id/", controller.get)
}

// list returns the gallery, most recently created first. The optional
// `search` and `tags` query parameters narrow the result without changing
// its order; the X-Total-Count header always reports the unfiltered size
// of the library.
func (controller *Controller) list(ec echo.Context) error {
	items, err := controller.store.ListTricks()
	if err != nil {
		return err
	}

	ec.Response().Header().Set("X-Total-Count", strconv.Itoa(len(items)))

	filtered := trick.Filter(items, ec.QueryParam("search"), splitTagsParam(ec.QueryParam("tags")))
	return ec.JSON(http.StatusOK, util.ApplyConversion(filtered, NewDto))
}

// tags returns the tag vocabulary the filter bar offers: the union of all
// tags in use, or the preset list when the library is empty.
func (controller *Controller) tags(ec echo.Context) error {
	items, err := controller.store.ListTricks()
	if err != nil {
		return err
	}

	return ec.JSON(http.StatusOK, TagsDto{Tags: trick.Vocabulary(items)})
}

func (controller *Controller) get(ec echo.Context) error {
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

	return ec.JSON(http.StatusOK, NewDto(model))
}

// splitTagsParam parses the comma-separated active tag list, dropping any
// blank entries a trailing comma would otherwise produce.
func splitTagsParam(raw string) []string {
	if raw == "" {
		return nil
	}

	out := make([]string, 0)
	for _, tag := range strings.Split(raw, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			out = append(out, tag)
		}
	}

	return out
}
