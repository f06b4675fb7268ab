package httpapi

import (
	"errors"
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/nholik/nasa-data-aggregation/internal/nasa"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *nasa.Service) {
	api := app.Group("/api")

	api.Get("/apod", func(c *fiber.Ctx) error {
		body, err := service.Apod(c.UserContext(), c.Query("date"))
		if err != nil {
			return toHTTPError(err)
		}
		return c.Type("json").Send(body)
	})

	api.Get("/asteroids", func(c *fiber.Ctx) error {
		query := nasa.FeedQuery{
			StartDate: c.Query("start_date"),
			EndDate:   c.Query("end_date"),
			Q:         c.Query("q"),
			Page:      queryIntPtr(c, "page"),
			Size:      queryIntPtr(c, "size"),
		}

		resp, err := service.AsteroidFeed(c.UserContext(), query)
		if err != nil {
			return toHTTPError(err)
		}
		return c.JSON(resp)
	})

	api.Get("/asteroids/:id", func(c *fiber.Ctx) error {
		body, err := service.AsteroidByID(c.UserContext(), c.Params("id"))
		if err != nil {
			return toHTTPError(err)
		}
		return c.Type("json").Send(body)
	})

	api.Get("/images", func(c *fiber.Ctx) error {
		var q imagesQuery
		q.bind(c)

		if err := validate.Struct(q); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Filter is required")
		}

		resp, err := service.SearchImages(c.UserContext(), nasa.ImageQuery{
			Filter: q.Filter,
			Page:   q.Page,
			Size:   q.Size,
		})
		if err != nil {
			return toHTTPError(err)
		}
		return c.JSON(resp)
	})
}

// imagesQuery holds query parameters for the image search endpoint.
type imagesQuery struct {
	Filter string `validate:"required"`
	Page   *int
	Size   *int
}

func (q *imagesQuery) bind(c *fiber.Ctx) {
	q.Filter = c.Query("filter")
	q.Page = queryIntPtr(c, "page")
	q.Size = queryIntPtr(c, "size")
}

// queryIntPtr parses an optional integer query parameter. Absent or
// unparseable values come back nil so pagination metadata can echo them
// as null while the paginator applies its defaults.
func queryIntPtr(c *fiber.Ctx, key string) *int {
	v := c.Query(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil
	}
	return &n
}

// toHTTPError maps the pipeline error taxonomy onto HTTP statuses:
// InvalidInput to 400, UpstreamTimeout to 504, UpstreamError to the
// upstream status, server misconfiguration to 500 with its message.
// Anything else is an opaque 500.
func toHTTPError(err error) error {
	var invalid *nasa.InvalidInputError
	if errors.As(err, &invalid) {
		return fiber.NewError(fiber.StatusBadRequest, invalid.Msg)
	}

	var timeout *nasa.UpstreamTimeoutError
	if errors.As(err, &timeout) {
		return fiber.NewError(fiber.StatusGatewayTimeout, "Upstream timeout (NASA API)")
	}

	var upstream *nasa.UpstreamError
	if errors.As(err, &upstream) {
		return fiber.NewError(upstream.Status, upstream.Msg)
	}

	var misconfig *nasa.ServerConfigError
	if errors.As(err, &misconfig) {
		return fiber.NewError(fiber.StatusInternalServerError, misconfig.Msg)
	}

	log.Printf("unhandled error: %v", err)
	return fiber.NewError(fiber.StatusInternalServerError, "Internal server error")
}
