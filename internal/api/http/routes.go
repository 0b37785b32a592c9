package httpapi

import (
	"errors"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/fairweather-app/fairweather/internal/activities"
	"github.com/fairweather-app/fairweather/internal/recommend"
	"github.com/fairweather-app/fairweather/internal/store"
	"github.com/fairweather-app/fairweather/internal/weather"
)

var validate = validator.New()

// Handlers bundles the services the HTTP layer exposes.
type Handlers struct {
	Weather   *weather.Service
	Recommend *recommend.Service
	Catalog   *activities.Catalog
	Locations []weather.Location
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, h Handlers) {
	v1 := app.Group("/api/v1")

	v1.Get("/weather/current", func(c *fiber.Ctx) error {
		locReq, err := parseLocationQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		loc := h.resolveLocation(locReq)
		snapshot, err := h.Weather.GetLatest(loc)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "no weather data for requested location")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch weather data")
		}

		return c.JSON(snapshot)
	})

	v1.Get("/weather/history", func(c *fiber.Ctx) error {
		var req historyQuery
		if err := req.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		loc := h.resolveLocation(req.Location)
		snapshots, err := h.Weather.GetRange(loc, req.From, req.To)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "no weather history for requested range")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch weather history")
		}

		return c.JSON(fiber.Map{
			"location":  loc,
			"from":      req.From,
			"to":        req.To,
			"snapshots": snapshots,
		})
	})

	v1.Get("/weather/forecast", func(c *fiber.Ctx) error {
		locReq, err := parseLocationQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		var req forecastQuery
		req.Days, err = strconv.Atoi(c.Query("days"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "days query parameter is required and must be a number")
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		loc := h.resolveLocation(locReq)
		forecast, err := h.Weather.GetForecast(loc, req.Days)
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "no forecast data for requested location")
		}

		return c.JSON(fiber.Map{
			"location": loc,
			"days":     req.Days,
			"forecast": forecast,
		})
	})

	v1.Get("/activities", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"activities": h.Catalog.All(),
		})
	})

	v1.Get("/recommendations", func(c *fiber.Ctx) error {
		locReq, err := parseLocationQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		month, err := parseMonthQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		loc := h.resolveLocation(locReq)
		recs, err := h.Recommend.ForLocation(loc, month)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "no weather data for requested location")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to score activities")
		}

		return c.JSON(fiber.Map{
			"location":        loc,
			"recommendations": recs,
		})
	})
}

// resolveLocation maps a query back to a configured location when one
// matches, so stored coordinates and shore orientation are used; otherwise
// the bare city/country pair is looked up as-is.
func (h Handlers) resolveLocation(q locationQuery) weather.Location {
	for _, loc := range h.Locations {
		if loc.City == q.City && loc.Country == q.Country {
			return loc
		}
	}
	return weather.Location{City: q.City, Country: q.Country}
}

// locationQuery holds query parameters for identifying a location.
type locationQuery struct {
	City    string `validate:"required"`
	Country string `validate:"required"`
}

func parseLocationQuery(c *fiber.Ctx) (locationQuery, error) {
	var q locationQuery

	q.City = c.Query("city")
	q.Country = c.Query("country")

	if err := validate.Struct(q); err != nil {
		return q, err
	}

	return q, nil
}

// forecastQuery validates the forecast horizon.
type forecastQuery struct {
	Days int `validate:"required,min=1,max=7"`
}

// parseMonthQuery reads the optional month parameter (1-12); zero means
// no seasonal filtering.
func parseMonthQuery(c *fiber.Ctx) (time.Month, error) {
	monthStr := c.Query("month")
	if monthStr == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(monthStr)
	if err != nil || n < 1 || n > 12 {
		return 0, errors.New("month must be a number between 1 and 12")
	}
	return time.Month(n), nil
}

// historyQuery holds query parameters for the history endpoint.
type historyQuery struct {
	Location locationQuery
	From     time.Time `validate:"required"`
	To       time.Time `validate:"required,gtefield=From"`
}

func (h *historyQuery) bind(c *fiber.Ctx) error {
	loc, err := parseLocationQuery(c)
	if err != nil {
		return err
	}
	h.Location = loc

	fromStr := c.Query("from")
	toStr := c.Query("to")
	if fromStr == "" || toStr == "" {
		return errors.New("from and to query parameters are required")
	}

	from, err := parseTime(fromStr)
	if err != nil {
		return err
	}
	to, err := parseTime(toStr)
	if err != nil {
		return err
	}

	h.From = from
	h.To = to
	return nil
}

// parseTime tries to parse either RFC3339 or Unix seconds.
func parseTime(s string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts, nil
	}
	if unix, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(unix, 0).UTC(), nil
	}
	return time.Time{}, errors.New("invalid time format; use RFC3339 or unix seconds")
}
