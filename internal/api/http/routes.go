package httpapi

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/weather-city-lookup/internal/weather"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *weather.Service, units weather.Units) {
	v1 := app.Group("/api/v1")

	v1.Post("/cities/search", func(c *fiber.Ctx) error {
		var req searchRequest
		if err := req.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		record, banner, err := service.Search(c.UserContext(), req.City)
		if err != nil {
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
				"banner":  bannerView(banner),
			})
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"banner": bannerView(banner),
			"city":   record,
			"card":   weather.NewCard(record, units),
		})
	})

	v1.Get("/cities", func(c *fiber.Ctx) error {
		cities := service.Cities()
		resp := fiber.Map{
			"count":  len(cities),
			"cities": cities,
			"cards":  weather.NewCards(cities, units),
		}
		if label := weather.ClearLabel(len(cities)); label != "" {
			resp["clearLabel"] = label
		}
		return c.JSON(resp)
	})

	v1.Delete("/cities", func(c *fiber.Ctx) error {
		service.ClearCities()
		return c.SendStatus(fiber.StatusNoContent)
	})

	v1.Get("/banner", func(c *fiber.Ctx) error {
		return c.JSON(bannerView(service.Banner()))
	})

	v1.Delete("/banner", func(c *fiber.Ctx) error {
		service.ClearMessage()
		return c.SendStatus(fiber.StatusNoContent)
	})
}

// searchRequest is accepted either as a JSON body or as the "city" query parameter.
type searchRequest struct {
	City string `json:"city" validate:"required,max=100"`
}

func (r *searchRequest) bind(c *fiber.Ctx) error {
	if len(c.Body()) > 0 {
		if err := c.BodyParser(r); err != nil {
			return err
		}
	}
	if r.City == "" {
		r.City = c.Query("city")
	}
	r.City = strings.TrimSpace(r.City)

	return validate.Struct(r)
}

func bannerView(b weather.Banner) fiber.Map {
	return fiber.Map{
		"message": b.Message,
		"type":    b.Type,
		"color":   b.Color(),
	}
}
