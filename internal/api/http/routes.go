package httpapi

import (
	"errors"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/ecowatch/envboard/internal/dashboard"
	"github.com/ecowatch/envboard/internal/prefs"
	"github.com/ecowatch/envboard/internal/sensors"
	"github.com/ecowatch/envboard/internal/session"
	"github.com/ecowatch/envboard/internal/weather"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app. Everything except
// login is gated by the persisted login flag.
func RegisterRoutes(app *fiber.App, ctrl *dashboard.Controller, sessions *session.Manager, themes *prefs.Themes) {
	v1 := app.Group("/api/v1")
	auth := requireAuth(sessions)

	v1.Post("/session/login", func(c *fiber.Ctx) error {
		var req loginRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		token, err := sessions.Login(req.Username, req.Password)
		if err != nil {
			if errors.Is(err, session.ErrBadCredentials) {
				return fiber.NewError(fiber.StatusUnauthorized, "invalid credentials")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to open session")
		}
		return c.JSON(fiber.Map{"token": token})
	})

	v1.Post("/session/logout", auth, func(c *fiber.Ctx) error {
		if err := sessions.Logout(); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to close session")
		}
		return c.JSON(fiber.Map{"loggedIn": false})
	})

	v1.Get("/theme", auth, func(c *fiber.Ctx) error {
		theme, err := themes.Get()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to load theme")
		}
		return c.JSON(fiber.Map{"theme": theme})
	})

	v1.Put("/theme", auth, func(c *fiber.Ctx) error {
		var req themeRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := themes.Set(req.Theme); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return c.JSON(fiber.Map{"theme": req.Theme})
	})

	v1.Get("/city/view", auth, func(c *fiber.Ctx) error {
		city := strings.TrimSpace(c.Query("city"))
		if city == "" {
			return fiber.NewError(fiber.StatusBadRequest, "city query parameter is required")
		}

		view, err := ctrl.RenderCityView(c.UserContext(), city)
		if err != nil {
			if errors.Is(err, weather.ErrCityNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "no weather data for requested city")
			}
			return fiber.NewError(fiber.StatusBadGateway, "weather lookup failed")
		}
		return c.JSON(view)
	})

	v1.Get("/sensors", auth, func(c *fiber.Ctx) error {
		records, err := ctrl.ListSensors()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to load sensors")
		}
		return c.JSON(fiber.Map{"sensors": records})
	})

	v1.Put("/sensors/toggle", auth, func(c *fiber.Ctx) error {
		var req toggleRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		cat, err := sensors.ParseCategory(req.Category)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		result, err := ctrl.ToggleSensor(c.UserContext(), cat, *req.Enabled)
		if err != nil {
			if errors.Is(err, dashboard.ErrNoCity) {
				return fiber.NewError(fiber.StatusConflict, "search a city before toggling sensors")
			}
			return fiber.NewError(fiber.StatusBadGateway, "weather lookup failed; sensor not created")
		}
		return c.JSON(result)
	})

	v1.Delete("/sensors/:name", auth, func(c *fiber.Ctx) error {
		name, err := url.PathUnescape(c.Params("name"))
		if err != nil || strings.TrimSpace(name) == "" {
			return fiber.NewError(fiber.StatusBadRequest, "invalid sensor name")
		}

		removed, refresh, err := ctrl.RemoveSensor(name)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to remove sensor")
		}
		if !removed {
			return fiber.NewError(fiber.StatusNotFound, "no sensor with that name")
		}
		return c.JSON(fiber.Map{"removed": name, "refresh": refresh})
	})

	v1.Get("/sensors/chart", auth, func(c *fiber.Ctx) error {
		city := strings.TrimSpace(c.Query("city"))
		if city == "" {
			return fiber.NewError(fiber.StatusBadRequest, "city query parameter is required")
		}
		chart, err := ctrl.ChartForCity(city)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to build chart")
		}
		return c.JSON(chart)
	})

	v1.Get("/sensors/map", auth, func(c *fiber.Ctx) error {
		city := strings.TrimSpace(c.Query("city"))
		if city == "" {
			return fiber.NewError(fiber.StatusBadRequest, "city query parameter is required")
		}
		mapData, err := ctrl.MapForCity(city)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to build map view")
		}
		return c.JSON(mapData)
	})
}

// requireAuth checks the bearer token against the persisted session.
func requireAuth(sessions *session.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := strings.TrimPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ")
		if !sessions.Authenticate(token) {
			return fiber.NewError(fiber.StatusUnauthorized, "login required")
		}
		return c.Next()
	}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type themeRequest struct {
	Theme string `json:"theme" validate:"required,oneof=dark light"`
}

type toggleRequest struct {
	Category string `json:"category" validate:"required"`
	Enabled  *bool  `json:"enabled" validate:"required"`
}
