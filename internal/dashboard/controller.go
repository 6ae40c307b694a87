package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/ecowatch/envboard/internal/geo"
	"github.com/ecowatch/envboard/internal/observability"
	"github.com/ecowatch/envboard/internal/reading"
	"github.com/ecowatch/envboard/internal/sensors"
	"github.com/ecowatch/envboard/internal/viz"
	"github.com/ecowatch/envboard/internal/weather"
)

// ErrNoCity is returned when a toggle arrives before any city was searched.
var ErrNoCity = errors.New("no city selected")

// Controller is the top-level application controller: it owns the session
// state and orchestrates weather lookups, the sensor collection, and the
// chart/map projections.
type Controller struct {
	state    *State
	provider weather.Provider
	resolver geo.Resolver // optional coordinate fallback, may be nil
	sensors  *sensors.Service
	metrics  *observability.Metrics
}

func NewController(provider weather.Provider, resolver geo.Resolver, svc *sensors.Service, metrics *observability.Metrics) *Controller {
	return &Controller{
		state:    NewState(),
		provider: provider,
		resolver: resolver,
		sensors:  svc,
		metrics:  metrics,
	}
}

// State exposes the session state, mainly for tests and the scheduler.
func (c *Controller) State() *State {
	return c.state
}

// CityView is the rendered weather/city panel plus the synchronized sensor
// views for the searched city.
type CityView struct {
	City         string             `json:"city"`
	Country      string             `json:"country,omitempty"`
	Temperature  float64            `json:"temperature"`
	Description  string             `json:"description"`
	Icon         string             `json:"icon"`
	Humidity     float64            `json:"humidity"`
	WindSpeed    float64            `json:"windSpeed"`
	Condition    weather.Condition  `json:"condition"`
	OverlayColor string             `json:"overlayColor"`
	Coord        weather.Coord      `json:"coord"`
	Readings     []reading.Record   `json:"readings"`
	Categories   map[string]bool    `json:"categories"`
	Chart        viz.ChartData      `json:"chart"`
	Map          viz.MapData        `json:"map"`
}

// RenderCityView fetches current weather for the city, updates the session
// state, and assembles the full city panel. On fetch failure the session state
// is left untouched and the error is returned for inline display.
func (c *Controller) RenderCityView(ctx context.Context, city string) (CityView, error) {
	obs, err := c.fetchWeather(ctx, city)
	if err != nil {
		return CityView{}, err
	}

	c.state.SetCity(city)
	c.state.SetWeather(obs)

	cond := weather.Classify(obs)

	view := CityView{
		City:         city,
		Country:      obs.Sys.Country,
		Temperature:  obs.Main.Temp,
		Humidity:     obs.Main.Humidity,
		WindSpeed:    obs.Wind.Speed,
		Condition:    cond,
		OverlayColor: weather.OverlayColor(cond),
		Coord:        obs.Coord,
	}
	if len(obs.Weather) > 0 {
		view.Description = obs.Weather[0].Description
		view.Icon = obs.Weather[0].Icon
	}

	matches, err := c.sensors.ForCity(city)
	if err != nil {
		return CityView{}, err
	}
	view.Readings = reading.ToRecords(matches)
	view.Chart = viz.Chart(matches)
	view.Map = viz.Map(matches, obs.Coord, view.OverlayColor)

	states, err := c.sensors.CategoryStates(city)
	if err != nil {
		return CityView{}, err
	}
	view.Categories = make(map[string]bool, len(states))
	for cat, on := range states {
		view.Categories[string(cat)] = on
	}

	return view, nil
}

// Refresh carries re-rendered chart/map views for the currently selected city.
type Refresh struct {
	City  string        `json:"city,omitempty"`
	Chart viz.ChartData `json:"chart"`
	Map   viz.MapData   `json:"map"`
}

// ToggleResult reports the outcome of a checkbox toggle.
type ToggleResult struct {
	Action  string          `json:"action"` // added, removed, noop
	Reading *reading.Record `json:"reading,omitempty"`
	Refresh *Refresh        `json:"refresh,omitempty"`
}

// ToggleSensor adds or removes the category entity for the currently selected
// city. Toggling on with no prior entity fetches weather (session-cached) for
// coordinates, synthesizes a reading, and persists it; a failed lookup creates
// nothing. Toggling off removes exactly the matching entity.
func (c *Controller) ToggleSensor(ctx context.Context, cat sensors.Category, enabled bool) (ToggleResult, error) {
	city := c.state.City()
	if city == "" {
		return ToggleResult{}, ErrNoCity
	}

	if !enabled {
		removed, err := c.sensors.RemoveCategory(city, cat)
		if err != nil {
			return ToggleResult{}, err
		}
		action := "noop"
		if removed {
			action = "removed"
		}
		c.metrics.ToggleOps.WithLabelValues(action).Inc()
		c.updateSensorGauge()
		return c.toggleResult(action, nil)
	}

	name := sensors.EntityName(city, cat)
	if existing, ok, err := c.sensors.Lookup(name); err != nil {
		return ToggleResult{}, err
	} else if ok {
		c.metrics.ToggleOps.WithLabelValues("noop").Inc()
		rec := existing.Record()
		return c.toggleResult("noop", &rec)
	}

	obs, err := c.currentWeather(ctx, city)
	if err != nil {
		return ToggleResult{}, fmt.Errorf("weather lookup for %s: %w", city, err)
	}

	lat, lon := c.coordinates(city, obs)
	created, added, err := c.sensors.Create(city, cat, lat, lon)
	if err != nil {
		return ToggleResult{}, err
	}
	action := "noop"
	if added {
		action = "added"
	}
	c.metrics.ToggleOps.WithLabelValues(action).Inc()
	c.updateSensorGauge()

	rec := created.Record()
	return c.toggleResult(action, &rec)
}

// ListSensors returns the full persisted collection in stored order.
func (c *Controller) ListSensors() ([]reading.Record, error) {
	all, err := c.sensors.List()
	if err != nil {
		return nil, err
	}
	return reading.ToRecords(all), nil
}

// RemoveSensor deletes one reading by exact name and, when a city is selected,
// re-renders the filtered chart/map views.
func (c *Controller) RemoveSensor(name string) (bool, *Refresh, error) {
	removed, err := c.sensors.Remove(name)
	if err != nil {
		return false, nil, err
	}
	if removed {
		c.metrics.SensorDeletes.Inc()
		c.updateSensorGauge()
	}

	refresh, err := c.refreshViews()
	if err != nil {
		return removed, nil, err
	}
	return removed, refresh, nil
}

// ChartForCity projects the city's readings into chart arrays.
func (c *Controller) ChartForCity(city string) (viz.ChartData, error) {
	matches, err := c.sensors.ForCity(city)
	if err != nil {
		return viz.ChartData{}, err
	}
	return viz.Chart(matches), nil
}

// MapForCity projects the city's readings into map markers, using the cached
// weather coordinate as the focus when the city is the selected one.
func (c *Controller) MapForCity(city string) (viz.MapData, error) {
	matches, err := c.sensors.ForCity(city)
	if err != nil {
		return viz.MapData{}, err
	}

	var focus weather.Coord
	overlay := ""
	if obs, ok := c.state.Weather(); ok && c.state.City() == city {
		focus = obs.Coord
		overlay = weather.OverlayColor(weather.Classify(obs))
	}
	return viz.Map(matches, focus, overlay), nil
}

// RefreshWeather re-fetches the current city's weather and updates the session
// cache. Called by the background scheduler; a no-op when no city is selected.
func (c *Controller) RefreshWeather(ctx context.Context) error {
	city := c.state.City()
	if city == "" {
		return nil
	}
	obs, err := c.fetchWeather(ctx, city)
	if err != nil {
		return err
	}
	c.state.SetWeather(obs)
	return nil
}

// currentWeather returns the session-cached observation for the city, fetching
// and caching it on first use.
func (c *Controller) currentWeather(ctx context.Context, city string) (weather.Observation, error) {
	if obs, ok := c.state.Weather(); ok {
		return obs, nil
	}
	obs, err := c.fetchWeather(ctx, city)
	if err != nil {
		return weather.Observation{}, err
	}
	c.state.SetWeather(obs)
	return obs, nil
}

func (c *Controller) fetchWeather(ctx context.Context, city string) (weather.Observation, error) {
	obs, err := c.provider.Current(ctx, city)
	if err != nil {
		outcome := "error"
		if errors.Is(err, weather.ErrCityNotFound) {
			outcome = "not_found"
		}
		c.metrics.WeatherFetches.WithLabelValues(outcome).Inc()
		return weather.Observation{}, err
	}
	c.metrics.WeatherFetches.WithLabelValues("success").Inc()
	return obs, nil
}

// coordinates picks the entity coordinates: the observation's pair when
// usable, otherwise the geocoding fallback. Returns nils when neither source
// can supply a position; map markers then fall back to the focus coordinate.
func (c *Controller) coordinates(city string, obs weather.Observation) (*float64, *float64) {
	if obs.HasCoords() {
		lat, lon := obs.Coord.Lat, obs.Coord.Lon
		return &lat, &lon
	}
	if c.resolver == nil {
		return nil, nil
	}
	lat, lon, err := c.resolver.Locate(city)
	if err != nil {
		log.Printf("geocode fallback failed for %s: %v", city, err)
		return nil, nil
	}
	return &lat, &lon
}

func (c *Controller) toggleResult(action string, rec *reading.Record) (ToggleResult, error) {
	refresh, err := c.refreshViews()
	if err != nil {
		return ToggleResult{}, err
	}
	return ToggleResult{Action: action, Reading: rec, Refresh: refresh}, nil
}

// refreshViews re-renders the filtered chart/map for the selected city, or nil
// when no city is selected.
func (c *Controller) refreshViews() (*Refresh, error) {
	city := c.state.City()
	if city == "" {
		return nil, nil
	}
	chart, err := c.ChartForCity(city)
	if err != nil {
		return nil, err
	}
	mapData, err := c.MapForCity(city)
	if err != nil {
		return nil, err
	}
	return &Refresh{City: city, Chart: chart, Map: mapData}, nil
}

func (c *Controller) updateSensorGauge() {
	all, err := c.sensors.List()
	if err != nil {
		return
	}
	c.metrics.SensorsTracked.Set(float64(len(all)))
}
