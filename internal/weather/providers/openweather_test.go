package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecowatch/envboard/internal/weather"
)

const sampleResponse = `{
	"coord": {"lat": 48.8566, "lon": 2.3522},
	"main": {"temp": 21.4, "humidity": 56},
	"weather": [{"main": "Clouds", "description": "scattered clouds", "icon": "03d"}],
	"wind": {"speed": 4.1},
	"name": "Paris",
	"sys": {"country": "FR"}
}`

func newTestProvider(baseURL string) *OpenWeatherProvider {
	client := &http.Client{Timeout: 2 * time.Second}
	return NewOpenWeatherProvider(client, "test-key").WithBaseURL(baseURL)
}

func TestCurrent(t *testing.T) {
	t.Run("decodes the provider wire shape", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Paris", r.URL.Query().Get("q"))
			assert.Equal(t, "metric", r.URL.Query().Get("units"))
			assert.Equal(t, "test-key", r.URL.Query().Get("appid"))
			w.Write([]byte(sampleResponse))
		}))
		defer srv.Close()

		obs, err := newTestProvider(srv.URL).Current(context.Background(), "Paris")
		require.NoError(t, err)

		assert.Equal(t, 48.8566, obs.Coord.Lat)
		assert.Equal(t, 2.3522, obs.Coord.Lon)
		assert.Equal(t, 21.4, obs.Main.Temp)
		assert.Equal(t, 56.0, obs.Main.Humidity)
		require.Len(t, obs.Weather, 1)
		assert.Equal(t, "Clouds", obs.Weather[0].Main)
		assert.Equal(t, "scattered clouds", obs.Weather[0].Description)
		assert.Equal(t, "03d", obs.Weather[0].Icon)
		assert.Equal(t, 4.1, obs.Wind.Speed)
		assert.Equal(t, "Paris", obs.Name)
		assert.Equal(t, "FR", obs.Sys.Country)
	})

	t.Run("unknown city", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"cod":"404","message":"city not found"}`, http.StatusNotFound)
		}))
		defer srv.Close()

		_, err := newTestProvider(srv.URL).Current(context.Background(), "Atlantis")
		assert.ErrorIs(t, err, weather.ErrCityNotFound)
	})

	t.Run("client errors are not retried", func(t *testing.T) {
		var hits int
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits++
			http.Error(w, "bad key", http.StatusUnauthorized)
		}))
		defer srv.Close()

		_, err := newTestProvider(srv.URL).Current(context.Background(), "Paris")
		require.Error(t, err)
		assert.Equal(t, 1, hits)
	})

	t.Run("missing api key", func(t *testing.T) {
		p := NewOpenWeatherProvider(&http.Client{}, "")
		_, err := p.Current(context.Background(), "Paris")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "api key")
	})

	t.Run("empty city", func(t *testing.T) {
		p := NewOpenWeatherProvider(&http.Client{}, "test-key")
		_, err := p.Current(context.Background(), "")
		require.Error(t, err)
	})
}
