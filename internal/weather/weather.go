package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
)

// Snapshot is the weather context attached to a route at creation time.
type Snapshot struct {
	Temperature float64 `json:"temperature"`
	Condition   string  `json:"condition"`
}

// DefaultSnapshot is substituted whenever the provider cannot be reached.
var DefaultSnapshot = Snapshot{Temperature: 15, Condition: "clear"}

// Provider fetches current weather for a location label.
type Provider interface {
	Fetch(ctx context.Context, location string) (Snapshot, error)
}

// OpenWeatherMap queries api.openweathermap.org for current conditions.
type OpenWeatherMap struct {
	APIKey  string
	BaseURL string
	Client  *http.Client
}

func NewOpenWeatherMap(apiKey string) *OpenWeatherMap {
	return &OpenWeatherMap{
		APIKey:  apiKey,
		BaseURL: "https://api.openweathermap.org/data/2.5/weather",
		Client:  &http.Client{Timeout: 5 * time.Second},
	}
}

func (p *OpenWeatherMap) Fetch(ctx context.Context, location string) (Snapshot, error) {
	q := url.Values{}
	q.Set("q", location)
	q.Set("appid", p.APIKey)
	q.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.BaseURL+"?"+q.Encode(), nil)
	if err != nil {
		return Snapshot{}, err
	}

	resp, err := p.Client.Do(req)
	if err != nil {
		return Snapshot{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Snapshot{}, fmt.Errorf("weather provider returned %s", resp.Status)
	}

	var body struct {
		Main struct {
			Temp float64 `json:"temp"`
		} `json:"main"`
		Weather []struct {
			Description string `json:"description"`
		} `json:"weather"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Snapshot{}, err
	}

	snap := Snapshot{Temperature: body.Main.Temp}
	if len(body.Weather) > 0 {
		snap.Condition = body.Weather[0].Description
	}
	return snap, nil
}

// fallbackProvider wraps another provider and substitutes a fixed snapshot
// on any error. Route creation must never fail on weather.
type fallbackProvider struct {
	inner    Provider
	fallback Snapshot
}

// WithFallback decorates p so that Fetch always succeeds.
func WithFallback(p Provider, fallback Snapshot) Provider {
	return &fallbackProvider{inner: p, fallback: fallback}
}

func (f *fallbackProvider) Fetch(ctx context.Context, location string) (Snapshot, error) {
	snap, err := f.inner.Fetch(ctx, location)
	if err != nil {
		logrus.WithError(err).Warn("weather provider unavailable, using fallback snapshot")
		return f.fallback, nil
	}
	return snap, nil
}
