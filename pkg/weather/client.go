package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"time"
)

const (
	endpoint  = "https://api.open-meteo.com/v1/forecast"
	latitude  = "37.5665"
	longitude = "126.9780"
	City      = "서울"
)

// Weather is the current condition in Seoul. Temp is nil when the lookup failed.
type Weather struct {
	Temp      *int   `json:"temp"`
	Condition string `json:"condition"`
	City      string `json:"city"`
}

// Info renders the weather line used in prompts, or "" without a temperature.
func (w Weather) Info() string {
	if w.Temp == nil {
		return ""
	}
	return fmt.Sprintf("현재 %s 날씨: %d°C, %s", w.City, *w.Temp, w.Condition)
}

type Client struct {
	httpClient *http.Client
}

func NewClient(timeout time.Duration) *Client {
	return &Client{httpClient: &http.Client{Timeout: timeout}}
}

func (c *Client) Name() string {
	return "open_meteo"
}

func (c *Client) Fetch(ctx context.Context) (Weather, error) {
	params := url.Values{}
	params.Add("latitude", latitude)
	params.Add("longitude", longitude)
	params.Add("current", "temperature_2m,weather_code")
	params.Add("timezone", "Asia/Seoul")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return Weather{}, fmt.Errorf("weather request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Weather{}, fmt.Errorf("weather fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Weather{}, fmt.Errorf("open-meteo returned %d", resp.StatusCode)
	}

	var raw meteoResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return Weather{}, fmt.Errorf("weather decode: %w", err)
	}

	if raw.Current.Temperature == nil || raw.Current.WeatherCode == nil {
		return Weather{}, fmt.Errorf("weather response missing current values")
	}

	temp := int(math.Round(*raw.Current.Temperature))
	return Weather{
		Temp:      &temp,
		Condition: Condition(*raw.Current.WeatherCode),
		City:      City,
	}, nil
}

// Condition maps a WMO weather interpretation code to a short Korean label.
func Condition(code int) string {
	switch {
	case code == 0:
		return "맑음"
	case code >= 1 && code <= 3:
		return "구름 조금/흐림"
	case code == 45 || code == 48:
		return "안개"
	case code >= 95:
		return "뇌우"
	case code >= 80:
		return "소나기"
	case code >= 71 && code <= 77:
		return "눈"
	case code >= 61:
		return "비"
	case code >= 51:
		return "이슬비"
	default:
		return "알 수 없음"
	}
}

type meteoResponse struct {
	Current struct {
		Temperature *float64 `json:"temperature_2m"`
		WeatherCode *int     `json:"weather_code"`
	} `json:"current"`
}
