package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func newTestClient(srv *httptest.Server) *Client {
	client := NewClient(time.Second)
	client.httpClient = srv.Client()
	client.httpClient.Transport = &rewriteTransport{base: srv.URL, inner: http.DefaultTransport}
	return client
}

func TestFetch(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"current": {"time": "2025-03-03T09:00", "temperature_2m": 7.6, "weather_code": 3}}`))
	}))
	defer srv.Close()

	got, err := newTestClient(srv).Fetch(context.Background())

	assert.Equal(t, nil, err)
	assert.Equal(t, 8, *got.Temp)
	assert.Equal(t, "구름 조금/흐림", got.Condition)
	assert.Equal(t, "서울", got.City)
	assert.Equal(t, []string{"37.5665"}, gotQuery["latitude"])
	assert.Equal(t, []string{"126.9780"}, gotQuery["longitude"])
	assert.Equal(t, []string{"temperature_2m,weather_code"}, gotQuery["current"])
	assert.Equal(t, []string{"Asia/Seoul"}, gotQuery["timezone"])
}

func TestFetch_MissingValues(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"current": {}}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv).Fetch(context.Background())

	assert.NotEqual(t, nil, err)
}

func TestFetch_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newTestClient(srv).Fetch(context.Background())

	assert.NotEqual(t, nil, err)
}

func TestCondition(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{0, "맑음"},
		{1, "구름 조금/흐림"},
		{3, "구름 조금/흐림"},
		{45, "안개"},
		{48, "안개"},
		{51, "이슬비"},
		{55, "이슬비"},
		{61, "비"},
		{67, "비"},
		{71, "눈"},
		{77, "눈"},
		{80, "소나기"},
		{86, "소나기"},
		{95, "뇌우"},
		{99, "뇌우"},
		{10, "알 수 없음"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Condition(tt.code))
	}
}

func TestInfo(t *testing.T) {
	zero := 0
	minus := -3

	assert.Equal(t, "", Weather{City: City}.Info())
	assert.Equal(t, "현재 서울 날씨: 0°C, 맑음", Weather{Temp: &zero, Condition: "맑음", City: City}.Info())
	assert.Equal(t, "현재 서울 날씨: -3°C, 눈", Weather{Temp: &minus, Condition: "눈", City: City}.Info())
}

// rewriteTransport redirects all requests to a fixed base URL (test server).
type rewriteTransport struct {
	base  string
	inner http.RoundTripper
}

func (rt *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req2 := req.Clone(req.Context())
	parsed, _ := http.NewRequest("GET", rt.base, nil)
	req2.URL.Host = parsed.URL.Host
	req2.URL.Scheme = parsed.URL.Scheme
	return rt.inner.RoundTrip(req2)
}
