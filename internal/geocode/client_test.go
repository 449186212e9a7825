package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReverseParsesPlace(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"display_name":"Omaha, Douglas County, Nebraska, United States","lat":"41.2565","lon":"-95.9345","address":{"city":"Omaha","county":"Douglas County","state":"Nebraska"}}`))
	}))
	defer srv.Close()

	place, err := NewClient(srv.URL, "key123").Reverse(context.Background(), 41.2565, -95.9345)
	require.NoError(t, err)

	assert.Equal(t, "Omaha", place.BestName())
	assert.InDelta(t, 41.2565, place.Lat, 1e-9)
	assert.Contains(t, gotQuery, "format=json")
	assert.Contains(t, gotQuery, "api_key=key123")
}

func TestReverseUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "").Reverse(context.Background(), 1, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
}
