package routing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteParsesGeometry(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"code":"Ok","routes":[{"geometry":"abc123","distance":1500,"duration":60}]}`))
	}))
	defer srv.Close()

	geom, err := NewClient(srv.URL).Route(context.Background(), 41.25, -95.93, 39.73, -104.99)
	require.NoError(t, err)
	assert.Equal(t, "abc123", geom)

	// OSRM wants lon,lat order.
	assert.Equal(t, "/route/v1/driving/-95.930000,41.250000;-104.990000,39.730000", gotPath)
	assert.Contains(t, gotQuery, "overview=full")
	assert.Contains(t, gotQuery, "geometries=polyline")
}

func TestRouteEmptyRoutes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code":"NoRoute","routes":[]}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Route(context.Background(), 0.1, 0.1, 0.2, 0.2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no routes")
}

func TestRouteServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Route(context.Background(), 0.1, 0.1, 0.2, 0.2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}
