package service

import (
	"context"
	"database/sql"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/hauliq/eldview-backend-go/internal/database"
	"github.com/hauliq/eldview-backend-go/internal/geocode"
	"github.com/hauliq/eldview-backend-go/internal/models"
	"github.com/hauliq/eldview-backend-go/internal/polyline"
	"github.com/hauliq/eldview-backend-go/internal/repository"
	"github.com/hauliq/eldview-backend-go/internal/timeline"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec("PRAGMA foreign_keys=ON")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

type fixture struct {
	db      *sql.DB
	auth    *AuthService
	trips   *TripService
	user    *models.User
	fetcher *fakeFetcher
	views   *ViewService
	sess    *Session
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := testDB(t)
	auth := NewAuthService(repository.NewUserRepository(db), "test-secret")
	user, err := auth.Register(models.RegisterRequest{
		Username: "driver1",
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)

	trips := NewTripService(
		repository.NewTripRepository(db),
		repository.NewDutyLogRepository(db),
	)
	fetcher := &fakeFetcher{}
	views := NewViewService(trips, fetcher, timeline.NewAxis(0, 0), nil)

	registry := NewSessionRegistry(&fakeGeocoder{}, nil)
	sess := registry.Get("token-1", user.ID)

	return &fixture{
		db: db, auth: auth, trips: trips,
		user: user, fetcher: fetcher, views: views, sess: sess,
	}
}

type fakeGeocoder struct{}

func (g *fakeGeocoder) Reverse(_ context.Context, lat, lon float64) (*geocode.Place, error) {
	return &geocode.Place{Address: geocode.Address{City: "Somewhere"}}, nil
}

type fakeFetcher struct {
	mu    sync.Mutex
	calls int
}

func (f *fakeFetcher) Route(_ context.Context, fromLat, fromLon, toLat, toLon float64) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return polyline.Encode([][2]float64{{fromLat, fromLon}, {toLat, toLon}}), nil
}

func (f *fakeFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func tripRequest() models.CreateTripRequest {
	return models.CreateTripRequest{
		CurrentLocation: "Chicago, IL",
		CurrentLat:      41.8781,
		CurrentLon:      -87.6298,
		PickupLocation:  "Des Moines, IA",
		PickupLat:       41.5868,
		PickupLon:       -93.6250,
		DropoffLocation: "Omaha, NE",
		DropoffLat:      41.2565,
		DropoffLon:      -95.9345,
	}
}

func TestAuthRegisterAndLogin(t *testing.T) {
	f := newFixture(t)

	resp, err := f.auth.Login(models.LoginRequest{Username: "driver1", Password: "hunter2hunter2"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, f.user.ID, resp.User.ID)

	verified, err := f.auth.Verify(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, f.user.ID, verified.ID)
}

func TestAuthBadPassword(t *testing.T) {
	f := newFixture(t)

	_, err := f.auth.Login(models.LoginRequest{Username: "driver1", Password: "wrong-password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = f.auth.Login(models.LoginRequest{Username: "nobody", Password: "hunter2hunter2"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthDuplicateRegistration(t *testing.T) {
	f := newFixture(t)

	_, err := f.auth.Register(models.RegisterRequest{Username: "driver1", Password: "hunter2hunter2"})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestAuthVerifyGarbageToken(t *testing.T) {
	f := newFixture(t)

	_, err := f.auth.Verify("not-a-token")
	assert.Error(t, err)
}

func TestTripCreateGeneratesLogs(t *testing.T) {
	f := newFixture(t)

	trip, err := f.trips.Create(f.user.ID, tripRequest())
	require.NoError(t, err)
	require.NotZero(t, trip.ID)

	details, err := f.trips.Details(trip.ID, f.user.ID)
	require.NoError(t, err)
	require.NotEmpty(t, details.DailySummaries)

	day := details.DailySummaries[0]
	assert.NotEmpty(t, day.Logs)
	assert.Greater(t, day.Miles, 0.0)
	assert.Greater(t, day.DriveHours, 0.0)
}

func TestTripOwnership(t *testing.T) {
	f := newFixture(t)

	trip, err := f.trips.Create(f.user.ID, tripRequest())
	require.NoError(t, err)

	_, err = f.trips.Get(trip.ID, f.user.ID+1)
	assert.ErrorIs(t, err, ErrTripNotFound)

	_, err = f.trips.Details(trip.ID, f.user.ID+1)
	assert.ErrorIs(t, err, ErrTripNotFound)

	err = f.trips.Delete(trip.ID, f.user.ID+1)
	assert.ErrorIs(t, err, ErrTripNotFound)
}

func TestViewTimeline(t *testing.T) {
	f := newFixture(t)

	trip, err := f.trips.Create(f.user.ID, tripRequest())
	require.NoError(t, err)
	details, err := f.trips.Details(trip.ID, f.user.ID)
	require.NoError(t, err)
	date := details.DailySummaries[0].Date

	tl, err := f.views.Timeline(context.Background(), f.sess, trip.ID, date)
	require.NoError(t, err)

	assert.Equal(t, date, tl.Date)
	assert.NotEmpty(t, tl.Placements)
	assert.NotEmpty(t, tl.Transitions)
	assert.Equal(t, len(details.DailySummaries[0].Logs), len(tl.Placements))

	// Every status bucket is present even if empty.
	assert.Len(t, tl.Totals.Minutes, 4)
	assert.Contains(t, tl.Totals.Display[models.StatusDriving], "h ")
}

func TestViewRoute(t *testing.T) {
	f := newFixture(t)

	trip, err := f.trips.Create(f.user.ID, tripRequest())
	require.NoError(t, err)
	details, err := f.trips.Details(trip.ID, f.user.ID)
	require.NoError(t, err)
	date := details.DailySummaries[0].Date

	rv, err := f.views.Route(context.Background(), f.sess, trip.ID, date)
	require.NoError(t, err)

	assert.Equal(t, date, rv.Date)
	assert.NotEmpty(t, rv.Segments)
	for _, seg := range rv.Segments {
		assert.NotEmpty(t, seg.Points)
		assert.NotEmpty(t, seg.Color)
	}
}

func TestViewCachedUntilInvalidated(t *testing.T) {
	f := newFixture(t)

	trip, err := f.trips.Create(f.user.ID, tripRequest())
	require.NoError(t, err)
	details, err := f.trips.Details(trip.ID, f.user.ID)
	require.NoError(t, err)
	date := details.DailySummaries[0].Date

	_, err = f.views.Route(context.Background(), f.sess, trip.ID, date)
	require.NoError(t, err)
	first := f.fetcher.callCount()
	require.Greater(t, first, 0)

	// Second read serves the published view without refetching.
	_, err = f.views.Route(context.Background(), f.sess, trip.ID, date)
	require.NoError(t, err)
	assert.Equal(t, first, f.fetcher.callCount())

	f.views.Invalidate(trip.ID)
	_, err = f.views.Route(context.Background(), f.sess, trip.ID, date)
	require.NoError(t, err)
	assert.Equal(t, first*2, f.fetcher.callCount())
}

func TestViewUnknownTrip(t *testing.T) {
	f := newFixture(t)

	_, err := f.views.Timeline(context.Background(), f.sess, 9999, "2025-03-14")
	assert.ErrorIs(t, err, ErrTripNotFound)
}

func TestSessionRegistryLifecycle(t *testing.T) {
	reg := NewSessionRegistry(&fakeGeocoder{}, nil)

	a := reg.Get("tok-a", 1)
	again := reg.Get("tok-a", 1)
	assert.Same(t, a, again)
	assert.Equal(t, 1, reg.Len())

	b := reg.Get("tok-b", 2)
	assert.NotSame(t, a, b)
	assert.Equal(t, 2, reg.Len())

	reg.Drop("tok-a")
	reg.Drop("tok-a")
	assert.Equal(t, 1, reg.Len())
}

func TestSessionCacheIsolation(t *testing.T) {
	reg := NewSessionRegistry(&fakeGeocoder{}, nil)
	a := reg.Get("tok-a", 1)
	b := reg.Get("tok-b", 2)

	name, err := a.Resolver.Resolve(context.Background(), 41.0, -95.0)
	require.NoError(t, err)
	assert.Equal(t, "Somewhere", name)

	assert.Equal(t, 1, a.Resolver.Cache().Len())
	assert.Equal(t, 0, b.Resolver.Cache().Len())
}
