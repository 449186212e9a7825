package geocode

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGeocoder struct {
	mu    sync.Mutex
	calls int
	place *Place
	err   error
}

func (f *fakeGeocoder) Reverse(_ context.Context, lat, lon float64) (*Place, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.place, nil
}

func TestResolveCachesSuccess(t *testing.T) {
	geocoder := &fakeGeocoder{place: &Place{Name: "Joliet Truck Plaza"}}
	resolver := NewResolver(geocoder, NewCache(), nil)

	name, err := resolver.Resolve(context.Background(), 41.5250, -88.0817)
	require.NoError(t, err)
	assert.Equal(t, "Joliet Truck Plaza", name)

	// Same coordinates: answered from cache, no second external call.
	name, err = resolver.Resolve(context.Background(), 41.5250, -88.0817)
	require.NoError(t, err)
	assert.Equal(t, "Joliet Truck Plaza", name)
	assert.Equal(t, 1, geocoder.calls)
}

func TestResolveFailureIsSticky(t *testing.T) {
	geocoder := &fakeGeocoder{err: errors.New("upstream down")}
	resolver := NewResolver(geocoder, NewCache(), nil)

	name, err := resolver.Resolve(context.Background(), 40.0, -90.0)
	require.NoError(t, err, "lookup failures are recovered, not surfaced")
	assert.Empty(t, name)

	// The failure is cached for the session: no retry.
	name, err = resolver.Resolve(context.Background(), 40.0, -90.0)
	require.NoError(t, err)
	assert.Empty(t, name)
	assert.Equal(t, 1, geocoder.calls)
}

func TestResolveDistinctCoordinates(t *testing.T) {
	geocoder := &fakeGeocoder{place: &Place{Address: Address{City: "Des Moines"}}}
	resolver := NewResolver(geocoder, NewCache(), nil)

	_, err := resolver.Resolve(context.Background(), 41.6, -93.6)
	require.NoError(t, err)
	_, err = resolver.Resolve(context.Background(), 41.7, -93.6)
	require.NoError(t, err)

	assert.Equal(t, 2, geocoder.calls)
	assert.Equal(t, 2, resolver.Cache().Len())
}

func TestBestNamePreference(t *testing.T) {
	cases := []struct {
		place Place
		want  string
	}{
		{Place{Name: "Flying J #612", Address: Address{City: "Gary"}}, "Flying J #612"},
		{Place{Address: Address{City: "Gary", County: "Lake County"}}, "Gary"},
		{Place{Address: Address{Village: "Minooka", County: "Grundy County"}}, "Minooka"},
		{Place{Address: Address{County: "Grundy County"}}, "Grundy County"},
		{Place{DisplayName: "I-80, Nebraska, USA"}, "I-80, Nebraska, USA"},
		{Place{}, ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.place.BestName())
	}
}
