package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCachedDialsLazilyAndRespectsTTL(t *testing.T) {
	ctx := context.Background()

	dials := 0
	inner := NewMemory()
	inner.CreateTab("Jogadores", []string{"name"})

	c := NewCached(time.Hour, func(context.Context) (Store, error) {
		dials++
		return inner, nil
	})

	now := time.Unix(1700000000, 0)
	c.now = func() time.Time { return now }

	require.Zero(t, dials, "nothing dialed before first use")

	_, err := c.Read(ctx, "Jogadores")
	require.NoError(t, err)
	require.Equal(t, 1, dials)

	_, err = c.Read(ctx, "Jogadores")
	require.NoError(t, err)
	require.Equal(t, 1, dials, "client reused within the TTL")

	now = now.Add(2 * time.Hour)
	_, err = c.Read(ctx, "Jogadores")
	require.NoError(t, err)
	require.Equal(t, 2, dials, "expired client re-dialed")
}

func TestCachedSurfacesDialError(t *testing.T) {
	c := NewCached(time.Minute, func(context.Context) (Store, error) {
		return nil, errors.New("bad credentials")
	})

	_, err := c.Read(context.Background(), "Jogadores")
	require.Error(t, err)

	err = c.Append(context.Background(), "Jogadores", nil)
	require.Error(t, err)
}
