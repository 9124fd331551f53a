package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryUnknownTab(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	_, err := m.Read(ctx, "Jogadores")
	require.ErrorIs(t, err, ErrTabNotFound)
	require.ErrorIs(t, m.Append(ctx, "Jogadores", [][]string{{"x"}}), ErrTabNotFound)
	require.ErrorIs(t, m.Delete(ctx, "Jogadores", 2), ErrTabNotFound)
}

func TestMemoryReadKeysRowsByHeader(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	m.CreateTab("Titulos", []string{"category", "title", "year"})
	require.NoError(t, m.Append(ctx, "Titulos", [][]string{
		{"Sub-20", "Copinha", "2023"},
		{"Sub-17", "Estadual"}, // short row: trailing cells read empty
	}))

	rows, err := m.Read(ctx, "Titulos")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "Copinha", rows[0]["title"])
	require.Equal(t, "", rows[1]["year"])
}

func TestMemoryDeletePositions(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	m.CreateTab("Jogadores", []string{"name"})
	require.NoError(t, m.Append(ctx, "Jogadores", [][]string{{"A"}, {"B"}, {"C"}}))

	// header row is position 1; first data row is position 2
	require.Error(t, m.Delete(ctx, "Jogadores", 1))
	require.NoError(t, m.Delete(ctx, "Jogadores", 2))
	require.Equal(t, [][]string{{"B"}, {"C"}}, m.Rows("Jogadores"))

	require.Error(t, m.Delete(ctx, "Jogadores", 4), "only two data rows remain")
}
