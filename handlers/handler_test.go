package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rferraz1/interfacefinalvasco/roster"
	"github.com/rferraz1/interfacefinalvasco/store"
)

const (
	testAdminPassword = "depanalise"
	testJWTKey        = "test-signing-key"
)

var testTabs = roster.Tabs{Players: "Jogadores", Titles: "Titulos", Market: "Transfermarkt"}

func newTestHandler(t *testing.T) (*Handler, *store.Memory) {
	t.Helper()

	m := store.NewMemory()
	m.CreateTab(testTabs.Players, roster.Players("Sub-20").Columns)
	m.CreateTab(testTabs.Titles, roster.Titles().Columns)
	m.CreateTab(testTabs.Market, roster.Market().Columns)

	require.NoError(t, m.Append(context.Background(), testTabs.Players, [][]string{
		{"Da Silva", "2022", "Forward", "World", "3", "180", "Sub-20"},
		{"SILVA Jr", "2020", "Winger", "Other", "0", "45", "Sub-17"},
		{"Oliveira", "2021", "Midfielder", "South American", "1", "90", "Sub-20"},
	}))
	require.NoError(t, m.Append(context.Background(), testTabs.Titles, [][]string{
		{"Sub-20", "Copinha", "2023"},
	}))

	data := roster.NewDataset(m, testTabs, "Sub-20")
	return New(data, []byte(testJWTKey), testAdminPassword), m
}
