package roster

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanonicalKey(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Name", "name"},
		{"  YEAR  ", "year"},
		{"Market  Value", "market_value"},
		{"contract   until ", "contract_until"},
		{"   ", ""},
		{"", ""},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, CanonicalKey(tc.in), "key %q", tc.in)
	}
}

func TestNormalizeCanonicalProjection(t *testing.T) {
	schema := Players("Sub-20")

	raw := []map[string]string{{
		"  NaMe ":     "Da Silva",
		"YEAR":        "2023",
		"Position":    "Forward",
		"COMPETITION": "World",
		"goals":       "4",
		"Minutes":     "270",
		"Category":    "Sub-17",
		"notes":       "dropped",
		"   ":         "stray blank column",
	}}

	recs := schema.Normalize(raw)
	require.Len(t, recs, 1)

	rec := recs[0]
	require.Len(t, rec, len(schema.Columns))
	for _, col := range schema.Columns {
		require.Contains(t, rec, col)
	}
	require.NotContains(t, rec, "notes")

	require.Equal(t, "Da Silva", rec[ColName].Text())
	y, ok := rec[ColYear].Int()
	require.True(t, ok)
	require.Equal(t, 2023, y)
	require.Equal(t, "Sub-17", rec[ColCategory].Text())
}

func TestNormalizeMissingAndDefaults(t *testing.T) {
	schema := Players("Sub-20")

	recs := schema.Normalize([]map[string]string{{
		"name": "Oliveira",
		"year": "2022",
	}})
	require.Len(t, recs, 1)

	rec := recs[0]
	require.True(t, rec[ColGoals].IsMissing(), "absent numeric column must be missing, not zero")
	require.True(t, rec[ColPosition].IsMissing())
	require.Equal(t, "Sub-20", rec[ColCategory].Text(), "category falls back to the configured default")
}

func TestNormalizeNumericCoercion(t *testing.T) {
	schema := Players("Sub-20")

	cases := []struct {
		raw     string
		want    int
		missing bool
	}{
		{"2019", 2019, false},
		{" 7 ", 7, false},
		{"abc", 0, true},
		{"", 0, true},
		{"12.5", 0, true},
	}
	for _, tc := range cases {
		recs := schema.Normalize([]map[string]string{{"name": "x", "goals": tc.raw}})
		require.Len(t, recs, 1)
		got, ok := recs[0][ColGoals].Int()
		if tc.missing {
			require.True(t, recs[0][ColGoals].IsMissing(), "raw %q", tc.raw)
		} else {
			require.True(t, ok, "raw %q", tc.raw)
			require.Equal(t, tc.want, got)
		}
	}
}

func TestNormalizeKeepsBlankTextDistinctFromMissing(t *testing.T) {
	schema := Titles()

	recs := schema.Normalize([]map[string]string{{
		"category": "",
		"title":    "Copa São Paulo",
	}})
	require.Len(t, recs, 1)

	rec := recs[0]
	require.False(t, rec[ColCategory].IsMissing(), "explicit blank is not missing")
	require.Equal(t, "", rec[ColCategory].Text())
	require.True(t, rec[ColYear].IsMissing())
}

func TestValidateHeader(t *testing.T) {
	schema := Players("Sub-20")

	require.NoError(t, schema.ValidateHeader([]string{
		"Name", " Year", "Position", "Competition", "GOALS", "Minutes", "Category",
	}))

	err := schema.ValidateHeader([]string{"name", "year", "position", "competition", "minutes", "category"})
	require.Error(t, err)
	var mce *MissingColumnsError
	require.ErrorAs(t, err, &mce)
	require.Equal(t, []string{ColGoals}, mce.Columns)
}
