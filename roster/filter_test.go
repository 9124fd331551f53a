package roster

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func player(name string, year int, pos, comp, cat string) Record {
	return Record{
		ColName:        TextValue(name),
		ColYear:        IntValue(year),
		ColPosition:    TextValue(pos),
		ColCompetition: TextValue(comp),
		ColGoals:       IntValue(0),
		ColMinutes:     IntValue(0),
		ColCategory:    TextValue(cat),
	}
}

func TestFilterIdentityWhenInactive(t *testing.T) {
	in := []Record{
		player("Da Silva", 2022, "Forward", "World", "Sub-20"),
		player("Oliveira", 2021, "Winger", "Other", "Sub-17"),
	}

	out := PlayerFilter{}.Apply(in)
	require.Equal(t, in, out)
	require.Len(t, out, 2)
}

func TestFilterNameSubstring(t *testing.T) {
	in := []Record{
		player("Da Silva", 2022, "Forward", "World", "Sub-20"),
		player("SILVA Jr", 2020, "Winger", "Other", "Sub-17"),
		player("Oliveira", 2021, "Midfielder", "South American", "Sub-20"),
	}

	out := PlayerFilter{Name: "silva"}.Apply(in)
	require.Len(t, out, 2)
	require.Equal(t, "Da Silva", out[0][ColName].Text())
	require.Equal(t, "SILVA Jr", out[1][ColName].Text())
}

func TestFilterConjunction(t *testing.T) {
	year := 2022
	in := []Record{
		player("Da Silva", 2022, "Forward", "World", "Sub-20"),
		player("Da Silva", 2021, "Forward", "World", "Sub-20"),
		player("Coutinho", 2022, "Forward", "Other", "Sub-20"),
	}

	out := PlayerFilter{Competition: "World", Year: &year}.Apply(in)
	require.Len(t, out, 1)
	y, _ := out[0][ColYear].Int()
	require.Equal(t, 2022, y)
	require.Equal(t, "World", out[0][ColCompetition].Text())
}

func TestFilterMissingValuesNeverMatchActivePredicates(t *testing.T) {
	year := 2022
	rec := Record{
		ColName: Missing,
		ColYear: Missing,
	}

	require.Empty(t, PlayerFilter{Name: "silva"}.Apply([]Record{rec}))
	require.Empty(t, PlayerFilter{Year: &year}.Apply([]Record{rec}))
}

func TestSortPlayers(t *testing.T) {
	noYear := player("Zagallo", 0, "", "", "")
	noYear[ColYear] = Missing

	in := []Record{
		player("Bruno", 2023, "", "", ""),
		noYear,
		player("Alan", 2021, "", "", ""),
		player("Alan", 2023, "", "", ""),
	}

	out := SortPlayers(in)
	require.Equal(t, "Alan", out[0][ColName].Text())
	require.Equal(t, "Alan", out[1][ColName].Text())
	require.Equal(t, "Bruno", out[2][ColName].Text())
	require.Equal(t, "Zagallo", out[3][ColName].Text(), "missing year sorts last")

	// input order untouched
	require.Equal(t, "Bruno", in[0][ColName].Text())
}

func TestSortTitlesDescending(t *testing.T) {
	mk := func(title string, year int) Record {
		return Record{ColCategory: TextValue("Sub-20"), ColTitle: TextValue(title), ColYear: IntValue(year)}
	}
	in := []Record{mk("Taça Rio", 2019), mk("Copinha", 2023), mk("Estadual", 2021)}

	out := SortTitles(in)
	require.Equal(t, "Copinha", out[0][ColTitle].Text())
	require.Equal(t, "Estadual", out[1][ColTitle].Text())
	require.Equal(t, "Taça Rio", out[2][ColTitle].Text())
}

func TestSummarize(t *testing.T) {
	a := player("A", 2022, "", "", "")
	a[ColGoals] = IntValue(3)
	a[ColMinutes] = IntValue(180)
	b := player("B", 2022, "", "", "")
	b[ColGoals] = Missing
	b[ColMinutes] = IntValue(90)

	got := Summarize([]Record{a, b}, 5)
	require.Equal(t, Summary{Convocations: 2, Goals: 3, Minutes: 270, Titles: 5}, got)
}
