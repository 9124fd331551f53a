package roster

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadCSV(t *testing.T) {
	in := "Name, Year ,Goals\nDa Silva,2022,3\nOliveira,2021,\n"

	header, rows, err := ReadCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, []string{"Name", "Year ", "Goals"}, header)
	require.Len(t, rows, 2)
	require.Equal(t, "Da Silva", rows[0]["Name"])
	require.Equal(t, "", rows[1]["Goals"])
}

func TestReadCSVEmpty(t *testing.T) {
	_, _, err := ReadCSV(strings.NewReader(""))
	require.Error(t, err)
}

func TestWriteCSVCanonicalOrder(t *testing.T) {
	schema := Titles()
	recs := schema.Normalize([]map[string]string{
		{"Title": "Copinha", "Category": "Sub-20", "Year": "2023"},
	})

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, schema, recs))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Equal(t, "category,title,year", lines[0])
	require.Equal(t, "Sub-20,Copinha,2023", lines[1])
}

func TestWriteCSVMissingAsEmptyCell(t *testing.T) {
	schema := Titles()
	recs := schema.Normalize([]map[string]string{
		{"title": "Taça Guanabara"},
	})

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, schema, recs))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Equal(t, ",Taça Guanabara,", lines[1])
}
