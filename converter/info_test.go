package converter

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	location := filepath.Join(t.TempDir(), "input.csv")
	require.NoError(t, os.WriteFile(location, []byte(content), 0o644))
	return location
}

func TestInfo(t *testing.T) {
	svc := New()
	content := "name,age,city\nAlice,25,Paris\nBob,30,Rome\nCarol,35,Oslo\nDave,40,Bern\n"
	location := writeCSV(t, content)

	info, err := svc.Info(context.Background(), location)
	require.NoError(t, err)

	assert.EqualValues(t, len(content), info.FileSize)
	assert.EqualValues(t, 4, info.RowCount)
	assert.EqualValues(t, 3, info.ColumnCount)
	assert.EqualValues(t, []string{"name", "age", "city"}, info.Columns)
	assert.EqualValues(t, "utf-8", info.FileEncoding)
	assert.EqualValues(t, ",", info.DetectedDelimiter)

	// Sample capped at 3 records, rendered records-shaped.
	require.EqualValues(t, 3, len(info.SampleData))
	data, err := json.Marshal(info.SampleData[0])
	require.NoError(t, err)
	assert.EqualValues(t, `{"name":"Alice","age":"25","city":"Paris"}`, string(data))
}

func TestInfo_LongFileProbesLeadingRecordsOnly(t *testing.T) {
	svc := New()
	var sb strings.Builder
	sb.WriteString("a,b\n")
	for i := 0; i < 50; i++ {
		sb.WriteString("1,2\n")
	}
	location := writeCSV(t, sb.String())

	info, err := svc.Info(context.Background(), location)
	require.NoError(t, err)

	// The full file is scanned for the line count even though only the
	// leading records are parsed for structure.
	assert.EqualValues(t, 50, info.RowCount)
	assert.EqualValues(t, 2, info.ColumnCount)
	assert.EqualValues(t, 3, len(info.SampleData))
}

func TestInfo_EmptyFile(t *testing.T) {
	svc := New()
	location := writeCSV(t, "")

	info, err := svc.Info(context.Background(), location)
	require.NoError(t, err)

	assert.EqualValues(t, 0, info.FileSize)
	assert.EqualValues(t, 0, info.RowCount)
	assert.EqualValues(t, 0, info.ColumnCount)
	assert.Empty(t, info.Columns)
	assert.Empty(t, info.SampleData)
	assert.EqualValues(t, "utf-8", info.FileEncoding)
	assert.EqualValues(t, ",", info.DetectedDelimiter)
}

func TestInfo_SingleColumnSynthesisesNames(t *testing.T) {
	svc := New()
	location := writeCSV(t, "value\n1\n2\n")

	info, err := svc.Info(context.Background(), location)
	require.NoError(t, err)

	assert.EqualValues(t, []string{"column_0"}, info.Columns)
	assert.EqualValues(t, 1, info.ColumnCount)
}

func TestInfo_NotFound(t *testing.T) {
	svc := New()
	_, err := svc.Info(context.Background(), filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
	assert.EqualValues(t, CategoryNotFound, CategoryOf(err))
}

func TestInfo_NoTrailingNewline(t *testing.T) {
	svc := New()
	location := writeCSV(t, "a,b\n1,2")

	info, err := svc.Info(context.Background(), location)
	require.NoError(t, err)
	assert.EqualValues(t, 1, info.RowCount)
}
