package converter

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/simplifiedchinese"
)

func TestConvertString_Records(t *testing.T) {
	svc := New()
	out, err := svc.ConvertString("name,age\nAlice,25\nBob,30", nil)
	require.NoError(t, err)
	// Values stay strings and keys follow header order.
	assert.EqualValues(t, `[{"name":"Alice","age":"25"},{"name":"Bob","age":"30"}]`, out)
}

func TestConvertString_RecordsDropRaggedRows(t *testing.T) {
	svc := New()
	input := "a,b,c\n1,2,3\nshort,row\n4,5,6\n1,2,3,4"
	out, err := svc.ConvertString(input, nil)
	require.NoError(t, err)
	assert.EqualValues(t, `[{"a":"1","b":"2","c":"3"},{"a":"4","b":"5","c":"6"}]`, out)

	// The values orient keeps every row, ragged or not.
	options := DefaultOptions()
	options.Orient = OrientValues
	out, err = svc.ConvertString(input, options)
	require.NoError(t, err)
	assert.EqualValues(t, `[["1","2","3"],["short","row"],["4","5","6"],["1","2","3","4"]]`, out)
}

func TestConvertString_Split(t *testing.T) {
	svc := New()
	options := DefaultOptions()
	options.Orient = OrientSplit
	out, err := svc.ConvertString("a,b\n1,2\nshort", options)
	require.NoError(t, err)
	assert.EqualValues(t, `{"columns":["a","b"],"data":[["1","2"],["short"]]}`, out)
}

func TestConvertString_SkipRowsWithHeader(t *testing.T) {
	svc := New()
	options := DefaultOptions()
	options.Orient = OrientSplit
	options.SkipRows = 2
	// 5 physical records: two skipped, the next becomes the header, two data.
	out, err := svc.ConvertString("junk1\njunk2\na,b\n1,2\n3,4", options)
	require.NoError(t, err)
	assert.EqualValues(t, `{"columns":["a","b"],"data":[["1","2"],["3","4"]]}`, out)
}

func TestConvertString_SkipRowsBeyondInput(t *testing.T) {
	svc := New()
	options := DefaultOptions()
	options.SkipRows = 10
	out, err := svc.ConvertString("a,b\n1,2", options)
	require.NoError(t, err)
	assert.EqualValues(t, `[]`, out)
}

func TestConvertString_NoHeaderSynthesisesColumns(t *testing.T) {
	svc := New()
	options := DefaultOptions()
	options.Header = false
	out, err := svc.ConvertString("1,2,3\n4,5,6", options)
	require.NoError(t, err)
	assert.EqualValues(t, `[{"column_0":"1","column_1":"2","column_2":"3"},{"column_0":"4","column_1":"5","column_2":"6"}]`, out)
}

func TestConvertString_CustomDelimiter(t *testing.T) {
	svc := New()
	options := DefaultOptions()
	options.Delimiter = ";"
	out, err := svc.ConvertString("a;b\n1;2", options)
	require.NoError(t, err)
	assert.EqualValues(t, `[{"a":"1","b":"2"}]`, out)
}

func TestConvertString_QuotedFields(t *testing.T) {
	svc := New()
	out, err := svc.ConvertString("a,b\n\"1,5\",\"line\nbreak\"", nil)
	require.NoError(t, err)
	assert.EqualValues(t, `[{"a":"1,5","b":"line\nbreak"}]`, out)
}

func TestConvertString_NonASCIIPreserved(t *testing.T) {
	svc := New()
	out, err := svc.ConvertString("名字,城市\n张三,北京", nil)
	require.NoError(t, err)
	assert.EqualValues(t, `[{"名字":"张三","城市":"北京"}]`, out)
}

func TestConvertString_Indent(t *testing.T) {
	svc := New()
	options := DefaultOptions()
	options.Orient = OrientValues
	indent := 2
	options.Indent = &indent
	out, err := svc.ConvertString("a,b\n1,2", options)
	require.NoError(t, err)
	assert.EqualValues(t, "[\n  [\n    \"1\",\n    \"2\"\n  ]\n]", out)
}

func TestConvertString_IndentedRecordsStayEquivalent(t *testing.T) {
	svc := New()
	compact, err := svc.ConvertString("a,b\n1,2", nil)
	require.NoError(t, err)

	options := DefaultOptions()
	indent := 4
	options.Indent = &indent
	pretty, err := svc.ConvertString("a,b\n1,2", options)
	require.NoError(t, err)

	assert.NotEqual(t, compact, pretty)
	assert.Contains(t, pretty, "\n")

	var fromCompact, fromPretty interface{}
	require.NoError(t, json.Unmarshal([]byte(compact), &fromCompact))
	require.NoError(t, json.Unmarshal([]byte(pretty), &fromPretty))
	assert.EqualValues(t, fromCompact, fromPretty)
}

func TestConvertString_ValuesRoundTrip(t *testing.T) {
	svc := New()
	options := DefaultOptions()
	options.Orient = OrientValues
	out, err := svc.ConvertString("a,b\n1,2\n3,4", options)
	require.NoError(t, err)

	// Re-serialising the decoded rows must reproduce the exact text.
	var rows [][]string
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	again, err := json.Marshal(rows)
	require.NoError(t, err)
	assert.EqualValues(t, out, string(again))
}

func TestConvertString_EmptyInput(t *testing.T) {
	svc := New()
	for _, orient := range []Orient{OrientRecords, OrientValues} {
		options := DefaultOptions()
		options.Orient = orient
		out, err := svc.ConvertString("", options)
		require.NoError(t, err)
		assert.EqualValues(t, `[]`, out, "orient %v", orient)
	}
	options := DefaultOptions()
	options.Orient = OrientSplit
	out, err := svc.ConvertString("", options)
	require.NoError(t, err)
	assert.EqualValues(t, `{"columns":[],"data":[]}`, out)
}

func TestConvertString_InvalidOrient(t *testing.T) {
	svc := New()
	options := DefaultOptions()
	options.Orient = "pivot"
	_, err := svc.ConvertString("a,b\n1,2", options)
	require.Error(t, err)
	assert.EqualValues(t, CategoryOption, CategoryOf(err))
}

func TestConvertString_MalformedQuoting(t *testing.T) {
	svc := New()
	_, err := svc.ConvertString("a,b\n\"unterminated,2", nil)
	require.Error(t, err)
	assert.EqualValues(t, CategoryParse, CategoryOf(err))
}

func TestConvertFile_NotFound(t *testing.T) {
	svc := New()
	missing := filepath.Join(t.TempDir(), "missing.csv")
	_, err := svc.ConvertFileToFile(context.Background(), missing, "", nil)
	require.Error(t, err)
	assert.EqualValues(t, CategoryNotFound, CategoryOf(err))

	// A failed conversion must not leave an output file behind.
	_, statErr := os.Stat(filepath.Join(t.TempDir(), "missing.json"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestConvertFile_InvalidOrientBeforeIO(t *testing.T) {
	svc := New()
	options := DefaultOptions()
	options.Orient = "pivot"
	// Validation fires before the source is opened, so the missing file is
	// never reported.
	_, err := svc.ConvertFile(context.Background(), "/nonexistent/input.csv", options)
	require.Error(t, err)
	assert.EqualValues(t, CategoryOption, CategoryOf(err))
}

func TestConvertFileToFile_DefaultDestination(t *testing.T) {
	svc := New()
	dir := t.TempDir()
	source := filepath.Join(dir, "people.csv")
	require.NoError(t, os.WriteFile(source, []byte("name,age\nAlice,25\n"), 0o644))

	dest, err := svc.ConvertFileToFile(context.Background(), source, "", nil)
	require.NoError(t, err)
	assert.EqualValues(t, filepath.Join(dir, "people.json"), dest)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.EqualValues(t, `[{"name":"Alice","age":"25"}]`, string(data))
}

func TestConvertFileToFile_ExplicitDestination(t *testing.T) {
	svc := New()
	dir := t.TempDir()
	source := filepath.Join(dir, "people.csv")
	dest := filepath.Join(dir, "out", "result.json")
	require.NoError(t, os.WriteFile(source, []byte("name\nAlice\n"), 0o644))

	written, err := svc.ConvertFileToFile(context.Background(), source, dest, nil)
	require.NoError(t, err)
	assert.EqualValues(t, dest, written)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.EqualValues(t, `[{"name":"Alice"}]`, string(data))
}

func TestConvertFile_GBKEncoding(t *testing.T) {
	svc := New()
	dir := t.TempDir()
	source := filepath.Join(dir, "gbk.csv")

	encoded, err := simplifiedchinese.GBK.NewEncoder().Bytes([]byte("名字,城市\n张三,北京\n"))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(source, encoded, 0o644))

	options := DefaultOptions()
	options.Encoding = "gbk"
	out, err := svc.ConvertFile(context.Background(), source, options)
	require.NoError(t, err)
	assert.EqualValues(t, `[{"名字":"张三","城市":"北京"}]`, out)
}

func TestConvertFile_InvalidUTF8(t *testing.T) {
	svc := New()
	dir := t.TempDir()
	source := filepath.Join(dir, "broken.csv")
	require.NoError(t, os.WriteFile(source, []byte{'a', ',', 'b', '\n', 0xff, 0xfe, ',', 'x'}, 0o644))

	_, err := svc.ConvertFile(context.Background(), source, nil)
	require.Error(t, err)
	assert.EqualValues(t, CategoryEncoding, CategoryOf(err))
}

func TestConvertFile_UnknownEncoding(t *testing.T) {
	svc := New()
	dir := t.TempDir()
	source := filepath.Join(dir, "plain.csv")
	require.NoError(t, os.WriteFile(source, []byte("a,b\n1,2\n"), 0o644))

	options := DefaultOptions()
	options.Encoding = "no-such-encoding"
	_, err := svc.ConvertFile(context.Background(), source, options)
	require.Error(t, err)
	assert.EqualValues(t, CategoryEncoding, CategoryOf(err))
}

func TestJSONDestination(t *testing.T) {
	cases := []struct {
		in  string
		out string
	}{
		{"data.csv", "data.json"},
		{"/tmp/data.csv", "/tmp/data.json"},
		{"/tmp/data", "/tmp/data.json"},
		{"/tmp/archive.tar.csv", "/tmp/archive.tar.json"},
	}
	for i, tc := range cases {
		if got := jsonDestination(tc.in); got != tc.out {
			t.Fatalf("case %d: jsonDestination(%q) = %q, want %q", i, tc.in, got, tc.out)
		}
	}
}
