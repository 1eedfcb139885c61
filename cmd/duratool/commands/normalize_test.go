package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duratypes/duratypes-go/pkg/duration"
)

const timeoutsYAML = `connect: 10s
idle: PT5M
retention: 2 weeks
grace: -30s
poll: 15
`

func writeTestFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "durations.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDurations(t *testing.T) {
	d, err := LoadDurations(writeTestFile(t, timeoutsYAML))
	require.NoError(t, err)
	assert.Equal(t, Durations{
		"connect":   10,
		"idle":      300,
		"retention": 1209600,
		"grace":     -30,
		"poll":      15,
	}, d)
}

func TestLoadDurations_Empty(t *testing.T) {
	d, err := LoadDurations(writeTestFile(t, ""))
	require.NoError(t, err)
	assert.Empty(t, d)
	assert.NotNil(t, d)
}

func TestLoadDurations_Errors(t *testing.T) {
	_, err := LoadDurations(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = LoadDurations(writeTestFile(t, "connect: 10x\n"))
	assert.ErrorIs(t, err, duration.ErrInvalidFormat)

	_, err = LoadDurations(writeTestFile(t, "connect: [1, 2]\n"))
	assert.ErrorIs(t, err, duration.ErrInvalidType)
}

func TestLoadDurations_NullEntries(t *testing.T) {
	for _, src := range []string{"connect: ~\n", "idle: 1m\nconnect: null\n", "connect:\n"} {
		_, err := LoadDurations(writeTestFile(t, src))
		require.Error(t, err, src)
		assert.ErrorIs(t, err, duration.ErrInvalidValue, src)
		assert.Contains(t, err.Error(), "connect: duration cannot be nil", src)
	}
}

func TestRunNormalize_NullEntryWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	err := RunNormalize(writeTestFile(t, "connect: ~\nidle:\n"), FormatJSON, "", &buf)
	assert.ErrorIs(t, err, duration.ErrInvalidValue)
	assert.Empty(t, buf.String())
}

func TestLoadDurations_Alias(t *testing.T) {
	d, err := LoadDurations(writeTestFile(t, "base: &b 2h\nidle: *b\n"))
	require.NoError(t, err)
	assert.Equal(t, Durations{"base": 7200, "idle": 7200}, d)
}

func TestRunNormalize_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RunNormalize(writeTestFile(t, timeoutsYAML), FormatYAML, "", &buf))

	want := "connect: 10\ngrace: -30\nidle: 300\npoll: 15\nretention: 1209600\n"
	assert.Equal(t, want, buf.String())
}

func TestRunNormalize_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RunNormalize(writeTestFile(t, timeoutsYAML), FormatJSON, "", &buf))
	assert.JSONEq(t, `{"connect":10,"grace":-30,"idle":300,"poll":15,"retention":1209600}`, buf.String())
}

func TestRunNormalize_CBOR(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RunNormalize(writeTestFile(t, timeoutsYAML), FormatCBOR, "", &buf))

	var got map[string]int64
	require.NoError(t, cbor.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, map[string]int64{
		"connect":   10,
		"grace":     -30,
		"idle":      300,
		"poll":      15,
		"retention": 1209600,
	}, got)

	var again bytes.Buffer
	require.NoError(t, RunNormalize(writeTestFile(t, timeoutsYAML), FormatCBOR, "", &again))
	assert.Equal(t, buf.Bytes(), again.Bytes(), "canonical encoding is deterministic")
}

func TestRunNormalize_OutputFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.json")

	var buf bytes.Buffer
	require.NoError(t, RunNormalize(writeTestFile(t, "idle: 1m\n"), FormatJSON, out, &buf))
	assert.Empty(t, buf.String())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.JSONEq(t, `{"idle":60}`, string(data))
}

func TestRunNormalize_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := RunNormalize(writeTestFile(t, timeoutsYAML), "toml", "", &buf)
	assert.EqualError(t, err, "unknown format: toml (supported: yaml, json, cbor)")
}
