package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	cases := []struct {
		name, path string
		want       Format
	}{
		{"", "", FormatJSON},
		{"YAML", "", FormatYAML},
		{"", "backup.yml", FormatYAML},
		{"", "backup.toml", FormatTOML},
		{"json", "backup.toml", FormatJSON},
	}
	for _, tc := range cases {
		got, err := ParseFormat(tc.name, tc.path)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}

	_, err := ParseFormat("xml", "")
	assert.Error(t, err)
}

func TestExportImportRoundTrip(t *testing.T) {
	tasks := []Task{{Title: "Buy milk", ID: 3}, {Title: "Walk: dog", ID: 10}}
	for _, format := range []Format{FormatJSON, FormatYAML, FormatTOML} {
		data, err := Marshal(tasks, format)
		require.NoError(t, err, "format %s", format)

		got, err := Unmarshal(data, format)
		require.NoError(t, err, "format %s", format)
		assert.Equal(t, tasks, got, "format %s", format)
	}
}

func TestUnmarshalRejectsBlankTitles(t *testing.T) {
	_, err := Unmarshal([]byte("- title: \"  \"\n  id: 1\n"), FormatYAML)
	assert.Error(t, err)
}

func TestUnmarshalEmptyDocuments(t *testing.T) {
	got, err := Unmarshal([]byte(""), FormatTOML)
	require.NoError(t, err)
	assert.Equal(t, []Task{}, got)

	got, err = Unmarshal([]byte("[]"), FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, []Task{}, got)
}
