package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResponses(t *testing.T) {
	t.Run("all answered", func(t *testing.T) {
		responses, err := parseResponses("0, 1,2,3")
		require.NoError(t, err)
		require.Len(t, responses, 4)
		assert.Equal(t, 3, *responses[3])
	})

	t.Run("gap stays unanswered", func(t *testing.T) {
		responses, err := parseResponses("1,,2")
		require.NoError(t, err)
		require.Len(t, responses, 3)
		assert.Nil(t, responses[1])
	})

	t.Run("not a number", func(t *testing.T) {
		_, err := parseResponses("1,x")
		assert.ErrorContains(t, err, "response 2")
	})
}

func TestScoreCommand(t *testing.T) {
	t.Run("inline responses as json", func(t *testing.T) {
		cmd := newScoreCmd()
		out := new(bytes.Buffer)
		cmd.SetOut(out)
		cmd.SetArgs([]string{"-q", "gad-7", "-r", "3,3,3,3,3,3,3", "--format", "json"})

		require.NoError(t, cmd.Execute())
		assert.Contains(t, out.String(), `"total_score": 21`)
		assert.Contains(t, out.String(), `"crisis": true`)
	})

	t.Run("answers file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "answers.yaml")
		content := "questionnaire_id: phq-9\nresponses: [0, 0, 0, 0, 0, 0, 0, 0, 1]\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		cmd := newScoreCmd()
		out := new(bytes.Buffer)
		cmd.SetOut(out)
		cmd.SetArgs([]string{"--file", path})

		require.NoError(t, cmd.Execute())
		assert.Contains(t, out.String(), "total_score: 1")
	})

	t.Run("unanswered item", func(t *testing.T) {
		cmd := newScoreCmd()
		cmd.SetOut(new(bytes.Buffer))
		cmd.SetErr(new(bytes.Buffer))
		cmd.SetArgs([]string{"-q", "gad-7", "-r", "1,1,,1,1,1,1"})

		assert.ErrorContains(t, cmd.Execute(), "item 3")
	})
}

func TestListAndExport(t *testing.T) {
	list := newListCmd()
	out := new(bytes.Buffer)
	list.SetOut(out)
	list.SetArgs([]string{})
	require.NoError(t, list.Execute())
	for _, id := range []string{"phq-9", "gad-7", "ghq-12"} {
		assert.Contains(t, out.String(), id)
	}

	export := newExportCmd()
	out.Reset()
	export.SetOut(out)
	export.SetArgs([]string{"--format", "yaml"})
	require.NoError(t, export.Execute())
	assert.Equal(t, 3, strings.Count(out.String(), "severity_bands:"))
}
