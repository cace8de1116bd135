package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")

	require.NoError(t, generate(dir))

	data, err := os.ReadFile(filepath.Join(dir, "suite.schema.json"))
	require.NoError(t, err)

	var doc struct {
		Title      string                     `json:"title"`
		Required   []string                   `json:"required"`
		Properties map[string]json.RawMessage `json:"properties"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "TestSuite", doc.Title)
	assert.Equal(t, []string{"cases"}, doc.Required)
	assert.Contains(t, doc.Properties, "templates")
	assert.Contains(t, string(doc.Properties["cases"]), "expect_error")
	assert.Contains(t, string(doc.Properties["cases"]), "malformed_expression")
}
