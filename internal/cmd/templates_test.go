package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/alphasquad/create-storefront/internal/output"
)

func TestWriteTemplates_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeTemplates(&buf, output.FormatTable))

	out := buf.String()
	for _, want := range []string{
		"ID", "PACKAGE", "REPOSITORY",
		"basic", "standard", "advance",
		"@alphasquad/saleor-template-standard",
		"AlphaSquadTech/saleor-template-advance",
		"(default)",
	} {
		assert.Contains(t, out, want)
	}
}

func TestWriteTemplates_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeTemplates(&buf, output.FormatJSON))

	var infos []templateInfo
	require.NoError(t, json.Unmarshal(buf.Bytes(), &infos))
	require.Len(t, infos, 3)
	assert.Equal(t, "basic", infos[0].ID)
	assert.True(t, infos[0].Default)
	assert.False(t, infos[1].Default)
	assert.Equal(t, "@alphasquad/saleor-template-advance", infos[2].Package)
}

func TestWriteTemplates_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeTemplates(&buf, output.FormatYAML))

	var infos []templateInfo
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &infos))
	require.Len(t, infos, 3)
	assert.Equal(t, "standard", infos[1].ID)
	assert.Equal(t, "AlphaSquadTech/saleor-template-standard", infos[1].Repository)
}

func TestTemplatesCmd_InvalidOutput(t *testing.T) {
	isolate(t, nil)

	_, err := execute(t, "", "templates", "-o", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format: xml")
}
