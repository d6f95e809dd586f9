package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/alphasquad/create-storefront/internal/errors"
	"github.com/alphasquad/create-storefront/internal/resolve"
	"github.com/alphasquad/create-storefront/internal/schema"
	"github.com/alphasquad/create-storefront/internal/source"
	"github.com/alphasquad/create-storefront/internal/templates"
	"github.com/alphasquad/create-storefront/internal/testutil"
)

func TestInspectCmd_SchemaJSON(t *testing.T) {
	isolate(t, schemaServer(t))

	out, err := execute(t, "", "inspect", "basic", "-o", "json", "--tenant", "/srv/tenants/my-shop")
	require.NoError(t, err)

	var report struct {
		Template string `json:"template"`
		Format   string `json:"format"`
		Origin   string `json:"origin"`
		Entries  []struct {
			Key      string  `json:"key"`
			Default  string  `json:"default"`
			Required bool    `json:"required"`
			Computed *string `json:"computed"`
		} `json:"entries"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))

	assert.Equal(t, "basic", report.Template)
	assert.Equal(t, "schema", report.Format)
	assert.Contains(t, report.Origin, "/AlphaSquadTech/saleor-template-basic/main/template/config.schema.json")
	require.Len(t, report.Entries, 2)
	assert.Equal(t, "NEXT_PUBLIC_API_URL", report.Entries[0].Key)
	assert.True(t, report.Entries[0].Required)
	require.NotNil(t, report.Entries[1].Computed)
	assert.Equal(t, "My Shop", *report.Entries[1].Computed)
}

func TestInspectCmd_BundledTable(t *testing.T) {
	host := testutil.NewSourceHost(t, nil)
	isolate(t, host.Server)

	out, err := execute(t, "", "inspect", "@alphasquad/saleor-template-advance")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"/AlphaSquadTech/saleor-template-advance/main/template/config.schema.json",
		"/AlphaSquadTech/saleor-template-advance/master/template/config.schema.json",
		"/AlphaSquadTech/saleor-template-advance/main/.env.example",
		"/AlphaSquadTech/saleor-template-advance/master/.env.example",
	}, host.Requests())

	assert.Contains(t, out, "Source:   bundled (env)")
	assert.Contains(t, out, "NEXT_PUBLIC_API_URL")
	assert.NotContains(t, out, "TENANT DEFAULT")
}

func TestInspectCmd_UnknownTemplate(t *testing.T) {
	isolate(t, nil)

	_, err := execute(t, "", "inspect", "premium")

	var exitErr *oerrors.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, oerrors.ExitNotFound, exitErr.Code)
}

func TestNewInspectReport(t *testing.T) {
	result := &source.Result{
		Entries: []schema.Entry{
			{Key: "NEXT_PUBLIC_TENANT_NAME"},
			{Key: "NEXT_PUBLIC_SITE_URL"},
		},
		Format: schema.FormatFlat,
		Origin: source.OriginBundled,
	}

	t.Run("without tenant", func(t *testing.T) {
		report := newInspectReport(templates.Default(), result, nil)
		require.Len(t, report.Entries, 2)
		assert.Nil(t, report.Entries[0].Computed)
	})

	t.Run("with tenant", func(t *testing.T) {
		tenant, err := resolve.NewTenant("/tmp/north-wind")
		require.NoError(t, err)

		report := newInspectReport(templates.Default(), result, &tenant)
		require.Len(t, report.Entries, 2)
		assert.Equal(t, "north-wind", *report.Entries[0].Computed)
		assert.Equal(t, resolve.LocalDevURL, *report.Entries[1].Computed)
	})
}

func TestWriteInspectTable_WrapsDescriptions(t *testing.T) {
	report := inspectReport{
		Template: "basic",
		Format:   schema.FormatFlat,
		Origin:   source.OriginBundled,
		Entries: []inspectEntry{{Entry: schema.Entry{
			Key:         "SMTP_HOST",
			Description: strings.Repeat("mail relay ", 12),
		}}},
	}

	var buf bytes.Buffer
	require.NoError(t, writeInspectTable(&buf, report, false))

	out := buf.String()
	assert.Contains(t, out, "Source:   bundled (env)")
	assert.Contains(t, out, "SMTP_HOST")
	for _, line := range strings.Split(out, "\n") {
		assert.NotContains(t, line, strings.Repeat("mail relay ", 6))
	}
}
