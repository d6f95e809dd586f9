package cmd

import (
	"bytes"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alphasquad/create-storefront/internal/testutil"
)

const testSchema = `{
  "properties": {
    "next_public": {
      "type": "object",
      "required": ["api_url"],
      "properties": {
        "api_url": {"type": "string", "description": "Saleor GraphQL endpoint"},
        "brand_name": {"type": "string", "default": "Saleor Storefront"}
      }
    }
  }
}`

// isolate points settings at a missing file and the source host at srv,
// or at a host that serves nothing when srv is nil.
func isolate(t *testing.T, srv *httptest.Server) {
	t.Helper()

	if srv == nil {
		srv = testutil.NewSourceHost(t, nil).Server
	}

	t.Setenv("STOREFRONT_SETTINGS", filepath.Join(t.TempDir(), "config.yaml"))
	t.Setenv("STOREFRONT_SOURCE_BASE_URL", srv.URL)
	t.Setenv("STOREFRONT_PACKAGE_MANAGER", "")
	t.Setenv("STOREFRONT_FETCH_TIMEOUT", "")
}

// schemaServer serves testSchema for every template on the main branch.
func schemaServer(t *testing.T) *httptest.Server {
	t.Helper()
	return testutil.NewSourceHost(t, map[string]string{
		"/main/template/config.schema.json": testSchema,
	}).Server
}

// execute runs the root command and returns everything written to its
// stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}
