package scaffold

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/alphasquad/create-storefront/internal/schema"
	"github.com/alphasquad/create-storefront/internal/templates"
)

var fixedNow = func() time.Time {
	return time.Date(2026, 1, 2, 3, 4, 5, 6_000_000, time.FixedZone("CET", 3600))
}

func testPlanInputs(t *testing.T) (templates.Descriptor, []schema.Entry) {
	t.Helper()
	d, err := templates.Get(templates.Basic)
	require.NoError(t, err)

	entries := []schema.Entry{
		{Key: "NEXT_PUBLIC_API_URL", Description: "Saleor API", Required: true},
		{Key: "NEXT_PUBLIC_SITE_URL", Required: true},
	}
	return d, entries
}

func TestAssemble_FileOrder(t *testing.T) {
	d, entries := testPlanInputs(t)
	values := valuesOf("NEXT_PUBLIC_API_URL", "https://api", "NEXT_PUBLIC_SITE_URL", "http://localhost:3000")

	base := []string{
		"package.json",
		".gitignore",
		".env.example",
		".env.local",
		"README.md",
		"storefront.config.json",
		"src/overrides/HomePage.tsx",
		"src/overrides/index.ts",
		"scripts/template-runner.mjs",
		"scripts/update-template.mjs",
		"scripts/check-template-update.mjs",
	}

	t.Run("without CI", func(t *testing.T) {
		plan, err := Assemble(d, values, entries, Options{TenantSlug: "acme", Now: fixedNow})
		require.NoError(t, err)
		assert.Equal(t, base, plan.Paths())
	})

	t.Run("with CI", func(t *testing.T) {
		plan, err := Assemble(d, values, entries, Options{TenantSlug: "acme", CI: true, Now: fixedNow})
		require.NoError(t, err)
		assert.Equal(t, append(append([]string{}, base...),
			".github/workflows/ci.yml",
			".github/workflows/template-sync.yml",
		), plan.Paths())
	})
}

func TestAssemble_Manifest(t *testing.T) {
	d, entries := testPlanInputs(t)

	plan, err := Assemble(d, valuesOf(), entries, Options{TenantSlug: "acme", PackageManager: PNPM, Now: fixedNow})
	require.NoError(t, err)

	f, ok := plan.File(PathManifest)
	require.True(t, ok)
	assert.Equal(t, `{
  "name": "acme",
  "version": "0.1.0",
  "private": true,
  "scripts": {
    "dev": "node ./scripts/template-runner.mjs dev",
    "build": "node ./scripts/template-runner.mjs build",
    "start": "node ./scripts/template-runner.mjs start",
    "lint": "node ./scripts/template-runner.mjs lint",
    "template:update": "node ./scripts/update-template.mjs pnpm",
    "template:check": "node ./scripts/check-template-update.mjs"
  },
  "dependencies": {
    "@alphasquad/saleor-template-basic": "latest"
  },
  "devDependencies": {
    "@tailwindcss/postcss": "^4",
    "tailwindcss": "^4",
    "typescript": "^5"
  }
}
`, f.Content)
}

func TestAssemble_Record(t *testing.T) {
	d, entries := testPlanInputs(t)
	values := valuesOf("NEXT_PUBLIC_SITE_URL", "http://localhost:3000", "NEXT_PUBLIC_API_URL", "https://api/?a=1&b=<2>")

	plan, err := Assemble(d, values, entries, Options{TenantSlug: "acme", Now: fixedNow})
	require.NoError(t, err)

	f, ok := plan.File(PathRecord)
	require.True(t, ok)
	assert.Equal(t, `{
  "template": {
    "id": "basic",
    "packageName": "@alphasquad/saleor-template-basic",
    "repository": "https://github.com/AlphaSquadTech/saleor-template-basic"
  },
  "tenant": {
    "slug": "acme"
  },
  "env": {
    "NEXT_PUBLIC_SITE_URL": "http://localhost:3000",
    "NEXT_PUBLIC_API_URL": "https://api/?a=1&b=<2>"
  },
  "generatedAt": "2026-01-02T02:04:05.006Z"
}
`, f.Content)
}

func TestAssemble_EnvFilesMatch(t *testing.T) {
	d, entries := testPlanInputs(t)
	values := valuesOf("NEXT_PUBLIC_API_URL", "https://api", "NEXT_PUBLIC_SITE_URL", "http://localhost:3000")

	plan, err := Assemble(d, values, entries, Options{TenantSlug: "acme", Now: fixedNow})
	require.NoError(t, err)

	example, _ := plan.File(PathEnvExample)
	local, _ := plan.File(PathEnvLocal)
	assert.Equal(t, example.Content, local.Content)
	assert.Equal(t, FormatEnvFile(entries, values), local.Content)
}

func TestAssemble_Deterministic(t *testing.T) {
	d, entries := testPlanInputs(t)
	values := valuesOf("NEXT_PUBLIC_API_URL", "https://api", "NEXT_PUBLIC_SITE_URL", "http://x")
	opts := Options{TenantSlug: "acme", PackageManager: Yarn, CI: true}

	first, err := Assemble(d, values, entries, opts)
	require.NoError(t, err)
	second, err := Assemble(d, values, entries, opts)
	require.NoError(t, err)

	require.Equal(t, first.Paths(), second.Paths())
	for i := range first.Files {
		if first.Files[i].Path == PathRecord {
			var a, b map[string]any
			require.NoError(t, json.Unmarshal([]byte(first.Files[i].Content), &a))
			require.NoError(t, json.Unmarshal([]byte(second.Files[i].Content), &b))
			delete(a, "generatedAt")
			delete(b, "generatedAt")
			assert.Equal(t, a, b)
			continue
		}
		assert.Equal(t, first.Files[i].Content, second.Files[i].Content, first.Files[i].Path)
	}
}

func TestAssemble_TemplatesRendered(t *testing.T) {
	for _, d := range templates.List() {
		for _, pm := range PackageManagers() {
			t.Run(d.ID.String()+"/"+pm.String(), func(t *testing.T) {
				plan, err := Assemble(d, valuesOf(), nil, Options{TenantSlug: "acme", PackageManager: pm, CI: true, Now: fixedNow})
				require.NoError(t, err)

				for _, f := range plan.Files {
					assert.NotContains(t, f.Content, "[[", f.Path)
					assert.NotContains(t, f.Content, "<no value>", f.Path)
					assert.True(t, strings.HasSuffix(f.Content, "\n"), f.Path)
				}

				runner, _ := plan.File(PathTemplateRunner)
				assert.Contains(t, runner.Content, `require.resolve("`+d.PackageName+`/package.json"`)
				assert.Contains(t, runner.Content, `content.split(/\r?\n/)`)

				update, _ := plan.File(PathUpdateScript)
				assert.Contains(t, update.Content, `const packageName = "`+d.PackageName+`";`)

				readme, _ := plan.File(PathReadme)
				assert.True(t, strings.HasPrefix(readme.Content, "# acme\n"))
				assert.Contains(t, readme.Content, "- Source repository: https://github.com/"+d.Repository+"\n")
			})
		}
	}
}

// workflow is the subset of a GitHub Actions workflow the tests inspect.
type workflow struct {
	Name string                 `yaml:"name"`
	Jobs map[string]workflowJob `yaml:"jobs"`
}

type workflowJob struct {
	If    string            `yaml:"if"`
	Env   map[string]string `yaml:"env"`
	Steps []workflowStep    `yaml:"steps"`
}

type workflowStep struct {
	Name string            `yaml:"name"`
	Uses string            `yaml:"uses"`
	Run  string            `yaml:"run"`
	With map[string]string `yaml:"with"`
}

func hasStep(steps []workflowStep, name string) bool {
	for _, s := range steps {
		if s.Name == name {
			return true
		}
	}
	return false
}

func runOf(steps []workflowStep, name string) string {
	for _, s := range steps {
		if s.Name == name {
			return s.Run
		}
	}
	return ""
}

func TestAssemble_Workflows(t *testing.T) {
	d, err := templates.Get(templates.Advance)
	require.NoError(t, err)

	tests := []struct {
		pm        PackageManager
		wantSetup bool
	}{
		{NPM, false},
		{PNPM, true},
		{Yarn, false},
	}

	for _, tt := range tests {
		t.Run(tt.pm.String(), func(t *testing.T) {
			plan, err := Assemble(d, valuesOf(), nil, Options{TenantSlug: "acme", PackageManager: tt.pm, CI: true, Now: fixedNow})
			require.NoError(t, err)

			ciFile, ok := plan.File(PathCIWorkflow)
			require.True(t, ok)
			var ci workflow
			require.NoError(t, yaml.Unmarshal([]byte(ciFile.Content), &ci))
			assert.Equal(t, "CI", ci.Name)

			validate := ci.Jobs["validate"]
			require.NotEmpty(t, validate.Steps)
			assert.Equal(t, tt.pm.String(), validate.Steps[1].With["cache"])
			assert.Equal(t, tt.wantSetup, hasStep(validate.Steps, "Setup pnpm"))
			assert.Equal(t, tt.pm.InstallCommand(), runOf(validate.Steps, "Install dependencies"))

			syncFile, ok := plan.File(PathSyncWorkflow)
			require.True(t, ok)
			var sync workflow
			require.NoError(t, yaml.Unmarshal([]byte(syncFile.Content), &sync))
			assert.Equal(t, "Template Sync", sync.Name)

			job := sync.Jobs["sync"]
			assert.Contains(t, job.If, "templateId == 'advance'")
			assert.Equal(t, d.PackageName, job.Env["TEMPLATE_PACKAGE"])
			assert.Equal(t, tt.pm.UpdateCommand(), runOf(job.Steps, "Update template package"))
			assert.Equal(t, tt.wantSetup, hasStep(job.Steps, "Setup pnpm"))
			assert.Contains(t, syncFile.Content, "pull-request-number: ${{ steps.cpr.outputs.pull-request-number }}")
		})
	}
}
