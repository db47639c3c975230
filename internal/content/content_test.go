//nolint:goconst // test cases intentionally repeat strings for readability
package content

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const siteJSON = `{
  "solutionsSlider": {
    "id": "soluciones",
    "title": "Our solutions",
    "subtitle": "Pick one",
    "items": [
      {"id": 1, "title": "Cloud", "desc": "Hosting", "image": "/img/1.jpg", "icon": "/ic/1.svg", "link": "/cloud"},
      {"id": 2, "title": "Edge", "desc": "CDN", "image": "/img/2.jpg", "icon": "/ic/2.svg", "link": "/edge"},
      {"id": 3, "title": "Data", "desc": "Storage", "image": "/img/3.jpg", "icon": "/ic/3.svg", "link": "/data"}
    ]
  },
  "solutions": {
    "title": "Fallback",
    "items": []
  }
}`

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_JSON(t *testing.T) {
	path := writeFile(t, "site.json", siteJSON)

	sec, err := Load(path, "solutionsSlider")
	require.NoError(t, err)

	assert.Equal(t, "soluciones", sec.ID)
	assert.Equal(t, "Our solutions", sec.Title)
	assert.Equal(t, "Pick one", sec.Subtitle)
	require.Equal(t, 3, sec.Len())
	assert.Equal(t, Item{
		ID:    2,
		Title: "Edge",
		Desc:  "CDN",
		Image: "/img/2.jpg",
		Icon:  "/ic/2.svg",
		Link:  "/edge",
	}, sec.Items[1])
}

func TestLoad_KeyIsExplicit(t *testing.T) {
	path := writeFile(t, "site.json", siteJSON)

	sec, err := Load(path, "solutions")
	require.NoError(t, err)

	assert.Equal(t, "Fallback", sec.Title)
	assert.Equal(t, 0, sec.Len())
	assert.Equal(t, DefaultSectionID, sec.ID)
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, "site.toml", `
[site.solutions]
title = "Solutions"

[[site.solutions.items]]
id = 10
title = "First"
link = "/first"

[[site.solutions.items]]
id = 11
title = "Second"
link = "/second"
`)

	sec, err := Load(path, "site.solutions")
	require.NoError(t, err)
	require.Equal(t, 2, sec.Len())
	assert.Equal(t, 10, sec.Items[0].ID)
	assert.Equal(t, "/second", sec.Items[1].Link)
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "site.yaml", `
solutions:
  title: Solutions
  items:
    - id: 1
      title: One
    - id: 2
      title: Two
`)

	sec, err := Load(path, "solutions")
	require.NoError(t, err)
	assert.Equal(t, 2, sec.Len())
	assert.Equal(t, "Two", sec.Items[1].Title)
}

func TestLoad_Errors(t *testing.T) {
	dupes := writeFile(t, "dupes.json", `{"s": {"items": [{"id": 1}, {"id": 1}]}}`)
	site := writeFile(t, "site.json", siteJSON)
	unknown := writeFile(t, "site.ini", "x=1")

	tests := []struct {
		name string
		path string
		key  string
		want error
	}{
		{"missing key", site, "nope", ErrSectionNotFound},
		{"empty key", site, " ", ErrNoKey},
		{"duplicate ids", dupes, "s", ErrDuplicateID},
		{"unsupported extension", unknown, "s", ErrUnsupportedFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path, tt.key)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"), "s")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(nil))
	assert.NoError(t, Validate([]Item{{ID: 1}, {ID: 2}}))
	assert.ErrorIs(t, Validate([]Item{{ID: 3}, {ID: 1}, {ID: 3}}), ErrDuplicateID)
}
