package browser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		base    string
		link    string
		want    string
		wantErr error
	}{
		{"absolute link unchanged", "", "https://example.com/cloud", "https://example.com/cloud", nil},
		{"absolute link ignores base", "https://site.test", "mailto:hola@example.com", "mailto:hola@example.com", nil},
		{"relative link joins base", "https://site.test/es/", "soluciones/cloud", "https://site.test/es/soluciones/cloud", nil},
		{"rooted link replaces base path", "https://site.test/es/", "/soluciones", "https://site.test/soluciones", nil},
		{"whitespace trimmed", "", "  https://example.com  ", "https://example.com", nil},
		{"empty link", "https://site.test", "", "", ErrEmptyLink},
		{"relative without base", "", "/soluciones", "", ErrRelativeLink},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.base, tt.link)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCommand(t *testing.T) {
	tests := []struct {
		goos string
		want []string
	}{
		{"darwin", []string{"open", "https://example.com"}},
		{"linux", []string{"xdg-open", "https://example.com"}},
		{"windows", []string{"cmd", "/c", "start", "https://example.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			cmd, err := command(tt.goos, "https://example.com")
			require.NoError(t, err)
			assert.Equal(t, tt.want, cmd.Args)
		})
	}

	_, err := command("plan9", "https://example.com")
	assert.Error(t, err)
}
