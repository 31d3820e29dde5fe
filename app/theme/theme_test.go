package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/joefazee/atlas/models"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Name
		wantErr bool
	}{
		{"light", Light, false},
		{"dark", Dark, false},
		{"green", Green, false},
		{"blue", Blue, false},
		{" Dark ", Dark, false},
		{"purple", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, models.ErrInvalidTheme)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestName_Style(t *testing.T) {
	assert.Equal(t, "#1f2937", Dark.Style().Background)
	assert.Equal(t, "#ffffff", Light.Style().Background)
	assert.Equal(t, Light.Style(), Name("nope").Style())

	seen := map[string]bool{}
	for _, n := range Names {
		seen[n.Style().Background] = true
	}
	assert.Len(t, seen, len(Names), "every theme has its own background")
}

func TestName_Label(t *testing.T) {
	assert.Equal(t, "Green", Green.Label())
	assert.Equal(t, "", Name("").Label())
}

func TestStyle_CSS(t *testing.T) {
	css := Blue.Style().CSS()
	assert.Equal(t, "background-color: #dbeafe; color: #1e3a8a;", css)
}

func TestOptions(t *testing.T) {
	opts := Options()
	assert.Len(t, opts, 4)
	assert.Equal(t, Light, opts[0].Name)
	assert.Equal(t, "Blue", opts[3].Label)
}
