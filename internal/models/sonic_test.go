package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		input   string
		want    Mode
		wantErr bool
	}{
		{input: "STRICT", want: ModeStrict},
		{input: "DISCOVERY", want: ModeDiscovery},
		{input: " discovery ", want: ModeDiscovery},
		{input: "Strict", want: ModeStrict},
		{input: "", wantErr: true},
		{input: "LOOSE", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMode(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.Valid())
		})
	}
}

func TestSonicArtist_OptionalFieldsOmitted(t *testing.T) {
	artist := SonicArtist{
		Name:                "Lemongrass",
		Genre:               "Electronic",
		SubGenre:            "Downtempo",
		Style:               "Lush chillout",
		NuancedSimilarities: "Same warm pads",
	}

	data, err := json.Marshal(artist)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "searchableName")
	assert.NotContains(t, string(data), "youtubeChannelId")
}
