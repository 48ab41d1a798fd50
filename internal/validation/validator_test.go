package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testArtist struct {
	Name      *string `json:"name" validate:"required"`
	SubGenre  *string `json:"subGenre" validate:"required"`
	ChannelID string  `json:"youtubeChannelId"`
}

type testResult struct {
	Query   string       `json:"query" validate:"required"`
	Artists []testArtist `json:"recommendations" validate:"required,dive"`
}

func str(s string) *string { return &s }

func validTestArtist() testArtist {
	return testArtist{Name: str("Tycho"), SubGenre: str("Chillwave")}
}

func TestValidateStruct_Valid(t *testing.T) {
	result := testResult{Query: "Boards of Canada", Artists: []testArtist{validTestArtist()}}
	assert.NoError(t, ValidateStruct(result))
}

func TestValidateStruct_PointerRequiredIsPresenceOnly(t *testing.T) {
	artist := validTestArtist()
	artist.SubGenre = str("")
	assert.NoError(t, ValidateStruct(artist))

	artist.SubGenre = nil
	assert.Error(t, ValidateStruct(artist))
}

func TestValidateStruct_ReportsJSONFieldNames(t *testing.T) {
	artist := validTestArtist()
	artist.SubGenre = nil

	result := testResult{Artists: []testArtist{validTestArtist(), artist}}

	err := ValidateStruct(result)
	require.Error(t, err)

	var verr *Error
	require.True(t, errors.As(err, &verr))
	assert.ElementsMatch(t, []FieldError{
		{Field: "query", Tag: "required"},
		{Field: "recommendations[1].subGenre", Tag: "required"},
	}, verr.Fields)
	assert.Contains(t, err.Error(), "recommendations[1].subGenre")
}

func TestValidateStruct_MissingSlice(t *testing.T) {
	err := ValidateStruct(testResult{Query: "x"})

	var verr *Error
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "recommendations", verr.Fields[0].Field)
}

func TestValidateStruct_NotAStruct(t *testing.T) {
	err := ValidateStruct("plain string")
	require.Error(t, err)

	var verr *Error
	assert.False(t, errors.As(err, &verr))
}

func TestError_EmptyMessage(t *testing.T) {
	assert.Equal(t, "validation failed", (&Error{}).Error())
}
