// Package links derives YouTube and YouTube Music URLs for a recommended artist.
// Everything here is pure: no I/O, no shared state.
package links

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/Conceptual-Machines/sonicdna-api/internal/models"
)

const (
	musicChannelURL = "https://music.youtube.com/channel/"
	musicSearchURL  = "https://music.youtube.com/search?q="
	videoSearchURL  = "https://www.youtube.com/results?search_query="

	// YouTube search "sp" tokens. These are opaque protobuf blobs owned by
	// YouTube and must stay byte-for-byte as they are.
	spChannelsOnly = "EgIQAg%3D%3D"
	spByViewCount  = "CAMSAhAB"
	spByUploadDate = "CAISAhAB"
	spMixes        = "EgQYAhAB"
)

var channelIDPattern = regexp.MustCompile(`^UC[A-Za-z0-9_-]+$`)

// Build computes the LinkSet for an artist. It never fails.
func Build(artist models.SonicArtist) models.LinkSet {
	name := QueryName(artist)
	deepDive := url.QueryEscape(DeepDiveQuery(name, artist.SubGenre))

	set := models.LinkSet{
		Channels: videoSearch(deepDive, spChannelsOnly),
		Popular:  videoSearch(deepDive, spByViewCount),
		Latest:   videoSearch(deepDive, spByUploadDate),
		Mixes:    videoSearch(deepDive, spMixes),
	}

	if id := strings.TrimSpace(artist.YouTubeChannelID); IsChannelID(id) {
		set.Listen = musicChannelURL + id
		set.ListenIsChannel = true
	} else {
		set.Listen = musicSearchURL + url.QueryEscape(name)
	}

	return set
}

// BuildAll computes links for every artist, preserving order
func BuildAll(artists []models.SonicArtist) []models.LinkSet {
	out := make([]models.LinkSet, len(artists))
	for i, a := range artists {
		out[i] = Build(a)
	}
	return out
}

// QueryName prefers the disambiguated searchable name over the display name
func QueryName(artist models.SonicArtist) string {
	if s := strings.TrimSpace(artist.SearchableName); s != "" {
		return s
	}
	return strings.TrimSpace(artist.Name)
}

// DeepDiveQuery returns the unencoded `"<name>" <subGenre> music` search string
func DeepDiveQuery(name, subGenre string) string {
	return `"` + name + `" ` + subGenre + " music"
}

// IsChannelID reports whether id follows the YouTube "UC..." channel ID convention
func IsChannelID(id string) bool {
	return channelIDPattern.MatchString(id)
}

func videoSearch(encodedQuery, sp string) string {
	return videoSearchURL + encodedQuery + "&sp=" + sp
}
