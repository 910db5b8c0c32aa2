package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spotisync/spotisync/resolver"
)

const musicSearchFixture = `{
	"contents": {"tabbedSearchResultsRenderer": {"tabs": [{"tabRenderer": {"content": {"sectionListRenderer": {"contents": [
		{"musicShelfRenderer": {"contents": [
			{"musicResponsiveListItemRenderer": {
				"playlistItemData": {"videoId": "abc123"},
				"flexColumns": [
					{"musicResponsiveListItemFlexColumnRenderer": {"text": {"runs": [{"text": "White Ferrari"}]}}},
					{"musicResponsiveListItemFlexColumnRenderer": {"text": {"runs": [
						{"text": "Frank Ocean", "navigationEndpoint": {"browseEndpoint": {"browseEndpointContextSupportedConfigs": {"browseEndpointContextMusicConfig": {"pageType": "MUSIC_PAGE_TYPE_ARTIST"}}}}},
						{"text": " • "},
						{"text": "Blonde", "navigationEndpoint": {"browseEndpoint": {"browseEndpointContextSupportedConfigs": {"browseEndpointContextMusicConfig": {"pageType": "MUSIC_PAGE_TYPE_ALBUM"}}}}},
						{"text": " • "},
						{"text": "4:09"}
					]}}}
				]
			}},
			{"musicResponsiveListItemRenderer": {
				"playlistItemData": {"videoId": ""},
				"flexColumns": [
					{"musicResponsiveListItemFlexColumnRenderer": {"text": {"runs": [{"text": "broken entry"}]}}}
				]
			}}
		]}}
	]}}}}]}}
}`

const resultsPageFixture = `{
	"contents": {"twoColumnSearchResultsRenderer": {"primaryContents": {"sectionListRenderer": {"contents": [
		{"itemSectionRenderer": {"contents": [
			{"videoRenderer": {
				"videoId": "vid001",
				"title": {"runs": [{"text": "White Ferrari (Official Audio)"}]},
				"ownerText": {"runs": [{"text": "Frank Ocean - Topic"}]},
				"lengthText": {"simpleText": "4:09"}
			}},
			{"adSlotRenderer": {}}
		]}}
	]}}}}
}`

func TestParseMusicSearch(t *testing.T) {
	candidates := parseMusicSearch([]byte(musicSearchFixture), 20, resolver.SourceFreeText)
	assert.Len(t, candidates, 1)

	candidate := candidates[0]
	assert.Equal(t, "abc123", candidate.ID)
	assert.Equal(t, "White Ferrari", candidate.Title)
	assert.Equal(t, []string{"Frank Ocean"}, candidate.Artists)
	assert.Equal(t, "Blonde", candidate.Album)
	assert.Equal(t, 249.0, candidate.Duration)
	assert.Equal(t, resolver.SourceFreeText, candidate.Source)
}

func TestParseMusicSearchIdentifierSource(t *testing.T) {
	candidates := parseMusicSearch([]byte(musicSearchFixture), 20, resolver.SourceIdentifier)
	assert.Len(t, candidates, 1)
	assert.Equal(t, resolver.SourceIdentifier, candidates[0].Source)
}

func TestParseResultsPage(t *testing.T) {
	candidates := parseResultsPage([]byte(resultsPageFixture), 20)
	assert.Len(t, candidates, 1)

	candidate := candidates[0]
	assert.Equal(t, "vid001", candidate.ID)
	assert.Equal(t, "White Ferrari (Official Audio)", candidate.Title)
	assert.Equal(t, []string{"Frank Ocean"}, candidate.Artists)
	assert.Equal(t, 249.0, candidate.Duration)
}

func TestClipSeconds(t *testing.T) {
	assert.Equal(t, 249.0, clipSeconds("4:09"))
	assert.Equal(t, 3600.0+249, clipSeconds("1:04:09"))
	assert.Equal(t, 0.0, clipSeconds("n/a"))
}
