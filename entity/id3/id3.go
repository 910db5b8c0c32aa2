// Package id3 wraps bogem/id3v2 tags with the application-specific
// frames used to track provenance of synchronized songs.
package id3

import (
	"github.com/bogem/id3v2/v2"
)

const (
	frameSpotifyID   = "spotify id"
	frameArtworkURL  = "artwork url"
	frameUpstreamURL = "upstream url"
	frameDuration    = "duration"
)

type Tag struct {
	*id3v2.Tag
}

func Open(path string, options id3v2.Options) (*Tag, error) {
	tag, err := id3v2.Open(path, options)
	if err != nil {
		return nil, err
	}
	return &Tag{tag}, nil
}

func (tag *Tag) userDefinedText(description string) string {
	for _, frame := range tag.GetFrames(tag.CommonID("User defined text information frame")) {
		if userDefined, ok := frame.(id3v2.UserDefinedTextFrame); ok &&
			userDefined.Description == description {
			return userDefined.Value
		}
	}
	return ""
}

func (tag *Tag) setUserDefinedText(description, value string) {
	tag.AddUserDefinedTextFrame(id3v2.UserDefinedTextFrame{
		Encoding:    id3v2.EncodingUTF8,
		Description: description,
		Value:       value,
	})
}

func (tag *Tag) SpotifyID() string {
	return tag.userDefinedText(frameSpotifyID)
}

func (tag *Tag) SetSpotifyID(id string) {
	tag.setUserDefinedText(frameSpotifyID, id)
}

func (tag *Tag) ArtworkURL() string {
	return tag.userDefinedText(frameArtworkURL)
}

func (tag *Tag) SetArtworkURL(url string) {
	tag.setUserDefinedText(frameArtworkURL, url)
}

func (tag *Tag) UpstreamURL() string {
	return tag.userDefinedText(frameUpstreamURL)
}

func (tag *Tag) SetUpstreamURL(url string) {
	tag.setUserDefinedText(frameUpstreamURL, url)
}

// SetDuration stores the upstream duration (milliseconds) both in the
// standard length frame and in a user-defined one, as some players
// rewrite TLEN on their own.
func (tag *Tag) SetDuration(duration string) {
	tag.AddTextFrame(tag.CommonID("Length"), id3v2.EncodingUTF8, duration)
	tag.setUserDefinedText(frameDuration, duration)
}

func (tag *Tag) SetTrackNumber(number string) {
	tag.AddTextFrame(tag.CommonID("Track number/Position in set"), id3v2.EncodingUTF8, number)
}

func (tag *Tag) SetAttachedPicture(data []byte) {
	tag.AddAttachedPicture(id3v2.PictureFrame{
		Encoding:    id3v2.EncodingUTF8,
		MimeType:    "image/jpeg",
		PictureType: id3v2.PTFrontCover,
		Description: "Cover",
		Picture:     data,
	})
}

func (tag *Tag) SetLyrics(title, lyrics string) {
	tag.AddUnsynchronisedLyricsFrame(id3v2.UnsynchronisedLyricsFrame{
		Encoding:          id3v2.EncodingUTF8,
		Language:          "eng",
		ContentDescriptor: title,
		Lyrics:            lyrics,
	})
}
