package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitleExact(t *testing.T) {
	assert.Equal(t, 1.0, Title("Shape of You", "Shape of You"))
	assert.Equal(t, 1.0, Title("Shape of You", "shape of you"))
}

func TestTitleQualifierStripped(t *testing.T) {
	// variant qualifiers do not weigh on the comparison itself
	assert.Equal(t, 1.0, Title("Shape of You", "Shape of You (Remix)"))
	assert.Equal(t, 1.0, Title("Shape of You", "Shape of You (Live)"))
	assert.Equal(t, 1.0, Title("Shape of You", "Shape of You (Acoustic)"))
}

func TestTitleContainmentBonus(t *testing.T) {
	score := Title("Shape of You", "Shape of You Ed Sheeran Topic")
	assert.Greater(t, score, jaccard(
		tokens("shape of you"), tokens("shape of you ed sheeran topic")))
	assert.LessOrEqual(t, score, 1.0)
}

func TestTitleSymmetric(t *testing.T) {
	for _, pair := range [][2]string{
		{"Shape of You", "Shape of You Official"},
		{"Halo", "Halo Beyonce"},
		{"One more time", "time one more"},
		{"", "Anything"},
	} {
		assert.Equal(t, Title(pair[0], pair[1]), Title(pair[1], pair[0]))
	}
}

func TestTitleEmpty(t *testing.T) {
	assert.Zero(t, Title("", "Shape of You"))
	assert.Zero(t, Title("Shape of You", ""))
	assert.Zero(t, Title("", ""))
}

func TestArtistExact(t *testing.T) {
	assert.Equal(t, 1.0, Artist("Ed Sheeran", []string{"Ed Sheeran"}))
	assert.Equal(t, 1.0, Artist("Ed Sheeran", []string{"Somebody Else", "Ed Sheeran"}))
}

func TestArtistFeaturedSuffix(t *testing.T) {
	assert.Equal(t, 1.0, Artist("Ed Sheeran", []string{"Ed Sheeran feat. Khalid"}))
	assert.Equal(t, 1.0, Artist("Ed Sheeran", []string{"Ed Sheeran & Justin Bieber"}))
}

func TestArtistContainment(t *testing.T) {
	assert.Equal(t, 0.8, Artist("Beyonce", []string{"Beyonce Knowles"}))
}

func TestArtistEmpty(t *testing.T) {
	assert.Zero(t, Artist("", []string{"Ed Sheeran"}))
	assert.Zero(t, Artist("Ed Sheeran", nil))
	assert.Zero(t, Artist("Ed Sheeran", []string{""}))
}

func TestDurationSteps(t *testing.T) {
	assert.Equal(t, 1.0, Duration(180, 181))
	assert.Equal(t, 1.0, Duration(181, 180))
	assert.Equal(t, 0.6, Duration(180, 181.5))
	assert.Equal(t, 0.3, Duration(180, 182))
	assert.Equal(t, 0.1, Duration(180, 183))
	assert.Equal(t, 0.0, Duration(180, 200))
}

func TestDurationMissing(t *testing.T) {
	// unknown duration is no signal, not a match
	assert.Zero(t, Duration(0, 180))
	assert.Zero(t, Duration(180, 0))
	assert.Zero(t, Duration(0, 0))
}

func TestString(t *testing.T) {
	assert.Equal(t, 1.0, String("Divide", "divide"))
	assert.Equal(t, 0.7, String("Divide", "Divide (Deluxe)"))
	assert.Zero(t, String("", "Divide"))
	assert.InDelta(t, 1.0/3.0, String("Divide Deluxe", "Divide Standard"), 1e-9)
}

func TestNormalizeTitle(t *testing.T) {
	assert.Equal(t, "shape of you", NormalizeTitle("Shape of You (Remix)"))
	assert.Equal(t, "shape of you", NormalizeTitle("Shape of You!!!"))
	// sped up is deliberately not a qualifier
	assert.Equal(t, "shape of you sped up", NormalizeTitle("Shape of You (Sped Up)"))
}

func TestNormalizeArtist(t *testing.T) {
	assert.Equal(t, "ed sheeran", NormalizeArtist("Ed Sheeran feat. Khalid"))
	assert.Equal(t, "ed sheeran", NormalizeArtist("Ed Sheeran & Justin Bieber"))
	assert.Equal(t, "ed sheeran", NormalizeArtist("Ed Sheeran (UK)"))
}
