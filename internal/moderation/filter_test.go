package moderation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlaggedMatchesCaseInsensitiveSubstrings(t *testing.T) {
	f := NewFilter()

	assert.True(t, f.Flagged("you are an idiot"))
	assert.True(t, f.Flagged("You are an IDIOT"))
	assert.True(t, f.Flagged("that was stupidly framed"), "substring match, not word match")
	assert.True(t, f.Flagged("badword1"))
}

func TestFlaggedPassesCleanText(t *testing.T) {
	f := NewFilter()

	assert.False(t, f.Flagged("how many eco points do I have"))
	assert.False(t, f.Flagged(""))
	assert.False(t, f.Flagged("what is pm2.5"))
}

func TestFilterExtraWords(t *testing.T) {
	f := NewFilter("Verboten", "  ", "")

	assert.True(t, f.Flagged("this is VERBOTEN content"))
	assert.False(t, f.Flagged("this is fine"))
}
