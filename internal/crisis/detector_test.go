package crisis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectHighRisk(t *testing.T) {
	cases := []string{
		"I am thinking about suicide",
		"i want to KILL MYSELF",
		"sometimes I just want to end my life",
		"I might hurt myself tonight",
		"I want to die",
		"there is no point living anymore",
		"I've been into self harm again",
		"the cutting started again",
		"thinking about an overdose",
		"I could jump off the bridge",
		"maybe I should hang myself",
	}
	for _, msg := range cases {
		isCrisis, level := Detect(msg)
		assert.True(t, isCrisis, msg)
		assert.Equal(t, RiskHigh, level, msg)
	}
}

func TestDetectMediumRisk(t *testing.T) {
	cases := []string{
		"there's just no point anymore",
		"I can't go on like this",
		"I want to give up on everything",
	}
	for _, msg := range cases {
		isCrisis, level := Detect(msg)
		assert.True(t, isCrisis, msg)
		assert.Equal(t, RiskMedium, level, msg)
	}
}

func TestDetectOverlappingPhraseIsHigh(t *testing.T) {
	// "want to die" appears on both lists; high wins.
	isCrisis, level := Detect("I want to die")
	assert.True(t, isCrisis)
	assert.Equal(t, RiskHigh, level)
}

func TestDetectNoCrisis(t *testing.T) {
	for _, msg := range []string{"", "I had a great day", "work was stressful but fine"} {
		isCrisis, level := Detect(msg)
		assert.False(t, isCrisis, msg)
		assert.Equal(t, RiskNone, level, msg)
	}
}

func TestDetectCaseInsensitive(t *testing.T) {
	isCrisis, level := Detect("SUICIDE")
	assert.True(t, isCrisis)
	assert.Equal(t, RiskHigh, level)
}
