package crisis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposeResponseKnownCountry(t *testing.T) {
	resp := ComposeResponse("PK")
	assert.Contains(t, resp, "I'm very concerned about you.")
	assert.Contains(t, resp, "**Immediate Help for Pakistan:**")
	assert.Contains(t, resp, "Emergency Services: 15")
	assert.Contains(t, resp, "Aman Foundation Helpline: 111-11-AMAN (111-11-2626)")
	assert.Contains(t, resp, "please contact one of these resources right away.")
}

func TestComposeResponseUnknownCountryUsesUSResources(t *testing.T) {
	resp := ComposeResponse("ZZ")
	assert.Contains(t, resp, "**Immediate Help for Your Country:**")
	assert.Contains(t, resp, "988")
}

func TestComposeResponseEmptyCountry(t *testing.T) {
	assert.Equal(t, ComposeResponse(""), composeFrom(Resolve("US"), "Your Country"))
}

func TestComposeDedupsFormattedNumbers(t *testing.T) {
	entry := ResourceEntry{
		Emergency: "911",
		Hotlines: []Hotline{
			{Name: "Lifeline", Number: "911", Available: "24/7"},
			{Name: "Lifeline Alt", Number: "9-1-1", Available: "24/7"},
			{Name: "Text Line", Number: "Text HOME to 741741", Available: "24/7"},
		},
	}
	resp := composeFrom(entry, "Testland")
	assert.Contains(t, resp, "Lifeline: 911")
	assert.NotContains(t, resp, "Lifeline Alt")
	assert.Contains(t, resp, "Text Line: Text HOME to 741741")
	// Emergency digits already rendered via Lifeline, so no extra line.
	assert.NotContains(t, resp, "Emergency Services: 911")
}

func TestComposeAppendsEmergencyWhenMissing(t *testing.T) {
	entry := ResourceEntry{
		Emergency: "112",
		Hotlines: []Hotline{
			{Name: "Helpline", Number: "0800 111 0 111", Available: "24/7"},
		},
	}
	resp := composeFrom(entry, "Testland")
	assert.Contains(t, resp, "Helpline: 0800 111 0 111 (24/7)")
	assert.Contains(t, resp, "• Emergency Services: 112\n")
}

func TestComposeCapsHotlinesAtThree(t *testing.T) {
	entry := ResourceEntry{
		Emergency: "999",
		Hotlines: []Hotline{
			{Name: "One", Number: "1", Available: "24/7"},
			{Name: "Two", Number: "2", Available: "24/7"},
			{Name: "Three", Number: "3", Available: "24/7"},
			{Name: "Four", Number: "4", Available: "24/7"},
		},
	}
	resp := composeFrom(entry, "Testland")
	assert.Equal(t, 4, strings.Count(resp, "• ")) // 3 hotlines + emergency
	assert.NotContains(t, resp, "Four")
}

func TestComposeNoHotlines(t *testing.T) {
	resp := composeFrom(ResourceEntry{Emergency: "123"}, "Testland")
	assert.Contains(t, resp, "• Emergency Services: 123\n")
}

func TestComposeDefaultsAvailability(t *testing.T) {
	entry := ResourceEntry{
		Emergency: "999",
		Hotlines:  []Hotline{{Name: "Line", Number: "55"}},
	}
	assert.Contains(t, composeFrom(entry, "Testland"), "Line: 55 (24/7)")
}
