package crisis

import (
	"fmt"
	"strings"
)

const maxHotlines = 3

// ComposeResponse builds the immediate crisis reply for a user in the
// given country. Unknown or empty codes fall back to US resources.
func ComposeResponse(countryCode string) string {
	code := strings.ToUpper(strings.TrimSpace(countryCode))
	if code == "" {
		code = "US"
	}
	entry := Resolve(code)

	name := CountryName(code)
	if name == "" {
		name = "Your Country"
	}
	return composeFrom(entry, name)
}

func composeFrom(entry ResourceEntry, name string) string {
	var b strings.Builder
	b.WriteString("I'm very concerned about you. You're not alone, and there is help available right now.\n\n")
	fmt.Fprintf(&b, "**Immediate Help for %s:**\n", name)

	// Collapse hotlines that share the same number once formatting is
	// stripped, keeping the first occurrence, at most three total.
	var unique []Hotline
	seen := map[string]bool{}
	for _, h := range entry.Hotlines {
		digits := digitsOnly(h.Number)
		if !seen[digits] {
			seen[digits] = true
			unique = append(unique, h)
		}
		if len(unique) >= maxHotlines {
			break
		}
	}

	for _, h := range unique {
		available := h.Available
		if available == "" {
			available = "24/7"
		}
		fmt.Fprintf(&b, "• %s: %s (%s)\n", h.Name, h.Number, available)
	}

	emergencyListed := false
	emergencyDigits := digitsOnly(entry.Emergency)
	for _, h := range unique {
		if digitsOnly(h.Number) == emergencyDigits {
			emergencyListed = true
			break
		}
	}
	if !emergencyListed {
		fmt.Fprintf(&b, "• Emergency Services: %s\n", entry.Emergency)
	}

	b.WriteString("\nPlease reach out to a professional immediately. Your life has value, and there are people who want to help you.\n\n")
	b.WriteString("I'm here to support you, but for your safety, please contact one of these resources right away.")
	return b.String()
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
