package core

import "unicode/utf8"

const (
	DefaultCountryCode = "FR"

	PartyMaxLines  = 4
	PartyLineWidth = 35
)

// Address is a postal address. An empty Country falls back to DefaultCountryCode.
type Address struct {
	Street         string
	BuildingNumber string
	PostalCode     string
	City           string
	Country        string
}

func (a Address) CountryCode() string {
	if a.Country == "" {
		return DefaultCountryCode
	}
	return a.Country
}

// Party is a customer as rendered in the legacy text message.
type Party struct {
	Name         string
	Account      string
	AddressLine1 string
	AddressLine2 string
	AddressLine3 string
}

// ToLines renders the party with the legacy defaults of 4 lines of 35 characters.
func (p Party) ToLines() []string {
	return p.Lines(PartyMaxLines, PartyLineWidth)
}

// Lines renders the account line (prefixed with "/"), the name and the address
// lines in that order. Each line is cut to width characters and only the first
// maxLines lines are kept.
func (p Party) Lines(maxLines, width int) []string {
	lines := make([]string, 0, 5)
	if p.Account != "" {
		lines = append(lines, Truncate("/"+p.Account, width))
	}
	lines = append(lines, Truncate(p.Name, width))
	for _, l := range []string{p.AddressLine1, p.AddressLine2, p.AddressLine3} {
		if l != "" {
			lines = append(lines, Truncate(l, width))
		}
	}

	if maxLines < 0 {
		maxLines = 0
	}
	if len(lines) > maxLines {
		lines = lines[:maxLines]
	}

	return lines
}

// Truncate cuts s to at most n characters.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}

	runes := []rune(s)
	return string(runes[:n])
}

// Chunk splits s into pieces of width characters and keeps at most max of them.
func Chunk(s string, width, max int) []string {
	runes := []rune(s)
	chunks := make([]string, 0, max)
	for i := 0; i < len(runes) && len(chunks) < max; i += width {
		end := i + width
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[i:end]))
	}

	return chunks
}
