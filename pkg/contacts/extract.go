package contacts

import (
	"regexp"
	"strings"

	"outreach/pkg/domain"
)

// UnknownName is used for contacts whose row has no name column.
const UnknownName = "Unknown"

var (
	nameHeaders  = []string{"name", "customer"}                //nolint: gochecknoglobals
	phoneHeaders = []string{"phone", "mobile", "contact", "tel"} //nolint: gochecknoglobals

	phonePattern = regexp.MustCompile(`[\+\d][\d\-\s\(\)]{6,}`)
)

func headerMatches(header string, keys []string) bool {
	header = strings.ToLower(header)
	for _, k := range keys {
		if strings.Contains(header, k) {
			return true
		}
	}

	return false
}

// Extract maps rows to contacts. Name and phone columns are found by
// header; a header matching both counts as a name column. When no phone
// column has a value, the first phone-looking value of the row is used.
// Rows without a phone are skipped.
func Extract(rows []Row) []domain.Contact {
	out := make([]domain.Contact, 0, len(rows))
	for _, row := range rows {
		var name, phone string
		for _, c := range row {
			switch {
			case headerMatches(c.Header, nameHeaders):
				if name == "" {
					name = c.Value
				}
			case headerMatches(c.Header, phoneHeaders):
				if phone == "" {
					phone = c.Value
				}
			}
		}

		if phone == "" {
			for _, c := range row {
				if m := phonePattern.FindString(c.Value); m != "" {
					phone = strings.TrimSpace(m)

					break
				}
			}
		}
		if phone == "" {
			continue
		}
		if name == "" {
			name = UnknownName
		}

		out = append(out, domain.Contact{Name: name, Phone: phone})
	}

	return out
}
