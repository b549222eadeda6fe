package links

import "strings"

// Filter drops records that do not point at a single image and strips
// newlines from messages. Applying it twice gives the same result as once.
func Filter(records []Record) []Record {
	result := make([]Record, 0, len(records))

	for _, r := range records {
		if r.SpecificID == "" || r.Type.Excludes(r.SpecificID) {
			continue
		}

		r.Message = StripLineBreaks(r.Message)
		result = append(result, r)
	}

	return result
}

var lineBreaks = strings.NewReplacer("\n", "", "\r", "")

// StripLineBreaks removes every \n and \r from s.
func StripLineBreaks(s string) string {
	return lineBreaks.Replace(s)
}
