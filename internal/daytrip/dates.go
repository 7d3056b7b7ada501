package daytrip

import "time"

const displayLayout = "02 January 2006, 15:04"

// FormatDisplay renders an ISO-8601 naive timestamp ("2006-01-02T15:04:05")
// as "02 January 2006, 15:04" in 24-hour time. The second return is false
// when the input does not parse; callers tolerate a missing display string.
func FormatDisplay(iso string) (string, bool) {
	t, err := time.Parse(fareTimeLayout, iso)
	if err != nil {
		return "", false
	}
	return t.Format(displayLayout), true
}
