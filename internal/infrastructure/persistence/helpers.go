package persistence

import "encoding/json"

// firstImage extracts the first entry from a JSON-encoded image list. A
// missing or malformed payload yields an empty string.
func firstImage(payload string) string {
	if payload == "" {
		return ""
	}
	var images []string
	if err := json.Unmarshal([]byte(payload), &images); err != nil || len(images) == 0 {
		return ""
	}
	return images[0]
}
