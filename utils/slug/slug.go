package slug

import "strings"

// Slugify derives a URL-safe identifier from a human-readable name.
// The result contains only lowercase alphanumerics and single hyphens,
// with no leading or trailing hyphen. Deriving twice yields the same
// string.
func Slugify(name string) string {
	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(name) {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !isAlnum {
			if b.Len() > 0 {
				pendingHyphen = true
			}
			continue
		}
		if pendingHyphen {
			b.WriteByte('-')
			pendingHyphen = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// AutoSlug implements the admin form slug rule: while the slug is empty
// or still equal to the slug auto-derived from the previous name, it
// tracks the name; once manually edited away from the derived value it
// is never overwritten.
func AutoSlug(prevName, currentSlug, newName string) string {
	if currentSlug == "" || currentSlug == Slugify(prevName) {
		return Slugify(newName)
	}
	return currentSlug
}
