package pkg

import "strings"

// Club detail pages are addressed by the club name with spaces replaced by
// underscores. The mapping must round-trip exactly and preserve case:
// "Machine Learning Club" <-> "Machine_Learning_Club".

func Slugify(name string) string {
	return strings.ReplaceAll(name, " ", "_")
}

func Unslugify(slug string) string {
	return strings.ReplaceAll(slug, "_", " ")
}
