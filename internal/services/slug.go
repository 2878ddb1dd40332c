package services

import (
	"fmt"
	"regexp"
	"strings"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL-safe identifier from a title: lower-cased,
// runs of non-alphanumerics collapsed to single hyphens, leading and
// trailing hyphens stripped.
func Slugify(title string) string {
	slug := strings.ToLower(title)
	slug = nonAlphanumeric.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "service"
	}
	return slug
}

// uniqueSlug disambiguates a taken slug with a numeric suffix
// (my-service, my-service-2, my-service-3, ...).
func uniqueSlug(base string, exists func(string) (bool, error)) (string, error) {
	slug := base
	for i := 2; ; i++ {
		taken, err := exists(slug)
		if err != nil {
			return "", err
		}
		if !taken {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}
