package services

import (
	"context"
	"fmt"
	"strings"

	"mimarlik-backend/internal/utils"
)

// maxSlugLength matches the size of the slug columns.
const maxSlugLength = 200

type slugExistsFunc func(ctx context.Context, slug string, excludeID uint) (bool, error)

// uniqueSlug slugifies title and appends -2, -3 ... until no other row owns it.
// The base is shortened so the suffixed slug still fits the column.
func uniqueSlug(ctx context.Context, title string, excludeID uint, exists slugExistsFunc) (string, error) {
	base := utils.Slugify(title)
	if base == "" {
		return "", fmt.Errorf("%w: title must contain letters or digits", ErrValidation)
	}

	slug := truncateSlug(base, maxSlugLength)
	for n := 2; ; n++ {
		taken, err := exists(ctx, slug, excludeID)
		if err != nil {
			return "", err
		}
		if !taken {
			return slug, nil
		}
		suffix := fmt.Sprintf("-%d", n)
		slug = truncateSlug(base, maxSlugLength-len(suffix)) + suffix
	}
}

// truncateSlug cuts an ASCII slug to at most n bytes without a trailing hyphen.
func truncateSlug(slug string, n int) string {
	if len(slug) <= n {
		return slug
	}
	return strings.TrimRight(slug[:n], "-")
}
