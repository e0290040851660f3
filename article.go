package wikiquiz

import (
	"context"
	"regexp"
)

// articleURLPattern matches English Wikipedia article URLs: http or https
// scheme, optional "en." subdomain, "/wiki/" path prefix, non-empty slug.
var articleURLPattern = regexp.MustCompile(`^https?://(en\.)?wikipedia\.org/wiki/.+`)

// ValidateArticleURL returns EINVALID if url is not a Wikipedia article URL.
// It performs no network access.
func ValidateArticleURL(url string) error {
	if !articleURLPattern.MatchString(url) {
		return Errorf(EINVALID, "invalid Wikipedia URL: must be a valid English Wikipedia article URL")
	}
	return nil
}

// UnknownTitle is used when neither title extraction strategy succeeds.
const UnknownTitle = "Unknown Title"

// KeyEntities groups article entities by category. Extraction is a cheap
// link-target heuristic, not NLP, so expect noise.
type KeyEntities struct {
	People        []string `json:"people"`
	Organizations []string `json:"organizations"`
	Locations     []string `json:"locations"`
}

// Article is the structured representation of one fetched article. It is
// ephemeral: produced by a Scraper, consumed by the orchestration service,
// never persisted as-is.
type Article struct {
	// Title is never empty; falls back to UnknownTitle.
	Title string

	// Summary is the joined text of the first qualifying paragraphs.
	// May be empty when the content container is missing.
	Summary string

	// Sections lists section headings in document order, boilerplate
	// headings excluded, capped at 15.
	Sections []string

	// KeyEntities holds categorized entity names, each list capped at 15.
	KeyEntities KeyEntities

	// ContentText is the cleaned, section-annotated body text,
	// capped at 15000 characters.
	ContentText string

	// RawHTML is the full fetched page, retained for audit.
	RawHTML string
}

// Scraper turns a Wikipedia article URL into a structured Article.
type Scraper interface {
	// Scrape fetches and parses the article at url.
	// Returns EINVALID for a malformed or non-Wikipedia URL and
	// EUNAVAILABLE when the fetch fails; individual parsing steps
	// degrade to empty values instead of failing.
	Scrape(ctx context.Context, url string) (*Article, error)
}
