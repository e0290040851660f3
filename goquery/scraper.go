// Package goquery implements the Wikipedia article scraper on top of
// CSS-selector based HTML traversal.
package goquery

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/wikiquiz"
)

// Extraction limits. Wikipedia markup varies wildly across articles, so each
// extraction step degrades to an empty value instead of failing; the caps
// keep generator input bounded.
const (
	maxSections        = 15
	maxEntitiesPerKind = 15
	maxEntityLinks     = 150
	maxContentChars    = 15000
	minSummaryParaLen  = 50
	maxSummaryParas    = 3
	minTextBlockLen    = 30
)

// excludedSections are boilerplate headings never reported as article sections.
var excludedSections = map[string]bool{
	"Contents":        true,
	"References":      true,
	"External links":  true,
	"See also":        true,
	"Notes":           true,
	"Bibliography":    true,
	"Further reading": true,
}

// Ensure Scraper implements wikiquiz.Scraper at compile time.
var _ wikiquiz.Scraper = (*Scraper)(nil)

// Scraper extracts structured article content from Wikipedia pages.
type Scraper struct {
	fetcher wikiquiz.Fetcher
}

// NewScraper creates a new Scraper that fetches pages with fetcher.
func NewScraper(fetcher wikiquiz.Fetcher) *Scraper {
	return &Scraper{fetcher: fetcher}
}

// Scrape fetches the article at url and derives a structured Article.
func (s *Scraper) Scrape(ctx context.Context, url string) (*wikiquiz.Article, error) {
	if err := wikiquiz.ValidateArticleURL(url); err != nil {
		return nil, err
	}

	html, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, wikiquiz.Errorf(wikiquiz.EUNAVAILABLE, "failed to fetch Wikipedia article: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, wikiquiz.Errorf(wikiquiz.EINTERNAL, "failed to parse article HTML: %v", err)
	}

	// Full-text extraction prunes non-prose nodes from the document, so it
	// must run after every other step.
	article := &wikiquiz.Article{
		Title:       extractTitle(doc),
		Summary:     extractSummary(doc),
		Sections:    extractSections(doc),
		KeyEntities: extractEntities(doc),
		RawHTML:     html,
	}
	article.ContentText = extractFullText(doc)

	return article, nil
}

// contentContainer locates the main content element. The primary selector
// covers standard article markup; the fallback covers skin variants that
// omit the bodyContent wrapper.
func contentContainer(doc *goquery.Document) *goquery.Selection {
	sel := doc.Find("div#bodyContent").First()
	if sel.Length() == 0 {
		sel = doc.Find("div.mw-parser-output").First()
	}
	return sel
}

func extractTitle(doc *goquery.Document) string {
	if heading := doc.Find("h1#firstHeading").First(); heading.Length() > 0 {
		if title := strings.TrimSpace(heading.Text()); title != "" {
			return title
		}
	}
	if pageTitle := doc.Find("title").First(); pageTitle.Length() > 0 {
		title := strings.ReplaceAll(pageTitle.Text(), " - Wikipedia", "")
		if title = strings.TrimSpace(title); title != "" {
			return title
		}
	}
	return wikiquiz.UnknownTitle
}

func extractSummary(doc *goquery.Document) string {
	container := contentContainer(doc)

	var paragraphs []string
	container.Find("p").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := strings.TrimSpace(sel.Text())
		if len(text) > minSummaryParaLen {
			paragraphs = append(paragraphs, text)
		}
		return len(paragraphs) < maxSummaryParas
	})

	return strings.Join(paragraphs, " ")
}

func extractSections(doc *goquery.Document) []string {
	container := contentContainer(doc)

	var sections []string
	container.Find("h2, h3").Each(func(_ int, sel *goquery.Selection) {
		headline := sel.Find("span.mw-headline").First()
		if headline.Length() == 0 {
			return
		}
		text := strings.TrimSpace(headline.Text())
		if text == "" || excludedSections[text] {
			return
		}
		sections = append(sections, text)
	})

	if len(sections) > maxSections {
		sections = sections[:maxSections]
	}
	return sections
}

func extractFullText(doc *goquery.Document) string {
	container := contentContainer(doc)
	if container.Length() == 0 {
		return ""
	}

	// Strip non-prose elements and inline edit links before walking text.
	container.Find("table, script, style, sup, div.navbox, div.reflist").Remove()
	container.Find("span.mw-editsection").Remove()

	// Headings become markdown-style markers so section structure survives
	// as content; prose blocks below the length floor are dropped.
	var blocks []string
	container.Find("p, h2, h3").Each(func(_ int, sel *goquery.Selection) {
		if goquery.NodeName(sel) != "p" {
			headline := strings.TrimSpace(sel.Find("span.mw-headline").First().Text())
			if headline != "" {
				blocks = append(blocks, "## "+headline)
			}
			return
		}
		text := strings.TrimSpace(sel.Text())
		if len(text) > minTextBlockLen {
			blocks = append(blocks, text)
		}
	})

	fullText := strings.Join(blocks, "\n\n")
	if len(fullText) > maxContentChars {
		fullText = fullText[:maxContentChars]
	}
	return fullText
}

// Entity categories.
const (
	categoryPerson       = "person"
	categoryOrganization = "organization"
	categoryLocation     = "location"
)

var (
	organizationKeywords = []string{"university", "institute", "organization", "company", "corporation", "laboratory"}
	locationKeywords     = []string{"city", "country", "state", "kingdom", "empire", "united"}
)

// entityRules classify a qualifying link into a category. Rules are
// evaluated top to bottom and the first match wins: a link target matching
// both an organization and a location keyword is an organization.
var entityRules = []struct {
	category string
	match    func(href, text string) bool
}{
	{categoryOrganization, func(href, _ string) bool { return containsAny(href, organizationKeywords) }},
	{categoryLocation, func(href, _ string) bool { return containsAny(href, locationKeywords) }},
	{categoryPerson, func(_, text string) bool { return looksLikeName(text) }},
}

func extractEntities(doc *goquery.Document) wikiquiz.KeyEntities {
	container := contentContainer(doc)

	sets := map[string]map[string]bool{
		categoryPerson:       {},
		categoryOrganization: {},
		categoryLocation:     {},
	}
	order := map[string][]string{}

	scanned := 0
	container.Find("a[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		scanned++
		href, _ := sel.Attr("href")
		text := strings.TrimSpace(sel.Text())

		if category := classifyLink(href, text); category != "" {
			if !sets[category][text] {
				sets[category][text] = true
				order[category] = append(order[category], text)
			}
		}
		return scanned < maxEntityLinks
	})

	return wikiquiz.KeyEntities{
		People:        capList(order[categoryPerson], maxEntitiesPerKind),
		Organizations: capList(order[categoryOrganization], maxEntitiesPerKind),
		Locations:     capList(order[categoryLocation], maxEntitiesPerKind),
	}
}

// classifyLink returns the entity category for a link, or "" when the link
// does not qualify or matches no rule. Qualification: an article-namespace
// wiki link (no colon in the target) with visible text longer than 2 chars.
func classifyLink(href, text string) string {
	if !strings.Contains(href, "/wiki/") || strings.Contains(href, ":") {
		return ""
	}
	if len(text) <= 2 {
		return ""
	}
	lowered := strings.ToLower(href)
	for _, rule := range entityRules {
		if rule.match(lowered, text) {
			return rule.category
		}
	}
	return ""
}

// looksLikeName reports whether text resembles a person name: at most three
// words, starts with an uppercase letter, and is not an all-caps acronym.
func looksLikeName(text string) bool {
	if len(strings.Fields(text)) > 3 {
		return false
	}
	first, _ := utf8.DecodeRuneInString(text)
	if !unicode.IsUpper(first) {
		return false
	}
	return text != strings.ToUpper(text)
}

func containsAny(s string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}

func capList(items []string, max int) []string {
	if items == nil {
		return []string{}
	}
	if len(items) > max {
		return items[:max]
	}
	return items
}
