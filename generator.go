package wikiquiz

import "context"

// Generator produces quiz questions and related topics from extracted
// article content using a language model.
//
// The two operations have deliberately different failure contracts:
// question generation is load-bearing and fails loudly, while related
// topics are supplementary and always produce a usable list.
type Generator interface {
	// GenerateQuestions asks the model for count questions about the
	// article. Candidates without exactly 4 options, or whose answer is
	// not one of its options, are dropped. Returns EINTERNAL when the
	// model response cannot be parsed at all.
	GenerateQuestions(ctx context.Context, article *Article, count int) ([]*Question, error)

	// GenerateRelatedTopics asks the model for further-reading topics.
	// It never fails: any error is recovered locally by returning a
	// deterministic fallback list derived from the article title.
	GenerateRelatedTopics(ctx context.Context, article *Article) []string
}
