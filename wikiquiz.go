// Package wikiquiz turns Wikipedia articles into structured quizzes.
// It fetches an article, extracts structured content (title, summary,
// sections, key entities, cleaned body text), generates quiz questions and
// related topics with a language model, and persists the result so repeat
// requests for the same URL are served from storage.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, gemini/, sqlite/).
package wikiquiz
