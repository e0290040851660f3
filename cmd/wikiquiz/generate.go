package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/wikiquiz"
)

// Run executes the generate command.
func (c *GenerateCmd) Run(deps *Dependencies) error {
	quiz, err := deps.Service.GenerateQuiz(deps.Ctx, c.URL, c.Questions)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wikiquiz.ErrorMessage(err))
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(quiz)
	}

	printQuiz(deps, quiz)
	return nil
}

func printQuiz(deps *Dependencies, quiz *wikiquiz.Quiz) {
	fmt.Fprintf(deps.Stdout, "%s (quiz #%d)\n", quiz.Title, quiz.ID)
	if quiz.Summary != "" {
		fmt.Fprintf(deps.Stdout, "%s\n", quiz.Summary)
	}
	fmt.Fprintln(deps.Stdout)

	for i, q := range quiz.Questions {
		fmt.Fprintf(deps.Stdout, "%d. [%s] %s\n", i+1, q.Difficulty, q.QuestionText)
		for j, opt := range q.Options {
			marker := " "
			if opt == q.CorrectAnswer {
				marker = "*"
			}
			fmt.Fprintf(deps.Stdout, "   %s %c) %s\n", marker, 'a'+rune(j), opt)
		}
		if q.Explanation != "" {
			fmt.Fprintf(deps.Stdout, "      %s\n", q.Explanation)
		}
		fmt.Fprintln(deps.Stdout)
	}

	if len(quiz.RelatedTopics) > 0 {
		fmt.Fprintf(deps.Stdout, "Related topics: ")
		for i, topic := range quiz.RelatedTopics {
			if i > 0 {
				fmt.Fprint(deps.Stdout, ", ")
			}
			fmt.Fprint(deps.Stdout, topic)
		}
		fmt.Fprintln(deps.Stdout)
	}
}
