package usecase

import (
	"context"
	"fmt"
	"html"
	"math/rand"
	"strings"
)

type openTDBResponse struct {
	Results []struct {
		Category         string   `json:"category"`
		Difficulty       string   `json:"difficulty"`
		Question         string   `json:"question"`
		CorrectAnswer    string   `json:"correct_answer"`
		IncorrectAnswers []string `json:"incorrect_answers"`
	} `json:"results"`
}

// HandleTrivia fetches one multiple-choice question and posts it with the
// answer behind spoiler markup. Options are shuffled with Fisher-Yates.
func (c *Commands) HandleTrivia(ctx context.Context, req Request) error {
	var resp openTDBResponse
	err := c.web.GetJSON(ctx, c.endpoints.OpenTDB, nil, &resp)
	c.countUpstream("opentdb", err)
	if err != nil {
		return c.reply(ctx, req, "Failed to fetch trivia.")
	}
	if len(resp.Results) == 0 {
		return c.reply(ctx, req, "No trivia found.")
	}

	trivia := resp.Results[0]
	question := html.UnescapeString(trivia.Question)
	correct := html.UnescapeString(trivia.CorrectAnswer)

	options := make([]string, 0, len(trivia.IncorrectAnswers)+1)
	for _, a := range trivia.IncorrectAnswers {
		options = append(options, html.UnescapeString(a))
	}
	options = append(options, correct)
	rand.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return c.reply(ctx, req, fmt.Sprintf(
		"❓ *Trivia (%s - %s):*\n%s\n\n*Options:* %s\n_Answer: ||%s||_",
		trivia.Category, trivia.Difficulty, question, strings.Join(options, ", "), correct))
}
