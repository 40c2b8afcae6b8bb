package search

import (
	"context"

	"employeehub/ai"
)

// LanguageModel turns a prompt into completion text.
type LanguageModel interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Generator produces raw SQL candidates. Its output is not sanitized.
type Generator struct {
	model LanguageModel
	opts  ai.PromptOptions
}

func NewGenerator(model LanguageModel, opts ai.PromptOptions) *Generator {
	return &Generator{model: model, opts: opts}
}

// Generate asks the model for a statement answering question.
func (g *Generator) Generate(ctx context.Context, question string) (string, error) {
	out, err := g.model.Generate(ctx, ai.BuildSQLPrompt(g.opts, question))
	if err != nil {
		return "", &GenerationError{Err: err}
	}
	return out, nil
}

// Correct asks the model to repair failingSQL given the database error message.
func (g *Generator) Correct(ctx context.Context, failingSQL, errMsg string) (string, error) {
	out, err := g.model.Generate(ctx, ai.BuildCorrectionPrompt(g.opts, failingSQL, errMsg))
	if err != nil {
		return "", &GenerationError{Err: err}
	}
	return out, nil
}
