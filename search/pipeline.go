package search

import (
	"context"
	"log"

	"employeehub/ai"
	"employeehub/service"
	"employeehub/validation"
)

// Result is a successful search: the rows and the statement that produced them.
type Result struct {
	Rows []service.Record
	SQL  string
}

// Pipeline answers natural-language questions about the employees table.
type Pipeline struct {
	generator  *Generator
	controller *Controller
}

func NewPipeline(model LanguageModel, reader RowReader, opts ai.PromptOptions, maxAttempts int) *Pipeline {
	generator := NewGenerator(model, opts)
	return &Pipeline{
		generator:  generator,
		controller: NewController(reader, generator, maxAttempts),
	}
}

// Search generates, sanitizes and executes a statement for prompt. A rejected
// candidate is returned as *validation.RejectedSQLError without touching the database.
func (p *Pipeline) Search(ctx context.Context, prompt string) (*Result, error) {
	raw, err := p.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}
	log.Printf("Generated SQL: %s", raw)

	sql, err := validation.SanitizeSQL(raw)
	if err != nil {
		return nil, err
	}

	rows, finalSQL, err := p.controller.Run(ctx, sql)
	if err != nil {
		return nil, err
	}

	return &Result{Rows: rows, SQL: finalSQL}, nil
}
