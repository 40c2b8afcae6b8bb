package search

import (
	"context"
	"log"
	"strings"

	"employeehub/service"
	"employeehub/validation"
)

const DefaultMaxAttempts = 2

// RowReader runs a read-only statement and returns its rows in server order.
type RowReader interface {
	QueryAll(ctx context.Context, query string, args ...interface{}) ([]service.Record, error)
}

// Corrector produces a replacement candidate for a statement the database rejected.
type Corrector interface {
	Correct(ctx context.Context, failingSQL, errMsg string) (string, error)
}

// State is one of Attempt, Done or Failed.
type State interface {
	isState()
}

// Attempt is a pending execution of SQL. N starts at 1.
type Attempt struct {
	N   int
	SQL string
}

// Done holds the rows of the first statement that executed successfully.
type Done struct {
	Rows []service.Record
	SQL  string
}

// Failed is terminal. Err is an *ExecutionError.
type Failed struct {
	Err error
}

func (Attempt) isState() {}
func (Done) isState()    {}
func (Failed) isState()  {}

// Controller executes sanitized statements and asks for corrections on failure,
// executing at most maxAttempts statements per run.
type Controller struct {
	reader      RowReader
	corrector   Corrector
	maxAttempts int
}

func NewController(reader RowReader, corrector Corrector, maxAttempts int) *Controller {
	if maxAttempts < 1 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Controller{
		reader:      reader,
		corrector:   corrector,
		maxAttempts: maxAttempts,
	}
}

func (c *Controller) MaxAttempts() int {
	return c.maxAttempts
}

// Step executes one attempt and returns the next state.
func (c *Controller) Step(ctx context.Context, a Attempt) State {
	rows, err := c.reader.QueryAll(ctx, stripTerminator(a.SQL))
	if err == nil {
		if rows == nil {
			rows = []service.Record{}
		}
		return Done{Rows: rows, SQL: a.SQL}
	}

	log.Printf("SQL error (attempt %d/%d): %v", a.N, c.maxAttempts, err)

	if ctx.Err() != nil {
		return Failed{Err: &ExecutionError{Attempts: a.N, Err: err}}
	}
	if a.N >= c.maxAttempts {
		return Failed{Err: &ExecutionError{Attempts: a.N, Exhausted: true, Err: err}}
	}

	raw, cerr := c.corrector.Correct(ctx, a.SQL, err.Error())
	if cerr != nil {
		log.Printf("Failed to generate correction: %v", cerr)
		return Failed{Err: &ExecutionError{Attempts: a.N, Err: err}}
	}

	corrected, serr := validation.SanitizeSQL(raw)
	if serr != nil {
		log.Printf("Correction rejected: %v", serr)
		return Failed{Err: &ExecutionError{Attempts: a.N, Err: err}}
	}

	log.Printf("Retrying with corrected SQL: %s", corrected)
	return Attempt{N: a.N + 1, SQL: corrected}
}

// Run drives sql from the first attempt to a terminal state and returns the rows
// together with the statement that produced them.
func (c *Controller) Run(ctx context.Context, sql string) ([]service.Record, string, error) {
	var state State = Attempt{N: 1, SQL: sql}
	for {
		switch s := state.(type) {
		case Attempt:
			state = c.Step(ctx, s)
		case Done:
			return s.Rows, s.SQL, nil
		case Failed:
			return nil, "", s.Err
		}
	}
}

func stripTerminator(sql string) string {
	return strings.TrimSuffix(strings.TrimSpace(sql), ";")
}
