// Package repl implements the interactive console client: a read loop that
// feeds user questions into the query use case and prints the answers.
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// QueryRunner answers one user prompt. Satisfied by usecase.QueryUseCase.
type QueryRunner interface {
	Execute(ctx context.Context, prompt string) (string, error)
}

// REPL is the interactive loop. It owns no state beyond its streams.
type REPL struct {
	queries QueryRunner
	in      io.Reader
	out     io.Writer
	logger  *slog.Logger
}

// New builds a REPL reading prompts from in and writing answers to out.
func New(queries QueryRunner, in io.Reader, out io.Writer, logger *slog.Logger) *REPL {
	return &REPL{
		queries: queries,
		in:      in,
		out:     out,
		logger:  logger.With(slog.String("component", "repl")),
	}
}

// Run loops until the user types an exit command, input ends, or the context
// is canceled. Blank lines are skipped; a failed query is reported and the
// loop continues.
func (r *REPL) Run(ctx context.Context) error {
	fmt.Fprintln(r.out, "Helpdesk assistant ready. Type your questions below; 'exit' or 'quit' to stop.")

	scanner := bufio.NewScanner(r.in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(r.out, "\nYou: ")
		if !scanner.Scan() {
			fmt.Fprintln(r.out)
			return scanner.Err()
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		switch strings.ToLower(line) {
		case "exit", "quit", "q":
			fmt.Fprintln(r.out, "Goodbye!")
			return nil
		}

		answer, err := r.queries.Execute(ctx, line)
		if err != nil {
			// An interrupt mid-query ends the session so the caller can shut
			// the tool servers down; going back to Scan would block forever.
			if ctx.Err() != nil {
				return ctx.Err()
			}
			r.logger.Error("Query failed", slog.Any("error", err))
			fmt.Fprintf(r.out, "Error: %v\n", err)
			continue
		}
		fmt.Fprintf(r.out, "\nAssistant: %s\n", answer)
	}
}
