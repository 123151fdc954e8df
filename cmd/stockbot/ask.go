package main

import (
	"fmt"
	"io"

	"github.com/fwojciec/stockbot"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	controller := deps.Controller(nil)

	if err := controller.AskQuestion(deps.Ctx, c.Question); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", stockbot.ErrorMessage(err))
		return err
	}

	printAnswer(deps.Stdout, deps.Session.Answer())
	return nil
}

// printAnswer writes the answer followed by its sources, if any.
func printAnswer(w io.Writer, answer *stockbot.Answer) {
	fmt.Fprint(w, stockbot.FormatAnswer(answer))
}
