package main

import (
	"fmt"
)

// Run executes the process command.
func (c *ProcessCmd) Run(deps *Dependencies) error {
	for i, u := range c.URLs {
		if err := deps.Session.SetURL(i, u); err != nil {
			return err
		}
	}

	controller := deps.Controller(func(message string) {
		fmt.Fprintln(deps.Stdout, message)
	})

	return controller.ProcessURLs(deps.Ctx, deps.Session.URLs())
}
