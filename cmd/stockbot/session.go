package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/fwojciec/stockbot"
	"golang.org/x/sync/errgroup"
)

const sessionHelp = `Commands:
  url N [VALUE]     set URL slot N (empty VALUE clears it)
  urls              list URL slots
  process           index the URL slots in the background
  wait              wait for background processing to finish
  question TEXT     set the question
  ask [TEXT]        ask TEXT, or the current question
  show              show session state
  help              show this help
  quit              end the session`

// Run executes the session command. It reads commands from stdin until EOF
// or quit. Processing runs in the background so the session stays usable;
// the controller rejects overlapping operations.
func (c *SessionCmd) Run(deps *Dependencies) error {
	stdout := &syncWriter{w: deps.Stdout}
	stderr := &syncWriter{w: deps.Stderr}

	controller := deps.Controller(func(message string) {
		fmt.Fprintln(stdout, message)
	})

	var g errgroup.Group
	defer func() { _ = g.Wait() }()

	fmt.Fprintf(stdout, "Session %s with %d URL slots. Type 'help' for commands.\n", deps.Session.ID(), len(deps.Session.URLs()))

	// Stdin is read on its own goroutine so cancellation ends the session
	// without waiting for another line. The reader may stay blocked until
	// the process exits.
	lines := make(chan string)
	readErr := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)
	go func() {
		scanner := bufio.NewScanner(deps.Stdin)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		readErr <- scanner.Err()
		close(lines)
	}()

	for {
		var line string
		select {
		case <-deps.Ctx.Done():
			return deps.Ctx.Err()
		case l, ok := <-lines:
			if !ok {
				return <-readErr
			}
			line = l
		}

		name, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
		switch name {
		case "":
		case "url":
			slot, value, _ := strings.Cut(rest, " ")
			n, err := strconv.Atoi(slot)
			if err != nil {
				fmt.Fprintf(stderr, "error: invalid slot %q\n", slot)
				continue
			}
			if err := deps.Session.SetURL(n-1, value); err != nil {
				fmt.Fprintf(stderr, "error: %s\n", stockbot.ErrorMessage(err))
			}
		case "urls":
			printURLs(stdout, deps.Session.URLs())
		case "process":
			urls := deps.Session.URLs()
			g.Go(func() error {
				if err := controller.ProcessURLs(deps.Ctx, urls); err != nil {
					fmt.Fprintf(stderr, "error: %s\n", stockbot.ErrorMessage(err))
				}
				return nil
			})
		case "wait":
			_ = g.Wait()
		case "question":
			deps.Session.SetQuestion(rest)
		case "ask":
			question := rest
			if question == "" {
				question = deps.Session.Question()
			}
			if err := controller.AskQuestion(deps.Ctx, question); err != nil {
				fmt.Fprintf(stderr, "error: %s\n", stockbot.ErrorMessage(err))
				continue
			}
			printAnswer(stdout, deps.Session.Answer())
		case "show":
			printSnapshot(stdout, deps.Session.Snapshot())
		case "help":
			fmt.Fprintln(stdout, sessionHelp)
		case "quit", "exit":
			return nil
		default:
			fmt.Fprintf(stderr, "error: unknown command %q. Type 'help' for commands.\n", name)
		}
	}
}

func printURLs(w io.Writer, urls []string) {
	for i, u := range urls {
		fmt.Fprintf(w, "URL %d: %s\n", i+1, u)
	}
}

func printSnapshot(w io.Writer, snap stockbot.SessionSnapshot) {
	printURLs(w, snap.URLs)
	if snap.Busy {
		fmt.Fprintln(w, "Status: busy")
	} else {
		fmt.Fprintln(w, "Status: idle")
	}
	if len(snap.Progress) > 0 {
		fmt.Fprintln(w, "Progress:")
		for _, msg := range snap.Progress {
			fmt.Fprintln(w, "  "+msg)
		}
	}
	if snap.Question != "" {
		fmt.Fprintf(w, "Question: %s\n", snap.Question)
	}
	printAnswer(w, snap.Answer)
}

// syncWriter serializes writes from the session loop and background work.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}
