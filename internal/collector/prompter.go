// =============================================================================
// Voyage Data Collector - Input Source
// =============================================================================
//
// This module defines the abstract input source the collector asks questions
// through, plus the real console implementation.
//
// DESIGN:
//   The collector never touches the terminal directly. It calls Ask with a
//   prompt and blocks until a response (or an interrupt) arrives. Tests
//   substitute a scripted source; the CLI wires up ConsolePrompter.
//
// INTERRUPTION:
//   Ctrl-C (SIGINT) or end-of-input while a question is pending resolves the
//   pending Ask with ErrInterrupted. The session layer treats that as
//   "discard partial data and stop", never as a crash.
//
// =============================================================================

package collector

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
)

// ErrInterrupted is returned by an input source when the operator cancels
// the session (Ctrl-C or closed input).
var ErrInterrupted = errors.New("collection interrupted")

// InputSource is a synchronous text question/answer channel. One logical
// question per call; Ask blocks until a response is available.
type InputSource interface {
	Ask(prompt string) (string, error)
}

// =============================================================================
// CONSOLE PROMPTER
// =============================================================================

// ConsolePrompter reads responses line-by-line from a terminal (or any
// reader) and listens for SIGINT while a question is pending.
type ConsolePrompter struct {
	out   io.Writer
	lines chan string
	errs  chan error
	sig   chan os.Signal
}

// NewConsolePrompter starts reading lines from in and watching for SIGINT.
// Call Close when the session ends to release the signal handler.
func NewConsolePrompter(in io.Reader, out io.Writer) *ConsolePrompter {
	p := &ConsolePrompter{
		out:   out,
		lines: make(chan string),
		errs:  make(chan error, 1),
		sig:   make(chan os.Signal, 1),
	}
	signal.Notify(p.sig, os.Interrupt)

	// The reader goroutine is the only place input is consumed; Ask just
	// waits on whichever event arrives first.
	go func() {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			p.lines <- scanner.Text()
		}
		if err := scanner.Err(); err != nil {
			p.errs <- err
			return
		}
		p.errs <- io.EOF
	}()

	return p
}

// Ask prints the prompt and blocks for the next line of input.
func (p *ConsolePrompter) Ask(prompt string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", prompt)
	select {
	case line := <-p.lines:
		return line, nil
	case <-p.sig:
		fmt.Fprintln(p.out)
		return "", ErrInterrupted
	case err := <-p.errs:
		if errors.Is(err, io.EOF) {
			return "", ErrInterrupted
		}
		return "", err
	}
}

// Close releases the SIGINT handler.
func (p *ConsolePrompter) Close() {
	signal.Stop(p.sig)
}
