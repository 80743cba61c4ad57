// Package input contains identifiers used in getting Moonlight command input
// from the CLI or other sources of input.
package input

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// DefaultPrompt is shown before each line of input is read.
const DefaultPrompt = ">> "

// DirectReader implements command.Reader and reads commands from any generic
// input stream directly. It can be used generically with any io.Reader but
// does not sanitize the input of control and escape sequences.
//
// DirectReader should not be used directly; instead, create one with
// [NewDirectReader].
type DirectReader struct {
	r *bufio.Reader
}

// InteractiveReader implements command.Reader and reads commands from stdin
// using a go implementation of the GNU Readline library. This keeps input clear
// of all typing and editing escape sequences and enables the use of command
// history. This should in general only be used when directly connected to a
// TTY for input.
//
// InteractiveReader should not be used directly; instead, create one with
// [NewInteractiveReader].
type InteractiveReader struct {
	rl *readline.Instance
}

// NewDirectReader creates a new DirectReader with a buffered reader on the
// provided reader.
func NewDirectReader(r io.Reader) *DirectReader {
	return &DirectReader{
		r: bufio.NewReader(r),
	}
}

// NewInteractiveReader creates a new InteractiveReader and initializes
// readline with the given prompt. The returned InteractiveReader must have
// Close() called on it before disposal to properly teardown readline
// resources.
func NewInteractiveReader(prompt string) (*InteractiveReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		return nil, fmt.Errorf("create readline config: %w", err)
	}

	return &InteractiveReader{rl: rl}, nil
}

// Close cleans up resources associated with the DirectReader. It currently
// does nothing but is here so DirectReader implements command.Reader.
func (dr *DirectReader) Close() error {
	return nil
}

// Close cleans up readline resources associated with the InteractiveReader.
func (ir *InteractiveReader) Close() error {
	return ir.rl.Close()
}

// ReadCommand reads the next line from the input stream. The returned string
// will only be empty if there is an error reading input, otherwise this
// function blocks until a line containing non-space characters is read. The
// line is returned with surrounding whitespace removed.
//
// If at end of input, the returned string will be empty and error will be
// io.EOF. If any other error occurs, the returned string will be empty and
// error will be that error.
func (dr *DirectReader) ReadCommand() (string, error) {
	var line string
	var err error

	for line == "" {
		line, err = dr.r.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return "", err
		}

		line = strings.TrimSpace(line)
		if line == "" && err == io.EOF {
			return "", io.EOF
		}
	}

	return line, nil
}

// ReadCommand reads the next command from stdin. The returned string will only
// be empty if there is an error, otherwise this function blocks until a line
// consisting of more than empty or whitespace-only input is read.
//
// If at end of input or if the user interrupts, the returned string will be
// empty and error will be io.EOF. If any other error occurs, the returned
// string will be empty and error will be that error.
func (ir *InteractiveReader) ReadCommand() (string, error) {
	var line string
	var err error

	for line == "" {
		line, err = ir.rl.Readline()
		if err == readline.ErrInterrupt {
			return "", io.EOF
		}
		if err != nil && (err != io.EOF || line == "") {
			return "", err
		}

		line = strings.TrimSpace(line)
	}

	return line, nil
}
