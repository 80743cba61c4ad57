// Package moonlight contains a CLI-driven engine for getting commands and
// advancing the game state continuously until the user quits.
package moonlight

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dekarrin/moonlight/internal/command"
	"github.com/dekarrin/moonlight/internal/game"
	"github.com/dekarrin/moonlight/internal/input"
	"github.com/dekarrin/moonlight/internal/mlw"
	"github.com/dekarrin/rosed"
)

const consoleOutputWidth = 80

// Briefing is shown when a game begins.
const Briefing = `You are a spy; codename: Moonlight.
You have been tasked to get closer to your enemy in a particular way...
By making their favourite dessert.
However, time is ticking, and the night has dawned.
You may have to find the ingredients in not-so-legal ways...
Currently, you are at the mall, after lights out. You have entered through the first shop in the mall, and many closed shops surround you.
Luckily for you, some of them are still open, and you can get them very legally.
It is up to you to find all of the ingredients.

In the first shop, there are shops to your east and south.`

// Engine contains the things needed to run a game from an interactive shell
// attached to an input stream and an output stream.
type Engine struct {
	state       *game.State
	in          command.Reader
	out         *bufio.Writer
	interactive bool
	forceDirect bool
	running     bool
}

// New loads the world in worldFilePath and returns an Engine that plays it
// with commands read from in and output written to out. A nil in or out means
// stdin or stdout.
//
// Commands are read through readline only when playing on stdin and stdout
// and forceDirectInput is not set.
func New(in io.Reader, out io.Writer, worldFilePath string, forceDirectInput bool) (*Engine, error) {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}

	wd, err := mlw.Load(worldFilePath)
	if err != nil {
		return nil, err
	}
	state, err := game.New(wd.World, wd.Player)
	if err != nil {
		return nil, fmt.Errorf("start game: %w", err)
	}

	eng := &Engine{
		state:       state,
		out:         bufio.NewWriter(out),
		forceDirect: forceDirectInput,
		interactive: !forceDirectInput && in == os.Stdin && out == os.Stdout,
	}

	if !eng.interactive {
		eng.in = input.NewDirectReader(in)
		return eng, nil
	}

	eng.in, err = input.NewInteractiveReader(input.DefaultPrompt)
	if err != nil {
		return nil, fmt.Errorf("open readline: %w", err)
	}
	return eng, nil
}

// State returns the game being played.
func (eng *Engine) State() *game.State {
	return eng.state
}

// Close releases the command reader. It fails while RunUntilQuit is running.
func (eng *Engine) Close() error {
	if eng.running {
		return fmt.Errorf("engine is still running")
	}
	if err := eng.in.Close(); err != nil {
		return fmt.Errorf("close command reader: %w", err)
	}
	return nil
}

// RunUntilQuit begins reading commands from the streams and applying them to
// the game until "quit" is entered or input ends.
func (eng *Engine) RunUntilQuit() error {
	introMsg := Briefing + "\n"
	if eng.forceDirect {
		introMsg += "(direct input mode)\n"
	}
	introMsg += "\n"
	introMsg += eng.state.Advance(command.Command{Kind: command.Look, Operands: []string{"room"}})

	if err := eng.write(introMsg); err != nil {
		return err
	}

	eng.running = true
	// so we dont have to remember to do this on every returned error condition
	defer func() {
		eng.running = false
	}()

	for eng.running {
		if !eng.interactive {
			if err := eng.writeRaw("\n" + input.DefaultPrompt); err != nil {
				return err
			}
		}

		line, err := eng.in.ReadCommand()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return fmt.Errorf("get user command: %w", err)
		}

		output := eng.state.Execute(line)
		if err := eng.write(output); err != nil {
			return err
		}

		if command.IsQuit(line) {
			eng.running = false
		}
	}

	return eng.write("Goodbye")
}

// write sends s to the output wrapped to the console width, followed by a
// newline.
func (eng *Engine) write(s string) error {
	return eng.writeRaw(wrap(s, consoleOutputWidth) + "\n")
}

func (eng *Engine) writeRaw(s string) error {
	if _, err := eng.out.WriteString(s); err != nil {
		return fmt.Errorf("could not write output: %w", err)
	}
	if err := eng.out.Flush(); err != nil {
		return fmt.Errorf("could not flush output: %w", err)
	}
	return nil
}

// wrap wraps each line of s to width separately so that the line breaks
// already in s are kept.
func wrap(s string, width int) string {
	lines := strings.Split(s, "\n")
	for i := range lines {
		if len(lines[i]) > width {
			lines[i] = rosed.Edit(lines[i]).Wrap(width).String()
		}
	}
	return strings.Join(lines, "\n")
}
