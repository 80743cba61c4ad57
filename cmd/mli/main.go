/*
Mli starts an interactive Moonlight game session.

It reads in a world file and starts the game in the world's starting room. The
interpreter will then print what is happening in the game to stdout and will
read user input from stdin until "quit" is entered or input ends.

Usage:

	mli [flags]

The flags are:

	-v, --version
		Give the current version of Moonlight and then exit.

	-w, --world FILE
		Use the provided world file. The format is picked by extension: .toml
		and .mlw are MLW TOML files, .yaml and .yml are MLW YAML files, and .txt
		is the line-based world format. Defaults to the file "world.toml" in the
		current working directory.

	-d, --direct
		Force reading directly from the console as opposed to using GNU readline
		based routines for reading command input even if launched in a tty with
		stdin and stdout.

Once a session has started, the user input will be parsed for Moonlight
commands. For an explanation of the commands, type "HELP" once in a session. To
exit the interpreter, type "QUIT".
*/
package main

import (
	"fmt"
	"os"

	"github.com/dekarrin/moonlight"
	"github.com/dekarrin/moonlight/internal/version"
	"github.com/spf13/pflag"
)

// Exit codes of mli.
const (
	ExitSuccess = iota

	// ExitGameError is given when reading input or writing output fails
	// partway through a game.
	ExitGameError

	// ExitInitError is given when the world could not be loaded.
	ExitInitError
)

var (
	flagVersion = pflag.BoolP("version", "v", false, "Give the current version of Moonlight and then exit.")
	flagWorld   = pflag.StringP("world", "w", "world.toml", "Play the world in the given world data file.")
	flagDirect  = pflag.BoolP("direct", "d", false, "Read from stdin directly instead of through readline.")
)

func main() {
	os.Exit(run())
}

// run plays one game on the console and returns the exit code. The engine is
// closed before run returns.
func run() int {
	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s\n", version.Current)
		return ExitSuccess
	}

	eng, err := moonlight.New(os.Stdin, os.Stdout, *flagWorld, *flagDirect)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		return ExitInitError
	}
	defer eng.Close()

	if err := eng.RunUntilQuit(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		return ExitGameError
	}
	return ExitSuccess
}
