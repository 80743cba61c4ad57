/*
Mlserver starts a Moonlight server that hosts one game and begins listening for
new connections.

Usage:

	mlserver [flags]
	mlserver [flags] -l [[ADDRESS]:PORT]

Once started, the Moonlight server will listen for HTTP requests and respond to
them using REST protocol. By default, it will listen on localhost:8080. This can
be changed with the --listen/-l flag (or config via environment var). The flag
argument must be either a full address with port, such as "192.168.0.2:6001", or
just the IP address preceeded by a colon, such as ":6001".

Before flags are read, a file named ".env" in the current working directory is
loaded if it exists. Variables it sets are only used when they are not already
set in the environment.

The server creates one account named after the player in the world file. Its
password is taken from environment variable MOONLIGHT_PASSWORD; if that is not
set, a random one is generated and printed to the log.

If a JWT token secret is not given, one will be automatically generated. As a
consequence, in this mode of operation all tokens are rendered invalid as soon
as the server shuts down.

The flags are:

	-v, --version
		Give the current version of the Moonlight server and then exit.

	-l, --listen LISTEN_ADDRESS
		Listen on the given address. Must be in BIND_ADDRESS:PORT or :PORT
		format. If not given, will default to the value of environment variable
		MOONLIGHT_LISTEN_ADDRESS, and if that is not given, will default to
		localhost:8080.

	-s, --secret TOKEN_SECRET
		Use the provided secret for signing JWT tokens. If there are less than
		32 bytes in the secret, it will be repeated until it is. The maximum
		size is 64 bytes. If not given, will default to the value of environment
		variable MOONLIGHT_TOKEN_SECRET. If no secret is specified or an empty
		secret is given, a random secret will be automatically generated.

	--db DRIVER[:PARAMS]
		Use the given DB connection string. DRIVER must be one of the following:
		inmem, sqlite. inmem has no further params. sqlite needs the path to the
		data directory such as sqlite:path/to/db_dir. If not given, will default
		to the value of environment variable MOONLIGHT_DATABASE. If no DB driver
		is specified or an empty one is given, an in-memory database is
		automatically selected.

	-w, --world FILE
		Host the game defined in the given world file. If not given, will
		default to the value of environment variable MOONLIGHT_WORLD, and if
		that is not given, will default to "world.toml".
*/
package main

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/dekarrin/moonlight/internal/version"
	"github.com/dekarrin/moonlight/server"
	"github.com/dekarrin/moonlight/server/serr"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

const (
	EnvListen   = "MOONLIGHT_LISTEN_ADDRESS"
	EnvSecret   = "MOONLIGHT_TOKEN_SECRET"
	EnvDB       = "MOONLIGHT_DATABASE"
	EnvWorld    = "MOONLIGHT_WORLD"
	EnvPassword = "MOONLIGHT_PASSWORD"
)

var (
	flagVersion = pflag.BoolP("version", "v", false, "Give the current version of Moonlight server and then exit.")
	flagListen  = pflag.StringP("listen", "l", "", "Listen on the given address.")
	flagSecret  = pflag.StringP("secret", "s", "", "Use the given secret for token generation.")
	flagDB      = pflag.String("db", "", "Use the given DB connection string.")
	flagWorld   = pflag.StringP("world", "w", "", "Host the game in the given world file.")
)

func main() {
	os.Exit(run())
}

// run starts the server and returns the exit code. The server is closed before
// run returns on every path after it has been created.
func run() int {
	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s (Moonlight v%s)\n", version.ServerCurrent, version.Current)
		return 0
	}

	if len(pflag.Args()) > 0 {
		fmt.Fprintf(os.Stderr, "Too many arguments\nDo -h for help.\n")
		return 1
	}

	// godotenv.Load never overwrites variables that are already set.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Could not read .env file: %s\n", err)
		return 1
	}

	addr, port, err := listenAddress(configValue(EnvListen, "listen", *flagListen))
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\nDo -h for help.\n", err)
		return 1
	}

	cfg := server.Config{
		World: configValue(EnvWorld, "world", *flagWorld),
	}

	cfg.Store, err = server.ParseStore(configValue(EnvDB, "db", *flagDB))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Not a valid DB string: %s\nDo -h for help.\n", err)
		return 1
	}

	cfg.Secret, err = tokenSecret(configValue(EnvSecret, "secret", *flagSecret))
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\nDo -h for help.\n", err)
		return 1
	}

	// configuration complete, initialize the server
	mls, err := server.New(cfg)
	if err != nil {
		log.Printf("FATAL could not start server: %s", err.Error())
		return 1
	}
	defer func() {
		if err := mls.Close(); err != nil {
			log.Printf("ERROR could not close server: %s", err.Error())
		}
	}()
	log.Printf("DEBUG Server initialized")

	// immediately create the operator so we have someone we can log in as.
	password := os.Getenv(EnvPassword)
	generated := password == ""
	if generated {
		password, err = generatePassword()
		if err != nil {
			log.Printf("FATAL could not generate operator password: %s", err.Error())
			return 1
		}
	}

	op, err := mls.CreateOperator(context.Background(), password)
	if err != nil {
		if !errors.Is(err, serr.ErrAlreadyExists) {
			log.Printf("FATAL could not create operator account: %s", err.Error())
			return 1
		}
		log.Printf("INFO  Operator account already exists; keeping its existing password")
	} else if generated {
		log.Printf("INFO  Added operator account %q with generated password %q", op.Name, password)
	} else {
		log.Printf("INFO  Added operator account %q", op.Name)
	}

	log.Printf("INFO  Starting Moonlight server %s...", version.ServerCurrent)
	if err := mls.ServeForever(addr, port); err != nil {
		log.Printf("FATAL %s", err.Error())
		return 1
	}
	return 0
}

// listenAddress splits a listen address in ADDRESS:PORT or :PORT format. An
// empty string gives the server's default address.
func listenAddress(s string) (addr string, port int, err error) {
	if s == "" {
		return "", 0, nil
	}

	addr, portStr, ok := strings.Cut(s, ":")
	if !ok {
		return "", 0, fmt.Errorf("Listen address is not in ADDRESS:PORT or :PORT format.")
	}
	port, err = strconv.Atoi(portStr)
	if err != nil {
		return "", 0, fmt.Errorf("%q is not a valid port number.", portStr)
	}
	return addr, port, nil
}

// tokenSecret gives the secret to sign tokens with. A given secret is repeated
// until it is at least server.MinSecretSize bytes; an empty one means a random
// secret of server.MaxSecretSize bytes is generated.
func tokenSecret(s string) ([]byte, error) {
	if s == "" {
		secret := make([]byte, server.MaxSecretSize)
		if _, err := rand.Read(secret); err != nil {
			return nil, fmt.Errorf("Could not generate token secret: %w", err)
		}

		// yell at the user bc they should know their secret might be bad
		log.Printf("WARN  Using generated token secret; all tokens issued will become invalid at shutdown")
		return secret, nil
	}

	secret := []byte(s)
	for len(secret) < server.MinSecretSize {
		secret = append(secret, secret...)
	}

	// keys would be chopped at 64, so rather than the user thinking they have
	// more security by giving a longer key, refuse to start.
	if len(secret) > server.MaxSecretSize {
		return nil, fmt.Errorf("Token secret is %d bytes, but it must be <= %d bytes", len(secret), server.MaxSecretSize)
	}
	return secret, nil
}

// configValue returns the value of the named flag if it was given on the
// command line, or the value of the environment variable env otherwise.
func configValue(env, flagName, flagVal string) string {
	if pflag.Lookup(flagName).Changed {
		return flagVal
	}
	return os.Getenv(env)
}

func generatePassword() (string, error) {
	buf := make([]byte, 12)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
