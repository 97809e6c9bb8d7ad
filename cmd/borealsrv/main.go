/*
Borealsrv starts a Boreal debug server and begins listening for connections.

Usage:

	borealsrv [flags]
	borealsrv [flags] -l [[ADDRESS]:PORT]

Once started, the server listens for HTTP requests and responds to them
using a small REST API exposing the boreal package's analysis functions over
the wire. By default it listens on localhost:8080. This can be changed with
the --listen/-l flag (or config via environment var). The flag argument must
be either a full address with port, such as "192.168.0.2:6001", or just the
port preceeded by a colon, such as ":6001".

If a JWT token secret is not given, one will be automatically generated and
seeded with secure random bytes. As a consequence, in this mode of operation
all tokens are rendered invalid as soon as the server shuts down. This is
suitable for testing, but must be given via either CLI flags or environment
variable if running in production.

The flags are:

	-v, --version
		Give the current version of the Boreal debug server and then exit.

	-l, --listen LISTEN_ADDRESS
		Listen on the given address. Must be in BIND_ADDRESS:PORT or :PORT
		format. If not given, will default to the value of environment
		variable BOREAL_LISTEN_ADDRESS, and if that is not given, will
		default to localhost:8080.

	-s, --secret TOKEN_SECRET
		Use the provided secret for signing bearer tokens. If there are less
		than 32 bytes in the secret, it will be repeated until it is. The
		maximum size is 64 bytes. If not given, will default to the value of
		environment variable BOREAL_TOKEN_SECRET. If no secret is specified
		or an empty secret is given, a random secret will be automatically
		generated. Note that any tokens issued with a random secret will
		become invalid as soon as the server shuts down.

	-k, --api-key API_KEY
		Require clients to present API_KEY to the login endpoint before it
		will issue a bearer token. The key is bcrypt-hashed before being
		held in memory; it is never logged or written to disk. If not given,
		will default to the value of environment variable BOREAL_API_KEY. If
		no key is given, the login endpoint always rejects credentials and
		every other route must be reached through an auth-optional path.
*/
package main

import (
	"crypto/rand"
	"fmt"
	"log"
	"net"
	"os"

	"github.com/spf13/pflag"
	"golang.org/x/crypto/bcrypt"

	"github.com/oxixes/boreal-lang-ext/internal/version"
	"github.com/oxixes/boreal-lang-ext/server"
)

const (
	EnvListen = "BOREAL_LISTEN_ADDRESS"
	EnvSecret = "BOREAL_TOKEN_SECRET"
	EnvAPIKey = "BOREAL_API_KEY"
)

var (
	flagVersion = pflag.BoolP("version", "v", false, "Give the current version of the Boreal debug server and then exit.")
	flagListen  = pflag.StringP("listen", "l", "", "Listen on the given address.")
	flagSecret  = pflag.StringP("secret", "s", "", "Use the given secret for token generation.")
	flagAPIKey  = pflag.StringP("api-key", "k", "", "Require this API key to log in.")
)

func main() {
	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s (Boreal v%s)\n", version.ServerCurrent, version.Current)
		return
	}

	if args := pflag.Args(); len(args) > 0 {
		fmt.Fprintf(os.Stderr, "Too many arguments\nDo -h for help.\n")
		os.Exit(1)
	}

	listenAddr := os.Getenv(EnvListen)
	if pflag.Lookup("listen").Changed {
		listenAddr = *flagListen
	}
	if listenAddr == "" {
		listenAddr = "localhost:8080"
	}
	if _, _, err := net.SplitHostPort(listenAddr); err != nil {
		fmt.Fprintf(os.Stderr, "Listen address is not in ADDRESS:PORT or :PORT format.\nDo -h for help.\n")
		os.Exit(1)
	}

	tokSecret := resolveSecret()

	var apiKeyHash []byte
	apiKey := os.Getenv(EnvAPIKey)
	if pflag.Lookup("api-key").Changed {
		apiKey = *flagAPIKey
	}
	if apiKey != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(apiKey), bcrypt.DefaultCost)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Could not hash API key: %s\n", err.Error())
			os.Exit(1)
		}
		apiKeyHash = hash
	} else {
		log.Printf("WARN  No API key configured; login endpoint will reject all credentials")
	}

	cfg := server.Config{TokenSecret: tokSecret, APIKeyHash: apiKeyHash}.FillDefaults()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("FATAL invalid configuration: %s", err.Error())
	}

	srv := server.New(cfg)
	log.Printf("INFO  Starting Boreal debug server %s on %s...", version.ServerCurrent, listenAddr)
	if err := srv.ListenAndServe(listenAddr); err != nil {
		log.Fatalf("FATAL server exited: %s", err.Error())
	}
}

func resolveSecret() []byte {
	tokSecStr := os.Getenv(EnvSecret)
	if pflag.Lookup("secret").Changed {
		tokSecStr = *flagSecret
	}

	if tokSecStr == "" {
		tokSecret := make([]byte, 64)
		if _, err := rand.Read(tokSecret); err != nil {
			fmt.Fprintf(os.Stderr, "Could not generate token secret: %s\n", err.Error())
			os.Exit(1)
		}
		log.Printf("WARN  Using generated token secret; all tokens issued will become invalid at shutdown")
		return tokSecret
	}

	tokSecret := []byte(tokSecStr)
	for len(tokSecret) < server.MinSecretSize {
		tokSecret = append(tokSecret, tokSecret...)
	}
	if len(tokSecret) > server.MaxSecretSize {
		fmt.Fprintf(os.Stderr, "Token secret is %d bytes, but it must be <= %d bytes\nDo -h for help.\n", len(tokSecret), server.MaxSecretSize)
		os.Exit(1)
	}
	return tokSecret
}
