package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/common-nighthawk/go-figure"
	"github.com/jrsteele09/go-oauth1-client/client"
	"github.com/jrsteele09/go-oauth1-client/internal/config"
	"github.com/jrsteele09/go-oauth1-client/signature"
	"github.com/jrsteele09/go-oauth1-client/statestore"
	"github.com/jrsteele09/go-oauth1-client/transport"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	configPath := flag.String("config", "", "path to YAML config file")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if err := run(*configPath); err != nil {
		log.Fatal().Err(err).Msg("demo flow failed")
	}
}

// run walks the three-legged OAuth 1.0a flow on the terminal: it fetches a
// request token, prints the authorization URL and exchanges the verifier the
// user pastes back for an access token.
func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	displayAppname(cfg.AppName)

	oauthClient, err := client.New(
		client.Config{
			ConsumerKey:     cfg.ConsumerKey,
			ConsumerSecret:  cfg.ConsumerSecret,
			RequestTokenURL: cfg.RequestTokenURL,
			AuthorizeURL:    cfg.AuthorizeURL,
			AccessTokenURL:  cfg.AccessTokenURL,
			CallbackURL:     cfg.CallbackURL,
			Scope:           cfg.Scope,
			Realm:           cfg.Realm,
		},
		signature.NewHMACSHA1(),
		transport.NewHTTPTransport(),
		statestore.NewInMemoryStateStore(),
	)
	if err != nil {
		return err
	}

	requestToken, err := oauthClient.FetchRequestToken(nil)
	if err != nil {
		return err
	}
	log.Info().Str("oauth_token", requestToken.Token).Msg("obtained request token")

	authURL, err := oauthClient.BuildAuthURL(requestToken, nil)
	if err != nil {
		return err
	}
	fmt.Printf("\nOpen this URL in a browser and authorize the application:\n\n  %s\n\n", authURL)

	verifier, err := promptVerifier()
	if err != nil {
		return err
	}

	accessToken, err := oauthClient.FetchAccessToken("", requestToken, verifier, nil)
	if err != nil {
		return err
	}
	log.Info().Str("oauth_token", accessToken.Token).Msg("obtained access token")
	return nil
}

func promptVerifier() (string, error) {
	fmt.Print("Enter the oauth_verifier shown by the provider: ")
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read verifier: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
