package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/craftstore/internal/client/client"
	"github.com/dmitrijs2005/craftstore/internal/client/config"
	"github.com/dmitrijs2005/craftstore/internal/client/models"
	"github.com/dmitrijs2005/craftstore/internal/client/session"
	"github.com/dmitrijs2005/craftstore/internal/logging"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	api     client.Client
	auth    session.Service
	session *models.Session
	reader  *bufio.Reader
	out     io.Writer
}

// NewApp wires the HTTP client and the auth service for cfg. The REPL reads
// from stdin and writes to stdout.
func NewApp(cfg *config.Config, logger logging.Logger) *App {
	api := client.NewHTTPClient(cfg.ServerBaseURL, cfg.RequestTimeout, logger)
	return newApp(cfg, logger, api, session.NewService(api, logger), os.Stdin, os.Stdout)
}

func newApp(cfg *config.Config, logger logging.Logger, api client.Client, auth session.Service, in io.Reader, out io.Writer) *App {
	return &App{
		config: cfg,
		logger: logger,
		api:    api,
		auth:   auth,
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// Run blocks until the user exits, the input ends or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	a.printf("%s\n", welcomeText)
	a.logger.Info(ctx, "client started", "server", a.config.ServerBaseURL)
	a.runREPL(ctx)
	if a.isLoggedIn() {
		a.auth.Logout(a.session)
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.Valid()
}

func (a *App) token() string {
	return a.session.Token()
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) status() string {
	if !a.isLoggedIn() {
		return ""
	}
	if a.session.Role == "" {
		return fmt.Sprintf("(%s)", a.session.User.Nombre)
	}
	return fmt.Sprintf("(%s, %s)", a.session.User.Nombre, a.session.Role)
}
