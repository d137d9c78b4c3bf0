package cli

import (
	"context"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/craftstore/internal/client/nav"
)

// runREPL reads commands until "exit", EOF or ctx cancellation.
//
//	Not logged in:
//	  help, about, register, login, exit | quit
//
//	Logged in:
//	  help, about, menu, <destination name or number>, logout, exit | quit
func (a *App) runREPL(ctx context.Context) {
	for ctx.Err() == nil {
		a.printf("craftstore %s> ", a.status())
		line, err := readLine(a.reader)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				a.logger.Error(ctx, "read command", "err", err)
			}
			a.printf("\n")
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := strings.ToLower(parts[0])

		switch cmd {
		case "exit", "quit":
			a.printf("¡Hasta pronto!\n")
			return
		case "help":
			a.printHelp()
			continue
		case "about":
			a.printf("%s\n", aboutText)
			continue
		}

		if !a.isLoggedIn() {
			switch cmd {
			case "register":
				_ = a.Register(ctx)
			case "login":
				_ = a.Login(ctx)
			default:
				a.printf("Comando desconocido: %s\n", cmd)
			}
			continue
		}

		switch cmd {
		case "menu", "dashboard":
			a.showDashboard()
		case "logout":
			_ = a.Logout(ctx)
		case "login", "register":
			a.printf("Ya has iniciado sesión. Usa 'logout' primero.\n")
		default:
			a.open(ctx, a.resolveDestination(cmd))
		}
	}
}

func (a *App) printHelp() {
	if a.isLoggedIn() {
		a.printf("Comandos: menu, <destino>, logout, about, exit\n")
		return
	}
	a.printf("Comandos: register, login, about, exit\n")
}

// resolveDestination accepts a destination name or its number on the menu.
func (a *App) resolveDestination(cmd string) string {
	n, err := strconv.Atoi(cmd)
	if err != nil {
		return cmd
	}
	visible := nav.Visible(a.session.Role)
	if n < 1 || n > len(visible) {
		return cmd
	}
	return visible[n-1].Name
}
