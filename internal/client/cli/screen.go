package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/craftstore/internal/client/resource"
)

// notices are the user-facing texts of one screen.
type notices struct {
	loadFailed   string
	createFailed string
	updateFailed string
	deleteFailed string
	created      string
	updated      string
	deleted      string
}

// screen describes one destination. fill is nil for read-only screens.
type screen[R resource.Identifiable, D any] struct {
	title   string
	sync    *resource.Synchronizer[R, D]
	notices notices
	row     func(R) string
	noun    func(R) string
	fill    func(ctx context.Context, form D, editing bool) (D, error)
}

// runScreen loads the list and serves the screen commands until "back".
// The synchronizer is closed on return.
func runScreen[R resource.Identifiable, D any](ctx context.Context, a *App, s screen[R, D]) {
	defer s.sync.Close()

	unsubscribe := s.sync.Subscribe(func(st resource.State[R, D]) {
		if st.Loading {
			a.printf("Cargando...\n")
		}
	})
	defer unsubscribe()

	a.printf("== %s ==\n", s.title)
	if err := s.sync.LoadAll(ctx); err != nil {
		a.notifyError(ctx, err, s.notices.loadFailed)
	}
	printItems(a, s)

	for ctx.Err() == nil {
		a.printf("%s> ", s.title)
		line, err := readLine(a.reader)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				a.logger.Error(ctx, "read command", "err", err)
			}
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch cmd := strings.ToLower(parts[0]); cmd {
		case "back", "volver":
			return
		case "help":
			if s.fill == nil {
				a.printf("Comandos: list, reload, back\n")
			} else {
				a.printf("Comandos: list, add, edit <id>, save, cancel, delete <id>, reload, back\n")
			}
		case "l", "list":
			printItems(a, s)
		case "reload":
			if err := s.sync.LoadAll(ctx); err != nil {
				a.notifyError(ctx, err, s.notices.loadFailed)
			}
			printItems(a, s)
		case "add", "edit", "save", "cancel", "delete":
			if s.fill == nil {
				a.printf("Esta sección es de solo lectura\n")
				continue
			}
			mutateCommand(ctx, a, s, cmd, parts[1:])
		default:
			a.printf("Comando desconocido: %s\n", cmd)
		}
	}
}

func mutateCommand[R resource.Identifiable, D any](ctx context.Context, a *App, s screen[R, D], cmd string, args []string) {
	switch cmd {
	case "add":
		s.sync.CancelEdit()
		if !fillForm(ctx, a, s, false) {
			return
		}
		submit(ctx, a, s)

	case "edit":
		target, ok := pickItem(a, s, args)
		if !ok {
			return
		}
		s.sync.BeginEdit(target)
		if !fillForm(ctx, a, s, true) {
			return
		}
		submit(ctx, a, s)

	case "save":
		submit(ctx, a, s)

	case "cancel":
		s.sync.CancelEdit()
		a.printf("Edición cancelada\n")

	case "delete":
		target, ok := pickItem(a, s, args)
		if !ok {
			return
		}
		yes, err := Confirm(a.reader, fmt.Sprintf("¿Eliminar %s?", s.noun(target)), a.out)
		if err != nil || !yes {
			return
		}
		if err := s.sync.Delete(ctx, target.GetID()); err != nil {
			a.notifyError(ctx, err, s.notices.deleteFailed)
			return
		}
		a.notifySuccess(s.notices.deleted)
		printItems(a, s)
	}
}

// fillForm prompts for every field. On input error the form is left as
// it was so "save" or "cancel" can follow.
func fillForm[R resource.Identifiable, D any](ctx context.Context, a *App, s screen[R, D], editing bool) bool {
	form, err := s.fill(ctx, s.sync.Snapshot().Form, editing)
	if err != nil {
		if !errors.Is(err, io.EOF) {
			a.notifyError(ctx, err, "Datos inválidos")
		}
		return false
	}
	s.sync.SetForm(form)
	return true
}

func submit[R resource.Identifiable, D any](ctx context.Context, a *App, s screen[R, D]) {
	editing := s.sync.Snapshot().Mode == resource.Editing

	_, err := s.sync.Submit(ctx)
	switch {
	case err == nil:
	case errors.Is(err, resource.ErrUpdateTargetNotFound):
		a.printf("Aviso: el registro actualizado no está en la lista; usa 'reload'\n")
	case editing:
		a.notifyError(ctx, err, s.notices.updateFailed)
		return
	default:
		a.notifyError(ctx, err, s.notices.createFailed)
		return
	}

	if editing {
		a.notifySuccess(s.notices.updated)
	} else {
		a.notifySuccess(s.notices.created)
	}
	printItems(a, s)
}

func pickItem[R resource.Identifiable, D any](a *App, s screen[R, D], args []string) (R, bool) {
	var zero R
	if len(args) == 0 {
		a.printf("Uso: <comando> <id>\n")
		return zero, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		a.printf("Id inválido: %s\n", args[0])
		return zero, false
	}
	it, ok := s.sync.Snapshot().Find(id)
	if !ok {
		a.printf("No existe el registro %d\n", id)
		return zero, false
	}
	return it, true
}

func printItems[R resource.Identifiable, D any](a *App, s screen[R, D]) {
	items := s.sync.Snapshot().Items
	if len(items) == 0 {
		a.printf("(sin registros)\n")
		return
	}
	for _, it := range items {
		a.printf("%s\n", s.row(it))
	}
}
