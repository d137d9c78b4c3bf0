package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/craftstore/internal/client/client"
	"github.com/dmitrijs2005/craftstore/internal/client/models"
)

const missingFieldText = "Debes seleccionar una artesanía y especificar una cantidad."

// inputError is a form value the user typed that cannot be parsed. Its
// text is shown as is.
type inputError struct {
	msg string
	err error
}

func (e *inputError) Error() string { return e.msg + ": " + e.err.Error() }
func (e *inputError) Unwrap() error { return e.err }

// notifyError prints a non-blocking notice for err. Server messages win
// over fallback.
func (a *App) notifyError(ctx context.Context, err error, fallback string) {
	msg := client.Message(err, fallback)
	var in *inputError
	switch {
	case errors.As(err, &in):
		msg = in.msg
	case errors.Is(err, models.ErrMissingField):
		msg = missingFieldText
	}
	a.logger.Warn(ctx, fallback, "err", err)
	a.printf("Error: %s\n", msg)
}

func (a *App) notifySuccess(msg string) {
	a.printf("Éxito: %s\n", msg)
}
