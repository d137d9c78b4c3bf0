package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/craftstore/internal/client/client"
	"github.com/dmitrijs2005/craftstore/internal/common"
)

type credentials struct {
	nombre   string
	telefono string
	password []byte
}

func (a *App) askCredentials() (credentials, error) {
	nombre, err := GetSimpleText(a.reader, "Nombre", a.out)
	if err != nil {
		return credentials{}, err
	}
	telefono, err := GetSimpleText(a.reader, "Teléfono", a.out)
	if err != nil {
		return credentials{}, err
	}
	password, err := GetPassword(a.reader, a.out)
	if err != nil {
		return credentials{}, err
	}
	return credentials{nombre: nombre, telefono: telefono, password: password}, nil
}

// Register creates an account. When the backend answers with a token the
// user lands on the dashboard, otherwise they are sent back to login.
func (a *App) Register(ctx context.Context) error {
	c, err := a.askCredentials()
	if err != nil {
		return err
	}
	defer common.WipeBytes(c.password)

	res, err := a.auth.Register(ctx, c.nombre, c.telefono, c.password)
	if err != nil {
		a.notifyError(ctx, err, "Registro fallido")
		return err
	}

	if res.Session == nil {
		a.printf("Cuenta creada exitosamente. Inicia sesión con 'login'.\n")
		return nil
	}
	a.session = res.Session
	a.printf("Cuenta creada exitosamente\n")
	a.showDashboard()
	return nil
}

func (a *App) Login(ctx context.Context) error {
	c, err := a.askCredentials()
	if err != nil {
		return err
	}
	defer common.WipeBytes(c.password)

	sess, err := a.auth.Login(ctx, c.nombre, c.telefono, c.password)
	if err != nil {
		fallback := "Inicio de sesión fallido"
		if errors.Is(err, client.ErrUnavailable) {
			fallback = "Hubo un problema con la solicitud de inicio de sesión"
		}
		a.notifyError(ctx, err, fallback)
		return err
	}

	a.session = sess
	a.logger.Info(ctx, "logged in", "nombre", sess.User.Nombre, "rol", string(sess.Role))
	a.showDashboard()
	return nil
}

// Logout drops the session and returns to the login prompt.
func (a *App) Logout(ctx context.Context) error {
	a.auth.Logout(a.session)
	a.session = nil
	a.logger.Info(ctx, "logged out")
	a.printf("Sesión cerrada\n")
	return nil
}
