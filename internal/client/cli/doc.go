// Package cli is the interactive craftstore client.
//
// A single REPL covers the whole application. Before login it offers
// register and login; afterwards it shows the dashboard of destinations the
// user's role may open. Each destination is a screen with its own command
// loop (list, add, edit, delete, reload, back) backed by a
// resource.Synchronizer.
//
// The REPL is started with App.Run, which blocks until the user exits or
// the input ends.
package cli
