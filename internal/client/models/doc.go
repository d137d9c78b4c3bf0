// Package models defines the storefront resources exchanged with the REST
// backend (crafts, categories, sales, users), the drafts the forms edit,
// and the in-memory Session produced by login.
package models
