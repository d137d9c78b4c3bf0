// Package common holds helpers shared by the client and the mock backend.
package common

import "strings"

// AuthorizationHeader carries "Bearer <token>" on every authenticated call.
const AuthorizationHeader = "Authorization"

const bearerPrefix = "Bearer "

// WipeBytes overwrites b with zeros. Nil is a no-op.
func WipeBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// BearerToken extracts the token from an Authorization header value.
// It reports false when the scheme is missing or the token is empty.
func BearerToken(header string) (string, bool) {
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(bearerPrefix):])
	return token, token != ""
}
