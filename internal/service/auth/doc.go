// Package auth provides the credential primitives used by the service layer:
// HS256 bearer tokens whose jti references a server-side token record,
// bcrypt password hashing, and random reset and remember tokens.
package auth
