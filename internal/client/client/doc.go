// Package client contains the client-side transport for notekeeper.
//
// The Client interface is the API contract the CLI talks to: Signup, Login,
// Logout, Ping and note CRUD. HTTPClient implements it over the REST API,
// keeps the access token obtained at login and attaches it as a bearer
// token to note requests.
//
// # Error Handling
//
// HTTP failures are mapped to sentinel errors that callers can match with
// errors.Is: ErrUnavailable, ErrUnauthorized, ErrNotFound, ErrConflict,
// ErrBadRequest. The server's detail message is kept in the error text.
package client
