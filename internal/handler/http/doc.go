// Package http implements the HTTP transport layer of the auth
// service. It provides the route handlers for registration, login, and
// the authenticated /api/me endpoint, together with the middleware that
// handles bearer-token authentication, request tracing, and logging
// before requests are forwarded to the service layer.
package http
