// Package api provides the HTTP handlers for the server. Handlers decode and
// validate requests, delegate to the service layer, and map errors to HTTP
// status codes; every request produces exactly one response.
package api
