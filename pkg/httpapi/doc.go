// Package httpapi exposes the four pipeline stages over HTTP: a chi
// router with CORS, request-id, and panic-recovery middleware, and
// handlers that decode the request body, call pkg/pipeline, and map
// schederr.Kind to the status codes spec.md §7 requires.
package httpapi
