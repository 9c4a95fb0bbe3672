// Package controller contains HTTP middlewares and helper handlers used by the API server.
//
// Provided middlewares:
//   - WithCORS: Adds permissive CORS headers and handles OPTIONS preflight.
//   - WithLogger: Attaches a request-scoped logger and request ID to the context and logs access info.
//   - WithBodyLimit: Caps the size of request bodies.
//
// Provided helpers:
//   - PprofRouter: Returns a chi router exposing net/http/pprof handlers.
package controller
