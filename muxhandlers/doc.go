// Package muxhandlers provides HTTP middleware handlers for the mux router.
//
// # Request ID Middleware
//
// RequestIDMiddleware generates a UUID v4 (or a custom ID) per request and
// propagates it through the request header, the request context and the
// response header:
//
//	mw, err := muxhandlers.RequestIDMiddleware(muxhandlers.RequestIDConfig{
//	    TrustIncoming: true,
//	    RequireUUID:   true,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	r.Use(mw)
//
// Handlers read the ID with RequestIDFromContext.
//
// # Recovery Middleware
//
// RecoveryMiddleware turns a panicking handler into a 500 Internal Server
// Error and reports the panic:
//
//	r.Use(muxhandlers.RecoveryMiddleware(muxhandlers.RecoveryConfig{
//	    Logger: slog.Default(),
//	}))
//
// Register RequestIDMiddleware first so recovered panics are logged with the
// request ID.
package muxhandlers
