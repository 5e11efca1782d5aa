// Package server wraps http.Server with graceful shutdown and env-driven
// configuration.
//
// The server binds its lifetime to a context and shuts down cleanly when the
// context is canceled, draining in-flight requests up to the configured
// shutdown timeout:
//
//	srv, err := server.NewFromConfig(cfg.Server, server.WithLogger(log))
//	if err != nil {
//		return err
//	}
//
//	eg, ctx := errgroup.WithContext(ctx)
//	eg.Go(srv.Run(ctx, router))
//
// TLS termination is expected to happen upstream; the server speaks plain
// HTTP.
package server
