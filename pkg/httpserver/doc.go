// Package httpserver runs the service's HTTP listener with graceful
// shutdown.
//
// Run blocks until the context is cancelled or an interrupt/TERM signal
// arrives, then drains in-flight requests within the configured shutdown
// timeout. Configuration comes from environment variables through the Config
// struct; note the intentional absence of a write timeout, which would cut
// off long-lived event-stream connections.
//
//	srv := httpserver.New(cfg, log)
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Listen failures are wrapped with ErrStart and shutdown failures with
// ErrShutdown for errors.Is inspection.
package httpserver
