// Package logger provides a context-aware wrapper around Go's slog package
// with functional options for configuration, helper attribute constructors,
// and transparent injection of values stored in context.Context.
//
// The factory New builds a *slog.Logger whose handler runs every registered
// ContextExtractor before delegating to the underlying text or JSON handler,
// so request-scoped values such as request IDs appear on each record without
// manual plumbing at call sites.
//
// Usage:
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Environment, "inventory-service"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "product created",
//	    logger.ProductID(product.ID),
//	    logger.SKU(product.SKU),
//	)
//
// Helper constructors in attr.go keep attribute naming consistent across the
// codebase; Error and friends return an empty Attr for nil inputs so they can
// be passed unconditionally.
package logger
