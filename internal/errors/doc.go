// Package errors provides coded errors for the rpg-stats engine and CLI.
//
// Errors carry a Code, a message, an optional cause and metadata. The code
// survives wrapping, so a validation failure deep in the engine still reaches
// the command layer as InvalidArgument and maps to a usage exit status.
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.InvalidArgumentf("level must be at least 1, got %d", level)
//	err := errors.NotFound("no rolls recorded").WithMeta("entity_id", id)
//
// Wrapping errors:
//
//	if err := repo.Append(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to record hit point rolls")
//	}
//
// Changing error semantics:
//
//	if err := client.Ping(ctx).Err(); err != nil {
//	    return errors.WrapWithCode(err, errors.CodeUnavailable, "redis is not reachable")
//	}
//
// # Validation Errors
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRange("level", input.Level, 1, 100, vb)
//	errors.ValidateEnum("method", input.Method, []string{"average", "rolled"}, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Exit Codes
//
// Commands return errors to main, which calls ExitCode to pick a status:
//   - OK, Canceled: 0
//   - FailedPrecondition, Internal, Unavailable: 1
//   - InvalidArgument, OutOfRange: 2
//   - NotFound: 3
package errors
