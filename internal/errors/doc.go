// Package errors provides structured errors for the tabletop-inventory project.
//
// Errors carry a stable Code so callers can tell a missing character file from a
// corrupt one or from a disk failure, even when the message shown to the user is
// terse.
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("character not found")
//	err := errors.InvalidArgumentf("invalid denomination: %q", name)
//
// Adding metadata:
//
//	err := errors.NotFoundf("character %s not found", id).
//	    WithMeta("character_id", id)
//
// Wrapping errors:
//
//	if err := os.WriteFile(path, data, 0o644); err != nil {
//	    return errors.Wrapf(err, "failed to write %s", path)
//	}
//
// Changing error semantics:
//
//	if err := json.Unmarshal(data, &doc); err != nil {
//	    return errors.WrapWithCode(err, errors.CodeDataLoss, "character file is corrupt")
//	}
//
// # Error Checking
//
//	if errors.IsNotFound(err) {
//	    // Handle not found case
//	}
//
//	code := errors.GetCode(err)
//
// # Validation Errors
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("save_dir", cfg.SaveDir, vb)
//	errors.ValidateRange("wrap_width", cfg.WrapWidth, 20, 400, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Layer-Specific Guidelines
//
// Repository layer:
//   - NotFound for missing files, DataLoss for files that cannot be reconstructed
//   - Wrap filesystem errors with the path
//
// Orchestrator layer:
//   - NotFound for unknown character IDs
//   - FailedPrecondition for operations the current state does not allow
//   - Log storage failures before returning them
//
// Command layer:
//   - Print the error and exit with Code.ExitCode()
//
// # Error Codes
//
//   - NotFound: character, item or file does not exist
//   - InvalidArgument: bad input
//   - FailedPrecondition: operation requirements not met
//   - Internal: filesystem or encoding failure
//   - DataLoss: stored document is corrupt or incomplete
package errors
