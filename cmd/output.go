// Package cmd implements the tap CLI commands.
package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/charliekarafotias/tap/internal/tapstore"
)

// exitCodeForKind maps a tapstore error Kind to a process exit code.
// Validation and not-found errors exit 1; I/O failures exit 2, mirroring
// the split between user error and environment error.
func exitCodeForKind(kind tapstore.Kind) int {
	switch kind {
	case tapstore.KindFileOpenFailed, tapstore.KindFileCreateFailed,
		tapstore.KindFileReadFailed, tapstore.KindFileWriteFailed,
		tapstore.KindFileSeekFailed, tapstore.KindFileReadMetadataFailed,
		tapstore.KindFileDeleteFailed, tapstore.KindExecutablePathNotFound,
		tapstore.KindExecutablePathParentDirectoryNotFound:
		return 2
	default:
		return 1
	}
}

// printError writes the spec-mandated "ERROR: <message>" line to w, colored
// red, and returns the exit code the caller should use.
func printError(w io.Writer, err error) int {
	var se *tapstore.Error
	if errors.As(err, &se) {
		fmt.Fprintln(w, color.RedString("ERROR: %s", se.Message))
		return exitCodeForKind(se.Kind)
	}
	fmt.Fprintln(w, color.RedString("ERROR: %s", err.Error()))
	return 1
}

// printSuccess writes message to w colored green.
func printSuccess(w io.Writer, message string) {
	fmt.Fprintln(w, color.GreenString(message))
}
