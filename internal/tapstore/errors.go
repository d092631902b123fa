package tapstore

import "fmt"

// Kind identifies the category of a tapstore error. Callers that need to
// branch on failure type (the CLI layer, mainly) should use errors.As to
// recover an *Error and switch on Kind rather than matching message text.
type Kind string

const (
	KindReservedKeyword        Kind = "ReservedKeyword"
	KindInvalidFileExtension   Kind = "InvalidFileExtension"
	KindParentEntityNotFound   Kind = "ParentEntityNotFound"
	KindLinkNotFound           Kind = "LinkNotFound"
	KindLinkAlreadyExists      Kind = "LinkAlreadyExists"
	KindParseError             Kind = "ParseError"
	KindFileOpenFailed         Kind = "FileOpenFailed"
	KindFileCreateFailed       Kind = "FileCreateFailed"
	KindFileReadFailed         Kind = "FileReadFailed"
	KindFileWriteFailed        Kind = "FileWriteFailed"
	KindFileSeekFailed         Kind = "FileSeekFailed"
	KindFileReadMetadataFailed Kind = "FileReadMetadataFailed"
	KindFileDeleteFailed       Kind = "FileDeleteFailed"

	KindExecutablePathNotFound                Kind = "ExecutablePathNotFound"
	KindExecutablePathParentDirectoryNotFound Kind = "ExecutablePathParentDirectoryNotFound"
	KindCurrentTimeError                      Kind = "CurrentTimeError"
)

// Error is the typed error carried through every tapstore operation. Message
// is always human-readable; Err, when non-nil, is the underlying cause
// (an *os.PathError, a parse failure, etc.) and is reachable via errors.As
// and errors.Is through the standard Unwrap contract.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func wrapError(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}
