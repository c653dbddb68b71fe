package fat

import "errors"

// Sentinel error kinds. Callers use errors.Is against these; call
// sites add caller-specific context with github.com/pkg/errors.Wrap.
var (
	// ErrImageTruncated: a full sector was expected but the image
	// yielded fewer bytes.
	ErrImageTruncated = errors.New("fat: image truncated")

	// ErrUnsupportedFatType: the boot sector describes FAT32 or an
	// unrecognized layout. del/undel refuse to walk such a chain;
	// dir may still print what it has.
	ErrUnsupportedFatType = errors.New("fat: unsupported FAT type")

	// ErrIoFailed: a seek/read/write failed mid-operation.
	ErrIoFailed = errors.New("fat: I/O failure")

	// ErrInvalidSelection: a menu index outside the printed list,
	// returned by recovery.Select. cli.PromptSelection already
	// reprompts on non-numeric or out-of-range input, so del/undel
	// treat this error as fatal when it does reach them.
	ErrInvalidSelection = errors.New("fat: invalid selection")

	// ErrUnrecoverable: the undelete validator rejected a candidate.
	// recovery.Validate reports that as a false result with a nil
	// error; nothing in the engine returns this value.
	ErrUnrecoverable = errors.New("fat: file cannot be safely restored")
)
