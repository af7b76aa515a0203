package redirecterrors

import (
	"errors"
	"fmt"
)

var (
	// ErrWrite indicates an error occurred while writing.
	ErrWrite = errors.New("write")

	// ErrWriteFile indicates an error occurred while writing a file.
	ErrWriteFile = fmt.Errorf("file: %w", ErrWrite)

	// ErrCreateDir indicates an output directory could not be created.
	ErrCreateDir = fmt.Errorf("create directory: %w", ErrWrite)

	// ErrInvalidPath indicates a document path is not a clean relative path.
	ErrInvalidPath = errors.New("invalid path")

	// ErrFileNotFound indicates a file wasn't found in the specified path.
	ErrFileNotFound = errors.New("file not found")

	// ErrResolvedOutsideRoot indicates a path resolved outside of its root.
	ErrResolvedOutsideRoot = errors.New("resolved outside root")

	// ErrReadManifest indicates a manifest file could not be read.
	ErrReadManifest = errors.New("read manifest")

	// ErrParseManifest indicates a manifest file could not be decoded.
	ErrParseManifest = errors.New("parse manifest")

	// ErrInvalidManifest indicates a manifest failed validation.
	ErrInvalidManifest = errors.New("invalid manifest")

	// ErrInvalidFormat indicates an unexpected or invalid format was encountered.
	ErrInvalidFormat = errors.New("invalid format")
)
