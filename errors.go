package splittext

import (
	"errors"

	"github.com/alnah/go-splittext/internal/pipeline"
	"github.com/alnah/go-splittext/internal/textline"
)

// Sentinel errors for library operations.
var (
	// Configuration errors, reported by New before any input is read.
	ErrInvalidLayout      = errors.New("invalid layout")
	ErrPageTooNarrow      = errors.New("page too narrow for separator")
	ErrInvalidMode        = errors.New("invalid execution mode")
	ErrInvalidInputFormat = errors.New("invalid input format")

	// Run errors.
	ErrWordTooLong = textline.ErrWordTooLong
	ErrReadInput   = textline.ErrReadInput
	ErrWriteOutput = pipeline.ErrWriteOutput
)

// WordTooLongError carries the word that did not fit in a column.
// It matches ErrWordTooLong.
type WordTooLongError = textline.WordTooLongError
