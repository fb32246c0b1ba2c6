package infrastructure

import (
	"fmt"
	"unicode/utf8"

	apperrors "github.com/computerscienceiscool/minigrep/internal/errors"
	"github.com/spf13/afero"
)

// ReadContents loads the whole file at path and returns it as text.
// Contents that are not valid UTF-8 are rejected with ErrInvalidText.
func ReadContents(fs afero.Fs, path string) (string, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return "", err
	}

	if !IsText(data) {
		return "", fmt.Errorf("%w: contents of %s are not valid UTF-8", apperrors.ErrInvalidText, path)
	}

	return string(data), nil
}

// IsText reports whether data can be treated as text
func IsText(data []byte) bool {
	return utf8.Valid(data)
}
