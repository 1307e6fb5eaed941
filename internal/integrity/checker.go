// Package integrity provides BLAKE2b content verification for installed
// application files.
package integrity

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/crypto/blake2b"
)

// CheckResult holds the outcome of comparing one installed file against its
// source.
type CheckResult struct {
	// Path is the installed path that was checked.
	Path string
	// Expected is the hex-encoded BLAKE2b-256 digest of the source file.
	Expected string
	// Actual is the digest computed from the installed file. Empty when the
	// file is missing.
	Actual string
	// Missing is true when no file exists at Path.
	Missing bool
	// OK is true when the installed file exists and matches Expected.
	OK bool
}

// HashFile computes the BLAKE2b-256 digest of the file at path using streaming I/O.
func HashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("integrity: open %s: %w", path, err)
	}
	defer f.Close()

	h, err := blake2b.New256(nil)
	if err != nil {
		return "", fmt.Errorf("integrity: new digest: %w", err)
	}
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("integrity: hash %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// CompareFile computes the digest of the file at path and compares it against
// expected. A missing file is reported in the result rather than as an error;
// any other read failure is an error.
func CompareFile(path, expected string) (CheckResult, error) {
	if expected == "" {
		return CheckResult{}, errors.New("integrity: expected digest is required")
	}

	actual, err := HashFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return CheckResult{Path: path, Expected: expected, Missing: true}, nil
	}
	if err != nil {
		return CheckResult{}, err
	}

	return CheckResult{
		Path:     path,
		Expected: expected,
		Actual:   actual,
		OK:       actual == expected,
	}, nil
}
