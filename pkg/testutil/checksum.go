package testutil

import (
	"crypto/sha256"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// GetTestChecksum calculates a SHA256 checksum for test content
func GetTestChecksum(content []byte) string {
	hash := sha256.Sum256(content)
	return fmt.Sprintf("%x", hash)
}

// FileChecksum returns the SHA256 checksum of the file at path
func FileChecksum(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return GetTestChecksum(data)
}
