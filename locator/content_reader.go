package locator

import "os"

// ContentReader is a function that reads file content given a file path.
// It lets the caller control how sources are read (filesystem, in-memory
// fixtures, etc.).
type ContentReader func(filePath string) ([]byte, error)

// ReadFromFileSystem reads content directly from the working tree.
func ReadFromFileSystem(filePath string) ([]byte, error) {
	return os.ReadFile(filePath)
}
