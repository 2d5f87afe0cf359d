package driven

// Tables reads and writes delimited row files. The core never tokenizes a
// line or escapes a field itself; it sees files only as a verified header
// plus positional rows.
type Tables interface {
	// Read loads every data row of the file at path, verifying that the
	// file's header row matches header exactly and that every row has the
	// same number of columns. Any mismatch is an error: a partially
	// understood snapshot is unusable.
	Read(path string, header []string) ([][]string, error)

	// Write stores header plus rows to the file at path, replacing any
	// existing file, and returns the number of data rows written.
	Write(path string, header []string, rows [][]string) (int, error)
}
