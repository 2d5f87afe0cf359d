// Package csvfile implements the Tables driven port over CSV files on the
// local filesystem. The database exports and the registration uploads are
// both plain RFC 4180 CSV, so one adapter covers every file this program
// touches.
package csvfile
