// Package domain holds the core types of the reconciliation pipeline: the
// Dog record and its field validators, the Registry snapshot collection,
// the external-service Update record, and the Issue report collector.
//
// Everything here is plain Go with no I/O. Rows come in and go out through
// the ports; the domain only decides what the data means.
package domain
