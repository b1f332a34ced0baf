// Package report holds read-only projections assembled by the persistence gateway.
package report
