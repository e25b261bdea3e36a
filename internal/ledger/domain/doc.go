// Package domain holds the pure rules of the quadratic funding ledger:
// project records, per-address contribution accounting, and the integer
// arithmetic behind the quadratic match. Nothing in this package performs
// I/O or holds locks; the service layer owns sequencing and persistence.
package domain
