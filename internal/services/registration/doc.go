// Package registration registers organizations (projects) and donors.
//
// It trims and validates input, normalises CPFs to their formatted form, and
// delegates uniqueness checks to the store so they happen atomically with the
// insert.
package registration
