// Package campaign creates campaigns under registered organizations and
// reports their funding status.
package campaign
