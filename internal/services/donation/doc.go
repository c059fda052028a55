// Package donation records donations from registered users to campaigns.
//
// A donation resolves its user by email and its campaign either by name
// (case-insensitive) or by position in the campaign listing. The amount is
// validated first, and the store appends the donation to both the user and the
// campaign and recomputes the campaign total in one step.
package donation
