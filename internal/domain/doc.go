// Package domain defines the donation registry's core data models, sentinel
// errors and the contracts (interfaces) between stores, services and the shell.
//
// Entities reference each other by identifier only. A Campaign names its
// parent Organization by OrganizationID, and both a User and a Campaign list
// the DonationIDs they share. Stores resolve those identifiers.
package domain
