// Package export renders the registry into three artifacts (users, projects,
// campaigns) and writes them through a domain.ArtifactStore.
//
// Text is the default format; JSON carries the same fields. When a passphrase
// is given every artifact is sealed and its name gets domain.SealedExt. The
// export is one-way: nothing in the application reads it back.
package export
