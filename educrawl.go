// Package educrawl crawls a university's online-course catalog, stores
// course records in SQLite, and provides two read-side tools over the
// stored data: TF-IDF cosine similarity between courses and synonym-expanded
// full-text search.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, rod/, goquery/).
package educrawl
