// Package store implements the persistence layer: a minimal document-store
// contract with two conforming implementations (a MongoDB backend and an
// in-memory fallback), typed repositories over it, and the one-shot startup
// binding that picks between them.
package store
