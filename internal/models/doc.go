// Package models defines domain entities and persistence interfaces for the vtx player client.
//
// The package contains two categories of types:
//
// 1. Data Transfer Objects (DTOs): Lightweight structs exchanged with the view layer
//   - [SongInfo] : Song metadata as scanned from the media directory
//
// 2. Persistent Entities: Database-backed models with full lifecycle management
//   - [Song] : Songs with the resolved lyric source path written back after fetch
//
// All persistent entities implement the Model interface providing ID generation, timestamps, validation, and soft delete support.
// The Repository[T] interface defines standard CRUD operations for database access.
package models
