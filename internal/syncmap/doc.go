// Package syncmap offers a lightweight, generic, concurrency-safe map with
// basic Get/Set/Delete/Keys/List operations guarded by a sync.RWMutex.  It
// backs the action-service registration table built once at startup.
package syncmap
