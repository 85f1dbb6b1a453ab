package ports

// ExistsIndex is a fast-path file existence index. The watcher keeps it
// current from add/unlink notifications so the pipeline can test existence
// without hitting the filesystem.
type ExistsIndex interface {
	// MarkExists records that path exists.
	MarkExists(path string)

	// MarkRemoved records that path no longer exists.
	MarkRemoved(path string)

	// Exists reports whether path is known to exist. The second return is
	// false when the index has no knowledge of the path.
	Exists(path string) (known bool, exists bool)
}
