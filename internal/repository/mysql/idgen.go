package mysql

import "github.com/google/uuid"

// newID builds prefixed identifiers like "thread-6f1a…" so rows stay
// recognizable across tables and logs.
func newID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}
