package domain

// Placeholder strings shown instead of soft-deleted content.
const (
	DeletedCommentPlaceholder = "**komentar telah dihapus**"
	DeletedReplyPlaceholder   = "**balasan telah dihapus**"
)

// Redact masks content of soft-deleted comments and replies at read time.
// The stored row is never modified, only the projection.
func Redact(content string, deleted bool, placeholder string) string {
	if deleted {
		return placeholder
	}
	return content
}
