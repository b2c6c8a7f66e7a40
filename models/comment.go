package models

import "time"

const CommentDateLayout = "02/01/2006"

type Comment struct {
	ID        int64  `json:"id"`
	Body      string `json:"body"`
	Rating    int    `json:"rating"`
	CreatedAt string `json:"created_at"`
}

// FormatCommentDate renders t the way a French locale prints a short date.
func FormatCommentDate(t time.Time) string {
	return t.Format(CommentDateLayout)
}
