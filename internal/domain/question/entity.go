package question

import (
	"time"

	"github.com/google/uuid"
)

// Question represents a question posted by an account.
type Question struct {
	ID        uuid.UUID // ID is the unique identifier, assigned at creation
	Title     string    // Title is the question headline
	Slug      string    // Slug is the URL-safe form of the title, unique across questions
	Content   string    // Content is the question body
	AuthorID  uuid.UUID // AuthorID references the account that created the question
	CreatedAt time.Time
}
