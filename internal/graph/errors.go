package graph

import "fmt"

const CodeNotFound = "NOT_FOUND"

// NotFoundError is reported as a GraphQL error entry with an extension code
// instead of a placeholder record.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("booking %d not found", e.ID)
}

func (e *NotFoundError) Extensions() map[string]interface{} {
	return map[string]interface{}{
		"code": CodeNotFound,
		"id":   e.ID,
	}
}
