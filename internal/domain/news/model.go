package news

import (
	"fmt"
	"time"
)

// Item is a club news entry. Image holds an opaque blob reference
// (URL or data URI); the service never interprets it.
type Item struct {
	ID        string
	Title     string
	Details   string
	Rivalry   string
	Image     string
	CreatedAt time.Time
}

func (i Item) Validate() error {
	if i.ID == "" {
		return fmt.Errorf("news id is required")
	}
	if i.Title == "" {
		return fmt.Errorf("news title is required")
	}

	return nil
}
