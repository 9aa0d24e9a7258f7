package domain

import (
	"strings"
	"time"
)

// Level is the difficulty rating of a course
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// Valid reports whether the level is one the backend accepts
func (l Level) Valid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

// Course is a course record as returned by the backend.
// Tags is a comma-separated string on the wire; use TagList for the parsed form.
type Course struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category"`
	Level       Level     `json:"level"`
	TeacherID   *int      `json:"teacher_id,omitempty"`
	Tags        string    `json:"tags,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// TagList splits the comma-separated tag field into trimmed, non-empty tags
func (c *Course) TagList() []string {
	if c.Tags == "" {
		return nil
	}
	var tags []string
	for _, t := range strings.Split(c.Tags, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// MaterialType classifies course materials
type MaterialType string

const (
	MaterialVideo      MaterialType = "video"
	MaterialText       MaterialType = "text"
	MaterialQuiz       MaterialType = "quiz"
	MaterialAssignment MaterialType = "assignment"
)

// Material is a single unit of course content
type Material struct {
	ID         int          `json:"id"`
	Title      string       `json:"title"`
	Content    string       `json:"content,omitempty"`
	Type       MaterialType `json:"type"`
	CourseID   int          `json:"course_id"`
	OrderIndex int          `json:"order_index"`
	CreatedAt  time.Time    `json:"created_at"`
}
