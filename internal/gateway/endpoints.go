package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/learnctl/learnctl/internal/domain"
)

// CurrentUser fetches the profile the backend associates with the session
// token
func (g *Gateway) CurrentUser(ctx context.Context) (*domain.User, error) {
	var user domain.User
	if err := g.get(ctx, "/users/me", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// RegisterRequest carries a new account registration
type RegisterRequest struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Role     domain.Role `json:"role"`
	Password string      `json:"password"`
}

// Validate checks the request before it is sent
func (r RegisterRequest) Validate() error {
	if r.Email == "" {
		return domain.ErrEmailRequired
	}
	if r.Password == "" {
		return domain.ErrPasswordRequired
	}
	if !r.Role.Valid() {
		return domain.ErrInvalidRole
	}
	return nil
}

// Register creates a new account and returns the created user
func (g *Gateway) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var user domain.User
	if err := g.post(ctx, "/users/register", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// MyActivities returns the current user's most recent activity entries
func (g *Gateway) MyActivities(ctx context.Context, limit int) ([]domain.ActivityEntry, error) {
	var entries []domain.ActivityEntry
	err := g.get(ctx, "/users/me/activities", &entries, WithQuery(Filters{"limit": limit}))
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// LogActivityRequest records a learning event against a material
type LogActivityRequest struct {
	UserID     int            `json:"user_id"`
	MaterialID int            `json:"material_id"`
	Action     string         `json:"action"`
	Duration   *float64       `json:"duration,omitempty"`
	Score      *float64       `json:"score,omitempty"`
	Meta       map[string]any `json:"meta,omitempty"`
}

// LogActivity stores a learning event
func (g *Gateway) LogActivity(ctx context.Context, req LogActivityRequest) (*domain.Activity, error) {
	var activity domain.Activity
	if err := g.post(ctx, "/activities", req, &activity); err != nil {
		return nil, err
	}
	return &activity, nil
}

// Courses lists courses matching the filter set (category, level,
// teacher_id, skip, limit)
func (g *Gateway) Courses(ctx context.Context, filters Filters) ([]domain.Course, error) {
	var courses []domain.Course
	if err := g.get(ctx, "/courses", &courses, WithQuery(filters)); err != nil {
		return nil, err
	}
	return courses, nil
}

// Course fetches a single course by ID
func (g *Gateway) Course(ctx context.Context, id int) (*domain.Course, error) {
	var course domain.Course
	if err := g.get(ctx, fmt.Sprintf("/courses/%d", id), &course); err != nil {
		return nil, err
	}
	return &course, nil
}

// CourseMaterials lists the materials of a course in order
func (g *Gateway) CourseMaterials(ctx context.Context, courseID int) ([]domain.Material, error) {
	var materials []domain.Material
	if err := g.get(ctx, fmt.Sprintf("/courses/%d/materials", courseID), &materials); err != nil {
		return nil, err
	}
	return materials, nil
}

// CourseRequest carries a course creation or update
type CourseRequest struct {
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Category    string       `json:"category"`
	Level       domain.Level `json:"level"`
	TeacherID   *int         `json:"teacher_id,omitempty"`
	Tags        string       `json:"tags,omitempty"`
}

// Validate checks the request before it is sent
func (r CourseRequest) Validate() error {
	if r.Title == "" {
		return domain.ErrTitleRequired
	}
	if r.Category == "" {
		return domain.ErrCategoryRequired
	}
	if !r.Level.Valid() {
		return domain.ErrInvalidLevel
	}
	return nil
}

// CreateCourse creates a course; requires a teacher or admin session
func (g *Gateway) CreateCourse(ctx context.Context, req CourseRequest) (*domain.Course, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var course domain.Course
	if err := g.post(ctx, "/courses", req, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

// CourseUpdate carries a partial course edit. Nil fields are left out of the
// request body and keep their current value on the backend.
type CourseUpdate struct {
	Title       *string       `json:"title,omitempty"`
	Description *string       `json:"description,omitempty"`
	Category    *string       `json:"category,omitempty"`
	Level       *domain.Level `json:"level,omitempty"`
	TeacherID   *int          `json:"teacher_id,omitempty"`
	Tags        *string       `json:"tags,omitempty"`
}

// Validate checks the fields that are actually set
func (u CourseUpdate) Validate() error {
	if u.Title != nil && *u.Title == "" {
		return domain.ErrTitleRequired
	}
	if u.Category != nil && *u.Category == "" {
		return domain.ErrCategoryRequired
	}
	if u.Level != nil && !u.Level.Valid() {
		return domain.ErrInvalidLevel
	}
	return nil
}

// UpdateCourse applies a partial edit to an existing course and returns the
// updated record; requires a teacher or admin session
func (g *Gateway) UpdateCourse(ctx context.Context, id int, update CourseUpdate) (*domain.Course, error) {
	if err := update.Validate(); err != nil {
		return nil, err
	}
	raw, err := g.Call(ctx, http.MethodPatch, fmt.Sprintf("/courses/%d", id), update)
	if err != nil {
		return nil, err
	}
	var course domain.Course
	if err := g.decode(raw, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

// DeleteCourse removes a course
func (g *Gateway) DeleteCourse(ctx context.Context, id int) error {
	_, err := g.Call(ctx, http.MethodDelete, fmt.Sprintf("/courses/%d", id), nil)
	return err
}

// Search runs a unified search across courses, materials and teachers.
// Recognized filter keys: q, category, level, tags, material_type,
// teacher_name, search_in_courses, search_in_materials, search_in_teachers,
// limit.
func (g *Gateway) Search(ctx context.Context, filters Filters) (*domain.SearchResponse, error) {
	var resp domain.SearchResponse
	if err := g.get(ctx, "/search", &resp, WithQuery(filters)); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UserProgress returns per-course progress summaries for a user. Students
// may only query themselves; the backend enforces that.
func (g *Gateway) UserProgress(ctx context.Context, userID int) ([]domain.CourseProgress, error) {
	var progress []domain.CourseProgress
	if err := g.get(ctx, fmt.Sprintf("/analytics/user/%d/progress", userID), &progress); err != nil {
		return nil, err
	}
	return progress, nil
}

// ReindexSearch triggers a full rebuild of the search index; admin only
func (g *Gateway) ReindexSearch(ctx context.Context) error {
	return g.post(ctx, "/admin/search/reindex-all", nil, nil)
}
