// Package view contains the page controllers and the seams they render
// through. Controllers read session state and issue gateway calls; actual
// presentation is behind the Renderer interface and carries no control logic.
package view

import (
	"context"
	"sync"

	"github.com/learnctl/learnctl/internal/domain"
	"github.com/learnctl/learnctl/internal/session"
)

// Page identifies a navigable page
type Page string

const (
	PageLanding      Page = "landing"
	PageDashboard    Page = "dashboard"
	PageCourseDetail Page = "course_detail"
)

// Navigator abstracts page navigation so the forced-logout redirect can be
// tested and kept idempotent
type Navigator interface {
	Current() Page
	Go(Page)
}

var forceLandingMu sync.Mutex

// ForceLanding navigates to the landing page unless the navigator is
// already there. The check and the navigation run under one lock so two
// overlapping forced logouts produce at most one navigation.
func ForceLanding(nav Navigator) {
	forceLandingMu.Lock()
	defer forceLandingMu.Unlock()
	if nav.Current() != PageLanding {
		nav.Go(PageLanding)
	}
}

// MemoryNavigator is the default in-process navigator
type MemoryNavigator struct {
	mu      sync.Mutex
	current Page
	visits  []Page
}

// NewMemoryNavigator starts on the given page
func NewMemoryNavigator(start Page) *MemoryNavigator {
	return &MemoryNavigator{current: start}
}

func (n *MemoryNavigator) Current() Page {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

func (n *MemoryNavigator) Go(p Page) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.current = p
	n.visits = append(n.visits, p)
}

// Visits returns every navigation performed, oldest first
func (n *MemoryNavigator) Visits() []Page {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]Page, len(n.visits))
	copy(out, n.visits)
	return out
}

// NavModel is the navigation-bar view model
type NavModel struct {
	Authenticated   bool
	UserName        string
	Role            domain.Role
	CanCreateCourse bool
}

// NavFor derives the navigation model from the current session
func NavFor(sess *session.Session) NavModel {
	user := sess.User()
	if user == nil {
		return NavModel{}
	}
	return NavModel{
		Authenticated:   true,
		UserName:        user.Name,
		Role:            user.Role,
		CanCreateCourse: user.Role.CanManageCourses(),
	}
}

// CourseDetailModel is the course-detail page view model
type CourseDetailModel struct {
	Course    *domain.Course
	Materials []domain.Material
}

// SearchPageModel is the search-results view model
type SearchPageModel struct {
	Query    string
	Response *domain.SearchResponse
}

// DashboardModel is the dashboard view model for one tab activation
type DashboardModel struct {
	Tab        Tab
	User       *domain.User
	Courses    []domain.Course
	Progress   []domain.CourseProgress
	Activities []domain.ActivityEntry
}

// Renderer is the formatting seam. Implementations are pure presentation:
// they receive fully resolved view models and never reach back into session
// or gateway state.
type Renderer interface {
	RenderNav(NavModel)
	RenderCourseList([]domain.Course)
	RenderCourseDetail(CourseDetailModel)
	RenderSearch(SearchPageModel)
	RenderDashboard(DashboardModel)
	RenderNotice(Notice)
	// RenderFormError shows a failure in the named form's local message
	// slot (login, register, create-course).
	RenderFormError(form, message string)
}

// waitReady blocks until session startup has resolved. Every controller
// calls this before its first user-scoped read; rendering against a loading
// session is the race this layer exists to prevent.
func waitReady(ctx context.Context, sess *session.Session) error {
	select {
	case <-sess.Ready():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
