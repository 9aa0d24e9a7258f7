package view

import (
	"context"
	"log/slog"

	"github.com/learnctl/learnctl/internal/gateway"
	"github.com/learnctl/learnctl/internal/session"
)

// Tab identifies a dashboard tab
type Tab string

const (
	TabOverview Tab = "overview"
	TabCourses  Tab = "courses"
	TabProgress Tab = "progress"
	TabActivity Tab = "activity"
)

const activityFeedLimit = 10

// Dashboard is the authenticated home page. Every tab activation refetches
// its data: freshness is preferred over caching here, deliberately, so there
// is no invalidation logic to get wrong.
type Dashboard struct {
	session  *session.Session
	gateway  *gateway.Gateway
	renderer Renderer
	notices  *NoticeCenter
	nav      Navigator
	logger   *slog.Logger
}

// NewDashboard creates the dashboard controller
func NewDashboard(sess *session.Session, gw *gateway.Gateway, r Renderer, nc *NoticeCenter, nav Navigator, logger *slog.Logger) *Dashboard {
	return &Dashboard{
		session:  sess,
		gateway:  gw,
		renderer: r,
		notices:  nc,
		nav:      nav,
		logger:   logger,
	}
}

// Attach waits for session startup and verifies the session is
// authenticated. An anonymous session is sent back to the landing page; the
// dashboard never renders user-scoped content against an unresolved or
// absent user.
func (d *Dashboard) Attach(ctx context.Context) error {
	if err := waitReady(ctx, d.session); err != nil {
		return err
	}
	if !d.session.Authenticated() {
		ForceLanding(d.nav)
		return session.ErrNotAuthenticated
	}
	d.renderer.RenderNav(NavFor(d.session))
	return nil
}

// ShowTab loads and renders one tab. Switching to an already-shown tab
// simply reloads it.
func (d *Dashboard) ShowTab(ctx context.Context, tab Tab) error {
	user := d.session.User()
	if user == nil {
		ForceLanding(d.nav)
		return session.ErrNotAuthenticated
	}

	model := DashboardModel{Tab: tab, User: user}

	var err error
	switch tab {
	case TabCourses:
		filters := gateway.Filters{}
		if user.Role.CanManageCourses() {
			filters["teacher_id"] = user.ID
		}
		model.Courses, err = d.gateway.Courses(ctx, filters)
	case TabProgress:
		model.Progress, err = d.gateway.UserProgress(ctx, user.ID)
	case TabActivity:
		model.Activities, err = d.gateway.MyActivities(ctx, activityFeedLimit)
	case TabOverview:
		// Overview combines the progress summary with the recent feed.
		model.Progress, err = d.gateway.UserProgress(ctx, user.ID)
		if err == nil {
			model.Activities, err = d.gateway.MyActivities(ctx, activityFeedLimit)
		}
	}
	if err != nil {
		surfaceError(d.renderer, d.notices, "", err)
		return err
	}

	d.renderer.RenderDashboard(model)
	return nil
}

// CreateCourse submits the create-course form. The affordance is only shown
// to teacher and admin roles, but the check is repeated here since the
// backend will reject it anyway.
func (d *Dashboard) CreateCourse(ctx context.Context, req gateway.CourseRequest) error {
	user := d.session.User()
	if user == nil || !user.Role.CanManageCourses() {
		surfaceError(d.renderer, d.notices, "create-course", session.ErrNotAuthenticated)
		return session.ErrNotAuthenticated
	}
	if _, err := d.gateway.CreateCourse(ctx, req); err != nil {
		surfaceError(d.renderer, d.notices, "create-course", err)
		return err
	}
	d.notices.Push(NoticeInfo, "Course created")
	return d.ShowTab(ctx, TabCourses)
}

// UpdateCourse submits a partial course edit, role-gated like CreateCourse
func (d *Dashboard) UpdateCourse(ctx context.Context, courseID int, update gateway.CourseUpdate) error {
	user := d.session.User()
	if user == nil || !user.Role.CanManageCourses() {
		surfaceError(d.renderer, d.notices, "edit-course", session.ErrNotAuthenticated)
		return session.ErrNotAuthenticated
	}
	if _, err := d.gateway.UpdateCourse(ctx, courseID, update); err != nil {
		surfaceError(d.renderer, d.notices, "edit-course", err)
		return err
	}
	d.notices.Push(NoticeInfo, "Course updated")
	return d.ShowTab(ctx, TabCourses)
}

// DeleteCourse removes a course, role-gated like CreateCourse
func (d *Dashboard) DeleteCourse(ctx context.Context, courseID int) error {
	user := d.session.User()
	if user == nil || !user.Role.CanManageCourses() {
		surfaceError(d.renderer, d.notices, "", session.ErrNotAuthenticated)
		return session.ErrNotAuthenticated
	}
	if err := d.gateway.DeleteCourse(ctx, courseID); err != nil {
		surfaceError(d.renderer, d.notices, "", err)
		return err
	}
	d.notices.Push(NoticeInfo, "Course deleted")
	return d.ShowTab(ctx, TabCourses)
}
