package view

import (
	"context"
	"errors"
	"log/slog"

	"github.com/learnctl/learnctl/internal/domain"
	"github.com/learnctl/learnctl/internal/gateway"
	"github.com/learnctl/learnctl/internal/session"
)

// surfaceError routes a failure per the error policy: request failures with
// a dedicated form slot render locally, everything else becomes a global
// notice. Unauthorized failures reach here only after the forced logout has
// already run, so a transient notice is all that is left to do.
func surfaceError(r Renderer, nc *NoticeCenter, form string, err error) {
	var apiErr *domain.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Kind {
		case domain.KindUnauthorized:
			nc.Push(NoticeError, "Your session has expired. Please log in again.")
		case domain.KindRequestFailed:
			if form != "" {
				r.RenderFormError(form, apiErr.Message)
				return
			}
			nc.Push(NoticeError, apiErr.Message)
		default:
			nc.Push(NoticeError, "Could not reach the server. Please try again.")
		}
		return
	}

	// Caller-side validation failure, raised before any call was issued.
	if form != "" {
		r.RenderFormError(form, err.Error())
		return
	}
	nc.Push(NoticeError, err.Error())
}

// Landing is the anonymous-accessible entry page: course browsing, search,
// and the login and registration forms.
type Landing struct {
	session  *session.Session
	gateway  *gateway.Gateway
	renderer Renderer
	notices  *NoticeCenter
	nav      Navigator
	logger   *slog.Logger
}

// NewLanding creates the landing page controller
func NewLanding(sess *session.Session, gw *gateway.Gateway, r Renderer, nc *NoticeCenter, nav Navigator, logger *slog.Logger) *Landing {
	return &Landing{
		session:  sess,
		gateway:  gw,
		renderer: r,
		notices:  nc,
		nav:      nav,
		logger:   logger,
	}
}

// Attach waits for session startup to resolve and renders the initial
// navigation state. It must run before any other method on the controller.
func (l *Landing) Attach(ctx context.Context) error {
	if err := waitReady(ctx, l.session); err != nil {
		return err
	}
	l.renderer.RenderNav(NavFor(l.session))
	return nil
}

// BrowseCourses lists courses with the given filters and renders them.
// Available to anonymous sessions.
func (l *Landing) BrowseCourses(ctx context.Context, filters gateway.Filters) error {
	courses, err := l.gateway.Courses(ctx, filters)
	if err != nil {
		surfaceError(l.renderer, l.notices, "", err)
		return err
	}
	l.renderer.RenderCourseList(courses)
	return nil
}

// Search runs a unified search and renders the result page. Available to
// anonymous sessions.
func (l *Landing) Search(ctx context.Context, filters gateway.Filters) error {
	resp, err := l.gateway.Search(ctx, filters)
	if err != nil {
		surfaceError(l.renderer, l.notices, "", err)
		return err
	}
	query, _ := filters["q"].(string)
	l.renderer.RenderSearch(SearchPageModel{Query: query, Response: resp})
	return nil
}

// Login submits the login form. Failures render in the form's local message
// slot; a bad password never tears down an existing session or navigates.
func (l *Landing) Login(ctx context.Context, email, password string) error {
	user, err := l.gateway.Login(ctx, email, password)
	if err != nil {
		surfaceError(l.renderer, l.notices, "login", err)
		return err
	}
	l.renderer.RenderNav(NavFor(l.session))
	l.notices.Push(NoticeInfo, "Welcome back, "+user.Name)
	return nil
}

// Register submits the registration form and, on success, logs the new
// account in the way the original landing page does
func (l *Landing) Register(ctx context.Context, req gateway.RegisterRequest) error {
	if _, err := l.gateway.Register(ctx, req); err != nil {
		surfaceError(l.renderer, l.notices, "register", err)
		return err
	}
	return l.Login(ctx, req.Email, req.Password)
}
