package view

import (
	"context"
	"log/slog"

	"github.com/learnctl/learnctl/internal/domain"
	"github.com/learnctl/learnctl/internal/gateway"
	"github.com/learnctl/learnctl/internal/session"
)

// CourseDetail shows one course and its materials. The page itself is
// anonymous-accessible; only activity logging requires a user.
type CourseDetail struct {
	session  *session.Session
	gateway  *gateway.Gateway
	renderer Renderer
	notices  *NoticeCenter
	nav      Navigator
	logger   *slog.Logger
}

// NewCourseDetail creates the course-detail controller
func NewCourseDetail(sess *session.Session, gw *gateway.Gateway, r Renderer, nc *NoticeCenter, nav Navigator, logger *slog.Logger) *CourseDetail {
	return &CourseDetail{
		session:  sess,
		gateway:  gw,
		renderer: r,
		notices:  nc,
		nav:      nav,
		logger:   logger,
	}
}

// Attach waits for session startup to resolve
func (c *CourseDetail) Attach(ctx context.Context) error {
	if err := waitReady(ctx, c.session); err != nil {
		return err
	}
	c.renderer.RenderNav(NavFor(c.session))
	return nil
}

// Show loads the course and its materials and renders the page
func (c *CourseDetail) Show(ctx context.Context, courseID int) error {
	course, err := c.gateway.Course(ctx, courseID)
	if err != nil {
		surfaceError(c.renderer, c.notices, "", err)
		return err
	}
	materials, err := c.gateway.CourseMaterials(ctx, courseID)
	if err != nil {
		surfaceError(c.renderer, c.notices, "", err)
		return err
	}
	c.renderer.RenderCourseDetail(CourseDetailModel{Course: course, Materials: materials})
	return nil
}

// OpenMaterial records a view event for a material. Anonymous sessions skip
// logging silently; browsing is not gated on it.
func (c *CourseDetail) OpenMaterial(ctx context.Context, materialID int) error {
	return c.logActivity(ctx, materialID, domain.ActionView, nil)
}

// CompleteMaterial records a completion event, optionally with a score
func (c *CourseDetail) CompleteMaterial(ctx context.Context, materialID int, score *float64) error {
	return c.logActivity(ctx, materialID, domain.ActionComplete, score)
}

func (c *CourseDetail) logActivity(ctx context.Context, materialID int, action string, score *float64) error {
	user := c.session.User()
	if user == nil {
		return nil
	}
	_, err := c.gateway.LogActivity(ctx, gateway.LogActivityRequest{
		UserID:     user.ID,
		MaterialID: materialID,
		Action:     action,
		Score:      score,
	})
	if err != nil {
		surfaceError(c.renderer, c.notices, "", err)
		return err
	}
	return nil
}
