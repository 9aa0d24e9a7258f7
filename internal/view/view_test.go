package view

import (
	"sync"
	"testing"

	"github.com/learnctl/learnctl/internal/domain"
	"github.com/learnctl/learnctl/internal/session"
)

// fakeRenderer records every render call for assertions
type fakeRenderer struct {
	mu         sync.Mutex
	navs       []NavModel
	lists      [][]domain.Course
	details    []CourseDetailModel
	searches   []SearchPageModel
	dashboards []DashboardModel
	formErrors map[string][]string
}

func newFakeRenderer() *fakeRenderer {
	return &fakeRenderer{formErrors: make(map[string][]string)}
}

func (r *fakeRenderer) RenderNav(m NavModel) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.navs = append(r.navs, m)
}

func (r *fakeRenderer) RenderCourseList(courses []domain.Course) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lists = append(r.lists, courses)
}

func (r *fakeRenderer) RenderCourseDetail(m CourseDetailModel) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.details = append(r.details, m)
}

func (r *fakeRenderer) RenderSearch(m SearchPageModel) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.searches = append(r.searches, m)
}

func (r *fakeRenderer) RenderDashboard(m DashboardModel) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dashboards = append(r.dashboards, m)
}

func (r *fakeRenderer) RenderNotice(Notice) {}

func (r *fakeRenderer) RenderFormError(form, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.formErrors[form] = append(r.formErrors[form], message)
}

func TestForceLanding_Idempotent(t *testing.T) {
	nav := NewMemoryNavigator(PageDashboard)

	ForceLanding(nav)
	ForceLanding(nav)

	if nav.Current() != PageLanding {
		t.Errorf("Current() = %v; want PageLanding", nav.Current())
	}
	if visits := nav.Visits(); len(visits) != 1 {
		t.Errorf("Visits() = %v; want exactly one navigation", visits)
	}
}

func TestForceLanding_NoOpWhenAlreadyThere(t *testing.T) {
	nav := NewMemoryNavigator(PageLanding)

	ForceLanding(nav)

	if visits := nav.Visits(); len(visits) != 0 {
		t.Errorf("Visits() = %v; want none", visits)
	}
}

func TestForceLanding_ConcurrentSingleNavigation(t *testing.T) {
	nav := NewMemoryNavigator(PageDashboard)

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ForceLanding(nav)
		}()
	}
	wg.Wait()

	if visits := nav.Visits(); len(visits) != 1 {
		t.Errorf("Visits() = %v; want exactly one navigation under overlap", visits)
	}
}

func TestNavFor(t *testing.T) {
	sess := session.New()

	nav := NavFor(sess)
	if nav.Authenticated || nav.CanCreateCourse {
		t.Errorf("NavFor(anonymous) = %+v; want zero model", nav)
	}

	sess.SetUser(&domain.User{ID: 1, Name: "Ada", Role: domain.RoleTeacher})
	nav = NavFor(sess)
	if !nav.Authenticated || nav.UserName != "Ada" {
		t.Errorf("NavFor() = %+v; want authenticated Ada", nav)
	}
	if !nav.CanCreateCourse {
		t.Error("CanCreateCourse = false for teacher; want true")
	}

	sess.SetUser(&domain.User{ID: 2, Name: "Bob", Role: domain.RoleStudent})
	if NavFor(sess).CanCreateCourse {
		t.Error("CanCreateCourse = true for student; want false")
	}
}
