package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/learnctl/learnctl/internal/domain"
	"github.com/learnctl/learnctl/internal/view"
)

// textRenderer is the terminal implementation of view.Renderer. Pure
// formatting: it receives resolved view models and prints them.
type textRenderer struct {
	out io.Writer
}

func newTextRenderer(out io.Writer) *textRenderer {
	return &textRenderer{out: out}
}

func (r *textRenderer) RenderNav(nav view.NavModel) {
	if !nav.Authenticated {
		return
	}
	fmt.Fprintf(r.out, "Logged in as %s (%s)\n", nav.UserName, nav.Role)
}

func (r *textRenderer) RenderCourseList(courses []domain.Course) {
	if len(courses) == 0 {
		fmt.Fprintln(r.out, "No courses found")
		return
	}
	for _, c := range courses {
		fmt.Fprintf(r.out, "  #%d %s [%s/%s]\n", c.ID, c.Title, c.Category, c.Level)
		if c.Description != "" {
			fmt.Fprintf(r.out, "      %s\n", c.Description)
		}
		if tags := c.TagList(); len(tags) > 0 {
			fmt.Fprintf(r.out, "      Tags: %s\n", strings.Join(tags, ", "))
		}
	}
}

func (r *textRenderer) RenderCourseDetail(model view.CourseDetailModel) {
	c := model.Course
	fmt.Fprintf(r.out, "%s [%s/%s]\n", c.Title, c.Category, c.Level)
	if c.Description != "" {
		fmt.Fprintf(r.out, "%s\n", c.Description)
	}
	fmt.Fprintf(r.out, "\nMaterials (%d):\n", len(model.Materials))
	for _, m := range model.Materials {
		fmt.Fprintf(r.out, "  %3d. [%s] %s\n", m.OrderIndex, m.Type, m.Title)
	}
}

func (r *textRenderer) RenderSearch(model view.SearchPageModel) {
	resp := model.Response
	if len(resp.Results) == 0 {
		fmt.Fprintln(r.out, "No results")
		return
	}
	fmt.Fprintf(r.out, "Results (%d):\n", len(resp.Results))
	for _, hit := range resp.Results {
		line := fmt.Sprintf("  [%s] %s", hit.Type, hit.Title)
		if hit.TeacherName != "" {
			line += " by " + hit.TeacherName
		}
		if hit.RelevanceScore != nil {
			line += fmt.Sprintf(" (%.2f)", *hit.RelevanceScore)
		}
		fmt.Fprintln(r.out, line)
	}
	if len(resp.Facets.Categories) > 0 {
		fmt.Fprint(r.out, "\nCategories:")
		for _, f := range resp.Facets.Categories {
			fmt.Fprintf(r.out, " %s(%d)", f.Value, f.Count)
		}
		fmt.Fprintln(r.out)
	}
}

func (r *textRenderer) RenderDashboard(model view.DashboardModel) {
	fmt.Fprintf(r.out, "Dashboard: %s\n\n", model.Tab)
	switch model.Tab {
	case view.TabCourses:
		r.RenderCourseList(model.Courses)
	case view.TabProgress:
		r.renderProgress(model.Progress)
	case view.TabActivity:
		r.renderActivities(model.Activities)
	case view.TabOverview:
		r.renderProgress(model.Progress)
		fmt.Fprintln(r.out)
		r.renderActivities(model.Activities)
	}
}

func (r *textRenderer) renderProgress(progress []domain.CourseProgress) {
	if len(progress) == 0 {
		fmt.Fprintln(r.out, "No course activity yet")
		return
	}
	for _, p := range progress {
		fmt.Fprintf(r.out, "  %s: %.0f%% (%d/%d materials)", p.CourseTitle, p.CompletionPercentage, p.CompletedMaterials, p.TotalMaterials)
		if p.AvgScore != nil {
			fmt.Fprintf(r.out, ", avg score %.1f", *p.AvgScore)
		}
		fmt.Fprintln(r.out)
	}
}

func (r *textRenderer) renderActivities(entries []domain.ActivityEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(r.out, "No recent activity")
		return
	}
	fmt.Fprintln(r.out, "Recent activity:")
	for _, e := range entries {
		fmt.Fprintf(r.out, "  %s  %s [%s] %s\n", e.Timestamp.Format("2006-01-02 15:04"), e.Action, e.MaterialType, e.MaterialTitle)
	}
}

func (r *textRenderer) RenderNotice(n view.Notice) {
	prefix := "ℹ"
	if n.Level == view.NoticeError {
		prefix = "✗"
	}
	fmt.Fprintf(r.out, "%s %s\n", prefix, n.Message)
}

func (r *textRenderer) RenderFormError(form, message string) {
	fmt.Fprintf(r.out, "✗ %s: %s\n", form, message)
}
