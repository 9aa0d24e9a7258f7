package main

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	"github.com/learnctl/learnctl/internal/domain"
	"github.com/learnctl/learnctl/internal/gateway"
	"github.com/learnctl/learnctl/internal/view"
)

// cmdCourses lists courses or manages them (create, update, delete)
func cmdCourses(args []string) error {
	if len(args) > 0 {
		switch args[0] {
		case "create":
			return cmdCourseCreate(args[1:])
		case "update":
			return cmdCourseUpdate(args[1:])
		case "delete":
			return cmdCourseDelete(args[1:])
		}
	}

	fs := flag.NewFlagSet("courses", flag.ExitOnError)
	category := fs.String("category", "", "filter by category")
	level := fs.String("level", "", "filter by level (beginner/intermediate/advanced)")
	teacherID := fs.Int("teacher-id", 0, "filter by teacher")
	limit := fs.Int("limit", 20, "maximum results")
	if err := fs.Parse(args); err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	ctx := context.Background()
	a.start(ctx)

	filters := gateway.Filters{
		"category": *category,
		"level":    *level,
		"limit":    *limit,
	}
	if *teacherID > 0 {
		filters["teacher_id"] = *teacherID
	}

	landing := view.NewLanding(a.session, a.gateway, a.renderer, a.notices, a.nav, a.logger)
	if err := landing.Attach(ctx); err != nil {
		return err
	}
	return landing.BrowseCourses(ctx, filters)
}

// cmdCourseCreate creates a course; teacher or admin only
func cmdCourseCreate(args []string) error {
	fs := flag.NewFlagSet("courses create", flag.ExitOnError)
	title := fs.String("title", "", "course title")
	description := fs.String("description", "", "course description")
	category := fs.String("category", "", "course category")
	level := fs.String("level", string(domain.LevelBeginner), "course level")
	tags := fs.String("tags", "", "comma-separated tags")
	if err := fs.Parse(args); err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	ctx := context.Background()
	if err := a.requireUser(ctx); err != nil {
		return err
	}

	dashboard := view.NewDashboard(a.session, a.gateway, a.renderer, a.notices, a.nav, a.logger)
	if err := dashboard.Attach(ctx); err != nil {
		return err
	}
	user := a.session.User()
	return dashboard.CreateCourse(ctx, gateway.CourseRequest{
		Title:       *title,
		Description: *description,
		Category:    *category,
		Level:       domain.Level(*level),
		TeacherID:   &user.ID,
		Tags:        *tags,
	})
}

// cmdCourseUpdate edits a course; only flags that were passed are sent, so
// untouched fields keep their current value
func cmdCourseUpdate(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("course ID required (e.g., learnctl courses update 42 --title \"New title\")")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid course ID: %s", args[0])
	}

	fs := flag.NewFlagSet("courses update", flag.ExitOnError)
	title := fs.String("title", "", "new course title")
	description := fs.String("description", "", "new course description")
	category := fs.String("category", "", "new course category")
	level := fs.String("level", "", "new course level")
	teacherID := fs.Int("teacher-id", 0, "reassign to teacher")
	tags := fs.String("tags", "", "new comma-separated tags")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	var update gateway.CourseUpdate
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "title":
			update.Title = title
		case "description":
			update.Description = description
		case "category":
			update.Category = category
		case "level":
			lvl := domain.Level(*level)
			update.Level = &lvl
		case "teacher-id":
			update.TeacherID = teacherID
		case "tags":
			update.Tags = tags
		}
	})

	a, err := newApp()
	if err != nil {
		return err
	}
	ctx := context.Background()
	if err := a.requireUser(ctx); err != nil {
		return err
	}

	dashboard := view.NewDashboard(a.session, a.gateway, a.renderer, a.notices, a.nav, a.logger)
	if err := dashboard.Attach(ctx); err != nil {
		return err
	}
	return dashboard.UpdateCourse(ctx, id, update)
}

// cmdCourseDelete removes a course; teacher or admin only
func cmdCourseDelete(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("course ID required (e.g., learnctl courses delete 42)")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid course ID: %s", args[0])
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	ctx := context.Background()
	if err := a.requireUser(ctx); err != nil {
		return err
	}

	dashboard := view.NewDashboard(a.session, a.gateway, a.renderer, a.notices, a.nav, a.logger)
	if err := dashboard.Attach(ctx); err != nil {
		return err
	}
	return dashboard.DeleteCourse(ctx, id)
}

// cmdCourse shows one course with its materials, or records a material
// view/completion event
func cmdCourse(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("course ID required (e.g., learnctl course 42)")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid course ID: %s", args[0])
	}
	if len(args) > 1 {
		switch args[1] {
		case "open", "complete":
			return cmdCourseMaterial(id, args[1], args[2:])
		default:
			return fmt.Errorf("unknown course action: %s (expected open or complete)", args[1])
		}
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	ctx := context.Background()
	a.start(ctx)

	detail := view.NewCourseDetail(a.session, a.gateway, a.renderer, a.notices, a.nav, a.logger)
	if err := detail.Attach(ctx); err != nil {
		return err
	}
	return detail.Show(ctx, id)
}

// cmdCourseMaterial records a view or completion event for a material
func cmdCourseMaterial(courseID int, action string, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("material ID required (e.g., learnctl course %d %s 7)", courseID, action)
	}
	materialID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid material ID: %s", args[0])
	}

	fs := flag.NewFlagSet("course "+action, flag.ExitOnError)
	score := fs.Float64("score", -1, "score for a completed quiz or assignment")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	ctx := context.Background()
	if err := a.requireUser(ctx); err != nil {
		return err
	}

	detail := view.NewCourseDetail(a.session, a.gateway, a.renderer, a.notices, a.nav, a.logger)
	if err := detail.Attach(ctx); err != nil {
		return err
	}

	if action == "open" {
		if err := detail.OpenMaterial(ctx, materialID); err != nil {
			return err
		}
		fmt.Printf("Recorded view of material %d\n", materialID)
		return nil
	}
	var scorePtr *float64
	if *score >= 0 {
		scorePtr = score
	}
	if err := detail.CompleteMaterial(ctx, materialID, scorePtr); err != nil {
		return err
	}
	fmt.Printf("Recorded completion of material %d\n", materialID)
	return nil
}
