package main

import (
	"context"
	"flag"
	"strings"

	"github.com/learnctl/learnctl/internal/gateway"
	"github.com/learnctl/learnctl/internal/view"
)

// cmdSearch runs a unified search across courses, materials and teachers
func cmdSearch(args []string) error {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	category := fs.String("category", "", "filter by category")
	level := fs.String("level", "", "filter by level")
	tags := fs.String("tags", "", "comma-separated tags")
	materialType := fs.String("material-type", "", "filter by material type")
	teacher := fs.String("teacher", "", "filter by teacher name")
	noCourses := fs.Bool("no-courses", false, "exclude courses")
	noMaterials := fs.Bool("no-materials", false, "exclude materials")
	noTeachers := fs.Bool("no-teachers", false, "exclude teachers")
	limit := fs.Int("limit", 20, "maximum results")
	if err := fs.Parse(args); err != nil {
		return err
	}
	query := strings.Join(fs.Args(), " ")

	a, err := newApp()
	if err != nil {
		return err
	}
	ctx := context.Background()
	a.start(ctx)

	filters := gateway.Filters{
		"q":             query,
		"category":      *category,
		"level":         *level,
		"tags":          *tags,
		"material_type": *materialType,
		"teacher_name":  *teacher,
		"limit":         *limit,
	}
	// The backend defaults every scope to true; only send the overrides.
	if *noCourses {
		filters["search_in_courses"] = false
	}
	if *noMaterials {
		filters["search_in_materials"] = false
	}
	if *noTeachers {
		filters["search_in_teachers"] = false
	}

	landing := view.NewLanding(a.session, a.gateway, a.renderer, a.notices, a.nav, a.logger)
	if err := landing.Attach(ctx); err != nil {
		return err
	}
	return landing.Search(ctx, filters)
}
