package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/learnctl/learnctl/internal/view"
)

// cmdDashboard shows one dashboard tab; defaults to overview
func cmdDashboard(args []string) error {
	tab := view.TabOverview
	if len(args) > 0 {
		switch view.Tab(args[0]) {
		case view.TabOverview, view.TabCourses, view.TabProgress, view.TabActivity:
			tab = view.Tab(args[0])
		default:
			return fmt.Errorf("unknown tab: %s (overview, courses, progress, activity)", args[0])
		}
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
	return dashboard.ShowTab(ctx, tab)
}

// cmdProgress shows per-course progress, for the current user by default.
// Teachers and admins may pass another user's ID.
func cmdProgress(args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	ctx := context.Background()
	if err := a.requireUser(ctx); err != nil {
		return err
	}

	userID := a.session.User().ID
	if len(args) > 0 {
		userID, err = strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid user ID: %s", args[0])
		}
	}

	progress, err := a.gateway.UserProgress(ctx, userID)
	if err != nil {
		return err
	}
	a.renderer.RenderDashboard(view.DashboardModel{
		Tab:      view.TabProgress,
		User:     a.session.User(),
		Progress: progress,
	})
	return nil
}
