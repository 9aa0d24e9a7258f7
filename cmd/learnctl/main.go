package main

import (
	"fmt"
	"os"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "login":
		err = cmdLogin(os.Args[2:])
	case "logout":
		err = cmdLogout()
	case "register":
		err = cmdRegister(os.Args[2:])
	case "whoami":
		err = cmdWhoami()
	case "courses":
		err = cmdCourses(os.Args[2:])
	case "course":
		err = cmdCourse(os.Args[2:])
	case "search":
		err = cmdSearch(os.Args[2:])
	case "dashboard":
		err = cmdDashboard(os.Args[2:])
	case "progress":
		err = cmdProgress(os.Args[2:])
	case "admin":
		err = cmdAdmin(os.Args[2:])
	case "config":
		err = cmdConfig()
	case "help", "-h", "--help":
		printUsage()
	case "version", "-v", "--version":
		fmt.Printf("learnctl %s\n", Version)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`learnctl - Terminal client for the course platform

Usage:
  learnctl <command> [arguments]

Account Commands:
  login           Log in with email and password
  logout          Log out and clear the stored token
  register        Create a new account
  whoami          Show the current user

Browse Commands:
  courses         List courses (--category, --level, --teacher-id)
                  Subcommands: create, update <id>, delete <id>
  course <id>     Show one course with its materials
                  Subcommands: open <material-id>, complete <material-id> [--score]
  search          Search courses, materials and teachers

Dashboard Commands:
  dashboard       Show a dashboard tab (overview, courses, progress, activity)
  progress        Show per-course progress

Other Commands:
  admin           Admin utilities (reindex)
  config          Show current configuration
  version         Show version
  help            Show this help`)
}
