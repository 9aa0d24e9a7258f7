package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/learnctl/learnctl/internal/domain"
	"github.com/learnctl/learnctl/internal/gateway"
	"github.com/learnctl/learnctl/internal/view"
)

// cmdLogin logs in with email and password
func cmdLogin(args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	ctx := context.Background()
	a.start(ctx)

	email, password, err := credentialArgs(args)
	if err != nil {
		return err
	}

	landing := view.NewLanding(a.session, a.gateway, a.renderer, a.notices, a.nav, a.logger)
	if err := landing.Attach(ctx); err != nil {
		return err
	}
	if err := landing.Login(ctx, email, password); err != nil {
		// Already surfaced through the form slot or a notice.
		os.Exit(1)
	}
	return nil
}

// cmdLogout clears the stored token
func cmdLogout() error {
	a, err := newApp()
	if err != nil {
		return err
	}
	a.start(context.Background())

	a.lifecycle.Logout()
	fmt.Println("✓ Logged out")
	return nil
}

// cmdRegister creates a new account and logs it in
func cmdRegister(args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	ctx := context.Background()
	a.start(ctx)

	reader := bufio.NewReader(os.Stdin)
	name := prompt(reader, "Name: ")
	email := prompt(reader, "Email: ")
	role := prompt(reader, "Role (student/teacher) [student]: ")
	if role == "" {
		role = string(domain.RoleStudent)
	}
	password := prompt(reader, "Password: ")

	landing := view.NewLanding(a.session, a.gateway, a.renderer, a.notices, a.nav, a.logger)
	if err := landing.Attach(ctx); err != nil {
		return err
	}
	if err := landing.Register(ctx, gateway.RegisterRequest{
		Name:     name,
		Email:    email,
		Role:     domain.Role(role),
		Password: password,
	}); err != nil {
		os.Exit(1)
	}
	return nil
}

// cmdWhoami shows the current user
func cmdWhoami() error {
	a, err := newApp()
	if err != nil {
		return err
	}
	ctx := context.Background()
	if err := a.requireUser(ctx); err != nil {
		return err
	}

	user := a.session.User()
	fmt.Printf("%s <%s>\n", user.Name, user.Email)
	fmt.Printf("Role: %s | Member since: %s\n", user.Role, user.CreatedAt.Format("2006-01-02"))
	return nil
}

func credentialArgs(args []string) (string, string, error) {
	switch len(args) {
	case 2:
		return args[0], args[1], nil
	case 1:
		reader := bufio.NewReader(os.Stdin)
		return args[0], prompt(reader, "Password: "), nil
	case 0:
		reader := bufio.NewReader(os.Stdin)
		return prompt(reader, "Email: "), prompt(reader, "Password: "), nil
	default:
		return "", "", fmt.Errorf("usage: learnctl login [email] [password]")
	}
}

func prompt(reader *bufio.Reader, label string) string {
	fmt.Print(label)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}
