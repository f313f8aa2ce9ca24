package main

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/MKhiriev/todo-keeper/internal/adapter"
	"github.com/MKhiriev/todo-keeper/models"
)

var errUsage = errors.New("usage: todo-client build|version|signup|signin|passwd|list|add|update|rm [flags]")

// run executes one subcommand against api and prints its result to out.
func run(ctx context.Context, api adapter.TodoAPI, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	name, args := args[0], args[1:]
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)

	switch name {
	case "version":
		version, err := api.Version(ctx)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, version)
		return err

	case "signup", "signin", "passwd":
		email := fs.String("email", "", "account email")
		password := fs.String("password", "", "account password")
		if err := fs.Parse(args); err != nil {
			return err
		}
		if *email == "" || *password == "" {
			return fmt.Errorf("%s: -email and -password are required", name)
		}
		return runAccount(ctx, api, name, *email, digest(*password), out)

	case "list":
		status := fs.String("status", "", "only todos with this status")
		if err := fs.Parse(args); err != nil {
			return err
		}
		todos, err := api.ListTodos(ctx, statusOrNil(*status))
		if err != nil {
			return err
		}
		return printJSON(out, todos)

	case "add":
		todoName := fs.String("name", "", "todo name")
		description := fs.String("description", "", "todo description")
		status := fs.String("status", "", "initial status")
		if err := fs.Parse(args); err != nil {
			return err
		}

		req := models.CreateTodoRequest{Name: *todoName, Status: statusOrNil(*status)}
		if isSet(fs, "description") {
			req.Description = description
		}
		todo, err := api.CreateTodo(ctx, req)
		if err != nil {
			return err
		}
		return printJSON(out, todo)

	case "update":
		id := fs.String("id", "", "todo id")
		todoName := fs.String("name", "", "new name")
		description := fs.String("description", "", "new description")
		status := fs.String("status", "", "new status")
		if err := fs.Parse(args); err != nil {
			return err
		}

		var req models.UpdateTodoRequest
		if isSet(fs, "name") {
			req.Name = todoName
		}
		if isSet(fs, "description") {
			req.Description = description
		}
		req.Status = statusOrNil(*status)

		todo, err := api.UpdateTodo(ctx, *id, req)
		if err != nil {
			return err
		}
		return printJSON(out, todo)

	case "rm":
		id := fs.String("id", "", "todo id")
		if err := fs.Parse(args); err != nil {
			return err
		}
		todo, err := api.DeleteTodo(ctx, *id)
		if err != nil {
			return err
		}
		return printJSON(out, todo)
	}

	return errUsage
}

func runAccount(ctx context.Context, api adapter.TodoAPI, name, email, password string, out io.Writer) error {
	switch name {
	case "signup":
		if err := api.Signup(ctx, email, password); err != nil {
			return err
		}
		return printJSON(out, models.OKResponse{OK: true})
	case "signin":
		token, err := api.Signin(ctx, email, password)
		if err != nil {
			return err
		}
		return printJSON(out, models.TokenResponse{Token: token})
	default:
		if err := api.ChangePassword(ctx, email, password); err != nil {
			return err
		}
		return printJSON(out, models.OKResponse{OK: true})
	}
}

// digest is the form in which passwords travel: hex SHA-256.
func digest(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

func statusOrNil(s string) *models.TodoStatus {
	if s == "" {
		return nil
	}
	status := models.TodoStatus(s)
	return &status
}

func isSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
