package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/ogurasousui/codex-employee-dashboard/internal/adapters/report"
	"github.com/ogurasousui/codex-employee-dashboard/internal/core/employee"
	"github.com/ogurasousui/codex-employee-dashboard/internal/platform/bootstrap"
	"github.com/ogurasousui/codex-employee-dashboard/internal/platform/config"
)

var errLoginRequired = errors.New("login required: run `employeectl login` first")

type command struct {
	public bool
	run    func(ctx context.Context, app *bootstrap.App, args []string, out io.Writer) error
}

var commands = map[string]command{
	"login":  {public: true, run: cmdLogin},
	"logout": {public: true, run: cmdLogout},
	"whoami": {public: true, run: cmdWhoami},
	"seed":   {run: cmdSeed},
	"list":   {run: cmdList},
	"print":  {run: cmdPrint},
	"export": {run: cmdExport},
	"stats":  {run: cmdStats},
	"recent": {run: cmdRecent},
	"get":    {run: cmdGet},
	"add":    {run: cmdAdd},
	"update": {run: cmdUpdate},
	"toggle": {run: cmdToggle},
	"delete": {run: cmdDelete},
}

func run(ctx context.Context, args []string, out io.Writer, opts ...bootstrap.Option) error {
	global := flag.NewFlagSet("employeectl", flag.ContinueOnError)
	global.Usage = printUsage
	configPath := global.String("config", "", "path to config file (defaults to CONFIG_PATH env or assets/local.yaml)")
	if err := global.Parse(args); err != nil {
		return err
	}
	if global.NArg() == 0 {
		printUsage()
		return flag.ErrHelp
	}

	name := global.Arg(0)
	cmd, ok := commands[name]
	if !ok {
		printUsage()
		return fmt.Errorf("unknown command %q", name)
	}

	cfg, err := config.Load(config.Path(*configPath))
	if err != nil {
		return err
	}
	app, err := bootstrap.New(ctx, cfg, opts...)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()

	if !cmd.public {
		if !app.Auth.IsAuthenticated() {
			return errLoginRequired
		}
		if err := app.Employees.Load(ctx); err != nil {
			return err
		}
	}
	return cmd.run(ctx, app, global.Args()[1:], out)
}

func cmdLogin(ctx context.Context, app *bootstrap.App, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	res, err := app.Auth.Login(ctx, *email, *password)
	if err != nil {
		return err
	}
	if !res.Success {
		return errors.New(res.Error)
	}
	u := app.Auth.User()
	_, err = fmt.Fprintf(out, "Logged in as %s <%s>\n", u.Name, u.Email)
	return err
}

func cmdLogout(ctx context.Context, app *bootstrap.App, _ []string, out io.Writer) error {
	if err := app.Auth.Logout(ctx); err != nil {
		return err
	}
	_, err := fmt.Fprintln(out, "Logged out")
	return err
}

func cmdWhoami(_ context.Context, app *bootstrap.App, _ []string, out io.Writer) error {
	u := app.Auth.User()
	if u == nil {
		_, err := fmt.Fprintln(out, "Not logged in")
		return err
	}
	_, err := fmt.Fprintf(out, "%s <%s>\n", u.Name, u.Email)
	return err
}

func cmdSeed(_ context.Context, app *bootstrap.App, _ []string, out io.Writer) error {
	_, err := fmt.Fprintf(out, "%d employees available\n", len(app.Employees.AllEmployees()))
	return err
}

func filterFlags(fs *flag.FlagSet) *employee.Filters {
	f := &employee.Filters{}
	fs.StringVar(&f.Search, "search", "", "case-insensitive name search")
	fs.StringVar(&f.Gender, "gender", "", "Male, Female or Other")
	fs.StringVar(&f.Status, "status", "", "active or inactive")
	return f
}

func filtered(app *bootstrap.App, f *employee.Filters) ([]*employee.Employee, error) {
	if err := app.Employees.SetFilters(*f); err != nil {
		return nil, err
	}
	return app.Employees.Employees(), nil
}

func cmdList(_ context.Context, app *bootstrap.App, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	f := filterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	shown, err := filtered(app, f)
	if err != nil {
		return err
	}
	return report.WriteTable(out, "", shown, len(app.Employees.AllEmployees()))
}

func cmdPrint(_ context.Context, app *bootstrap.App, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("print", flag.ContinueOnError)
	title := fs.String("title", "Employees", "report title")
	f := filterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	shown, err := filtered(app, f)
	if err != nil {
		return err
	}
	return report.WriteTable(out, *title, shown, len(app.Employees.AllEmployees()))
}

func cmdExport(_ context.Context, app *bootstrap.App, args []string, out io.Writer) (err error) {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	path := fs.String("o", "employees.xlsx", "output file")
	f := filterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	shown, err := filtered(app, f)
	if err != nil {
		return err
	}

	file, err := os.Create(*path)
	if err != nil {
		return fmt.Errorf("create %s: %w", *path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	if err := report.WriteXLSX(file, shown); err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "Exported %d employees to %s\n", len(shown), *path)
	return err
}

func cmdStats(_ context.Context, app *bootstrap.App, _ []string, out io.Writer) error {
	s := app.Employees.Stats()
	_, err := fmt.Fprintf(out, "Total: %d\nActive: %d\nInactive: %d\n", s.Total, s.Active, s.Inactive)
	return err
}

func cmdRecent(_ context.Context, app *bootstrap.App, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("recent", flag.ContinueOnError)
	n := fs.Int("n", employee.DefaultRecentLimit, "number of employees")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *n < 0 {
		return fmt.Errorf("-n must not be negative")
	}
	recent := app.Employees.Recent(*n)
	return report.WriteTable(out, "", recent, len(app.Employees.AllEmployees()))
}

func idArg(name string, args []string) (string, []string, error) {
	if len(args) == 0 || args[0] == "" || args[0][0] == '-' {
		return "", nil, fmt.Errorf("%s requires an employee id", name)
	}
	return args[0], args[1:], nil
}

func printEmployee(out io.Writer, e *employee.Employee) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(e)
}

func cmdGet(_ context.Context, app *bootstrap.App, args []string, out io.Writer) error {
	id, _, err := idArg("get", args)
	if err != nil {
		return err
	}
	e, err := app.Employees.Get(id)
	if err != nil {
		return err
	}
	return printEmployee(out, e)
}

func cmdAdd(ctx context.Context, app *bootstrap.App, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	name := fs.String("name", "", "full name")
	gender := fs.String("gender", "", "Male, Female or Other")
	dob := fs.String("dob", "", "date of birth (YYYY-MM-DD)")
	state := fs.String("state", "", "state or union territory")
	inactive := fs.Bool("inactive", false, "create as inactive")
	image := fs.String("image", "", "profile image data URI")
	if err := fs.Parse(args); err != nil {
		return err
	}

	created, err := app.Employees.Add(ctx, employee.Fields{
		FullName:     *name,
		Gender:       employee.Gender(*gender),
		DateOfBirth:  *dob,
		State:        *state,
		IsActive:     !*inactive,
		ProfileImage: *image,
	})
	if err != nil {
		return err
	}
	return printEmployee(out, created)
}

func cmdUpdate(ctx context.Context, app *bootstrap.App, args []string, out io.Writer) error {
	id, rest, err := idArg("update", args)
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("update", flag.ContinueOnError)
	name := fs.String("name", "", "full name")
	gender := fs.String("gender", "", "Male, Female or Other")
	dob := fs.String("dob", "", "date of birth (YYYY-MM-DD)")
	state := fs.String("state", "", "state or union territory")
	active := fs.String("active", "", "true or false")
	image := fs.String("image", "", "profile image data URI")
	if err := fs.Parse(rest); err != nil {
		return err
	}

	var patch employee.Patch
	var visitErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "name":
			patch.FullName = name
		case "gender":
			g := employee.Gender(*gender)
			patch.Gender = &g
		case "dob":
			patch.DateOfBirth = dob
		case "state":
			patch.State = state
		case "image":
			patch.ProfileImage = image
		case "active":
			b, err := strconv.ParseBool(*active)
			if err != nil {
				visitErr = fmt.Errorf("-active: %w", err)
				return
			}
			patch.IsActive = &b
		}
	})
	if visitErr != nil {
		return visitErr
	}

	updated, err := app.Employees.Update(ctx, id, patch)
	if err != nil {
		return err
	}
	return printEmployee(out, updated)
}

func cmdToggle(ctx context.Context, app *bootstrap.App, args []string, out io.Writer) error {
	id, _, err := idArg("toggle", args)
	if err != nil {
		return err
	}
	e, err := app.Employees.ToggleStatus(ctx, id)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "%s is now %s\n", e.FullName, report.StatusLabel(e.IsActive))
	return err
}

func cmdDelete(ctx context.Context, app *bootstrap.App, args []string, out io.Writer) error {
	id, _, err := idArg("delete", args)
	if err != nil {
		return err
	}
	deleted, err := app.Employees.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("%w: %s", employee.ErrEmployeeNotFound, id)
	}
	_, err = fmt.Fprintf(out, "Deleted %s\n", id)
	return err
}
