package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"taskflow/config"
	authUC "taskflow/internal/auth/usecase"
	"taskflow/internal/model"
	"taskflow/internal/task"
	"taskflow/internal/task/repository"
	"taskflow/internal/task/repository/sqlite"
	"taskflow/internal/task/scheduler"
	taskUC "taskflow/internal/task/usecase"
	"taskflow/pkg/datemath"
	"taskflow/pkg/gcalendar"
	"taskflow/pkg/log"
)

type flags struct {
	ConfigPath string
	DBPath     string
	Timezone   string
}

func newApp(r io.Reader, w io.Writer) *cli.Command {
	f := &flags{}

	return &cli.Command{
		Name:      "taskctl",
		Usage:     "Administer a taskflow installation",
		UsageText: "taskctl [global options] command [command options]",
		Reader:    r,
		Writer:    w,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config.yaml (defaults to the server search path)",
				Sources:     cli.EnvVars("TASKFLOW_CONFIG"),
				Destination: &f.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "db",
				Usage:       "path to the SQLite database, overrides database.path",
				Sources:     cli.EnvVars("TASKFLOW_DB"),
				Destination: &f.DBPath,
			},
			&cli.StringFlag{
				Name:        "timezone",
				Usage:       "IANA timezone used for today, overrides scheduler.timezone",
				Destination: &f.Timezone,
			},
		},
		Commands: []*cli.Command{
			hashPasswordCmd(),
			previewCmd(f),
			exportCmd(f),
			importCmd(f),
			gcalAuthCmd(f),
		},
	}
}

func hashPasswordCmd() *cli.Command {
	return &cli.Command{
		Name:      "hash-password",
		Usage:     "Print a bcrypt hash for the users file",
		UsageText: "taskctl hash-password <password>",
		Action: func(ctx context.Context, c *cli.Command) error {
			password := c.Args().First()
			if password == "" {
				return fmt.Errorf("password argument is required")
			}
			hash, err := authUC.HashPassword(password)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(c.Root().Writer, hash)
			return err
		},
	}
}

func previewCmd(f *flags) *cli.Command {
	var (
		title, due, recurrence, weekdays string
		start, end, priority, project    string
	)
	return &cli.Command{
		Name:      "preview",
		Usage:     "Print the tasks a template expands to, without storing them",
		UsageText: "taskctl preview --title Gym --recurrence weekdays --weekdays mon,wed",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "title", Required: true, Destination: &title},
			&cli.StringFlag{Name: "due", Usage: "YYYY-MM-DD or a phrase like \"tomorrow\"", Destination: &due},
			&cli.StringFlag{Name: "recurrence", Value: string(model.RecurrenceNone), Usage: "none, everyday or weekdays", Destination: &recurrence},
			&cli.StringFlag{Name: "weekdays", Usage: "comma separated, e.g. mon,wed,fri", Destination: &weekdays},
			&cli.StringFlag{Name: "start", Usage: "HH:MM", Destination: &start},
			&cli.StringFlag{Name: "end", Usage: "HH:MM", Destination: &end},
			&cli.StringFlag{Name: "priority", Value: string(model.PriorityMedium), Destination: &priority},
			&cli.StringFlag{Name: "project", Destination: &project},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			parser, err := f.parser()
			if err != nil {
				return err
			}
			now := time.Now().In(parser.Location())

			rec, ok := model.ParseRecurrence(recurrence)
			if !ok {
				return fmt.Errorf("unknown recurrence %q", recurrence)
			}
			tmpl := model.TaskTemplate{
				Title:      title,
				StartTime:  start,
				EndTime:    end,
				Priority:   model.Priority(strings.ToLower(priority)),
				Project:    project,
				Recurrence: rec,
			}
			if !tmpl.Priority.Valid() {
				return fmt.Errorf("unknown priority %q", priority)
			}
			for _, raw := range strings.Split(weekdays, ",") {
				if raw = strings.ToLower(strings.TrimSpace(raw)); raw != "" {
					d := model.Weekday(raw)
					if !d.Valid() {
						return fmt.Errorf("unknown weekday %q", raw)
					}
					tmpl.Weekdays = append(tmpl.Weekdays, d)
				}
			}
			if rec == model.RecurrenceCustomWeekdays && len(tmpl.Weekdays) == 0 {
				return task.ErrNoWeekdays
			}
			if due != "" {
				d, err := parser.Parse(due, now)
				if err != nil {
					return err
				}
				tmpl.Due = datemath.FormatDate(d)
			}

			tasks, err := scheduler.Expand(tmpl, now)
			if err != nil {
				return err
			}
			w := c.Root().Writer
			for _, t := range scheduler.Order(tasks, scheduler.ModeList) {
				when := "all day"
				if t.HasTime() {
					when = t.StartTime + "-" + t.EndTime
				}
				fmt.Fprintf(w, "%s  %-11s  %-6s  %s\n", t.Due, when, t.Priority, t.Title)
			}
			fmt.Fprintf(w, "%d task(s)\n", len(tasks))
			return nil
		},
	}
}

func exportCmd(f *flags) *cli.Command {
	var userID, out string
	return &cli.Command{
		Name:      "export",
		Usage:     "Write a user's backup JSON",
		UsageText: "taskctl export --user <id> [--out file]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "user", Required: true, Destination: &userID},
			&cli.StringFlag{Name: "out", Usage: "output file, stdout when empty", Destination: &out},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, closeRepo, err := f.useCase(ctx)
			if err != nil {
				return err
			}
			defer closeRepo()

			snap, err := uc.Export(ctx, model.Scope{UserID: userID})
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(snap, "", "  ")
			if err != nil {
				return err
			}
			if out == "" {
				_, err = fmt.Fprintln(c.Root().Writer, string(data))
				return err
			}
			return os.WriteFile(out, data, 0o600)
		},
	}
}

func importCmd(f *flags) *cli.Command {
	var userID, in string
	return &cli.Command{
		Name:      "import",
		Usage:     "Replace a user's data with a backup JSON",
		UsageText: "taskctl import --user <id> --in file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "user", Required: true, Destination: &userID},
			&cli.StringFlag{Name: "in", Required: true, Destination: &in},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			data, err := os.ReadFile(in)
			if err != nil {
				return err
			}
			var snap model.Snapshot
			if err := json.Unmarshal(data, &snap); err != nil {
				return fmt.Errorf("%w: %v", task.ErrInvalidImport, err)
			}

			uc, closeRepo, err := f.useCase(ctx)
			if err != nil {
				return err
			}
			defer closeRepo()

			res, err := uc.Import(ctx, model.Scope{UserID: userID}, snap)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(c.Root().Writer, "imported %d task(s), profile updated: %t\n", res.TaskCount, res.ProfileUpdated)
			return err
		},
	}
}

func gcalAuthCmd(f *flags) *cli.Command {
	var credsPath string
	return &cli.Command{
		Name:      "gcal-auth",
		Usage:     "Authorize Google Calendar access and save token.json next to the credentials",
		UsageText: "taskctl gcal-auth [--credentials file]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "credentials", Usage: "OAuth Desktop App credentials, defaults to google_calendar.credentials_path", Destination: &credsPath},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if credsPath == "" {
				cfg, err := f.loadConfig()
				if err != nil {
					return err
				}
				credsPath = cfg.GoogleCalendar.CredentialsPath
			}
			if credsPath == "" {
				return fmt.Errorf("no credentials file configured")
			}
			data, err := os.ReadFile(credsPath)
			if err != nil {
				return err
			}
			a, err := gcalendar.NewAuthorizer(data)
			if err != nil {
				return err
			}

			w := c.Root().Writer
			fmt.Fprintln(w, "Open this URL, sign in and paste the authorization code:")
			fmt.Fprintln(w, a.AuthCodeURL("taskflow"))
			fmt.Fprint(w, "code: ")

			var code string
			if _, err := fmt.Fscan(c.Root().Reader, &code); err != nil {
				return fmt.Errorf("read authorization code: %w", err)
			}
			tokenPath := filepath.Join(filepath.Dir(credsPath), gcalendar.DefaultTokenFile)
			if err := a.ExchangeAndSave(ctx, code, tokenPath); err != nil {
				return err
			}
			_, err = fmt.Fprintf(w, "\ntoken saved to %s, restart the server to enable calendar mirroring\n", tokenPath)
			return err
		},
	}
}

func (f *flags) loadConfig() (*config.Config, error) {
	if f.ConfigPath != "" {
		return config.LoadFile(f.ConfigPath)
	}
	return config.Load()
}

func (f *flags) parser() (*datemath.Parser, error) {
	tz := f.Timezone
	if tz == "" && f.DBPath == "" {
		cfg, err := f.loadConfig()
		if err != nil {
			return nil, err
		}
		tz = cfg.Scheduler.Timezone
	}
	if tz == "" {
		return datemath.NewParserIn(time.Local), nil
	}
	return datemath.NewParser(tz)
}

// useCase opens the database and builds a task use case without a sync notifier.
func (f *flags) useCase(ctx context.Context) (task.UseCase, func(), error) {
	path := f.DBPath
	if path == "" {
		cfg, err := f.loadConfig()
		if err != nil {
			return nil, nil, err
		}
		path = cfg.Database.Path
	}
	parser, err := f.parser()
	if err != nil {
		return nil, nil, err
	}

	l := log.NewNop()
	repo, err := sqlite.Open(ctx, path, l)
	if err != nil {
		return nil, nil, err
	}
	return taskUC.New(l, repo, parser, nil), closer(repo), nil
}

func closer(repo repository.Repository) func() {
	return func() { _ = repo.Close() }
}
