package console

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

const helpText = `Commands:
  view <dashboard|employees|attendance>
  add <employeeId> <fullName> <email> <department>
  delete <employeeId>
  mark [employeeId] [date] [Present|Absent]
  select <employeeId>
  filter <YYYY-MM-DD>
  clear
  refresh
  export <file.xlsx> [YYYY-MM-DD]
  help
  quit
Fields containing spaces can be quoted: add EMP001 "Ava Thompson" ava@company.com Engineering`

// Shell reads one command per line and re-renders after each
type Shell struct {
	app      *App
	renderer Renderer
	in       io.Reader
	out      io.Writer

	// writeFile is os.WriteFile outside tests
	writeFile func(name string, data []byte, perm os.FileMode) error
}

func NewShell(app *App, renderer Renderer, in io.Reader, out io.Writer) *Shell {
	if renderer == nil {
		renderer = TextRenderer{}
	}
	return &Shell{
		app:       app,
		renderer:  renderer,
		in:        in,
		out:       out,
		writeFile: os.WriteFile,
	}
}

// Run processes commands until quit or end of input
func (s *Shell) Run(ctx context.Context) error {
	if err := s.render(); err != nil {
		return err
	}

	scanner := bufio.NewScanner(s.in)
	for {
		fmt.Fprint(s.out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}

		args, err := splitArgs(scanner.Text())
		if err != nil {
			s.app.Notify(BannerError, "Could not parse command: "+err.Error())
		} else if len(args) > 0 {
			if args[0] == "quit" || args[0] == "exit" {
				return nil
			}
			if args[0] == "help" {
				fmt.Fprintln(s.out, helpText)
				continue
			}
			s.Execute(ctx, args)
		}

		if err := s.render(); err != nil {
			return err
		}
	}
}

func (s *Shell) render() error {
	return s.renderer.Render(s.out, s.app.Snapshot())
}

// Execute runs one parsed command. Failures end up in the banner.
func (s *Shell) Execute(ctx context.Context, args []string) {
	cmd, rest := strings.ToLower(args[0]), args[1:]

	switch cmd {
	case "view":
		if len(rest) != 1 {
			s.usage("view <dashboard|employees|attendance>")
			return
		}
		_ = s.app.Navigate(rest[0])

	case "add":
		if len(rest) != 4 {
			s.usage("add <employeeId> <fullName> <email> <department>")
			return
		}
		s.app.SetEmployeeForm(EmployeeForm{EmployeeID: rest[0], FullName: rest[1], Email: rest[2], Department: rest[3]})
		_ = s.app.SubmitEmployeeForm(ctx)

	case "delete":
		if len(rest) != 1 {
			s.usage("delete <employeeId>")
			return
		}
		_ = s.app.DeleteEmployee(ctx, rest[0])

	case "mark":
		if len(rest) > 3 {
			s.usage("mark [employeeId] [date] [Present|Absent]")
			return
		}
		form := s.app.Snapshot().AttendanceForm
		if len(rest) > 0 {
			form.EmployeeID = rest[0]
		}
		if len(rest) > 1 {
			form.Date = rest[1]
		}
		if len(rest) > 2 {
			form.Status = rest[2]
		}
		s.app.SetAttendanceForm(form)
		_ = s.app.SubmitAttendanceForm(ctx)

	case "select":
		if len(rest) != 1 {
			s.usage("select <employeeId>")
			return
		}
		s.app.SelectEmployee(rest[0])

	case "filter":
		if len(rest) != 1 {
			s.usage("filter <YYYY-MM-DD>")
			return
		}
		_ = s.app.ApplyFilter(ctx, rest[0])

	case "clear":
		_ = s.app.ClearFilter(ctx)

	case "refresh":
		_ = s.app.Refresh(ctx)

	case "export":
		if len(rest) < 1 || len(rest) > 2 {
			s.usage("export <file.xlsx> [YYYY-MM-DD]")
			return
		}
		var date string
		if len(rest) == 2 {
			date = rest[1]
		}
		content, err := s.app.ExportAttendance(ctx, date)
		if err != nil {
			return
		}
		if err := s.writeFile(rest[0], content, 0o644); err != nil {
			s.app.Notify(BannerError, "Could not write export: "+err.Error())
			return
		}
		s.app.Notify(BannerSuccess, "Attendance exported to "+rest[0]+".")

	default:
		s.app.Notify(BannerError, "Unknown command: "+cmd+" (type help)")
	}
}

func (s *Shell) usage(text string) {
	s.app.Notify(BannerError, "Usage: "+text)
}

// splitArgs splits on spaces, honouring double quotes
func splitArgs(line string) ([]string, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, nil
	}

	r := csv.NewReader(strings.NewReader(line))
	r.Comma = ' '
	r.LazyQuotes = true
	fields, err := r.Read()
	if err != nil {
		return nil, err
	}

	args := fields[:0]
	for _, f := range fields {
		if f != "" {
			args = append(args, f)
		}
	}
	return args, nil
}
