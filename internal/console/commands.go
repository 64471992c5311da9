package console

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	domerrors "github.com/garyellow/sgpa-go/internal/errors"
	"github.com/garyellow/sgpa-go/internal/stringutil"
)

// commands builds the handlers bound to the console session, in help order.
func (c *Console) commands() []Handler {
	return []Handler{
		NewCommand("help", "help [command]", "show commands", c.help, "?", "h"),
		NewCommand("depts", "depts", "list departments", c.departments, "departments"),
		NewCommand("dept", "dept <id>", "select a department", c.selectDepartment, "department"),
		NewCommand("sems", "sems", "list semesters of the department", c.semesters, "semesters"),
		NewCommand("sem", "sem <n>", "select a semester", c.selectSemester, "semester"),
		NewCommand("courses", "courses", "show courses and entered grades", c.courses, "ls"),
		NewCommand("grade", "grade <course> <symbol>", "set a grade by course number or name", c.setGrade, "g"),
		NewCommand("grades", "grades", "show the grade point table", c.gradeTable, "table"),
		NewCommand("calc", "calc", "calculate the SGPA", c.calculate, "calculate"),
		NewCommand("reset", "reset", "clear entered grades", c.reset, "clear"),
		NewCommand("quit", "quit", "leave", c.quit, "exit", "q"),
	}
}

func (c *Console) help(_ context.Context, args []string) ([]string, error) {
	if len(args) > 0 {
		h := c.registry.GetHandler(strings.ToLower(args[0]))
		if h == nil {
			return nil, fmt.Errorf("%w %q", ErrUnknownCommand, args[0])
		}
		return []string{fmt.Sprintf("%s  %s", h.Usage(), h.Summary())}, nil
	}

	handlers := c.registry.Handlers()
	width := 0
	for _, h := range handlers {
		width = max(width, len(h.Usage()))
	}
	lines := []string{"Commands:"}
	for _, h := range handlers {
		lines = append(lines, fmt.Sprintf("  %-*s  %s", width, h.Usage(), h.Summary()))
	}
	return lines, nil
}

func (c *Console) departments(context.Context, []string) ([]string, error) {
	selected := ""
	if d, ok := c.session.Department(); ok {
		selected = d.ID
	}
	return c.render.departments(c.session.Catalog().Departments(), selected), nil
}

func (c *Console) selectDepartment(ctx context.Context, args []string) ([]string, error) {
	if len(args) != 1 {
		return nil, domerrors.NewValidationError("department", "usage: dept <id>")
	}

	d, err := c.session.SelectDepartment(args[0])
	if err != nil {
		c.metrics.RecordLookup("unknown_department")
		return nil, err
	}
	c.logger.WithField("department", d.ID).InfoContext(ctx, "Department selected")

	lines := []string{"Selected " + d.Name + "."}
	more, err := c.semesters(ctx, nil)
	return append(lines, more...), err
}

func (c *Console) semesters(context.Context, []string) ([]string, error) {
	d, ok := c.session.Department()
	if !ok {
		return nil, domerrors.NewWrapper("console", "semesters").Wrap(domerrors.ErrNoSelection, "select a department first")
	}
	infos, err := c.session.Catalog().Semesters(d.ID)
	if err != nil {
		return nil, err
	}
	return c.render.semesters(d, infos, c.session.Semester()), nil
}

func (c *Console) selectSemester(ctx context.Context, args []string) ([]string, error) {
	if len(args) != 1 || !stringutil.IsNumeric(args[0]) {
		return nil, domerrors.NewValidationError("semester", "usage: sem <n>, where n is a semester number")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return nil, domerrors.NewValidationError("semester", "semester number is out of range")
	}

	if _, err := c.session.SelectSemester(n); err != nil {
		switch {
		case errors.Is(err, domerrors.ErrUnavailable):
			c.metrics.RecordLookup("unavailable")
		case errors.Is(err, domerrors.ErrUnknownSemester):
			c.metrics.RecordLookup("unknown_semester")
		}
		return nil, err
	}
	c.metrics.RecordLookup("available")
	c.logger.WithField("semester", n).InfoContext(ctx, "Semester selected")

	lines, err := c.courses(ctx, nil)
	return append(lines, "Enter grades with: grade <course> <symbol>"), err
}

func (c *Console) courses(context.Context, []string) ([]string, error) {
	d, ok := c.session.Department()
	if !ok || c.session.Semester() == 0 {
		return nil, domerrors.NewWrapper("console", "courses").Wrap(domerrors.ErrNoSelection, "select a department and semester first")
	}
	return c.render.courses(d, c.session.Semester(), c.session.Courses(), c.session.Grades()), nil
}

func (c *Console) setGrade(ctx context.Context, args []string) ([]string, error) {
	if len(args) < 2 {
		return nil, domerrors.NewValidationError("grade", "usage: grade <course> <symbol>")
	}
	courseRef, symbolInput := stringutil.SplitLast(args)

	course, symbol, err := c.session.SetGrade(courseRef, symbolInput)
	if err != nil {
		return nil, err
	}
	c.metrics.RecordGradeEntry(symbol.String())
	c.logger.WithField("course", course.Name).
		WithField("symbol", symbol.String()).
		DebugContext(ctx, "Grade set")

	lines := []string{fmt.Sprintf("%s (%s): %s", course.Name, creditLabel(course.Credits), symbol)}
	if missing := c.session.Missing(); len(missing) > 0 {
		lines = append(lines, fmt.Sprintf("%d course(s) left.", len(missing)))
	} else {
		lines = append(lines, "All grades entered. Type calc to calculate.")
	}
	return lines, nil
}

func (c *Console) gradeTable(context.Context, []string) ([]string, error) {
	return c.render.gradeTable(), nil
}

func (c *Console) calculate(ctx context.Context, _ []string) ([]string, error) {
	dept := "none"
	if d, ok := c.session.Department(); ok {
		dept = d.ID
	}

	res, err := c.session.Calculate()
	switch {
	case errors.Is(err, domerrors.ErrIncomplete):
		c.metrics.RecordCalculation(dept, "incomplete")
		return nil, err
	case errors.Is(err, domerrors.ErrNoResult):
		c.metrics.RecordCalculation(dept, "no_result")
		return nil, err
	case err != nil:
		return nil, err
	}

	c.metrics.RecordResult(dept, res.Value, res.Band.Tier.String())
	c.logger.WithField("department", dept).
		WithField("semester", c.session.Semester()).
		WithField("sgpa", res.Value).
		WithField("band", res.Band.Tier.String()).
		InfoContext(ctx, "SGPA calculated")

	return c.render.result(res), nil
}

func (c *Console) reset(ctx context.Context, _ []string) ([]string, error) {
	c.session.Reset()
	c.logger.DebugContext(ctx, "Grades cleared")
	return []string{"Grades cleared."}, nil
}

func (c *Console) quit(context.Context, []string) ([]string, error) {
	return []string{"Bye."}, ErrQuit
}
