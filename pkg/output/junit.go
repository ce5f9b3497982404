package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/settingsguard/pkg/errors"
	"github.com/arthur-debert/settingsguard/pkg/rules"
	"github.com/arthur-debert/settingsguard/pkg/types"
	"github.com/beevik/etree"
)

// JUnitRenderer writes JUnit XML so CI systems can show settings problems
// as failed tests. Conflicts always fail; warnings fail at or above
// minSeverity and pass otherwise.
type JUnitRenderer struct {
	w           io.Writer
	minSeverity types.Severity
}

type junitCase struct {
	name      string
	classname string
	failure   string // empty for passing cases
	kind      string
	output    string
}

func (r *JUnitRenderer) Result(res types.Result) error {
	var conflictCases []junitCase
	for _, c := range res.Conflicts {
		conflictCases = append(conflictCases, junitCase{
			name:      fmt.Sprintf("%s: %s", c.Category, strings.Join(c.ConflictingFields, " / ")),
			classname: "settingsguard.conflicts",
			failure:   c.Description,
			kind:      string(c.Severity),
		})
	}
	if len(conflictCases) == 0 {
		conflictCases = append(conflictCases, junitCase{
			name:      "no conflicts",
			classname: "settingsguard.conflicts",
		})
	}

	var warningCases []junitCase
	for _, w := range res.Warnings {
		tc := junitCase{
			name:      strings.Join(w.Combination, " + "),
			classname: "settingsguard.warnings",
			kind:      string(w.Severity),
		}
		if w.Severity.AtLeast(r.minSeverity) {
			tc.failure = w.Message
		} else {
			tc.output = fmt.Sprintf("[%s] %s", w.Severity, w.Message)
		}
		warningCases = append(warningCases, tc)
	}
	if len(warningCases) == 0 {
		warningCases = append(warningCases, junitCase{
			name:      "no warnings",
			classname: "settingsguard.warnings",
		})
	}

	doc := newJUnitDocument()
	root := doc.SelectElement("testsuites")
	addSuite(root, "conflicts", conflictCases)
	addSuite(root, "warnings", warningCases)
	return r.write(doc)
}

func (r *JUnitRenderer) Lint(issues []rules.LintIssue) error {
	var cases []junitCase
	for _, i := range issues {
		name := fmt.Sprintf("%s[%d] %s", i.Section, i.Index, i.Rule)
		if i.Predicate != "" {
			name += " " + i.Predicate
		}
		cases = append(cases, junitCase{
			name:      name,
			classname: "settingsguard.lint",
			failure:   i.Problem,
			kind:      "lint",
		})
	}
	if len(cases) == 0 {
		cases = append(cases, junitCase{name: "no lint issues", classname: "settingsguard.lint"})
	}

	doc := newJUnitDocument()
	addSuite(doc.SelectElement("testsuites"), "lint", cases)
	return r.write(doc)
}

func (r *JUnitRenderer) Check(types.FieldCheck) error {
	return errors.New(errors.ErrUnsupportedFormat, "junit output is available for validate and rules lint only")
}

func (r *JUnitRenderer) Rules(rules.RuleSet, []string) error {
	return errors.New(errors.ErrUnsupportedFormat, "junit output is available for validate and rules lint only")
}

func newJUnitDocument() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("testsuites")
	root.CreateAttr("name", "settingsguard")
	return doc
}

func addSuite(root *etree.Element, name string, cases []junitCase) {
	failures := 0
	for _, tc := range cases {
		if tc.failure != "" {
			failures++
		}
	}

	suite := root.CreateElement("testsuite")
	suite.CreateAttr("name", name)
	suite.CreateAttr("tests", fmt.Sprint(len(cases)))
	suite.CreateAttr("failures", fmt.Sprint(failures))
	suite.CreateAttr("errors", "0")

	for _, tc := range cases {
		el := suite.CreateElement("testcase")
		el.CreateAttr("name", tc.name)
		el.CreateAttr("classname", tc.classname)
		if tc.failure != "" {
			f := el.CreateElement("failure")
			f.CreateAttr("message", tc.failure)
			f.CreateAttr("type", tc.kind)
			f.SetText(tc.failure)
		}
		if tc.output != "" {
			el.CreateElement("system-out").SetText(tc.output)
		}
	}

	// totals on the root are the sum over suites
	addIntAttr(root, "tests", len(cases))
	addIntAttr(root, "failures", failures)
}

func addIntAttr(el *etree.Element, key string, n int) {
	total := n
	if attr := el.SelectAttr(key); attr != nil {
		var prev int
		if _, err := fmt.Sscan(attr.Value, &prev); err == nil {
			total += prev
		}
	}
	el.CreateAttr(key, fmt.Sprint(total))
}

func (r *JUnitRenderer) write(doc *etree.Document) error {
	doc.Indent(2)
	_, err := doc.WriteTo(r.w)
	return err
}
