// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

type Id int

const (
	SpecNotFoundId Id = iota + 1
	SpecParseErrorId
	StepFailedId
	PackageManagerNotFoundId
	ShellNotFoundId
	PermissionDeniedId
	ConfigLoadFailedId
	GumNotFoundId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink
	extLinks []HttpLink // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

// Markdown returns the page source including the "See also" links.
func (i *Issue) Markdown() string {
	var b strings.Builder
	b.WriteString(string(i.mdMsg))
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		b.WriteString("\n\n## See also\n")
		for _, link := range append(i.DocLinks(), i.extLinks...) {
			b.WriteString("- <" + string(link) + ">\n")
		}
	}
	return b.String()
}

// Render renders the page with the named glamour style ("dark", "light",
// "notty", ...) or a style file path.
func (i *Issue) Render(stylePath string) (string, error) {
	return render(i.Markdown(), stylePath)
}

var (
	render = glamour.Render

	specNotFoundIssue = &Issue{
		id: SpecNotFoundId,
		mdMsg: `
# Spec file not found!

envspec could not read the spec file you passed.

## Things you can try:
- Check the path and the file name
- Create an example spec in the current directory:
~~~
$ envspec init
~~~

## Example spec:
~~~cue
name: "my laptop"
steps: [
	{kind: "package", package: "git", binary: "git"},
	{kind: "env", var: "EDITOR", value: "vim"},
]
~~~`,
	}

	specParseErrorIssue = &Issue{
		id: SpecParseErrorId,
		mdMsg: `
# Invalid spec file!

The spec file could not be parsed or does not match the schema.

## Common causes:
- Unknown step kind (valid: package, file, env, shell, dotenv)
- Missing field required by the step kind (e.g. ` + "`command`" + ` for shell steps)
- A field that belongs to another step kind (e.g. ` + "`command`" + ` on an env step)
- Unknown field name (spec definitions are closed)
- Two steps with the same ` + "`name`" + `

## Things you can try:
- Read the error path above, e.g. ` + "`steps[2].command`" + `
- Validate without applying:
~~~
$ envspec validate envspec.cue
~~~`,
	}

	stepFailedIssue = &Issue{
		id: StepFailedId,
		mdMsg: `
# A step failed!

The run stopped at a required step. Steps before it were applied.

## Things you can try:
- Fix the cause shown above and run envspec again; finished steps are safe to re-run
- Mark the step ` + "`optional: true`" + ` if the environment works without it
- Keep going past failures:
~~~
$ envspec --continue-on-error envspec.cue
~~~
- Preview what would happen:
~~~
$ envspec plan envspec.cue
~~~`,
	}

	packageManagerNotFoundIssue = &Issue{
		id: PackageManagerNotFoundId,
		mdMsg: `
# No package manager found!

Package steps need one of: brew, apt, dnf, pacman, apk, winget.

## Things you can try:
- Install a supported package manager
- Pick one explicitly in the step: ` + "`manager: \"brew\"`" + `
- Or set a default in your config:
~~~cue
runner: package_manager: "brew"
~~~`,
	}

	shellNotFoundIssue = &Issue{
		id: ShellNotFoundId,
		mdMsg: `
# Shell not found!

No host shell was found to run the command.

## Things you can try:
- Make sure bash or sh is installed and in your PATH
- Set the SHELL environment variable
- Use the built-in shell for the step: ` + "`shell: \"virtual\"`" + `
- Or make it the default:
~~~cue
runner: shell: "virtual"
~~~`,
	}

	permissionDeniedIssue = &Issue{
		id: PermissionDeniedId,
		mdMsg: `
# Permission denied!

A step tried to write somewhere you don't have access to.

## Things you can try:
- Check the permissions of the target file and its directory
- Write to a path under your home directory (` + "`~/...`" + `)
- Package managers that need root are run through sudo; make sure sudo works`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

## Things you can try:
- Check the CUE syntax of your config file
- Show the effective configuration:
~~~
$ envspec config show
~~~
- Remove the file to go back to the defaults`,
	}

	gumNotFoundIssue = &Issue{
		id: GumNotFoundId,
		mdMsg: `
# gum not found!

The gum presenter needs the ` + "`gum`" + ` binary. envspec fell back to plain output.

## Things you can try:
- Install gum
- Use another presenter: ` + "`--presenter plain`" + ` or ` + "`--presenter tui`",
		extLinks: []HttpLink{"https://github.com/charmbracelet/gum"},
	}

	issues = map[Id]*Issue{
		specNotFoundIssue.Id():           specNotFoundIssue,
		specParseErrorIssue.Id():         specParseErrorIssue,
		stepFailedIssue.Id():             stepFailedIssue,
		packageManagerNotFoundIssue.Id(): packageManagerNotFoundIssue,
		shellNotFoundIssue.Id():          shellNotFoundIssue,
		permissionDeniedIssue.Id():       permissionDeniedIssue,
		configLoadFailedIssue.Id():       configLoadFailedIssue,
		gumNotFoundIssue.Id():            gumNotFoundIssue,
	}
)

// Values returns every issue ordered by Id.
func Values() []*Issue {
	out := make([]*Issue, 0, len(issues))
	for _, i := range issues {
		out = append(out, i)
	}
	slices.SortFunc(out, func(a, b *Issue) int { return int(a.id) - int(b.id) })
	return out
}

func Get(id Id) *Issue {
	return issues[id]
}
