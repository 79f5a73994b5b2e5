// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	PythonNotFoundId Id = iota + 1
	VenvCreationFailedId
	ActivationScriptMissingId
	ActivationFailedId
	RequirementsInstallFailedId
	DictionaryNotFoundId
	CatalogFetchFailedId
	SidebarNotFoundId
	ConfigLoadFailedId
	ReportWriteFailedId
)

type MarkdownMsg string

type HttpLink string

type Renderer interface {
	Render(in string, stylePath string) (string, error)
}

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // must never be empty, because we need to have docs about all issue types
	extLinks []HttpLink  // external links that might be useful for the user
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

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n"
		extraMd += "## See also: "
		for _, link := range i.docLinks {
			extraMd += "- [" + string(link) + "]"
		}
		for _, link := range i.extLinks {
			extraMd += "- [" + string(link) + "]"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	pythonNotFoundIssue = &Issue{
		id: PythonNotFoundId,
		mdMsg: `
# Python interpreter not found!

We could not find python3 (or python) on your PATH, and without it no
virtual environment can be created.

## Things you can try:
- Install Python 3:
  - Linux: ` + "`sudo apt install python3 python3-venv`" + ` or ` + "`sudo dnf install python3`" + `
  - macOS: ` + "`brew install python`" + `
  - Windows: Download from https://www.python.org/downloads/

- Check that the interpreter is on your PATH:
~~~
$ python3 --version
~~~

- If you installed Python in a non-standard location, point to it in your
  configuration:
~~~toml
[setup]
python = "/opt/python/bin/python3"
~~~`,
		extLinks: []HttpLink{"https://www.python.org/downloads/"},
	}

	venvCreationFailedIssue = &Issue{
		id: VenvCreationFailedId,
		mdMsg: `
# Virtual environment creation failed!

Creating the virtual environment with the venv module did not succeed.
This is fatal: nothing can be installed into an environment that does
not exist.

## Common causes:
- The python3-venv package is missing (Debian/Ubuntu ship it separately)
- No write permission in the project directory
- Disk full

## Things you can try:
- Install the venv support package:
~~~
$ sudo apt install python3-venv
~~~

- Run the creation step by hand to see the full error:
~~~
$ python3 -m venv .venv
~~~

- Check permissions and free space in the target directory`,
	}

	activationScriptMissingIssue = &Issue{
		id: ActivationScriptMissingId,
		mdMsg: `
# Activation script missing!

The virtual environment directory exists, but its activation script does
not. The environment is unusable, so we abort rather than install
packages into the wrong Python.

## Common causes:
- A previous creation run was interrupted halfway
- The directory was created by something other than the venv module
- The environment was partially deleted

## Things you can try:
- Remove the broken environment and set up again:
~~~
$ rm -rf .venv
$ catwalk setup
~~~

- If the directory holds your own files, move them elsewhere first`,
	}

	activationFailedIssue = &Issue{
		id: ActivationFailedId,
		mdMsg: `
# Environment activation failed!

The activation script exists but could not be evaluated, so the
environment variables it exports were never applied.

## Things you can try:
- Source the script manually to see what breaks:
~~~
$ . .venv/bin/activate
~~~

- Recreate the environment from scratch:
~~~
$ rm -rf .venv
$ catwalk setup
~~~`,
	}

	requirementsInstallFailedIssue = &Issue{
		id: RequirementsInstallFailedId,
		mdMsg: `
# Dependency installation failed!

pip could not install everything listed in requirements.txt. The
environment itself is ready, so this is a warning: you can keep
working, but some packages are missing.

## Common causes:
- A package name or version pin that does not exist
- No network access to the package index
- A package needs build tools that are not installed

## Things you can try:
- Re-run the installation once the cause is fixed:
~~~
$ catwalk setup
~~~

- Install by hand to see the full pip output:
~~~
$ .venv/bin/pip install -r requirements.txt
~~~

- Check requirements.txt for typos or stale version pins`,
	}

	dictionaryNotFoundIssue = &Issue{
		id: DictionaryNotFoundId,
		mdMsg: `
# Course dictionary not found!

This operation needs the course dictionary, but no serialized dictionary
exists for this catalog yet.

## Things you can try:
- Build the dictionary first:
~~~
$ catwalk dict https://catalog.sjf.edu/2025-2026/
~~~

- Check you are running from the directory where the dictionary was
  saved (it is written next to where you ran the dict command)
- Check the catalog URL matches the one the dictionary was built from
  (the file name is derived from the URL path)`,
	}

	catalogFetchFailedIssue = &Issue{
		id: CatalogFetchFailedId,
		mdMsg: `
# Catalog page fetch failed!

A catalog page could not be downloaded. Pages that fail to fetch are
skipped, so the output may be incomplete.

## Common causes:
- No network connectivity
- The catalog site is down or rate-limiting
- The URL points at a page that no longer exists

## Things you can try:
- Open the URL in a browser to confirm it loads
- Increase the request timeout in your config:
~~~toml
[http]
timeout = "60s"
~~~

- Re-run later; transient server errors usually clear up`,
	}

	sidebarNotFoundIssue = &Issue{
		id: SidebarNotFoundId,
		mdMsg: `
# No sidebar found on catalog page!

School discovery works off the sidebar navigation, and the page you
pointed at does not have one.

## Things you can try:
- Point at the catalog edition root, not a leaf page:
~~~
$ catwalk dict https://catalog.sjf.edu/2025-2026/
~~~

- Check the page in a browser; if the catalog layout changed, the
  sidebar may have moved or been renamed`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Could not load the catwalk configuration file.

## Configuration file locations:
- Linux: ~/.config/catwalk/config.toml
- macOS: ~/Library/Application Support/catwalk/config.toml
- Windows: %APPDATA%\catwalk\config.toml

## Things you can try:
- Create a default configuration:
~~~
$ catwalk config init
~~~

- Check the configuration syntax
- Remove the config file to use defaults:
~~~
$ rm ~/.config/catwalk/config.toml
~~~

## Example configuration:
~~~toml
[http]
timeout = "20s"
delay = "500ms"

[setup]
venv_dir = ".venv"
requirements = "requirements.txt"

[ui]
color_scheme = "auto"
verbose = false
~~~`,
	}

	reportWriteFailedIssue = &Issue{
		id: ReportWriteFailedId,
		mdMsg: `
# Report generation failed!

The output file (JSON, PDF, or DOT graph) could not be written.

## Common causes:
- No write permission in the output directory
- Disk full
- The output path points into a directory that does not exist

## Things you can try:
- Write somewhere you own:
~~~
$ catwalk export <url> -o ~/reports/
~~~

- Check free space and permissions on the output directory`,
	}

	issues = map[Id]*Issue{
		pythonNotFoundIssue.Id():            pythonNotFoundIssue,
		venvCreationFailedIssue.Id():        venvCreationFailedIssue,
		activationScriptMissingIssue.Id():   activationScriptMissingIssue,
		activationFailedIssue.Id():          activationFailedIssue,
		requirementsInstallFailedIssue.Id(): requirementsInstallFailedIssue,
		dictionaryNotFoundIssue.Id():        dictionaryNotFoundIssue,
		catalogFetchFailedIssue.Id():        catalogFetchFailedIssue,
		sidebarNotFoundIssue.Id():           sidebarNotFoundIssue,
		configLoadFailedIssue.Id():          configLoadFailedIssue,
		reportWriteFailedIssue.Id():         reportWriteFailedIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}
