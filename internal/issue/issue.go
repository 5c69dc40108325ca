// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	UnknownPlatformId Id = iota + 1
	NoImageId
	JobSpecNotFoundId
	JobSpecParseErrorId
	LaunchCommandInvalidId
)

type MarkdownMsg string

type Issue struct {
	id    Id          // ID used to look up the issue
	mdMsg MarkdownMsg // Markdown text that will be rendered
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) Render(stylePath string) (string, error) {
	return render(string(i.mdMsg), stylePath)
}

var (
	render = glamour.Render

	unknownPlatformIssue = &Issue{
		id: UnknownPlatformId,
		mdMsg: `
# Unknown container platform!

The platform named in your job spec (or configuration) is not recognized.

## Supported platforms (case-sensitive):
- **Docker**
- **Sarus**
- **Shifter**
- **Singularity**

## Things you can try:
- List the registered platforms:
~~~
$ rfmlaunch platforms
~~~

- Fix the name in your job spec:
~~~toml
platform = "Docker"
~~~

- Or change the fallback in your config file:
~~~toml
default_platform = "Singularity"
~~~`,
	}

	noImageIssue = &Issue{
		id: NoImageId,
		mdMsg: `
# No image specified!

A container platform cannot be launched without an image reference.

## Things you can try:
- Add an image to your job spec:
~~~toml
image = "ubuntu:22.04"
~~~

- For Singularity, point at an image file or a docker:// reference:
~~~toml
image = "docker://ubuntu:22.04"
~~~

- For Sarus/Shifter, locally loaded images use the 'load/' prefix:
~~~toml
image = "load/library/alpine:3.14"
pull_image = false
~~~`,
	}

	jobSpecNotFoundIssue = &Issue{
		id: JobSpecNotFoundId,
		mdMsg: `
# Job spec not found!

We could not read the job spec file you pointed us at.

## Things you can try:
- Check the path passed on the command line:
~~~
$ rfmlaunch render path/to/job.toml
~~~

- Create a minimal job spec:
~~~toml
platform = "Docker"
image = "ubuntu:22.04"
command = "echo hello"
~~~`,
	}

	jobSpecParseErrorIssue = &Issue{
		id: JobSpecParseErrorId,
		mdMsg: `
# Failed to parse job spec!

Your job spec contains TOML syntax errors or unknown fields.

## Common issues:
- Missing quotes around strings
- A 'mount' entry without both host and container paths
- Misspelled field names

## Example of a valid job spec:
~~~toml
platform = "Sarus"
image = "ethcscs/osu-mb:5.8"
command = "./osu_latency"
with_mpi = true

[[mount]]
host = "/scratch/data"
container = "/data"
~~~`,
	}

	launchCommandInvalidIssue = &Issue{
		id: LaunchCommandInvalidId,
		mdMsg: `
# Synthesized command is not valid shell!

The launch command assembled from your job spec does not parse as POSIX
shell, so it would break the job script it gets embedded into.

## Common causes:
- Unbalanced quotes inside 'command' or 'options'
- A raw option string that splits across words unexpectedly

## Things you can try:
- Inspect the offending command:
~~~
$ rfmlaunch render job.toml
~~~

- Quote the payload the way you would type it into a shell`,
	}

	issues = map[Id]*Issue{
		unknownPlatformIssue.Id():      unknownPlatformIssue,
		noImageIssue.Id():              noImageIssue,
		jobSpecNotFoundIssue.Id():      jobSpecNotFoundIssue,
		jobSpecParseErrorIssue.Id():    jobSpecParseErrorIssue,
		launchCommandInvalidIssue.Id(): launchCommandInvalidIssue,
	}
)

func Values() []*Issue {
	values := maps.Values(issues)
	slices.SortFunc(values, func(a, b *Issue) int {
		return int(a.Id() - b.Id())
	})
	return values
}

func Get(id Id) *Issue {
	return issues[id]
}
