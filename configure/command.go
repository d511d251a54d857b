package configure

import (
	"strings"
	"unicode"
)

// CommandLine is an ordered configure invocation.
type CommandLine struct {
	tool string
	args []string
}

// BuildCommandLine lays out the invocation: source and build flags, the
// optional generator, compiler overrides, then one -D per cache entry.
func BuildCommandLine(req InvocationRequest) CommandLine {
	tool := req.Tool
	if tool == "" {
		tool = DefaultTool
	}
	args := []string{
		"-H" + req.SourceDir,
		"-B" + req.BuildDir,
	}
	if req.Generator != "" {
		args = append(args, "-G"+req.Generator)
	}
	if req.Compilers.Set() {
		args = append(args,
			"-DCMAKE_C_COMPILER="+req.Compilers.CC,
			"-DCMAKE_CXX_COMPILER="+req.Compilers.CXX,
		)
	}
	for _, opt := range req.Options.Entries() {
		args = append(args, opt.Definition())
	}
	return CommandLine{tool: tool, args: args}
}

// Tool returns the program name.
func (c CommandLine) Tool() string { return c.tool }

// Args returns the arguments after the program name, unquoted, as handed
// to the operating system.
func (c CommandLine) Args() []string {
	return append([]string(nil), c.args...)
}

// Argv returns the program name followed by its arguments.
func (c CommandLine) Argv() []string {
	return append([]string{c.tool}, c.args...)
}

// String renders the command for echoing. Values containing whitespace are
// double-quoted so the line can be pasted into a shell.
func (c CommandLine) String() string {
	parts := make([]string, 0, len(c.args)+1)
	parts = append(parts, quoteToken(c.tool))
	for _, arg := range c.args {
		parts = append(parts, displayArg(arg))
	}
	return strings.Join(parts, " ")
}

// displayArg quotes only the value half of -H/-B/-G/-D arguments, giving
// -G"Unix Makefiles" rather than "-GUnix Makefiles".
func displayArg(arg string) string {
	if !hasSpace(arg) {
		return arg
	}
	if strings.HasPrefix(arg, "-D") {
		if key, value, ok := strings.Cut(arg, "="); ok && !hasSpace(key) {
			return key + "=" + quote(value)
		}
	}
	for _, flag := range []string{"-H", "-B", "-G"} {
		if strings.HasPrefix(arg, flag) {
			return flag + quote(strings.TrimPrefix(arg, flag))
		}
	}
	return quote(arg)
}

func quoteToken(s string) string {
	if !hasSpace(s) {
		return s
	}
	return quote(s)
}

var quoteEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func quote(s string) string {
	return `"` + quoteEscaper.Replace(s) + `"`
}

func hasSpace(s string) bool {
	return strings.IndexFunc(s, unicode.IsSpace) >= 0
}
