package configure

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// DefaultTool is the configure tool looked up on PATH.
const DefaultTool = "cmake"

// RequestParams is the raw user input for one configure run.
type RequestParams struct {
	Tool        string
	SourceDir   string
	BuildDir    string
	Generator   string
	CC          string
	CXX         string
	Profile     string
	Definitions []string
	// Env holds extra KEY=VALUE entries for the tool's environment.
	Env []string
}

// InvocationRequest is a fully resolved configure run. Build it with
// NewInvocationRequest and treat it as read-only afterwards.
type InvocationRequest struct {
	Tool      string
	SourceDir string
	BuildDir  string
	Generator string
	Compilers Compilers
	Profile   Profile
	Options   *OptionSet
	Env       []string
}

// NewInvocationRequest resolves compilers and merges the option set:
// defaults, then extra definitions, then the profile's build type.
func NewInvocationRequest(p RequestParams) (InvocationRequest, error) {
	if p.SourceDir == "" || p.BuildDir == "" {
		return InvocationRequest{}, errors.New("source and build directories are required")
	}
	compilers, err := ResolveCompilers(p.CC, p.CXX)
	if err != nil {
		return InvocationRequest{}, err
	}
	profile, err := ParseProfile(p.Profile)
	if err != nil {
		return InvocationRequest{}, err
	}
	options, err := MergeOptions(profile, p.Definitions)
	if err != nil {
		return InvocationRequest{}, err
	}
	for _, kv := range p.Env {
		if name, _, ok := strings.Cut(kv, "="); !ok || name == "" {
			return InvocationRequest{}, fmt.Errorf("environment entry %q must be KEY=VALUE", kv)
		}
	}
	// The tool runs inside the build directory, so both paths must not
	// depend on the caller's working directory.
	src, err := filepath.Abs(p.SourceDir)
	if err != nil {
		return InvocationRequest{}, err
	}
	build, err := filepath.Abs(p.BuildDir)
	if err != nil {
		return InvocationRequest{}, err
	}
	tool := p.Tool
	if tool == "" {
		tool = DefaultTool
	}
	return InvocationRequest{
		Tool:      tool,
		SourceDir: src,
		BuildDir:  build,
		Generator: p.Generator,
		Compilers: compilers,
		Profile:   profile,
		Options:   options,
		Env:       append([]string(nil), p.Env...),
	}, nil
}

// MergeOptions overlays definitions and the profile's build type on the
// default preset. The profile always decides CMAKE_BUILD_TYPE.
func MergeOptions(profile Profile, definitions []string) (*OptionSet, error) {
	options := DefaultOptions()
	if err := options.Apply(definitions); err != nil {
		return nil, err
	}
	options.Set(BuildTypeKey, profile.String())
	return options, nil
}
