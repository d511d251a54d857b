package configure

import (
	"fmt"
	"strings"
)

// BuildTypeKey is the cache entry overridden by the selected profile.
const BuildTypeKey = "CMAKE_BUILD_TYPE:STRING"

// Option is a single CMake cache entry keyed as NAME:TYPE.
type Option struct {
	Key   string
	Value string
}

// Definition renders the option as a -D command-line argument.
func (o Option) Definition() string {
	return "-D" + o.Key + "=" + o.Value
}

func (o Option) String() string {
	return o.Key + "=" + o.Value
}

// defaultOptions is the cache preset for a SPIR-V enabled compiler build.
// Downstream scripts rely on these literal names and values.
var defaultOptions = []Option{
	{"ENABLE_SPIRV_CODEGEN:BOOL", "ON"},
	{"SPIRV_BUILD_TESTS:BOOL", "ON"},
	{"CMAKE_EXPORT_COMPILE_COMMANDS:BOOL", "ON"},
	{"CLANG_ENABLE_ARCMT:BOOL", "OFF"},
	{"CLANG_ENABLE_STATIC_ANALYZER:BOOL", "OFF"},
	{"CLANG_INCLUDE_TESTS:BOOL", "OFF"},
	{"LLVM_INCLUDE_TESTS:BOOL", "OFF"},
	{"HLSL_INCLUDE_TESTS:BOOL", "ON"},
	{"LLVM_TARGETS_TO_BUILD:STRING", "None"},
	{"LLVM_INCLUDE_DOCS:BOOL", "OFF"},
	{"LLVM_INCLUDE_EXAMPLES:BOOL", "OFF"},
	{"LIBCLANG_BUILD_STATIC:BOOL", "ON"},
	{"LLVM_OPTIMIZED_TABLEGEN:BOOL", "OFF"},
	{"LLVM_REQUIRES_EH:BOOL", "ON"},
	{"LLVM_APPEND_VC_REV:BOOL", "ON"},
	{"LLVM_ENABLE_RTTI:BOOL", "ON"},
	{"LLVM_ENABLE_EH:BOOL", "ON"},
	{"LLVM_DEFAULT_TARGET_TRIPLE:STRING", "dxil-ms-dx"},
	{"CLANG_BUILD_EXAMPLES:BOOL", "OFF"},
	{"LLVM_REQUIRES_RTTI:BOOL", "ON"},
	{"CLANG_CL:BOOL", "OFF"},
}

// OptionSet is an insertion-ordered set of cache entries with unique keys.
type OptionSet struct {
	entries []Option
	index   map[string]int
}

// NewOptionSet returns an empty set.
func NewOptionSet() *OptionSet {
	return &OptionSet{index: map[string]int{}}
}

// DefaultOptions returns a fresh copy of the default cache preset.
func DefaultOptions() *OptionSet {
	set := NewOptionSet()
	for _, opt := range defaultOptions {
		set.Set(opt.Key, opt.Value)
	}
	return set
}

// Set adds key or replaces its value in place, keeping its original position.
func (s *OptionSet) Set(key, value string) {
	if i, ok := s.index[key]; ok {
		s.entries[i].Value = value
		return
	}
	s.index[key] = len(s.entries)
	s.entries = append(s.entries, Option{Key: key, Value: value})
}

// Get returns the value stored under key.
func (s *OptionSet) Get(key string) (string, bool) {
	i, ok := s.index[key]
	if !ok {
		return "", false
	}
	return s.entries[i].Value, true
}

// Len reports the number of entries.
func (s *OptionSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}

// Entries returns a copy of the entries in insertion order.
func (s *OptionSet) Entries() []Option {
	if s == nil {
		return nil
	}
	return append([]Option(nil), s.entries...)
}

// Apply overlays definitions shaped NAME:TYPE=VALUE onto the set.
func (s *OptionSet) Apply(definitions []string) error {
	for _, raw := range definitions {
		opt, err := ParseDefinition(raw)
		if err != nil {
			return err
		}
		s.Set(opt.Key, opt.Value)
	}
	return nil
}

// ParseDefinition parses NAME:TYPE=VALUE, tolerating a leading -D. The value
// may be empty; the name and type may not.
func ParseDefinition(raw string) (Option, error) {
	def := strings.TrimPrefix(strings.TrimSpace(raw), "-D")
	key, value, ok := strings.Cut(def, "=")
	if !ok {
		return Option{}, fmt.Errorf("%w %q: missing '='", ErrInvalidDefinition, raw)
	}
	name, typ, ok := strings.Cut(key, ":")
	if !ok || strings.TrimSpace(name) == "" || strings.TrimSpace(typ) == "" {
		return Option{}, fmt.Errorf("%w %q: key must be NAME:TYPE", ErrInvalidDefinition, raw)
	}
	return Option{Key: key, Value: value}, nil
}
