package configure

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultOptionsPreserveTable(t *testing.T) {
	opts := DefaultOptions()
	require.Equal(t, 21, opts.Len())

	entries := opts.Entries()
	require.Equal(t, Option{Key: "ENABLE_SPIRV_CODEGEN:BOOL", Value: "ON"}, entries[0])
	require.Equal(t, Option{Key: "CLANG_CL:BOOL", Value: "OFF"}, entries[len(entries)-1])

	triple, ok := opts.Get("LLVM_DEFAULT_TARGET_TRIPLE:STRING")
	require.True(t, ok)
	require.Equal(t, "dxil-ms-dx", triple)

	targets, ok := opts.Get("LLVM_TARGETS_TO_BUILD:STRING")
	require.True(t, ok)
	require.Equal(t, "None", targets)

	_, ok = opts.Get(BuildTypeKey)
	require.False(t, ok)
}

func TestDefaultOptionsReturnsFreshCopy(t *testing.T) {
	first := DefaultOptions()
	first.Set("CLANG_CL:BOOL", "ON")

	value, _ := DefaultOptions().Get("CLANG_CL:BOOL")
	require.Equal(t, "OFF", value)
}

func TestOptionSetOverrideKeepsPosition(t *testing.T) {
	opts := NewOptionSet()
	opts.Set("A:BOOL", "ON")
	opts.Set("B:BOOL", "ON")
	opts.Set("A:BOOL", "OFF")

	require.Equal(t, []Option{{Key: "A:BOOL", Value: "OFF"}, {Key: "B:BOOL", Value: "ON"}}, opts.Entries())
}

func TestMergeOptionsProfileWins(t *testing.T) {
	opts, err := MergeOptions(ProfileRelease, []string{"CMAKE_BUILD_TYPE:STRING=RelWithDebInfo", "LLVM_ENABLE_ASSERTIONS:BOOL=ON"})
	require.NoError(t, err)

	buildType, ok := opts.Get(BuildTypeKey)
	require.True(t, ok)
	require.Equal(t, "Release", buildType)

	asserts, ok := opts.Get("LLVM_ENABLE_ASSERTIONS:BOOL")
	require.True(t, ok)
	require.Equal(t, "ON", asserts)
	require.Equal(t, 23, opts.Len())
}

func TestParseDefinition(t *testing.T) {
	opt, err := ParseDefinition("-DLLVM_TARGETS_TO_BUILD:STRING=X86;ARM")
	require.NoError(t, err)
	require.Equal(t, Option{Key: "LLVM_TARGETS_TO_BUILD:STRING", Value: "X86;ARM"}, opt)

	opt, err = ParseDefinition("CMAKE_INSTALL_PREFIX:PATH=")
	require.NoError(t, err)
	require.Equal(t, "", opt.Value)

	for _, raw := range []string{"NOVALUE:BOOL", "NOTYPE=ON", ":BOOL=ON", "NAME:=ON"} {
		_, err := ParseDefinition(raw)
		require.ErrorIs(t, err, ErrInvalidDefinition, raw)
	}
}

func TestParseProfile(t *testing.T) {
	p, err := ParseProfile("")
	require.NoError(t, err)
	require.Equal(t, ProfileDebug, p)

	p, err = ParseProfile("Release")
	require.NoError(t, err)
	require.Equal(t, ProfileRelease, p)

	_, err = ParseProfile("release")
	require.ErrorIs(t, err, ErrInvalidProfile)
}
