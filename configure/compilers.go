package configure

// Compilers holds explicit compiler overrides. Both empty leaves compiler
// selection to CMake.
type Compilers struct {
	CC  string
	CXX string
}

// Set reports whether any override is present.
func (c Compilers) Set() bool { return c.CC != "" }

// ResolveCompilers pairs the C and C++ compilers. A lone C compiler implies
// its C++ sibling by appending "++" (clang -> clang++).
func ResolveCompilers(cc, cxx string) (Compilers, error) {
	switch {
	case cc == "" && cxx != "":
		return Compilers{}, ErrMissingPairedCompiler
	case cc == "":
		return Compilers{}, nil
	case cxx == "":
		return Compilers{CC: cc, CXX: cc + "++"}, nil
	}
	return Compilers{CC: cc, CXX: cxx}, nil
}
