package configure

import "fmt"

// Profile selects the CMAKE_BUILD_TYPE of the configured tree.
type Profile string

const (
	ProfileDebug   Profile = "Debug"
	ProfileRelease Profile = "Release"
)

// ParseProfile accepts a profile name exactly as CMake spells it. An empty
// name selects Debug.
func ParseProfile(name string) (Profile, error) {
	switch Profile(name) {
	case "":
		return ProfileDebug, nil
	case ProfileDebug, ProfileRelease:
		return Profile(name), nil
	}
	return "", fmt.Errorf("%w %q (choose from Debug, Release)", ErrInvalidProfile, name)
}

func (p Profile) String() string { return string(p) }
