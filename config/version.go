package config

import "fmt"

// FBXVersion is the value of /FBXHeaderExtension/FBXVersion, e.g. 7400.
type FBXVersion int32

const (
	FBXVersionUnknown FBXVersion = 0
	FBX7100           FBXVersion = 7100
	FBX7400           FBXVersion = 7400
	FBX7500           FBXVersion = 7500
)

// IsV7 reports whether the document layout is the 7.x one this module reads.
func (v FBXVersion) IsV7() bool {
	return v >= 7000 && v < 8000
}

func (v FBXVersion) String() string {
	if v == FBXVersionUnknown {
		return "unknown"
	}
	return fmt.Sprintf("%d.%d", v/1000, (v%1000)/100)
}
