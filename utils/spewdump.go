package utils

import "github.com/davecgh/go-spew/spew"

var spewConfig *spew.ConfigState

func init() {
	spewConfig = spew.NewDefaultConfig()
	spewConfig.DisableCapacities = true
	spewConfig.DisablePointerAddresses = true
	spewConfig.SortKeys = true
}

func SDump(a ...interface{}) string {
	return spewConfig.Sdump(a...)
}

// SDumpOneLine is SDump without newlines, suited for error messages.
func SDumpOneLine(a ...interface{}) string {
	return spewConfig.Sprint(a...)
}
