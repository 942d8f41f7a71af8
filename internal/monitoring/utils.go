package monitoring

import (
	"regexp"
	"strings"
)

// reFuncName captures package, receiver, and method names from a runtime
// function name.
var reFuncName = regexp.MustCompile(`(?:[^/]+/)*([^./]+)\.(?:\(?\*?([^.)]+)\)?\.)?(.+)$`)

func getSegmentName(fullFuncName string) string {
	matches := reFuncName.FindStringSubmatch(fullFuncName)
	if len(matches) < 4 {
		return fullFuncName
	}

	var result []string
	for _, part := range matches[1:4] {
		if part != "" {
			result = append(result, part)
		}
	}

	return strings.Join(result, ".")
}
