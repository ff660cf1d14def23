package validate

import (
	"fmt"
	"regexp"
)

// dangerousPatterns flags constructs that have no place in an intelligent
// contract. Matches produce warnings only; the GenVM sandbox is the real
// enforcement boundary.
var dangerousPatterns = []struct {
	re     *regexp.Regexp
	reason string
}{
	{regexp.MustCompile(`\bos\.system\s*\(`), "shell execution via os.system"},
	{regexp.MustCompile(`\bsubprocess\.`), "subprocess usage"},
	{regexp.MustCompile(`\beval\s*\(`), "dynamic evaluation via eval"},
	{regexp.MustCompile(`\bexec\s*\(`), "dynamic execution via exec"},
	{regexp.MustCompile(`__import__\s*\(`), "dynamic import"},
	{regexp.MustCompile(`\bopen\s*\(`), "filesystem access via open"},
	{regexp.MustCompile(`\bsocket\.`), "raw socket usage"},
	{regexp.MustCompile(`\bprivate_key\b|\bsecret_key\b`), "embedded key material"},
}

// ScanContract returns one warning per dangerous pattern found in the code.
// An empty slice means nothing was flagged.
func ScanContract(code string) []string {
	var warnings []string
	for _, p := range dangerousPatterns {
		if p.re.MatchString(code) {
			warnings = append(warnings, fmt.Sprintf("contract contains %s", p.reason))
		}
	}
	return warnings
}
