package location

import strutil "safecheck/pkg/platform/strings"

// NormalizeAddress collapses repeated comma separators and strips leading or
// trailing ones, so "Main St , , Springfield, , USA" reads
// "Main St, Springfield, USA". It returns "" when nothing is left.
func NormalizeAddress(raw string) string {
	return strutil.CollapseSeparated(raw, ",")
}
