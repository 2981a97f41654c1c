package utils

// IsValidBranchCode accepts the short shop codes used to partition orders
// and cash: an uppercase letter followed by one or two digits ("T1", "T4",
// "B12").
func IsValidBranchCode(code string) bool {
	if len(code) < 2 || len(code) > 3 {
		return false
	}
	if code[0] < 'A' || code[0] > 'Z' {
		return false
	}
	for i := 1; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return false
		}
	}
	return true
}
