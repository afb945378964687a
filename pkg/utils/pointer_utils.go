package utils

// SafeDeref safely dereferences a string pointer and returns empty string if nil
func SafeDeref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// SafeInt32 safely dereferences an int32 pointer
func SafeInt32(n *int32) int32 {
	if n == nil {
		return 0
	}
	return *n
}

// SafeInt64 safely dereferences an int64 pointer
func SafeInt64(n *int64) int64 {
	if n == nil {
		return 0
	}
	return *n
}

// SafeBool safely dereferences a bool pointer
func SafeBool(b *bool) bool {
	if b == nil {
		return false
	}
	return *b
}
