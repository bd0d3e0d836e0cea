package helper

// RemoveDuplicate removes duplicates entries in a list, keeping the first occurrence of each
func RemoveDuplicate(s []string) []string {
	keys := make(map[string]struct{}, len(s))
	result := make([]string, 0, len(s))
	for _, i := range s {
		if _, present := keys[i]; present {
			continue
		}
		keys[i] = struct{}{}
		result = append(result, i)
	}
	return result
}
