package util

import (
	"sort"
	"unicode/utf8"
)

func Min(a, b int) int {
	if a > b {
		return b
	}
	return a
}

// Prefix returns the first n runes of s
func Prefix(s string, n int) string {
	if n <= 0 {
		return ""
	}
	for i := range s {
		if n == 0 {
			return s[:i]
		}
		n--
	}
	return s
}

// Suffix returns the last n runes of s
func Suffix(s string, n int) string {
	count := utf8.RuneCountInString(s)
	if n >= count {
		return s
	}
	if n <= 0 {
		return ""
	}
	skip := count - n
	for i := range s {
		if skip == 0 {
			return s[i:]
		}
		skip--
	}
	return ""
}

type TopNStrIntDatum struct {
	S string
	N int
}

type TopNStrIntData []TopNStrIntDatum

func (arr TopNStrIntData) Len() int {
	return len(arr)
}

func (arr TopNStrIntData) Swap(a, b int) {
	arr[a], arr[b] = arr[b], arr[a]
}

// descending count, ascending key among equal counts
func (arr TopNStrIntData) Less(a, b int) bool {
	if arr[a].N == arr[b].N {
		return arr[a].S < arr[b].S
	}
	return arr[a].N > arr[b].N
}

func GetTopNStrInt(m map[string]int, n int) []TopNStrIntDatum {
	data := make(TopNStrIntData, 0, len(m))
	for k, v := range m {
		data = append(data, TopNStrIntDatum{k, v})
	}
	sort.Sort(data)
	return data[:Min(len(data), n)]
}
