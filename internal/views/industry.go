package views

import "sort"

// TabAll is the pseudo-tab holding the total item count.
const TabAll = "all"

// Tab is one industry filter tab with its item count.
type Tab struct {
	Industry string `json:"industry"`
	Count    int    `json:"count"`
}

// IndustryTabs counts items per distinct industry value, sorted descending
// by count with ties stable by first-seen order, prefixed by an "all" tab
// holding the total. The non-"all" tab counts always sum to the total.
func IndustryTabs(industries []string) []Tab {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	var order []string

	for i, industry := range industries {
		if _, seen := counts[industry]; !seen {
			firstSeen[industry] = i
			order = append(order, industry)
		}
		counts[industry]++
	}

	tabs := make([]Tab, 0, len(order)+1)
	tabs = append(tabs, Tab{Industry: TabAll, Count: len(industries)})

	byCount := make([]Tab, 0, len(order))
	for _, industry := range order {
		byCount = append(byCount, Tab{Industry: industry, Count: counts[industry]})
	}

	sort.SliceStable(byCount, func(i, j int) bool {
		return byCount[i].Count > byCount[j].Count
	})

	return append(tabs, byCount...)
}
