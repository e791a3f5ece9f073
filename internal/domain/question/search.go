package question

// SortTarget names the field a listing is ordered by. Listings are always
// ordered descending.
type SortTarget string

const (
	SortByID        SortTarget = "id"
	SortByTitle     SortTarget = "title"
	SortByCreatedAt SortTarget = "createdAt"
	SortByUpdatedAt SortTarget = "updatedAt"
	SortByViews     SortTarget = "views"
	SortByVotes     SortTarget = "votes"
	SortByAnswers   SortTarget = "answers"
)

var sortTargets = map[SortTarget]struct{}{
	SortByID:        {},
	SortByTitle:     {},
	SortByCreatedAt: {},
	SortByUpdatedAt: {},
	SortByViews:     {},
	SortByVotes:     {},
	SortByAnswers:   {},
}

// ParseSortTarget returns the target for s, or false if s is not sortable
func ParseSortTarget(s string) (SortTarget, bool) {
	t := SortTarget(s)
	_, ok := sortTargets[t]
	return t, ok
}

// SearchCategory names the field a search string is matched against
type SearchCategory string

const (
	SearchTitle    SearchCategory = "title"
	SearchContent  SearchCategory = "content"
	SearchTag      SearchCategory = "tag"
	SearchNickname SearchCategory = "nickname"
	SearchEmail    SearchCategory = "email"
)

var searchCategories = map[SearchCategory]struct{}{
	SearchTitle:    {},
	SearchContent:  {},
	SearchTag:      {},
	SearchNickname: {},
	SearchEmail:    {},
}

// ParseSearchCategory returns the category for s, or false if s is not searchable
func ParseSearchCategory(s string) (SearchCategory, bool) {
	c := SearchCategory(s)
	_, ok := searchCategories[c]
	return c, ok
}

// FilterCriterion narrows a listing to questions whose Category field
// contains Search, case-insensitively.
type FilterCriterion struct {
	Category SearchCategory
	Search   string
}

// FieldValue returns the value of the field named by c
func (q *Question) FieldValue(c SearchCategory) string {
	switch c {
	case SearchTitle:
		return q.Title
	case SearchContent:
		return q.Content
	case SearchTag:
		return q.Tag
	case SearchNickname:
		return q.AuthorNickname
	case SearchEmail:
		return q.AuthorEmail
	}
	return ""
}
