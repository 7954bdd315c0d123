package github

// Pages drives fetch(page) for page=1,2,... concatenating results
// until an empty or short page signals the end of the listing
func Pages[T any](fetch func(page int) ([]T, error)) ([]T, error) {
	var all []T
	for page := 1; ; page++ {
		items, err := fetch(page)
		if err != nil {
			return nil, err
		}
		all = append(all, items...)
		if len(items) < PageSize {
			return all, nil
		}
	}
}
