package domain

type MenuItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category"`
	Recommended bool    `json:"recommended"`
}

type MenuCategory struct {
	Name  string     `json:"name"`
	Items []MenuItem `json:"items"`
}

// Menu is an ordered snapshot of categories. Category names are unique
// within one snapshot; the whole snapshot is only ever replaced in bulk.
type Menu []MenuCategory

func (m Menu) ItemCount() int {
	count := 0
	for _, category := range m {
		count += len(category.Items)
	}
	return count
}

func (m Menu) FindItem(itemID string) (MenuItem, bool) {
	for _, category := range m {
		for _, item := range category.Items {
			if item.ID == itemID {
				return item, true
			}
		}
	}
	return MenuItem{}, false
}
