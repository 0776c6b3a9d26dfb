package models

// Balance is derived from the full transaction set and never persisted
type Balance struct {
	Income  int64 `json:"income"`
	Outcome int64 `json:"outcome"`
	Total   int64 `json:"total"`
}

// CanCover reports whether an outcome of the given value fits within the total
func (b Balance) CanCover(value int64) bool {
	return value <= b.Total
}
