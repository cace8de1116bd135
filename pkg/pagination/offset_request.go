package pagination

import "math"

// PageMax is the largest page Validate keeps; (PageMax-1)*PageMaxSize still fits in an int.
const PageMax = math.MaxInt / PageMaxSize

type OffsetRequest struct {
	Page int `json:"page" query:"page"`
	Size int `json:"size" query:"size"`
}

// Validate normalizes the request: page defaults to 1 and is capped at
// PageMax, size is clamped to [1, PageMaxSize], defaulting to PageDefaultSize.
func (r *OffsetRequest) Validate() error {
	if r.Page <= 0 {
		r.Page = 1
	}
	if r.Page > PageMax {
		r.Page = PageMax
	}
	if r.Size <= 0 {
		r.Size = PageDefaultSize
	}
	if r.Size > PageMaxSize {
		r.Size = PageMaxSize
	}
	return nil
}

// Offset is the number of items skipped before this page. It is never
// negative for a validated request.
func (r OffsetRequest) Offset() int {
	return (r.Page - 1) * r.Size
}
