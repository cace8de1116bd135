// Package pagination holds the offset paging types shared by history stores and routes.
package pagination

const (
	PageDefaultSize = 20
	PageMaxSize     = 100
)
