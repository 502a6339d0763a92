// internal/state/keys.go
package state

// Fixed local persistence keys. The webview reads the same names, so
// they must not change.
const (
	KeyCartItems       = "cart_items"
	KeyFavorites       = "favorites"
	KeyAdminDraft      = "admin_product_draft"
	KeyTheme           = "theme"
	KeyLocationAsked   = "location_asked"
	KeyLocationEnabled = "location_enabled"
	KeyLocationName    = "location_name"
)
