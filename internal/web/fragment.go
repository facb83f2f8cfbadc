// Package web renders the marketing site, the admin editor and the idea
// tool as server-side HTML.
package web

// View is a top-level page selected from the URL fragment.
type View int

const (
	ViewSite View = iota
	ViewAdmin
)

// AdminFragment is the fragment that selects the admin view.
const AdminFragment = "#/admin"

// ResolveFragment picks the top-level view for a location hash. Only the
// exact admin fragment selects the admin view; anything else, including
// section anchors, is the marketing site.
func ResolveFragment(hash string) View {
	if hash == AdminFragment {
		return ViewAdmin
	}
	return ViewSite
}

// viewFragment turns a ?view= value into the fragment it stands for, so
// clients without script can reach the same views.
func viewFragment(name string) string {
	if name == "" {
		return ""
	}
	return "#/" + name
}

func (v View) String() string {
	switch v {
	case ViewAdmin:
		return "admin"
	default:
		return "site"
	}
}

// Path returns the server path that renders v.
func (v View) Path() string {
	if v == ViewAdmin {
		return "/admin"
	}
	return "/"
}
