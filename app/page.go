package app

// State is the page lifecycle: every page starts loading and ends up ready
// or failed.
type State int

const (
	StateLoading State = iota
	StateReady
	StateFailed
)

// Route names a destination for the front-end loop. Controllers return
// routes instead of navigating so all navigation, including the global
// 401-to-login jump, lives in one place.
type Route struct {
	Name string
	Arg  string
}

var (
	RouteNone     = Route{}
	RouteLogin    = Route{Name: "login"}
	RouteFeed     = Route{Name: "feed"}
	RouteMessages = Route{Name: "messages"}
)

func RouteProfile(username string) Route {
	return Route{Name: "profile", Arg: username}
}

func RouteConversation(conversationID string) Route {
	return Route{Name: "conversation", Arg: conversationID}
}

// toggleMembership flips id in and out of the set, preserving order for the
// remaining entries.
func toggleMembership(set []string, id string) []string {
	for i, v := range set {
		if v == id {
			return append(append([]string{}, set[:i]...), set[i+1:]...)
		}
	}
	return append(append([]string{}, set...), id)
}

func contains(set []string, id string) bool {
	for _, v := range set {
		if v == id {
			return true
		}
	}
	return false
}
