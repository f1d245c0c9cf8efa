// Package nav tracks which view the client is showing and performs the
// redirects the session layer asks for.
package nav

import "sync"

type View string

const (
	ViewHome      View = "home"
	ViewLogin     View = "login"
	ViewSignup    View = "signup"
	ViewDashboard View = "dashboard"
)

// RequiresAuth reports whether the view is only meaningful with a session.
func (v View) RequiresAuth() bool {
	return v == ViewHome || v == ViewDashboard
}

type Navigator interface {
	Current() View
	Navigate(to View)
}

// Router is the Navigator used by the CLI. OnChange, when set, is called
// after every navigation, including navigation to the current view.
type Router struct {
	mu       sync.RWMutex
	current  View
	onChange func(from, to View)
}

func NewRouter(start View) *Router {
	return &Router{current: start}
}

func (r *Router) Current() View {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

func (r *Router) Navigate(to View) {
	r.mu.Lock()
	from := r.current
	r.current = to
	hook := r.onChange
	r.mu.Unlock()

	if hook != nil {
		hook(from, to)
	}
}

func (r *Router) OnChange(fn func(from, to View)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onChange = fn
}
