package auth

// LoginRoute is where the client is sent after logout.
const LoginRoute = "/login"

// Navigator moves the client to a view, e.g. a UI router or a CLI prompt.
type Navigator interface {
	Navigate(route string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(route string)

func (f NavigatorFunc) Navigate(route string) { f(route) }

type nopNavigator struct{}

func (nopNavigator) Navigate(string) {}
