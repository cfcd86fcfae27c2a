package cli

import (
	"github.com/viant/shortlink"
)

type Options struct {
	shortlink.ClientOptions
	Config  string `short:"c" long:"config" env:"SHORTLINK_CONFIG" description:"YAML config file"`
	Verbose bool   `short:"v" long:"verbose" description:"debug logging"`

	Login     LoginCommand  `command:"login" description:"sign in and persist the access token"`
	Logout    EmptyCommand  `command:"logout" description:"sign out and forget the access token"`
	Status    EmptyCommand  `command:"status" description:"show the session status"`
	List      EmptyCommand  `command:"list" description:"list links"`
	Create    CreateCommand `command:"create" description:"shorten a URL"`
	Get       IDCommand     `command:"get" description:"show a link"`
	Update    UpdateCommand `command:"update" description:"change a link target"`
	Delete    IDCommand     `command:"delete" description:"delete a link"`
	Analytics IDCommand     `command:"analytics" description:"show link analytics"`
	Resolve   IDCommand     `command:"resolve" description:"show where a short id redirects"`
}

type EmptyCommand struct{}

type LoginCommand struct {
	Username string `short:"U" long:"username" env:"SHORTLINK_USERNAME" description:"user name"`
	Password string `short:"P" long:"password" env:"SHORTLINK_PASSWORD" description:"password"`
	Secret   string `long:"secret" description:"scy secret URL holding basic credentials"`
	Key      string `long:"key" default:"blowfish://default" description:"scy secret encryption key"`
}

type IDArgs struct {
	ID string `positional-arg-name:"id" required:"yes"`
}

type IDCommand struct {
	Args IDArgs `positional-args:"yes" required:"yes"`
}

type CreateCommand struct {
	Target   string `short:"t" long:"target" required:"true" description:"URL to shorten"`
	CustomID string `short:"i" long:"id" description:"custom short id"`
}

type UpdateCommand struct {
	Target string `short:"t" long:"target" required:"true" description:"new target URL"`
	Args   IDArgs `positional-args:"yes" required:"yes"`
}
