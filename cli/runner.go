package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"

	"github.com/viant/shortlink"
	"github.com/viant/shortlink/client/auth"
)

// Run loads .env, when present, and executes the command line.
func Run(args []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	return New(os.Stdout, os.Stderr).Run(context.Background(), args)
}

// Runner executes shortlink commands, writing results to out and logs to errOut.
type Runner struct {
	out    io.Writer
	errOut io.Writer
}

func New(out, errOut io.Writer) *Runner {
	return &Runner{out: out, errOut: errOut}
}

func (r *Runner) Run(ctx context.Context, args []string) error {
	options := &Options{}
	parser := flags.NewParser(options, flags.HelpFlag|flags.PassDoubleDash)
	if _, err := parser.ParseArgs(args); err != nil {
		return err
	}
	if parser.Active == nil {
		return fmt.Errorf("command was empty")
	}
	client, err := r.client(ctx, options)
	if err != nil {
		return err
	}
	switch parser.Active.Name {
	case "login":
		return r.login(ctx, client, &options.Login)
	case "logout":
		client.Auth.Logout(ctx)
		return nil
	case "status":
		r.status(client)
		return nil
	case "list":
		return r.list(ctx, client)
	case "create":
		link, err := client.Links.CreateLink(ctx, options.Create.Target, options.Create.CustomID)
		if err != nil {
			return err
		}
		r.printLink(link)
		return nil
	case "get":
		link, err := client.Links.GetLink(ctx, options.Get.Args.ID)
		if err != nil {
			return err
		}
		r.printLink(link)
		return nil
	case "update":
		link, err := client.Links.UpdateLink(ctx, options.Update.Args.ID, options.Update.Target)
		if err != nil {
			return err
		}
		r.printLink(link)
		return nil
	case "delete":
		if _, err := client.Links.DeleteLink(ctx, options.Delete.Args.ID); err != nil {
			return err
		}
		color.New(color.FgGreen).Fprintf(r.out, "Deleted %v\n", options.Delete.Args.ID)
		return nil
	case "analytics":
		return r.analytics(ctx, client, options.Analytics.Args.ID)
	case "resolve":
		location, err := client.Links.ResolveLink(ctx, options.Resolve.Args.ID)
		if err != nil {
			return err
		}
		fmt.Fprintln(r.out, location)
		return nil
	}
	return fmt.Errorf("unsupported command: %v", parser.Active.Name)
}

func (r *Runner) client(ctx context.Context, options *Options) (*shortlink.Client, error) {
	if options.Config != "" {
		fileOptions, err := shortlink.LoadClientOptions(ctx, options.Config)
		if err != nil {
			return nil, err
		}
		options.ClientOptions.Merge(fileOptions)
	}
	if options.StoreURL == "" {
		options.StoreURL = shortlink.DefaultStoreURL
	}
	level := slog.LevelWarn
	if options.Verbose {
		level = slog.LevelDebug
	}
	options.Logger = slog.New(slog.NewTextHandler(r.errOut, &slog.HandlerOptions{Level: level}))
	options.Navigator = auth.NavigatorFunc(r.navigate)
	return shortlink.NewClient(&options.ClientOptions)
}

func (r *Runner) navigate(route string) {
	if route == auth.LoginRoute {
		color.New(color.FgYellow).Fprintln(r.out, "Signed out. Run 'shortlink login' to sign in again.")
	}
}

func (r *Runner) login(ctx context.Context, client *shortlink.Client, command *LoginCommand) error {
	username, password, err := command.credentials(ctx)
	if err != nil {
		return err
	}
	if _, err = client.Auth.Login(ctx, username, password); err != nil {
		return err
	}
	color.New(color.FgGreen).Fprintf(r.out, "Signed in as %v\n", username)
	return nil
}

func (r *Runner) status(client *shortlink.Client) {
	if !client.Auth.IsAuthenticated() {
		color.New(color.FgYellow).Fprintln(r.out, "Signed out")
		return
	}
	color.New(color.FgGreen).Fprint(r.out, "Signed in")
	if expiry := client.Auth.Expiry(); !expiry.IsZero() {
		fmt.Fprintf(r.out, " until %v", expiry.Local().Format(timeLayout))
	}
	fmt.Fprintln(r.out)
}
