package cli

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/tidwall/gjson"

	"github.com/viant/shortlink"
	"github.com/viant/shortlink/schema"
)

const timeLayout = "2006-01-02 15:04:05"

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(timeLayout)
}

func (r *Runner) list(ctx context.Context, client *shortlink.Client) error {
	links, err := client.Links.FetchLinks(ctx)
	if err != nil {
		return err
	}
	if len(links) == 0 {
		fmt.Fprintln(r.out, "No links")
		return nil
	}
	writer := tabwriter.NewWriter(r.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tURL\tSHORT URL\tCLICKS\tCREATED")
	for _, link := range links {
		fmt.Fprintf(writer, "%v\t%v\t%v\t%d\t%v\n", link.ID(), link.URL(), link.ShortURL(), link.AccessCount(), formatTime(link.CreateTime()))
	}
	return writer.Flush()
}

func (r *Runner) printLink(link schema.Link) {
	writer := tabwriter.NewWriter(r.out, 0, 0, 1, ' ', 0)
	label := color.New(color.FgCyan)
	fmt.Fprintf(writer, "%v\t%v\n", label.Sprint("id:"), link.ID())
	fmt.Fprintf(writer, "%v\t%v\n", label.Sprint("url:"), link.URL())
	fmt.Fprintf(writer, "%v\t%v\n", label.Sprint("short url:"), link.ShortURL())
	fmt.Fprintf(writer, "%v\t%v\n", label.Sprint("created:"), formatTime(link.CreateTime()))
	_ = writer.Flush()
}

func (r *Runner) analytics(ctx context.Context, client *shortlink.Client, id string) error {
	analytics, err := client.Links.GetLinkAnalytics(ctx, id)
	if err != nil {
		return err
	}
	writer := tabwriter.NewWriter(r.out, 0, 0, 1, ' ', 0)
	label := color.New(color.FgCyan)
	gjson.ParseBytes(analytics.RawMessage).ForEach(func(key, value gjson.Result) bool {
		fmt.Fprintf(writer, "%v\t%v\n", label.Sprint(key.String()+":"), value.String())
		return true
	})
	return writer.Flush()
}
