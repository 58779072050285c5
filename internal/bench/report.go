package bench

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// Write renders the report as "text", "json" or "yaml".
func (r *Report) Write(w io.Writer, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case "text", "":
		return r.writeText(w)
	}
	return fmt.Errorf("unknown report format %q", format)
}

func (r *Report) writeText(w io.Writer) error {
	fmt.Fprintf(w, "host: %s/%s, %d cpus, features %v, radix %v\n\n",
		r.Host.GOOS, r.Host.GOARCH, r.Host.CPUs, r.Host.Features, r.Host.Radix)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "pattern\tsize\tengine\tstrategy\tper op\t")
	for _, res := range r.Results {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%v\t\n", res.Pattern, res.Size, res.Engine, res.Strategy, res.PerOp)
	}
	return tw.Flush()
}
