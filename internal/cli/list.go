package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/cruzr/cruzr/internal/catalog"
	"github.com/cruzr/cruzr/internal/criteria"
	"github.com/cruzr/cruzr/internal/filter"
	"github.com/cruzr/cruzr/internal/render"
	"github.com/cruzr/cruzr/internal/ui"
)

// ListOptions are the raw filter form values; they go through the same
// coercion as the interactive form.
type ListOptions struct {
	Types        []string
	MaxPrice     string
	MinRating    string
	Availability string
	Tree         bool
}

// NewListCommand renders the filtered catalog as a table.
func NewListCommand(root *RootOptions) *cobra.Command {
	opts := &ListOptions{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List vehicles matching the given filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := root.logger("list")
			if err != nil {
				return err
			}
			defer logger.Sync()

			store, err := OpenCatalog(cmd.Context(), root.Config.Catalog.Source)
			if err != nil {
				return err
			}
			c := opts.criteria(store.Types(), root.Config.FilterDefaults())
			results := filter.Apply(store.All(), c)
			logger.Debug("listing vehicles", "source", displaySource(root.Config.Catalog.Source),
				"matched", len(results), "total", store.Len())

			target := ui.NewMountPoint("results")
			(&render.Pipeline{Icons: ui.NewIcons()}).Render(target, results)
			if opts.Tree {
				return ui.Dump(cmd.OutOrStdout(), target.Root())
			}
			return writeTable(cmd.OutOrStdout(), target)
		},
	}

	fs := cmd.Flags()
	fs.StringSliceVar(&opts.Types, "type", nil, "vehicle types to include (default all)")
	fs.StringVar(&opts.MaxPrice, "max-price", "", "maximum price per day (default the price slider ceiling)")
	fs.StringVar(&opts.MinRating, "min-rating", "0", "minimum rating")
	fs.StringVar(&opts.Availability, "availability", criteria.AvailabilityAll, "all or available")
	fs.BoolVar(&opts.Tree, "tree", false, "print the rendered card tree instead of a table")
	return cmd
}

// criteria fills a filter form from the flags and reads it back.
func (o *ListOptions) criteria(types []catalog.VehicleType, d criteria.Defaults) filter.Criteria {
	form := d.Form(types)
	if len(o.Types) > 0 {
		want := make(map[catalog.VehicleType]bool, len(o.Types))
		for _, t := range o.Types {
			want[catalog.ParseType(t)] = true
		}
		for i := range form.Types {
			form.Types[i].Checked = want[form.Types[i].Type]
		}
	}
	form.PriceRange = o.MaxPrice
	if form.PriceRange == "" {
		form.PriceRange = criteria.FormatNumber(d.PriceMax)
	}
	form.Rating = o.MinRating
	form.Availability = o.Availability
	return criteria.Read(form)
}

func writeTable(w io.Writer, target *ui.MountPoint) error {
	root := target.Root()
	if empty := root.Find("empty-state"); empty != nil {
		_, err := fmt.Fprintf(w, "%s\n%s\n", render.EmptyTitle, render.EmptyHint)
		return err
	}

	table := uitable.New()
	table.MaxColWidth = 40
	table.Wrap = true
	table.AddRow("ID", "NAME", "TYPE", "RATING", "PRICE", "STATUS", "FEATURES")
	for _, card := range root.FindAll("booking-card") {
		text := func(class string) string {
			if n := card.Find(class); n != nil {
				return n.Text
			}
			return ""
		}
		price := ""
		if p := card.Find("booking-card__price"); p != nil {
			price = p.TextContent()
		}
		var features []string
		if ul := card.Find("booking-card__features"); ul != nil {
			for _, li := range ul.Children {
				features = append(features, li.Text)
			}
		}
		table.AddRow(card.Attr("data-id"), text("booking-card__title"), text("booking-card__type"),
			text("booking-card__rating"), price, text("badge--status"), strings.Join(features, ", "))
	}
	_, err := fmt.Fprintln(w, table)
	return err
}
