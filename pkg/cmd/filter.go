package cmd

import (
	"bufio"
	"context"
	"io"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/valyala/fastjson"

	"github.com/c9s/outliers/pkg/dataset"
	"github.com/c9s/outliers/pkg/outlier"
	"github.com/c9s/outliers/pkg/util"
)

func init() {
	RootCmd.AddCommand(FilterCmd)
}

// FilterCmd removes the outliers from each dataset
var FilterCmd = &cobra.Command{
	Use:   "filter [FILE...]",
	Short: "print each dataset without its outliers",
	Long:  "print the inliers of each dataset in input order, JSON datasets are printed as JSON arrays",

	RunE: func(cmd *cobra.Command, args []string) error {
		g := viper.GetFloat64("multiplier")
		key := viper.GetString("key")

		loader := dataset.NewLoader(&dataset.FileSource{In: cmd.InOrStdin()}, key)
		return runFilter(cmd.Context(), loader, args, g, cmd.OutOrStdout())
	},
}

func runFilter(ctx context.Context, loader *dataset.Loader, names []string, g float64, w io.Writer) error {
	if err := outlier.ValidateMultiplier(g); err != nil {
		return err
	}

	if ctx == nil {
		ctx = context.Background()
	}

	datasets, err := loadDatasets(ctx, loader, names)
	if err != nil {
		return err
	}

	out := bufio.NewWriter(w)
	for _, ds := range datasets {
		var err error
		if ds.IsJSON() {
			err = filterRecords(out, ds, g)
		} else {
			err = filterValues(out, ds, g)
		}

		if err != nil {
			return errors.Wrapf(err, "dataset %s", ds.Name)
		}
	}

	return out.Flush()
}

func filterValues(w *bufio.Writer, ds *dataset.Dataset, g float64) error {
	filter, err := outlier.NewFilter[float64](g)
	if err != nil {
		return err
	}

	kept, err := outlier.Select(ds.Values, filter.Predicate())
	if err != nil {
		return err
	}

	log.Infof("%s: kept %d of %d values", ds.Name, len(kept), len(ds.Values))
	for _, v := range kept {
		w.WriteString(util.FormatFloat(v, -1))
		w.WriteByte('\n')
	}

	return nil
}

func filterRecords(w *bufio.Writer, ds *dataset.Dataset, g float64) error {
	filter, err := outlier.NewKeyedFilter(ds.Extractor(), g)
	if err != nil {
		return err
	}

	kept, err := outlier.Select(ds.Records, filter.Predicate())
	if err != nil {
		return err
	}

	log.Infof("%s: kept %d of %d records", ds.Name, len(kept), len(ds.Records))

	var arena fastjson.Arena
	arr := arena.NewArray()
	for i, record := range kept {
		arr.SetArrayItem(i, record)
	}

	w.Write(arr.MarshalTo(nil))
	w.WriteByte('\n')
	return nil
}
