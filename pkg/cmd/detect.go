package cmd

import (
	"context"
	"io"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/c9s/outliers/pkg/dataset"
	"github.com/c9s/outliers/pkg/outlier"
	"github.com/c9s/outliers/pkg/report"
)

func init() {
	DetectCmd.Flags().StringP("format", "f", string(report.FormatTable), "output format: table, json, yaml or plain")
	RootCmd.AddCommand(DetectCmd)
}

type detectOptions struct {
	Multiplier float64
	Key        string
	Format     report.Format
	Colored    bool
}

// DetectCmd prints the fence and the outliers of each dataset
var DetectCmd = &cobra.Command{
	Use:   "detect [FILE...]",
	Short: "print the outliers of each dataset",
	Long:  "print the fence statistics and the outliers of each dataset, reads the standard input when no file or '-' is given",

	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := report.ParseFormat(viper.GetString("format"))
		if err != nil {
			return err
		}

		opts := detectOptions{
			Multiplier: viper.GetFloat64("multiplier"),
			Key:        viper.GetString("key"),
			Format:     format,
			Colored:    colored(),
		}

		loader := dataset.NewLoader(&dataset.FileSource{In: cmd.InOrStdin()}, opts.Key)
		return runDetect(cmd.Context(), loader, args, opts, cmd.OutOrStdout())
	},
}

func runDetect(ctx context.Context, loader *dataset.Loader, names []string, opts detectOptions, w io.Writer) error {
	if err := outlier.ValidateMultiplier(opts.Multiplier); err != nil {
		return err
	}

	if ctx == nil {
		ctx = context.Background()
	}

	datasets, err := loadDatasets(ctx, loader, names)
	if err != nil {
		return err
	}

	reports := make([]*report.Report, 0, len(datasets))
	for _, ds := range datasets {
		fence, err := outlier.Compute(ds.Values, opts.Multiplier)
		if err != nil {
			return errors.Wrapf(err, "dataset %s", ds.Name)
		}

		log.Infof("%s: %d outliers out of %d values", ds.Name, len(fence.Outliers), fence.Size)
		reports = append(reports, report.New(ds.Name, fence))
	}

	return report.NewRenderer(opts.Format, opts.Colored).Render(w, reports)
}
