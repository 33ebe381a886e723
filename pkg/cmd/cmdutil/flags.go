package cmdutil

import (
	"github.com/spf13/pflag"

	"github.com/c9s/outliers/pkg/outlier"
)

// DetectionFlags defines the flags shared by the commands that compute a fence
func DetectionFlags(flags *pflag.FlagSet) {
	flags.Float64P("multiplier", "g", outlier.DefaultMultiplier, "fence multiplier g, 1.5 for mild and 3.0 for extreme outliers")
	flags.StringP("key", "k", "", "numeric field of JSON object records")
}
