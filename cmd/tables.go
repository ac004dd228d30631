package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"hanzi-namer/internal/engine"
	"hanzi-namer/internal/profile"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Print the lookup tables used for generation",
	RunE: func(cmd *cobra.Command, args []string) error {
		printTables(cmd.OutOrStdout())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(tablesCmd)
}

func printTables(w io.Writer) {
	fmt.Fprintln(w, "🔍 Lookup Tables:")
	fmt.Fprintf(w, "%-10s : %s\n", "surnames", strings.Join(engine.Surnames(), " "))
	fmt.Fprintf(w, "%-10s : %s\n", "male", strings.Join(engine.MaleGivenNames(), " "))
	fmt.Fprintf(w, "%-10s : %s\n", "female", strings.Join(engine.FemaleGivenNames(), " "))

	fmt.Fprintln(w, "\nInterests (first match wins):")
	for i, in := range profile.Interests() {
		fmt.Fprintf(w, "[%02d] %-8s : %s\n", i+1, in, strings.Join(engine.InterestCharacters(in), " "))
	}

	fmt.Fprintln(w, "\nSeasons:")
	for m := time.January; m <= time.December; m++ {
		fmt.Fprintf(w, "[%02d] %-9s : %s\n", int(m), m, strings.Join(engine.SeasonalCharacters(m), " "))
	}

	fmt.Fprintln(w, "\nTransliteration:")
	for r := 'a'; r <= 'z'; r++ {
		fmt.Fprintf(w, "%c=%s ", r, engine.LatinToChinese(r))
		if (r-'a')%9 == 8 {
			fmt.Fprintln(w)
		}
	}
	fmt.Fprintln(w)
}
