package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/gosuri/uiprogress"
	"github.com/spf13/cobra"

	"hanzi-namer/internal/engine"
	"hanzi-namer/internal/output"
	"hanzi-namer/internal/profile"
)

var (
	genReq    profile.Request
	genCount  int
	genFormat string
	genReport bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate Chinese names from the command line",
	Example: `  hanzi-namer generate --surname Smith --given-name John --gender male \
    --interests "I love music" --birthdate 2024-06-01`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if genCount < 1 {
			return fmt.Errorf("--count must be at least 1, got %d", genCount)
		}

		req := genReq.Normalize()
		if err := req.Validate(); err != nil {
			var missing *profile.MissingFieldError
			if errors.As(err, &missing) {
				return errors.New(missing.Detail())
			}
			return err
		}

		formatter, err := output.GetFormatter(genFormat)
		if err != nil {
			return err
		}

		gen := engine.NewGenerator(engine.NewFakerPicker(Config.Generator.Seed))
		out := cmd.OutOrStdout()

		if genCount == 1 {
			res, err := gen.Generate(req)
			if err != nil {
				return formatGenerationError(err)
			}
			return formatter.Write(out, req, []*engine.Result{res})
		}

		Logger.Info("starting batch",
			"count", genCount,
			"format", formatter.Name(),
			"gender", profile.ParseGender(req.Gender).String())
		start := time.Now()

		progress := uiprogress.New()
		progress.SetOut(cmd.ErrOrStderr())
		progress.Start()
		bar := progress.AddBar(genCount).AppendCompleted().PrependElapsed()
		bar.PrependFunc(func(b *uiprogress.Bar) string {
			return "Generating: "
		})

		report, err := engine.RunBatch(gen, req, genCount, func() {
			bar.Incr()
		})
		progress.Stop()

		if err != nil {
			return formatGenerationError(err)
		}
		if err := formatter.Write(out, req, report.Results); err != nil {
			return err
		}

		if genReport {
			fmt.Fprintln(cmd.ErrOrStderr(), "\n📊 Summary Report:")
			fmt.Fprintf(cmd.ErrOrStderr(), "  names      : %d (target %d)\n", report.Actual, report.Target)
			fmt.Fprintf(cmd.ErrOrStderr(), "  distinct   : %d\n", report.Distinct)
			fmt.Fprintf(cmd.ErrOrStderr(), "  by interest: %d\n", report.BySource[engine.SourceInterest])
			fmt.Fprintf(cmd.ErrOrStderr(), "  by season  : %d\n", report.BySource[engine.SourceSeasonal])
		}
		Logger.Info("batch done", "elapsed", time.Since(start), "distinct", report.Distinct)
		return nil
	},
}

func formatGenerationError(err error) error {
	var genErr *engine.GenerationError
	if errors.As(err, &genErr) {
		return errors.New(genErr.UserMessage())
	}
	return err
}

func init() {
	RootCmd.AddCommand(generateCmd)

	f := generateCmd.Flags()
	f.StringVar(&genReq.Surname, "surname", "", "English surname")
	f.StringVar(&genReq.GivenName, "given-name", "", "English given name")
	f.StringVar(&genReq.Gender, "gender", "", `gender ("male" selects the male pool, anything else the female pool)`)
	f.StringVar(&genReq.Interests, "interests", "", "free-text interests (sports, music, art, reading, travel)")
	f.StringVar(&genReq.Birthdate, "birthdate", "", "birthdate as YYYY-MM-DD")
	f.IntVarP(&genCount, "count", "n", 1, "number of names to generate")
	f.StringVarP(&genFormat, "format", "o", "text", "output format: text, json or csv")
	f.BoolVar(&genReport, "report", true, "print a summary report after a batch")
}
