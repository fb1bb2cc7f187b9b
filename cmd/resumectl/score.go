package main

import (
	"github.com/spf13/cobra"
)

var atsJobFile string

var atsCmd = &cobra.Command{
	Use:   "ats",
	Short: "Analyze the resume against a job description",
	RunE: func(cmd *cobra.Command, _ []string) error {
		job, err := readInput(cmd.InOrStdin(), atsJobFile)
		if err != nil {
			return err
		}
		rep, err := newClient().AnalyzeATS(cmd.Context(), string(job))
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), rep)
	},
}

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score the resume",
	RunE: func(cmd *cobra.Command, _ []string) error {
		rep, err := newClient().ScoreResume(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), rep)
	},
}

func init() {
	atsCmd.Flags().StringVar(&atsJobFile, "job", "-", "job description file, - for stdin")
	rootCmd.AddCommand(atsCmd, scoreCmd)
}
