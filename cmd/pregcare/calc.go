package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbabeam/Pregnancy-Mobile-App-sub000/internal/domain/gestation"
	"github.com/dbabeam/Pregnancy-Mobile-App-sub000/internal/domain/pregnancy"
	"github.com/dbabeam/Pregnancy-Mobile-App-sub000/internal/domain/triage"
)

// offlineService builds a service for one-shot CLI calculations. Nothing is
// persisted.
func offlineService() (*pregnancy.Service, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return newService(cfg, nil)
}

func addOutputFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", formatJSON, "Output format: json or yaml")
}

func gestationCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gestation",
		Short: "Compute the gestational state for a last menstrual period",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lmpFlag, _ := cmd.Flags().GetString("lmp")
			asOfFlag, _ := cmd.Flags().GetString("as-of")
			format, _ := cmd.Flags().GetString("output")

			lmp, err := pregnancy.ParseOptionalDate(lmpFlag)
			if err != nil {
				return err
			}
			asOf, err := pregnancy.ParseOptionalDate(asOfFlag)
			if err != nil {
				return err
			}
			svc, err := offlineService()
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), format, svc.Assess(lmp, asOf))
		},
	}
	cmd.Flags().String("lmp", "", "First day of the last menstrual period (YYYY-MM-DD)")
	cmd.Flags().String("as-of", "", "Reference date (YYYY-MM-DD, default today)")
	addOutputFlag(cmd)
	return cmd
}

func triageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "triage",
		Short: "Compose urgency and advice for a set of symptoms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, _ := cmd.Flags().GetIntSlice("symptom")
			names, _ := cmd.Flags().GetStringArray("custom")
			label, _ := cmd.Flags().GetString("trimester")
			lmpFlag, _ := cmd.Flags().GetString("lmp")
			asOfFlag, _ := cmd.Flags().GetString("as-of")
			format, _ := cmd.Flags().GetString("output")

			custom := make([]triage.CustomSymptom, 0, len(names))
			for _, n := range names {
				custom = append(custom, triage.CustomSymptom{Name: n})
			}

			svc, err := offlineService()
			if err != nil {
				return err
			}
			if label != "" || lmpFlag == "" {
				return writeOutput(cmd.OutOrStdout(), format, svc.Triage(ids, custom, label))
			}

			lmp, err := pregnancy.ParseOptionalDate(lmpFlag)
			if err != nil {
				return err
			}
			asOf, err := pregnancy.ParseOptionalDate(asOfFlag)
			if err != nil {
				return err
			}
			_, report := svc.TriageForLMP(lmp, asOf, ids, custom)
			return writeOutput(cmd.OutOrStdout(), format, report)
		},
	}
	cmd.Flags().IntSlice("symptom", nil, "Catalog symptom id (repeatable)")
	cmd.Flags().StringArray("custom", nil, "Custom symptom name (repeatable)")
	cmd.Flags().String("trimester", "", `Trimester label, e.g. "2nd Trimester"`)
	cmd.Flags().String("lmp", "", "Derive the trimester from this LMP when --trimester is empty")
	cmd.Flags().String("as-of", "", "Reference date for --lmp (YYYY-MM-DD, default today)")
	cmd.MarkFlagsMutuallyExclusive("trimester", "lmp")
	addOutputFlag(cmd)
	return cmd
}

func symptomsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "symptoms",
		Short: "List the symptom catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("output")
			return writeOutput(cmd.OutOrStdout(), format, triage.DefaultCatalog().Symptoms())
		},
	}
	addOutputFlag(cmd)
	return cmd
}

func guideCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "guide",
		Short: "Show the week-by-week tracker guide",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			week, _ := cmd.Flags().GetInt("week")
			format, _ := cmd.Flags().GetString("output")
			if week < 0 || week > pregnancy.MaxGuideWeek {
				return fmt.Errorf("--week must be between 0 and %d", pregnancy.MaxGuideWeek)
			}
			return writeOutput(cmd.OutOrStdout(), format, gestation.Guide(week))
		},
	}
	cmd.Flags().Int("week", 0, "Completed gestational week")
	_ = cmd.MarkFlagRequired("week")
	addOutputFlag(cmd)
	return cmd
}
