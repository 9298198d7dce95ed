package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/Allen-Ronaldo-C/Digital-Twin-Carengine/internal/export"
	"github.com/Allen-Ronaldo-C/Digital-Twin-Carengine/internal/health"
	"github.com/Allen-Ronaldo-C/Digital-Twin-Carengine/internal/simulate"
	"github.com/Allen-Ronaldo-C/Digital-Twin-Carengine/internal/telemetry"
)

// runCmd generates one scenario run (or the full four-scenario suite),
// scores it, and exports the combined document.
func runCmd() *cobra.Command {
	var (
		scenarioName string
		steps        int
		seed         int64
		mileage      float64
		outPath      string
		pretty       bool
		suite        bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Generate a telemetry run, score it, and export JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
			}
			if !cmd.Flags().Changed("mileage") {
				mileage = cfg.Simulation.InitialMileageKM
			}

			var scenarios []telemetry.Scenario
			if suite {
				scenarios = telemetry.Scenarios()
			} else {
				sc, err := telemetry.ParseScenario(scenarioName)
				if err != nil {
					return err
				}
				scenarios = []telemetry.Scenario{sc}
			}

			gen := simulate.New(simulationParams(cfg), seed)

			var series telemetry.Series
			names := make([]string, 0, len(scenarios))
			for _, sc := range scenarios {
				part, err := gen.Generate(sc, steps)
				if err != nil {
					return err
				}
				series = append(series, part...)
				names = append(names, string(sc))
				slog.Info("scenario complete", "scenario", sc, "steps", len(part))
			}

			rep, err := health.Score(series)
			if err != nil {
				return err
			}

			finalMileage := mileage + gen.DistanceKM()
			est, err := health.EstimateMaintenance(finalMileage, &rep, cfg.Maintenance.Items)
			if err != nil {
				return err
			}

			doc := &export.Document{
				GeneratedAt: time.Now().UTC(),
				VehicleID:   cfg.Simulation.VehicleID,
				Scenarios:   names,
				Seed:        seed,
				Steps:       steps,
				MileageKM:   finalMileage,
				Series:      series,
				Health:      &rep,
				Maintenance: &est,
			}
			if err := export.WriteFile(outPath, doc, pretty); err != nil {
				return err
			}

			slog.Info("run complete",
				"snapshots", len(series),
				"overall_score", fmt.Sprintf("%.1f", rep.Overall),
				"state", rep.State,
				"next_due", est.NextDue,
				"out", outPath,
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&scenarioName, "scenario", "idle", "driving scenario: idle | acceleration | cruise | stress")
	cmd.Flags().IntVar(&steps, "steps", 60, "number of snapshots to generate per scenario")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (default: current time)")
	cmd.Flags().Float64Var(&mileage, "mileage", 0, "odometer km at run start (default: config value)")
	cmd.Flags().StringVar(&outPath, "out", "digital_twin_run.json", "output file path")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent the exported JSON")
	cmd.Flags().BoolVar(&suite, "suite", false, "run all four scenarios back-to-back into one document")

	return cmd
}
