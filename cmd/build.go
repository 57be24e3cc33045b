package cmd

import (
	"context"
	"log"
	"path/filepath"

	"res-builder/core/config"
	"res-builder/core/database"
	"res-builder/core/logger"
	"res-builder/core/res"
	"res-builder/feature/osemosys"
	"res-builder/feature/snapshot"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	buildOutput string
	buildSave   bool
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the energy system and write the model input workbook",
	Long: `Reads the indicator and balance workbooks, builds the Reference
Energy System and writes the OSeMOSYS sets and parameters workbook.
With --save the built system is also persisted to the database.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		runID := uuid.NewString()
		logg = logg.With(zap.String("run_id", runID))

		ctx := context.Background()

		source, client, err := newSource(cfg)
		if err != nil {
			logg.Error("Failed to create workbook source", zap.Error(err))
			return err
		}

		indicator, bal, err := source.Datasets(ctx)
		if err != nil {
			logg.Error("Failed to load workbooks", zap.Error(err))
			return err
		}

		techs, err := res.Build(indicator, bal)
		if err != nil {
			logg.Error("Build failed", zap.Error(err))
			return err
		}

		if err := osemosys.WriteFile(techs, buildOutput); err != nil {
			logg.Error("Failed to write model workbook", zap.Error(err))
			return err
		}

		// With a bucket configured, the generated workbook is published next
		// to the input workbooks as well.
		if client != nil {
			objectName := filepath.Base(buildOutput)
			if err := osemosys.Publish(ctx, client, cfg.Balance.Bucket, objectName, techs); err != nil {
				logg.Error("Failed to publish model workbook", zap.Error(err))
				return err
			}
			logg.Info("Workbook published",
				zap.String("bucket", cfg.Balance.Bucket),
				zap.String("object", objectName),
			)
		}

		sets := osemosys.BuildSets(techs)
		logg.Info("Build complete",
			zap.String("output", buildOutput),
			zap.Int("regions", len(sets.Regions)),
			zap.Int("technologies", len(techs)),
			zap.Float64("total_pj", res.TotalEnergyPJ(techs)),
		)

		if !buildSave {
			return nil
		}

		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Error("Database connection failed", zap.Error(err))
			return err
		}

		store := snapshot.NewStore(db)
		if err := store.Migrate(); err != nil {
			logg.Error("Snapshot migration failed", zap.Error(err))
			return err
		}

		run, err := store.Save(ctx, techs)
		if err != nil {
			logg.Error("Snapshot save failed", zap.Error(err))
			return err
		}
		logg.Info("Snapshot saved", zap.String("snapshot_id", run.ID))
		return nil
	},
}

func init() {
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "./OSeInputData.xlsx",
		"path of the generated model input workbook")
	buildCmd.Flags().BoolVar(&buildSave, "save", false,
		"persist the built system to the database")
	RootCmd.AddCommand(buildCmd)
}
