package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/graceworks/steeple/internal/config"
	"github.com/graceworks/steeple/internal/engine"
	"github.com/graceworks/steeple/internal/entropy"
	"github.com/graceworks/steeple/internal/persistence"
)

var (
	runWeeks int
	runNew   bool
)

func init() {
	runCmd.Flags().IntVar(&runWeeks, "weeks", 10, "Number of weeks to simulate")
	runCmd.Flags().BoolVar(&runNew, "new", false, "Start a fresh game instead of loading the save slot")
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Simulate a batch of weeks headlessly",
	Long:  `Advance the simulation by N weeks, print a weekly digest, and save.`,
	RunE:  runBatch,
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := persistence.Open(cfg.Storage.Path)
	if err != nil {
		return err
	}
	defer db.Close()

	newRand := func() *entropy.Rand { return entropy.New(cfg.Game.Seed) }

	game, err := openGame(cfg, db, newRand, runNew)
	if err != nil {
		return err
	}

	for i := 0; i < runWeeks; i++ {
		res := game.ProcessWeek()
		if err := db.RecordWeek(cfg.Storage.Slot, game, res); err != nil {
			return err
		}

		stats, _ := game.CurrentStats()
		fmt.Printf("week %3d  attendance %4d  budget $%-8d net %+5d  morale %3d\n",
			res.Week, stats.Attendance, stats.Budget, res.Net, stats.CongregationMorale)
		if res.Event != nil {
			fmt.Printf("          event: %s\n", res.Event.Title)
		}
		if news := game.LatestNews(); news != nil {
			fmt.Printf("          news: %s\n", news.Text)
		}
	}

	return db.SaveGame(cfg.Storage.Slot, game)
}

// openGame loads the configured slot, falling back to a fresh game when
// asked or when the slot is empty.
func openGame(cfg config.Config, db *persistence.DB, newRand func() *entropy.Rand, fresh bool) (*engine.Game, error) {
	if !fresh {
		game, err := db.LoadGame(cfg.Storage.Slot, newRand())
		if err == nil {
			return game, nil
		}
		if !errors.Is(err, persistence.ErrNoSave) {
			return nil, err
		}
		slog.Info("no save found, starting fresh", "slot", cfg.Storage.Slot)
	}

	setup := engine.Setup{
		ChurchName:       cfg.Game.ChurchName,
		StartingBudget:   cfg.Game.StartingBudget,
		CongregationSize: cfg.Game.CongregationSize,
		StartingSliders: engine.ExpenseSliders{
			Utilities:   cfg.Game.Utilities,
			Programs:    cfg.Game.Programs,
			Maintenance: cfg.Game.Maintenance,
			Supplies:    cfg.Game.Supplies,
		},
	}
	return engine.New(setup, newRand()), nil
}
