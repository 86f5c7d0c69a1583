package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/raceday/internal/auth"
	"github.com/yourusername/raceday/internal/config"
	"github.com/yourusername/raceday/internal/database"
	"github.com/yourusername/raceday/internal/eligibility"
	"github.com/yourusername/raceday/internal/health"
	"github.com/yourusername/raceday/internal/logger"
	"github.com/yourusername/raceday/internal/metrics"
	"github.com/yourusername/raceday/internal/models"
	"github.com/yourusername/raceday/internal/notify"
	"github.com/yourusername/raceday/internal/registration"
	"github.com/yourusername/raceday/internal/repository"
	"github.com/yourusername/raceday/internal/results"
	"github.com/yourusername/raceday/internal/scheduler"
	"github.com/yourusername/raceday/internal/stats"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	configFile string
	email      string
	password   string

	appLogger *logrus.Logger
	cfg       *config.Config
	db        *database.DB
	repos     *repository.Repositories
	sessions  *auth.Service
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "./config/config.yaml", "Path to configuration file")
	rootCmd.PersistentFlags().StringVar(&email, "email", "", "Account email for gated commands")
	rootCmd.PersistentFlags().StringVar(&password, "password", "", "Account password for gated commands")

	rootCmd.AddCommand(overviewCmd)
	rootCmd.AddCommand(horsesCmd)
	rootCmd.AddCommand(racesCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(addHorseCmd)
	rootCmd.AddCommand(addRaceCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(submitResultsCmd)
	rootCmd.AddCommand(notificationsCmd)
	rootCmd.AddCommand(monitorCmd)
	rootCmd.AddCommand(versionCmd)
}

var rootCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Race day dashboard",
	Long:  `Command-line dashboard over the race, horse, and result collections.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" {
			return nil
		}
		if err := loadConfig(); err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if err := setupDependencies(); err != nil {
			return fmt.Errorf("failed to setup dependencies: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if db != nil {
			db.Close()
		}
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func loadConfig() error {
	var err error
	cfg, err = config.LoadWithDefaults(configFile)
	if err != nil {
		return err
	}
	return config.Validate(cfg)
}

func setupDependencies() error {
	appLogger = logger.NewLogger(cfg.App.LogLevel)

	var err error
	db, err = database.NewDB(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	repos, err = repository.NewRepositories(db)
	if err != nil {
		return fmt.Errorf("failed to initialize repositories: %w", err)
	}

	if cfg.Metrics.Enabled {
		metrics.InitRegistry()
	}

	ttl := time.Duration(cfg.Auth.SessionTTLMinutes) * time.Minute
	sessions = auth.NewService(ttl, appLogger)

	return nil
}

// login authenticates the --email/--password flags and checks the action.
func login(action auth.Action) (*auth.User, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("this command requires --email and --password")
	}
	_, user, ok := sessions.Login(email, password)
	if !ok {
		return nil, fmt.Errorf("invalid credentials")
	}
	if !auth.Can(user.Role, action) {
		return nil, fmt.Errorf("role %s is not allowed to perform %s", user.Role, action)
	}
	return user, nil
}

func newAggregator() *stats.Aggregator {
	limits := stats.Limits{
		TopHorses:     cfg.Stats.TopHorses,
		TopOwners:     cfg.Stats.TopOwners,
		RecentResults: cfg.Stats.RecentResults,
	}
	return stats.NewAggregator(repos.Horse, repos.Race, repos.Result, limits, cfg.Stats.Locale)
}

var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Show headline totals and leaderboards",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		agg := newAggregator()

		overview, err := agg.Overview(ctx)
		if err != nil {
			return err
		}
		metrics.UpdateCollectionSizes(overview.TotalHorses, overview.TotalRaces)

		fmt.Println("\nOverview")
		fmt.Printf("  Races: %d (completed %d, upcoming %d)\n", overview.TotalRaces, overview.CompletedRaces, overview.UpcomingRaces)
		fmt.Printf("  Horses: %d\n", overview.TotalHorses)
		fmt.Printf("  Owners: %d\n", overview.TotalOwners)
		fmt.Printf("  Results: %d\n", overview.TotalResults)

		topHorses, err := agg.TopHorses(ctx)
		if err != nil {
			return err
		}
		fmt.Println("\nTop Horses")
		for i, perf := range topHorses {
			fmt.Printf("  %d. %s  wins=%d podiums=%d winRate=%.1f%% (%s)\n",
				i+1, perf.Horse.Name, perf.ActualWins, perf.Podiums, perf.WinRate, perf.Tier)
		}

		topOwners, err := agg.TopOwners(ctx)
		if err != nil {
			return err
		}
		fmt.Println("\nTop Owners")
		for i, standing := range topOwners {
			fmt.Printf("  %d. %s  horses=%d wins=%d\n", i+1, standing.OwnerName, standing.Horses, standing.Wins)
		}

		activity, err := agg.MonthlyActivity(ctx)
		if err != nil {
			return err
		}
		fmt.Println("\nMonthly Activity")
		for _, month := range activity {
			fmt.Printf("  %s: %d\n", month.Label, month.Count)
		}

		recent, err := agg.RecentResults(ctx)
		if err != nil {
			return err
		}
		fmt.Println("\nRecent Results")
		for _, result := range recent {
			fmt.Printf("  %s  #%d %s (%s)\n", result.RaceName, result.Position, result.HorseName, result.Time)
		}
		fmt.Println()

		return nil
	},
}

var horsesCmd = &cobra.Command{
	Use:   "horses",
	Short: "List the registered horses",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		horses, err := repos.Horse.List(ctx)
		if err != nil {
			return err
		}

		for _, horse := range horses {
			fmt.Printf("%s  %s (%s, %d yrs)  owner=%s  record=%d/%d\n",
				horse.ID, horse.Name, horse.Breed, horse.Age, horse.OwnerName, horse.Wins, horse.Races)
		}
		return nil
	},
}

var raceStatus string

func init() {
	racesCmd.Flags().StringVar(&raceStatus, "status", "", "Filter by status (upcoming, active, completed, cancelled)")
}

var racesCmd = &cobra.Command{
	Use:   "races",
	Short: "List races",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		var races []*models.Race
		var err error
		if raceStatus != "" {
			races, err = repos.Race.GetByStatus(ctx, models.RaceStatus(raceStatus))
		} else {
			races, err = repos.Race.List(ctx)
		}
		if err != nil {
			return err
		}

		for _, race := range races {
			fmt.Printf("%s  %s  %s %s  [%s]  entries=%d/%d  ages=%q\n",
				race.ID, race.Name, race.Date, race.Time, race.Status,
				len(race.RegisteredHorses), race.MaxHorses, race.AgeCategory)
		}
		return nil
	},
}

var checkCmd = &cobra.Command{
	Use:   "check <race-id> <horse-id>",
	Short: "Check a horse's eligibility for a race",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		race, err := repos.Race.GetByID(ctx, args[0])
		if err != nil {
			return err
		}
		horse, err := repos.Horse.GetByID(ctx, args[1])
		if err != nil {
			return err
		}

		decision := eligibility.Evaluate(race, horse)
		if decision.Eligible {
			fmt.Printf("%s is eligible for %s\n", horse.Name, race.Name)
			return nil
		}

		fmt.Printf("%s is not eligible for %s:\n", horse.Name, race.Name)
		for _, reason := range decision.Reasons {
			fmt.Printf("  - %s\n", reason)
		}
		return nil
	},
}

var horseFile string

func init() {
	addHorseCmd.Flags().StringVar(&horseFile, "file", "", "Path to a JSON file describing the horse")
	addHorseCmd.MarkFlagRequired("file")
}

var addHorseCmd = &cobra.Command{
	Use:   "add-horse",
	Short: "Add a horse to the registry",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := login(auth.ActionCreateHorse); err != nil {
			return err
		}

		data, err := os.ReadFile(horseFile)
		if err != nil {
			return fmt.Errorf("failed to read horse file: %w", err)
		}

		var horse models.Horse
		if err := json.Unmarshal(data, &horse); err != nil {
			return fmt.Errorf("failed to parse horse file: %w", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := repos.Horse.Create(ctx, &horse); err != nil {
			return err
		}

		fmt.Printf("Added horse %s (%s)\n", horse.Name, horse.ID)
		return nil
	},
}

var raceFile string

func init() {
	addRaceCmd.Flags().StringVar(&raceFile, "file", "", "Path to a JSON file describing the race")
	addRaceCmd.MarkFlagRequired("file")
}

var addRaceCmd = &cobra.Command{
	Use:   "add-race",
	Short: "Schedule a race",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := login(auth.ActionCreateRace); err != nil {
			return err
		}

		data, err := os.ReadFile(raceFile)
		if err != nil {
			return fmt.Errorf("failed to read race file: %w", err)
		}

		var race models.Race
		if err := json.Unmarshal(data, &race); err != nil {
			return fmt.Errorf("failed to parse race file: %w", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := repos.Race.Create(ctx, &race); err != nil {
			return err
		}

		fmt.Printf("Scheduled race %s (%s) on %s\n", race.Name, race.ID, race.Date)
		return nil
	},
}

var registerCmd = &cobra.Command{
	Use:   "register <race-id> <horse-id>",
	Short: "Register a horse for a race",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := login(auth.ActionRegisterHorse); err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		race, err := repos.Race.GetByID(ctx, args[0])
		if err != nil {
			return err
		}
		horse, err := repos.Horse.GetByID(ctx, args[1])
		if err != nil {
			return err
		}

		decision := eligibility.Evaluate(race, horse)
		if !decision.Eligible {
			metrics.RecordEligibilityRejection()
			fmt.Printf("Registration refused for %s:\n", horse.Name)
			for _, reason := range decision.Reasons {
				fmt.Printf("  - %s\n", reason)
			}
			return nil
		}

		sink := notify.NewStoreSink(repos.Notification, appLogger)
		coordinator := registration.NewCoordinator(repos.Race, repos.Horse, sink, appLogger)

		registered, err := coordinator.Register(ctx, args[0], args[1])
		if err != nil {
			return err
		}
		if !registered {
			fmt.Println("Registration declined")
			return nil
		}

		fmt.Printf("Registered %s for %s\n", horse.Name, race.Name)
		return nil
	},
}

var resultsFile string

func init() {
	submitResultsCmd.Flags().StringVar(&resultsFile, "file", "", "Path to a JSON file with the result entries")
	submitResultsCmd.MarkFlagRequired("file")
}

var submitResultsCmd = &cobra.Command{
	Use:   "submit-results <race-id>",
	Short: "Submit the final results for a race",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := login(auth.ActionSubmitResults)
		if err != nil {
			return err
		}

		data, err := os.ReadFile(resultsFile)
		if err != nil {
			return fmt.Errorf("failed to read results file: %w", err)
		}

		var entries []results.Entry
		if err := json.Unmarshal(data, &entries); err != nil {
			return fmt.Errorf("failed to parse results file: %w", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		sink := notify.NewStoreSink(repos.Notification, appLogger)
		recorder := results.NewRecorder(repos.Race, repos.Horse, repos.Result, sink, appLogger)

		recorded, err := recorder.Submit(ctx, args[0], user.ID, entries)
		if err != nil {
			return err
		}

		fmt.Printf("Recorded %d results for race %s\n", len(recorded), args[0])
		return nil
	},
}

var notificationsCmd = &cobra.Command{
	Use:   "notifications <user-id>",
	Short: "List a user's notifications",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		notifications, err := repos.Notification.ListByUser(ctx, args[0])
		if err != nil {
			return err
		}

		for _, n := range notifications {
			marker := " "
			if !n.Read {
				marker = "*"
			}
			fmt.Printf("%s [%s] %s: %s\n", marker, n.Type, n.Title, n.Message)
		}
		return nil
	},
}

var (
	monitorPort     string
	monitorInterval int
)

func init() {
	monitorCmd.Flags().StringVar(&monitorPort, "port", "8080", "Port for the health and metrics endpoints")
	monitorCmd.Flags().IntVar(&monitorInterval, "interval", 30, "Gauge refresh interval in seconds")
}

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Serve health and metrics endpoints until interrupted",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		refresher := scheduler.NewScheduler(repos.Horse, repos.Race, appLogger)
		if err := refresher.ScheduleGaugeRefresh(monitorInterval); err != nil {
			return err
		}
		if err := refresher.RefreshGauges(ctx); err != nil {
			return err
		}
		if err := refresher.Start(); err != nil {
			return err
		}
		defer refresher.Stop()

		server := health.NewServer(health.Config{
			ServiceName: cfg.App.Name,
			Version:     Version,
			Commit:      GitCommit,
			Port:        monitorPort,
			Logger:      appLogger,
			Store:       db,
		})
		if err := server.Start(ctx); err != nil {
			return err
		}
		server.SetReady(true)

		appLogger.WithField("port", monitorPort).Info("Monitor running, press Ctrl+C to stop")
		<-ctx.Done()
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("dashboard %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
	},
}
