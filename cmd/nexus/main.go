package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/nexus-classes/internal/bridge"
	"github.com/KirkDiggler/nexus-classes/internal/config"
	"github.com/KirkDiggler/nexus-classes/internal/domain/world"
	"github.com/KirkDiggler/nexus-classes/internal/handlers/discord"
	"github.com/KirkDiggler/nexus-classes/internal/markeditems"
	"github.com/KirkDiggler/nexus-classes/internal/registry"
	"github.com/KirkDiggler/nexus-classes/internal/repositories/classdata"
	"github.com/KirkDiggler/nexus-classes/internal/rules"
	"github.com/KirkDiggler/nexus-classes/internal/scheduler"
	classservice "github.com/KirkDiggler/nexus-classes/internal/services/classes"
	"github.com/KirkDiggler/nexus-classes/internal/services/persistence"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		log.Fatalf("nexus: %v", err)
	}
}

func run() error {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	tuning, err := config.LoadTuning(cfg.TuningPath)
	if err != nil {
		return fmt.Errorf("failed to load tuning: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	repo, closeStore, err := openStore(ctx, cfg.Store)
	if err != nil {
		return err
	}
	defer closeStore()

	reg := registry.New()
	report := persistence.NewLoader(&persistence.LoaderConfig{
		Repository: repo,
		Registry:   reg,
	}).Load(ctx)
	log.Printf("Restored %d participants and %d enabled regions (%d warnings)",
		report.Participants, report.EnabledRegions, len(report.Warnings))

	writer := persistence.NewAsyncWriter(&persistence.AsyncWriterConfig{Repository: repo})
	defer writer.Close()

	recorder := world.NewRecorder()
	items := markeditems.NewManager(reg)
	service := classservice.NewService(&classservice.ServiceConfig{
		Registry:  reg,
		Items:     items,
		Persister: writer,
	})

	sim := bridge.NewSimulation(&bridge.SimulationConfig{
		Engine: rules.NewEngine(&rules.EngineConfig{
			Registry: reg,
			Items:    items,
			Host:     recorder,
			Tuning:   tuning,
		}),
		Scheduler: scheduler.New(&scheduler.Config{
			Registry: reg,
			Host:     recorder,
			Tuning:   tuning,
		}),
		Recorder: recorder,
		Commands: service,
		Regions:  reg,
	})
	server := bridge.NewServer(&bridge.ServerConfig{Dispatcher: sim})

	mux := http.NewServeMux()
	mux.Handle(cfg.Bridge.Path, server.Handler())
	servers := []*http.Server{{Addr: cfg.Bridge.Addr, Handler: mux}}

	if cfg.Metrics.Addr != "" {
		metricsMux := http.NewServeMux()
		metricsMux.Handle("/metrics", promhttp.Handler())
		servers = append(servers, &http.Server{Addr: cfg.Metrics.Addr, Handler: metricsMux})
	}

	if cfg.Discord.Enabled() {
		dg, err := startDiscord(cfg.Discord, service)
		if err != nil {
			return err
		}
		defer func() {
			if err := dg.Close(); err != nil {
				log.Printf("Failed to close Discord connection: %v", err)
			}
		}()
	} else {
		log.Println("No DISCORD_TOKEN found, admin commands disabled")
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return sim.Run(gctx)
	})
	for _, srv := range servers {
		g.Go(func() error {
			log.Printf("Listening on %s", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("listen %s: %w", srv.Addr, err)
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
	}

	fmt.Printf("Nexus classes listening for hosts on %s%s. Press CTRL-C to exit.\n", cfg.Bridge.Addr, cfg.Bridge.Path)

	err = g.Wait()
	fmt.Println("Shutting down...")
	return err
}

// openStore selects the class data backend and returns its cleanup
func openStore(ctx context.Context, cfg config.StoreConfig) (classdata.Repository, func(), error) {
	switch cfg.Backend {
	case config.StoreRedis:
		log.Printf("Connecting to Redis at: %s", cfg.RedisURL)

		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to parse Redis URL: %w", err)
		}
		client := redis.NewClient(opts)

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		log.Println("Using Redis for persistence")

		return classdata.NewRedis(client), func() {
			if err := client.Close(); err != nil {
				log.Printf("Error closing Redis connection: %v", err)
			}
		}, nil

	case config.StoreSQLite:
		repo, err := classdata.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open SQLite store: %w", err)
		}
		log.Printf("Using SQLite for persistence at %s", cfg.SQLitePath)

		return repo, func() {
			if err := repo.Close(); err != nil {
				log.Printf("Error closing SQLite store: %v", err)
			}
		}, nil

	default:
		log.Println("Using in-memory persistence, class data is lost on restart")
		return classdata.NewInMemoryRepository(), func() {}, nil
	}
}

func startDiscord(cfg config.DiscordConfig, service classservice.Service) (*discordgo.Session, error) {
	log.Printf("Application ID: %s", cfg.AppID)
	if cfg.GuildID != "" {
		log.Printf("Guild ID: %s", cfg.GuildID)
	}

	dg, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	handler := discord.NewHandler(&discord.HandlerConfig{
		Classes: service,
		AppID:   cfg.AppID,
	})
	dg.AddHandler(discord.ForSession(discord.RecoverMiddleware(discord.CommandName, handler.HandleInteraction)))

	if err := dg.Open(); err != nil {
		return nil, fmt.Errorf("failed to open Discord connection: %w", err)
	}

	if err := handler.RegisterCommands(dg, cfg.GuildID); err != nil {
		_ = dg.Close()
		return nil, fmt.Errorf("failed to register commands: %w", err)
	}

	if cfg.GuildID != "" {
		log.Printf("Registered commands for guild: %s", cfg.GuildID)
	} else {
		log.Println("Registered global commands (may take up to 1 hour to propagate)")
	}
	return dg, nil
}
