package main

import (
	"bufio"
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/wealthZoneai/benjour-customer-sub000/internal/adminwatch"
	"github.com/wealthZoneai/benjour-customer-sub000/internal/audit"
	"github.com/wealthZoneai/benjour-customer-sub000/internal/client"
	"github.com/wealthZoneai/benjour-customer-sub000/internal/config"
	"github.com/wealthZoneai/benjour-customer-sub000/internal/feed"
	"github.com/wealthZoneai/benjour-customer-sub000/internal/notify"
	"github.com/wealthZoneai/benjour-customer-sub000/internal/session"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load(os.Getenv("BENJOUR_CONFIG"))
	if err != nil {
		log.Fatalf("[OrderWatch] Failed to load config: %v", err)
	}

	sessionPath := cfg.SessionFile
	if sessionPath == "" {
		sessionPath, err = session.DefaultPath()
		if err != nil {
			log.Fatalf("[OrderWatch] Failed to resolve session path: %v", err)
		}
	}

	sessions, err := session.NewManager(session.NewFileStore(sessionPath))
	if err != nil {
		log.Fatalf("[OrderWatch] Failed to load session: %v", err)
	}

	api := client.New(cfg.BackendURL, sessions, nil)

	// Credentials from the environment take precedence over a persisted
	// session, so the daemon can run unattended.
	if email := os.Getenv("BENJOUR_EMAIL"); email != "" {
		result, err := api.Login(ctx, email, os.Getenv("BENJOUR_PASSWORD"))
		if err != nil {
			log.Fatalf("[OrderWatch] Login failed: %v", err)
		}
		if err := sessions.Login(session.Session{
			Token:    result.Token,
			Role:     result.Role,
			UserName: result.UserName,
		}); err != nil {
			log.Fatalf("[OrderWatch] Failed to persist session: %v", err)
		}
	}

	current := sessions.Current()
	if !current.LoggedIn() {
		log.Fatal("[OrderWatch] No session; set BENJOUR_EMAIL and BENJOUR_PASSWORD or sign in with shopctl")
	}
	if !current.IsAdmin() {
		log.Fatalf("[OrderWatch] Session role is %q; the order watch requires the admin role", current.Role)
	}

	notifier := &notify.LogNotifier{Component: "OrderWatch"}

	var sinks []adminwatch.Sink
	if cfg.DatabaseURL != "" {
		trail, err := audit.Open(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("[OrderWatch] Failed to open audit trail: %v", err)
		}
		defer trail.Close()
		sinks = append(sinks, trail)
		log.Println("[OrderWatch] Audit trail: PostgreSQL")
	}
	if cfg.FeedEnabled() {
		producer := feed.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer producer.Close()
		sinks = append(sinks, producer)
		log.Printf("[OrderWatch] Event feed: Kafka topic %s", cfg.KafkaTopic)
	}

	watcher := adminwatch.New(api, sessions, notifier, adminwatch.Config{
		PollInterval: cfg.PollInterval(),
		Countdown:    cfg.Countdown(),
	}, sinks...)

	log.Println("[OrderWatch] ========================================")
	log.Printf("[OrderWatch] Watching %s as %s", cfg.BackendURL, current.UserName)
	log.Printf("[OrderWatch] Poll every %s, auto-accept after %s", cfg.PollInterval(), cfg.Countdown())
	log.Println("[OrderWatch] Commands: accept | reject | dismiss")
	log.Println("[OrderWatch] ========================================")

	if err := watcher.Start(ctx); err != nil {
		log.Fatalf("[OrderWatch] Failed to start watcher: %v", err)
	}

	// Operator decisions arrive on stdin; the countdown handles the rest.
	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			var err error
			switch strings.TrimSpace(scanner.Text()) {
			case "accept":
				err = watcher.Accept(ctx)
			case "reject":
				err = watcher.Reject(ctx)
			case "dismiss", "close":
				err = watcher.Dismiss(ctx)
			case "":
				continue
			default:
				log.Println("[OrderWatch] Unknown command; use accept, reject or dismiss")
				continue
			}
			if err != nil {
				log.Printf("[OrderWatch] %v", err)
			}
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[OrderWatch] Shutting down...")
	watcher.Stop()
}
