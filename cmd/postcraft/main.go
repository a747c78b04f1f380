package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"postcraft/internal/api"
	"postcraft/internal/cmdlog"
	"postcraft/internal/config"
	"postcraft/internal/generate"
	"postcraft/internal/jobs"
	"postcraft/internal/llm"
	"postcraft/internal/metrics"
	"postcraft/internal/model"
	"postcraft/internal/schedule"
	"postcraft/internal/store/contentdb"
	"postcraft/internal/theme"
)

func main() {
	cmd := ""
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}
	switch cmd {
	case "init":
		cmdInit()
	case "serve":
		_ = cmdlog.Run("serve", cmdServe)
	case "generate":
		_ = cmdlog.Run("generate", cmdGenerate)
	case "schedule":
		_ = cmdlog.Run("schedule", cmdSchedule)
	default:
		printHelp()
	}
}

func printHelp() {
	theme.PrintBanner()
	fmt.Println("Usage: postcraft <command> [options]")
	fmt.Println("Commands:")
	fmt.Println("  init        Create a config file at ./postcraft.yaml")
	fmt.Println("  serve       Run the HTTP API and publish loop")
	fmt.Println("  generate    Generate one piece of content from flags")
	fmt.Println("  schedule    Show stored schedules and their next occurrence")
}

func cmdInit() {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	path := fs.String("path", "./postcraft.yaml", "path to write config")
	_ = fs.Parse(os.Args[2:])
	cfg := config.Default()
	if err := config.Save(*path, cfg); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
	abs, _ := filepath.Abs(*path)
	theme.PrintBanner()
	fmt.Println("Config written to:", abs)
}

func loadConfig(path string) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg = config.Default()
			cfg.ResolveEnv()
			return cfg, nil
		}
		return cfg, err
	}
	return cfg, nil
}

func newGenerator(cfg config.Config) *generate.Generator {
	timeout := time.Duration(cfg.LLM.TimeoutSeconds) * time.Second
	client := llm.New(cfg.LLM)
	if client == nil {
		// no provider configured; every request takes the template path
		return generate.New(nil, timeout)
	}
	return generate.New(client, timeout)
}

func cmdServe() error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	cfgPath := fs.String("config", "./postcraft.yaml", "config path")
	_ = fs.Parse(os.Args[2:])
	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		return err
	}
	db, err := contentdb.Open(cfg.Storage.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()
	metrics.StartServer(cfg.Metrics.Addr)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = jobs.RunPublishLoop(ctx, db, cfg.Publish) }()

	s := &api.Server{DB: db, Gen: newGenerator(cfg), Quota: cfg.Quota}
	r := api.NewRouter(s)
	theme.PrintBanner()
	fmt.Println("Listening on", cfg.Server.Addr)
	return r.Run(cfg.Server.Addr)
}

func cmdGenerate() error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	cfgPath := fs.String("config", "./postcraft.yaml", "config path")
	topic := fs.String("topic", "", "content topic (required)")
	plat := fs.String("platform", "twitter", "target platform")
	tone := fs.String("tone", "professional", "content tone")
	audience := fs.String("audience", "", "target audience")
	withTags := fs.Bool("hashtags", true, "include hashtags")
	_ = fs.Parse(os.Args[2:])
	if *topic == "" {
		return fmt.Errorf("missing -topic")
	}
	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		return err
	}
	gen := newGenerator(cfg)
	out, err := gen.Generate(context.Background(), model.GenerationRequest{
		Topic:           *topic,
		Platform:        model.Platform(*plat),
		Tone:            model.Tone(*tone),
		TargetAudience:  *audience,
		IncludeHashtags: *withTags,
	})
	if err != nil {
		return err
	}
	cta := generate.SuggestCTA(out.Platform, *topic, generate.RandomPicker())
	b, _ := json.MarshalIndent(struct {
		model.GeneratedContent
		CTA string `json:"suggested_cta"`
	}{out, cta}, "", "  ")
	fmt.Println(string(b))
	return nil
}

func cmdSchedule() error {
	fs := flag.NewFlagSet("schedule", flag.ExitOnError)
	cfgPath := fs.String("config", "./postcraft.yaml", "config path")
	_ = fs.Parse(os.Args[2:])
	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		return err
	}
	db, err := contentdb.Open(cfg.Storage.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()
	entries, err := db.ListSchedules(context.Background())
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	if len(entries) == 0 {
		next := schedule.NextWindow(now, cfg.Publish.QuietHours)
		fmt.Println("No schedules stored. Next posting window:", next.Format(time.RFC3339))
		return nil
	}
	for _, e := range entries {
		next := e.ScheduledAt
		if e.Recurrence != "" {
			next = schedule.NextOccurrence(e.ScheduledAt, e.Recurrence, now)
		}
		fmt.Printf("post=%s at=%s recurrence=%s next=%s\n",
			e.PostID, e.ScheduledAt.Format(time.RFC3339), e.Recurrence, next.Format(time.RFC3339))
	}
	return nil
}
