package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/umputun/nightlight/app/server"
	"github.com/umputun/nightlight/app/theme"
)

var opts struct {
	Server struct {
		Address         string        `long:"address" env:"ADDRESS" default:":8080" description:"server listen address"`
		ReadTimeout     time.Duration `long:"read-timeout" env:"READ_TIMEOUT" default:"5s" description:"read timeout"`
		WriteTimeout    time.Duration `long:"write-timeout" env:"WRITE_TIMEOUT" default:"30s" description:"write timeout"`
		IdleTimeout     time.Duration `long:"idle-timeout" env:"IDLE_TIMEOUT" default:"30s" description:"idle timeout"`
		ShutdownTimeout time.Duration `long:"shutdown-timeout" env:"SHUTDOWN_TIMEOUT" default:"5s" description:"graceful shutdown timeout"`
		BaseURL         string        `long:"base-url" env:"BASE_URL" description:"base URL path for reverse proxy (e.g., /nightlight)"`
		Title           string        `long:"title" env:"TITLE" default:"nightlight" description:"page title"`
		WasmDir         string        `long:"wasm-dir" env:"WASM_DIR" description:"directory with nightlight.wasm and wasm_exec.js"`
		RequestsPerSec  int64         `long:"rps" env:"RPS" default:"1000" description:"max requests per second"`
	} `group:"server" namespace:"server" env-namespace:"NIGHTLIGHT_SERVER"`

	Theme struct {
		StorageKey string `long:"key" env:"KEY" default:"darkMode" description:"storage key of the dark mode preference"`
		RootClass  string `long:"root-class" env:"ROOT_CLASS" default:"dark-mode" description:"body class set in dark mode"`
		IconID     string `long:"icon-id" env:"ICON_ID" default:"toggle-icon" description:"id of the toggle icon"`
		SunClass   string `long:"sun-class" env:"SUN_CLASS" default:"fa-sun" description:"icon class in light mode"`
		MoonClass  string `long:"moon-class" env:"MOON_CLASS" default:"fa-moon" description:"icon class in dark mode"`
	} `group:"theme" namespace:"theme" env-namespace:"NIGHTLIGHT_THEME"`

	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `long:"version" description:"show version and exit"`
}

var revision = "unknown"

func main() {
	banner(revision)

	p := flags.NewParser(&opts, flags.PassDoubleDash|flags.HelpFlag)
	if _, err := p.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			p.WriteHelp(os.Stderr)
			os.Exit(2)
		}
		fmt.Printf("%v\n", err)
		os.Exit(1)
	}

	if opts.Version {
		os.Exit(0)
	}

	setupLogs(opts.Debug)

	defer func() {
		if x := recover(); x != nil {
			log.Printf("[WARN] run time panic:\n%v", x)
			panic(x)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	signals(cancel)

	if err := run(ctx); err != nil {
		log.Printf("[ERROR] failed: %v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	baseURL, err := validateBaseURL(opts.Server.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}

	log.Printf("[INFO] starting nightlight server on %s", opts.Server.Address)
	if opts.Server.WasmDir != "" {
		log.Printf("[INFO] serving wasm client from %s", opts.Server.WasmDir)
	}

	srv, err := server.New(server.Config{
		Address:         opts.Server.Address,
		ReadTimeout:     opts.Server.ReadTimeout,
		WriteTimeout:    opts.Server.WriteTimeout,
		IdleTimeout:     opts.Server.IdleTimeout,
		ShutdownTimeout: opts.Server.ShutdownTimeout,
		Version:         revision,
		BaseURL:         baseURL,
		Title:           opts.Server.Title,
		WasmDir:         opts.Server.WasmDir,
		RequestsPerSec:  opts.Server.RequestsPerSec,
		Theme: theme.Config{
			StorageKey: opts.Theme.StorageKey,
			RootClass:  opts.Theme.RootClass,
			IconID:     opts.Theme.IconID,
			SunClass:   opts.Theme.SunClass,
			MoonClass:  opts.Theme.MoonClass,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// validateBaseURL normalizes the base URL: adds leading slash, strips trailing one.
// Empty is allowed and means no prefix.
func validateBaseURL(baseURL string) (string, error) {
	if baseURL == "" {
		return "", nil
	}
	if strings.ContainsAny(baseURL, "?#") || strings.Contains(baseURL, "://") {
		return "", fmt.Errorf("base URL must be a path, got %q", baseURL)
	}
	if !strings.HasPrefix(baseURL, "/") {
		baseURL = "/" + baseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")
	return baseURL, nil
}

func banner(rev string) {
	fmt.Printf("nightlight %s\n", rev)
}

func setupLogs(dbg bool) {
	log.Setup(log.Msec)
	if dbg {
		log.Setup(log.Debug, log.CallerFunc, log.CallerPkg, log.CallerFile)
	}
}

func signals(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	go func() {
		stacktrace := make([]byte, 8192)
		for sig := range sigChan {
			switch sig {
			case syscall.SIGQUIT:
				length := runtime.Stack(stacktrace, true)
				fmt.Println(string(stacktrace[:length]))
			case syscall.SIGTERM, syscall.SIGINT:
				cancel()
			}
		}
	}()
	signal.Notify(sigChan, syscall.SIGQUIT, syscall.SIGTERM, syscall.SIGINT)
}
