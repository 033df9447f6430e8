// Command storefront is a terminal front end for the e-commerce backend:
// catalog browsing, cart, wishlist and checkout against the remote API.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/creastat/storefront"
	"github.com/creastat/storefront/api"
	"github.com/creastat/storefront/cart"
	"github.com/creastat/storefront/config"
	"github.com/creastat/storefront/guard"
	"github.com/creastat/storefront/session"
	"github.com/creastat/storefront/wishlist"
)

// app wires the storefront components for the command handlers. It is built
// once in the root command's pre-run and injected nowhere else; commands are
// its only consumers.
type app struct {
	cfg      config.Config
	log      *zap.Logger
	sessions session.Store
	backend  *api.Client
	cart     *cart.Synchronizer
	wishlist *wishlist.Synchronizer
	guard    *guard.Guard
}

var (
	cfgPath string
	verbose bool

	a app
)

var rootCmd = &cobra.Command{
	Use:           "storefront",
	Short:         "Shop the catalog, cart and wishlist from the terminal",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return a.init()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		a.close()
	},
}

func main() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default ~/.storefront/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errStyle.Render("error: "+err.Error()))
		os.Exit(1)
	}
}

// init builds the session store, backend client, synchronizers and route
// guard from the configuration.
func (a *app) init() error {
	path := cfgPath
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		path = filepath.Join(home, ".storefront", "config.yaml")
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if verbose {
		log, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		a.log = log
	} else {
		a.log = zap.NewNop()
	}

	a.sessions, err = newSessionStore(cfg.Session)
	if err != nil {
		return fmt.Errorf("open session store: %w", err)
	}

	a.backend, err = api.New(api.Config{
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout,
		Tokens:  session.NewSource(a.sessions),
		Logger:  a.log,
	})
	if err != nil {
		return fmt.Errorf("create backend client: %w", err)
	}

	a.cart = cart.New(a.backend, cart.WithLogger(a.log))
	a.wishlist = wishlist.New(a.backend, wishlist.WithLogger(a.log))
	a.guard = guard.New(a.sessions)
	return nil
}

func (a *app) close() {
	if a.sessions != nil {
		_ = a.sessions.Close()
	}
	if a.log != nil {
		_ = a.log.Sync()
	}
}

// newSessionStore builds the configured session driver.
func newSessionStore(cfg config.SessionConfig) (session.Store, error) {
	switch session.StoreType(cfg.Driver) {
	case session.StoreTypeMemory:
		return session.NewStore(session.StoreTypeMemory)

	case session.StoreTypeFile:
		var opts []session.StoreOption
		if cfg.File != "" {
			opts = append(opts, session.WithFilePath(cfg.File))
		}
		return session.NewStore(session.StoreTypeFile, opts...)

	case session.StoreTypeRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		return session.NewStore(session.StoreTypeRedis,
			session.WithRedisClient(client),
			session.WithRedisTTL(cfg.Redis.TTL))

	default:
		return nil, fmt.Errorf("%w: session driver %q", storefront.ErrInvalidStoreType, cfg.Driver)
	}
}

// requireAuth runs the requested route through the guard. Unauthenticated
// access resolves to the login view and no backend fetch is issued.
func (a *app) requireAuth(ctx context.Context, route string) error {
	resolved, err := a.guard.Resolve(ctx, route)
	if err != nil {
		return err
	}
	if resolved == guard.LoginPath {
		return fmt.Errorf("%w: run 'storefront login' first", storefront.ErrNotAuthenticated)
	}
	return nil
}
