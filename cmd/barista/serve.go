package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	adapthttp "barista/internal/adapter/http"
	"barista/internal/app"
	"barista/internal/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and web screens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.serve(cmd.Context())
		},
	}
}

// checkAuthStore refuses to serve when users vanish on restart and no other
// way to sign in is configured, since setup would reopen to anyone.
func checkAuthStore(cfg *config.Config, persistentUsers bool) error {
	a := cfg.Auth
	if persistentUsers || a.Disabled || a.APIToken != "" || a.ForwardHeader || a.OIDC.Issuer != "" {
		return nil
	}
	return fmt.Errorf("store driver %q keeps users in memory: use postgres or sqlite, or set API_TOKEN, AUTH_FORWARD_HEADER, OIDC_ISSUER or AUTH_DISABLED", cfg.Store.Driver)
}

func (c *cli) serve(ctx context.Context) error {
	st, err := openStores(ctx, c.cfg, c.log)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	if err := checkAuthStore(c.cfg, st.persistentUsers); err != nil {
		return err
	}

	coffeeSvc := app.NewCoffeeService(st.coffees, c.log)
	brewSvc := app.NewBrewService()
	dashSvc := app.NewDashboardService(coffeeSvc, brewSvc)
	authSvc := app.NewAuthService(st.users, st.sessions).WithAPIToken(c.cfg.Auth.APIToken)

	o := c.cfg.Auth.OIDC
	oidcCfg, err := adapthttp.NewOIDCConfig(ctx, o.Issuer, o.ClientID, o.ClientSecret, o.RedirectURL)
	if err != nil {
		return err
	}

	srv := adapthttp.New(coffeeSvc, brewSvc, dashSvc, authSvc, c.cfg.WebDir, c.log).WithOIDC(oidcCfg)
	if c.cfg.Auth.Disabled {
		c.log.Warn("authentication disabled")
		srv.WithoutAuth()
	}
	if c.cfg.Auth.ForwardHeader {
		srv.WithForwardAuth()
	}
	if !st.persistentUsers {
		srv.WithoutSetup()
	}

	httpSrv := &http.Server{
		Addr:              c.cfg.Addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		c.log.Info("listening", zap.String("addr", c.cfg.Addr), zap.String("store", c.cfg.Store.Driver))
		errc <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	c.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpSrv.Shutdown(shutdownCtx)
}
