package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"gitlab.com/babycash/clients/storefront-client/internal/application"
	"gitlab.com/babycash/clients/storefront-client/internal/domain"
	"gitlab.com/babycash/clients/storefront-client/internal/rest"
	"gitlab.com/babycash/clients/storefront-client/pkg/safego"
)

// NOTE: The App struct and NewApp function are defined in providers.go for Wire.
// This file contains methods for the App struct, like Run().

// Services exposes the per-resource REST wrappers for embedding programs.
func (a *App) Services() *rest.Services { return a.services }

// Auth exposes the authentication service.
func (a *App) Auth() *application.AuthService { return a.auth }

// Cart exposes the cart manager.
func (a *App) Cart() *application.CartManager { return a.cart }

// Sessions exposes the session manager.
func (a *App) Sessions() *application.SessionManager { return a.sessions }

// NewProductsPager builds the admin products listing. The filter is a
// case-insensitive name match applied to the loaded page.
func (a *App) NewProductsPager(pageSize int) *application.Pager[domain.Product, string] {
	return application.NewPager(application.PagerOptions[domain.Product, string]{
		Fetch: func(ctx context.Context, page, size int) (domain.Page[domain.Product], error) {
			return a.services.Products.GetAll(ctx, page, size)
		},
		Delete:   a.services.Admin.DeleteProduct,
		PageSize: pageSize,
		FilterFn: application.FilterBy(func(p domain.Product, query string) bool {
			return application.MatchesName(p.Name, query)
		}),
		ItemName:  "Product",
		Logger:    a.logger,
		Notifier:  a.notifier,
		Confirmer: a.confirmer,
	})
}

// NewBlogPostsPager builds the admin blog listing over the unpublished-inclusive feed.
func (a *App) NewBlogPostsPager(pageSize int) *application.Pager[domain.BlogPost, string] {
	return application.NewPager(application.PagerOptions[domain.BlogPost, string]{
		Fetch: func(ctx context.Context, page, size int) (domain.Page[domain.BlogPost], error) {
			return a.services.Blog.AllPostsAdmin(ctx, page, size)
		},
		Delete:   a.services.Blog.DeletePost,
		PageSize: pageSize,
		FilterFn: application.FilterBy(func(p domain.BlogPost, query string) bool {
			return application.MatchesName(p.Title, query)
		}),
		ItemName:  "Blog post",
		Logger:    a.logger,
		Notifier:  a.notifier,
		Confirmer: a.confirmer,
	})
}

// NewTestimonialsPager builds the admin testimonials listing.
func (a *App) NewTestimonialsPager(pageSize int) *application.Pager[domain.Testimonial, string] {
	return application.NewPager(application.PagerOptions[domain.Testimonial, string]{
		Fetch: func(ctx context.Context, page, size int) (domain.Page[domain.Testimonial], error) {
			return a.services.Testimonials.AllPaged(ctx, page, size)
		},
		Delete:   a.services.Testimonials.Delete,
		PageSize: pageSize,
		FilterFn: application.FilterBy(func(t domain.Testimonial, query string) bool {
			return application.MatchesName(t.Name, query)
		}),
		ItemName:  "Testimonial",
		Logger:    a.logger,
		Notifier:  a.notifier,
		Confirmer: a.confirmer,
	})
}

// NewContactMessagesPager builds the admin inbox listing, filterable by status.
func (a *App) NewContactMessagesPager(pageSize int) *application.Pager[domain.ContactMessage, domain.MessageStatus] {
	return application.NewPager(application.PagerOptions[domain.ContactMessage, domain.MessageStatus]{
		Fetch: func(ctx context.Context, page, size int) (domain.Page[domain.ContactMessage], error) {
			return a.services.Contact.MessagesPaged(ctx, page, size)
		},
		Delete:   a.services.Contact.DeleteMessage,
		PageSize: pageSize,
		FilterFn: application.FilterBy(func(m domain.ContactMessage, status domain.MessageStatus) bool {
			return status == "" || m.Status == status
		}),
		ItemName:  "Message",
		Logger:    a.logger,
		Notifier:  a.notifier,
		Confirmer: a.confirmer,
	})
}

// Run restores the local session and cart, starts the operational HTTP
// listener, and blocks until a shutdown signal arrives.
func (a *App) Run(ctx context.Context) error {
	version := "unknown"
	serviceName := "storefront-client"
	if a.configProvider != nil && a.configProvider.Get() != nil {
		configApp := a.configProvider.Get().App
		if configApp.Version != "" {
			version = configApp.Version
		}
		if configApp.ServiceName != "" {
			serviceName = configApp.ServiceName
		}
	}
	a.logger.Info(ctx, "Starting application", "service_name", serviceName, "version", version)

	a.sessions.Restore(ctx)
	if user := a.sessions.CurrentUser(); user != nil {
		a.logger.Info(ctx, "Session restored", "email", user.Email, "role", string(user.Role))
	}
	a.cart.Load(ctx)
	a.logger.Info(ctx, "Cart loaded", "items", a.cart.TotalItems())

	healthHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, `{"status":"OK"}`)
	})
	a.opsServeMux.Handle("GET /healthz", healthHandler)

	a.opsServeMux.Handle("GET /metrics", promhttp.Handler())
	a.logger.Info(ctx, "Prometheus metrics endpoint registered at /metrics")

	safego.Execute(ctx, a.logger, "SignalListenerAndGracefulShutdown", func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		select {
		case sig := <-quit:
			a.logger.Info(context.Background(), "Shutdown signal received, initiating graceful shutdown...", "signal", sig.String())
		case <-ctx.Done():
			a.logger.Info(context.Background(), "Application context cancelled, initiating graceful shutdown...")
		}

		shutdownTimeout := 30 * time.Second
		if a.configProvider != nil && a.configProvider.Get() != nil {
			configApp := a.configProvider.Get().App
			if configApp.ShutdownTimeoutSeconds > 0 {
				shutdownTimeout = time.Duration(configApp.ShutdownTimeoutSeconds) * time.Second
			}
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := a.opsServer.Shutdown(shutdownCtx); err != nil {
			a.logger.Error(context.Background(), "Ops server graceful shutdown failed", "error", err.Error())
		}
		a.logger.Info(context.Background(), "Ops server shut down.")
	})

	a.logger.Info(ctx, fmt.Sprintf("Ops server listening on port %d", a.configProvider.Get().App.OpsPort))
	if err := a.opsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		a.logger.Error(ctx, "Ops server ListenAndServe error", "error", err.Error())
		return fmt.Errorf("failed to start ops server: %w", err)
	}

	a.logger.Info(ctx, "Application shut down gracefully or server closed.")
	return nil
}
