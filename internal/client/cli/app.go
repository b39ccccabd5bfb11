// Package cli implements the interactive fileblock client: a small REPL
// over the extension service, mirroring the browser UI's flows (toggle and
// save the fixed catalog, edit the custom list, drop-test file names).
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/dmitrijs2005/fileblock/internal/client/client"
	"github.com/dmitrijs2005/fileblock/internal/client/config"
	"github.com/dmitrijs2005/fileblock/internal/client/services"
)

type App struct {
	config  *config.Config
	service *services.ExtensionService
	policy  *services.Policy
	out     io.Writer
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	repos, err := client.InitDatabase(ctx, c.DatabaseDSN)
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	apiClient := client.NewAPIClient(c.ServerEndpointAddr)
	svc := services.NewExtensionService(apiClient, repos)

	return &App{config: c, service: svc, out: os.Stdout}, nil
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format+"\n", args...)
}

// Reload fetches a fresh policy snapshot from the server and replaces the
// current one.
func (a *App) Reload(ctx context.Context) error {
	p, err := a.service.Load(ctx)
	if err != nil {
		a.printf("load failed: %v", err)
		return err
	}
	a.policy = p
	a.printf("policy loaded: %d fixed, %d custom", len(p.Fixed), len(p.Custom))
	return nil
}

// loadOrFallback tries the server first and falls back to the locally
// cached snapshot when the server is unreachable.
func (a *App) loadOrFallback(ctx context.Context) {
	if err := a.Reload(ctx); err == nil {
		return
	}

	cached, err := a.service.CachedPolicy(ctx)
	if err != nil || cached == nil {
		a.printf("no cached policy available; use 'reload' once the server is reachable")
		return
	}
	a.policy = cached
	a.printf("using cached policy: %d fixed, %d custom", len(cached.Fixed), len(cached.Custom))
}

func (a *App) hasPolicy() bool {
	if a.policy == nil {
		a.printf("no policy loaded; run 'reload' first")
		return false
	}
	return true
}

func (a *App) List(ctx context.Context) error {
	if !a.hasPolicy() {
		return errors.New("no policy")
	}

	a.printf("Fixed extensions:")
	for _, e := range a.policy.Fixed {
		mark := " "
		if e.IsBlocked {
			mark = "x"
		}
		a.printf("  [%s] %s", mark, e.Name)
	}

	a.printf("Custom extensions (%d/200):", len(a.policy.Custom))
	for _, e := range a.policy.Custom {
		a.printf("  %s  %s", e.ID, e.Name)
	}
	return nil
}

func (a *App) Toggle(ctx context.Context, name string) error {
	if !a.hasPolicy() {
		return errors.New("no policy")
	}

	if !a.service.Toggle(a.policy, name) {
		a.printf("%q is not a fixed catalog extension", name)
		return errors.New("not in catalog")
	}
	a.printf("toggled %q (unsaved; run 'save' to persist)", name)
	return nil
}

func (a *App) Save(ctx context.Context) error {
	if !a.hasPolicy() {
		return errors.New("no policy")
	}

	if err := a.service.SaveFixed(ctx, a.policy); err != nil {
		a.printf("save failed: %v", err)
		return err
	}
	a.printf("fixed extension policy saved")
	return nil
}

func (a *App) Add(ctx context.Context, name string) error {
	if !a.hasPolicy() {
		return errors.New("no policy")
	}

	created, err := a.service.AddCustom(ctx, a.policy, name)
	if err != nil {
		a.printf("add failed: %v", err)
		return err
	}
	a.printf("added %q (id %s)", created.Name, created.ID)
	return nil
}

func (a *App) Remove(ctx context.Context, id string) error {
	if !a.hasPolicy() {
		return errors.New("no policy")
	}

	if err := a.service.RemoveCustom(ctx, a.policy, id); err != nil {
		a.printf("remove failed: %v", err)
		return err
	}
	a.printf("removed %s", id)
	return nil
}

func (a *App) Check(ctx context.Context, fileNames []string) error {
	if !a.hasPolicy() {
		return errors.New("no policy")
	}

	for _, r := range a.service.Check(a.policy, fileNames) {
		if r.Blocked {
			a.printf("%s : BLOCKED (%s)", r.FileName, r.Extension)
		} else if r.Extension == "" {
			a.printf("%s : allowed (no extension)", r.FileName)
		} else {
			a.printf("%s : allowed (%s)", r.FileName, r.Extension)
		}
	}
	return nil
}

func (a *App) Run(ctx context.Context) {
	a.loadOrFallback(ctx)
	runREPL(ctx, a, newStdinScanner())
}
