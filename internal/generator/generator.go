package generator

import (
	"errors"
	"fmt"
	"log/slog"
	"path"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"

	"github.com/mdrakibulhaquesardar/flx-cli/internal/catalog"
	"github.com/mdrakibulhaquesardar/flx-cli/pkg/config"
	"github.com/mdrakibulhaquesardar/flx-cli/pkg/names"
)

// ErrEmptyName is returned when a generation operation receives an empty or
// whitespace-only entity name. No directory or file is created in that case.
var ErrEmptyName = errors.New("entity name must not be empty")

const (
	featureRoot = "lib/features"
	sharedRoot  = "lib/shared"
)

// Generator plans and writes scaffolded trees for one configuration. All
// operations are sequential; nothing is shared across invocations.
type Generator struct {
	fs   afero.Fs
	root string
	cfg  config.Config
}

// New returns a Generator writing below root on fs.
func New(fs afero.Fs, root string, cfg config.Config) *Generator {
	return &Generator{fs: fs, root: root, cfg: cfg}
}

// PlanFeature computes the full-feature mapping: eight fixed artifacts plus
// the state-manager family (one controller file, or the bloc/event/state
// triple). Pure; the only failure is a blank name.
func (g *Generator) PlanFeature(name string) (*FileSet, error) {
	if names.IsBlank(name) {
		return nil, ErrEmptyName
	}
	s := names.ToSnake(name)
	root := path.Join(featureRoot, s)
	set := NewFileSet()

	set.Add(path.Join(root, "domain/entities", s+"_entity.dart"), catalog.Entity(name, g.cfg))
	set.Add(path.Join(root, "data/models", s+"_model.dart"), catalog.Model(name, g.cfg))
	set.Add(path.Join(root, "domain/repositories", s+"_repository.dart"), catalog.Repository(name, g.cfg))
	set.Add(path.Join(root, "data/repositories", s+"_repository_impl.dart"), catalog.RepositoryImpl(name, g.cfg))
	set.Add(path.Join(root, "data/datasources", s+"_remote_data_source.dart"), catalog.DataSource(name, g.cfg))
	set.Add(path.Join(root, "domain/usecases", "get_"+s+"_usecase.dart"), catalog.UseCase(name, g.cfg))
	set.Add(path.Join(root, "presentation/pages", s+"_page.dart"), catalog.Page(name, g.cfg))
	set.Add(path.Join(root, "presentation/bindings", s+"_binding.dart"), catalog.Binding(name, g.cfg))

	if g.cfg.StateManager() == config.Bloc {
		set.Add(path.Join(root, "presentation/bloc", s+"_bloc.dart"), catalog.Bloc(name, g.cfg))
		set.Add(path.Join(root, "presentation/bloc", s+"_event.dart"), catalog.BlocEvent(name, g.cfg))
		set.Add(path.Join(root, "presentation/bloc", s+"_state.dart"), catalog.BlocState(name, g.cfg))
	} else {
		set.Add(path.Join(root, "presentation/controllers", s+"_controller.dart"), catalog.Controller(name, g.cfg))
	}
	return set, nil
}

// PlanScreen computes the reduced presentation-only mapping with
// dependency-free bodies.
func (g *Generator) PlanScreen(name string) (*FileSet, error) {
	if names.IsBlank(name) {
		return nil, ErrEmptyName
	}
	s := names.ToSnake(name)
	root := path.Join(featureRoot, s, "presentation")
	set := NewFileSet()

	set.Add(path.Join(root, "pages", s+"_page.dart"), catalog.ScreenPage(name, g.cfg))
	if g.cfg.StateManager() == config.Bloc {
		set.Add(path.Join(root, "bloc", s+"_bloc.dart"), catalog.ScreenBloc(name, g.cfg))
		set.Add(path.Join(root, "bloc", s+"_event.dart"), catalog.ScreenBlocEvent(name, g.cfg))
		set.Add(path.Join(root, "bloc", s+"_state.dart"), catalog.ScreenBlocState(name, g.cfg))
	} else {
		set.Add(path.Join(root, "bindings", s+"_binding.dart"), catalog.ScreenBinding(name, g.cfg))
		set.Add(path.Join(root, "controllers", s+"_controller.dart"), catalog.ScreenController(name, g.cfg))
	}
	return set, nil
}

// PlanModel computes the single shared-root model file.
func (g *Generator) PlanModel(name string) (*FileSet, error) {
	if names.IsBlank(name) {
		return nil, ErrEmptyName
	}
	s := names.ToSnake(name)
	set := NewFileSet()
	set.Add(path.Join(sharedRoot, "models", s+"_model.dart"), catalog.Model(name, g.cfg))
	return set, nil
}

// PlanUseCase computes the single shared-root use case file.
func (g *Generator) PlanUseCase(name string) (*FileSet, error) {
	if names.IsBlank(name) {
		return nil, ErrEmptyName
	}
	s := names.ToSnake(name)
	set := NewFileSet()
	set.Add(path.Join(sharedRoot, "usecases", "get_"+s+"_usecase.dart"), catalog.UseCase(name, g.cfg))
	return set, nil
}

// PlanRepository computes the shared-root interface/implementation pair.
func (g *Generator) PlanRepository(name string) (*FileSet, error) {
	if names.IsBlank(name) {
		return nil, ErrEmptyName
	}
	s := names.ToSnake(name)
	set := NewFileSet()
	set.Add(path.Join(sharedRoot, "repositories", s+"_repository.dart"), catalog.Repository(name, g.cfg))
	set.Add(path.Join(sharedRoot, "repositories", s+"_repository_impl.dart"), catalog.RepositoryImpl(name, g.cfg))
	return set, nil
}

// Write materializes the plan: every parent directory is created first
// (existing directories are not an error), then each file is written in
// plan order, overwriting whatever is there. Nothing already written is
// undone on failure; every path is attempted exactly once and per-path
// failures are aggregated. The returned slice holds the paths that were
// written, in order, even when err is non-nil.
func (g *Generator) Write(set *FileSet) ([]string, error) {
	var result *multierror.Error

	for _, d := range set.Dirs() {
		dir := filepath.Join(g.root, filepath.FromSlash(d))
		if err := g.fs.MkdirAll(dir, 0o755); err != nil {
			result = multierror.Append(result, fmt.Errorf("create directory %s: %w", d, err))
		}
	}

	written := make([]string, 0, set.Len())
	for _, f := range set.Files() {
		target := filepath.Join(g.root, filepath.FromSlash(f.Path))
		if err := afero.WriteFile(g.fs, target, []byte(f.Content), 0o644); err != nil {
			result = multierror.Append(result, fmt.Errorf("write %s: %w", f.Path, err))
			continue
		}
		slog.Debug("wrote file", "path", f.Path, "bytes", len(f.Content))
		written = append(written, f.Path)
	}

	return written, result.ErrorOrNil()
}

// Feature plans and writes a full feature, returning the written paths.
func (g *Generator) Feature(name string) ([]string, error) {
	return g.run(g.PlanFeature, name)
}

// Screen plans and writes a standalone screen.
func (g *Generator) Screen(name string) ([]string, error) {
	return g.run(g.PlanScreen, name)
}

// Model plans and writes a shared model.
func (g *Generator) Model(name string) ([]string, error) {
	return g.run(g.PlanModel, name)
}

// UseCase plans and writes a shared use case.
func (g *Generator) UseCase(name string) ([]string, error) {
	return g.run(g.PlanUseCase, name)
}

// Repository plans and writes a shared repository pair.
func (g *Generator) Repository(name string) ([]string, error) {
	return g.run(g.PlanRepository, name)
}

func (g *Generator) run(plan func(string) (*FileSet, error), name string) ([]string, error) {
	set, err := plan(name)
	if err != nil {
		return nil, err
	}
	return g.Write(set)
}
