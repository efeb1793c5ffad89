package catalog

import "github.com/mdrakibulhaquesardar/flx-cli/pkg/config"

// Page renders the feature page for the active state-manager family.
func Page(name string, cfg config.Config) string {
	d := newCtx(name, cfg)
	if cfg.StateManager() == config.Bloc {
		return render(blocPage, d)
	}
	return render(getxPage, d)
}

// Binding renders the dependency-wiring artifact. The file exists in both
// families at the same path; only the body differs (GetX Bindings vs a
// BlocProvider wrapper widget).
func Binding(name string, cfg config.Config) string {
	d := newCtx(name, cfg)
	if cfg.StateManager() == config.Bloc {
		return render(blocBinding, d)
	}
	return render(getxBinding, d)
}
