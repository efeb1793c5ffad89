package generator

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/mdrakibulhaquesardar/flx-cli/pkg/config"
)

func newMem(cfg config.Config) (*Generator, afero.Fs) {
	fs := afero.NewMemMapFs()
	return New(fs, ".", cfg), fs
}

func blocConfig() config.Config {
	c := config.Default()
	c.DefaultStateManager = config.Bloc
	return c
}

func TestFeaturePlanDefaultConfig(t *testing.T) {
	g, _ := newMem(config.Default())
	set, err := g.PlanFeature("auth")
	require.NoError(t, err)

	want := []string{
		"lib/features/auth/domain/entities/auth_entity.dart",
		"lib/features/auth/data/models/auth_model.dart",
		"lib/features/auth/domain/repositories/auth_repository.dart",
		"lib/features/auth/data/repositories/auth_repository_impl.dart",
		"lib/features/auth/data/datasources/auth_remote_data_source.dart",
		"lib/features/auth/domain/usecases/get_auth_usecase.dart",
		"lib/features/auth/presentation/pages/auth_page.dart",
		"lib/features/auth/presentation/bindings/auth_binding.dart",
		"lib/features/auth/presentation/controllers/auth_controller.dart",
	}
	require.Equal(t, want, set.Paths())
	for _, p := range set.Paths() {
		require.NotContains(t, p, "/bloc/")
	}
}

func TestFeaturePlanBlocConfig(t *testing.T) {
	g, _ := newMem(blocConfig())
	set, err := g.PlanFeature("auth")
	require.NoError(t, err)
	require.Equal(t, 11, set.Len())

	paths := set.Paths()
	require.Contains(t, paths, "lib/features/auth/presentation/bloc/auth_bloc.dart")
	require.Contains(t, paths, "lib/features/auth/presentation/bloc/auth_event.dart")
	require.Contains(t, paths, "lib/features/auth/presentation/bloc/auth_state.dart")
	for _, p := range paths {
		require.NotContains(t, p, "controllers")
	}
}

func TestFeatureWrite(t *testing.T) {
	g, fs := newMem(config.Default())
	written, err := g.Feature("user_profile")
	require.NoError(t, err)
	require.Len(t, written, 9)

	for _, p := range written {
		ok, err := afero.Exists(fs, p)
		require.NoError(t, err)
		require.True(t, ok, "expected %s on disk", p)
	}

	data, err := afero.ReadFile(fs, "lib/features/user_profile/domain/entities/user_profile_entity.dart")
	require.NoError(t, err)
	require.Contains(t, string(data), "UserProfileEntity")
}

func TestWriteIsIdempotent(t *testing.T) {
	g, fs := newMem(blocConfig())
	first, err := g.Feature("auth")
	require.NoError(t, err)

	snapshot := make(map[string]string, len(first))
	for _, p := range first {
		b, err := afero.ReadFile(fs, p)
		require.NoError(t, err)
		snapshot[p] = string(b)
	}

	second, err := g.Feature("auth")
	require.NoError(t, err)
	require.Equal(t, first, second)
	for _, p := range second {
		b, err := afero.ReadFile(fs, p)
		require.NoError(t, err)
		require.Equal(t, snapshot[p], string(b), "content diverged on second run: %s", p)
	}
}

func TestWriteOverwritesManualEdits(t *testing.T) {
	g, fs := newMem(config.Default())
	_, err := g.Model("auth")
	require.NoError(t, err)

	target := "lib/shared/models/auth_model.dart"
	require.NoError(t, afero.WriteFile(fs, target, []byte("edited by hand"), 0o644))

	_, err = g.Model("auth")
	require.NoError(t, err)
	b, err := afero.ReadFile(fs, target)
	require.NoError(t, err)
	require.NotEqual(t, "edited by hand", string(b))
}

func TestScreenPlans(t *testing.T) {
	g, _ := newMem(config.Default())
	set, err := g.PlanScreen("login")
	require.NoError(t, err)
	require.Equal(t, []string{
		"lib/features/login/presentation/pages/login_page.dart",
		"lib/features/login/presentation/bindings/login_binding.dart",
		"lib/features/login/presentation/controllers/login_controller.dart",
	}, set.Paths())

	g, _ = newMem(blocConfig())
	set, err = g.PlanScreen("login")
	require.NoError(t, err)
	require.Equal(t, []string{
		"lib/features/login/presentation/pages/login_page.dart",
		"lib/features/login/presentation/bloc/login_bloc.dart",
		"lib/features/login/presentation/bloc/login_event.dart",
		"lib/features/login/presentation/bloc/login_state.dart",
	}, set.Paths())
}

func TestSharedRootPlans(t *testing.T) {
	g, _ := newMem(config.Default())

	set, err := g.PlanModel("user_profile")
	require.NoError(t, err)
	require.Equal(t, []string{"lib/shared/models/user_profile_model.dart"}, set.Paths())

	set, err = g.PlanUseCase("user_profile")
	require.NoError(t, err)
	require.Equal(t, []string{"lib/shared/usecases/get_user_profile_usecase.dart"}, set.Paths())

	set, err = g.PlanRepository("user_profile")
	require.NoError(t, err)
	require.Equal(t, []string{
		"lib/shared/repositories/user_profile_repository.dart",
		"lib/shared/repositories/user_profile_repository_impl.dart",
	}, set.Paths())
}

func TestBlankNameRejectedBeforeIO(t *testing.T) {
	g, fs := newMem(config.Default())
	for _, name := range []string{"", "   ", "\t"} {
		_, err := g.Model(name)
		require.ErrorIs(t, err, ErrEmptyName)
	}

	// nothing may exist, not even lib/
	ok, err := afero.DirExists(fs, "lib")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestVerify(t *testing.T) {
	g, fs := newMem(config.Default())
	set, err := g.PlanFeature("auth")
	require.NoError(t, err)

	// nothing written yet: every file is missing
	err = g.Verify(set)
	require.Error(t, err)

	_, err = g.Write(set)
	require.NoError(t, err)
	require.NoError(t, g.Verify(set))

	// mutate one file and the verify error names it
	target := "lib/features/auth/presentation/pages/auth_page.dart"
	require.NoError(t, afero.WriteFile(fs, target, []byte("drift"), 0o644))
	err = g.Verify(set)
	require.Error(t, err)
	require.Contains(t, err.Error(), target)
}

func TestWriteReportsPerPathFailure(t *testing.T) {
	cfg := config.Default()
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	g := New(fs, ".", cfg)

	set, err := g.PlanModel("auth")
	require.NoError(t, err)

	written, err := g.Write(set)
	require.Error(t, err)
	require.Empty(t, written)
	require.Contains(t, err.Error(), "auth_model.dart")
}
