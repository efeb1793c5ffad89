package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/mdrakibulhaquesardar/flx-cli/pkg/config"
)

// chdir mirrors testing.T.Chdir, which needs Go 1.24+.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Errorf("restoring working directory: %v", err)
		}
	})
}

func TestFeatureCommandWritesTree(t *testing.T) {
	chdir(t, t.TempDir())
	out := t.TempDir()

	cmd := NewFeatureCommand()
	cmd.SetArgs([]string{"auth", "--output", out})
	require.NoError(t, cmd.Execute())

	controller := filepath.Join(out, "lib", "features", "auth", "presentation", "controllers", "auth_controller.dart")
	data, err := os.ReadFile(controller)
	require.NoError(t, err)
	require.Contains(t, string(data), "class AuthController")
}

func TestFeatureCommandHonorsConfigFile(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, os.WriteFile(config.FileName, []byte(`{"defaultStateManager":"bloc"}`), 0o644))
	out := t.TempDir()

	cmd := NewFeatureCommand()
	cmd.SetArgs([]string{"auth", "--output", out})
	require.NoError(t, cmd.Execute())

	bloc := filepath.Join(out, "lib", "features", "auth", "presentation", "bloc", "auth_bloc.dart")
	_, err := os.Stat(bloc)
	require.NoError(t, err)

	controllers := filepath.Join(out, "lib", "features", "auth", "presentation", "controllers")
	_, err = os.Stat(controllers)
	require.True(t, os.IsNotExist(err))
}

func TestCheckFlag(t *testing.T) {
	chdir(t, t.TempDir())
	out := t.TempDir()

	write := NewModelCommand()
	write.SetArgs([]string{"auth", "--output", out})
	require.NoError(t, write.Execute())

	check := NewModelCommand()
	check.SetArgs([]string{"auth", "--output", out, "--check"})
	require.NoError(t, check.Execute())

	target := filepath.Join(out, "lib", "shared", "models", "auth_model.dart")
	require.NoError(t, os.WriteFile(target, []byte("drift"), 0o644))

	stale := NewModelCommand()
	stale.SetArgs([]string{"auth", "--output", out, "--check"})
	require.Error(t, stale.Execute())
}

func TestGenerateRejectsBlankName(t *testing.T) {
	chdir(t, t.TempDir())
	cmd := NewUseCaseCommand()
	cmd.SetArgs([]string{"   "})
	require.Error(t, cmd.Execute())
}

func TestConfigCommandPromptDeclined(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, os.WriteFile(config.FileName, []byte(`{"author":"original"}`), 0o644))

	cmd := NewConfigCommand()
	cmd.SetArgs([]string{"--author", "someone else"})
	cmd.SetIn(strings.NewReader("n\n"))
	var out bytes.Buffer
	cmd.SetOut(&out)
	require.NoError(t, cmd.Execute())
	require.Contains(t, out.String(), "aborted")

	data, err := os.ReadFile(config.FileName)
	require.NoError(t, err)
	require.Contains(t, string(data), "original")
}

func TestConfigCommandForce(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, os.WriteFile(config.FileName, []byte(`{}`), 0o644))

	cmd := NewConfigCommand()
	cmd.SetArgs([]string{"--state-manager", "bloc", "--author", "Rakib", "--force"})
	var out bytes.Buffer
	cmd.SetOut(&out)
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(config.FileName)
	require.NoError(t, err)
	require.Contains(t, string(data), `"defaultStateManager": "bloc"`)
	require.Contains(t, string(data), `"author": "Rakib"`)
}

func TestConfigCommandEquatableSelectsFamily(t *testing.T) {
	chdir(t, t.TempDir())

	cmd := NewConfigCommand()
	cmd.SetArgs([]string{"--equatable", "--force"})
	var out bytes.Buffer
	cmd.SetOut(&out)
	require.NoError(t, cmd.Execute())

	// the flag must observably switch the family away from the immutable default
	cfg, err := config.Load(afero.NewOsFs(), ".")
	require.NoError(t, err)
	require.False(t, cfg.UseImmutableModels)
	require.True(t, cfg.UseValueEquality)
	require.Equal(t, config.Equatable, cfg.ModelStyle())
}

func TestConfigCommandFreezedWinsWhenBothGiven(t *testing.T) {
	chdir(t, t.TempDir())

	cmd := NewConfigCommand()
	cmd.SetArgs([]string{"--equatable", "--freezed", "--force"})
	var out bytes.Buffer
	cmd.SetOut(&out)
	require.NoError(t, cmd.Execute())

	cfg, err := config.Load(afero.NewOsFs(), ".")
	require.NoError(t, err)
	require.Equal(t, config.Freezed, cfg.ModelStyle())
	require.False(t, cfg.UseValueEquality)
}

func TestConfigCommandRejectsUnknownStateManager(t *testing.T) {
	chdir(t, t.TempDir())
	cmd := NewConfigCommand()
	cmd.SetArgs([]string{"--state-manager", "mobx", "--force"})
	require.Error(t, cmd.Execute())
}
