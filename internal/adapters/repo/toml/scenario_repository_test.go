package toml

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/malaria-prevalence/internal/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) (*ScenarioRepository, string) {
	t.Helper()

	scenarioPath := filepath.Join(t.TempDir(), "scenario.toml")
	config := viper.New()
	config.Set(ScenarioPathKey, scenarioPath)

	repo, err := NewScenarioRepository(config)
	require.NoError(t, err)
	return repo, scenarioPath
}

func TestScenarioRepositoryLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultScenario(), got)
}

func TestScenarioRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	repo, scenarioPath := newTestRepository(t)

	scenario := domain.DefaultScenario()
	scenario.TotalMosquitoes = 500
	scenario.T0Infected = 0
	scenario.BitingRate = 2.5
	scenario.DeathRate = 0.1
	scenario.Seed = 99
	scenario.ReportPerson = 0
	scenario.AgeBands = []domain.AgeBand{{From: 0, To: 4, Count: 10}, {From: 5, To: 80, Count: 2}}

	require.NoError(t, repo.Save(context.Background(), scenario))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, scenario, got)

	info, err := os.Stat(scenarioPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(scenarioFileMode), info.Mode().Perm())

	matches, err := filepath.Glob(filepath.Join(filepath.Dir(scenarioPath), ".scenario-*.toml.tmp"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestScenarioRepositoryPartialFileUsesDefaults(t *testing.T) {
	t.Parallel()

	repo, scenarioPath := newTestRepository(t)
	require.NoError(t, os.WriteFile(scenarioPath, []byte(`version = 1

[mosquitoes]
total = 400
t0_infected = 0

[run]
seed = 5
`), 0o644))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)

	want := domain.DefaultScenario()
	want.TotalMosquitoes = 400
	want.T0Infected = 0
	want.Seed = 5
	assert.Equal(t, want, got)
}

func TestScenarioRepositoryKeepsExplicitZeroSeed(t *testing.T) {
	t.Parallel()

	repo, scenarioPath := newTestRepository(t)
	require.NoError(t, os.WriteFile(scenarioPath, []byte(`version = 1

[run]
seed = 0
`), 0o644))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(0), got.Seed)

	scenario := domain.DefaultScenario()
	scenario.Seed = 0
	require.NoError(t, repo.Save(context.Background(), scenario))

	got, err = repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, scenario, got)
}

func TestScenarioRepositoryRejectsFutureVersion(t *testing.T) {
	t.Parallel()

	repo, scenarioPath := newTestRepository(t)
	require.NoError(t, os.WriteFile(scenarioPath, []byte("version = 2\n"), 0o644))

	_, err := repo.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported scenario schema version 2")
}

func TestScenarioRepositoryRejectsMalformedFile(t *testing.T) {
	t.Parallel()

	repo, scenarioPath := newTestRepository(t)
	require.NoError(t, os.WriteFile(scenarioPath, []byte("[mosquitoes\n"), 0o644))

	_, err := repo.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode scenario file")
}

func TestScenarioRepositorySaveRejectsInvalidScenario(t *testing.T) {
	t.Parallel()

	repo, scenarioPath := newTestRepository(t)
	scenario := domain.DefaultScenario()
	scenario.DeathRate = 2

	err := repo.Save(context.Background(), scenario)
	require.ErrorIs(t, err, domain.ErrInvalidDeathRate)

	_, statErr := os.Stat(scenarioPath)
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}

func TestScenarioRepositoryHonorsCancelledContext(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.Load(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.ErrorIs(t, repo.Save(ctx, domain.DefaultScenario()), context.Canceled)
}

func TestScenarioRepositoryPathFromEnvironment(t *testing.T) {
	scenarioPath := filepath.Join(t.TempDir(), "env.toml")
	t.Setenv("MALARIA_SCENARIO_PATH", scenarioPath)

	repo, err := NewScenarioRepository(viper.New())
	require.NoError(t, err)

	got, err := repo.Path()
	require.NoError(t, err)
	assert.Equal(t, scenarioPath, got)
}

func TestEncodeScenarioIsDecodable(t *testing.T) {
	t.Parallel()

	data, err := EncodeScenario(domain.DefaultScenario())
	require.NoError(t, err)
	assert.Contains(t, string(data), "[mosquitoes]")
	assert.Contains(t, string(data), "[[ages]]")

	repo, scenarioPath := newTestRepository(t)
	require.NoError(t, os.WriteFile(scenarioPath, data, 0o644))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultScenario(), got)
}
