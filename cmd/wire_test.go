package cmd

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/malaria-prevalence/internal/domain"
	"github.com/bnema/malaria-prevalence/internal/ports/mocks"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLoadScenarioAppliesChangedFlagsOnly(t *testing.T) {
	stored := domain.DefaultScenario()
	stored.TotalMosquitoes = 400
	stored.Seed = 9

	repo := mocks.NewMockScenarioRepository(t)
	repo.EXPECT().Load(mock.Anything).Return(stored, nil).Once()

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	overrides := newScenarioOverrides(flags)
	require.NoError(t, flags.Parse([]string{"--seed", "4", "--steps", "12"}))

	got, err := (&app{scenarios: repo}).loadScenario(context.Background(), overrides)
	require.NoError(t, err)
	assert.Equal(t, uint64(4), got.Seed)
	assert.Equal(t, 12, got.StepLimit)
	assert.Equal(t, 400, got.TotalMosquitoes)
	assert.Equal(t, domain.DefaultT0Infected, got.T0Infected)
}

func TestLoadScenarioValidatesOverrides(t *testing.T) {
	repo := mocks.NewMockScenarioRepository(t)
	repo.EXPECT().Load(mock.Anything).Return(domain.DefaultScenario(), nil).Once()

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	overrides := newScenarioOverrides(flags)
	require.NoError(t, flags.Parse([]string{"--death-rate", "1.5"}))

	_, err := (&app{scenarios: repo}).loadScenario(context.Background(), overrides)
	require.ErrorIs(t, err, domain.ErrInvalidScenario)
	require.ErrorIs(t, err, domain.ErrInvalidDeathRate)
}

func TestLoadScenarioWrapsRepositoryError(t *testing.T) {
	repo := mocks.NewMockScenarioRepository(t)
	repo.EXPECT().Load(mock.Anything).Return(domain.Scenario{}, errors.New("disk on fire")).Once()

	_, err := (&app{scenarios: repo}).loadScenario(context.Background(), nil)
	require.Error(t, err)
	assert.Equal(t, "load scenario: disk on fire", err.Error())
}
