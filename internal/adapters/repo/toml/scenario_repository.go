package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bnema/malaria-prevalence/internal/domain"
	"github.com/bnema/malaria-prevalence/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	configName         = "config"
	configType         = "toml"
	ScenarioPathKey    = "scenario.path"
	scenarioPathEnv    = "MALARIA_SCENARIO_PATH"
	scenarioFileMode   = 0o644
	scenarioDirMode    = 0o755
	scenarioConfigDir  = "malaria"
	scenarioConfigFile = "scenario.toml"
	tempFilePattern    = ".scenario-*.toml.tmp"
)

// ScenarioRepository stores a scenario in a TOML file. The file location is
// read from viper on every call so late flag bindings are honored.
type ScenarioRepository struct {
	cfg *viper.Viper
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.ScenarioRepository = (*ScenarioRepository)(nil)

func NewScenarioRepository(cfg *viper.Viper) (*ScenarioRepository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("resolve config directory: %w", err)
	}
	configDir = filepath.Join(configDir, scenarioConfigDir)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(configDir)
	cfg.SetDefault(ScenarioPathKey, filepath.Join(configDir, scenarioConfigFile))
	if err := cfg.BindEnv(ScenarioPathKey, scenarioPathEnv); err != nil {
		return nil, fmt.Errorf("bind scenario path env: %w", err)
	}

	err = cfg.ReadInConfig()
	if err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	return &ScenarioRepository{cfg: cfg}, nil
}

// Path returns the absolute scenario file path.
func (r *ScenarioRepository) Path() (string, error) {
	path := r.cfg.GetString(ScenarioPathKey)
	if path == "" {
		return "", errors.New("scenario path is empty")
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve scenario path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

// Load returns the stored scenario, or the default scenario when no file
// exists yet.
func (r *ScenarioRepository) Load(ctx context.Context) (domain.Scenario, error) {
	if err := ctx.Err(); err != nil {
		return domain.Scenario{}, err
	}

	path, err := r.Path()
	if err != nil {
		return domain.Scenario{}, err
	}

	mu := lockForPath(path)
	mu.RLock()
	defer mu.RUnlock()

	file, err := readScenario(path)
	if err != nil {
		return domain.Scenario{}, err
	}

	return fromScenarioSchema(file), nil
}

func (r *ScenarioRepository) Save(ctx context.Context, scenario domain.Scenario) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := scenario.Validate(); err != nil {
		return err
	}

	path, err := r.Path()
	if err != nil {
		return err
	}

	mu := lockForPath(path)
	mu.Lock()
	defer mu.Unlock()

	return writeScenario(path, toScenarioSchema(scenario))
}

func readScenario(path string) (scenarioFileSchema, error) {
	var file scenarioFileSchema

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return scenarioFileSchema{}, fmt.Errorf("read scenario file: %w", err)
		}
		file.applyDefaults()
		return file, nil
	}

	if err := toml.Unmarshal(data, &file); err != nil {
		return scenarioFileSchema{}, fmt.Errorf("decode scenario file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return scenarioFileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func writeScenario(path string, file scenarioFileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(path), scenarioDirMode); err != nil {
		return fmt.Errorf("create scenario directory: %w", err)
	}

	data, err := marshal(file)
	if err != nil {
		return fmt.Errorf("encode scenario file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp scenario file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp scenario file: %w", err)
	}

	if err := tempFile.Chmod(scenarioFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp scenario file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp scenario file: %w", err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace scenario file: %w", err)
	}

	cleanup = false
	return nil
}

func marshal(file scenarioFileSchema) ([]byte, error) {
	return toml.Marshal(file)
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}
